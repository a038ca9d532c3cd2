// internal/models/common_test.go
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 14)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed.Time))
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"14/03/2025"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong format")
}

func TestDateScanTrimsTimestamp(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2025-03-14 00:00:00+00:00"))
	assert.Equal(t, "2025-03-14", d.String())
}

func TestDateScanTime(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-01", d.String())
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	tod, err := ParseTimeOfDay("09:15:00")
	require.NoError(t, err)

	data, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"09:15:00"`, string(data))

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:15:00", v)

	var scanned TimeOfDay
	require.NoError(t, scanned.Scan([]byte("09:15:00")))
	assert.Equal(t, tod.String(), scanned.String())
}

func TestScanNilLeavesZeroValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	var tod TimeOfDay
	require.NoError(t, tod.Scan(nil))
	assert.True(t, tod.IsZero())
}
