// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahiapp/bahi-backend/internal/i18n"
)

type sampleRequest struct {
	Name     *string `json:"name" validate:"required"`
	Kind     string  `json:"kind" validate:"omitempty,oneof=income expense"`
	Discount *int    `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
}

func TestValidateStructKeysErrorsByWireName(t *testing.T) {
	require.NoError(t, i18n.Initialize())

	errs := ValidateStruct("en", &sampleRequest{Kind: "transfer"})
	require.NotNil(t, errs)

	assert.Equal(t, []string{"This field is required."}, errs["name"])
	assert.Equal(t, []string{`"transfer" is not a valid choice.`}, errs["kind"])
}

func TestValidateStructBounds(t *testing.T) {
	require.NoError(t, i18n.Initialize())

	name := "Diwali"
	over := 120
	errs := ValidateStruct("en", &sampleRequest{Name: &name, Discount: &over})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Ensure this value is less than or equal to 100."}, errs["discount_percent"])

	ok := 40
	assert.Nil(t, ValidateStruct("en", &sampleRequest{Name: &name, Discount: &ok}))
}

func TestGenerateReferralCode(t *testing.T) {
	code, err := GenerateReferralCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	for _, c := range code {
		assert.Contains(t, referralCharset, string(c))
	}

	other, err := GenerateReferralCode(8)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}
