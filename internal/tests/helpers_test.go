// internal/tests/helpers_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bahiapp/bahi-backend/internal/config"
	"github.com/bahiapp/bahi-backend/internal/database"
	"github.com/bahiapp/bahi-backend/internal/i18n"
	"github.com/bahiapp/bahi-backend/internal/router"
)

// newTestEnv spins up a migrated in-memory database and the full HTTP
// stack on top of it. Each suite gets its own named database so state
// never leaks between suites.
func newTestEnv(t *testing.T, name string) (*gorm.DB, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared-cache database alive for the
	// suite's lifetime.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))

	cfg := &config.Config{Environment: "test"}
	return db, router.Initialize(db, cfg)
}

// Collection roots, one per resource. Bases end in a slash.
const (
	usersBase         = "/api/users/"
	businessesBase    = "/api/businesses/"
	categoriesBase    = "/api/categories/"
	entriesBase       = "/api/income-expense/"
	stockItemsBase    = "/api/stock/items/"
	stockTxnsBase     = "/api/stock/transactions/"
	customersBase     = "/api/customers/"
	udhariBase        = "/api/udhari/"
	plansBase         = "/api/plans/"
	subscriptionsBase = "/api/subscriptions/"
	couponsBase       = "/api/coupons/"
	notificationsBase = "/api/notifications/"
	ticketsBase       = "/api/feedback/tickets/"
	settingsBase      = "/api/profile-settings/"
	bannersBase       = "/api/content/banners/"
	tutorialsBase     = "/api/content/tutorials/"
	exportsBase       = "/api/reports/exports/"
	activityLogsBase  = "/api/admin/activity-logs/"
	rolesBase         = "/api/admin/roles/"
)

// Route shapes follow the action-suffixed URL convention: list at the
// collection root, create under /create/, detail at /<id>/, writes under
// /<id>/update/ and /<id>/delete/.
func createPath(base string) string {
	return base + "create/"
}

func detailPath(base string, id uint) string {
	return fmt.Sprintf("%s%d/", base, id)
}

func updatePath(base string, id uint) string {
	return detailPath(base, id) + "update/"
}

func deletePath(base string, id uint) string {
	return detailPath(base, id) + "delete/"
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
