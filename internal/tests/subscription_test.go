// internal/tests/subscription_test.go
package tests

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SubscriptionTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	user   uint
}

func (suite *SubscriptionTestSuite) SetupSuite() {
	suite.db, suite.router = newTestEnv(suite.T(), "subscription")

	w := doRequest(suite.router, "POST", createPath(usersBase), map[string]interface{}{
		"username": "subuser",
		"password": "secret123",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	suite.user = uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *SubscriptionTestSuite) createPlan(name string) uint {
	w := doRequest(suite.router, "POST", createPath(plansBase), map[string]interface{}{
		"name":            name,
		"price":           "99.00",
		"duration_months": 1,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *SubscriptionTestSuite) TestCreatePlanDefaultsActive() {
	w := doRequest(suite.router, "POST", createPath(plansBase), map[string]interface{}{
		"name":            "Premium Monthly",
		"price":           "99.50",
		"duration_months": 1,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	assert.True(suite.T(), body["is_active"].(bool))
	price, err := decimal.NewFromString(body["price"].(string))
	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.RequireFromString("99.50").Equal(price))
}

func (suite *SubscriptionTestSuite) TestSubscriptionLifecycle() {
	planID := suite.createPlan("Yearly")

	w := doRequest(suite.router, "POST", createPath(subscriptionsBase), map[string]interface{}{
		"user":       suite.user,
		"plan":       planID,
		"start_date": "2026-01-01",
		"end_date":   "2027-01-01",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	subID := uint(body["id"].(float64))
	assert.True(suite.T(), body["is_active"].(bool))
	assert.False(suite.T(), body["auto_renew"].(bool))
	assert.Equal(suite.T(), "2026-01-01", body["start_date"])

	w = doRequest(suite.router, "PATCH", updatePath(subscriptionsBase, subID), map[string]interface{}{
		"auto_renew": true,
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(suite.T(), w)
	assert.True(suite.T(), body["auto_renew"].(bool))
	assert.Equal(suite.T(), "2027-01-01", body["end_date"])

	w = doRequest(suite.router, "DELETE", deletePath(subscriptionsBase, subID), nil)
	require.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = doRequest(suite.router, "GET", detailPath(subscriptionsBase, subID), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SubscriptionTestSuite) TestSubscriptionUnknownRefs() {
	w := doRequest(suite.router, "POST", createPath(subscriptionsBase), map[string]interface{}{
		"user":       8888,
		"plan":       9999,
		"start_date": "2026-01-01",
		"end_date":   "2026-02-01",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["user"].([]interface{}), `Invalid pk "8888" - object does not exist.`)
	assert.Contains(suite.T(), body["plan"].([]interface{}), `Invalid pk "9999" - object does not exist.`)
}

func (suite *SubscriptionTestSuite) TestDuplicateCouponCodeRejected() {
	payload := map[string]interface{}{
		"code":             "DIWALI50",
		"discount_percent": 50,
		"valid_from":       "2026-10-01",
		"valid_to":         "2026-11-01",
	}

	w := doRequest(suite.router, "POST", createPath(couponsBase), payload)
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(suite.router, "POST", createPath(couponsBase), payload)
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["code"].([]interface{}), "This field must be unique.")
}

func (suite *SubscriptionTestSuite) TestCouponDiscountBounds() {
	w := doRequest(suite.router, "POST", createPath(couponsBase), map[string]interface{}{
		"code":             "TOOBIG",
		"discount_percent": 150,
		"valid_from":       "2026-10-01",
		"valid_to":         "2026-11-01",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["discount_percent"].([]interface{}), "Ensure this value is less than or equal to 100.")
}

func (suite *SubscriptionTestSuite) TestRenameCouponKeepsCodeCheckScoped() {
	w := doRequest(suite.router, "POST", createPath(couponsBase), map[string]interface{}{
		"code":             "KEEPME",
		"discount_percent": 10,
		"valid_from":       "2026-01-01",
		"valid_to":         "2026-02-01",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	couponID := uint(decodeBody(suite.T(), w)["id"].(float64))

	// Re-submitting its own code on update is not a conflict.
	w = doRequest(suite.router, "PATCH", updatePath(couponsBase, couponID), map[string]interface{}{
		"code": "KEEPME",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
}

func TestSubscriptionTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionTestSuite))
}
