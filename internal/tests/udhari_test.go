// internal/tests/udhari_test.go
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

type UdhariTestSuite struct {
	suite.Suite
	db       *gorm.DB
	router   *gin.Engine
	business uint
}

func (suite *UdhariTestSuite) SetupSuite() {
	suite.db, suite.router = newTestEnv(suite.T(), "udhari")

	w := doRequest(suite.router, "POST", createPath(usersBase), map[string]interface{}{
		"username": "udhariuser",
		"password": "secret123",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	owner := uint(decodeBody(suite.T(), w)["id"].(float64))

	w = doRequest(suite.router, "POST", createPath(businessesBase), map[string]interface{}{
		"name":  "Credit Corner",
		"owner": owner,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	suite.business = uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *UdhariTestSuite) createCustomer(name string) uint {
	w := doRequest(suite.router, "POST", createPath(customersBase), map[string]interface{}{
		"name":     name,
		"business": suite.business,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *UdhariTestSuite) TestCreateEntryDefaultsUnpaid() {
	customerID := suite.createCustomer("Gopal")

	w := doRequest(suite.router, "POST", createPath(udhariBase), map[string]interface{}{
		"customer_id": customerID,
		"amount":      "250.25",
		"given":       true,
		"date":        "2026-05-01",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "unpaid", body["status"])
	assert.True(suite.T(), body["given"].(bool))
	assert.False(suite.T(), body["reminder"].(bool))

	customer, ok := body["customer"].(map[string]interface{})
	require.True(suite.T(), ok, "customer should be a nested object")
	assert.Equal(suite.T(), "Gopal", customer["name"])

	amount, err := decimal.NewFromString(body["amount"].(string))
	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.RequireFromString("250.25").Equal(amount))
}

func (suite *UdhariTestSuite) TestGivenIsRequired() {
	customerID := suite.createCustomer("Shanta")

	w := doRequest(suite.router, "POST", createPath(udhariBase), map[string]interface{}{
		"customer_id": customerID,
		"amount":      "10.00",
		"date":        "2026-05-01",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["given"].([]interface{}), "This field is required.")
}

func (suite *UdhariTestSuite) TestMarkPaidViaPatch() {
	customerID := suite.createCustomer("Bhaskar")

	w := doRequest(suite.router, "POST", createPath(udhariBase), map[string]interface{}{
		"customer_id": customerID,
		"amount":      "75.50",
		"given":       true,
		"date":        "2026-05-02",
		"due_date":    "2026-06-01",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	entryID := uint(decodeBody(suite.T(), w)["id"].(float64))

	w = doRequest(suite.router, "PATCH", updatePath(udhariBase, entryID), map[string]interface{}{
		"status": "paid",
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "paid", body["status"])
	assert.Equal(suite.T(), "2026-06-01", body["due_date"])
	assert.True(suite.T(), body["given"].(bool))
}

func (suite *UdhariTestSuite) TestInvalidStatusChoice() {
	customerID := suite.createCustomer("Lata")

	w := doRequest(suite.router, "POST", createPath(udhariBase), map[string]interface{}{
		"customer_id": customerID,
		"amount":      "5.00",
		"given":       false,
		"date":        "2026-05-03",
		"status":      "pending",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["status"].([]interface{}), `"pending" is not a valid choice.`)
}

func (suite *UdhariTestSuite) TestDeleteCustomerCascadesEntries() {
	customerID := suite.createCustomer("Vanishing")

	w := doRequest(suite.router, "POST", createPath(udhariBase), map[string]interface{}{
		"customer_id": customerID,
		"amount":      "33.25",
		"given":       true,
		"date":        "2026-05-04",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	entryID := uint(decodeBody(suite.T(), w)["id"].(float64))

	w = doRequest(suite.router, "DELETE", deletePath(customersBase, customerID), nil)
	require.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = doRequest(suite.router, "GET", detailPath(udhariBase, entryID), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *UdhariTestSuite) TestUnknownCustomerRejected() {
	w := doRequest(suite.router, "POST", createPath(udhariBase), map[string]interface{}{
		"customer_id": 3131,
		"amount":      "9.00",
		"given":       true,
		"date":        "2026-05-05",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["customer_id"].([]interface{}), `Invalid pk "3131" - object does not exist.`)
}

func TestUdhariTestSuite(t *testing.T) {
	suite.Run(t, new(UdhariTestSuite))
}
