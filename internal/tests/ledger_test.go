// internal/tests/ledger_test.go
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

type LedgerTestSuite struct {
	suite.Suite
	db       *gorm.DB
	router   *gin.Engine
	user     uint
	business uint
}

func (suite *LedgerTestSuite) SetupSuite() {
	suite.db, suite.router = newTestEnv(suite.T(), "ledger")

	w := doRequest(suite.router, "POST", createPath(usersBase), map[string]interface{}{
		"username": "ledgeruser",
		"password": "secret123",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	suite.user = uint(decodeBody(suite.T(), w)["id"].(float64))

	w = doRequest(suite.router, "POST", createPath(businessesBase), map[string]interface{}{
		"name":  "Ledger Shop",
		"owner": suite.user,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	suite.business = uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *LedgerTestSuite) createCategory(name string) uint {
	w := doRequest(suite.router, "POST", createPath(categoriesBase), map[string]interface{}{
		"name":     name,
		"type":     "expense",
		"business": suite.business,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *LedgerTestSuite) createEntry(amount string, categoryID *uint) map[string]interface{} {
	payload := map[string]interface{}{
		"user":     suite.user,
		"business": suite.business,
		"amount":   amount,
		"type":     "expense",
		"date":     "2026-03-15",
	}
	if categoryID != nil {
		payload["category_id"] = *categoryID
	}
	w := doRequest(suite.router, "POST", createPath(entriesBase), payload)
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(suite.T(), w)
}

func (suite *LedgerTestSuite) TestCreateEntryKeepsExactAmount() {
	body := suite.createEntry("500.25", nil)

	got, err := decimal.NewFromString(body["amount"].(string))
	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.RequireFromString("500.25").Equal(got))
	assert.Equal(suite.T(), "2026-03-15", body["date"])
	assert.Nil(suite.T(), body["category"])
	assert.False(suite.T(), body["voice_entry"].(bool))
}

func (suite *LedgerTestSuite) TestMissingAmountKeyedOnField() {
	w := doRequest(suite.router, "POST", createPath(entriesBase), map[string]interface{}{
		"user":     suite.user,
		"business": suite.business,
		"type":     "expense",
		"date":     "2026-03-15",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["amount"].([]interface{}), "This field is required.")
}

func (suite *LedgerTestSuite) TestInvalidTypeChoice() {
	w := doRequest(suite.router, "POST", createPath(entriesBase), map[string]interface{}{
		"user":     suite.user,
		"business": suite.business,
		"amount":   "10.00",
		"type":     "transfer",
		"date":     "2026-03-15",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["type"].([]interface{}), `"transfer" is not a valid choice.`)
}

func (suite *LedgerTestSuite) TestEntryEmbedsCategoryObject() {
	categoryID := suite.createCategory("Fuel")
	body := suite.createEntry("42.50", &categoryID)

	category, ok := body["category"].(map[string]interface{})
	require.True(suite.T(), ok, "category should be a nested object")
	assert.Equal(suite.T(), "Fuel", category["name"])
}

func (suite *LedgerTestSuite) TestDeleteCategoryNullsEntryReference() {
	categoryID := suite.createCategory("Doomed")
	entry := suite.createEntry("13.75", &categoryID)
	entryID := uint(entry["id"].(float64))

	w := doRequest(suite.router, "DELETE", deletePath(categoriesBase, categoryID), nil)
	require.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = doRequest(suite.router, "GET", detailPath(entriesBase, entryID), nil)
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	assert.Nil(suite.T(), decodeBody(suite.T(), w)["category"])
}

func (suite *LedgerTestSuite) TestPartialUpdatePreservesAmount() {
	entry := suite.createEntry("99.75", nil)
	entryID := uint(entry["id"].(float64))

	w := doRequest(suite.router, "PATCH", updatePath(entriesBase, entryID), map[string]interface{}{
		"notes": "diesel top-up",
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "diesel top-up", body["notes"])
	got, err := decimal.NewFromString(body["amount"].(string))
	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.RequireFromString("99.75").Equal(got))
}

func (suite *LedgerTestSuite) TestUnknownCategoryRejected() {
	w := doRequest(suite.router, "POST", createPath(entriesBase), map[string]interface{}{
		"user":        suite.user,
		"business":    suite.business,
		"amount":      "5.00",
		"type":        "income",
		"date":        "2026-03-15",
		"category_id": 7777,
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["category_id"].([]interface{}), `Invalid pk "7777" - object does not exist.`)
}

func (suite *LedgerTestSuite) TestDeleteEntryThenGone() {
	entry := suite.createEntry("1.25", nil)
	entryID := uint(entry["id"].(float64))

	w := doRequest(suite.router, "DELETE", deletePath(entriesBase, entryID), nil)
	require.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = doRequest(suite.router, "GET", detailPath(entriesBase, entryID), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = doRequest(suite.router, "GET", entriesBase, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	for _, item := range decodeList(suite.T(), w) {
		assert.NotEqual(suite.T(), entryID, uint(item["id"].(float64)))
	}
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
