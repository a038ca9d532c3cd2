// internal/tests/stock_test.go
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

type StockTestSuite struct {
	suite.Suite
	db       *gorm.DB
	router   *gin.Engine
	business uint
}

func (suite *StockTestSuite) SetupSuite() {
	suite.db, suite.router = newTestEnv(suite.T(), "stock")

	w := doRequest(suite.router, "POST", createPath(usersBase), map[string]interface{}{
		"username": "stockuser",
		"password": "secret123",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	owner := uint(decodeBody(suite.T(), w)["id"].(float64))

	w = doRequest(suite.router, "POST", createPath(businessesBase), map[string]interface{}{
		"name":  "Stock Depot",
		"owner": owner,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	suite.business = uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *StockTestSuite) createItem(name string) uint {
	w := doRequest(suite.router, "POST", createPath(stockItemsBase), map[string]interface{}{
		"name":           name,
		"unit":           "kg",
		"opening_stock":  "25.50",
		"price_per_unit": "12.25",
		"business":       suite.business,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *StockTestSuite) TestClosingStockDefaultsToOpening() {
	w := doRequest(suite.router, "POST", createPath(stockItemsBase), map[string]interface{}{
		"name":           "Rice",
		"unit":           "kg",
		"opening_stock":  "100.25",
		"price_per_unit": "55.75",
		"business":       suite.business,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	closing, err := decimal.NewFromString(body["closing_stock"].(string))
	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.RequireFromString("100.25").Equal(closing))
}

func (suite *StockTestSuite) TestItemRequiredFields() {
	w := doRequest(suite.router, "POST", createPath(stockItemsBase), map[string]interface{}{
		"business": suite.business,
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body, "name")
	assert.Contains(suite.T(), body, "unit")
	assert.Contains(suite.T(), body, "opening_stock")
	assert.Contains(suite.T(), body, "price_per_unit")
}

func (suite *StockTestSuite) TestTransactionEmbedsItemObject() {
	itemID := suite.createItem("Sugar")

	w := doRequest(suite.router, "POST", createPath(stockTxnsBase), map[string]interface{}{
		"stock_item_id":    itemID,
		"transaction_type": "in",
		"quantity":         "5.25",
		"date":             "2026-04-01",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	item, ok := body["stock_item"].(map[string]interface{})
	require.True(suite.T(), ok, "stock_item should be a nested object")
	assert.Equal(suite.T(), "Sugar", item["name"])
	assert.Equal(suite.T(), "in", body["transaction_type"])
}

func (suite *StockTestSuite) TestTransactionTypeChoice() {
	itemID := suite.createItem("Salt")

	w := doRequest(suite.router, "POST", createPath(stockTxnsBase), map[string]interface{}{
		"stock_item_id":    itemID,
		"transaction_type": "sideways",
		"quantity":         "1.00",
		"date":             "2026-04-01",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["transaction_type"].([]interface{}), `"sideways" is not a valid choice.`)
}

func (suite *StockTestSuite) TestUnknownItemRejected() {
	w := doRequest(suite.router, "POST", createPath(stockTxnsBase), map[string]interface{}{
		"stock_item_id":    4242,
		"transaction_type": "out",
		"quantity":         "1.00",
		"date":             "2026-04-01",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["stock_item_id"].([]interface{}), `Invalid pk "4242" - object does not exist.`)
}

func (suite *StockTestSuite) TestDeleteItemCascadesTransactions() {
	itemID := suite.createItem("Oil")

	w := doRequest(suite.router, "POST", createPath(stockTxnsBase), map[string]interface{}{
		"stock_item_id":    itemID,
		"transaction_type": "out",
		"quantity":         "2.50",
		"date":             "2026-04-02",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	txnID := uint(decodeBody(suite.T(), w)["id"].(float64))

	w = doRequest(suite.router, "DELETE", deletePath(stockItemsBase, itemID), nil)
	require.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = doRequest(suite.router, "GET", detailPath(stockTxnsBase, txnID), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *StockTestSuite) TestPartialItemUpdate() {
	itemID := suite.createItem("Wheat")

	w := doRequest(suite.router, "PATCH", updatePath(stockItemsBase, itemID), map[string]interface{}{
		"price_per_unit": "14.75",
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "Wheat", body["name"])
	price, err := decimal.NewFromString(body["price_per_unit"].(string))
	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.RequireFromString("14.75").Equal(price))
}

func TestStockTestSuite(t *testing.T) {
	suite.Run(t, new(StockTestSuite))
}
