// internal/tests/engagement_test.go
package tests

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type EngagementTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	user   uint
}

func (suite *EngagementTestSuite) SetupSuite() {
	suite.db, suite.router = newTestEnv(suite.T(), "engagement")

	w := doRequest(suite.router, "POST", createPath(usersBase), map[string]interface{}{
		"username": "engageuser",
		"password": "secret123",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	suite.user = uint(decodeBody(suite.T(), w)["id"].(float64))
}

func (suite *EngagementTestSuite) TestNotificationLifecycle() {
	w := doRequest(suite.router, "POST", createPath(notificationsBase), map[string]interface{}{
		"user":    suite.user,
		"title":   "Low stock",
		"message": "Rice is below 5 kg.",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	notifID := uint(body["id"].(float64))
	assert.False(suite.T(), body["opened"].(bool))
	assert.Nil(suite.T(), body["business"])
	assert.NotEmpty(suite.T(), body["sent_at"])

	w = doRequest(suite.router, "PATCH", updatePath(notificationsBase, notifID), map[string]interface{}{
		"opened": true,
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(suite.T(), w)
	assert.True(suite.T(), body["opened"].(bool))
	assert.Equal(suite.T(), "Low stock", body["title"])
}

func (suite *EngagementTestSuite) TestNotificationRequiresUserAndContent() {
	w := doRequest(suite.router, "POST", createPath(notificationsBase), map[string]interface{}{})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body, "user")
	assert.Contains(suite.T(), body, "title")
	assert.Contains(suite.T(), body, "message")
}

func (suite *EngagementTestSuite) TestTicketTagChoice() {
	w := doRequest(suite.router, "POST", createPath(ticketsBase), map[string]interface{}{
		"user":    suite.user,
		"tag":     "praise",
		"message": "love it",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	body := decodeBody(suite.T(), w)
	assert.Contains(suite.T(), body["tag"].([]interface{}), `"praise" is not a valid choice.`)
}

func (suite *EngagementTestSuite) TestTicketResolveFlow() {
	w := doRequest(suite.router, "POST", createPath(ticketsBase), map[string]interface{}{
		"user":    suite.user,
		"tag":     "bug",
		"message": "export button crashes",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	ticketID := uint(body["id"].(float64))
	assert.Equal(suite.T(), "open", body["status"])
	assert.Nil(suite.T(), body["assigned_to"])

	w = doRequest(suite.router, "PATCH", updatePath(ticketsBase, ticketID), map[string]interface{}{
		"status":      "resolved",
		"assigned_to": suite.user,
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "resolved", body["status"])
	assert.Equal(suite.T(), float64(suite.user), body["assigned_to"])
}

func (suite *EngagementTestSuite) TestSettingsOnePerUser() {
	w := doRequest(suite.router, "POST", createPath(settingsBase), map[string]interface{}{
		"user":     suite.user,
		"language": "hi",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(suite.T(), w)
	settingsID := uint(body["id"].(float64))
	assert.Equal(suite.T(), "hi", body["language"])
	assert.True(suite.T(), body["ai_alerts"].(bool))
	assert.False(suite.T(), body["app_lock"].(bool))

	// Second settings row for the same user is a conflict.
	w = doRequest(suite.router, "POST", createPath(settingsBase), map[string]interface{}{
		"user": suite.user,
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), decodeBody(suite.T(), w)["user"].([]interface{}), "This field must be unique.")

	w = doRequest(suite.router, "PATCH", updatePath(settingsBase, settingsID), map[string]interface{}{
		"app_lock": true,
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(suite.T(), w)
	assert.True(suite.T(), body["app_lock"].(bool))
	assert.Equal(suite.T(), "hi", body["language"])
}

func (suite *EngagementTestSuite) TestSettingsLanguageChoice() {
	w := doRequest(suite.router, "POST", createPath(settingsBase), map[string]interface{}{
		"user":     suite.user,
		"language": "fr",
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), decodeBody(suite.T(), w)["language"].([]interface{}), `"fr" is not a valid choice.`)
}

func TestEngagementTestSuite(t *testing.T) {
	suite.Run(t, new(EngagementTestSuite))
}
