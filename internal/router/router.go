// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bahiapp/bahi-backend/internal/config"
	"github.com/bahiapp/bahi-backend/internal/handlers"
	"github.com/bahiapp/bahi-backend/internal/middleware"
	"github.com/bahiapp/bahi-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService := services.NewStorageService(cfg)

	userService := services.NewUserService(db)
	ledgerService := services.NewLedgerService(db)
	stockService := services.NewStockService(db)
	udhariService := services.NewUdhariService(db)
	subscriptionService := services.NewSubscriptionService(db)
	notificationService := services.NewNotificationService(db)
	feedbackService := services.NewFeedbackService(db)
	settingsService := services.NewSettingsService(db)
	contentService := services.NewContentService(db)
	reportService := services.NewReportService(db, storageService)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	stockHandler := handlers.NewStockHandler(stockService)
	udhariHandler := handlers.NewUdhariHandler(udhariService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	contentHandler := handlers.NewContentHandler(contentService, storageService)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	if cfg.Environment != "test" {
		r.Use(middleware.GeneralRateLimit())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("/", userHandler.ListUsers)
			users.POST("/create/", userHandler.CreateUser)
			users.GET("/:id/", userHandler.GetUser)
			users.PUT("/:id/update/", userHandler.UpdateUser)
			users.PATCH("/:id/update/", userHandler.UpdateUser)
			users.DELETE("/:id/delete/", userHandler.DeleteUser)
		}

		businesses := api.Group("/businesses")
		{
			businesses.GET("/", userHandler.ListBusinesses)
			businesses.POST("/create/", userHandler.CreateBusiness)
			businesses.GET("/:id/", userHandler.GetBusiness)
			businesses.PUT("/:id/update/", userHandler.UpdateBusiness)
			businesses.PATCH("/:id/update/", userHandler.UpdateBusiness)
			businesses.DELETE("/:id/delete/", userHandler.DeleteBusiness)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/", ledgerHandler.ListCategories)
			categories.POST("/create/", ledgerHandler.CreateCategory)
			categories.GET("/:id/", ledgerHandler.GetCategory)
			categories.PUT("/:id/update/", ledgerHandler.UpdateCategory)
			categories.PATCH("/:id/update/", ledgerHandler.UpdateCategory)
			categories.DELETE("/:id/delete/", ledgerHandler.DeleteCategory)
		}

		entries := api.Group("/income-expense")
		{
			entries.GET("/", ledgerHandler.ListEntries)
			entries.POST("/create/", ledgerHandler.CreateEntry)
			entries.GET("/:id/", ledgerHandler.GetEntry)
			entries.PUT("/:id/update/", ledgerHandler.UpdateEntry)
			entries.PATCH("/:id/update/", ledgerHandler.UpdateEntry)
			entries.DELETE("/:id/delete/", ledgerHandler.DeleteEntry)
		}

		stock := api.Group("/stock")
		{
			items := stock.Group("/items")
			{
				items.GET("/", stockHandler.ListItems)
				items.POST("/create/", stockHandler.CreateItem)
				items.GET("/:id/", stockHandler.GetItem)
				items.PUT("/:id/update/", stockHandler.UpdateItem)
				items.PATCH("/:id/update/", stockHandler.UpdateItem)
				items.DELETE("/:id/delete/", stockHandler.DeleteItem)
			}

			transactions := stock.Group("/transactions")
			{
				transactions.GET("/", stockHandler.ListTransactions)
				transactions.POST("/create/", stockHandler.CreateTransaction)
				transactions.GET("/:id/", stockHandler.GetTransaction)
				transactions.PUT("/:id/update/", stockHandler.UpdateTransaction)
				transactions.PATCH("/:id/update/", stockHandler.UpdateTransaction)
				transactions.DELETE("/:id/delete/", stockHandler.DeleteTransaction)
			}
		}

		customers := api.Group("/customers")
		{
			customers.GET("/", udhariHandler.ListCustomers)
			customers.POST("/create/", udhariHandler.CreateCustomer)
			customers.GET("/:id/", udhariHandler.GetCustomer)
			customers.PUT("/:id/update/", udhariHandler.UpdateCustomer)
			customers.PATCH("/:id/update/", udhariHandler.UpdateCustomer)
			customers.DELETE("/:id/delete/", udhariHandler.DeleteCustomer)
		}

		udhari := api.Group("/udhari")
		{
			udhari.GET("/", udhariHandler.ListUdhari)
			udhari.POST("/create/", udhariHandler.CreateUdhari)
			udhari.GET("/:id/", udhariHandler.GetUdhari)
			udhari.PUT("/:id/update/", udhariHandler.UpdateUdhari)
			udhari.PATCH("/:id/update/", udhariHandler.UpdateUdhari)
			udhari.DELETE("/:id/delete/", udhariHandler.DeleteUdhari)
		}

		plans := api.Group("/plans")
		{
			plans.GET("/", subscriptionHandler.ListPlans)
			plans.POST("/create/", subscriptionHandler.CreatePlan)
			plans.GET("/:id/", subscriptionHandler.GetPlan)
			plans.PUT("/:id/update/", subscriptionHandler.UpdatePlan)
			plans.PATCH("/:id/update/", subscriptionHandler.UpdatePlan)
			plans.DELETE("/:id/delete/", subscriptionHandler.DeletePlan)
		}

		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.GET("/", subscriptionHandler.ListSubscriptions)
			subscriptions.POST("/create/", subscriptionHandler.CreateSubscription)
			subscriptions.GET("/:id/", subscriptionHandler.GetSubscription)
			subscriptions.PUT("/:id/update/", subscriptionHandler.UpdateSubscription)
			subscriptions.PATCH("/:id/update/", subscriptionHandler.UpdateSubscription)
			subscriptions.DELETE("/:id/delete/", subscriptionHandler.DeleteSubscription)
		}

		coupons := api.Group("/coupons")
		{
			coupons.GET("/", subscriptionHandler.ListCoupons)
			coupons.POST("/create/", subscriptionHandler.CreateCoupon)
			coupons.GET("/:id/", subscriptionHandler.GetCoupon)
			coupons.PUT("/:id/update/", subscriptionHandler.UpdateCoupon)
			coupons.PATCH("/:id/update/", subscriptionHandler.UpdateCoupon)
			coupons.DELETE("/:id/delete/", subscriptionHandler.DeleteCoupon)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("/", notificationHandler.List)
			notifications.POST("/create/", notificationHandler.Create)
			notifications.GET("/:id/", notificationHandler.Get)
			notifications.PUT("/:id/update/", notificationHandler.Update)
			notifications.PATCH("/:id/update/", notificationHandler.Update)
			notifications.DELETE("/:id/delete/", notificationHandler.Delete)
		}

		tickets := api.Group("/feedback/tickets")
		{
			tickets.GET("/", feedbackHandler.List)
			tickets.POST("/create/", feedbackHandler.Create)
			tickets.GET("/:id/", feedbackHandler.Get)
			tickets.PUT("/:id/update/", feedbackHandler.Update)
			tickets.PATCH("/:id/update/", feedbackHandler.Update)
			tickets.DELETE("/:id/delete/", feedbackHandler.Delete)
		}

		settings := api.Group("/profile-settings")
		{
			settings.GET("/", settingsHandler.List)
			settings.POST("/create/", settingsHandler.Create)
			settings.GET("/:id/", settingsHandler.Get)
			settings.PUT("/:id/update/", settingsHandler.Update)
			settings.PATCH("/:id/update/", settingsHandler.Update)
			settings.DELETE("/:id/delete/", settingsHandler.Delete)
		}

		content := api.Group("/content")
		{
			banners := content.Group("/banners")
			{
				banners.GET("/", contentHandler.ListBanners)
				banners.POST("/create/", contentHandler.CreateBanner)
				banners.GET("/:id/", contentHandler.GetBanner)
				banners.PUT("/:id/update/", contentHandler.UpdateBanner)
				banners.PATCH("/:id/update/", contentHandler.UpdateBanner)
				banners.DELETE("/:id/delete/", contentHandler.DeleteBanner)
			}

			tutorials := content.Group("/tutorials")
			{
				tutorials.GET("/", contentHandler.ListTutorials)
				tutorials.POST("/create/", contentHandler.CreateTutorial)
				tutorials.GET("/:id/", contentHandler.GetTutorial)
				tutorials.PUT("/:id/update/", contentHandler.UpdateTutorial)
				tutorials.PATCH("/:id/update/", contentHandler.UpdateTutorial)
				tutorials.DELETE("/:id/delete/", contentHandler.DeleteTutorial)
			}
		}

		reports := api.Group("/reports")
		{
			reports.GET("/summary/", reportHandler.Summary)

			// Export records are immutable, so there is no update route.
			exports := reports.Group("/exports")
			{
				exports.GET("/", reportHandler.ListExports)
				exports.POST("/create/", reportHandler.CreateExport)
				exports.GET("/:id/", reportHandler.GetExport)
				exports.DELETE("/:id/delete/", reportHandler.DeleteExport)
			}
		}

		admin := api.Group("/admin")
		{
			// Activity logs are append-only, so there is no update route.
			logs := admin.Group("/activity-logs")
			{
				logs.GET("/", adminHandler.ListLogs)
				logs.POST("/create/", adminHandler.CreateLog)
				logs.GET("/:id/", adminHandler.GetLog)
				logs.DELETE("/:id/delete/", adminHandler.DeleteLog)
			}

			roles := admin.Group("/roles")
			{
				roles.GET("/", adminHandler.ListRoles)
				roles.POST("/create/", adminHandler.CreateRole)
				roles.GET("/:id/", adminHandler.GetRole)
				roles.PUT("/:id/update/", adminHandler.UpdateRole)
				roles.PATCH("/:id/update/", adminHandler.UpdateRole)
				roles.DELETE("/:id/delete/", adminHandler.DeleteRole)
			}
		}
	}

	return r
}
