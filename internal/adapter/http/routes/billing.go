package routes

import (
	"quotecalc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProfile = "/profile"
	PathBilling = "/billing"
)

func addProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler) {
	profile := rg.Group(PathProfile)
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpsertProfile)
	}
}

func addBillingRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.GET("/subscription", billingHandler.GetSubscription)
		billing.POST("/checkout", billingHandler.CreateCheckout)
		billing.POST("/sync", billingHandler.Sync)
	}
}
