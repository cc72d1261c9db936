package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	clickHandler *ClickHandler,
	conversionHandler *ConversionHandler,
	commissionHandler *CommissionHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// публичные точки трекинга
	router.GET("/r", clickHandler.Redirect)
	router.POST("/postback", conversionHandler.Postback)

	api := router.Group("/api")
	{
		api.POST("/clicks", clickHandler.RecordClick)
		api.GET("/clicks/:id", clickHandler.GetClick)
		api.GET("/conversions/:id", conversionHandler.GetConversion)
		api.GET("/commissions", commissionHandler.ListCommissions)
		api.GET("/commissions/:id", commissionHandler.GetCommission)
		api.POST("/commissions/:id/approve", commissionHandler.Approve)
		api.POST("/commissions/:id/reject", commissionHandler.Reject)
		api.POST("/commissions/:id/paid", commissionHandler.MarkPaid)
	}

	return router
}
