package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes mounts the dashboard page, chart API, event socket, metrics
// and API docs on router.
func SetupRoutes(router *gin.Engine, d *Dashboard, gatherer prometheus.Gatherer) {
	router.GET("/", d.Index)
	router.GET("/health", d.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{DisableCompression: true})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/layout", d.Layout)

		charts := api.Group("/charts")
		charts.GET("/success-pie-chart", d.PieChart)
		charts.GET("/success-pie-chart/png", d.PieChartPNG)
		charts.GET("/success-payload-scatter-chart", d.ScatterChart)
		charts.GET("/success-payload-scatter-chart/png", d.ScatterChartPNG)
	}

	router.GET("/ws/dashboard", d.HandleDashboardConnection)
}
