package gateway

import (
	"hr-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes memasang halaman dashboard di balik SessionGate dan
// action endpoint di bawah /api/ui yang dilewatkan gate apa adanya.
func RegisterRoutes(router *gin.Engine, handler *Handler) {
	router.Use(middleware.RequestID())
	router.Use(SessionGate())

	router.GET("/", handler.ListPage)
	router.GET("/login", handler.LoginPage)
	router.GET("/employees", handler.ListPage)
	router.GET("/employees/:id", handler.DetailPage)

	ui := router.Group("/api/ui")
	{
		ui.POST("/login", handler.Login)
		ui.POST("/logout", handler.Logout)
		ui.POST("/employees", handler.CreateEmployee)
		ui.POST("/search", handler.SubmitSearch)
		ui.GET("/search/results", handler.SearchResults)
	}
}
