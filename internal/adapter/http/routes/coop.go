package routes

import (
	"strings"

	"foodcoop_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCycles = "/cycles"
	PathOrders = "/orders"
)

func addCoopRoutes(rg *gin.RouterGroup, cycleHandler *handlers.CycleHandler, orderHandler *handlers.OrderHandler) {
	cycles := rg.Group(PathCycles)
	{
		// Admin endpoints; upstream proxy handles authentication.
		cycles.POST("", cycleHandler.CreateCycle)
		cycles.POST("/current/resync", cycleHandler.ResyncQuantities)
		cycles.GET("/current", cycleHandler.GetCurrentCycle)
		cycles.GET("/current/volumes", cycleHandler.GetOrderVolumes)
	}

	orders := rg.Group(PathOrders)
	{
		orders.PUT("/:slug", orderHandler.SaveDraft)
		orders.GET("/:slug", orderHandler.GetOrder)
		orders.POST("/:slug/confirm", orderHandler.ConfirmOrder)
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
