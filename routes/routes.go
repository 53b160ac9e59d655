package routes

import (
	"storefront-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")

	// ── Catalogue ──────────────────────────────────────────────────
	{
		api.GET("/home", h.Home)
		api.GET("/vendors/:id", h.GetVendor)
		api.GET("/vendors/:id/reviews", h.GetVendorReviews)
		api.POST("/vendors/:id/reviews", h.SubmitReview)
		api.GET("/addresses", h.ListAddresses)

		// State machine info
		api.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Cart ───────────────────────────────────────────────────────
	cart := api.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddToCart)
		cart.PUT("/items/:id", h.UpdateCartItem)
		cart.DELETE("/items/:id", h.RemoveFromCart)
		cart.DELETE("", h.ClearCart)
	}

	// ── Search ─────────────────────────────────────────────────────
	search := api.Group("/search")
	{
		search.POST("", h.SearchCatalogue)
		search.GET("/filters", h.GetSearchFilters)
		search.PUT("/filters/toggle", h.ToggleFilter)
		search.DELETE("/filters", h.ClearFilters)
		search.DELETE("/filters/:key", h.RemoveFilter)
	}

	// ── Checkout ───────────────────────────────────────────────────
	checkout := api.Group("/checkout")
	{
		checkout.POST("/validate", h.ValidateCheckout)
		checkout.POST("", h.PlaceOrder)
	}

	// ── Orders & tracking ──────────────────────────────────────────
	orders := api.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/tracking", h.TrackOrder)
		orders.POST("/:id/advance", h.AdvanceOrder)
		orders.PUT("/:id/status", h.UpdateOrderStatus)
	}
}
