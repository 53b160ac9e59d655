package handlers

import (
	"net/http"

	"storefront-api/remote"
	"storefront-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Home loads vendors and categories concurrently
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	vendorsF := remote.Go(ctx, h.Data.ListVendors)
	categoriesF := remote.Go(ctx, h.Data.ListCategories)

	vendors, err := vendorsF.Await(ctx)
	if err := remote.Check("listVendors", vendors.Success, vendors.Error, err); err != nil {
		respondError(c, err)
		return
	}
	categories, err := categoriesF.Await(ctx)
	if err := remote.Check("listCategories", categories.Success, categories.Error, err); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vendors":    vendors.Vendors,
		"categories": categories.Categories,
	})
}

// GetVendor returns a vendor with its menu
func (h *Handler) GetVendor(c *gin.Context) {
	resp, err := h.Data.GetVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, &remote.Failure{Op: "getVendor", Err: err})
		return
	}
	if !resp.Success {
		c.JSON(http.StatusNotFound, gin.H{"error": resp.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": resp.Vendor})
}

// GetStateMachineInfo returns the delivery lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	steps := make([]gin.H, 0, statemachine.TotalStates())
	for _, s := range statemachine.Statuses() {
		steps = append(steps, gin.H{"status": s, "label": statemachine.Label(s)})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"states":          steps,
		"terminal_states": []string{"delivered"},
		"description":     "Order delivery lifecycle: forward-only, one step at a time",
	})
}
