package handlers

import (
	"errors"
	"net/http"

	"storefront-api/remote"
	"storefront-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// GetOrder returns a placed order with its status history
func (h *Handler) GetOrder(c *gin.Context) {
	resp, err := h.Data.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, &remote.Failure{Op: "getOrder", Err: err})
		return
	}
	if !resp.Success {
		c.JSON(http.StatusNotFound, gin.H{"error": resp.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": resp.Order})
}

// ListOrders is the order history, newest first
func (h *Handler) ListOrders(c *gin.Context) {
	resp, err := h.Data.ListOrders(c.Request.Context())
	if err := remote.Check("listOrders", resp.Success, resp.Error, err); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resp.Orders, "count": len(resp.Orders)})
}

func (h *Handler) TrackOrder(c *gin.Context) {
	view, err := h.Tracking.Track(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": c.Param("id"), "tracking": view})
}

// AdvanceOrder moves the order one step; at delivered it is a no-op
func (h *Handler) AdvanceOrder(c *gin.Context) {
	view, err := h.Tracking.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": c.Param("id"), "tracking": view})
}

// UpdateOrderStatus applies a status from a delivery-tracking feed
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Tracking.ApplyUpdate(c.Request.Context(), orderID, req.Status, req.Note)
	if errors.Is(err, statemachine.ErrInvalidTransition) {
		current, terr := h.Tracking.Track(c.Request.Context(), orderID)
		if terr != nil {
			respondError(c, terr)
			return
		}
		h.logger(c).Warn("status update rejected",
			zap.String("order_id", orderID),
			zap.String("current", string(current.Status)),
			zap.String("requested", req.Status),
		)
		c.Error(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    current.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(current.Status),
		})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": orderID, "tracking": view})
}
