package handlers

import (
	"net/http"

	"storefront-api/cart"
	"storefront-api/models"

	"github.com/gin-gonic/gin"
)

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// cartBody renders a snapshot with display-ready totals
func cartBody(snap cart.Snapshot) gin.H {
	t := snap.Totals
	return gin.H{
		"items":      snap.Lines,
		"version":    snap.Version,
		"item_count": t.ItemCount,
		"summary": gin.H{
			"subtotal":     t.Subtotal.StringFixed(2),
			"delivery_fee": t.DeliveryFee.StringFixed(2),
			"tax":          t.Tax.StringFixed(2),
			"grand_total":  t.GrandTotal.StringFixed(2),
		},
	}
}

// GetCart refreshes the ledger from the backing cart
func (h *Handler) GetCart(c *gin.Context) {
	snap, err := h.Cart.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartBody(snap))
}

// AddToCart adds one line, merging with an existing line of the same id
func (h *Handler) AddToCart(c *gin.Context) {
	var line models.CartLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.Cart.Add(c.Request.Context(), line)
	if err != nil {
		respondError(c, err)
		return
	}
	name := line.ID
	for _, l := range snap.Lines {
		if l.ID == line.ID {
			name = l.Name
		}
	}
	body := cartBody(snap)
	body["message"] = name + " added to cart!"
	c.JSON(http.StatusOK, body)
}

// UpdateCartItem sets a quantity; zero removes the line
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.Cart.SetQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartBody(snap))
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	snap, err := h.Cart.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartBody(snap))
}

func (h *Handler) ClearCart(c *gin.Context) {
	snap, err := h.Cart.Clear(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartBody(snap))
}
