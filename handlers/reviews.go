package handlers

import (
	"net/http"

	"storefront-api/models"

	"github.com/gin-gonic/gin"
)

type SubmitReviewRequest struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (h *Handler) GetVendorReviews(c *gin.Context) {
	summary, err := h.Reviews.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SubmitReview stores a rating and comment for a vendor
func (h *Handler) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.Reviews.Submit(c.Request.Context(), models.Review{
		VendorID: c.Param("id"),
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Your review has been submitted!",
		"review":  review,
	})
}
