package handlers

import (
	"net/http"

	"storefront-api/models"
	"storefront-api/remote"
	"storefront-api/search"

	"github.com/gin-gonic/gin"
)

type SearchRequest struct {
	Text     *string               `json:"text"`
	Category *string               `json:"category"`
	Filters  *models.SearchFilters `json:"filters"`
}

type ToggleFilterRequest struct {
	Filter string  `json:"filter" binding:"required,oneof=rating veg_only price_range"`
	Rating float64 `json:"rating"`
	Range  string  `json:"price_range"`
}

// SearchCatalogue updates whichever parts of the search state the body carries,
// then searches only if the composed query is active
func (h *Handler) SearchCatalogue(c *gin.Context) {
	var req SearchRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Filters != nil {
		if err := h.Search.ApplyFilters(*req.Filters); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.Text != nil {
		h.Search.SetText(*req.Text)
	}
	if req.Category != nil {
		h.Search.SelectCategory(*req.Category)
	}

	state := h.Search.State()
	q := h.Search.Query()
	if q == nil {
		c.JSON(http.StatusOK, gin.H{
			"searched": false,
			"state":    state,
			"results":  models.SearchResults{Vendors: []models.Vendor{}, Items: []models.MenuItem{}},
			"class":    search.ClassEmpty,
		})
		return
	}

	resp, err := h.Data.Search(c.Request.Context(), *q)
	if err := remote.Check("search", resp.Success, resp.Error, err); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"searched": true,
		"query":    q,
		"state":    state,
		"results":  resp.Results,
		"class":    search.Classify(resp.Results),
	})
}

// GetSearchFilters returns the current state and the facet options
func (h *Handler) GetSearchFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state": h.Search.State(),
		"options": gin.H{
			"ratings":      []models.Rating{models.Rating40, models.Rating45},
			"price_ranges": []models.PriceRange{models.PriceUnder100, models.Price100To300, models.PriceOver300},
			"categories":   []string{search.CategoryAll, "tea", "coffee", "snacks", "combos", "desserts"},
		},
	})
}

// ToggleFilter selects a facet value, or clears it if already selected
func (h *Handler) ToggleFilter(c *gin.Context) {
	var req ToggleFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var err error
	switch req.Filter {
	case "rating":
		err = h.Search.ToggleRating(models.Rating(req.Rating))
	case "price_range":
		err = h.Search.TogglePriceRange(models.PriceRange(req.Range))
	case "veg_only":
		h.Search.ToggleVegOnly()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": h.Search.State()})
}

func (h *Handler) RemoveFilter(c *gin.Context) {
	if err := h.Search.RemoveFilter(c.Param("key")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": h.Search.State()})
}

func (h *Handler) ClearFilters(c *gin.Context) {
	h.Search.ClearFilters()
	c.JSON(http.StatusOK, gin.H{"state": h.Search.State()})
}
