package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaichu/lineage-calc/internal/game/jobchange"
)

// JobChangeHandler serves the job-change costing endpoints.
type JobChangeHandler struct {
	Engine *jobchange.Engine
	Logger *zap.Logger
}

// CostRequest is the JSON body for POST /api/jobchange/cost.
type CostRequest struct {
	Items       []jobchange.LineItem `json:"items"`
	HasDiscount bool                 `json:"hasDiscount"`
}

// CostedItem is one line item echoed back with its server-assigned id and
// recomputed coin cost. Caller-supplied costs are never trusted.
type CostedItem struct {
	jobchange.LineItem
	Cost int `json:"cost"`
}

// CostResponse is the full costing result.
type CostResponse struct {
	Items     []CostedItem         `json:"items"`
	Breakdown jobchange.Breakdown  `json:"breakdown"`
	Summary   []string             `json:"summary"`
	Warnings  []string             `json:"warnings"`
}

// PriceItemRequest is the JSON body for POST /api/jobchange/items/price.
type PriceItemRequest struct {
	jobchange.LineItem
}

// Schedule returns the active pricing tables.
func (h *JobChangeHandler) Schedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.Schedule())
}

// Cost validates and totals a basket. Validation errors return 400 with
// the full report; warnings are advisory and returned with the result.
func (h *JobChangeHandler) Cost(c *gin.Context) {
	var req CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := h.Engine.ValidateBasket(req.Items)
	if !report.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": report.Errors, "warnings": report.Warnings})
		return
	}

	breakdown, err := h.Engine.CostBasket(req.Items, req.HasDiscount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]CostedItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		cost, err := h.Engine.CostLineItem(item)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		items = append(items, CostedItem{LineItem: item, Cost: cost})
	}

	h.Logger.Debug("basket costed",
		zap.Int("items", len(req.Items)),
		zap.Int("grand_total", breakdown.GrandTotal),
		zap.Bool("discount", req.HasDiscount),
	)
	c.JSON(http.StatusOK, CostResponse{
		Items:     items,
		Breakdown: breakdown,
		Summary:   jobchange.Summary(breakdown),
		Warnings:  report.Warnings,
	})
}

// PriceItem prices a single line item without basket aggregation.
func (h *JobChangeHandler) PriceItem(c *gin.Context) {
	var req PriceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	cost, err := h.Engine.CostLineItem(req.LineItem)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	c.JSON(http.StatusOK, CostedItem{LineItem: req.LineItem, Cost: cost})
}
