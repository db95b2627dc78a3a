package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/inventory"
)

func (h *Handler) ListInventoryLogs(c *gin.Context) {
	entries, err := h.inventory.ListLogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		items = append(items, gin.H{
			"id":             e.ID,
			"product_id":     e.ProductID,
			"product_name":   e.ProductName,
			"change_type":    e.ChangeType,
			"quantity":       e.Quantity,
			"previous_stock": e.PreviousStock,
			"new_stock":      e.NewStock,
			"remarks":        e.Remarks,
			"created_at":     e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"logs": items})
}

func (h *Handler) AdjustStock(c *gin.Context) {
	var req struct {
		ProductID  uint   `json:"product_id"`
		ChangeType string `json:"change_type"`
		Quantity   int    `json:"quantity"`
		Remarks    string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.inventory.Adjust(c.Request.Context(), inventory.AdjustInput{
		ProductID:  req.ProductID,
		ChangeType: inventory.ChangeType(req.ChangeType),
		Quantity:   req.Quantity,
		Remarks:    req.Remarks,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             entry.ID,
		"product_id":     entry.ProductID,
		"change_type":    entry.ChangeType,
		"quantity":       entry.Quantity,
		"previous_stock": entry.PreviousStock,
		"new_stock":      entry.NewStock,
	})
}
