package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/utils"
)

func (h *Handler) currentUserID(c *gin.Context) (uint, bool) {
	return utils.GetUserIDFromContext(c.Request.Context())
}

func (h *Handler) GetCart(c *gin.Context) {
	userID, _ := h.currentUserID(c)

	view, err := h.carts.ListItems(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, gin.H{
			"product_id":   item.ProductID,
			"product_name": item.ProductName,
			"price":        item.Price.StringFixed(2),
			"stock":        item.Stock,
			"quantity":     item.Quantity,
			"subtotal":     item.Subtotal.StringFixed(2),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": view.Total.StringFixed(2),
	})
}

func (h *Handler) AddToCart(c *gin.Context) {
	userID, _ := h.currentUserID(c)

	productID, err := utils.ToUint(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.carts.AddItem(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "added to cart"})
}

func (h *Handler) SetCartQuantity(c *gin.Context) {
	userID, _ := h.currentUserID(c)

	productID, err := utils.ToUint(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.carts.SetQuantity(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart updated"})
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	userID, _ := h.currentUserID(c)

	productID, err := utils.ToUint(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed from cart"})
}
