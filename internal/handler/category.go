package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/utils"
)

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		items = append(items, gin.H{
			"id":             cat.ID,
			"name":           cat.Name,
			"total_products": cat.TotalProducts,
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": items})
}

func (h *Handler) AddCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cat, err := h.categories.Add(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": cat.ID, "name": cat.Name})
}

func (h *Handler) RenameCategory(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.categories.Rename(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category renamed"})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
