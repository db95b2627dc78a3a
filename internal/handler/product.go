package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/product"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/utils"
)

func productJSON(p *product.Product) gin.H {
	return gin.H{
		"id":            p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"price":         p.Price.StringFixed(2),
		"stock":         p.Stock,
		"stock_status":  p.StockStatus(),
		"condition":     p.Condition,
		"brand":         p.Brand,
		"category_id":   p.CategoryID,
		"category_name": p.CategoryName,
		"image":         p.Image,
	}
}

// ListProducts serves the catalog with the full filter set: search,
// category, condition, brand, stock_status and page.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := product.Filter{
		Search:      c.Query("search"),
		Condition:   c.Query("condition"),
		Brand:       c.Query("brand"),
		StockStatus: c.Query("stock_status"),
	}
	if raw := c.Query("category"); raw != "" {
		if id, err := utils.ToUint(raw); err == nil {
			filter.CategoryID = id
		}
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.products.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Products))
	for _, p := range result.Products {
		items = append(items, productJSON(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"products":    items,
		"total":       result.Total,
		"page":        result.Page,
		"total_pages": result.TotalPages,
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, productJSON(p))
}

func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.products.Brands(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// parseProductForm reads the shared multipart fields of create and update.
func (h *Handler) parseProductForm(c *gin.Context) (product.CreateParams, error) {
	var params product.CreateParams

	params.Name = c.PostForm("name")
	params.Description = c.PostForm("description")
	params.Condition = c.PostForm("condition")

	price, err := decimal.NewFromString(c.DefaultPostForm("price", "0"))
	if err != nil {
		return params, fmt.Errorf("%w: bad price", product.ErrInvalidProduct)
	}
	params.Price = price

	params.Stock, _ = strconv.Atoi(c.DefaultPostForm("stock", "0"))

	if raw := c.PostForm("category_id"); raw != "" {
		id, err := utils.ToUint(raw)
		if err != nil {
			return params, fmt.Errorf("%w: bad category id", product.ErrInvalidProduct)
		}
		params.CategoryID = id
	}

	if brand := c.PostForm("brand"); brand != "" {
		params.Brand = utils.StrPtr(brand)
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			return params, err
		}
		defer src.Close()

		ref, err := h.images.Save(file.Filename, src)
		if err != nil {
			return params, err
		}
		params.Image = utils.StrPtr(ref)
	}

	return params, nil
}

func (h *Handler) CreateProduct(c *gin.Context) {
	params, err := h.parseProductForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := h.products.Create(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, productJSON(p))
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	params, err := h.parseProductForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	update := product.UpdateParams{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Stock:       params.Stock,
		Condition:   params.Condition,
		Brand:       params.Brand,
		CategoryID:  params.CategoryID,
		Image:       params.Image,
	}

	if err := h.products.Update(c.Request.Context(), id, update); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
