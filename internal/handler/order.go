package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/middleware"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/order"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/utils"
)

func orderJSON(o *order.Order) gin.H {
	lines := make([]gin.H, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, gin.H{
			"product_id":   l.ProductID,
			"product_name": l.ProductName,
			"quantity":     l.Quantity,
			"price":        l.Price.StringFixed(2),
		})
	}

	body := gin.H{
		"id":             o.ID,
		"payment_method": o.PaymentMethod,
		"payment_proof":  o.PaymentProof,
		"status":         o.Status,
		"decline_reason": o.DeclineReason,
		"created_at":     o.CreatedAt,
		"items":          lines,
		"total":          o.Total().StringFixed(2),
	}
	if o.CustomerName != "" {
		body["customer_name"] = o.CustomerName
	}
	return body
}

// Checkout converts the selected cart lines into an order. The form carries
// selected_items (repeated product ids), payment_method, optional per-line
// quantity_<id> overrides and an optional payment_proof file.
func (h *Handler) Checkout(c *gin.Context) {
	userID, _ := h.currentUserID(c)

	input := order.CheckoutInput{
		UserID:        userID,
		PaymentMethod: c.PostForm("payment_method"),
		Overrides:     map[uint]int{},
	}

	for _, raw := range c.PostFormArray("selected_items") {
		id, err := utils.ToUint(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id in selection"})
			return
		}
		input.SelectedIDs = append(input.SelectedIDs, id)

		if qtyRaw := c.PostForm("quantity_" + raw); qtyRaw != "" {
			if qty, err := strconv.Atoi(qtyRaw); err == nil {
				input.Overrides[id] = qty
			}
		}
	}

	// Validate the selection before touching the blob store so a rejected
	// checkout leaves no orphaned proof upload behind.
	if len(input.SelectedIDs) == 0 {
		respondError(c, order.ErrEmptySelection)
		return
	}

	if file, err := c.FormFile("payment_proof"); err == nil && file.Filename != "" {
		src, err := file.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		defer src.Close()

		ref, err := h.proofs.Save(file.Filename, src)
		if err != nil {
			respondError(c, err)
			return
		}
		input.PaymentProof = utils.StrPtr(ref)
	}

	placed, err := h.orders.Checkout(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderJSON(placed))
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	userID, _ := h.currentUserID(c)

	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.orders.ListMine(c.Request.Context(), userID, status, page)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Orders))
	for _, o := range result.Orders {
		items = append(items, orderJSON(o))
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": items,
		"counts": gin.H{
			"processing": result.Counts.Processing,
			"shipped":    result.Counts.Shipped,
			"delivered":  result.Counts.Delivered,
			"declined":   result.Counts.Declined,
		},
		"page":        result.Page,
		"total_pages": result.TotalPages,
	})
}

func (h *Handler) GetOrder(c *gin.Context) {
	userID, _ := h.currentUserID(c)

	orderID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	isAdmin := utils.GetUserRoleFromContext(c.Request.Context()) == middleware.RoleAdmin

	o, err := h.orders.Detail(c.Request.Context(), userID, orderID, isAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderJSON(o))
}

func (h *Handler) ListAdminOrders(c *gin.Context) {
	filter := order.AdminFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	orders, err := h.orders.AdminList(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		items = append(items, orderJSON(o))
	}

	c.JSON(http.StatusOK, gin.H{"orders": items})
}

func (h *Handler) ApproveOrder(c *gin.Context) {
	orderID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := h.orders.Approve(c.Request.Context(), orderID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order approved"})
}

func (h *Handler) DeclineOrder(c *gin.Context) {
	orderID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.orders.Decline(c.Request.Context(), orderID, req.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order declined"})
}

// UpdateOrderStatus is the unguarded admin path for moving an order to any
// status, used for the Shipped and Delivered progression.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.orders.ForceStatus(c.Request.Context(), orderID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}
