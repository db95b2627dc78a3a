package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/cart"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/category"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/inventory"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/order"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/product"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/sales"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/storage"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/user"
)

// respondError maps service errors onto HTTP statuses. Anything unmapped is
// an internal error and gets logged with its cause.
func respondError(c *gin.Context, err error) {
	var stockErr *order.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":      stockErr.Error(),
			"product_id": stockErr.ProductID,
			"available":  stockErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, order.ErrEmptySelection),
		errors.Is(err, order.ErrNothingToCheckout),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrMissingProof),
		errors.Is(err, order.ErrMissingReason),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, product.ErrInvalidProduct),
		errors.Is(err, category.ErrEmptyName),
		errors.Is(err, inventory.ErrInvalidChangeType),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, sales.ErrInvalidGranularity),
		errors.Is(err, storage.ErrEmptyFilename),
		errors.Is(err, storage.ErrUnsupportedType),
		errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrEmptyPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, inventory.ErrProductNotFound),
		errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, order.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, category.ErrCategoryInUse),
		errors.Is(err, product.ErrProductReferenced):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, order.ErrTxConflict),
		errors.Is(err, inventory.ErrTxConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": true})

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
