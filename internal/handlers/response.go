package handlers

import (
	"errors"
	"net/http"
	"time"

	"canteen/internal/errs"
	"canteen/internal/logger"
	"canteen/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderView is the JSON shape handed to polling clients. Username is only
// populated in admin listings.
type OrderView struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username,omitempty"`
	ItemName      string    `json:"item_name"`
	TotalPrice    float64   `json:"total_price"`
	PickupTime    string    `json:"pickup_time"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Token         string    `json:"token"`
	CreatedAt     time.Time `json:"created_at"`
}

func newOrderView(o *models.Order, includeUsername bool) OrderView {
	view := OrderView{
		ID:            o.ID,
		ItemName:      o.ItemName,
		TotalPrice:    o.TotalPrice,
		PickupTime:    o.PickupTime,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Token:         o.Token,
		CreatedAt:     o.CreatedAt,
	}
	if includeUsername {
		view.Username = o.Username
	}
	return view
}

func newOrderViews(orders []models.Order, includeUsername bool) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, newOrderView(&orders[i], includeUsername))
	}
	return views
}

// respondError maps core error kinds onto HTTP statuses. Unrecognized
// errors are logged and reported as a retryable internal failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrItemUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.FromCtx(c.Request.Context()).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please retry"})
	}
}
