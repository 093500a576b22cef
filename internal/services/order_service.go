package services

import (
	"fmt"
	"strings"
	"time"

	"canteen/internal/errs"
	"canteen/internal/logger"
	"canteen/internal/models"
	"canteen/internal/repository"
	"canteen/pkg/token"

	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(actor models.Identity, itemID uint, pickupTime, pickupAMPM string) (*models.Order, error)
	RecordPayment(actor models.Identity, orderID uint, method string) (*models.Order, error)
	CancelOrder(actor models.Identity, orderID uint) error
	UpdateStatus(actor models.Identity, orderID uint, status string) (*models.Order, error)
	GetOrder(actor models.Identity, orderID uint) (*models.Order, error)
	ListUserOrders(username string) ([]models.Order, error)
	ListAllOrders(actor models.Identity, statusFilter string) ([]models.Order, error)
	TotalSpent(username string) (float64, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
}

func NewOrderService(orderRepo repository.OrderRepository, menuRepo repository.MenuRepository) OrderService {
	return &orderService{orderRepo: orderRepo, menuRepo: menuRepo}
}

// PlaceOrder creates a new Pending/Unpaid order for the acting student,
// snapshotting the item's name and price so later menu edits leave placed
// orders untouched.
func (s *orderService) PlaceOrder(actor models.Identity, itemID uint, pickupTime, pickupAMPM string) (*models.Order, error) {
	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}

	if !IsAvailableAt(item, time.Now()) {
		return nil, fmt.Errorf("%q is not available at this time: %w", item.Name, errs.ErrItemUnavailable)
	}

	pickupTime = strings.TrimSpace(pickupTime)
	pickupAMPM = strings.TrimSpace(pickupAMPM)
	if pickupTime == "" || (pickupAMPM != "AM" && pickupAMPM != "PM") {
		return nil, fmt.Errorf("pickup time and AM/PM are required: %w", errs.ErrInvalidInput)
	}

	order := &models.Order{
		Username:      actor.Username,
		ItemName:      item.Name,
		TotalPrice:    item.Price,
		PickupTime:    pickupTime + " " + pickupAMPM,
		Status:        string(models.OrderPending),
		PaymentStatus: string(models.PaymentUnpaid),
		Token:         token.Generate(token.DefaultLength),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.L().Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.String("username", order.Username),
		zap.String("item_name", order.ItemName),
		zap.Float64("total_price", order.TotalPrice),
	)
	return order, nil
}

// RecordPayment runs the dummy payment step and marks the order Paid. The
// method label is recorded for display only and never validated against a
// real processor.
func (s *orderService) RecordPayment(actor models.Identity, orderID uint, method string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Username != actor.Username && !actor.IsAdmin() {
		return nil, fmt.Errorf("not your order: %w", errs.ErrForbidden)
	}

	order.PaymentStatus = string(models.PaymentPaid)
	order.PaymentMethod = strings.TrimSpace(method)
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	logger.L().Info("payment recorded",
		zap.Uint("order_id", order.ID),
		zap.String("method", order.PaymentMethod),
	)
	return order, nil
}

// CancelOrder lets the owning student cancel an order that is still
// Pending. Cancelled is terminal.
func (s *orderService) CancelOrder(actor models.Identity, orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}

	if order.Username != actor.Username {
		return fmt.Errorf("not your order: %w", errs.ErrForbidden)
	}
	if order.Status != string(models.OrderPending) {
		return fmt.Errorf("only pending orders can be cancelled: %w", errs.ErrInvalidState)
	}

	order.Status = string(models.OrderCancelled)
	if err := s.orderRepo.Update(order); err != nil {
		return err
	}

	logger.L().Info("order cancelled",
		zap.Uint("order_id", order.ID),
		zap.String("username", order.Username),
	)
	return nil
}

// UpdateStatus is the admin fulfilment action. Any known status may be
// assigned from any other; no transition table is enforced.
func (s *orderService) UpdateStatus(actor models.Identity, orderID uint, status string) (*models.Order, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("only admins can update order status: %w", errs.ErrForbidden)
	}
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("unknown status %q: %w", status, errs.ErrInvalidInput)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	logger.L().Info("order status updated",
		zap.Uint("order_id", order.ID),
		zap.String("status", order.Status),
	)
	return order, nil
}

// GetOrder returns a single order for the receipt view; only the owner or
// an admin may read it.
func (s *orderService) GetOrder(actor models.Identity, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Username != actor.Username && !actor.IsAdmin() {
		return nil, fmt.Errorf("not your order: %w", errs.ErrForbidden)
	}
	return order, nil
}

// ListUserOrders returns a student's orders, newest first.
func (s *orderService) ListUserOrders(username string) ([]models.Order, error) {
	return s.orderRepo.GetByUsername(username)
}

// ListAllOrders is the admin listing, optionally filtered by status.
func (s *orderService) ListAllOrders(actor models.Identity, statusFilter string) ([]models.Order, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("only admins can list all orders: %w", errs.ErrForbidden)
	}
	if statusFilter != "" {
		return s.orderRepo.GetByStatus(statusFilter)
	}
	return s.orderRepo.GetAll()
}

// TotalSpent sums the snapshotted prices of a user's Paid orders.
func (s *orderService) TotalSpent(username string) (float64, error) {
	orders, err := s.orderRepo.GetByUsername(username)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, o := range orders {
		if o.PaymentStatus == string(models.PaymentPaid) {
			total += o.TotalPrice
		}
	}
	return total, nil
}
