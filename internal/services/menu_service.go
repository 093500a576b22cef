package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"canteen/internal/errs"
	"canteen/internal/logger"
	"canteen/internal/models"
	"canteen/internal/repository"

	"go.uber.org/zap"
)

// MenuEntry is a menu item annotated with its current availability and
// average rating. The annotation is computed per request, never stored.
type MenuEntry struct {
	models.MenuItem
	AvailableNow bool     `json:"available_now"`
	AvgRating    *float64 `json:"avg_rating"`
}

type MenuService interface {
	ListMenu(now time.Time) ([]MenuEntry, error)
	GetItem(id uint) (*models.MenuItem, error)
	AddItem(actor models.Identity, name, price, availableFrom, availableTo string) (*models.MenuItem, error)
	ToggleAvailability(actor models.Identity, id uint) (*models.MenuItem, error)
}

type menuService struct {
	menuRepo     repository.MenuRepository
	feedbackRepo repository.FeedbackRepository
}

func NewMenuService(menuRepo repository.MenuRepository, feedbackRepo repository.FeedbackRepository) MenuService {
	return &menuService{menuRepo: menuRepo, feedbackRepo: feedbackRepo}
}

// ListMenu returns all items ordered by name. An empty catalog yields an
// empty list, not an error.
func (s *menuService) ListMenu(now time.Time) ([]MenuEntry, error) {
	items, err := s.menuRepo.GetAllByName()
	if err != nil {
		return nil, err
	}

	entries := make([]MenuEntry, 0, len(items))
	for _, item := range items {
		feedback, err := s.feedbackRepo.GetByItemID(item.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, MenuEntry{
			MenuItem:     item,
			AvailableNow: IsAvailableAt(&item, now),
			AvgRating:    averageRating(feedback),
		})
	}
	return entries, nil
}

func (s *menuService) GetItem(id uint) (*models.MenuItem, error) {
	return s.menuRepo.GetByID(id)
}

// AddItem creates a menu item. Price arrives as the raw form value and must
// parse to a positive number. Window bounds are optional but must be valid
// HH:MM strings when given.
func (s *menuService) AddItem(actor models.Identity, name, price, availableFrom, availableTo string) (*models.MenuItem, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("only admins can add menu items: %w", errs.ErrForbidden)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", errs.ErrInvalidInput)
	}

	priceVal, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || priceVal <= 0 {
		return nil, fmt.Errorf("price must be a positive number: %w", errs.ErrInvalidInput)
	}

	from, err := normalizeClock(availableFrom)
	if err != nil {
		return nil, err
	}
	to, err := normalizeClock(availableTo)
	if err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Name:          name,
		Price:         priceVal,
		Available:     true,
		AvailableFrom: from,
		AvailableTo:   to,
	}
	if err := s.menuRepo.Create(item); err != nil {
		return nil, err
	}

	logger.L().Info("menu item added",
		zap.Uint("item_id", item.ID),
		zap.String("name", item.Name),
		zap.Float64("price", item.Price),
	)
	return item, nil
}

// ToggleAvailability flips the admin-controlled master switch.
func (s *menuService) ToggleAvailability(actor models.Identity, id uint) (*models.MenuItem, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("only admins can toggle menu items: %w", errs.ErrForbidden)
	}

	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	item.Available = !item.Available
	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}

	logger.L().Info("menu item toggled",
		zap.Uint("item_id", item.ID),
		zap.Bool("available", item.Available),
	)
	return item, nil
}

// normalizeClock validates an optional HH:MM form value, mapping the empty
// string to nil.
func normalizeClock(value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if _, err := time.Parse(clockLayout, value); err != nil {
		return nil, fmt.Errorf("time must be HH:MM, got %q: %w", value, errs.ErrInvalidInput)
	}
	return &value, nil
}
