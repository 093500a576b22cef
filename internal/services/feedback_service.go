package services

import (
	"fmt"
	"math"

	"canteen/internal/errs"
	"canteen/internal/logger"
	"canteen/internal/models"
	"canteen/internal/repository"

	"go.uber.org/zap"
)

type FeedbackService interface {
	SubmitFeedback(actor models.Identity, itemID uint, rating int, comment string) (*models.Feedback, error)
	AverageRating(itemID uint) (*float64, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	menuRepo     repository.MenuRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, menuRepo repository.MenuRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo, menuRepo: menuRepo}
}

// SubmitFeedback appends a new feedback entry. Multiple ratings from the
// same user for the same item are allowed and all counted; users are not
// required to have ordered the item.
func (s *feedbackService) SubmitFeedback(actor models.Identity, itemID uint, rating int, comment string) (*models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", errs.ErrInvalidInput)
	}

	if _, err := s.menuRepo.GetByID(itemID); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		ItemID:   itemID,
		Username: actor.Username,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}

	logger.L().Info("feedback submitted",
		zap.Uint("item_id", itemID),
		zap.String("username", actor.Username),
		zap.Int("rating", rating),
	)
	return feedback, nil
}

// AverageRating returns the mean rating for an item rounded to two decimal
// places, or nil when the item has no feedback yet.
func (s *feedbackService) AverageRating(itemID uint) (*float64, error) {
	entries, err := s.feedbackRepo.GetByItemID(itemID)
	if err != nil {
		return nil, err
	}
	return averageRating(entries), nil
}

func averageRating(entries []models.Feedback) *float64 {
	if len(entries) == 0 {
		return nil
	}
	sum := 0
	for _, e := range entries {
		sum += e.Rating
	}
	avg := math.Round(float64(sum)/float64(len(entries))*100) / 100
	return &avg
}
