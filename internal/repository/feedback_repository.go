package repository

import (
	"canteen/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	GetByItemID(itemID uint) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) GetByItemID(itemID uint) ([]models.Feedback, error) {
	var entries []models.Feedback
	err := r.db.Where("item_id = ?", itemID).Order("created_at desc").Find(&entries).Error
	return entries, err
}
