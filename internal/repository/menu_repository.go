package repository

import (
	"errors"
	"fmt"

	"canteen/internal/errs"
	"canteen/internal/models"

	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetAllByName() ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Count() (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", id, errs.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetAllByName() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("name").Find(&items).Error
	return items, err
}

func (r *menuRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.MenuItem{}).Count(&count).Error
	return count, err
}
