package services

import (
	"time"

	"canteen/internal/models"
	"canteen/internal/redis"

	"github.com/stretchr/testify/mock"
)

// --- Repository mocks shared by the service tests ---

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(item *models.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) GetByID(id uint) (*models.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetAllByName() ([]models.MenuItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Update(item *models.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUsername(username string) ([]models.Order, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStatus(status string) ([]models.Order, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(feedback *models.Feedback) error {
	args := m.Called(feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) GetByItemID(itemID uint) ([]models.Feedback, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(role string) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) SetSession(sessionID string, data *redis.SessionData, ttl time.Duration) error {
	args := m.Called(sessionID, data, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteSession(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

// --- small test helpers ---

func strPtr(s string) *string {
	return &s
}

func menuItem(id uint, name string, price float64, available bool, from, to *string) *models.MenuItem {
	return &models.MenuItem{
		ID:            id,
		Name:          name,
		Price:         price,
		Available:     available,
		AvailableFrom: from,
		AvailableTo:   to,
	}
}

func student(name string) models.Identity {
	return models.Identity{Username: name, Role: string(models.RoleUser)}
}

func admin() models.Identity {
	return models.Identity{Username: "canteen_admin", Role: string(models.RoleAdmin)}
}
