package repository

import (
	"testing"
	"time"

	"canteen/internal/errs"
	"canteen/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	order := &models.Order{
		Username:      "alice",
		ItemName:      "Samosa",
		TotalPrice:    15.0,
		PickupTime:    "12:30 PM",
		Status:        string(models.OrderPending),
		PaymentStatus: string(models.PaymentUnpaid),
		Token:         "A1B2C3",
	}
	require.NoError(t, repo.Create(order))
	assert.Equal(t, uint(42), order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetByUsername(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "item_name", "total_price", "pickup_time", "status", "payment_status", "token", "created_at"}).
		AddRow(2, "alice", "Dosa", 40.0, "09:00 AM", "Pending", "Unpaid", "ZZZZZZ", now).
		AddRow(1, "alice", "Samosa", 15.0, "12:30 PM", "Ready", "Paid", "A1B2C3", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE username = \$1 ORDER BY created_at desc`).
		WithArgs("alice").
		WillReturnRows(rows)

	orders, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].ID)
	assert.Equal(t, "Samosa", orders[1].ItemName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetByStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "status"}).
		AddRow(5, "bob", "Ready")

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE status = \$1 ORDER BY created_at desc`).
		WithArgs("Ready").
		WillReturnRows(rows)

	orders, err := repo.GetByStatus("Ready")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Ready", orders[0].Status)
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE "orders"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(404)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestOrderRepository_Update(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order := &models.Order{ID: 7, Username: "alice", Status: string(models.OrderCancelled)}
	require.NoError(t, repo.Update(order))
	assert.NoError(t, mock.ExpectationsWereMet())
}
