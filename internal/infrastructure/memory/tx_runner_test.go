package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
)

func TestLedgerTxRunner_RollbackOnError(t *testing.T) {
	store := memory.NewStore()
	customers := memory.NewCustomerRepository(store)
	movements := memory.NewAccountMovementRepository(store)
	ctx := context.Background()

	require.NoError(t, customers.Create(ctx, &entity.Customer{ID: "c1", UserID: "u", Name: "Ana"}))
	require.NoError(t, movements.Create(ctx, &entity.AccountMovement{ID: "m1", CustomerID: "c1", UserID: "u", Date: "2024-01-01", Amount: decimal.NewFromInt(10), Balance: decimal.NewFromInt(10)}))

	boom := errors.New("boom")
	err := memory.NewLedgerTxRunner(store).Run(ctx, func(cs repository.CustomerRepository, ms repository.AccountMovementRepository) error {
		require.NoError(t, cs.Create(ctx, &entity.Customer{ID: "c2", UserID: "u", Name: "Beto"}))
		require.NoError(t, ms.Create(ctx, &entity.AccountMovement{ID: "m2", CustomerID: "c2", UserID: "u", Date: "2024-01-02"}))
		m1, err := ms.GetByID(ctx, "m1")
		require.NoError(t, err)
		m1.Balance = decimal.NewFromInt(999)
		require.NoError(t, ms.Update(ctx, m1))
		require.NoError(t, cs.Delete(ctx, "c1"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	c1, err := customers.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.NotNil(t, c1)
	c2, err := customers.GetByID(ctx, "c2")
	require.NoError(t, err)
	assert.Nil(t, c2)
	m2, err := movements.GetByID(ctx, "m2")
	require.NoError(t, err)
	assert.Nil(t, m2)
	m1, err := movements.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(m1.Balance))
}

func TestLedgerTxRunner_CommitOnSuccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := memory.NewLedgerTxRunner(store).Run(ctx, func(cs repository.CustomerRepository, _ repository.AccountMovementRepository) error {
		return cs.Create(ctx, &entity.Customer{ID: "c1", UserID: "u", Name: "Ana"})
	})
	require.NoError(t, err)

	c, err := memory.NewCustomerRepository(store).GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestAccountMovementRepository_ReturnsCopies(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewAccountMovementRepository(store)
	ctx := context.Background()

	m := &entity.AccountMovement{ID: "m1", UserID: "u", CustomerID: "c", Date: "2024-01-01", Balance: decimal.NewFromInt(5), CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, m))
	assert.Equal(t, int64(1), m.Seq)

	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	got.Balance = decimal.NewFromInt(1000)

	again, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(again.Balance))
}

func TestCommissionRepository_FindActiveNarrowing(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewCommissionRepository(store)
	ctx := context.Background()

	visa, mc := "visa", "mastercard"
	three := 3
	require.NoError(t, repo.InsertMissing(ctx, []*entity.CommissionConfig{
		{ID: "a", UserID: "u", PaymentMethod: entity.PaymentMethodCredit, CardBrand: &mc, Installments: &three, Percentage: decimal.NewFromInt(5), IsActive: true},
		{ID: "b", UserID: "u", PaymentMethod: entity.PaymentMethodCredit, CardBrand: &visa, Installments: &three, Percentage: decimal.NewFromInt(3), IsActive: true},
		{ID: "c", UserID: "u", PaymentMethod: entity.PaymentMethodQR, Percentage: decimal.NewFromInt(1), IsActive: false},
	}))

	got, err := repo.FindActive(ctx, repository.CommissionLookup{UserID: "u", PaymentMethod: entity.PaymentMethodCredit, CardBrand: &visa, Installments: &three})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)

	got, err = repo.FindActive(ctx, repository.CommissionLookup{UserID: "u", PaymentMethod: entity.PaymentMethodQR})
	require.NoError(t, err)
	assert.Nil(t, got, "las filas inactivas no cuentan")
}

func TestCommissionRepository_InsertMissingKeepsExisting(t *testing.T) {
	repo := memory.NewCommissionRepository(memory.NewStore())
	ctx := context.Background()

	require.NoError(t, repo.InsertMissing(ctx, []*entity.CommissionConfig{
		{ID: "qr", UserID: "u", PaymentMethod: entity.PaymentMethodQR, Percentage: decimal.NewFromInt(9), IsActive: false},
	}))
	require.NoError(t, repo.InsertMissing(ctx, []*entity.CommissionConfig{
		{ID: "qr", UserID: "u", PaymentMethod: entity.PaymentMethodQR, Percentage: decimal.RequireFromString("1.2"), IsActive: true},
		{ID: "cash", UserID: "u", PaymentMethod: entity.PaymentMethodCash, Percentage: decimal.Zero, IsActive: true},
	}))

	got, err := repo.GetByID(ctx, "qr")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.NewFromInt(9).Equal(got.Percentage))
	assert.False(t, got.IsActive)

	n, err := repo.CountByUser(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountByUser(ctx, "otro")
	require.NoError(t, err)
	assert.Zero(t, n)
}
