package receipts_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/application/commission"
	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/ledger"
	"github.com/jhoicas/caja-api/internal/application/receipts"
	"github.com/jhoicas/caja-api/internal/application/sales"
	"github.com/jhoicas/caja-api/internal/application/summary"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/internal/infrastructure/pdf"
	"github.com/jhoicas/caja-api/pkg/clock"
	"github.com/jhoicas/caja-api/pkg/logger"
)

type fixture struct {
	uc    *receipts.UseCase
	sales *sales.UseCase
	store *memory.Store
}

func newFixture() *fixture {
	store := memory.NewStore()
	clk := clock.Fixed(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	log := logger.Nop()

	commissions := commission.NewUseCase(memory.NewCommissionRepository(store), clk, log)
	salesUC := sales.NewUseCase(memory.NewSaleRepository(store), commissions, clk)
	summaryUC := summary.NewUseCase(memory.NewSaleRepository(store), memory.NewWithdrawalRepository(store), memory.NewBusinessConfigRepository(store), 366)
	customers := memory.NewCustomerRepository(store)
	movements := memory.NewAccountMovementRepository(store)
	ledgerUC := ledger.NewUseCase(customers, movements, memory.NewLedgerTxRunner(store), clk, log)

	return &fixture{
		uc:    receipts.NewUseCase(pdf.NewMarotoPDFGenerator(), salesUC, summaryUC, ledgerUC, memory.NewBusinessConfigRepository(store)),
		sales: salesUC,
		store: store,
	}
}

func TestSaleReceipt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	s, err := f.sales.Create(ctx, "u1", dto.CreateSaleRequest{Description: "Venta", Amount: decimal.NewFromInt(500), PaymentMethod: entity.PaymentMethodCash})
	require.NoError(t, err)

	out, err := f.uc.SaleReceipt(ctx, s.ID, "u1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = f.uc.SaleReceipt(ctx, s.ID, "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDailyClosure(t *testing.T) {
	out, err := newFixture().uc.DailyClosure(context.Background(), "2024-05-01", "u1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestCustomerStatement_NotFound(t *testing.T) {
	_, err := newFixture().uc.CustomerStatement(context.Background(), "nope", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
