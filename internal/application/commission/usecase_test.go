package commission_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/application/commission"
	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/pkg/clock"
	"github.com/jhoicas/caja-api/pkg/logger"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newUseCase(repo repository.CommissionRepository) *commission.UseCase {
	return commission.NewUseCase(repo, clock.Fixed(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)), logger.Nop())
}

// failingRepo simula un store caído.
type failingRepo struct {
	repository.CommissionRepository
}

func (failingRepo) FindActive(context.Context, repository.CommissionLookup) (*entity.CommissionConfig, error) {
	return nil, errors.New("store caído")
}

// failingBatchRepo no encuentra nada y falla al provisionar.
type failingBatchRepo struct {
	repository.CommissionRepository
}

func (failingBatchRepo) FindActive(context.Context, repository.CommissionLookup) (*entity.CommissionConfig, error) {
	return nil, nil
}

func (failingBatchRepo) CountByUser(context.Context, string) (int, error) {
	return 0, nil
}

func (failingBatchRepo) InsertMissing(context.Context, []*entity.CommissionConfig) error {
	return errors.New("batch rechazado")
}

// countingRepo cuenta los lotes de provisión recibidos.
type countingRepo struct {
	*memory.CommissionRepository
	batches int
}

func (r *countingRepo) InsertMissing(ctx context.Context, rows []*entity.CommissionConfig) error {
	r.batches++
	return r.CommissionRepository.InsertMissing(ctx, rows)
}

func findID(t *testing.T, list []*dto.CommissionResponse, method string) string {
	t.Helper()
	for _, c := range list {
		if c.PaymentMethod == method {
			return c.ID
		}
	}
	t.Fatalf("sin fila para %s", method)
	return ""
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculate
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_NewUserProvisionsDefaults(t *testing.T) {
	repo := memory.NewCommissionRepository(memory.NewStore())
	uc := newUseCase(repo)
	ctx := context.Background()

	got := uc.Calculate(ctx, "u1", entity.PaymentMethodCredit, d("1000"), strPtr("visa"), intPtr(12))
	assert.True(t, d("40").Equal(got), "got %s", got)

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 20)
	for _, c := range list {
		assert.True(t, c.IsActive)
	}
}

func TestCalculate_CashIsZero(t *testing.T) {
	uc := newUseCase(memory.NewCommissionRepository(memory.NewStore()))
	got := uc.Calculate(context.Background(), "u1", entity.PaymentMethodCash, d("500"), nil, nil)
	assert.True(t, got.IsZero())
}

func TestCalculate_UsesStoredRowWithFixedAmount(t *testing.T) {
	repo := memory.NewCommissionRepository(memory.NewStore())
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	var qrID string
	for _, c := range list {
		if c.PaymentMethod == entity.PaymentMethodQR {
			qrID = c.ID
		}
	}
	require.NotEmpty(t, qrID)

	pct, fixed := d("2"), d("10")
	_, err = uc.Update(ctx, qrID, "u1", dto.UpdateCommissionRequest{Percentage: &pct, FixedAmount: &fixed})
	require.NoError(t, err)

	got := uc.Calculate(ctx, "u1", entity.PaymentMethodQR, d("100"), nil, nil)
	assert.True(t, d("12").Equal(got), "got %s", got)
}

func TestCalculate_FailOpenOnStoreError(t *testing.T) {
	uc := newUseCase(failingRepo{})
	var got decimal.Decimal
	assert.NotPanics(t, func() {
		got = uc.Calculate(context.Background(), "u1", entity.PaymentMethodDebit, d("100"), nil, nil)
	})
	assert.True(t, got.IsZero())
}

func TestCalculate_FailOpenOnProvisioningError(t *testing.T) {
	uc := newUseCase(failingBatchRepo{})
	got := uc.Calculate(context.Background(), "u1", entity.PaymentMethodDebit, d("100"), nil, nil)
	assert.True(t, got.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Defaults / Update / Organized
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDefaults_RepeatDoesNotDuplicate(t *testing.T) {
	uc := newUseCase(memory.NewCommissionRepository(memory.NewStore()))
	ctx := context.Background()

	_, err := uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)
	_, err = uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

// Repetir la provisión no pisa porcentajes editados ni reactiva filas.
func TestCreateDefaults_RepeatKeepsEdits(t *testing.T) {
	uc := newUseCase(memory.NewCommissionRepository(memory.NewStore()))
	ctx := context.Background()

	rows, err := uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)
	qrID := findID(t, rows, entity.PaymentMethodQR)
	debitID := findID(t, rows, entity.PaymentMethodDebit)

	pct, off := d("9"), false
	_, err = uc.Update(ctx, qrID, "u1", dto.UpdateCommissionRequest{Percentage: &pct})
	require.NoError(t, err)
	_, err = uc.Update(ctx, debitID, "u1", dto.UpdateCommissionRequest{IsActive: &off})
	require.NoError(t, err)

	again, err := uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, again, 19)

	got := uc.Calculate(ctx, "u1", entity.PaymentMethodQR, d("100"), nil, nil)
	assert.True(t, d("9").Equal(got), "got %s", got)
}

// Una búsqueda sin fila activa responde con la tabla incorporada y no
// altera la configuración ya guardada del usuario.
func TestCalculate_FallbackKeepsUserConfig(t *testing.T) {
	repo := &countingRepo{CommissionRepository: memory.NewCommissionRepository(memory.NewStore())}
	uc := newUseCase(repo)
	ctx := context.Background()

	rows, err := uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, repo.batches)

	pct, off := d("9"), false
	_, err = uc.Update(ctx, findID(t, rows, entity.PaymentMethodQR), "u1", dto.UpdateCommissionRequest{Percentage: &pct})
	require.NoError(t, err)
	_, err = uc.Update(ctx, findID(t, rows, entity.PaymentMethodDebit), "u1", dto.UpdateCommissionRequest{IsActive: &off})
	require.NoError(t, err)

	// tarjeta_debito está inactiva: sale de la tabla incorporada (2%)
	got := uc.Calculate(ctx, "u1", entity.PaymentMethodDebit, d("100"), nil, nil)
	assert.True(t, d("2").Equal(got), "got %s", got)
	assert.Equal(t, 1, repo.batches, "un usuario con filas no se vuelve a provisionar")

	got = uc.Calculate(ctx, "u1", entity.PaymentMethodQR, d("100"), nil, nil)
	assert.True(t, d("9").Equal(got), "got %s", got)

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 19)
	for _, c := range list {
		assert.NotEqual(t, entity.PaymentMethodDebit, c.PaymentMethod)
	}
}

// Sin redondeo: amount * percentage / 100.
func TestCalculate_KeepsFullPrecision(t *testing.T) {
	uc := newUseCase(memory.NewCommissionRepository(memory.NewStore()))
	got := uc.Calculate(context.Background(), "u1", entity.PaymentMethodQR, d("10.01"), nil, nil)
	assert.True(t, d("0.12012").Equal(got), "got %s", got)
}

func TestUpdate_Errors(t *testing.T) {
	uc := newUseCase(memory.NewCommissionRepository(memory.NewStore()))
	ctx := context.Background()
	rows, err := uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)
	id := rows[0].ID

	_, err = uc.Update(ctx, id, "u1", dto.UpdateCommissionRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pct := d("5")
	_, err = uc.Update(ctx, "no-existe", "u1", dto.UpdateCommissionRequest{Percentage: &pct})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, id, "u2", dto.UpdateCommissionRequest{Percentage: &pct})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	bad := d("101")
	_, err = uc.Update(ctx, id, "u1", dto.UpdateCommissionRequest{Percentage: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Porcentaje hasta 4 decimales y monto fijo en centavos: lo mismo que guarda Postgres.
func TestUpdate_Scale(t *testing.T) {
	uc := newUseCase(memory.NewCommissionRepository(memory.NewStore()))
	ctx := context.Background()
	rows, err := uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)
	id := rows[0].ID

	tooFine := d("1.23456")
	_, err = uc.Update(ctx, id, "u1", dto.UpdateCommissionRequest{Percentage: &tooFine})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	fixedFine := d("0.005")
	_, err = uc.Update(ctx, id, "u1", dto.UpdateCommissionRequest{FixedAmount: &fixedFine})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pct := d("1.2345")
	up, err := uc.Update(ctx, id, "u1", dto.UpdateCommissionRequest{Percentage: &pct})
	require.NoError(t, err)
	assert.True(t, pct.Equal(up.Percentage))
}

func TestUpdate_DeactivateHidesRow(t *testing.T) {
	uc := newUseCase(memory.NewCommissionRepository(memory.NewStore()))
	ctx := context.Background()
	rows, err := uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)

	off := false
	up, err := uc.Update(ctx, rows[0].ID, "u1", dto.UpdateCommissionRequest{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, up.IsActive)

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 19)
}

func TestOrganized(t *testing.T) {
	uc := newUseCase(memory.NewCommissionRepository(memory.NewStore()))
	ctx := context.Background()

	empty, err := uc.Organized(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, empty.QR.IsZero())
	assert.Len(t, empty.TarjetaCredito, 4)
	assert.Empty(t, empty.TarjetaCredito["visa"])

	_, err = uc.CreateDefaults(ctx, "u1")
	require.NoError(t, err)

	org, err := uc.Organized(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, d("1.2").Equal(org.QR))
	assert.True(t, d("2").Equal(org.TarjetaDebito))
	assert.True(t, d("4").Equal(org.TarjetaCredito["visa"]["12"]))
	assert.True(t, d("5").Equal(org.TarjetaCredito["naranja"]["12"]))
	assert.Len(t, org.TarjetaCredito["tuya"], 4)
}
