package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/ledger"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/pkg/clock"
	"github.com/jhoicas/caja-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	userA = "user-a"
	userB = "user-b"
)

type fixture struct {
	uc        *ledger.UseCase
	customers *memory.CustomerRepository
	movements *memory.AccountMovementRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	customers := memory.NewCustomerRepository(store)
	movements := memory.NewAccountMovementRepository(store)
	clk := clock.Fixed(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	uc := ledger.NewUseCase(customers, movements, memory.NewLedgerTxRunner(store), clk, logger.Nop())
	return &fixture{uc: uc, customers: customers, movements: movements}
}

func (f *fixture) customer(t *testing.T, id, userID, name string) {
	t.Helper()
	require.NoError(t, f.customers.Create(context.Background(), &entity.Customer{ID: id, UserID: userID, Name: name}))
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (f *fixture) create(t *testing.T, customerID, typ, amount, date string) *dto.MovementResponse {
	t.Helper()
	m, err := f.uc.Create(context.Background(), userA, dto.CreateMovementRequest{
		CustomerID:  customerID,
		Description: "mov",
		Amount:      d(amount),
		Type:        typ,
		Date:        date,
	})
	require.NoError(t, err)
	return m
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo acumulado
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_BalanceIsSumOfDeltas(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	deltas := []struct{ typ, amount string }{
		{entity.MovementTypeSale, "100"},
		{entity.MovementTypePayment, "-30.5"},
		{entity.MovementTypeSale, "12.25"},
		{entity.MovementTypeAdjustment, "-1.75"},
		{entity.MovementTypeSale, "20"},
	}
	sum := decimal.Zero
	for _, dl := range deltas {
		m := f.create(t, "c1", dl.typ, dl.amount, "")
		sum = sum.Add(d(dl.amount))
		assert.True(t, sum.Equal(m.Balance))

		bal, err := f.uc.Balance(ctx, "c1", userA)
		require.NoError(t, err)
		assert.True(t, sum.Equal(bal))
	}
	assertDec(t, "100", sum)
}

func TestCreate_AnaScenario(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "ana", userA, "Ana")

	m1 := f.create(t, "ana", entity.MovementTypeSale, "100", "")
	assertDec(t, "100", m1.Balance)
	m2 := f.create(t, "ana", entity.MovementTypePayment, "-40", "")
	assertDec(t, "60", m2.Balance)

	acc, err := f.uc.Account(context.Background(), "ana", userA)
	require.NoError(t, err)
	assertDec(t, "60", acc.CurrentBalance)
	assertDec(t, "100", acc.TotalSales)
	assertDec(t, "40", acc.TotalPayments)
	assert.Len(t, acc.Movements, 2)
	assert.Equal(t, "Ana", acc.Customer.Name)
}

func TestCreate_DefaultsDateAndSnapshotsName(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")

	m := f.create(t, "c1", entity.MovementTypeSale, "10", "")
	assert.Equal(t, "2024-05-10", m.Date)
	assert.Equal(t, "Ana", m.CustomerName)
}

func TestCreate_BlankCodeIsAbsent(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	blank := "   "
	m, err := f.uc.Create(ctx, userA, dto.CreateMovementRequest{CustomerID: "c1", Description: "x", Amount: d("5"), Type: entity.MovementTypeSale, Code: &blank})
	require.NoError(t, err)
	assert.Nil(t, m.Code)

	code := " ART-1"
	m, err = f.uc.Create(ctx, userA, dto.CreateMovementRequest{CustomerID: "c1", Description: "x", Amount: d("5"), Type: entity.MovementTypeSale, Code: &code})
	require.NoError(t, err)
	require.NotNil(t, m.Code)
	assert.Equal(t, " ART-1", *m.Code)
}

func TestCreate_SignMustMatchType(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	cases := []struct{ typ, amount string }{
		{entity.MovementTypeSale, "-10"},
		{entity.MovementTypeSale, "0"},
		{entity.MovementTypePayment, "10"},
		{entity.MovementTypeAdjustment, "0"},
		{"refund", "10"},
	}
	for _, c := range cases {
		_, err := f.uc.Create(ctx, userA, dto.CreateMovementRequest{CustomerID: "c1", Description: "x", Amount: d(c.amount), Type: c.typ})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s %s", c.typ, c.amount)
	}
}

func TestCreate_CustomerOfOtherTenant(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userB, "Ajeno")

	_, err := f.uc.Create(context.Background(), userA, dto.CreateMovementRequest{CustomerID: "c1", Description: "x", Amount: d("5"), Type: entity.MovementTypeSale})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Create(context.Background(), userA, dto.CreateMovementRequest{CustomerID: "nope", Description: "x", Amount: d("5"), Type: entity.MovementTypeSale})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ConcurrentNoLostUpdates(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Create(ctx, userA, dto.CreateMovementRequest{CustomerID: "c1", Description: "x", Amount: d("1"), Type: entity.MovementTypeSale})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	bal, err := f.uc.Balance(ctx, "c1", userA)
	require.NoError(t, err)
	assertDec(t, "50", bal)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestList_NewestFirstAndHeadIsBalance(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	f.create(t, "c1", entity.MovementTypeSale, "10", "2024-05-01")
	f.create(t, "c1", entity.MovementTypeSale, "20", "2024-05-03")
	f.create(t, "c1", entity.MovementTypeSale, "30", "2024-05-03")
	f.create(t, "c1", entity.MovementTypePayment, "-5", "2024-05-02")

	list, err := f.uc.List(ctx, userA, dto.MovementFilterQuery{CustomerID: "c1"})
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, []string{"2024-05-03", "2024-05-03", "2024-05-02", "2024-05-01"},
		[]string{list[0].Date, list[1].Date, list[2].Date, list[3].Date})
	// Empate de fecha: el insertado último va primero.
	assertDec(t, "30", list[0].Amount)
	assertDec(t, "20", list[1].Amount)

	bal, err := f.uc.Balance(ctx, "c1", userA)
	require.NoError(t, err)
	assert.True(t, list[0].Balance.Equal(bal))
}

func TestList_Filters(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	f.customer(t, "c2", userA, "Beto")
	ctx := context.Background()

	f.create(t, "c1", entity.MovementTypeSale, "10", "2024-05-01")
	f.create(t, "c1", entity.MovementTypePayment, "-5", "2024-05-05")
	f.create(t, "c2", entity.MovementTypeSale, "7", "2024-05-03")

	list, err := f.uc.List(ctx, userA, dto.MovementFilterQuery{StartDate: "2024-05-02", EndDate: "2024-05-05"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = f.uc.List(ctx, userA, dto.MovementFilterQuery{Type: entity.MovementTypeSale})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = f.uc.List(ctx, userB, dto.MovementFilterQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetByID_CrossTenantIsNil(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()
	m := f.create(t, "c1", entity.MovementTypeSale, "10", "")

	got, err := f.uc.GetByID(ctx, m.ID, userA)
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = f.uc.GetByID(ctx, m.ID, userB)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = f.uc.GetByID(ctx, "no-existe", userA)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBalance_NoMovementsIsZero(t *testing.T) {
	f := newFixture(t)
	bal, err := f.uc.Balance(context.Background(), "c1", userA)
	require.NoError(t, err)
	assert.True(t, bal.IsZero())
}

func TestAccount_NotOwned(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userB, "Ajeno")
	_, err := f.uc.Account(context.Background(), "c1", userA)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Modificación sin cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_AmountAdjustsOnlyThisBalance(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	first := f.create(t, "c1", entity.MovementTypeSale, "100", "2024-05-01")
	second := f.create(t, "c1", entity.MovementTypeSale, "50", "2024-05-02")

	newAmount := d("120")
	desc := "corregido"
	up, err := f.uc.Update(ctx, first.ID, userA, dto.UpdateMovementRequest{Amount: &newAmount, Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, up)
	assertDec(t, "120", up.Balance)
	assert.Equal(t, "corregido", up.Description)

	got, err := f.uc.GetByID(ctx, second.ID, userA)
	require.NoError(t, err)
	assertDec(t, "150", got.Balance)
}

func TestUpdate_NotOwnedReturnsNil(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	m := f.create(t, "c1", entity.MovementTypeSale, "100", "")

	desc := "x"
	up, err := f.uc.Update(context.Background(), m.ID, userB, dto.UpdateMovementRequest{Description: &desc})
	require.NoError(t, err)
	assert.Nil(t, up)
}

func TestUpdate_BlankCodeRemovesIt(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()
	code := "A1"
	m, err := f.uc.Create(ctx, userA, dto.CreateMovementRequest{CustomerID: "c1", Description: "x", Amount: d("5"), Type: entity.MovementTypeSale, Code: &code})
	require.NoError(t, err)

	blank := ""
	up, err := f.uc.Update(ctx, m.ID, userA, dto.UpdateMovementRequest{Code: &blank})
	require.NoError(t, err)
	assert.Nil(t, up.Code)
}

func TestDelete_DoesNotTouchOtherBalances(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	a := f.create(t, "c1", entity.MovementTypeSale, "100", "2024-05-01")
	b := f.create(t, "c1", entity.MovementTypeSale, "50", "2024-05-02")
	c := f.create(t, "c1", entity.MovementTypePayment, "-30", "2024-05-03")

	ok, err := f.uc.Delete(ctx, b.ID, userA)
	require.NoError(t, err)
	assert.True(t, ok)

	gotA, err := f.uc.GetByID(ctx, a.ID, userA)
	require.NoError(t, err)
	gotC, err := f.uc.GetByID(ctx, c.ID, userA)
	require.NoError(t, err)
	assertDec(t, "100", gotA.Balance)
	assertDec(t, "120", gotC.Balance) // saldo almacenado sin recalcular

	ok, err = f.uc.Delete(ctx, a.ID, userB)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecalculate_RepairsAfterDelete(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	f.create(t, "c1", entity.MovementTypeSale, "100", "2024-05-01")
	b := f.create(t, "c1", entity.MovementTypeSale, "50", "2024-05-02")
	f.create(t, "c1", entity.MovementTypePayment, "-30", "2024-05-03")
	_, err := f.uc.Delete(ctx, b.ID, userA)
	require.NoError(t, err)

	res, err := f.uc.Recalculate(ctx, "c1", userA)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assertDec(t, "70", res.CurrentBalance)

	bal, err := f.uc.Balance(ctx, "c1", userA)
	require.NoError(t, err)
	assertDec(t, "70", bal)

	_, err = f.uc.Recalculate(ctx, "c1", userB)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación
// ──────────────────────────────────────────────────────────────────────────────

func importItems() []dto.ImportMovementItem {
	return []dto.ImportMovementItem{
		{Date: "2024-01-03", Description: "c", Amount: d("-20"), Balance: d("60"), Type: entity.MovementTypePayment},
		{Date: "2024-01-01", Description: "a", Amount: d("50"), Balance: d("50"), Type: entity.MovementTypeSale},
		{Date: "2024-01-02", Description: "b", Amount: d("30"), Balance: d("80"), Type: entity.MovementTypeSale},
	}
}

func TestImportMovements_SortedAscendingAndVerbatim(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	out, err := f.uc.ImportMovements(ctx, "c1", userA, importItems())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{out[0].Description, out[1].Description, out[2].Description})
	assertDec(t, "80", out[1].Balance)

	bal, err := f.uc.Balance(ctx, "c1", userA)
	require.NoError(t, err)
	assertDec(t, "60", bal)
}

func TestImportMovements_ShuffleInvariant(t *testing.T) {
	orderOf := func(items []dto.ImportMovementItem) []string {
		f := newFixture(t)
		f.customer(t, "c1", userA, "Ana")
		_, err := f.uc.ImportMovements(context.Background(), "c1", userA, items)
		require.NoError(t, err)
		list, err := f.uc.List(context.Background(), userA, dto.MovementFilterQuery{CustomerID: "c1"})
		require.NoError(t, err)
		var out []string
		for _, m := range list {
			out = append(out, m.Description)
		}
		return out
	}

	items := importItems()
	reversed := []dto.ImportMovementItem{items[2], items[1], items[0]}
	assert.Equal(t, orderOf(items), orderOf(reversed))
	assert.Equal(t, []string{"c", "b", "a"}, orderOf(items))
}

func TestImportMovements_InvalidItemWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "Ana")
	ctx := context.Background()

	items := append(importItems(), dto.ImportMovementItem{Date: "ayer", Description: "x", Type: entity.MovementTypeSale})
	_, err := f.uc.ImportMovements(ctx, "c1", userA, items)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := f.uc.List(ctx, userA, dto.MovementFilterQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestImportCustomerData_NewCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.uc.ImportCustomerData(ctx, userA, dto.ImportCustomerDataRequest{
		CustomerName: "Nuevo Cliente",
		Movements: []dto.ImportRawRow{
			{Fecha: "2024-01-02", Descripcion: "Y", Precio: d("-20"), Saldo: d("30")},
			{Fecha: "2024-01-01", Descripcion: "X", Precio: d("50"), Saldo: d("50")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo Cliente", res.Customer.Name)
	assert.Contains(t, res.Customer.Notes, "Cliente importado desde Excel - ")

	require.Len(t, res.Movements, 2)
	assert.Equal(t, entity.MovementTypeSale, res.Movements[0].Type)
	assert.Equal(t, entity.MovementTypePayment, res.Movements[1].Type)
	assertDec(t, "50", res.Movements[0].Balance)
	assertDec(t, "30", res.Movements[1].Balance)
	assertDec(t, "20", res.Movements[1].Amount) // |precio|

	list, err := f.customers.ListByUser(ctx, userA)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestImportCustomerData_MatchesExistingCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.customer(t, "c1", userA, "María Pérez")
	ctx := context.Background()

	res, err := f.uc.ImportCustomerData(ctx, userA, dto.ImportCustomerDataRequest{
		CustomerName: "MARÍA PÉREZ",
		Movements:    []dto.ImportRawRow{{Fecha: "2024-01-01", Precio: d("10"), Saldo: d("10")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", res.Customer.ID)
	assert.Equal(t, "Movimiento importado", res.Movements[0].Description)

	list, err := f.customers.ListByUser(ctx, userA)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestImportCustomerData_InvalidRowCreatesNoCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.ImportCustomerData(ctx, userA, dto.ImportCustomerDataRequest{
		CustomerName: "Nadie",
		Movements:    []dto.ImportRawRow{{Fecha: "31/12/2024", Precio: d("10"), Saldo: d("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := f.customers.ListByUser(ctx, userA)
	require.NoError(t, err)
	assert.Empty(t, list)
}
