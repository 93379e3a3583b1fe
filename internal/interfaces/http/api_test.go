package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/application/auth"
	"github.com/jhoicas/caja-api/internal/application/business"
	"github.com/jhoicas/caja-api/internal/application/commission"
	"github.com/jhoicas/caja-api/internal/application/customer"
	"github.com/jhoicas/caja-api/internal/application/ledger"
	"github.com/jhoicas/caja-api/internal/application/receipts"
	"github.com/jhoicas/caja-api/internal/application/sales"
	"github.com/jhoicas/caja-api/internal/application/summary"
	"github.com/jhoicas/caja-api/internal/application/withdrawal"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/caja-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/caja-api/internal/interfaces/http"
	"github.com/jhoicas/caja-api/pkg/clock"
	"github.com/jhoicas/caja-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

const today = "2024-05-10"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	clk := clock.Fixed(time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC))
	log := logger.Nop()

	userRepo := memory.NewUserRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	movementRepo := memory.NewAccountMovementRepository(store)
	commissionRepo := memory.NewCommissionRepository(store)
	saleRepo := memory.NewSaleRepository(store)
	withdrawalRepo := memory.NewWithdrawalRepository(store)
	businessRepo := memory.NewBusinessConfigRepository(store)

	commissionUC := commission.NewUseCase(commissionRepo, clk, log)
	ledgerUC := ledger.NewUseCase(customerRepo, movementRepo, memory.NewLedgerTxRunner(store), clk, log)
	salesUC := sales.NewUseCase(saleRepo, commissionUC, clk)
	summaryUC := summary.NewUseCase(saleRepo, withdrawalRepo, businessRepo, 366)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, clk),
		CustomerUC:   customer.NewUseCase(customerRepo, movementRepo, clk),
		LedgerUC:     ledgerUC,
		CommissionUC: commissionUC,
		SalesUC:      salesUC,
		WithdrawalUC: withdrawal.NewUseCase(withdrawalRepo, clk),
		SummaryUC:    summaryUC,
		BusinessUC:   business.NewUseCase(businessRepo, clk, "America/Argentina/Buenos_Aires"),
		ReceiptsUC:   receipts.NewUseCase(infrapdf.NewMarotoPDFGenerator(), salesUC, summaryUC, ledgerUC, businessRepo),
		JWTSecret:    testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	if resp.Header.Get("Content-Type") != "application/pdf" {
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &env)
	}
	return resp, env
}

// signup registra y loguea un usuario; devuelve el token.
func signup(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	creds := map[string]string{"email": email, "password": "secreto-123"}
	resp, _ := call(t, app, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := call(t, app, http.MethodPost, "/api/auth/login", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func dataID(t *testing.T, env envelope) string {
	t.Helper()
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Register_EmailDuplicado_409(t *testing.T) {
	app := newAPI(t)
	signup(t, app, "ana@example.com")

	resp, env := call(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "ANA@example.com", "password": "otra-clave-1",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestAPI_Login_PasswordIncorrecta_401(t *testing.T) {
	app := newAPI(t)
	signup(t, app, "ana@example.com")

	resp, env := call(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ana@example.com", "password": "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestAPI_SinToken_401(t *testing.T) {
	app := newAPI(t)
	resp, env := call(t, app, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", env.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Validacion_400ConDetalles(t *testing.T) {
	app := newAPI(t)
	token := signup(t, app, "ana@example.com")

	resp, env := call(t, app, http.MethodPost, "/api/sales", token, map[string]interface{}{
		"amount":        100,
		"paymentMethod": "cheque",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)

	fields := make([]string, 0, len(env.Details))
	for _, d := range env.Details {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "paymentMethod")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuenta corriente
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CuentaCorriente_Flujo(t *testing.T) {
	app := newAPI(t)
	token := signup(t, app, "ana@example.com")

	resp, env := call(t, app, http.MethodPost, "/api/customers", token, map[string]string{"name": "Juan Pérez"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	customerID := dataID(t, env)

	resp, _ = call(t, app, http.MethodPost, "/api/account-movements", token, map[string]interface{}{
		"customerId": customerID, "description": "Compra", "amount": 1500, "type": "sale", "date": "2024-05-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/account-movements", token, map[string]interface{}{
		"customerId": customerID, "description": "Pago", "amount": -500, "type": "payment", "date": "2024-05-02",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env = call(t, app, http.MethodGet, "/api/account-movements/customer/"+customerID+"/balance", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bal struct {
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bal))
	assert.Equal(t, 1000.0, bal.Balance)

	resp, env = call(t, app, http.MethodGet, "/api/account-movements/customer/"+customerID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var account struct {
		CurrentBalance float64 `json:"currentBalance"`
		TotalSales     float64 `json:"totalSales"`
		TotalPayments  float64 `json:"totalPayments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, 1000.0, account.CurrentBalance)
	assert.Equal(t, 1500.0, account.TotalSales)
	assert.Equal(t, 500.0, account.TotalPayments)

	resp, _ = call(t, app, http.MethodGet, "/api/account-movements/customer/"+customerID+"/statement.pdf", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAPI_SignoIncorrecto_400(t *testing.T) {
	app := newAPI(t)
	token := signup(t, app, "ana@example.com")

	_, env := call(t, app, http.MethodPost, "/api/customers", token, map[string]string{"name": "Juan"})
	customerID := dataID(t, env)

	resp, _ := call(t, app, http.MethodPost, "/api/account-movements", token, map[string]interface{}{
		"customerId": customerID, "description": "Pago", "amount": 500, "type": "payment",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Los recursos de otro usuario responden como inexistentes.
func TestAPI_OtroUsuario_404(t *testing.T) {
	app := newAPI(t)
	tokenA := signup(t, app, "ana@example.com")
	tokenB := signup(t, app, "beto@example.com")

	_, env := call(t, app, http.MethodPost, "/api/customers", tokenA, map[string]string{"name": "Juan"})
	customerID := dataID(t, env)

	resp, _ := call(t, app, http.MethodGet, "/api/customers/"+customerID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/account-movements", tokenB, map[string]interface{}{
		"customerId": customerID, "description": "Compra", "amount": 100, "type": "sale",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, env = call(t, app, http.MethodGet, "/api/customers", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(env.Data))
}

// ──────────────────────────────────────────────────────────────────────────────
// Caja
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Commission_Calculate(t *testing.T) {
	app := newAPI(t)
	token := signup(t, app, "ana@example.com")

	resp, env := call(t, app, http.MethodPost, "/api/commissions/calculate", token, map[string]interface{}{
		"paymentMethod": "efectivo", "amount": 1000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Commission float64 `json:"commission"`
		NetAmount  float64 `json:"netAmount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 0.0, out.Commission)
	assert.Equal(t, 1000.0, out.NetAmount)

	resp, _ = call(t, app, http.MethodPost, "/api/commissions/calculate", token, map[string]interface{}{
		"paymentMethod": "tarjeta_credito", "amount": 1000,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/commissions/calculate", token, map[string]interface{}{
		"paymentMethod": "efectivo", "amount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_VentasRetirosYResumen(t *testing.T) {
	app := newAPI(t)
	token := signup(t, app, "ana@example.com")

	resp, env := call(t, app, http.MethodPost, "/api/sales", token, map[string]interface{}{
		"description": "Mostrador", "amount": 2000, "paymentMethod": "efectivo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	saleID := dataID(t, env)

	resp, _ = call(t, app, http.MethodPost, "/api/withdrawals", token, map[string]interface{}{
		"amount": 300, "reason": "gastos_operativos",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env = call(t, app, http.MethodGet, "/api/summary/daily/"+today, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var day struct {
		TotalCash        float64 `json:"totalCash"`
		TotalWithdrawals float64 `json:"totalWithdrawals"`
		FinalBalance     float64 `json:"finalBalance"`
		SalesCount       int     `json:"salesCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &day))
	assert.Equal(t, 2000.0, day.TotalCash)
	assert.Equal(t, 300.0, day.TotalWithdrawals)
	assert.Equal(t, 1700.0, day.FinalBalance)
	assert.Equal(t, 1, day.SalesCount)

	resp, _ = call(t, app, http.MethodGet, "/api/sales/"+saleID+"/receipt.pdf", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp, _ = call(t, app, http.MethodGet, "/api/summary/daily/"+today+"/closure.pdf", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/summary/range?startDate=2024-05-10&endDate=2024-05-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Business_CreateYDuplicado(t *testing.T) {
	app := newAPI(t)
	token := signup(t, app, "ana@example.com")

	resp, _ := call(t, app, http.MethodGet, "/api/business", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/business", token, map[string]string{"businessName": "Kiosco Ana"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/business", token, map[string]string{"businessName": "Otro"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
