package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/auth"
	"github.com/jhoicas/caja-api/internal/application/business"
	"github.com/jhoicas/caja-api/internal/application/commission"
	"github.com/jhoicas/caja-api/internal/application/customer"
	"github.com/jhoicas/caja-api/internal/application/ledger"
	"github.com/jhoicas/caja-api/internal/application/receipts"
	"github.com/jhoicas/caja-api/internal/application/sales"
	"github.com/jhoicas/caja-api/internal/application/summary"
	"github.com/jhoicas/caja-api/internal/application/withdrawal"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CustomerUC   *customer.UseCase
	LedgerUC     *ledger.UseCase
	CommissionUC *commission.UseCase
	SalesUC      *sales.UseCase
	WithdrawalUC *withdrawal.UseCase
	SummaryUC    *summary.UseCase
	BusinessUC   *business.UseCase
	ReceiptsUC   *receipts.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers: las rutas fijas van antes de /:id
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/balances", customerHandler.Balances)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Cuenta corriente
	movements := protected.Group("/account-movements")
	movementHandler := NewAccountMovementHandler(deps.LedgerUC, deps.ReceiptsUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Post("/import", movementHandler.Import)
	movements.Post("/import-excel", movementHandler.ImportCustomerData)
	movements.Get("/customer/:customerId", movementHandler.Account)
	movements.Get("/customer/:customerId/balance", movementHandler.Balance)
	movements.Post("/customer/:customerId/recalculate", movementHandler.Recalculate)
	movements.Get("/customer/:customerId/statement.pdf", movementHandler.Statement)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Comisiones
	commissions := protected.Group("/commissions")
	commissionHandler := NewCommissionHandler(deps.CommissionUC)
	commissions.Get("/", commissionHandler.List)
	commissions.Get("/organized", commissionHandler.Organized)
	commissions.Post("/default", commissionHandler.CreateDefaults)
	commissions.Post("/calculate", commissionHandler.Calculate)
	commissions.Put("/:id", commissionHandler.Update)

	// Ventas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC, deps.ReceiptsUC)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt.pdf", saleHandler.Receipt)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Retiros
	withdrawals := protected.Group("/withdrawals")
	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalUC)
	withdrawals.Get("/", withdrawalHandler.List)
	withdrawals.Post("/", withdrawalHandler.Create)
	withdrawals.Get("/:id", withdrawalHandler.GetByID)
	withdrawals.Put("/:id", withdrawalHandler.Update)
	withdrawals.Delete("/:id", withdrawalHandler.Delete)

	// Resúmenes
	summaryGroup := protected.Group("/summary")
	summaryHandler := NewSummaryHandler(deps.SummaryUC, deps.ReceiptsUC)
	summaryGroup.Get("/daily/:date", summaryHandler.Daily)
	summaryGroup.Get("/daily/:date/closure", summaryHandler.Closure)
	summaryGroup.Get("/daily/:date/closure.pdf", summaryHandler.ClosurePDF)
	summaryGroup.Get("/range", summaryHandler.Range)
	summaryGroup.Get("/month/:year/:month", summaryHandler.Month)

	// Negocio
	businessGroup := protected.Group("/business")
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businessGroup.Get("/", businessHandler.Get)
	businessGroup.Post("/", businessHandler.Create)
	businessGroup.Put("/", businessHandler.Update)
}
