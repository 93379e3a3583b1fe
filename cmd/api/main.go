package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/caja-api/docs"
	"github.com/jhoicas/caja-api/internal/application/auth"
	"github.com/jhoicas/caja-api/internal/application/business"
	"github.com/jhoicas/caja-api/internal/application/commission"
	"github.com/jhoicas/caja-api/internal/application/customer"
	"github.com/jhoicas/caja-api/internal/application/ledger"
	"github.com/jhoicas/caja-api/internal/application/receipts"
	"github.com/jhoicas/caja-api/internal/application/sales"
	"github.com/jhoicas/caja-api/internal/application/summary"
	"github.com/jhoicas/caja-api/internal/application/withdrawal"
	infrapdf "github.com/jhoicas/caja-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/caja-api/internal/interfaces/http"
	"github.com/jhoicas/caja-api/pkg/clock"
	"github.com/jhoicas/caja-api/pkg/config"
	"github.com/jhoicas/caja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	clk, err := clock.New(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria inválida")
	}

	ctx := context.Background()
	repos, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer repos.close()

	commissionUC := commission.NewUseCase(repos.commissions, clk, log)
	ledgerUC := ledger.NewUseCase(repos.customers, repos.movements, repos.ledgerTx, clk, log)
	salesUC := sales.NewUseCase(repos.sales, commissionUC, clk)
	summaryUC := summary.NewUseCase(repos.sales, repos.withdrawals, repos.business, cfg.Summary.MaxRangeDays)

	// PDF: tickets, cierres de caja y resúmenes de cuenta
	receiptsUC := receipts.NewUseCase(infrapdf.NewMarotoPDFGenerator(), salesUC, summaryUC, ledgerUC, repos.business)

	authUC := auth.NewAuthUseCase(repos.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, clk)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	swaggerDoc, err := docs.JSON()
	if err != nil {
		log.Fatal().Err(err).Msg("documento swagger")
	}
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: swaggerDoc,
		Path:        "docs",
		Title:       "Caja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "today": clk.Today()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CustomerUC:   customer.NewUseCase(repos.customers, repos.movements, clk),
		LedgerUC:     ledgerUC,
		CommissionUC: commissionUC,
		SalesUC:      salesUC,
		WithdrawalUC: withdrawal.NewUseCase(repos.withdrawals, clk),
		SummaryUC:    summaryUC,
		BusinessUC:   business.NewUseCase(repos.business, clk, cfg.App.Timezone),
		ReceiptsUC:   receiptsUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
