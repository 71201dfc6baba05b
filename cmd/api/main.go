package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/canal-admin-api/docs"
	"github.com/jhoicas/canal-admin-api/internal/application/billing"
	"github.com/jhoicas/canal-admin-api/internal/application/exchange"
	"github.com/jhoicas/canal-admin-api/internal/application/inventory"
	"github.com/jhoicas/canal-admin-api/internal/application/notification"
	"github.com/jhoicas/canal-admin-api/internal/application/report"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
	infmail "github.com/jhoicas/canal-admin-api/internal/infrastructure/mail"
	"github.com/jhoicas/canal-admin-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/canal-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/canal-admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/canal-admin-api/internal/interfaces/http"
	"github.com/jhoicas/canal-admin-api/pkg/config"
	"github.com/jhoicas/canal-admin-api/pkg/logger"
)

// storage repositorios y runners del driver elegido.
type storage struct {
	assets    repository.AssetRepository
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	exchanges repository.ExchangeRepository
	reports   repository.ReportRepository
	txRunner  interface {
		inventory.TxRunner
		billing.BillingTxRunner
	}
	close func()
}

func openStorage(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*storage, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &storage{
			assets:    memory.NewAssetRepository(store),
			invoices:  memory.NewInvoiceRepository(store),
			customers: memory.NewCustomerRepository(store),
			exchanges: memory.NewExchangeRepository(store),
			reports:   memory.NewReportRepository(store),
			txRunner:  memory.NewTxRunner(store),
			close:     func() {},
		}, nil
	}

	log.Info().Str("dsn", postgres.RedactedDSN(cfg)).Msg("conectando a PostgreSQL")
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &storage{
		assets:    postgres.NewAssetRepository(pool),
		invoices:  postgres.NewInvoiceRepository(pool),
		customers: postgres.NewCustomerRepository(pool),
		exchanges: postgres.NewExchangeRepository(pool),
		reports:   postgres.NewReportRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	mailer, err := infmail.NewMailer(cfg.Mail, log.Child("mail"))
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar correo")
	}
	mailUC := notification.NewMailUseCase(mailer, cfg.Mail.RatePerMinute, log.Child("mail"))

	assetUC := inventory.NewAssetUseCase(store.assets)
	movementUC := inventory.NewMovementUseCase(store.txRunner, log.Child("inventory"))
	invoiceUC := billing.NewInvoiceUseCase(store.txRunner, store.invoices)
	pdfUC := billing.NewPDFUseCase(store.invoices, infrapdf.NewMarotoPDFGenerator(), mailUC, cfg.App.StationName)
	customerUC := billing.NewCustomerUseCase(store.customers)
	exchangeUC := exchange.NewExchangeUseCase(store.exchanges)
	summaryUC := report.NewSummaryUseCase(store.reports)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Child("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Canal Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "mail_provider": mailer.Provider()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AssetUC:    assetUC,
		MovementUC: movementUC,
		InvoiceUC:  invoiceUC,
		PDFUC:      pdfUC,
		CustomerUC: customerUC,
		ExchangeUC: exchangeUC,
		MailUC:     mailUC,
		SummaryUC:  summaryUC,
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
