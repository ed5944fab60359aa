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
	"golang.org/x/text/language"

	"github.com/tu-usuario/libros-pyme/internal/application/auth"
	"github.com/tu-usuario/libros-pyme/internal/application/billing"
	"github.com/tu-usuario/libros-pyme/internal/application/usecase"
	"github.com/tu-usuario/libros-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/libros-pyme/internal/interfaces/http"
	"github.com/tu-usuario/libros-pyme/pkg/config"
	"github.com/tu-usuario/libros-pyme/pkg/logger"
	"github.com/tu-usuario/libros-pyme/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	submission := postgres.NewSubmissionAdapter(txRunner)
	voucherNumbers := postgres.NewVoucherSequence(pool)

	locale, err := language.Parse(cfg.App.Locale)
	if err != nil {
		log.Warn().Str("locale", cfg.App.Locale).Msg("locale inválido, usando es")
		locale = language.Spanish
	}
	format := money.NewFormatter(locale)

	companyUC := usecase.NewCompanyUseCase(companyRepo, ledgerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	ledgerUC := billing.NewLedgerUseCase(ledgerRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo, ledgerRepo)
	voucherUC := billing.NewVoucherUseCase(
		companyRepo, ledgerRepo, productRepo, voucherRepo,
		voucherNumbers, submission, format,
	)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Libros PyME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		LedgerUC:   ledgerUC,
		CustomerUC: customerUC,
		VoucherUC:  voucherUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
