package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/libros-pyme/internal/application/auth"
	"github.com/tu-usuario/libros-pyme/internal/application/billing"
	"github.com/tu-usuario/libros-pyme/internal/application/usecase"
	"github.com/tu-usuario/libros-pyme/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	LedgerUC   *billing.LedgerUseCase
	CustomerUC *billing.CustomerUseCase
	VoucherUC  *billing.VoucherUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (alta pública para onboarding; edición solo admin)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), companyHandler.Update)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ledgers (protegido)
	ledgers := protected.Group("/ledgers")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleContador), ledgerHandler.Create)
	ledgers.Get("/", ledgerHandler.List)
	ledgers.Get("/:id", ledgerHandler.GetByID)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Vouchers (protegido). El preview recalcula totales sin numerar ni
	// persistir; el POST a la raíz ejecuta el ciclo completo de envío.
	vouchers := protected.Group("/vouchers")
	voucherHandler := NewVoucherHandler(deps.VoucherUC)
	vouchers.Post("/preview", voucherHandler.Preview)
	vouchers.Post("/", voucherHandler.Submit)
	vouchers.Get("/", voucherHandler.List)
	vouchers.Get("/:id", voucherHandler.GetByID)
}
