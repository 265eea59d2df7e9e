package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-pro/internal/application/auth"
	"github.com/tu-usuario/clientes-pro/internal/application/importing"
	"github.com/tu-usuario/clientes-pro/internal/application/usecase"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC    *usecase.ClientUseCase
	ExecutiveUC *usecase.ExecutiveUseCase
	ImportUC    *importing.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
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

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	importHandler := NewImportHandler(deps.ImportUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/stats", clientHandler.Stats)
	clients.Post("/import", importHandler.Import)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	// Eliminar es irreversible: solo admin.
	clients.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)

	// Executives (protegido)
	executives := protected.Group("/executives")
	executiveHandler := NewExecutiveHandler(deps.ExecutiveUC)
	executives.Get("/", executiveHandler.List)
	executives.Post("/", RequireRole(entity.RoleAdmin), executiveHandler.Create)
}
