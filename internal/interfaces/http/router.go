package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvidalcampos/coleccion-api/internal/application/auth"
	"github.com/mvidalcampos/coleccion-api/internal/application/reparto"
	"github.com/mvidalcampos/coleccion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PedidoUC   *usecase.PedidoUseCase
	ArticuloUC *usecase.ArticuloUseCase
	MarcaUC    *usecase.MarcaUseCase
	InformeUC  *usecase.InformeUseCase
	RepartoUC  *reparto.UseCase
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

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Marcas (protegido)
	marcas := protected.Group("/marcas")
	marcaHandler := NewMarcaHandler(deps.MarcaUC)
	marcas.Post("/", marcaHandler.Create)
	marcas.Get("/", marcaHandler.List)
	marcas.Get("/:id", marcaHandler.GetByID)
	marcas.Delete("/:id", marcaHandler.Delete)

	// Pedidos y repartos (protegido)
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.RepartoUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	// la acción por lotes va antes que /:id para que no la capture el parámetro
	pedidos.Post("/distribuir", pedidoHandler.DistribuirLote)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Delete("/:id", pedidoHandler.Delete)
	pedidos.Post("/:id/distribuir-aduana", pedidoHandler.DistribuirAduana)
	pedidos.Post("/:id/distribuir-envio", pedidoHandler.DistribuirEnvio)

	// Artículos (protegido)
	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Post("/", articuloHandler.Create)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Put("/:id", articuloHandler.Update)
	articulos.Delete("/:id", articuloHandler.Delete)

	// Informes (protegido)
	informes := protected.Group("/informes")
	informeHandler := NewInformeHandler(deps.InformeUC)
	informes.Get("/articulos", informeHandler.Resumen)
	informes.Get("/articulos.pdf", informeHandler.ExportarPDF)
	informes.Get("/articulos.xlsx", informeHandler.ExportarExcel)
}
