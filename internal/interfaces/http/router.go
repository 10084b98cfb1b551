package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agoramarket/agora-api/internal/application/auth"
	"github.com/agoramarket/agora-api/internal/application/market"
	"github.com/agoramarket/agora-api/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	RegistroUC    *market.RegistroUseCase
	CatalogoUC    *market.CatalogoUseCase
	OrdenesUC     *market.OrdenesUseCase
	CancelacionUC *market.CancelacionUseCase
	ReputacionUC  *market.ReputacionUseCase
	ReportsUC     *reports.ReportsUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo y reputación: lecturas públicas
	productoHandler := NewProductoHandler(deps.CatalogoUC)
	api.Get("/productos", productoHandler.Listar)
	api.Get("/productos/:id", productoHandler.Obtener)

	reputacionHandler := NewReputacionHandler(deps.ReputacionUC)
	api.Get("/reputacion/:cuenta", reputacionHandler.Obtener)

	// Consulta pública de rol: la ausencia de registro es un resultado válido
	registroHandler := NewRegistroHandler(deps.RegistroUC)
	api.Get("/market/rol/:cuenta", registroHandler.ObtenerRol)

	// Reportes (público, solo lectura)
	reportes := api.Group("/reportes")
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reportes.Get("/top-vendedores", reportsHandler.TopVendedores)
	reportes.Get("/top-compradores", reportsHandler.TopCompradores)
	reportes.Get("/productos-mas-vendidos", reportsHandler.ProductosMasVendidos)
	reportes.Get("/categorias", reportsHandler.EstadisticasCategorias)
	reportes.Get("/categorias/:nombre", reportsHandler.EstadisticaCategoria)
	reportes.Get("/usuarios/:cuenta/ordenes", reportsHandler.OrdenesDeUsuario)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Registro de roles
	protected.Post("/market/registro", registroHandler.Registrar)
	protected.Put("/market/registro", registroHandler.ModificarRol)
	protected.Get("/market/rol", registroHandler.ObtenerRol)

	// Publicación (mutación del catálogo)
	protected.Post("/productos", productoHandler.Publicar)

	// Órdenes
	ordenHandler := NewOrdenHandler(deps.OrdenesUC, deps.CancelacionUC)
	protected.Post("/ordenes", ordenHandler.Comprar)
	protected.Get("/ordenes", ordenHandler.ListarPropias)
	protected.Get("/ordenes/:id", ordenHandler.Obtener)
	protected.Post("/ordenes/:id/envio", ordenHandler.MarcarEnviado)
	protected.Post("/ordenes/:id/recepcion", ordenHandler.MarcarRecibido)
	protected.Post("/ordenes/:id/cancelacion", ordenHandler.SolicitarCancelacion)
	protected.Post("/ordenes/:id/cancelacion/aceptar", ordenHandler.AceptarCancelacion)
	protected.Post("/ordenes/:id/cancelacion/rechazar", ordenHandler.RechazarCancelacion)
	protected.Get("/ordenes/:id/fondos", ordenHandler.Fondos)

	// Calificaciones y saldo
	protected.Post("/ordenes/:id/calificacion", reputacionHandler.Calificar)
	protected.Get("/saldo", ordenHandler.Saldo)
}
