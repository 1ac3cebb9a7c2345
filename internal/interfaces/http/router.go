package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saborurbano/backoffice/internal/application/auth"
	"github.com/saborurbano/backoffice/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmpleadoUC  *usecase.EmpleadoUseCase
	InsumoUC    *usecase.InsumoUseCase
	ProductoUC  *usecase.ProductoUseCase
	PedidoUC    *usecase.PedidoUseCase
	TareaUC     *usecase.TareaUseCase
	DashboardUC *usecase.DashboardUseCase
	AuthUC      *auth.UseCase
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
	authGroup.Get("/perfil", AuthMiddleware(deps.JWTSecret), authHandler.Perfil)

	// Panel y estado
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/status", dashboardHandler.Status)
	api.Get("/dashboard", dashboardHandler.Resumen)

	// Empleados (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	empleados := api.Group("/empleados")
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Get("/", empleadoHandler.List)
	empleados.Post("/", empleadoHandler.Create)
	empleados.Get("/roles", empleadoHandler.Roles)
	empleados.Get("/areas", empleadoHandler.Areas)
	empleados.Get("/validar-rol/:rol", empleadoHandler.ValidarRol)
	empleados.Get("/validar-area/:area", empleadoHandler.ValidarArea)
	empleados.Get("/validar-email", empleadoHandler.ValidarEmail)
	empleados.Get("/activos", empleadoHandler.ListActivos)
	empleados.Get("/estadisticas", empleadoHandler.Estadisticas)
	empleados.Get("/rol/:rol", empleadoHandler.ListByRol)
	empleados.Get("/area/:area", empleadoHandler.ListByArea)
	empleados.Get("/:id", empleadoHandler.GetByID)
	empleados.Put("/:id", empleadoHandler.Update)
	empleados.Delete("/:id", empleadoHandler.Delete)

	// Insumos
	insumos := api.Group("/insumos")
	insumoHandler := NewInsumoHandler(deps.InsumoUC)
	insumos.Get("/", insumoHandler.List)
	insumos.Post("/", insumoHandler.Create)
	insumos.Get("/bajo-stock", insumoHandler.ListBajoStock)
	insumos.Get("/alertas", insumoHandler.Alertas)
	insumos.Get("/categoria/:categoria", insumoHandler.ListByCategoria)
	insumos.Get("/:id", insumoHandler.GetByID)
	insumos.Put("/:id/stock", insumoHandler.SetStock)
	insumos.Put("/:id/descontar", insumoHandler.Descontar)
	insumos.Put("/:id", insumoHandler.Update)
	insumos.Delete("/:id", insumoHandler.Delete)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Pedidos
	pedidos := api.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/estadisticas", pedidoHandler.Estadisticas)
	pedidos.Get("/tipo/:tipo", pedidoHandler.ListByTipo)
	pedidos.Get("/plataforma/:plataforma", pedidoHandler.ListByPlataforma)
	pedidos.Get("/estado/:estado", pedidoHandler.ListByEstado)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Delete("/:id", pedidoHandler.Delete)

	// Tareas
	tareas := api.Group("/tareas")
	tareaHandler := NewTareaHandler(deps.TareaUC)
	tareas.Get("/", tareaHandler.List)
	tareas.Post("/", tareaHandler.Create)
	tareas.Get("/filtrar", tareaHandler.Filtrar)
	tareas.Get("/urgentes", tareaHandler.Urgentes)
	tareas.Get("/estadisticas", tareaHandler.Estadisticas)
	tareas.Get("/area/:area", tareaHandler.ListByArea)
	tareas.Get("/:id", tareaHandler.GetByID)
	tareas.Put("/:id", tareaHandler.Update)
	tareas.Delete("/:id", tareaHandler.Delete)
}
