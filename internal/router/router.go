package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/NotBunBun/simulacion-roles/internal/apierror"
	"github.com/NotBunBun/simulacion-roles/internal/config"
	"github.com/NotBunBun/simulacion-roles/internal/handler"
	"github.com/NotBunBun/simulacion-roles/internal/middleware"
	"github.com/NotBunBun/simulacion-roles/internal/repository"
	"github.com/NotBunBun/simulacion-roles/internal/service"
	"github.com/NotBunBun/simulacion-roles/internal/storage"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store
func New(cfg *config.Config, store *storage.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// Unsupported method on a known collection or item path → 405 + Allow
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)

	// ── Repositories ─────────────────────────────────────────────────────────
	propiedadRepo := repository.NewPropiedadRepository(store)
	tipoRepo := repository.NewTipoRepository(store)
	productoRepo := repository.NewProductoRepository(store)

	// ── Services ─────────────────────────────────────────────────────────────
	propiedadSvc := service.NewPropiedadService(propiedadRepo)
	tipoSvc := service.NewTipoService(tipoRepo, propiedadRepo)
	productoSvc := service.NewProductoService(productoRepo, tipoRepo, propiedadRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	propiedadesH := handler.NewPropiedadesHandler(propiedadSvc)
	tiposH := handler.NewTiposHandler(tipoSvc)
	productosH := handler.NewProductosHandler(productoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(store))

	v1 := r.Group("/v1")
	{
		propiedades := v1.Group("/propiedades")
		{
			propiedades.GET("", propiedadesH.Listar)
			propiedades.POST("", propiedadesH.Crear)
			propiedades.GET("/:id", propiedadesH.ObtenerPorID)
			propiedades.PUT("/:id", propiedadesH.Actualizar)
			propiedades.DELETE("/:id", propiedadesH.Eliminar)
		}

		tipos := v1.Group("/tipos")
		{
			tipos.GET("", tiposH.Listar)
			tipos.POST("", tiposH.Crear)
			tipos.GET("/:id", tiposH.ObtenerPorID)
			tipos.GET("/:id/esquema", tiposH.ObtenerEsquema)
			tipos.PUT("/:id", tiposH.Actualizar)
			tipos.DELETE("/:id", tiposH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.GET("", productosH.Listar)
			productos.POST("", productosH.Crear)
			productos.GET("/:id", productosH.ObtenerPorID)
			productos.GET("/:id/detalle", productosH.Detalle)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}
	}

	return r
}

// methodNotAllowed answers 405 with an Allow header derived from the path
// shape: collection roots take GET/POST, items take GET/PUT/DELETE,
// subresources (esquema, detalle) are read-only.
func methodNotAllowed(c *gin.Context) {
	parts := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")
	switch {
	case len(parts) == 2 && parts[0] == "v1":
		c.Header("Allow", "GET, POST, OPTIONS")
	case len(parts) == 3 && parts[0] == "v1":
		c.Header("Allow", "GET, PUT, DELETE, OPTIONS")
	case len(parts) > 3 && parts[0] == "v1":
		c.Header("Allow", "GET, OPTIONS")
	}
	c.JSON(http.StatusMethodNotAllowed, apierror.New("Método no permitido"))
}
