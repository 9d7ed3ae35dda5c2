package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/erfonspanos/neoapp-desafio-tecnico/internal/handlers/middleware"
)

// RouterConfig agrupa as dependências das rotas
type RouterConfig struct {
	ClienteHandler      *ClienteHandler
	AutenticacaoHandler *AutenticacaoHandler
	UsuarioHandler      *UsuarioHandler
	AuthMiddleware      *middleware.AuthMiddleware
	AllowedOrigins      string
	Env                 string
}

// NewRouter monta o gin.Engine com middlewares e a tabela de rotas.
// Login, registro e health são públicos; listagem, busca filtrada e
// criação de clientes e de admins exigem ADMIN; as operações por id
// exigem ADMIN ou o próprio cliente vinculado.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigins == "" || cfg.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Rotas públicas
	router.POST("/auth/login", cfg.AutenticacaoHandler.Login)
	router.POST("/auth/register", cfg.AutenticacaoHandler.Register)

	// Rotas autenticadas
	autenticado := router.Group("", cfg.AuthMiddleware.Autenticar())
	{
		clientes := autenticado.Group("/clientes")
		{
			clientes.GET("", middleware.RequireAdmin(), cfg.ClienteHandler.ListarTodos)
			clientes.GET("/buscar", middleware.RequireAdmin(), cfg.ClienteHandler.BuscarPorFiltros)
			clientes.POST("", middleware.RequireAdmin(), cfg.ClienteHandler.Adicionar)
			clientes.GET("/:id", middleware.RequireAdminOuProprioCliente(), cfg.ClienteHandler.BuscarPorID)
			clientes.PUT("/:id", middleware.RequireAdminOuProprioCliente(), cfg.ClienteHandler.Atualizar)
			clientes.DELETE("/:id", middleware.RequireAdminOuProprioCliente(), cfg.ClienteHandler.Remover)
		}

		usuarios := autenticado.Group("/usuarios")
		{
			usuarios.POST("/admin", middleware.RequireAdmin(), cfg.UsuarioHandler.CriarAdmin)
		}
	}

	return router
}
