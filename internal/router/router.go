package router

import (
	"time"

	"compracerta/internal/config"
	"compracerta/internal/handler"
	"compracerta/internal/middleware"
	"compracerta/internal/repository"
	"compracerta/internal/service"
	"compracerta/internal/worker"
	"compracerta/internal/ws"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, hub *ws.Hub) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	unidadeRepo := repository.NewUnidadeRepository(db)
	rubricaRepo := repository.NewRubricaRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	solicitacaoRepo := repository.NewSolicitacaoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	boardCache := service.NewBoardCache(rdb, time.Duration(cfg.BoardCacheTTLSeconds)*time.Second)

	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	unidadeSvc := service.NewUnidadeService(unidadeRepo, clienteRepo)
	rubricaSvc := service.NewRubricaService(rubricaRepo, clienteRepo)
	catalogoSvc := service.NewCatalogoService(catalogoRepo)
	solicitacaoSvc := service.NewSolicitacaoService(
		solicitacaoRepo, unidadeRepo, rubricaRepo, catalogoRepo, usuarioRepo,
		dispatcher, hub, boardCache,
	)
	exportSvc := service.NewExportService(solicitacaoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	unidadesH := handler.NewUnidadesHandler(unidadeSvc)
	rubricasH := handler.NewRubricasHandler(rubricaSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	solicitacoesH := handler.NewSolicitacoesHandler(solicitacaoSvc, exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		adminMW := middleware.RequireRole("admin")

		// Solicitações — any authenticated user; the service scopes
		// visibility and the transition checks the role again.
		sol := v1.Group("/solicitacoes")
		{
			sol.POST("", solicitacoesH.Criar)
			sol.GET("", solicitacoesH.Listar)
			sol.GET("/board", solicitacoesH.Board)
			sol.GET("/export", adminMW, solicitacoesH.Exportar)
			sol.GET("/:id", solicitacoesH.ObterPorID)
			sol.PUT("/:id", solicitacoesH.Atualizar)
			sol.DELETE("/:id", adminMW, solicitacoesH.Excluir)
			sol.PATCH("/:id/status", adminMW, solicitacoesH.Transicionar)
			sol.GET("/:id/historico", solicitacoesH.Historico)
		}

		// Master data — admin can write, all authenticated can read
		v1.GET("/clientes", clientesH.Listar)
		clientes := v1.Group("/clientes", adminMW)
		{
			clientes.POST("", clientesH.Criar)
			clientes.PUT("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", clientesH.Excluir)
		}

		v1.GET("/unidades", unidadesH.Listar)
		unidades := v1.Group("/unidades", adminMW)
		{
			unidades.POST("", unidadesH.Criar)
			unidades.PUT("/:id", unidadesH.Atualizar)
			unidades.DELETE("/:id", unidadesH.Excluir)
		}

		v1.GET("/rubricas", rubricasH.Listar)
		rubricas := v1.Group("/rubricas", adminMW)
		{
			rubricas.POST("", rubricasH.Criar)
			rubricas.PUT("/:id", rubricasH.Atualizar)
			rubricas.DELETE("/:id", rubricasH.Excluir)
		}

		v1.GET("/grupos-item", catalogoH.ListarGrupos)
		grupos := v1.Group("/grupos-item", adminMW)
		{
			grupos.POST("", catalogoH.CriarGrupo)
			grupos.PUT("/:id", catalogoH.AtualizarGrupo)
			grupos.DELETE("/:id", catalogoH.ExcluirGrupo)
		}

		v1.GET("/unidades-medida", catalogoH.ListarUnidadesMedida)
		unidadesMedida := v1.Group("/unidades-medida", adminMW)
		{
			unidadesMedida.POST("", catalogoH.CriarUnidadeMedida)
			unidadesMedida.PUT("/:id", catalogoH.AtualizarUnidadeMedida)
			unidadesMedida.DELETE("/:id", catalogoH.ExcluirUnidadeMedida)
		}

		v1.GET("/itens", catalogoH.ListarItens)
		itens := v1.Group("/itens", adminMW)
		{
			itens.POST("", catalogoH.CriarItem)
			itens.PUT("/:id", catalogoH.AtualizarItem)
			itens.DELETE("/:id", catalogoH.ExcluirItem)
		}

		// Gestão de usuários — admin only
		usuarios := v1.Group("/usuarios", adminMW)
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Desativar)
			usuarios.POST("/:id/reativar", usuariosH.Reativar)
		}
	}

	// Live board updates — the token travels as a query param because
	// browsers cannot set headers on the WebSocket handshake.
	r.GET("/v1/ws", func(c *gin.Context) {
		ws.ServeWs(hub, c, []byte(cfg.JWTSecret))
	})

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
