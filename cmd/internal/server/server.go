package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/zhukovvlad/estimator-go/cmd/internal/config"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/auth"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/bulkupload"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/catalog"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/teams"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"
)

type Server struct {
	store          db.Store
	router         *gin.Engine
	logger         *logging.Logger
	authService    *auth.Service
	catalogService *catalog.CatalogService
	uploadService  *bulkupload.Service
	searchService  *teams.SearchService
	config         *config.Config
}

func NewServer(
	store db.Store,
	logger *logging.Logger,
	catalogService *catalog.CatalogService,
	uploadService *bulkupload.Service,
	searchService *teams.SearchService,
	cfg *config.Config,
) *Server {
	authService := auth.NewService(store, cfg, logger)

	server := &Server{
		store:          store,
		logger:         logger,
		authService:    authService,
		catalogService: catalogService,
		uploadService:  uploadService,
		searchService:  searchService,
		config:         cfg,
	}
	router := gin.Default()
	if cfg.Upload.MaxMemoryMB > 0 {
		router.MaxMultipartMemory = cfg.Upload.MaxMemoryMB << 20
	}

	// Настройка CORS
	corsConfig := cors.DefaultConfig()
	if cfg.Debug() {
		// В режиме отладки - локальные origins фронтенда
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	} else if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		// В production CORS origins должны быть явно настроены
		// cors.New паникует на пустом списке origins, поэтому запрет задаётся функцией
		logger.Warn("CORS allowed_origins not configured in production - cross-origin requests are rejected")
		corsConfig.AllowOrigins = nil
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS", "PUT"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Disposition"}
	router.Use(cors.New(corsConfig))

	router.GET("/home", server.HomeHandler)

	// --- API V1 ---
	v1 := router.Group("/api/v1")
	{
		// Публичные роуты: вход и поиск команды для экрана входа
		v1.POST("/auth/login", server.loginHandler)
		v1.GET("/teams/search", server.searchTeamsHandler)

		protected := v1.Group("/")
		protected.Use(AuthMiddleware(server.authService))
		{
			protected.GET("/auth/me", server.meHandler)

			// Массовая загрузка. Лимит только на запись, шаблон и статус дешёвые.
			protected.POST("/bulk-upload",
				TeamRateLimitMiddleware(cfg.Upload.RatePerSecond, cfg.Upload.Burst),
				server.bulkUploadHandler)
			protected.GET("/bulk-upload/template", server.bulkUploadTemplateHandler)
			protected.GET("/bulk-upload/status/:upload_id", server.bulkUploadStatusHandler)

			protected.GET("/categories", server.listCategoriesHandler)
			protected.POST("/categories", server.createCategoryHandler)
			protected.GET("/categories/:id", server.getCategoryHandler)
			protected.PUT("/categories/:id/rubric", server.updateRubricHandler)
			protected.POST("/categories/:id/questions", server.createQuestionHandler)
			protected.POST("/categories/:id/estimate", server.estimateHandler)

			protected.PUT("/questions/:id", server.updateQuestionHandler)
		}
	}

	server.router = router
	return server
}

func (s *Server) Start(address string) error {
	return s.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
