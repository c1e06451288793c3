package httpserver

import (
	agentusecase "collab-srv/internal/agent/usecase"
	inquiryhttp "collab-srv/internal/inquiry/delivery/http"
	inquirypostgre "collab-srv/internal/inquiry/repository/postgre"
	inquiryusecase "collab-srv/internal/inquiry/usecase"
	"collab-srv/internal/middleware"
	notificationusecase "collab-srv/internal/notification/usecase"
	preferencehttp "collab-srv/internal/preference/delivery/http"
	preferencepostgre "collab-srv/internal/preference/repository/postgre"
	preferenceusecase "collab-srv/internal/preference/usecase"
	userhttp "collab-srv/internal/user/delivery/http"
	userpostgre "collab-srv/internal/user/repository/postgre"
	userusecase "collab-srv/internal/user/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.redisClient,
		srv.config.Cookie, srv.config.RateLimit, srv.discord)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize repositories
	userRepo := userpostgre.New(srv.postgresDB, srv.l)
	preferenceRepo := preferencepostgre.New(srv.postgresDB, srv.l)
	inquiryRepo := inquirypostgre.New(srv.postgresDB, srv.l)

	// Initialize usecases
	userUC := userusecase.New(userRepo, srv.jwtManager, srv.l)
	preferenceUC := preferenceusecase.New(preferenceRepo, srv.l)
	agentUC := agentusecase.New(srv.llm, srv.l)
	notificationUC := notificationusecase.New(srv.emailSender, srv.l)
	inquiryUC := inquiryusecase.New(inquiryRepo, preferenceUC, agentUC,
		notificationUC, userUC, srv.producer, srv.storage, srv.l)

	// Initialize HTTP handlers
	userHandler := userhttp.New(srv.l, userUC, srv.config.Cookie, srv.discord)
	preferenceHandler := preferencehttp.New(srv.l, preferenceUC, srv.discord)
	inquiryHandler := inquiryhttp.New(srv.l, inquiryUC, srv.discord)

	// Map routes
	root := srv.gin.Group("")
	userHandler.RegisterRoutes(root, mw)
	preferenceHandler.RegisterRoutes(root, mw)
	inquiryHandler.RegisterRoutes(root, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.Cors())
	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
