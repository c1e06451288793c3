package httpserver

import (
	"database/sql"
	"errors"

	"collab-srv/config"
	"collab-srv/pkg/discord"
	"collab-srv/pkg/email"
	pkgJWT "collab-srv/pkg/jwt"
	"collab-srv/pkg/kafka"
	"collab-srv/pkg/log"
	"collab-srv/pkg/openai"
	pkgRedis "collab-srv/pkg/redis"
	"collab-srv/pkg/storage"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Domain Dependencies
	config      *config.Config
	jwtManager  *pkgJWT.Manager
	llm         openai.IOpenAI
	emailSender email.ISender
	producer    kafka.IProducer
	storage     storage.IStorage

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Domain Dependencies
	Config      *config.Config
	JWTManager  *pkgJWT.Manager
	LLM         openai.IOpenAI
	EmailSender email.ISender
	Producer    kafka.IProducer
	Storage     storage.IStorage

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		config:      cfg.Config,
		jwtManager:  cfg.JWTManager,
		llm:         cfg.LLM,
		emailSender: cfg.EmailSender,
		producer:    cfg.Producer,
		storage:     cfg.Storage,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.llm == nil {
		return errors.New("llm client is required")
	}
	if srv.emailSender == nil {
		return errors.New("email sender is required")
	}

	// Redis, Kafka, MinIO and Discord are optional. Without Redis the rate
	// limiter fails open; without Kafka no events are published; without
	// MinIO attachment upload is unavailable.
	return nil
}
