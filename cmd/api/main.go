package main

import (
	"context"
	"fmt"
	"time"

	"collab-srv/config"
	configPostgre "collab-srv/config/postgre"
	configRedis "collab-srv/config/redis"
	_ "collab-srv/docs" // Import swagger docs
	"collab-srv/internal/httpserver"
	"collab-srv/pkg/discord"
	"collab-srv/pkg/email"
	pkgJWT "collab-srv/pkg/jwt"
	"collab-srv/pkg/kafka"
	"collab-srv/pkg/log"
	"collab-srv/pkg/openai"
	"collab-srv/pkg/storage"
)

// @title       Collab Service API
// @description Influencer collaboration marketplace API documentation.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name collab_auth_token
// @description Authentication token stored in HttpOnly cookie. Set automatically by the login endpoint.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis (optional, rate limiter fails open without it)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis not available, rate limiting disabled: %v", err)
		redisClient = nil
	} else {
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if webhook, err := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken); err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
	} else if discordClient, err = discord.New(logger, webhook); err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 6. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 7. Initialize the LLM client
	llm, err := openai.NewOpenAI(openai.OpenAIConfig{
		APIKey: cfg.OpenAI.APIKey,
		Model:  cfg.OpenAI.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	// 8. Initialize the email sender
	emailSender, err := email.NewResend(email.ResendConfig{
		APIKey:    cfg.Resend.APIKey,
		FromEmail: cfg.Resend.FromEmail,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Resend client: ", err)
		return
	}

	// 9. Initialize the Kafka producer (optional)
	producer, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	if err != nil {
		logger.Warnf(ctx, "Kafka not available, event publishing disabled: %v", err)
		producer = nil
	} else {
		defer producer.Close()
		logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
	}

	// 10. Initialize MinIO (optional)
	var store storage.IStorage
	if s, err := storage.NewMinIO(storage.MinIOConfig{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		Region:    cfg.MinIO.Region,
		UseSSL:    cfg.MinIO.UseSSL,
	}); err != nil {
		logger.Warnf(ctx, "MinIO not available, attachment upload disabled: %v", err)
	} else if err := s.EnsureBucket(ctx); err != nil {
		logger.Warnf(ctx, "MinIO bucket check failed, attachment upload disabled: %v", err)
	} else {
		store = s
		logger.Infof(ctx, "MinIO connected, bucket %q ready", cfg.MinIO.Bucket)
	}

	// 11. Initialize and run the HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		Config:      cfg,
		JWTManager:  jwtManager,
		LLM:         llm,
		EmailSender: emailSender,
		Producer:    producer,
		Storage:     store,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}
