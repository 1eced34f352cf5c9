package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"eventscore/internal/auth"
	"eventscore/internal/config"
	"eventscore/internal/criteria"
	"eventscore/internal/handler"
	"eventscore/internal/httpmiddleware"
	"eventscore/internal/logging"
	"eventscore/internal/mailer"
	"eventscore/internal/metrics"
	"eventscore/internal/queue"
	"eventscore/internal/store"
	"eventscore/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logg.Closer()
	log := logg.Sugar

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg, log); err != nil {
		log.Fatalw("http server failed", "err", err)
	}
}

func runHTTP(cfg config.App, log *zap.SugaredLogger) error {
	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(db.Client); err != nil {
		return err
	}
	log.Infow("database schema ready")

	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	var jobs queue.Queue
	if cfg.QueueBackend == "memory" {
		jobs = queue.NewInMemory(64)
	} else {
		jobs = queue.NewRedisQueue(redisClient.Client, "")
	}

	sessions := auth.Sessions{
		Issuer:       cfg.JWTIssuer,
		SigningKey:   cfg.JWTSigningKey,
		TTL:          cfg.SessionTTL,
		CookieDomain: cfg.CookieDomain,
		Secure:       cfg.CookieSecure,
	}

	var mail mailer.Mailer
	if cfg.MailBackend == "log" {
		mail = &mailer.LogOnly{Log: log}
	} else {
		mail = mailer.NewSMTP(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPassword)
	}

	users := user.NewService(user.NewRepository(db.Client), mail, cfg.BcryptCost)
	crit := criteria.NewService(criteria.NewRepository(db.Client))
	h := handler.New(users, crit, sessions, jobs, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(httpmiddleware.RequestID())
	r.Use(corsMiddleware())
	r.Use(securityHeaders())

	var limiter httpmiddleware.Limiter
	if redisClient.Healthy(context.Background()) {
		limiter = httpmiddleware.NewRedisLimiter(redisClient.Client, cfg.RateLimitPerMin)
	} else {
		limiter = httpmiddleware.NewSimpleTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin)
	}
	r.Use(httpmiddleware.RateLimit(limiter))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		start := time.Now()
		dbHealthy := db.Ping(c.Request.Context()) == nil
		metrics.ObserveDBPing(time.Since(start))
		redisHealthy := redisClient.Healthy(c.Request.Context())
		status := http.StatusOK
		if !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "db": dbHealthy, "redis": redisHealthy})
	})

	h.Register(r)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("starting server", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnw("server forced shutdown", "err", err)
	}

	log.Infow("server exited")
	return nil
}

// CORS middleware for browser requests.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Security headers middleware.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
