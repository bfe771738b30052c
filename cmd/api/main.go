package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadhub-backend/internal/adminauth"
	"leadhub-backend/internal/auth"
	"leadhub-backend/internal/cache"
	"leadhub-backend/internal/config"
	"leadhub-backend/internal/db"
	"leadhub-backend/internal/middleware"
	"leadhub-backend/internal/notifications"
	"leadhub-backend/internal/requests"
	"leadhub-backend/internal/transport"
	"leadhub-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	jwtManager := &auth.Manager{
		Secret:     []byte(cfg.JWTSecret),
		AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
		Issuer:     "leadhub-backend",
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	}

	var leadNotifier requests.Notifier
	if mailer != nil && cfg.AdminNotifyEmail != "" {
		leadNotifier = notifications.NewLeadNotifier(mailer, cfg.AdminNotifyEmail)
	}

	val := validation.New(requests.Vocabularies())

	authRepo := adminauth.NewMongoRepository(cols.Admins, cols.AdminOTPs)
	var otpMailer adminauth.OTPMailer
	if mailer != nil {
		otpMailer = mailer
	}
	authService := adminauth.NewService(authRepo, jwtManager, otpMailer, logger, time.Duration(cfg.OTPTTLMinutes)*time.Minute)
	authHandler := adminauth.NewHandler(authService, jwtManager, val, logger, cfg.CookieSecure)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	submitLimiter := middleware.NewRateLimiter(cfg.RateLimitSubmit, window)
	otpLimiter := middleware.NewRateLimiter(cfg.RateLimitOTP, window)
	adminOnly := middleware.AdminAuth(jwtManager)

	r.Route("/api", func(api chi.Router) {
		requests.Mount(api, cols, requests.Deps{
			Val:      val,
			Log:      logger,
			Cache:    cacheStore,
			Location: cfg.Timezone,
			StatsTTL: time.Duration(cfg.StatsCacheTTLSec) * time.Second,
			Notifier: leadNotifier,
		}, submitLimiter.Middleware, adminOnly)

		authHandler.Routes(api, otpLimiter.Middleware, adminOnly)
	})

	r.Get("/healthz", healthz(client))

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

func healthz(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			transport.WriteError(w, http.StatusServiceUnavailable, "database unreachable", nil)
			return
		}
		transport.WriteSuccess(w, http.StatusOK, "ok", nil)
	}
}
