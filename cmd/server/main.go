package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/superpoll-api/config"
	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/ErlanBelekov/superpoll-api/internal/health"
	"github.com/ErlanBelekov/superpoll-api/internal/infrastructure/cryptography"
	"github.com/ErlanBelekov/superpoll-api/internal/infrastructure/postgres"
	ctxlog "github.com/ErlanBelekov/superpoll-api/internal/log"
	"github.com/ErlanBelekov/superpoll-api/internal/metrics"
	httptransport "github.com/ErlanBelekov/superpoll-api/internal/transport/http"
	"github.com/ErlanBelekov/superpoll-api/internal/transport/http/handler"
	"github.com/ErlanBelekov/superpoll-api/internal/transport/http/middleware"
	"github.com/ErlanBelekov/superpoll-api/internal/usecase"
	"github.com/ErlanBelekov/superpoll-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	surveyRepo := postgres.NewSurveyRepository(pool)
	errorLogRepo := postgres.NewErrorLogRepository(pool)

	hasher := cryptography.NewBcryptHasher(cfg.BcryptCost)
	codec := cryptography.NewJWTCodec([]byte(cfg.JWTSecret), cfg.JWTTTL)
	emailChecker := validation.NewPlaygroundEmailChecker()

	// Accounts
	addAccount := usecase.NewAddAccountUsecase(hasher, accountRepo, accountRepo)
	authenticate := usecase.NewAuthenticationUsecase(accountRepo, accountRepo, hasher, codec)
	loadAccount := usecase.NewLoadAccountByTokenUsecase(codec, accountRepo)

	// Surveys
	addSurvey := usecase.NewAddSurveyUsecase(surveyRepo)
	loadSurveys := usecase.NewLoadSurveysUsecase(surveyRepo)

	routes := httptransport.Routes{
		SignUp:      handler.NewSignUpHandler(validation.SignUp(emailChecker), addAccount, authenticate, logger),
		SignIn:      handler.NewSignInHandler(validation.SignIn(emailChecker), authenticate, logger),
		AddSurvey:   handler.NewAddSurveyHandler(validation.AddSurvey(), addSurvey, time.Now, logger),
		LoadSurveys: handler.NewLoadSurveysHandler(loadSurveys, logger),
		AdminAuth:   middleware.NewAuthMiddleware(loadAccount, domain.RoleAdmin),
		UserAuth:    middleware.NewAuthMiddleware(loadAccount, ""),
		ErrorSink:   errorLogRepo,
	}

	metrics.Register()
	checker := health.NewChecker(logger, prometheus.DefaultRegisterer,
		health.Dependency{Name: "postgres", Pinger: pool},
		health.Dependency{Name: "schema", Pinger: health.PingerFunc(func(ctx context.Context) error {
			return postgres.SchemaReady(ctx, pool)
		})},
	)

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httptransport.NewRouter(logger, cfg.Env, routes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
