package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/superpoll-api/internal/repository"
	"github.com/ErlanBelekov/superpoll-api/internal/transport/http/handler"
	"github.com/ErlanBelekov/superpoll-api/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

// Routes bundles what the API surface is built from.
type Routes struct {
	SignUp      handler.Controller
	SignIn      handler.Controller
	AddSurvey   handler.Controller
	LoadSurveys handler.Controller

	// AdminAuth gates survey creation, UserAuth gates survey listing.
	AdminAuth middleware.Middleware
	UserAuth  middleware.Middleware

	ErrorSink repository.LogErrorRepository
}

func NewRouter(logger *slog.Logger, env string, routes Routes) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Security(env))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorLog(routes.ErrorSink, logger))

	api := r.Group("/api")
	api.POST("/sign-up", handler.Adapt(routes.SignUp))
	api.POST("/sign-in", handler.Adapt(routes.SignIn))

	api.POST("/add-survey", middleware.Gate(routes.AdminAuth), handler.Adapt(routes.AddSurvey))
	api.GET("/surveys", middleware.Gate(routes.UserAuth), handler.Adapt(routes.LoadSurveys))

	return r
}
