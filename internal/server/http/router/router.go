package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/nedcgroup/backoffice/internal/config"
	"github.com/nedcgroup/backoffice/internal/pkg/metrics"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
	"github.com/nedcgroup/backoffice/internal/server/http/handlers"
	"github.com/nedcgroup/backoffice/internal/server/http/middleware"
	"github.com/nedcgroup/backoffice/internal/server/http/views"
)

// Params are the dependencies of the router.
type Params struct {
	fx.In

	Facade   handlers.Facade
	Sessions *session.Manager
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

// Setup configures gin router with templates, handlers and middleware.
func Setup(p Params) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	tmpl, err := views.Parse()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tmpl)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger, p.Metrics))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	responder := handlers.NewResponder(p.Sessions, p.Logger)
	authHandler := handlers.NewAuthHandler(p.Facade, p.Sessions, responder)
	companyHandler := handlers.NewCompanyHandler(p.Facade, responder)
	orderHandler := handlers.NewOrderHandler(p.Facade, responder)
	invoiceHandler := handlers.NewInvoiceHandler(p.Facade, responder)
	paymentHandler := handlers.NewPaymentHandler(p.Facade, responder)
	adminHandler := handlers.NewAdminHandler(p.Facade, responder)
	activityHandler := handlers.NewActivityHandler(p.Facade, responder)

	engine.GET("/healthz", activityHandler.Health)
	if p.Config.MetricsEnabled && p.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
	}

	engine.GET(middleware.LoginPath, authHandler.LoginPage)
	engine.POST(middleware.LoginPath, authHandler.Login)
	engine.POST("/logout", authHandler.Logout)

	app := engine.Group("")
	app.Use(middleware.SessionRequired(p.Sessions))
	app.GET("/", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, handlers.HomePath) })

	companies := app.Group("/companies")
	companies.GET("", companyHandler.List)
	companies.POST("", companyHandler.Create)
	companies.GET("/new", companyHandler.New)
	companies.GET("/:id", companyHandler.Show)
	companies.POST("/:id", companyHandler.Update)
	companies.GET("/:id/edit", companyHandler.Edit)
	companies.POST("/:id/status", companyHandler.ToggleStatus)
	companies.POST("/:id/reset-password", companyHandler.ResetPassword)
	companies.POST("/:id/reset-pin", companyHandler.ResetPin)
	companies.GET("/:id/delete", companyHandler.ConfirmDelete)
	companies.POST("/:id/delete", companyHandler.Delete)

	companies.GET("/:id/payments", paymentHandler.List)
	companies.POST("/:id/payments", paymentHandler.Create)
	companies.GET("/:id/payments/:paymentID/edit", paymentHandler.Edit)
	companies.POST("/:id/payments/:paymentID", paymentHandler.Update)
	companies.GET("/:id/payments/:paymentID/delete", paymentHandler.ConfirmDelete)
	companies.POST("/:id/payments/:paymentID/delete", paymentHandler.Delete)

	orders := app.Group("/orders")
	orders.GET("/:operator", orderHandler.List)
	orders.POST("/:operator/invoice", orderHandler.GenerateInvoice)
	orders.GET("/:operator/:id", orderHandler.Show)
	orders.GET("/:operator/:id/delete", orderHandler.ConfirmDelete)
	orders.POST("/:operator/:id/delete", orderHandler.Delete)

	invoices := app.Group("/invoices")
	invoices.GET("", invoiceHandler.List)
	invoices.POST("", invoiceHandler.Generate)
	invoices.GET("/:id", invoiceHandler.Show)

	admins := app.Group("/admins")
	admins.GET("", adminHandler.List)
	admins.POST("", adminHandler.Create)
	admins.GET("/new", adminHandler.New)
	admins.POST("/:id", adminHandler.Update)
	admins.GET("/:id/edit", adminHandler.Edit)
	admins.GET("/:id/delete", adminHandler.ConfirmDelete)
	admins.POST("/:id/delete", adminHandler.Delete)

	app.GET("/activity", activityHandler.List)

	engine.NoRoute(activityHandler.NotFound)

	return engine, nil
}
