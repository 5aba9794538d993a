// Package server exposes the POS services over an HTTP+JSON surface.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dinewise/pos/internal/auth"
	"github.com/dinewise/pos/internal/service"
)

// Server bundles the services behind the HTTP handlers.
type Server struct {
	auth      *service.AuthService
	tables    *service.TableService
	menu      *service.MenuService
	orders    *service.OrderService
	bills     *service.BillService
	analytics *service.AnalyticsService
	jwt       *auth.JWTManager
}

// New creates a Server over the given services.
func New(
	authSvc *service.AuthService,
	tables *service.TableService,
	menu *service.MenuService,
	orders *service.OrderService,
	bills *service.BillService,
	analytics *service.AnalyticsService,
	jwt *auth.JWTManager,
) *Server {
	return &Server{
		auth:      authSvc,
		tables:    tables,
		menu:      menu,
		orders:    orders,
		bills:     bills,
		analytics: analytics,
		jwt:       jwt,
	}
}

// Router builds the gin engine with all routes and middleware attached.
// allowOrigin scopes CORS to the frontend's origin ("*" for development).
func (s *Server) Router(allowOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), Metrics())

	corsCfg := cors.DefaultConfig()
	if allowOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{allowOrigin}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		respond(c, 200, "ok", nil)
	})
	r.GET("/metrics", MetricsHandler())

	api := r.Group("/api")
	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	protected := api.Group("", RequireAuth(s.jwt))

	protected.POST("/tables", s.handleCreateTable)
	protected.GET("/tables", s.handleListTables)
	protected.PUT("/tables/:id", s.handleSetTableStatus)
	protected.POST("/tablemove", s.handleMoveTable)

	protected.GET("/categories", s.handleListCategories)
	protected.POST("/orders", s.handleAddOrderItem)
	protected.GET("/orders", s.handleListOrders)
	protected.GET("/orders/:id", s.handleGetOrder)
	protected.PUT("/orders/:id", s.handleSetOrderStatus)
	protected.POST("/orders/cancel", s.handleCancelOrderItem)
	protected.PUT("/orders/:id/items/:itemId", s.handleUpdateQuantity)

	protected.GET("/bills", s.handleListBills)
	protected.GET("/bills/unpaid", s.handleListUnpaidBills)
	protected.GET("/bills/:billId", s.handleGetBill)
	protected.POST("/bills/:billId", s.handlePayBill)
	protected.PUT("/bills/update/:billId", s.handleApplyDiscount)

	// Menu mutation, table deletion, staff listing and analytics are
	// admin-only.
	admin := protected.Group("", RequireRole("admin"))
	admin.DELETE("/tables/:id", s.handleDeleteTable)
	admin.POST("/categories", s.handleCreateCategory)
	admin.PUT("/categories/:id", s.handleRenameCategory)
	admin.DELETE("/categories/:id", s.handleDeleteCategory)
	admin.POST("/categories/:id/items", s.handleAddMenuItem)
	admin.PUT("/categories/:id/items/:itemId", s.handleUpdateMenuItem)
	admin.DELETE("/categories/:id/items/:itemId", s.handleDeleteMenuItem)
	admin.GET("/users", s.handleListUsers)
	admin.GET("/analytics", s.handleDailyAnalytics)
	admin.GET("/analyticsfilter", s.handleFilteredAnalytics)

	return r
}
