package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wamisho-d/ecommerece/internal/auth"
	"github.com/wamisho-d/ecommerece/internal/notifier"
	"github.com/wamisho-d/ecommerece/internal/store"
)

// Routes registers every endpoint on r. The authorization gates are applied
// per route so each row of the route table names its own requirement.
func Routes(r *gin.Engine, st *store.Store, tokens *auth.Manager, notify *notifier.Notifier) {

	customers := &CustomerHandler{Store: st}
	accounts := &AccountHandler{Store: st}
	products := &ProductHandler{Store: st}
	orders := &OrderHandler{Store: st, Notifier: notify}
	login := &AuthHandler{Store: st, Tokens: tokens}

	admin := tokens.RequireAdmin()
	authed := tokens.RequireAuth()

	// ── public endpoints ──
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.POST("/auth/token", login.Token)
	r.GET("/swagger.yaml", ServeSwagger)
	r.GET("/products", products.List)
	r.GET("/products/:id", products.Get)

	// ── admin API ──
	r.POST("/customers", admin, customers.Create)
	r.GET("/customers/:id", admin, customers.Get)
	r.PUT("/customers/:id", admin, customers.Update)
	r.DELETE("/customers/:id", admin, customers.Delete)

	r.POST("/customers/:id/accounts", admin, accounts.Create)
	r.GET("/customers/accounts/:id", admin, accounts.Get)
	r.PUT("/customers/accounts/:id", admin, accounts.Update)
	r.DELETE("/customers/accounts/:id", admin, accounts.Delete)

	r.POST("/products", admin, products.Create)
	r.PUT("/products/:id", admin, products.Update)
	r.DELETE("/products/:id", admin, products.Delete)

	// ── authenticated API ──
	r.POST("/orders/:customer_id", authed, orders.Place)
	r.GET("/orders/:id", authed, orders.Get)
}
