package router

import (
	"net/http"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateResource(c *ginext.Context)
	ListResources(c *ginext.Context)
	GetResourceAvailability(c *ginext.Context)
	PurchaseResource(c *ginext.Context)
	RequestBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	CreateOwner(c *ginext.Context)
	ListOwners(c *ginext.Context)
	ListHeldResources(c *ginext.Context)
	ListOwnerAllocations(c *ginext.Context)
	ReplaceRoster(c *ginext.Context)
	CreditBudget(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	ownerOnly := middleware.RequireRole(middleware.RoleOwner)
	adminOnly := middleware.RequireRole(middleware.RoleAdmin)

	api := router.Group("/api")
	{
		// Resources
		api.POST("/resources", adminOnly, h.CreateResource)
		api.GET("/resources", h.ListResources)
		api.GET("/resources/:id/availability", h.GetResourceAvailability)
		api.POST("/resources/:id/purchase", ownerOnly, h.PurchaseResource)
		api.POST("/resources/:id/bookings", ownerOnly, h.RequestBooking)

		// Bookings (admin review)
		api.POST("/bookings/:id/approve", adminOnly, h.ApproveBooking)
		api.POST("/bookings/:id/reject", adminOnly, h.RejectBooking)

		// Owners
		api.POST("/owners", adminOnly, h.CreateOwner)
		api.GET("/owners", h.ListOwners)
		api.GET("/owners/:id/resources", h.ListHeldResources)
		api.GET("/owners/:id/allocations", h.ListOwnerAllocations)
		api.PUT("/owners/:id/roster", ownerOnly, h.ReplaceRoster)
		api.POST("/owners/:id/budget", adminOnly, h.CreditBudget)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
