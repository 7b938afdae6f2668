package routes

import (
	"payu_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathPayU       = "/payu"
	PathPayUNotify = usecase.NotifyPath
)

// addPayURoutes mounts the storefront-facing endpoints at the root; Ecwid and
// PayU are configured with these exact paths.
func addPayURoutes(r gin.IRoutes, h Handlers) {
	r.POST(PathPayU, h.PayUOrder.CreateOrder)
	r.POST(PathPayUNotify, h.Notification.Notify)
}
