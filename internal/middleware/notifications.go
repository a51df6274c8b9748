package middleware

import (
	"catalog/internal/notification"

	"github.com/gin-gonic/gin"
)

const NotifierKey = "notifier"

// Notifications attaches a fresh Notifier to the request context. Services
// merge the violations of every call into it, so the request as a whole can
// be inspected after the handler ran.
func Notifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		n := notification.New()
		c.Set(NotifierKey, n)
		c.Request = c.Request.WithContext(notification.NewContext(c.Request.Context(), n))
		c.Next()
	}
}

// GetNotifier returns the request's Notifier, or nil outside the middleware.
func GetNotifier(c *gin.Context) *notification.Notifier {
	v, ok := c.Get(NotifierKey)
	if !ok {
		return nil
	}
	n, _ := v.(*notification.Notifier)
	return n
}
