package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/devboardhq/devboard/internal/services"
	"github.com/gin-gonic/gin"
)

// statusFor maps the service error taxonomy to HTTP statuses. Conflicts
// return 400 to preserve the API contract clients already handle.
func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// fail normalizes every handler failure to {"error": msg}. Unclassified
// errors are logged and answered with the endpoint's generic message so
// internals never leak.
func fail(c *gin.Context, err error, fallback string) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		c.JSON(statusFor(svcErr.Kind), gin.H{"error": svcErr.Msg})
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
