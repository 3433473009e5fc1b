package controllers

import (
	"errors"
	"log"
	"os"
	"strings"

	"bathroom-report-api/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP response. Internal detail is
// only exposed outside production.
func respondError(c *gin.Context, err error, fallback string) {
	kind := utils.KindOf(err)

	message := fallback
	var appErr *utils.AppError
	if errors.As(err, &appErr) && appErr.Kind != utils.KindInternal && appErr.Message != "" {
		message = appErr.Message
	}

	payload := gin.H{"error": message}
	if kind == utils.KindInternal {
		log.Printf("internal error [%s %s]: %v", c.Request.Method, c.Request.URL.Path, err)
		if strings.ToLower(os.Getenv("ENVIRONMENT")) != "production" {
			payload["message"] = err.Error()
		}
	}

	c.JSON(kind.HTTPStatus(), payload)
}
