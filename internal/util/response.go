package util

import (
	"net/http"

	"pawlearn_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Wire taxonomy: infrastructure failures answer 500 {"error": msg} with the
// raw database error; domain failures answer 4xx {"message": msg}.

// ErrorResponse is the 500 body for unclassified database failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body for domain-level 4xx responses and simple acks.
type MessageResponse struct {
	Message string `json:"message"`
}

// OK writes data as-is with status 200. Listing endpoints respond with bare
// arrays, lookups with bare objects; there is no envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: message})
}

// DBError logs the failure and surfaces the underlying message uncooked, as
// the API contract requires. Never retried.
func DBError(c *gin.Context, err error) {
	logger.Log.Error("database error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
