package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString(CtxTraceID),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString(CtxTraceID),
	})
}

// HandleServiceError maps an error returned by a service onto the response envelope.
func HandleServiceError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		Logger(c).WithError(err).Error("unclassified service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	code := StatusFor(appErr.Kind)
	if code >= http.StatusInternalServerError {
		Logger(c).WithError(err).WithField("kind", appErr.Kind.String()).Error("request failed")
		RespondError(c, code, "Internal server error")
		return
	}

	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: appErr.Message,
		TraceID: c.GetString(CtxTraceID),
		Errors:  appErr.Fields,
	})
}

func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindInvalidParameter, KindInvalidState, KindUnrecognizedEvent:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Logger returns the request-scoped entry installed by the request logger middleware.
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(CtxLogger); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger()).WithField("trace_id", c.GetString(CtxTraceID))
}
