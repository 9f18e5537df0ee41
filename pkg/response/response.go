package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-suggestion-service/pkg/errors"
)

// Resp is the envelope every endpoint answers with.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// NewOKResp wraps data in a success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error reports an *errors.HTTPError with its own status and message.
// Anything else is a 400 with ErrorCode 1.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{ErrorCode: httpErr.Code, Message: httpErr.Message, Data: data})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{ErrorCode: errorCodeUnknown, Message: err.Error(), Data: data})
}

// Unavailable sends 503 with a reason and optional data.
func Unavailable(c *gin.Context, reason string, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   reason,
		Data:      data,
	})
}
