package response

import (
	"fmt"
	"net/http"

	"collab-srv/pkg/discord"
	pkgErrors "collab-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// OK renders a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error renders an error response. *pkgErrors.HTTPError keeps its status and
// message; anything else becomes a generic 500 so internals never leak.
// Server-side errors are reported to the Discord webhook when configured.
func Error(c *gin.Context, err error, alert discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		if httpErr.StatusCode >= http.StatusInternalServerError && alert != nil {
			_ = alert.SendError(c.Request.Context(),
				fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
				httpErr.Message, err)
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	if alert != nil {
		_ = alert.SendError(c.Request.Context(),
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			"unhandled error", err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// Unauthorized renders a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError renders a 500 response for a recovered panic.
func PanicError(c *gin.Context, recovered any, alert discord.IDiscord) {
	if alert != nil {
		_ = alert.SendError(c.Request.Context(),
			fmt.Sprintf("panic: %s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Sprintf("%v", recovered), nil)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
