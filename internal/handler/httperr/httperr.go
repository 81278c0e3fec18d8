package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError writes the API error body and aborts the chain. When err is
// non-nil it is recorded on the context for the logging middleware; binding
// failures may pass nil when the cause is already in msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status, Error: msg, Detail: detail}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
