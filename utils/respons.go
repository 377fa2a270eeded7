package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope of every API reply. Message is the toast the
// front end shows; Redirect, when set, is where it should navigate next.
type JSONResponse struct {
	Status   bool        `json:"status"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError replies with a user facing message. Internal error text is
// never sent; log it before calling this.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: message,
	})
}

func RespondRedirect(c *gin.Context, code int, message, redirect string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:   code >= 200 && code < 300,
		Message:  message,
		Data:     data,
		Redirect: redirect,
	})
}
