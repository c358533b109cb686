package response

import "github.com/gin-gonic/gin"

// ErrorBody is the single error shape every failed request returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK writes a success payload as-is.
func OK(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Fail writes the uniform {"error": message} body.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// AbortFail writes the error body and stops the handler chain. Used by
// middleware so rejected requests never reach application logic.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
