package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error envelope shared by all endpoints:
// a non-2xx status code with {"status":"error","message":...}.
type Err struct {
	StatusCode int    `json:"-"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

func newErr(statusCode int, message string) *Err {
	return &Err{
		StatusCode: statusCode,
		Status:     "error",
		Message:    message,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err.Error())
}

func ErrNotFound(what, key string, value interface{}) *Err {
	return newErr(http.StatusNotFound, fmt.Sprintf("%v not found with %v %v", what, key, value))
}

func ErrNotFoundMsg(message string) *Err {
	return newErr(http.StatusNotFound, message)
}

// ErrInternalServerError logs the wrapped cause and returns a generic
// envelope, so internals never leak to the caller.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return newErr(http.StatusInternalServerError, "internal server error")
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.StatusCode, err)
}
