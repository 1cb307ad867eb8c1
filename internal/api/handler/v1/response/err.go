package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error payload rendered to callers. The underlying cause is
// logged but never serialized.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`

	cause error
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	logger := zap.L().With(
		zap.Int("status", err.StatusCode),
		zap.String("path", ctx.Request.URL.Path),
		zap.Error(err.cause),
	)
	if err.StatusCode >= http.StatusInternalServerError {
		logger.Error(err.Msg)
	} else {
		logger.Warn(err.Msg)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
		cause:      err,
	}
}

// ErrInvalidAuth is the single response for every authentication and
// authorization failure. Callers cannot tell a missing credential, an
// unknown account, and a missing salesperson assignment apart; the logs
// can.
func ErrInvalidAuth() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "invalid auth",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "wrong credentials",
		cause:      err,
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found by %v (%v)", resource, key, value),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
		cause:      err,
	}
}
