package httperr

import (
	"net/http"

	"laundromat-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    string `json:"kind,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var statusByKind = map[errs.Kind]int{
	errs.KindInvalidSlot:             http.StatusBadRequest,
	errs.KindNotFound:                http.StatusNotFound,
	errs.KindConflict:                http.StatusConflict,
	errs.KindForbidden:               http.StatusForbidden,
	errs.KindInvalidState:            http.StatusConflict,
	errs.KindInvalidTransactionShape: http.StatusInternalServerError,
	errs.KindInsufficientBalance:     http.StatusPaymentRequired,
	errs.KindInvalidArgument:         http.StatusBadRequest,
	errs.KindInternal:                http.StatusInternalServerError,
}

func StatusOf(kind errs.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithKind answers with the status of the error kind marked on err.
// Server-side failures hide their message.
func AbortWithKind(c *gin.Context, err error) {
	if err == nil {
		panic("AbortWithKind: err cannot be nil")
	}

	kind := errs.KindOf(err)
	status := StatusOf(kind)

	resp := Response{Status: status}
	resp.Error.Kind = string(kind)
	resp.Error.Message = err.Error()
	if status >= http.StatusInternalServerError {
		resp.Error.Message = "Internal server error"
	}

	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
