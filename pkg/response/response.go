package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"

	"bank-api/pkg/discord"
	"bank-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 with data wrapped in the Resp envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Body sends 200 with data as the bare JSON body. API resources use this
// so that their documented shapes stay free of the envelope.
func Body(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	HttpError(c, errors.NewUnauthorizedHTTPError())
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	HttpError(c, errors.NewForbiddenHTTPError())
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var httpErr *errors.HTTPError

	switch {
	case stderrors.As(err, &httpErr):
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	default:
		if d != nil && err != nil {
			reportBug(d, buildErrorReport(c, err.Error(), captureStackTrace()))
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends the error rendered by parseError. Unknown errors become a
// generic 500 and, when d is set, are reported to Discord.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// PanicError renders a recovered panic value as a 500.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		frame, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return stackTrace
}
