package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = `{"success":false,"error":{"code":"REQUEST_TIMEOUT","message":"Request took too long"}}`

// Timeout cuts off handlers that overrun the request budget, replying 503
// with the standard response envelope. http.TimeoutHandler also puts the
// deadline on the request context, so downstream work is cancelled too.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, timeoutBody)
	}
}
