package middleware

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/rs/zerolog"
)

// RecoverMiddleware handler panic時回500，不讓process掛掉
func RecoverMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					var errMsg string
					if e, ok := err.(error); ok {
						errMsg = e.Error()
					} else {
						errMsg = fmt.Sprintf("%v", err)
					}

					if logger != nil {
						logger.Error().
							Str("request_id", GetRequestID(r)).
							Str("method", r.Method).
							Str("url", r.URL.String()).
							Str("error", errMsg).
							Msg("handler panic")
					}

					dto.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
