package http

import (
	"fmt"

	"github.com/corvide/z85kit/errors"
)

func Recover() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(w ResponseWriter, r *Request) {
			defer func() {
				if err := recover(); err != nil {
					w.WriteHeader(StatusInternalServerError)

					l := RequestLog(r)
					var e error
					switch typedErr := err.(type) {
					case error:
						e = typedErr
					default:
						e = errors.New(fmt.Sprint(err))
					}
					l.Error().Stack().Err(e).Msg("panic recover")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
