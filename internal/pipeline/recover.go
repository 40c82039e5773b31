package pipeline

import (
	"fmt"
	"net/http"
)

func (p *Pipeline) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			// net/http relies on this panic to abort the connection
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			p.fail(w, r, &HTTPError{
				Status:  http.StatusInternalServerError,
				Message: DefaultErrorMessage,
				Cause:   fmt.Errorf("%w: %v", ErrPanicked, rec),
			})
		}()

		next.ServeHTTP(w, r)
	})
}
