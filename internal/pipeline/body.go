package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
)

func (p *Pipeline) parseBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r) {
			next.ServeHTTP(w, r)
			return
		}

		body, err := readJSONBody(w, r, p.config.MaxBodyBytes)
		if err != nil {
			p.fail(w, r, err)
			return
		}

		if body != nil {
			r = r.WithContext(contextWithBody(r.Context(), body))
		}

		next.ServeHTTP(w, r)
	})
}

func isJSON(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// readJSONBody reads at most limit bytes of JSON. Only objects and arrays
// are accepted at the top level; an array yields a nil map.
func readJSONBody(w http.ResponseWriter, r *http.Request, limit int64) (map[string]any, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrEntityTooLarge
		}
		return nil, Wrap(http.StatusBadRequest, "failed to read body", err)
	}

	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] != '{' && data[0] != '[' {
		return nil, Wrap(http.StatusBadRequest, "malformed JSON body", errUnsupportedBody)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, Wrap(http.StatusBadRequest, "malformed JSON body", err)
	}

	body, _ := value.(map[string]any)
	return body, nil
}
