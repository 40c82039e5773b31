package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
)

// JSON writes v as the JSON response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encode terminates the document with a newline
	body := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	return write(w, status, contentTypeJSON, body)
}

// Text writes s as a plain text response body with the given status.
func Text(w http.ResponseWriter, status int, s string) error {
	return write(w, status, contentTypeText, []byte(s))
}

func write(w http.ResponseWriter, status int, contentType string, body []byte) error {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)

	_, err := w.Write(body)
	return err
}

// ServeFile streams the named file from fsys. The content type is inferred
// from the file extension, falling back to content sniffing. A missing file
// yields a 404 error and nothing is written.
func ServeFile(w http.ResponseWriter, r *http.Request, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fileError(name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fileError(name, err)
	}

	if info.IsDir() {
		return Error(http.StatusNotFound, name+" not found")
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		content = bytes.NewReader(data)
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)

	return nil
}

func fileError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &HTTPError{Status: http.StatusNotFound, Message: name + " not found", Cause: err}
	}

	return err
}
