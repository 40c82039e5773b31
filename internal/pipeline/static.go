package pipeline

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const indexFile = "index.html"

// NewPublicFS returns the read-only asset root configured in cfg.
func NewPublicFS(cfg Config) fs.FS {
	return os.DirFS(cfg.withDefaults().PublicDir)
}

func (p *Pipeline) serveStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		name, ok := assetName(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		info, err := fs.Stat(p.public, name)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if info.IsDir() {
			if !strings.HasSuffix(r.URL.Path, "/") {
				redirectToDir(w, r)
				return
			}

			index := path.Join(name, indexFile)
			if info, err := fs.Stat(p.public, index); err != nil || info.IsDir() {
				next.ServeHTTP(w, r)
				return
			}

			name = index
		}

		if err := ServeFile(w, r, p.public, name); err != nil {
			p.fail(w, r, err)
		}
	})
}

// assetName maps a URL path onto a name inside the asset root. Paths with
// dot-file segments are never served.
func assetName(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return ".", true
	}

	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return "", false
		}
	}

	return name, fs.ValidPath(name)
}

func redirectToDir(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Path + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, target, http.StatusMovedPermanently)
}
