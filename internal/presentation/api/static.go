package api

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/hilthontt/devops-sample/internal/infrastructure/logging"
)

const indexFile = "index.html"

// staticFiles serves regular files from the public directory and lets every
// other request through to routing. Dotfiles are never served.
func (app *Application) staticFiles(next http.Handler) http.Handler {
	if app.config.Static.Dir == "" {
		return next
	}
	root := http.Dir(app.config.Static.Dir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		f, info, ok := openStatic(root, r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		defer f.Close()

		app.logger.Debug(logging.IO, logging.StaticFile, "serving static file", map[logging.ExtraKey]any{
			logging.Path:     r.URL.Path,
			logging.BodySize: info.Size(),
		})

		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	})
}

func openStatic(root http.FileSystem, urlPath string) (http.File, fs.FileInfo, bool) {
	name := path.Clean("/" + urlPath)
	if hasDotSegment(name) {
		return nil, nil, false
	}

	f, info, ok := openRegular(root, name)
	if ok {
		return f, info, true
	}
	// the root path belongs to the info route, never to an index file
	if info == nil || !info.IsDir() || name == "/" {
		return nil, nil, false
	}

	return openRegular(root, path.Join(name, indexFile))
}

// openRegular opens name and reports ok only for regular files. On a
// directory it still returns the FileInfo so the caller can look for an
// index file.
func openRegular(root http.FileSystem, name string) (http.File, fs.FileInfo, bool) {
	f, err := root.Open(name)
	if err != nil {
		return nil, nil, false
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, false
	}

	if !info.Mode().IsRegular() {
		f.Close()
		return nil, info, false
	}

	return f, info, true
}

func hasDotSegment(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
