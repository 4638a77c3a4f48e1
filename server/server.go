// Package server serves a site over HTTP, running the content pipeline on
// every page load.
package server

import (
	"bytes"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/offgrid/almanac/core"
	"github.com/offgrid/almanac/page"
)

// Server serves page markup from Site. Routed pages get their content
// rendered per request; everything else is served as a static file.
type Server struct {
	// Site holds page markup and static assets.
	Site fs.FS
	// Controller renders routed pages.
	Controller *page.Controller
}

// Handler returns the HTTP handler for the site.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	static := http.FileServerFS(s.Site)

	mux.HandleFunc("GET /", func(w http.ResponseWriter, req *http.Request) {
		name := pageFile(req.URL.Path)
		if s.Controller.Router.Resolve(req.URL.Path) == core.KindNone || !isHTML(name) {
			static.ServeHTTP(w, req)
			return
		}

		markup, err := fs.ReadFile(s.Site, name)
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, req)
			return
		}
		if err != nil {
			log.Error("read page", "page", name, "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if _, err := s.Controller.LoadPage(req.Context(), req.URL.Path, bytes.NewReader(markup), &buf); err != nil {
			log.Error("render page", "page", name, "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(buf.Bytes())
	})

	return mux
}

// pageFile maps a URL path to the markup file in the site. Directory paths
// resolve to their index.html.
func pageFile(urlPath string) string {
	p := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if p == "" || strings.HasSuffix(urlPath, "/") {
		return path.Join(p, "index.html")
	}
	return p
}

func isHTML(name string) bool {
	return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")
}
