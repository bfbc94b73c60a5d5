package api

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/api/respond"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/config"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/pages"
)

// PageHandler serves the pre-rendered login and index pages.
type PageHandler struct {
	login         []byte
	index         []byte
	unmatchedMode string
}

// NewPageHandler renders both pages once. unmatchedMode is config.UnmatchedRedirect
// or config.UnmatchedLogin.
func NewPageHandler(unmatchedMode string) *PageHandler {
	return &PageHandler{
		login:         []byte(pages.LoginPage()),
		index:         []byte(pages.IndexPage()),
		unmatchedMode: unmatchedMode,
	}
}

// Login handles GET /
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.login)
}

// Index handles GET /index
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.index)
}

// Unmatched handles every request no route accepted. GET and HEAD are sent
// to the login page, by redirect or directly depending on the mode; other
// methods get a JSON 404.
func (h *PageHandler) Unmatched(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		respond.WriteNotFound(w, "no route for "+r.Method+" "+r.URL.Path)
		return
	}
	if h.unmatchedMode == config.UnmatchedLogin {
		writeHTML(w, h.login)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// staticHandler serves files from fsys without directory listings.
func staticHandler(fsys fs.FS, unmatched http.Handler) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" || strings.HasSuffix(name, "/") {
			unmatched.ServeHTTP(w, r)
			return
		}
		if st, err := fs.Stat(fsys, name); err != nil || st.IsDir() {
			unmatched.ServeHTTP(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
