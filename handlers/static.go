package handlers

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// DashboardFile is only reachable through the lab-authenticated route.
const DashboardFile = "dashboard.html"

type StaticHandler struct {
	dir   string
	files http.Handler
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir, files: http.FileServer(http.Dir(dir))}
}

// Index handles GET /
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}

// Dashboard handles GET /dashboard.html (lab auth)
func (h *StaticHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, DashboardFile))
}

// Files handles every other GET path under the static directory. The
// dashboard is refused here so it cannot be fetched around the auth route.
func (h *StaticHandler) Files(w http.ResponseWriter, r *http.Request) {
	if strings.EqualFold(path.Base(path.Clean(r.URL.Path)), DashboardFile) {
		http.NotFound(w, r)
		return
	}
	h.files.ServeHTTP(w, r)
}
