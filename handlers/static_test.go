package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cbet/sentinelles/testutil"
)

func TestStaticHandler(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "index.html"), []byte("accueil"), 0o644)
	os.WriteFile(filepath.Join(dir, "dashboard.html"), []byte("labo"), 0o644)
	os.MkdirAll(filepath.Join(dir, "js"), 0o755)
	os.WriteFile(filepath.Join(dir, "js", "app.js"), []byte("console.log(1)"), 0o644)

	h := NewStaticHandler(dir)

	t.Run("index", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Index(w, httptest.NewRequest("GET", "/", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Body.String() != "accueil" {
			t.Errorf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("asset", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Files(w, httptest.NewRequest("GET", "/js/app.js", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("dashboard through file server is refused", func(t *testing.T) {
		for _, p := range []string{"/dashboard.html", "/js/../dashboard.html", "/Dashboard.HTML"} {
			w := httptest.NewRecorder()
			h.Files(w, httptest.NewRequest("GET", p, nil))
			testutil.AssertStatus(t, w, http.StatusNotFound)
			if strings.Contains(w.Body.String(), "labo") {
				t.Errorf("%s: dashboard content served without auth", p)
			}
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Dashboard(w, httptest.NewRequest("GET", "/dashboard.html", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Body.String() != "labo" {
			t.Errorf("unexpected body %q", w.Body.String())
		}
	})
}
