package server_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"backoffice/internal/config"
	"backoffice/internal/infra/db"
	"backoffice/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	staticDir := t.TempDir()
	shell := []byte("<!doctype html><div id=\"app\"></div>")
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), shell, 0o644))

	cfg := config.Config{
		Port:      "0",
		JWTSecret: "test-secret",
		GoEnv:     "dev",
		FEURL:     "http://localhost:5173",
		StaticDir: staticDir,
	}
	return server.New(cfg, gormDB)
}

func TestSPAFallback_ServesShell(t *testing.T) {
	s := newTestServer(t)

	// フロント側のルートはすべてindex.htmlに落ちる
	for _, path := range []string{"/", "/admin/products", "/login"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "<div id=\"app\">", path)
	}
}

func TestSPAFallback_APIPathsStayJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/nonexistent", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<div id=\"app\">")
}
