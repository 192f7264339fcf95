package api

import (
	"ExerciseTracker/internal/api/config"
	"ExerciseTracker/internal/api/dto"
	"ExerciseTracker/internal/api/handler"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listOnlyService struct {
	users []*dto.UserDTO
}

func (s *listOnlyService) CreateOrGetUser(context.Context, string) (*dto.UserDTO, error) {
	return nil, nil
}

func (s *listOnlyService) AddExercise(context.Context, string, *dto.AddExerciseDTO) (*dto.ExerciseDTO, error) {
	return nil, nil
}

func (s *listOnlyService) ListUsers(context.Context) ([]*dto.UserDTO, error) {
	return s.users, nil
}

func (s *listOnlyService) GetLogs(context.Context, string, *dto.LogQueryDTO) (*dto.UserLogDTO, error) {
	return nil, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	views, public := filepath.Join(root, "views"), filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(views, 0o755))
	require.NoError(t, os.MkdirAll(public, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(views, "index.html"), []byte("<h1>Exercise tracker</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "style.css"), []byte("body{}"), 0o644))

	cfg := &config.Config{Server: config.ServerConfig{ViewsPath: views, PublicPath: public}}
	group := &HandlersGroup{
		ExerciseTrackerHandler: handler.NewExerciseTrackerHandler(&listOnlyService{
			users: []*dto.UserDTO{{Username: "fcc_test", ID: "65a1b2c3d4e5f60718293a4b"}},
		}),
	}
	return SetupRouter(group, cfg)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_StaticPages(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Exercise tracker")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/public/style.css", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	// 与 public 目录同名的根路径
	w = serve(r, httptest.NewRequest(http.MethodGet, "/style.css", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
}

func TestSetupRouter_UnknownPathIsNotFound(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/missing.css", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/../go.mod", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/style.css", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRouter_Ping(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestSetupRouter_UsersRoute(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"username":"fcc_test","_id":"65a1b2c3d4e5f60718293a4b"}]`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_TraceIDPropagated(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("X-Trace-ID", "abc-123")
	w := serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Trace-ID"))
}

func TestSetupRouter_Preflight(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "content-type", w.Header().Get("Access-Control-Allow-Headers"))
}
