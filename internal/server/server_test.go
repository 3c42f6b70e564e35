package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linksound/wavekit/internal/config"
	"github.com/linksound/wavekit/internal/logger"
	"github.com/linksound/wavekit/internal/server"
	"github.com/linksound/wavekit/internal/waveform"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*server.Server, *waveform.Session) {
	t.Helper()

	cfg := &config.Config{
		Env:         "development",
		MonitorPort: "0",
		LogLevel:    "info",
	}

	sess, err := waveform.NewSession(waveform.DefaultConfig(), nil)
	require.NoError(t, err)

	return server.New(cfg, logger.Setup(cfg), sess), sess
}

func get(t *testing.T, s *server.Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "healthy")
}

func TestServer_Styles(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/v1/styles")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Styles []string `json:"styles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Styles, 18)
	require.Contains(t, body.Styles, "spotify")
}

func TestServer_StyleByName(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/v1/styles/neon")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"neon"`)
}

func TestServer_StyleUnknown(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/v1/styles/winamp")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "1003")
}

func TestServer_SessionState(t *testing.T) {
	s, sess := newTestServer(t)

	rec := get(t, s, "/api/v1/session")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"state":"idle"`)

	sess.Start()
	sess.UpdateAmplitude(0.5)

	rec = get(t, s, "/api/v1/session")
	require.Contains(t, rec.Body.String(), `"state":"recording"`)
	require.Contains(t, rec.Body.String(), `"historyLen":1`)
}

func TestServer_Geometry(t *testing.T) {
	s, sess := newTestServer(t)

	sess.Start()
	sess.UpdateAmplitude(0.8)

	rec := get(t, s, "/api/v1/geometry")
	require.Equal(t, http.StatusOK, rec.Code)

	var frame waveform.Frame
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &frame))
	require.Len(t, frame.Geometry, sess.Config().BarCount)
	require.NotEmpty(t, frame.Style.Name)
}

func TestServer_GeometryFromWatch(t *testing.T) {
	s, sess := newTestServer(t)

	frames := make(chan waveform.Frame, 1)
	s.Watch(frames)

	sess.Start()
	sess.UpdateAmplitude(0.9)
	frames <- sess.Frame()
	close(frames)

	require.Eventually(t, func() bool {
		rec := get(t, s, "/api/v1/geometry")
		return rec.Code == http.StatusOK && len(rec.Body.Bytes()) > 2
	}, time.Second, 10*time.Millisecond)
}
