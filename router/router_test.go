package router

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/suyu0925/coordx/app"
	"github.com/suyu0925/coordx/app/config"
	fiberserver "github.com/suyu0925/coordx/app/fiber"
	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/pkg/core/fiber_handle"
)

func newServer(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Default()
	logger := common.GetLogger()

	server := fiberserver.NewServer(cfg.AppName, cfg.Server, logger)
	Register(app.NewApp(&cfg, logger), server.GetApp())
	return server.GetApp()
}

func do(t *testing.T, f *fiber.App, method, path, body string) (int, string, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := f.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data), resp.Header.Get(fiber_handle.RequestIDHeader)
}

func TestHealth(t *testing.T) {
	status, body, _ := do(t, newServer(t), fiber.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestConvertRoute(t *testing.T) {
	status, body, requestID := do(t, newServer(t), fiber.MethodPost, "/api/coordinates/convert",
		`{"from":"gcj02","to":"wgs84","lng":121.4737,"lat":31.2304}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, "WGS84", gjson.Get(body, "data.system").String())
	assert.InDelta(t, 121.46917694072306, gjson.Get(body, "data.lng").Float(), 1e-9)
	assert.InDelta(t, 31.23234226242273, gjson.Get(body, "data.lat").Float(), 1e-9)
}

func TestFormatRouteUsesConfigDefault(t *testing.T) {
	status, body, _ := do(t, newServer(t), fiber.MethodPost, "/api/coordinates/format",
		`{"lng":121.5412173,"lat":31.2153669}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "31.215367,121.541217", gjson.Get(body, "data.text").String())
}

func TestErrorStatuses(t *testing.T) {
	f := newServer(t)

	status, body, _ := do(t, f, fiber.MethodPost, "/api/coordinates/parse", `{"text":"no coordinates here"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status, body)

	status, body, _ = do(t, f, fiber.MethodPost, "/api/coordinates/convert", `not json`)
	assert.Equal(t, fiber.StatusBadRequest, status, body)

	status, _, _ = do(t, f, fiber.MethodGet, "/api/unknown", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}
