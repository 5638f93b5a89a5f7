package http

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/pkg/core/fiber_handle"
	internalapp "github.com/suyu0925/coordx/system/coordinate/internal/app"
)

func newTestApp(t *testing.T, digits int) *fiber.App {
	t.Helper()
	log := common.GetLogger()
	f := fiber.New(fiber.Config{ErrorHandler: fiber_handle.ErrHandler})
	NewCoordinateController(internalapp.NewApp(digits, log), log).RegisterRoutes(f.Group("/api"))
	return f
}

func post(t *testing.T, f *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := f.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestConvert(t *testing.T) {
	f := newTestApp(t, 6)

	status, body := post(t, f, "/api/coordinates/convert", `{"from":"wgs84","to":"gcj02","lng":121.4737,"lat":31.2304}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, int64(200), gjson.Get(body, "status").Int())
	assert.Equal(t, "GCJ02", gjson.Get(body, "data.system").String())
	assert.InDelta(t, 121.47822305927693, gjson.Get(body, "data.lng").Float(), 1e-9)
	assert.InDelta(t, 31.22845773757727, gjson.Get(body, "data.lat").Float(), 1e-9)
}

func TestConvertSameSystem(t *testing.T) {
	f := newTestApp(t, 6)

	status, body := post(t, f, "/api/coordinates/convert", `{"from":"BD-09","to":"bd09","lng":121.4737,"lat":0}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "BD09", gjson.Get(body, "data.system").String())
	assert.Equal(t, 121.4737, gjson.Get(body, "data.lng").Float())
	assert.Equal(t, 0.0, gjson.Get(body, "data.lat").Float())
}

func TestConvertBadRequest(t *testing.T) {
	f := newTestApp(t, 6)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"from":`},
		{"unknown system", `{"from":"utm","to":"gcj02","lng":1,"lat":2}`},
		{"missing lat", `{"from":"wgs84","to":"gcj02","lng":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, f, "/api/coordinates/convert", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status, body)
			assert.Equal(t, "VALIDATION_ERROR", gjson.Get(body, "code").String())
		})
	}
}

func TestParse(t *testing.T) {
	f := newTestApp(t, 6)

	status, body := post(t, f, "/api/coordinates/parse", `{"text":"39.9042° N 116.4074° E"}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "DDDL", gjson.Get(body, "data.notation").String())
	assert.Equal(t, 39.9042, gjson.Get(body, "data.lat").Float())
	assert.Equal(t, 116.4074, gjson.Get(body, "data.lng").Float())
}

func TestParseInvalidFormat(t *testing.T) {
	f := newTestApp(t, 6)

	status, body := post(t, f, "/api/coordinates/parse", `{"text":"somewhere in shanghai"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status, body)
	assert.Equal(t, "INVALID_FORMAT", gjson.Get(body, "code").String())
	assert.Equal(t, "somewhere in shanghai", gjson.Get(body, "details.input").String())

	status, _ = post(t, f, "/api/coordinates/parse", `{"text":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		digits int
		body   string
		want   string
	}{
		{"config default", 6, `{"lng":121.5412173,"lat":31.2153669}`, "31.215367,121.541217"},
		{"config raw", 0, `{"lng":121.5412173,"lat":31.2153669}`, "31.2153669,121.5412173"},
		{"explicit digits", 6, `{"lng":121.5412173,"lat":31.2153669,"fraction_digits":4}`, "31.2154,121.5412"},
		{"explicit zero", 6, `{"lng":121.5412173,"lat":31.2153669,"fraction_digits":0}`, "31.2153669,121.5412173"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestApp(t, tt.digits)
			status, body := post(t, f, "/api/coordinates/format", tt.body)
			require.Equal(t, fiber.StatusOK, status, body)
			assert.Equal(t, tt.want, gjson.Get(body, "data.text").String())
		})
	}
}

func TestFormatDigitsOutOfRange(t *testing.T) {
	f := newTestApp(t, 6)
	status, body := post(t, f, "/api/coordinates/format", `{"lng":1,"lat":2,"fraction_digits":16}`)
	assert.Equal(t, fiber.StatusBadRequest, status, body)
}

func TestUnknownRoute(t *testing.T) {
	f := newTestApp(t, 6)
	status, _ := post(t, f, "/api/coordinates/project", `{}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}
