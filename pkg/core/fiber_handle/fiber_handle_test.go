package fiber_handle

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/suyu0925/coordx/pkg/common"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	f := fiber.New(fiber.Config{ErrorHandler: ErrHandler})
	f.Use(NewRequestID())
	f.Use(HealthCheck(HealthCheckConfig{Path: "/health"}))
	f.Get("/test", handler)
	return f
}

func doGet(t *testing.T, f *fiber.App, path string, header map[string]string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := f.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestErrHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", common.NewValidationError("bad", nil), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid format", common.NewInvalidFormatError("bad text", nil).WithField("input", "x"), http.StatusUnprocessableEntity, "INVALID_FORMAT"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestApp(func(c *fiber.Ctx) error { return tt.err })
			resp, body := doGet(t, f, "/test", nil)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, int64(tt.status), gjson.Get(body, "status").Int())
			assert.Equal(t, tt.code, gjson.Get(body, "code").String())
		})
	}
}

func TestErrHandlerDetails(t *testing.T) {
	f := newTestApp(func(c *fiber.Ctx) error {
		return common.NewInvalidFormatError("bad text", nil).WithField("input", "abc")
	})
	_, body := doGet(t, f, "/test", nil)
	assert.Equal(t, "abc", gjson.Get(body, "details.input").String())
}

func TestErrHandlerFiberError(t *testing.T) {
	f := newTestApp(func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, body := doGet(t, f, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int64(http.StatusNotFound), gjson.Get(body, "status").Int())
	assert.NotEmpty(t, gjson.Get(body, "message").String())
}

func TestRequestID(t *testing.T) {
	var seen string
	f := newTestApp(func(c *fiber.Ctx) error {
		seen = TraceID(c.UserContext())
		return c.SendStatus(http.StatusOK)
	})

	resp, _ := doGet(t, f, "/test", nil)
	id := resp.Header.Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, seen)

	resp, _ = doGet(t, f, "/test", map[string]string{RequestIDHeader: "upstream-id"})
	assert.Equal(t, "upstream-id", resp.Header.Get(RequestIDHeader))
	assert.Equal(t, "upstream-id", seen)
}

func TestTraceIDWithoutMiddleware(t *testing.T) {
	assert.Equal(t, "", TraceID(nil))
}

func TestHealthCheck(t *testing.T) {
	f := newTestApp(func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	resp, body := doGet(t, f, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", gjson.Get(body, "status").String())
}
