package report

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *fakeShare) {
	app := fiber.New()
	share := newFakeShare()
	svc := NewService(&fakeSource{orders: snapshot()}, share, zap.NewNop())
	handler := NewHandler(svc, zap.NewNop())
	handler.RegisterRoutes(app)
	return app, share
}

func TestHandleGenerate(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/reports/generate?type=Sales", nil))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var result Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, result.FileName, "Sales_Report_")
	assert.Contains(t, result.Content, "Total Orders: 2")
}

func TestHandleDownload(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		app, share := setupTestApp(t)
		share.Write(nil, "Order ID,Customer\n", "r.csv")

		resp, err := app.Test(httptest.NewRequest("GET", "/reports/download/r.csv", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Order ID,Customer\n", string(body))
	})

	t.Run("Missing", func(t *testing.T) {
		app, _ := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/reports/download/missing.csv", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
