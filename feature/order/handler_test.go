package order

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"retail-storage/feature/order/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mockStore, *mockQueue) {
	app := fiber.New()
	store := new(mockStore)
	queue := new(mockQueue)
	svc := NewService(store, queue, zap.NewNop())
	handler := NewHandler(svc, zap.NewNop())
	handler.RegisterRoutes(app)
	return app, store, queue
}

func TestHandleCreate(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		app, store, queue := setupTestApp(t)

		store.On("Put", mock.Anything, mock.Anything).Return(true)
		queue.On("Send", mock.Anything, mock.Anything, "ProcessPayment").Return(true)

		body := `{"customer_id":"c-1","customer_name":"Alice","product_id":"p-1","product_name":"Widget","quantity":3,"price":9.99}`
		req := httptest.NewRequest("POST", "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.NotEmpty(t, out["order_id"])
	})

	t.Run("InvalidInput", func(t *testing.T) {
		app, store, _ := setupTestApp(t)

		body := `{"customer_name":"","product_name":"Widget","quantity":-1}`
		req := httptest.NewRequest("POST", "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("PersistFailure", func(t *testing.T) {
		app, store, _ := setupTestApp(t)

		store.On("Put", mock.Anything, mock.Anything).Return(false)

		body := `{"customer_name":"Alice","product_name":"Widget","quantity":1,"price":1}`
		req := httptest.NewRequest("POST", "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleList(t *testing.T) {
	app, store, _ := setupTestApp(t)

	store.On("ListAll", mock.Anything).Return([]models.OrderRecord{
		{OrderID: "order-1", CustomerName: "Alice", ProductName: "Widget", Quantity: 3, Price: 9.99},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var orders []models.OrderRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "Alice", orders[0].CustomerName)
}

func TestHandleProcessQueue(t *testing.T) {
	app, _, queue := setupTestApp(t)

	queue.On("ReceiveBatch", mock.Anything, 2).Return([]string{`{"orderId":"order-1","action":"ProcessPayment"}`})

	resp, err := app.Test(httptest.NewRequest("POST", "/orders/queue/process?max=2", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out struct {
		Count    int      `json:"count"`
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Messages, 1)
	assert.Contains(t, out.Messages[0], "ProcessPayment")
}
