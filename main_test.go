package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftshop/internal/config"
	"giftshop/internal/database/databasetest"
	"giftshop/internal/models"
)

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:     ":0",
			Name:     "Gift Business API",
			Version:  "1.0.0",
			LogLevel: "info",
		},
		Telegram: config.TelegramConfig{
			ChannelURL:      "https://t.me/your_gift_channel",
			OrderChannelURL: "https://t.me/amoragifts",
		},
		RabbitMQ: config.RabbitMQConfig{Queue: "product_events"},
		CORS:     config.CORSConfig{AllowOrigins: "*"},
	}
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newApp(testConfig(), databasetest.NewProvider(t), nil)
}

func request(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data
}

func TestApp_OrderFlow(t *testing.T) {
	app := setupTestApp(t)

	resp := request(t, app, http.MethodPost, "/products/", `{"name":"Mug","price":10,"category":"Home"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created models.Product
	require.NoError(t, json.Unmarshal(readBody(t, resp), &created))
	require.Positive(t, created.ID)

	resp = request(t, app, http.MethodGet, fmt.Sprintf("/order/%d", created.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var order models.OrderInfo
	require.NoError(t, json.Unmarshal(readBody(t, resp), &order))
	assert.Equal(t, "https://t.me/amoragifts", order.TelegramChannel)
	assert.Contains(t, order.Message, "Mug")

	resp = request(t, app, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(readBody(t, resp)), "https://t.me/your_gift_channel")

	resp = request(t, app, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Product not found"}`, string(readBody(t, resp)))
}

func TestApp_RequestID(t *testing.T) {
	app := setupTestApp(t)

	resp := request(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestApp_CORS(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://shop.example")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestApp_Metrics(t *testing.T) {
	app := setupTestApp(t)

	request(t, app, http.MethodGet, "/products/", "")
	request(t, app, http.MethodGet, "/products/abc", "")

	resp := request(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := string(readBody(t, resp))
	assert.Regexp(t, `http_requests_total\{method="GET",route="/products/?",status="200"\} 1`, body)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/products/:id",status="422"} 1`)
}

func TestApp_PanicRecovered(t *testing.T) {
	app := setupTestApp(t)
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	resp := request(t, app, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, string(readBody(t, resp)))
}

func TestSetupLogger(t *testing.T) {
	defer logrus.SetOutput(io.Discard)
	defer logrus.SetLevel(logrus.InfoLevel)

	setupLogger("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	setupLogger("chatty")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
