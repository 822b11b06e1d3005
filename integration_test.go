package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-api/config"
	"github.com/yeremiapane/order-api/database"
	"github.com/yeremiapane/order-api/models"
	"github.com/yeremiapane/order-api/router"
	"github.com/yeremiapane/order-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger("warn", "text")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TestEndToEndIntegration menguji flow utama lewat router lengkap:
// 1. Buat customer dan dua item
// 2. Buat order dengan daftar item
// 3. Ganti daftar item (sekali gagal, sekali berhasil)
// 4. Hapus order, lalu customer dan item
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db, testConfig())

	code, _ := call(t, r, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, code)

	var customer models.Customer
	code, resp := call(t, r, http.MethodPost, "/customers", gin.H{"name": "Ada", "phone": "5550001111"})
	require.Equal(t, http.StatusCreated, code)
	decode(t, resp, &customer)

	var pizza, soda models.Item
	code, resp = call(t, r, http.MethodPost, "/items", gin.H{"name": "Pizza", "price": 12.5})
	require.Equal(t, http.StatusCreated, code)
	decode(t, resp, &pizza)
	code, resp = call(t, r, http.MethodPost, "/items", gin.H{"name": "Soda", "price": 2})
	require.Equal(t, http.StatusCreated, code)
	decode(t, resp, &soda)

	var order models.Order
	code, resp = call(t, r, http.MethodPost, "/orders", gin.H{
		"cust_id":   customer.ID,
		"notes":     "table 4",
		"timestamp": 1700000000,
		"item_ids":  []uint{pizza.ID, soda.ID},
	})
	require.Equal(t, http.StatusCreated, code)
	decode(t, resp, &order)
	require.NotZero(t, order.ID)
	assert.Equal(t, []models.Item{pizza, soda}, order.Items)

	orderURL := fmt.Sprintf("/orders/%d", order.ID)
	code, _ = call(t, r, http.MethodPut, orderURL, gin.H{
		"cust_id":   customer.ID,
		"timestamp": 1700000000,
		"item_ids":  []uint{soda.ID, 9999},
	})
	require.Equal(t, http.StatusNotFound, code)

	var got models.Order
	code, resp = call(t, r, http.MethodGet, orderURL, nil)
	require.Equal(t, http.StatusOK, code)
	decode(t, resp, &got)
	assert.Equal(t, []uint{pizza.ID, soda.ID}, got.ItemIDs)

	code, resp = call(t, r, http.MethodPut, orderURL, gin.H{
		"order_id":  order.ID,
		"cust_id":   customer.ID,
		"notes":     "table 5",
		"timestamp": 1700000300,
		"item_ids":  []uint{soda.ID},
	})
	require.Equal(t, http.StatusOK, code)
	decode(t, resp, &got)
	assert.Equal(t, []uint{soda.ID}, got.ItemIDs)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "table 5", *got.Notes)

	code, _ = call(t, r, http.MethodDelete, fmt.Sprintf("/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = call(t, r, http.MethodDelete, orderURL, nil)
	require.Equal(t, http.StatusOK, code)

	for _, url := range []string{
		fmt.Sprintf("/customers/%d", customer.ID),
		fmt.Sprintf("/items/%d", pizza.ID),
		fmt.Sprintf("/items/%d", soda.ID),
	} {
		code, _ = call(t, r, http.MethodDelete, url, nil)
		assert.Equal(t, http.StatusOK, code, url)
	}

	for _, model := range []interface{}{&models.Customer{}, &models.Item{}, &models.Order{}, &models.OrderItem{}} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Zero(t, n)
	}
}

func TestRouterRateLimit(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 3
	r := router.SetupRouter(db, cfg)

	for i := 0; i < 3; i++ {
		code, _ := call(t, r, http.MethodGet, "/customers/1", nil)
		require.Equal(t, http.StatusNotFound, code)
	}
	code, resp := call(t, r, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.False(t, resp.Status)
}

func testConfig() *config.Config {
	return &config.Config{
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		CORSOrigin:     "*",
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(&config.Config{
		DBDriver:       config.DriverSQLite,
		DBDSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func call(t *testing.T, r http.Handler, method, path string, payload interface{}) (int, apiResponse) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w.Code, resp
}

func decode(t *testing.T, resp apiResponse, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}
