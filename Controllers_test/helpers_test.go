package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-api/config"
	"github.com/yeremiapane/order-api/controllers"
	"github.com/yeremiapane/order-api/database"
	"github.com/yeremiapane/order-api/models"
)

type envelope struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// setupTestDB membuka SQLite in-memory dengan nama unik per test lalu
// menjalankan migrasi yang sama dengan aplikasi.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver:       config.DriverSQLite,
		DBDSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}
	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	customerCtrl := controllers.NewCustomerController(db)
	router.POST("/customers", customerCtrl.CreateCustomer)
	router.GET("/customers/:cust_id", customerCtrl.GetCustomerByID)
	router.PUT("/customers/:cust_id", customerCtrl.UpdateCustomer)
	router.DELETE("/customers/:cust_id", customerCtrl.DeleteCustomer)

	itemCtrl := controllers.NewItemController(db)
	router.POST("/items", itemCtrl.CreateItem)
	router.GET("/items/:item_id", itemCtrl.GetItemByID)
	router.PUT("/items/:item_id", itemCtrl.UpdateItem)
	router.DELETE("/items/:item_id", itemCtrl.DeleteItem)

	orderCtrl := controllers.NewOrderController(db)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	router.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	orderListCtrl := controllers.NewOrderListController(db)
	router.POST("/order_list", orderListCtrl.CreateOrderList)
	router.GET("/order_list/:order_list_id", orderListCtrl.GetOrderListByID)
	router.PUT("/order_list/:order_list_id", orderListCtrl.UpdateOrderList)
	router.DELETE("/order_list/:order_list_id", orderListCtrl.DeleteOrderList)

	return router
}

func doRequest(t *testing.T, router http.Handler, method, path string, payload interface{}) (int, envelope) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w.Code, resp
}

// idOf membaca field id (angka JSON) dari data response.
func idOf(t *testing.T, resp envelope, field string) uint {
	t.Helper()
	v, ok := resp.Data[field].(float64)
	require.True(t, ok, "field %s missing in %v", field, resp.Data)
	return uint(v)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func seedCustomer(t *testing.T, db *gorm.DB, name, phone string) models.Customer {
	t.Helper()
	c := models.Customer{Name: name, Phone: phone}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedItem(t *testing.T, db *gorm.DB, name string, price float64) models.Item {
	t.Helper()
	it := models.Item{Name: name, Price: price}
	require.NoError(t, db.Create(&it).Error)
	return it
}
