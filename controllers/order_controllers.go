package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/order-api/models"
	"github.com/yeremiapane/order-api/services"
	"github.com/yeremiapane/order-api/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Service: services.NewOrderService(db)}
}

type orderRequest struct {
	OrderID   *uint   `json:"order_id"`
	CustID    *uint   `json:"cust_id" binding:"required"`
	Notes     *string `json:"notes"`
	Timestamp *int64  `json:"timestamp" binding:"required"`
	ItemIDs   []uint  `json:"item_ids"`
}

func (r orderRequest) toModel() models.Order {
	return models.Order{
		Notes:     r.Notes,
		CustID:    *r.CustID,
		Timestamp: *r.Timestamp,
		ItemIDs:   r.ItemIDs,
	}
}

// CreateOrder -> buat order beserta daftar item-nya.
// Customer dan semua item harus sudah ada.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if rejectPresetID(c, "order_id", req.OrderID) {
		return
	}

	order := req.toModel()
	if err := oc.Service.Create(c.Request.Context(), &order); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New order created (ID=%d, customer=%d, items=%d)", order.ID, order.CustID, len(order.Items))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> detail 1 order, termasuk item yang di-link
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrder -> full replacement, termasuk daftar item
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if rejectMismatchedID(c, "order_id", req.OrderID, id) {
		return
	}

	order := req.toModel()
	if err := oc.Service.Update(c.Request.Context(), id, &order); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder -> hapus order beserta semua baris order_list-nya
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	deleted, err := oc.Service.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"deleted": deleted})
}
