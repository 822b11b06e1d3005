package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/order-api/models"
	"github.com/yeremiapane/order-api/services"
	"github.com/yeremiapane/order-api/utils"
	"gorm.io/gorm"
)

// OrderListController mengelola baris order_list satu per satu.
type OrderListController struct {
	Service *services.OrderItemService
}

func NewOrderListController(db *gorm.DB) *OrderListController {
	return &OrderListController{Service: services.NewOrderItemService(db)}
}

type orderListRequest struct {
	OrderListID *uint `json:"order_list_id"`
	OrderID     *uint `json:"order_id" binding:"required"`
	ItemID      *uint `json:"item_id" binding:"required"`
}

func (r orderListRequest) toModel() models.OrderItem {
	return models.OrderItem{OrderID: *r.OrderID, ItemID: *r.ItemID}
}

func (lc *OrderListController) CreateOrderList(c *gin.Context) {
	var req orderListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if rejectPresetID(c, "order_list_id", req.OrderListID) {
		return
	}

	link := req.toModel()
	if err := lc.Service.Create(c.Request.Context(), &link); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order list entry created", link)
}

func (lc *OrderListController) GetOrderListByID(c *gin.Context) {
	id, ok := parseID(c, "order_list_id")
	if !ok {
		return
	}

	link, err := lc.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order list entry detail", link)
}

func (lc *OrderListController) UpdateOrderList(c *gin.Context) {
	id, ok := parseID(c, "order_list_id")
	if !ok {
		return
	}

	var req orderListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if rejectMismatchedID(c, "order_list_id", req.OrderListID, id) {
		return
	}

	link := req.toModel()
	if err := lc.Service.Update(c.Request.Context(), id, &link); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order list entry updated", link)
}

func (lc *OrderListController) DeleteOrderList(c *gin.Context) {
	id, ok := parseID(c, "order_list_id")
	if !ok {
		return
	}

	deleted, err := lc.Service.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order list entry deleted", gin.H{"deleted": deleted})
}
