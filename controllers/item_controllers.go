package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/order-api/models"
	"github.com/yeremiapane/order-api/services"
	"github.com/yeremiapane/order-api/utils"
	"gorm.io/gorm"
)

type ItemController struct {
	Service *services.ItemService
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{Service: services.NewItemService(db)}
}

type itemRequest struct {
	ItemID *uint    `json:"item_id"`
	Name   string   `json:"name" binding:"required,max=64"`
	Price  *float64 `json:"price" binding:"required,gte=0"`
}

func (r itemRequest) toModel() models.Item {
	return models.Item{Name: r.Name, Price: *r.Price}
}

// CreateItem
func (ic *ItemController) CreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if rejectPresetID(c, "item_id", req.ItemID) {
		return
	}

	item := req.toModel()
	if err := ic.Service.Create(c.Request.Context(), &item); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Item created", item)
}

// GetItemByID
func (ic *ItemController) GetItemByID(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	item, err := ic.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item detail", item)
}

// UpdateItem
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if rejectMismatchedID(c, "item_id", req.ItemID, id) {
		return
	}

	item := req.toModel()
	if err := ic.Service.Update(c.Request.Context(), id, &item); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item updated", item)
}

// DeleteItem
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	deleted, err := ic.Service.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item deleted", gin.H{"deleted": deleted})
}
