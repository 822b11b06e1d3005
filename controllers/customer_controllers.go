package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/order-api/models"
	"github.com/yeremiapane/order-api/services"
	"github.com/yeremiapane/order-api/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	Service *services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{Service: services.NewCustomerService(db)}
}

type customerRequest struct {
	CustID *uint  `json:"cust_id"`
	Name   string `json:"name" binding:"required,max=64"`
	Phone  string `json:"phone" binding:"required,max=32"`
}

// CreateCustomer -> POST /customers
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if rejectPresetID(c, "cust_id", req.CustID) {
		return
	}

	customer := models.Customer{Name: req.Name, Phone: req.Phone}
	if err := cc.Service.Create(c.Request.Context(), &customer); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetCustomerByID -> GET /customers/:cust_id
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := parseID(c, "cust_id")
	if !ok {
		return
	}

	customer, err := cc.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// UpdateCustomer -> PUT /customers/:cust_id, mengganti seluruh data customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "cust_id")
	if !ok {
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if rejectMismatchedID(c, "cust_id", req.CustID, id) {
		return
	}

	customer := models.Customer{Name: req.Name, Phone: req.Phone}
	if err := cc.Service.Update(c.Request.Context(), id, &customer); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

// DeleteCustomer -> DELETE /customers/:cust_id. Customer yang masih punya
// order tidak bisa dihapus (409).
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "cust_id")
	if !ok {
		return
	}

	deleted, err := cc.Service.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"deleted": deleted})
}
