package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"detailing-app-server/internal/models"
	"detailing-app-server/internal/utils"
)

// CustomerHandler handles customer related requests.
type CustomerHandler struct {
	DB *gorm.DB
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{DB: db}
}

// CustomerRequest represents the request body for creating or updating a customer.
type CustomerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

func (r *CustomerRequest) trim() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.ZipCode = strings.TrimSpace(r.ZipCode)
}

func (r *CustomerRequest) apply(customer *models.Customer) {
	customer.FirstName = r.FirstName
	customer.LastName = r.LastName
	customer.Email = r.Email
	customer.Phone = r.Phone
	customer.Address = r.Address
	customer.City = r.City
	customer.State = r.State
	customer.ZipCode = r.ZipCode
}

// GetCustomers handles fetching all customers, ordered by id ascending.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := h.DB.Order("id asc").Find(&customers).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch customers: "+err.Error())
		return
	}

	utils.Success(c, "Customers fetched successfully", customers)
}

// CreateCustomer handles creating a new customer (admin form).
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	req.trim()
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		utils.BadRequest(c, "First name, last name, and email are required.")
		return
	}

	var customer models.Customer
	req.apply(&customer)

	if err := h.DB.Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "A customer with this email already exists")
		} else {
			utils.InternalServerError(c, "Failed to create customer: "+err.Error())
		}
		return
	}

	utils.Created(c, "Customer added successfully", customer)
}

// GetCustomerByID handles fetching a single customer by ID.
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Customer not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Customer fetched successfully", customer)
}

// UpdateCustomer handles a full replace of a customer's contact fields.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CustomerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	req.trim()
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		utils.BadRequest(c, "First name, last name, and email are required.")
		return
	}

	var customer models.Customer
	if err := h.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Customer not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	req.apply(&customer)

	if err := h.DB.Save(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "A customer with this email already exists")
		} else {
			utils.InternalServerError(c, "Failed to update customer: "+err.Error())
		}
		return
	}

	utils.Success(c, "Customer updated successfully", customer)
}

// DeleteCustomer handles deleting a customer. Customers with existing
// appointments cannot be deleted (restrict policy) so appointments are
// never silently orphaned.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Customer not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var appointmentCount int64
	if err := h.DB.Model(&models.Appointment{}).Where("customer_id = ?", customerID).Count(&appointmentCount).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if appointmentCount > 0 {
		utils.Conflict(c, "Customer has existing appointments; delete those first")
		return
	}

	if err := h.DB.Delete(&customer).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete customer: "+err.Error())
		return
	}

	utils.Success(c, "Customer deleted successfully", nil)
}

// GetCustomerAppointments handles fetching one customer's appointment
// history, most recent first.
func (h *CustomerHandler) GetCustomerAppointments(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Customer not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Where("customer_id = ?", customerID).Order("date_time desc").Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}
