package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"detailing-app-server/internal/models"
	"detailing-app-server/internal/utils"
)

// BookingHandler handles the unauthenticated public booking flow.
type BookingHandler struct {
	DB *gorm.DB
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(db *gorm.DB) *BookingHandler {
	return &BookingHandler{DB: db}
}

// BookingRequest represents the public booking form submission.
type BookingRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType" binding:"required,oneof=Quick Full Premium"`
	DateTime    string `json:"dateTime" binding:"required"`
	Notes       string `json:"notes"`
}

// BookingResponse represents the response body for a successful booking.
type BookingResponse struct {
	ID         uint `json:"id"`
	CustomerID uint `json:"customerId"`
}

// CreateBooking finds or creates the customer by exact email match, then
// inserts a new appointment with status forced to Scheduled. The whole
// sequence runs in one transaction; the unique index on customer email
// serializes concurrent bookings from the same address, and a duplicate
// key on insert means another request won the race, so we re-select.
// Repeat bookings never overwrite an existing customer's stored name or
// phone (first write wins).
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		utils.BadRequest(c, "First name, last name, and email are required.")
		return
	}

	dateTime, err := utils.ParseDateTime(req.DateTime)
	if err != nil {
		utils.BadRequest(c, "Invalid date/time format")
		return
	}

	var appointment models.Appointment
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		err := tx.Where("email = ?", req.Email).First(&customer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			customer = models.Customer{
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Email:     req.Email,
				Phone:     req.Phone,
			}
			err = tx.Create(&customer).Error
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent booking created this customer first.
				err = tx.Where("email = ?", req.Email).First(&customer).Error
			}
		}
		if err != nil {
			return err
		}

		appointment = models.Appointment{
			CustomerID:  customer.ID,
			DateTime:    dateTime,
			ServiceType: models.ServiceType(req.ServiceType),
			Status:      models.StatusScheduled,
			Notes:       req.Notes,
		}
		return tx.Create(&appointment).Error
	})
	if txErr != nil {
		utils.InternalServerError(c, "Failed to create booking: "+txErr.Error())
		return
	}

	utils.Created(c, "Appointment booked successfully", BookingResponse{
		ID:         appointment.ID,
		CustomerID: appointment.CustomerID,
	})
}
