package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"detailing-app-server/internal/models"
	"detailing-app-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// AppointmentRequest represents the request body for creating or updating
// an appointment.
type AppointmentRequest struct {
	CustomerID  uint   `json:"customerId" binding:"required"`
	DateTime    string `json:"dateTime" binding:"required"`
	ServiceType string `json:"serviceType" binding:"required,oneof=Quick Full Premium"`
	Status      string `json:"status" binding:"required,oneof=Scheduled Completed Cancelled 'No Show'"`
	Notes       string `json:"notes"`
}

// CreateAppointment handles creating a new appointment from the admin form.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req AppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	dateTime, err := utils.ParseDateTime(req.DateTime)
	if err != nil {
		utils.BadRequest(c, "Invalid date/time format")
		return
	}

	// Verify the customer exists so a bad customerId surfaces as a 404
	// instead of a raw foreign key error.
	var customer models.Customer
	if err := h.DB.First(&customer, "id = ?", req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Customer not found")
		} else {
			utils.InternalServerError(c, "Database error verifying customer: "+err.Error())
		}
		return
	}

	appointment := models.Appointment{
		CustomerID:  req.CustomerID,
		DateTime:    dateTime,
		ServiceType: models.ServiceType(req.ServiceType),
		Status:      models.AppointmentStatus(req.Status),
		Notes:       req.Notes,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}
	appointment.Customer = &customer

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments handles fetching all appointments with their customer,
// most recent first.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Preload("Customer").Order("date_time desc").Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID handles fetching a single appointment for the detail view.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := h.DB.Preload("Customer").First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointment handles a full replace of an appointment's fields.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	dateTime, err := utils.ParseDateTime(req.DateTime)
	if err != nil {
		utils.BadRequest(c, "Invalid date/time format")
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if req.CustomerID != appointment.CustomerID {
		var customer models.Customer
		if err := h.DB.First(&customer, "id = ?", req.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.NotFound(c, "Customer not found")
			} else {
				utils.InternalServerError(c, "Database error verifying customer: "+err.Error())
			}
			return
		}
	}

	appointment.CustomerID = req.CustomerID
	appointment.DateTime = dateTime
	appointment.ServiceType = models.ServiceType(req.ServiceType)
	appointment.Status = models.AppointmentStatus(req.Status)
	appointment.Notes = req.Notes

	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment updated successfully", appointment)
}

// DeleteAppointment handles deleting an appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}

// CompleteAppointment marks an appointment Completed through the status
// state machine. Only the status column is written, so date/time, service
// type and notes are never clobbered; repeating the call is a no-op.
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !appointment.Status.CanTransitionTo(models.StatusCompleted) {
		utils.BadRequest(c, "Cannot mark a "+string(appointment.Status)+" appointment as completed")
		return
	}

	if appointment.Status != models.StatusCompleted {
		if err := h.DB.Model(&appointment).Update("status", models.StatusCompleted).Error; err != nil {
			utils.InternalServerError(c, "Failed to update appointment status: "+err.Error())
			return
		}
		appointment.Status = models.StatusCompleted
	}

	utils.Success(c, "Appointment marked as completed", appointment)
}
