package handlers

import (
	"math"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"detailing-app-server/internal/models"
	"detailing-app-server/internal/utils"
)

// InsightsHandler serves the dashboard analytics summary.
type InsightsHandler struct {
	DB *gorm.DB
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(db *gorm.DB) *InsightsHandler {
	return &InsightsHandler{DB: db}
}

// InsightsSummary holds the headline stat cards.
type InsightsSummary struct {
	TotalCustomers    int64 `json:"totalCustomers"`
	TotalAppointments int64 `json:"totalAppointments"`
	Upcoming          int64 `json:"upcoming"`
	CompletionRate    int   `json:"completionRate"`
}

// MonthCount is one bar of the appointments-by-month chart.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// InsightsResponse represents the response body for the insights endpoint.
type InsightsResponse struct {
	Summary InsightsSummary `json:"summary"`
	ByMonth []MonthCount    `json:"byMonth"`
}

// GetInsights computes customer/appointment counts, the share of finished
// appointments that were completed, and a per-month appointment histogram.
// Month grouping happens in Go so the query stays portable across drivers.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	var resp InsightsResponse

	if err := h.DB.Model(&models.Customer{}).Count(&resp.Summary.TotalCustomers).Error; err != nil {
		utils.InternalServerError(c, "Failed to count customers: "+err.Error())
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Select("date_time", "status").Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	now := time.Now()
	byMonth := make(map[string]int)
	var completed, finished int64
	for _, appt := range appointments {
		resp.Summary.TotalAppointments++
		byMonth[appt.DateTime.Format("2006-01")]++

		switch appt.Status {
		case models.StatusScheduled:
			if appt.DateTime.After(now) {
				resp.Summary.Upcoming++
			}
		case models.StatusCompleted:
			completed++
			finished++
		default:
			finished++
		}
	}

	if finished > 0 {
		resp.Summary.CompletionRate = int(math.Round(float64(completed) / float64(finished) * 100))
	}

	resp.ByMonth = make([]MonthCount, 0, len(byMonth))
	for month, count := range byMonth {
		resp.ByMonth = append(resp.ByMonth, MonthCount{Month: month, Count: count})
	}
	sort.Slice(resp.ByMonth, func(i, j int) bool {
		return resp.ByMonth[i].Month < resp.ByMonth[j].Month
	})

	utils.Success(c, "Insights fetched successfully", resp)
}
