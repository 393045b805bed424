package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-backend/models"
	"tour-backend/services"
	"tour-backend/utils"
)

type CreateBookingRequest struct {
	TourID        uint    `json:"tour_id" binding:"required"`
	ScheduleID    *uint   `json:"schedule_id"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	Pax           int     `json:"pax"`
	BasePrice     float64 `json:"base_price"`
	Discount      float64 `json:"discount"`
	Status        string  `json:"status"`
}

type UpdateBookingRequest struct {
	Status      string   `json:"status"`
	LeftPayment *float64 `json:"left_payment"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func respondBookingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found")
	case errors.Is(err, services.ErrTourNotFound):
		utils.JSONError(c, http.StatusUnprocessableEntity, "tour_id does not reference an existing tour")
	case errors.Is(err, services.ErrInvalidBooking):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid booking: check customer name, status and amounts")
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

// GET /api/bookings?tour_id=&status=&from=&to=
func (ctrl *BookingController) ListBookings(c *gin.Context) {
	var filter services.BookingFilter
	if raw := c.Query("tour_id"); raw != "" {
		id, err := utils.ParseRef(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid tour_id filter")
			return
		}
		filter.TourID = id
	}
	filter.Status = c.Query("status")
	filter.From = c.Query("from")
	filter.To = c.Query("to")

	bookings, err := ctrl.BookingSvc.List(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "bookings loaded", bookings)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondBookingError(c, err, "failed to load booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "booking loaded", booking)
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "tour_id and customer_name are required")
		return
	}

	booking, err := ctrl.BookingSvc.Create(models.Booking{
		TourID:        req.TourID,
		ScheduleID:    req.ScheduleID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Pax:           req.Pax,
		BasePrice:     req.BasePrice,
		Discount:      req.Discount,
		Status:        req.Status,
	})
	if err != nil {
		respondBookingError(c, err, "failed to create booking")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "booking created", booking)
}

// PUT /api/bookings/:id
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, req.Status, req.LeftPayment)
	if err != nil {
		respondBookingError(c, err, "failed to update booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "booking updated", booking)
}

// DELETE /api/bookings/:id
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondBookingError(c, err, "failed to delete booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "booking deleted", gin.H{"id": id})
}
