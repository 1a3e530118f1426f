package api

import (
	"errors"
	"net/http"

	reqdto "github.com/steven-the-qa/coach-wire/internal/handler/dto/request"
	resdto "github.com/steven-the-qa/coach-wire/internal/handler/dto/response"
	"github.com/steven-the-qa/coach-wire/internal/handler/httperr"
	"github.com/steven-the-qa/coach-wire/internal/handler/middleware"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book a class
// @Description Reserve one spot in a class, charging the caller through the payment gateway
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.BookClass(c.Request.Context(), req.ClassID, userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var revErr *commands.ReversalError
	if errors.As(err, &revErr) {
		// The charge went through but no reservation exists. The caller
		// must learn which payment to chase, hence the structured payload.
		httperr.AbortWithCode(c, http.StatusInternalServerError, err,
			"payment_needs_reversal",
			"Payment was collected but the booking could not be recorded; the charge will be reversed",
			resdto.ReversalDetail{PaymentRef: revErr.PaymentRef})
		return
	}

	switch {
	case errors.Is(err, commands.ErrClassNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Class not found",
		})
	case errors.Is(err, commands.ErrSoldOut):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Class is sold out",
		})
	case errors.Is(err, commands.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Class already booked",
		})
	case errors.Is(err, commands.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Class filled up before the booking could be recorded",
		})
	case errors.Is(err, commands.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment amount",
		})
	case errors.Is(err, commands.ErrPaymentCancelled):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Payment was cancelled",
		})
	case errors.Is(err, commands.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Payment was declined",
		})
	case errors.Is(err, commands.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment gateway unavailable",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking
// @Description Get one of the caller's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List all bookings owned by the caller
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByClient(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromBookingView(view)
	}

	c.JSON(http.StatusOK, response)
}
