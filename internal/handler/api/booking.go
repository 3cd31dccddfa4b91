package api

import (
	"net/http"

	reqdto "genesis-storefront/internal/handler/dto/request"
	resdto "genesis-storefront/internal/handler/dto/response"
	"genesis-storefront/internal/handler/httperr"
	"genesis-storefront/internal/handler/middleware"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/access"
	"genesis-storefront/internal/usecase/commands"
	"genesis-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	gate access.Gatekeeper
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(gate access.Gatekeeper, cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{gate: gate, cmds: cmds, q: q}
}

// @Summary Request booking
// @Description Books a destination for the current customer. Anonymous requests are kept and answered with a customer_login prompt.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 201 {object} resdto.PromptResponse
// @Success 200 {object} resdto.PromptResponse
// @Success 202 {object} resdto.PromptResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	out, err := h.gate.RequestBooking(c.Request.Context(), req.DestinationID, req.ToDraft())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	switch {
	case out.Prompt == access.PromptCustomerLogin:
		c.JSON(http.StatusAccepted, resdto.FromOutcome(out))
	case out.Booking != nil:
		c.Header("Location", "/api/bookings/"+out.Booking.ID)
		c.JSON(http.StatusCreated, resdto.FromOutcome(out))
	default:
		c.JSON(http.StatusOK, resdto.FromOutcome(out))
	}
}

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	who, ok := middleware.GetCustomer(c)
	if !ok {
		abortWithUsecaseError(c, errs.Mark(errs.New("customer missing from context"), errs.ErrIdentityRequired))
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(h.q.ListForCustomer(who)))
}

// @Summary Cancel my booking
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelMine(c *gin.Context) {
	who, ok := middleware.GetCustomer(c)
	if !ok {
		abortWithUsecaseError(c, errs.Mark(errs.New("customer missing from context"), errs.ErrIdentityRequired))
		return
	}
	if err := h.cmds.CancelOwnBooking(c.Request.Context(), c.Param("id"), who); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
