package api

import (
	"net/http"

	reqdto "genesis-storefront/internal/handler/dto/request"
	resdto "genesis-storefront/internal/handler/dto/response"
	"genesis-storefront/internal/handler/httperr"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/access"
	"genesis-storefront/internal/usecase/commands"
	"genesis-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BackOfficeHandler struct {
	gate     access.Gatekeeper
	cmds     commands.BackOfficeCommands
	bookings commands.BookingCommands
	q        queries.BookingQueries
}

func NewBackOfficeHandler(
	gate access.Gatekeeper,
	cmds commands.BackOfficeCommands,
	bookings commands.BookingCommands,
	q queries.BookingQueries,
) *BackOfficeHandler {
	return &BackOfficeHandler{gate: gate, cmds: cmds, bookings: bookings, q: q}
}

// @Summary Enter back office
// @Description Always ends any previous staff session.
// @Tags backoffice
// @Produce json
// @Success 200 {object} resdto.PromptResponse
// @Router /backoffice/enter [post]
func (h *BackOfficeHandler) Enter(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPrompt(h.gate.EnterBackOffice()))
}

// @Summary Staff login
// @Tags backoffice
// @Accept json
// @Produce json
// @Param request body reqdto.StaffLoginRequest true "Passcode"
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /backoffice/login [post]
func (h *BackOfficeHandler) Login(c *gin.Context) {
	var req reqdto.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.gate.StaffLogin(req.Passcode); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(h.gate.Session()))
}

// @Summary Leave back office
// @Tags backoffice
// @Success 204 "No Content"
// @Router /backoffice/leave [post]
func (h *BackOfficeHandler) Leave(c *gin.Context) {
	h.gate.LeaveBackOffice()
	c.Status(http.StatusNoContent)
}

// @Summary Staff logout
// @Tags backoffice
// @Success 204 "No Content"
// @Router /backoffice/logout [post]
func (h *BackOfficeHandler) Logout(c *gin.Context) {
	h.gate.StaffLogout()
	c.Status(http.StatusNoContent)
}

// @Summary Booking ledger
// @Description Every booking, cancelled ones included. Bookings of removed destinations are flagged as dangling.
// @Tags backoffice
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /backoffice/bookings [get]
func (h *BackOfficeHandler) Ledger(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromBookingViews(h.q.ListLedger()))
}

// @Summary Ledger summary
// @Tags backoffice
// @Produce json
// @Success 200 {object} queries.LedgerSummary
// @Failure 401 {object} httperr.Response
// @Router /backoffice/summary [get]
func (h *BackOfficeHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.Summary())
}

// @Summary Replace destinations
// @Tags backoffice
// @Accept json
// @Param request body reqdto.ReplaceDestinationsRequest true "Full catalog"
// @Success 204 "No Content"
// @Failure 422 {object} httperr.Response
// @Router /backoffice/destinations [put]
func (h *BackOfficeHandler) ReplaceDestinations(c *gin.Context) {
	var req reqdto.ReplaceDestinationsRequest
	if !bindCollection(c, &req) {
		return
	}
	if err := h.cmds.ReplaceDestinations(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Replace bookings
// @Tags backoffice
// @Accept json
// @Param request body reqdto.ReplaceBookingsRequest true "Full ledger"
// @Success 204 "No Content"
// @Failure 422 {object} httperr.Response
// @Router /backoffice/bookings [put]
func (h *BackOfficeHandler) ReplaceBookings(c *gin.Context) {
	var req reqdto.ReplaceBookingsRequest
	if !bindCollection(c, &req) {
		return
	}
	if err := h.cmds.ReplaceBookings(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Replace social links
// @Tags backoffice
// @Accept json
// @Param request body reqdto.ReplaceSocialLinksRequest true "All links"
// @Success 204 "No Content"
// @Failure 422 {object} httperr.Response
// @Router /backoffice/social-links [put]
func (h *BackOfficeHandler) ReplaceSocialLinks(c *gin.Context) {
	var req reqdto.ReplaceSocialLinksRequest
	if !bindCollection(c, &req) {
		return
	}
	if err := h.cmds.ReplaceSocialLinks(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm booking
// @Tags backoffice
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /backoffice/bookings/{id}/confirm [post]
func (h *BackOfficeHandler) Confirm(c *gin.Context) {
	b, err := h.bookings.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Cancel booking
// @Description Unknown or already cancelled bookings are accepted without change.
// @Tags backoffice
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Router /backoffice/bookings/{id}/cancel [post]
func (h *BackOfficeHandler) Cancel(c *gin.Context) {
	if err := h.bookings.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Purge booking
// @Description Removes the record from the ledger entirely.
// @Tags backoffice
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Router /backoffice/bookings/{id} [delete]
func (h *BackOfficeHandler) Purge(c *gin.Context) {
	if err := h.cmds.PurgeBooking(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindCollection rejects a JSON null body, which would otherwise bind as an
// empty collection and wipe the stored one.
func bindCollection[S ~[]E, E any](c *gin.Context, out *S) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	if *out == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("collection body is null"), "Invalid request", nil)
		return false
	}
	return true
}
