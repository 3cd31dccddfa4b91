package api

import (
	"net/http"

	reqdto "genesis-storefront/internal/handler/dto/request"
	resdto "genesis-storefront/internal/handler/dto/response"
	"genesis-storefront/internal/handler/httperr"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/access"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	gate access.Gatekeeper
}

func NewSessionHandler(gate access.Gatekeeper) *SessionHandler {
	return &SessionHandler{gate: gate}
}

// @Summary Session snapshot
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /session [get]
func (h *SessionHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSnapshot(h.gate.Session()))
}

// @Summary Customer login
// @Description Stores the identity and resumes a booking captured while logged out.
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Identity"
// @Success 200 {object} resdto.PromptResponse
// @Failure 400 {object} httperr.Response
// @Router /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	who, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidIdentity), "Invalid identity", nil)
		return
	}

	out, err := h.gate.Login(c.Request.Context(), *who)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOutcome(out))
}

// @Summary Customer logout
// @Tags session
// @Success 204 "No Content"
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
