package middleware

import (
	"net/http"

	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/handler/httperr"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/access"

	"github.com/gin-gonic/gin"
)

type AccessMiddleware struct {
	gate access.Gatekeeper
}

const (
	ctxCustomerKey = "customer"
	ctxStaffKey    = "staff"
)

func NewAccessMiddleware(gate access.Gatekeeper) *AccessMiddleware {
	return &AccessMiddleware{
		gate: gate,
	}
}

// RequireCustomer lets the request through only when a customer identity is
// active, and exposes it to handlers through GetCustomer.
func (m *AccessMiddleware) RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		who, err := m.gate.CurrentIdentity()
		if err != nil {
			httperr.AbortWithPrompt(c, http.StatusUnauthorized, err, string(access.PromptCustomerLogin), "Login required")
			return
		}

		c.Set(ctxCustomerKey, who)
		c.Next()
	}
}

// RequireStaff guards the back office. A rejected request carries the
// staff_login prompt so the console can show the passcode form.
func (m *AccessMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if prompt := m.gate.AuthorizeBackOffice(); prompt != access.PromptNone {
			err := errs.Mark(errs.New("back office access denied"), errs.ErrStaffSessionNeeded)
			httperr.AbortWithPrompt(c, http.StatusUnauthorized, err, string(prompt), "Staff session required")
			return
		}

		c.Set(ctxStaffKey, true)
		c.Next()
	}
}

func GetCustomer(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(ctxCustomerKey)
	if !exists {
		return identity.Identity{}, false
	}

	who, ok := v.(identity.Identity)
	return who, ok
}

func IsStaff(c *gin.Context) bool {
	return c.GetBool(ctxStaffKey)
}
