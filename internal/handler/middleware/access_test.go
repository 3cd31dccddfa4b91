//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/handler/middleware"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/access"
	"genesis-storefront/tests/common/builder"
	"genesis-storefront/tests/common/httptest"
	accessmock "genesis-storefront/tests/mock/access"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccessMiddlewareTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockGate *accessmock.MockGatekeeper
	reached  bool
	seen     identity.Identity
}

func (s *AccessMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.reached = false

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGate = accessmock.NewMockGatekeeper(s.mockCtrl)
	mw := middleware.NewAccessMiddleware(s.mockGate)

	s.router.GET("/mine", mw.RequireCustomer(), func(c *gin.Context) {
		s.reached = true
		s.seen, _ = middleware.GetCustomer(c)
		c.Status(http.StatusOK)
	})
	s.router.GET("/console", mw.RequireStaff(), func(c *gin.Context) {
		s.reached = middleware.IsStaff(c)
		c.Status(http.StatusOK)
	})
}

func (s *AccessMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAccessMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AccessMiddlewareTestSuite))
}

func (s *AccessMiddlewareTestSuite) TestRequireCustomer() {
	s.Run("success: identity is exposed to the handler", func() {
		s.SetupTest()
		who := builder.NewIdentityBuilder().MustBuild()
		s.mockGate.EXPECT().CurrentIdentity().Return(who, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mine", nil)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.True(s.T(), s.reached)
		assert.Equal(s.T(), who.Email, s.seen.Email)
	})

	s.Run("error: anonymous request gets the customer login prompt", func() {
		s.SetupTest()
		s.mockGate.EXPECT().CurrentIdentity().
			Return(identity.Identity{}, errs.Mark(errs.New("no customer"), errs.ErrIdentityRequired)).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mine", nil)

		httptest.AssertPromptResponse(s.T(), w, http.StatusUnauthorized, "customer_login")
		assert.False(s.T(), s.reached)
	})
}

func (s *AccessMiddlewareTestSuite) TestRequireStaff() {
	s.Run("success: active staff session", func() {
		s.SetupTest()
		s.mockGate.EXPECT().AuthorizeBackOffice().Return(access.PromptNone).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/console", nil)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.True(s.T(), s.reached)
	})

	s.Run("error: no staff session", func() {
		s.SetupTest()
		s.mockGate.EXPECT().AuthorizeBackOffice().Return(access.PromptStaffLogin).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/console", nil)

		httptest.AssertPromptResponse(s.T(), w, http.StatusUnauthorized, "staff_login")
		assert.False(s.T(), s.reached)
	})
}
