//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"genesis-storefront/internal/handler/api"
	resdto "genesis-storefront/internal/handler/dto/response"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/access"
	"genesis-storefront/tests/common/builder"
	"genesis-storefront/tests/common/httptest"
	"genesis-storefront/tests/common/testutil"
	accessmock "genesis-storefront/tests/mock/access"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockGate *accessmock.MockGatekeeper
	handler  *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGate = accessmock.NewMockGatekeeper(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockGate)

	s.router.GET("/session", s.handler.Session)
	s.router.POST("/session/login", s.handler.Login)
	s.router.POST("/session/logout", s.handler.Logout)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestSession() {
	who := builder.NewIdentityBuilder().MustBuild()
	s.mockGate.EXPECT().Session().Return(access.Snapshot{
		Identity:             &who,
		View:                 access.ViewStorefront,
		PendingDestinationID: "",
		CartCount:            2,
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session", nil)

	var response resdto.SessionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().NotNil(response.Identity)
	s.Equal(who.Email, response.Identity.Email)
	s.Equal("storefront", response.View)
	s.Equal(2, response.CartCount)
}

func (s *SessionHandlerTestSuite) TestLogin() {
	url := "/session/login"
	reqBody := builder.NewIdentityBuilder().BuildLoginDTO()

	s.Run("success: resumes the held booking", func() {
		created, err := builder.NewBookingBuilder().BuildDomain()
		s.Require().NoError(err)
		expected := builder.NewIdentityBuilder().MustBuild()

		s.mockGate.EXPECT().Login(gomock.Any(), expected).
			Return(access.Outcome{Prompt: access.PromptNone, SelectedDestinationID: "1", Booking: created}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.PromptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("1", response.SelectedDestinationID)
		s.Require().NotNil(response.Booking)
		s.Equal(created.ID, response.Booking.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "blank name", mutate: testutil.Field("name", "   ")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: store failure is a 500", func() {
		s.mockGate.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(access.Outcome{}, errs.Mark(errs.New("disk full"), errs.ErrStoreOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

func (s *SessionHandlerTestSuite) TestLogout() {
	s.mockGate.EXPECT().Logout(gomock.Any()).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/session/logout", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}
