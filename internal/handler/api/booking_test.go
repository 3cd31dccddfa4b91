//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/handler/api"
	resdto "genesis-storefront/internal/handler/dto/response"
	"genesis-storefront/internal/handler/middleware"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/access"
	"genesis-storefront/internal/usecase/queries"
	"genesis-storefront/internal/usecase/shared"
	"genesis-storefront/tests/common/builder"
	"genesis-storefront/tests/common/httptest"
	"genesis-storefront/tests/common/testutil"
	accessmock "genesis-storefront/tests/mock/access"
	commandsmock "genesis-storefront/tests/mock/commands"
	queriesmock "genesis-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockGate     *accessmock.MockGatekeeper
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGate = accessmock.NewMockGatekeeper(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockGate, s.mockCommands, s.mockQueries)

	accessMiddleware := middleware.NewAccessMiddleware(s.mockGate)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", accessMiddleware.RequireCustomer(), s.handler.ListMine)
	s.router.DELETE("/bookings/:id", accessMiddleware.RequireCustomer(), s.handler.CancelMine)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) loggedIn() identity.Identity {
	who := builder.NewIdentityBuilder().MustBuild()
	s.mockGate.EXPECT().CurrentIdentity().Return(who, nil).Times(1)
	return who
}

func (s *BookingHandlerTestSuite) anonymous() {
	s.mockGate.EXPECT().CurrentIdentity().
		Return(identity.Identity{}, errs.Mark(errs.New("no customer"), errs.ErrIdentityRequired)).Times(1)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildRequestDTO()
	created, err := builder.NewBookingBuilder().BuildDomain()
	s.Require().NoError(err)
	booked := access.Outcome{Prompt: access.PromptNone, SelectedDestinationID: "1", Booking: created}

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockGate.EXPECT().RequestBooking(gomock.Any(), "1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, draft *shared.BookingDraft) (access.Outcome, error) {
				s.Require().NotNil(draft)
				s.Equal("2026-07-01", draft.StartDate)
				s.Equal("2026-07-06", draft.EndDate)
				s.Equal(6, draft.Guests)
				return booked, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.PromptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("none", response.Prompt)
		s.Require().NotNil(response.Booking)
		s.Equal(created.ID, response.Booking.ID)
		s.InDelta(6375.0, response.Booking.TotalPrice, 0.001)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + created.ID})
	})

	s.Run("success: anonymous request is held with a login prompt", func() {
		s.mockGate.EXPECT().RequestBooking(gomock.Any(), "1", gomock.Any()).
			Return(access.Outcome{Prompt: access.PromptCustomerLogin}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertPromptResponse(s.T(), rec, http.StatusAccepted, "customer_login")
	})

	s.Run("success: selection without stay details", func() {
		s.mockGate.EXPECT().RequestBooking(gomock.Any(), "2", gomock.Nil()).
			Return(access.Outcome{Prompt: access.PromptNone, SelectedDestinationID: "2"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"destinationId": "2"})

		var response resdto.PromptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2", response.SelectedDestinationID)
		s.Nil(response.Booking)
	})

	s.Run("success: guests default to one", func() {
		s.mockGate.EXPECT().RequestBooking(gomock.Any(), "1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, draft *shared.BookingDraft) (access.Outcome, error) {
				s.Equal(1, draft.Guests)
				return booked, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: destinationId (required)", mutate: testutil.Field("destinationId", nil), expectCode: http.StatusBadRequest},
			{name: "guests boundary invalid (0)", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
			{name: "guests boundary invalid (101)", mutate: testutil.Field("guests", 101), expectCode: http.StatusBadRequest},
			{name: "malformed startDate", mutate: testutil.Field("startDate", "07/01/2026"), expectCode: http.StatusBadRequest},
			{name: "endDate without startDate", mutate: testutil.Field("startDate", nil), expectCode: http.StatusBadRequest},
			{name: "startDate without endDate", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			gateError      error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown destination",
				gateError:      errs.Mark(errs.New("destination 1 does not exist"), errs.ErrDestinationNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Destination not found",
			},
			{
				name:           "invalid stay",
				gateError:      errs.Mark(errs.New("stay must last at least one day"), errs.ErrInvalidBookingInput),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking request",
			},
			{
				name:           "store failure",
				gateError:      errs.Mark(errs.New("disk full"), errs.ErrStoreOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
			{
				name:           "unexpected error",
				gateError:      errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockGate.EXPECT().RequestBooking(gomock.Any(), "1", gomock.Any()).
					Return(access.Outcome{}, tc.gateError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/bookings"

	s.Run("success: returns the customer's bookings", func() {
		who := s.loggedIn()
		dest := builder.NewDestinationBuilder().Build()
		record := builder.NewBookingBuilder().WithCustomer(who).BuildRecord()
		s.mockQueries.EXPECT().ListForCustomer(who).
			Return([]queries.BookingView{{Booking: record, Destination: &dest}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(record.ID, response[0].ID)
		s.Equal("Maasai Mara Safari", response[0].DestinationName)
	})

	s.Run("success: empty list is an empty array", func() {
		who := s.loggedIn()
		s.mockQueries.EXPECT().ListForCustomer(who).Return([]queries.BookingView{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 401 with login prompt when anonymous", func() {
		s.anonymous()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertPromptResponse(s.T(), rec, http.StatusUnauthorized, "customer_login")
	})
}

// ================================================================================
// TestCancelMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelMine() {
	url := "/bookings/b-1"

	s.Run("success: returns 204 No Content", func() {
		who := s.loggedIn()
		s.mockCommands.EXPECT().CancelOwnBooking(gomock.Any(), "b-1", who).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 500 when the store fails", func() {
		who := s.loggedIn()
		s.mockCommands.EXPECT().CancelOwnBooking(gomock.Any(), "b-1", who).
			Return(errs.Mark(errs.New("disk full"), errs.ErrStoreOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})

	s.Run("error: 401 with login prompt when anonymous", func() {
		s.anonymous()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertPromptResponse(s.T(), rec, http.StatusUnauthorized, "customer_login")
	})
}
