//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/steven-the-qa/coach-wire/internal/domain/user"
	"github.com/steven-the-qa/coach-wire/internal/handler/api"
	resdto "github.com/steven-the-qa/coach-wire/internal/handler/dto/response"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"
	"github.com/steven-the-qa/coach-wire/tests/common/builder"
	"github.com/steven-the-qa/coach-wire/tests/common/httptest"
	"github.com/steven-the-qa/coach-wire/tests/common/testutil"
	commandsmock "github.com/steven-the-qa/coach-wire/tests/mock/commands"
	queriesmock "github.com/steven-the-qa/coach-wire/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClassHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockClassCommands
	mockQueries  *queriesmock.MockClassQueries
	handler      *api.ClassHandler
	coachID      uuid.UUID
}

func (s *ClassHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClassCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockClassQueries(s.mockCtrl)
	s.handler = api.NewClassHandler(s.mockCommands, s.mockQueries)
	s.coachID = uuid.New()

	// Stand-in for the auth middleware with coach role
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		ident, _ := user.NewIdentity(s.coachID, user.RoleCoach)
		c.Set("identity", ident)
		c.Next()
	}

	s.router.GET("/classes", s.handler.ListClasses)
	s.router.GET("/classes/:id", s.handler.GetClass)
	s.router.POST("/classes", authMiddleware, s.handler.CreateClass)
}

func (s *ClassHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClassHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClassHandlerTestSuite))
}

func (s *ClassHandlerTestSuite) TestListClasses() {
	s.Run("success: lists upcoming classes without authentication", func() {
		items := []*queries.ClassListItem{
			builder.NewClassBuilder().BuildListItem(),
			builder.NewClassBuilder().BuildListItem(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes", nil, "")

		var body []resdto.ClassListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(items[0].ID, body[0].ID)
	})
}

func (s *ClassHandlerTestSuite) TestGetClass() {
	s.Run("success: returns class details", func() {
		view := builder.NewClassBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes/"+view.ID.String(), nil, "")

		var body resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Remaining, body.Remaining)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid class ID")
	})

	s.Run("error: 404 when unknown", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrClassNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Class not found")
	})
}

func (s *ClassHandlerTestSuite) TestCreateClass() {
	url := "/classes"
	reqBody := builder.NewClassBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the class view", func() {
		view := builder.NewClassBuilder().BuildView()
		s.mockCommands.EXPECT().CreateClass(gomock.Any(), s.coachID, gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"missing start_time", testutil.Field("start_time", nil)},
			{"zero duration", testutil.Field("duration_min", 0)},
			{"negative capacity", testutil.Field("capacity", -1)},
			{"negative price", testutil.Field("price_cents", -100)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 when the coach has no gym", func() {
		s.mockCommands.EXPECT().CreateClass(gomock.Any(), s.coachID, gomock.Any()).
			Return(nil, commands.ErrGymNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No gym registered")
	})

	s.Run("error: 422 on domain validation failure", func() {
		past := builder.NewClassBuilder().WithStartTime(time.Now().Add(-time.Hour)).BuildCreateRequestDTO()
		s.mockCommands.EXPECT().CreateClass(gomock.Any(), s.coachID, gomock.Any()).
			Return(nil, commands.ErrDomainValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, past, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}
