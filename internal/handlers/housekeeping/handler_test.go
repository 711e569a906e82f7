package housekeeping_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"roomops/config"
	"roomops/infras/jwt"
	otelMocks "roomops/infras/otel/mocks"
	checkoutMocks "roomops/internal/domains/checkout/mocks"
	checkoutDto "roomops/internal/domains/checkout/model/dto"
	"roomops/internal/domains/housekeeping/mocks"
	"roomops/internal/domains/housekeeping/model/dto"
	inspectionDto "roomops/internal/domains/inspection/model/dto"
	"roomops/internal/handlers/housekeeping"
	"roomops/permissions"
	"roomops/shared/constant"
	"roomops/shared/failure"
	"roomops/transport/http/middleware"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const taskID = "9c1e6a1d-8f0b-4b7e-a2e4-5d7c3f9e0a42"

type fixture struct {
	router   chi.Router
	service  *mocks.MockHousekeeping
	checkout *checkoutMocks.MockCheckout
	jwt      jwt.JWT
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "roomops"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "handler-secret"
	cfg.JWT.AccessExpireMin = 5

	f := &fixture{
		router:   chi.NewRouter(),
		service:  mocks.NewMockHousekeeping(ctrl),
		checkout: checkoutMocks.NewMockCheckout(ctrl),
		jwt:      jwt.New(cfg),
	}

	auth := middleware.NewAuthRoleMiddleware(f.jwt, otelMocks.NewOtel(), permissions.Get(), cfg)
	handler := housekeeping.New(f.service, f.checkout, auth, otelMocks.NewOtel())

	f.router.Route("/v1", func(r chi.Router) {
		handler.Router(r)
	})

	return f
}

func (f *fixture) do(t *testing.T, request *http.Request, role string, departments ...string) *httptest.ResponseRecorder {
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	if role != "" {
		token, err := f.jwt.GenerateAccessToken("s-1", "staff@example.com", role, departments)
		require.NoError(t, err)

		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_SubmitInspection(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		role        string
		departments []string
		setupMock   func(f *fixture)
		wantStatus  int
	}{
		{
			name: "inspection recorded",
			body: `{"checklist":[{"inventory_id":"towel","actual_qty":1,"status":"missing"}]}`,
			role: constant.RoleHousekeeping,
			setupMock: func(f *fixture) {
				f.checkout.EXPECT().
					SubmitInspection(gomock.Any(), taskID, inspectionDto.SubmitInspectionRequest{
						Checklist: []inspectionDto.ChecklistLine{{InventoryID: "towel", ActualQty: 1, Status: "missing"}},
					}).
					Return(checkoutDto.SubmitInspectionResponse{TaskID: taskID, TotalCharges: decimal.NewFromInt(100)}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "department membership grants access",
			body: `{"checklist":[]}`,
			role: "supervisor",
			// departments are normalized the same way roles are
			departments: []string{"House Keeping", "housekeeping"},
			setupMock: func(f *fixture) {
				f.checkout.EXPECT().SubmitInspection(gomock.Any(), taskID, gomock.Any()).
					Return(checkoutDto.SubmitInspectionResponse{TaskID: taskID}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown line status",
			body:       `{"checklist":[{"inventory_id":"towel","actual_qty":1,"status":"stolen"}]}`,
			role:       constant.RoleHousekeeping,
			setupMock:  func(_ *fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate lines",
			body:       `{"checklist":[{"inventory_id":"towel","actual_qty":1,"status":"ok"},{"inventory_id":"towel","actual_qty":2,"status":"ok"}]}`,
			role:       constant.RoleHousekeeping,
			setupMock:  func(_ *fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "task already inspected",
			body: `{"checklist":[]}`,
			role: constant.RoleAdmin,
			setupMock: func(f *fixture) {
				f.checkout.EXPECT().SubmitInspection(gomock.Any(), taskID, gomock.Any()).
					Return(checkoutDto.SubmitInspectionResponse{}, failure.Conflict("task already inspected"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "front desk cannot inspect",
			body:       `{"checklist":[]}`,
			role:       constant.RoleFrontDesk,
			setupMock:  func(_ *fixture) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			request := httptest.NewRequest(http.MethodPost, "/v1/housekeeping-tasks/"+taskID+"/inspection", strings.NewReader(tt.body))

			recorder := f.do(t, request, tt.role, tt.departments...)

			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
		})
	}
}

func TestHandler_GetTaskStatus(t *testing.T) {
	f := newFixture(t)

	f.checkout.EXPECT().PollTaskStatus(gomock.Any(), taskID).
		Return(dto.TaskStatusResponse{TaskID: taskID, Status: "in-progress"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/housekeeping-tasks/"+taskID+"/status", nil)
	recorder := f.do(t, request, constant.RoleFrontDesk)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data dto.TaskStatusResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "in-progress", body.Data.Status)
}

func TestHandler_AssignTask(t *testing.T) {
	t.Run("automatic selection without a body", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().Assign(gomock.Any(), taskID, "").
			Return(dto.AssignTaskResponse{TaskID: taskID, AssignedTo: "s-2"}, nil)

		request := httptest.NewRequest(http.MethodPatch, "/v1/housekeeping-tasks/"+taskID+"/assign", nil)
		recorder := f.do(t, request, constant.RoleHousekeeping)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"assigned_to":"s-2"`)
	})

	t.Run("nobody free", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().Assign(gomock.Any(), taskID, "").
			Return(dto.AssignTaskResponse{}, failure.NoStaffAvailable("all housekeeping staff at capacity"))

		request := httptest.NewRequest(http.MethodPatch, "/v1/housekeeping-tasks/"+taskID+"/assign", strings.NewReader(`{}`))
		recorder := f.do(t, request, constant.RoleAdmin)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"kind":"no_staff_available"`)
	})
}

func TestHandler_UpdateTaskStatus(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().UpdateStatus(gomock.Any(), taskID, dto.UpdateTaskStatusRequest{Status: "in-progress"}).Return(nil)

	request := httptest.NewRequest(http.MethodPatch, "/v1/housekeeping-tasks/"+taskID+"/status", strings.NewReader(`{"status":"in-progress"}`))
	recorder := f.do(t, request, constant.RoleHousekeeping)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_VerifyTask(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().Verify(gomock.Any(), taskID).Return(nil)

		request := httptest.NewRequest(http.MethodPost, "/v1/housekeeping-tasks/"+taskID+"/verify", nil)
		recorder := f.do(t, request, constant.RoleAdmin)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("housekeeping cannot verify", func(t *testing.T) {
		f := newFixture(t)

		request := httptest.NewRequest(http.MethodPost, "/v1/housekeeping-tasks/"+taskID+"/verify", nil)
		recorder := f.do(t, request, constant.RoleHousekeeping)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("internal caller with api key", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().Verify(gomock.Any(), taskID).Return(nil)

		request := httptest.NewRequest(http.MethodPost, "/v1/housekeeping-tasks/"+taskID+"/verify", nil)
		request.Header.Set(constant.RequestHeaderAPIKey, "internal-key")

		recorder := f.do(t, request, "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("wrong api key", func(t *testing.T) {
		f := newFixture(t)

		request := httptest.NewRequest(http.MethodPost, "/v1/housekeeping-tasks/"+taskID+"/verify", nil)
		request.Header.Set(constant.RequestHeaderAPIKey, "guess")

		recorder := f.do(t, request, "")

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
