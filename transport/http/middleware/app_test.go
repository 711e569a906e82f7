package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"roomops/config"
	otelMocks "roomops/infras/otel/mocks"
	cacheMocks "roomops/shared/cache/mocks"
	"roomops/shared/constant"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const limiterKey = "limiter:10.0.0.7:curl/8.0"

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		path          string
		setupMock     func(redis *cacheMocks.MockRedisCache)
		wantStatus    int
		wantRemaining string
	}{
		{
			name:       "disabled",
			enable:     false,
			path:       "/v1/staff/workload",
			setupMock:  func(_ *cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "health probes are not counted",
			enable:     true,
			path:       "/health",
			setupMock:  func(_ *cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "first request of the window",
			enable: true,
			path:   "/v1/staff/workload",
			setupMock: func(redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Increment(gomock.Any(), limiterKey, 60).Return(1, nil)
			},
			wantStatus:    http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "over the limit",
			enable: true,
			path:   "/v1/staff/workload",
			setupMock: func(redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Increment(gomock.Any(), limiterKey, 60).Return(3, nil)
			},
			wantStatus:    http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "cache outage fails open",
			enable: true,
			path:   "/v1/staff/workload",
			setupMock: func(redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Increment(gomock.Any(), limiterKey, 60).Return(0, errors.New("connection refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(redis)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 2
			cfg.App.RateLimiter.WindowSeconds = 60

			app := NewAppMiddleware(otelMocks.NewOtel(), cfg, redis)

			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			request.RemoteAddr = "10.0.0.7:52311"
			request.Header.Set(constant.RequestHeaderUserAgent, "curl/8.0")

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))

			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Equal(t, "60", recorder.Header().Get(constant.RequestHeaderRetryAfter))
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	app := &appMiddleware{}

	request := httptest.NewRequest(http.MethodGet, "/", nil)

	request.RemoteAddr = "192.168.1.20:4431"
	assert.Equal(t, "192.168.1.20", app.getClientIP(request))

	request.RemoteAddr = "192.168.1.20"
	assert.Equal(t, "192.168.1.20", app.getClientIP(request))
}

func TestTracing(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantEvent bool
	}{
		{name: "success", status: http.StatusOK},
		{name: "server error is flagged", status: http.StatusInternalServerError, wantEvent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := otelMocks.NewRecorder()
			cfg := &config.Config{}
			cfg.App.Name = "roomops"

			app := NewAppMiddleware(recorder, cfg, nil)

			handler := app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/staff/workload", nil))

			scope := recorder.Scope("GET /v1/staff/workload")
			if assert.NotNil(t, scope) {
				assert.True(t, scope.Ended)
				assert.Equal(t, tt.status, scope.Attributes["http.status_code"])
				assert.Equal(t, "roomops", scope.Attributes["app.name"])
				assert.Equal(t, tt.wantEvent, slices.Contains(scope.Events, constant.OtelEventServerError))
			}
		})
	}
}
