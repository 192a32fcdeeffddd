package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/database"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/middleware"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/cache"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/mocks"
)

func setupRoutes(t *testing.T, rateLimit int) (*echo.Echo, *mocks.MockMatchUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMatchUC(ctrl)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &models.Config{
		Match:   models.MatchConfig{RateLimitPerMinute: rateLimit},
		APIKeys: models.APIKeysConfig{AdminService: "admin-key"},
	}

	e := echo.New()
	h := NewHandler(mockUC, nil, nil, database.NewRedisClientFromClient(client), cfg)
	h.RegisterRoutes(e, middleware.NewAPIKeyValidator(cfg.APIKeys))
	return e, mockUC
}

func serve(e *echo.Echo, method, target, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if apiKey != "" {
		req.Header.Set(middleware.APIKeyHeader, apiKey)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_Matches(t *testing.T) {
	e, mockUC := setupRoutes(t, 0)
	mockUC.EXPECT().
		GetDriverMatches(gomock.Any(), "driver-1", models.MatchPage{Limit: 5}).
		Return(&models.MatchList{DriverID: "driver-1", Matches: []*models.MatchResult{}}, nil)

	rec := serve(e, http.MethodGet, "/drivers/driver-1/matches?limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_MatchesRateLimitedPerDriver(t *testing.T) {
	e, mockUC := setupRoutes(t, 2)
	mockUC.EXPECT().
		GetDriverMatches(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.MatchList{Matches: []*models.MatchResult{}}, nil).
		Times(3)

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/drivers/driver-1/matches", "").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/drivers/driver-1/matches", "").Code)

	limited := serve(e, http.MethodGet, "/drivers/driver-1/matches", "")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/drivers/driver-2/matches", "").Code)
}

func TestRoutes_InternalRequireAPIKey(t *testing.T) {
	e, mockUC := setupRoutes(t, 0)

	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodPost, "/internal/drivers/driver-1/invalidate", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/internal/match/cache/stats", "wrong").Code)

	mockUC.EXPECT().InvalidateDriver(gomock.Any(), "driver-1").Return(nil)
	mockUC.EXPECT().CacheStats().Return(cache.Stats{})

	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/internal/drivers/driver-1/invalidate", "admin-key").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/internal/match/cache/stats", "admin-key").Code)
}
