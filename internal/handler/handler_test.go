package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"explorar/internal/config"
	"explorar/internal/domain"
	"explorar/internal/middleware"
	analyticssvc "explorar/internal/service/analytics"
	"explorar/internal/service/catalog"
	"explorar/tests/mocks"
)

type handlerEnv struct {
	app             *fiber.App
	careerRepo      *mocks.CareerRepository
	tourRepo        *mocks.TourRepository
	testimonialRepo *mocks.TestimonialRepository
	analyticsRepo   *mocks.AnalyticsRepository
}

func setupApp() *handlerEnv {
	env := &handlerEnv{
		careerRepo:      new(mocks.CareerRepository),
		tourRepo:        new(mocks.TourRepository),
		testimonialRepo: new(mocks.TestimonialRepository),
		analyticsRepo:   new(mocks.AnalyticsRepository),
	}

	cfg := &config.Config{FallbackModelURL: "https://example.com/fallback.glb"}
	catalogService := catalog.NewService(env.careerRepo, env.tourRepo, env.testimonialRepo, nil, nil, cfg)
	analyticsService := analyticssvc.NewService(env.analyticsRepo)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	career := NewCareerHandler(catalogService)
	tour := NewTourHandler(catalogService)
	testimonial := NewTestimonialHandler(catalogService)
	analytics := NewAnalyticsHandler(analyticsService)

	api := app.Group("/api")
	api.Get("/carreras", career.List)
	api.Delete("/carreras/:id", career.Delete)
	api.Get("/tours", tour.List)
	api.Get("/tours/:id", tour.Get)
	api.Get("/tours/:id/model", tour.GetModel)
	api.Get("/testimonios", testimonial.List)
	api.Post("/analytics", analytics.Ingest)
	api.Get("/analytics/user/:userId", analytics.UserMetrics)

	env.app = app
	return env
}

func TestListCareersEndpoint(t *testing.T) {
	env := setupApp()
	env.careerRepo.On("GetAll", mock.Anything).Return([]domain.CareerRecord{
		{ID: "c1", Name: "Medicina", TourCount: 2, AverageRating: 4.5},
	}, nil).Once()

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/carreras", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var careers []domain.Career
	assert.NoError(t, json.Unmarshal(body, &careers))
	assert.Len(t, careers, 1)
	assert.Equal(t, "2 tours disponibles", careers[0].Tours)
	assert.Equal(t, "c1", careers[0].AltID)
}

func TestGetTourEndpoint(t *testing.T) {
	env := setupApp()
	tourID := uuid.New()

	t.Run("Invalid ID", func(t *testing.T) {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/tours/not-a-uuid", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Not Found", func(t *testing.T) {
		env.tourRepo.On("GetByID", mock.Anything, tourID).Return(nil, nil).Once()

		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/tours/"+tourID.String(), nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var errResp middleware.ErrorResponse
		assert.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, "NOT_FOUND", errResp.Code)
	})

	t.Run("Found", func(t *testing.T) {
		env.tourRepo.On("GetByID", mock.Anything, tourID).Return(&domain.TourRecord{
			ID:    tourID.String(),
			Title: "Quirófano",
		}, nil).Once()

		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/tours/"+tourID.String(), nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var tour domain.Tour
		assert.NoError(t, json.Unmarshal(body, &tour))
		assert.Equal(t, "Quirófano", tour.Title)
		assert.JSONEq(t, `{}`, string(tour.ARConfig))
	})
}

func TestTourModelRedirect(t *testing.T) {
	env := setupApp()
	tourID := uuid.New()
	env.tourRepo.On("GetByID", mock.Anything, tourID).Return(&domain.TourRecord{
		ID: tourID.String(),
	}, nil).Once()

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/tours/"+tourID.String()+"/model", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://example.com/fallback.glb", resp.Header.Get("Location"))
}

func TestDeleteCareerEndpoint(t *testing.T) {
	env := setupApp()
	careerID := uuid.New()

	t.Run("Deleted", func(t *testing.T) {
		env.careerRepo.On("Delete", mock.Anything, careerID).Return(true, nil).Once()

		resp, err := env.app.Test(httptest.NewRequest(http.MethodDelete, "/api/carreras/"+careerID.String(), nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Not Found", func(t *testing.T) {
		env.careerRepo.On("Delete", mock.Anything, careerID).Return(false, nil).Once()

		resp, err := env.app.Test(httptest.NewRequest(http.MethodDelete, "/api/carreras/"+careerID.String(), nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestIngestAnalyticsEndpoint(t *testing.T) {
	env := setupApp()

	t.Run("Empty Batch Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(`{"events":[]}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Batch Inserted", func(t *testing.T) {
		env.analyticsRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(records []domain.AnalyticsEventRecord) bool {
			return len(records) == 2
		})).Return(2, nil).Once()

		payload := `{"events":[{"eventType":"app_open","sessionId":"s1"},{"eventType":"screen_view","sessionId":"s1"}],"batchTimestamp":"2025-03-01T10:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var out struct {
			Success       bool   `json:"success"`
			InsertedCount int    `json:"insertedCount"`
			Message       string `json:"message"`
		}
		assert.NoError(t, json.Unmarshal(body, &out))
		assert.True(t, out.Success)
		assert.Equal(t, 2, out.InsertedCount)
		assert.Equal(t, "2 eventos registrados", out.Message)
	})
}

func TestUserMetricsEndpoint(t *testing.T) {
	env := setupApp()
	env.analyticsRepo.On("CountByEventType", mock.Anything, "u1").Return([]domain.EventTypeCount{
		{EventType: "screen_view", Count: 5},
	}, nil).Once()

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/analytics/user/u1", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		UserID string                  `json:"userId"`
		Events []domain.EventTypeCount `json:"events"`
	}
	assert.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "u1", out.UserID)
	assert.Len(t, out.Events, 1)
}
