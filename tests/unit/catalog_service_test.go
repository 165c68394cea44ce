package unit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"explorar/internal/config"
	"explorar/internal/domain"
	"explorar/internal/service/catalog"
	"explorar/tests/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		MinIOBucket:      "explorar-models",
		FallbackModelURL: "https://example.com/fallback.glb",
	}
}

func newCatalogService(careers *mocks.CareerRepository, tours *mocks.TourRepository, testimonials *mocks.TestimonialRepository) catalog.Service {
	return catalog.NewService(careers, tours, testimonials, nil, nil, testConfig())
}

func TestCatalogCareers(t *testing.T) {
	careerRepo := new(mocks.CareerRepository)
	tourRepo := new(mocks.TourRepository)
	testimonialRepo := new(mocks.TestimonialRepository)
	svc := newCatalogService(careerRepo, tourRepo, testimonialRepo)
	ctx := context.Background()

	careerRepo.On("GetAll", ctx).Return([]domain.CareerRecord{
		{
			ID:            "c1",
			Name:          "Medicina",
			Description:   "Ciencias de la salud",
			Category:      "Salud",
			IsHighlighted: true,
			TourCount:     3,
			AverageRating: 4.52,
			UpdatedAt:     "2025-03-01T10:00:00Z",
		},
		{ID: "c2", Name: "Derecho"},
	}, nil).Once()

	careers, err := svc.Careers(ctx)

	assert.NoError(t, err)
	assert.Len(t, careers, 2)

	first := careers[0]
	assert.Equal(t, "c1", first.ID)
	assert.Equal(t, "c1", first.AltID)
	assert.Equal(t, "Medicina", first.Title)
	assert.Equal(t, "3 tours disponibles", first.Tours)
	assert.Equal(t, "4.5", first.Rating)
	assert.Equal(t, "0 reseñas", first.Reviews)
	assert.Equal(t, "Salud", first.Category)
	assert.True(t, first.IsHighlighted)

	assert.Equal(t, "0 tours disponibles", careers[1].Tours)
	assert.Equal(t, "Sin categoría", careers[1].Category)
}

func TestCatalogTours(t *testing.T) {
	careerRepo := new(mocks.CareerRepository)
	tourRepo := new(mocks.TourRepository)
	testimonialRepo := new(mocks.TestimonialRepository)
	svc := newCatalogService(careerRepo, tourRepo, testimonialRepo)
	ctx := context.Background()

	image := "https://cdn.example.com/t1.jpg"
	careerID := "c1"
	tourRepo.On("GetAll", ctx).Return([]domain.TourRecord{
		{ID: "t1", Title: "Quirófano", Duration: "8 min", Type: "360", ImageURL: &image, CareerID: &careerID},
		{ID: "t2", Title: "Sin datos"},
	}, nil).Once()

	tours, err := svc.Tours(ctx)

	assert.NoError(t, err)
	assert.Len(t, tours, 2)
	assert.Equal(t, "8 min", tours[0].Duration)
	assert.Equal(t, image, tours[0].Image)
	assert.Equal(t, "c1", tours[0].CareerID)
	// List responses never carry the heavy AR payload.
	assert.Nil(t, tours[0].Multimedia)

	assert.Equal(t, "0 min", tours[1].Duration)
	assert.Equal(t, "AR", tours[1].Type)
}

func TestCatalogTourByID(t *testing.T) {
	careerRepo := new(mocks.CareerRepository)
	tourRepo := new(mocks.TourRepository)
	testimonialRepo := new(mocks.TestimonialRepository)
	svc := newCatalogService(careerRepo, tourRepo, testimonialRepo)
	ctx := context.Background()
	tourID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		tourRepo.On("GetByID", ctx, tourID).Return(&domain.TourRecord{
			ID:    tourID.String(),
			Title: "Quirófano",
		}, nil).Once()

		tour, err := svc.TourByID(ctx, tourID)

		assert.NoError(t, err)
		assert.NotNil(t, tour)
		assert.JSONEq(t, `[]`, string(tour.Multimedia))
		assert.JSONEq(t, `[]`, string(tour.Hotspots))
		assert.JSONEq(t, `{}`, string(tour.ARConfig))
	})

	t.Run("Not Found", func(t *testing.T) {
		tourRepo.On("GetByID", ctx, tourID).Return(nil, nil).Once()

		tour, err := svc.TourByID(ctx, tourID)

		assert.NoError(t, err)
		assert.Nil(t, tour)
	})
}

func TestCatalogTourModelURL(t *testing.T) {
	careerRepo := new(mocks.CareerRepository)
	tourRepo := new(mocks.TourRepository)
	testimonialRepo := new(mocks.TestimonialRepository)
	svc := newCatalogService(careerRepo, tourRepo, testimonialRepo)
	ctx := context.Background()
	tourID := uuid.New()

	t.Run("Fallback Without Model", func(t *testing.T) {
		tourRepo.On("GetByID", ctx, tourID).Return(&domain.TourRecord{ID: tourID.String()}, nil).Once()

		url, found, err := svc.TourModelURL(ctx, tourID)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "https://example.com/fallback.glb", url)
	})

	t.Run("Tour Missing", func(t *testing.T) {
		tourRepo.On("GetByID", ctx, tourID).Return(nil, nil).Once()

		_, found, err := svc.TourModelURL(ctx, tourID)

		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestCatalogTestimonials(t *testing.T) {
	careerRepo := new(mocks.CareerRepository)
	tourRepo := new(mocks.TourRepository)
	testimonialRepo := new(mocks.TestimonialRepository)
	svc := newCatalogService(careerRepo, tourRepo, testimonialRepo)
	ctx := context.Background()

	testimonialRepo.On("GetAll", ctx).Return([]domain.TestimonialRecord{
		{ID: "x1", Author: "Ana", Role: "Estudiante", Year: "2024", Text: "Me encantó"},
		{ID: "x2", Text: "Anónimo pero feliz"},
	}, nil).Once()

	testimonials, err := svc.Testimonials(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "Ana", testimonials[0].Author)
	assert.Equal(t, "Anónimo", testimonials[1].Author)
}

func TestCatalogDeleteCareer(t *testing.T) {
	careerRepo := new(mocks.CareerRepository)
	tourRepo := new(mocks.TourRepository)
	testimonialRepo := new(mocks.TestimonialRepository)
	svc := newCatalogService(careerRepo, tourRepo, testimonialRepo)
	ctx := context.Background()
	careerID := uuid.New()

	t.Run("Deleted", func(t *testing.T) {
		careerRepo.On("Delete", ctx, careerID).Return(true, nil).Once()

		deleted, err := svc.DeleteCareer(ctx, careerID)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Not Found", func(t *testing.T) {
		careerRepo.On("Delete", ctx, careerID).Return(false, nil).Once()

		deleted, err := svc.DeleteCareer(ctx, careerID)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Repo Error", func(t *testing.T) {
		careerRepo.On("Delete", ctx, careerID).Return(false, errors.New("db error")).Once()

		_, err := svc.DeleteCareer(ctx, careerID)

		assert.Error(t, err)
	})
}
