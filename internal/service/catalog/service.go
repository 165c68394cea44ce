package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"explorar/internal/config"
	"explorar/internal/domain"
	"explorar/internal/repository"
)

const (
	cacheKeyCareers      = "catalog:carreras"
	cacheKeyTours        = "catalog:tours"
	cacheKeyTestimonials = "catalog:testimonios"

	modelURLExpiry = 15 * time.Minute
)

type Service interface {
	Careers(ctx context.Context) ([]domain.Career, error)
	Tours(ctx context.Context) ([]domain.Tour, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
	TourByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	TourModelURL(ctx context.Context, id uuid.UUID) (string, bool, error)
	DeleteCareer(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	careerRepo      repository.CareerRepository
	tourRepo        repository.TourRepository
	testimonialRepo repository.TestimonialRepository
	redis           *redis.Client
	minioClient     *minio.Client
	cfg             *config.Config
}

func NewService(
	careerRepo repository.CareerRepository,
	tourRepo repository.TourRepository,
	testimonialRepo repository.TestimonialRepository,
	redis *redis.Client,
	minioClient *minio.Client,
	cfg *config.Config,
) Service {
	return &service{
		careerRepo:      careerRepo,
		tourRepo:        tourRepo,
		testimonialRepo: testimonialRepo,
		redis:           redis,
		minioClient:     minioClient,
		cfg:             cfg,
	}
}

func (s *service) Careers(ctx context.Context) ([]domain.Career, error) {
	var careers []domain.Career
	if s.cacheGet(ctx, cacheKeyCareers, &careers) {
		return careers, nil
	}

	records, err := s.careerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	careers = make([]domain.Career, 0, len(records))
	for _, rec := range records {
		careers = append(careers, careerToWire(rec))
	}

	s.cacheSet(ctx, cacheKeyCareers, careers)
	return careers, nil
}

func (s *service) Tours(ctx context.Context) ([]domain.Tour, error) {
	var tours []domain.Tour
	if s.cacheGet(ctx, cacheKeyTours, &tours) {
		return tours, nil
	}

	records, err := s.tourRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	tours = make([]domain.Tour, 0, len(records))
	for _, rec := range records {
		tours = append(tours, tourToWire(rec, false))
	}

	s.cacheSet(ctx, cacheKeyTours, tours)
	return tours, nil
}

func (s *service) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	if s.cacheGet(ctx, cacheKeyTestimonials, &testimonials) {
		return testimonials, nil
	}

	records, err := s.testimonialRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	testimonials = make([]domain.Testimonial, 0, len(records))
	for _, rec := range records {
		testimonials = append(testimonials, testimonialToWire(rec))
	}

	s.cacheSet(ctx, cacheKeyTestimonials, testimonials)
	return testimonials, nil
}

func (s *service) TourByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	rec, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	tour := tourToWire(*rec, true)
	return &tour, nil
}

// TourModelURL resolves the 3D model for a tour to a presigned URL, or
// to the public fallback model when the tour has no object of its own
// or object storage is unavailable. The second return is false when the
// tour does not exist.
func (s *service) TourModelURL(ctx context.Context, id uuid.UUID) (string, bool, error) {
	rec, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return "", false, err
	}
	if rec == nil {
		return "", false, nil
	}

	if rec.ModelObject == nil || *rec.ModelObject == "" || s.minioClient == nil {
		return s.cfg.FallbackModelURL, true, nil
	}

	presigned, err := s.minioClient.PresignedGetObject(ctx, s.cfg.MinIOBucket, *rec.ModelObject, modelURLExpiry, nil)
	if err != nil {
		return s.cfg.FallbackModelURL, true, nil
	}
	return presigned.String(), true, nil
}

func (s *service) DeleteCareer(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.careerRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted && s.redis != nil {
		// Tours reference careers, so both lists go stale together.
		_ = s.redis.Del(ctx, cacheKeyCareers, cacheKeyTours).Err()
	}
	return deleted, nil
}

func (s *service) cacheGet(ctx context.Context, key string, out any) bool {
	if s.redis == nil {
		return false
	}
	cached, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(cached), out) == nil
}

func (s *service) cacheSet(ctx context.Context, key string, value any) {
	if s.redis == nil {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		_ = s.redis.Set(ctx, key, data, s.cfg.CatalogCacheTTL).Err()
	}
}

func careerToWire(rec domain.CareerRecord) domain.Career {
	category := rec.Category
	if category == "" {
		category = "Sin categoría"
	}

	return domain.Career{
		ID:            rec.ID,
		AltID:         rec.ID,
		Title:         rec.Name,
		Tours:         fmt.Sprintf("%d tours disponibles", rec.TourCount),
		Rating:        fmt.Sprintf("%.1f", rec.AverageRating),
		Reviews:       "0 reseñas",
		Description:   rec.Description,
		Category:      category,
		IsHighlighted: rec.IsHighlighted,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func tourToWire(rec domain.TourRecord, detail bool) domain.Tour {
	duration := rec.Duration
	if duration == "" {
		duration = "0 min"
	}
	tourType := rec.Type
	if tourType == "" {
		tourType = "AR"
	}

	tour := domain.Tour{
		ID:          rec.ID,
		AltID:       rec.ID,
		Title:       rec.Title,
		Duration:    duration,
		Progress:    rec.Progress,
		Description: rec.Description,
		Type:        tourType,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.ImageURL != nil {
		tour.Image = *rec.ImageURL
	}
	if rec.CareerID != nil {
		tour.CareerID = *rec.CareerID
	}

	if detail {
		tour.Multimedia = orDefault(rec.Multimedia, "[]")
		tour.Hotspots = orDefault(rec.Hotspots, "[]")
		tour.ARConfig = orDefault(rec.ARConfig, "{}")
	}
	return tour
}

func testimonialToWire(rec domain.TestimonialRecord) domain.Testimonial {
	author := rec.Author
	if author == "" {
		author = "Anónimo"
	}

	testimonial := domain.Testimonial{
		ID:        rec.ID,
		AltID:     rec.ID,
		Author:    author,
		Role:      rec.Role,
		Year:      rec.Year,
		Text:      rec.Text,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.AuthorImage != nil {
		testimonial.AuthorImage = *rec.AuthorImage
	}
	if rec.MediaURL != nil {
		testimonial.MediaURL = *rec.MediaURL
	}
	return testimonial
}

func orDefault(raw json.RawMessage, fallback string) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage(fallback)
	}
	return raw
}
