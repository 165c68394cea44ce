package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"explorar/internal/config"
	"explorar/internal/repository"
	"explorar/internal/service/analytics"
	"explorar/internal/service/catalog"
)

type Services struct {
	Catalog   catalog.Service
	Analytics analytics.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	return &Services{
		Catalog:   catalog.NewService(repos.Career, repos.Tour, repos.Testimonial, redis, minioClient, cfg),
		Analytics: analytics.NewService(repos.Analytics),
	}
}
