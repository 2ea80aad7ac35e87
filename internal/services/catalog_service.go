package services

import (
	"context"
	"time"

	"shoplite/internal/caching"
	"shoplite/internal/models"
	"shoplite/internal/repositories"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CatalogService serves the read-only product catalog with a Redis
// read-through cache in front of the database.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type catalogService struct {
	productRepo repositories.ProductRepository
	cacheSvc    caching.CacheService
	cacheTTL    time.Duration
}

func NewCatalogService(productRepo repositories.ProductRepository, cacheSvc caching.CacheService, cacheTTL time.Duration) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		cacheSvc:    cacheSvc,
		cacheTTL:    cacheTTL,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	if s.cacheSvc != nil {
		cached, err := s.cacheSvc.GetProductList(ctx)
		if err != nil {
			log.Warnf("product list cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheSvc != nil && len(products) > 0 {
		if err := s.cacheSvc.SetProductList(ctx, products, s.cacheTTL); err != nil {
			log.Warnf("product list cache write failed: %v", err)
		}
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.cacheSvc != nil {
		cached, err := s.cacheSvc.GetProduct(ctx, id)
		if err != nil {
			log.Warnf("product cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheSvc != nil {
		if err := s.cacheSvc.SetProduct(ctx, product, s.cacheTTL); err != nil {
			log.Warnf("product cache write failed: %v", err)
		}
	}
	return product, nil
}
