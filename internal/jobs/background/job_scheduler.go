package background

import (
	"context"
	"time"

	"shoplite/internal/caching"
	"shoplite/internal/repositories"

	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"
)

// JobScheduler manages periodic background jobs
type JobScheduler struct {
	scheduler   gocron.Scheduler
	cacheSvc    caching.CacheService
	productRepo repositories.ProductRepository
	cacheTTL    time.Duration
}

func NewJobScheduler(cacheSvc caching.CacheService, productRepo repositories.ProductRepository, cacheTTL time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:   scheduler,
		cacheSvc:    cacheSvc,
		productRepo: productRepo,
		cacheTTL:    cacheTTL,
	}
	js.registerJobs()
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Info("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Info("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Catalog warm job - every 5 minutes, keeps the product cache fresh
	_, err := js.scheduler.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(js.warmCatalogCache),
		gocron.WithName("catalog-cache-warm"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Errorf("Failed to create catalog cache warm job: %v", err)
	}
}

// warmCatalogCache re-reads the catalog from the database and rewrites the
// Redis entries so reads after a cache flush stay fast.
func (js *JobScheduler) warmCatalogCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := js.productRepo.List(ctx)
	if err != nil {
		log.Errorf("catalog cache warm: listing products failed: %v", err)
		return
	}
	if len(products) == 0 {
		return
	}

	if err := js.cacheSvc.SetProductList(ctx, products, js.cacheTTL); err != nil {
		log.Warnf("catalog cache warm: product list write failed: %v", err)
	}
	for _, product := range products {
		if err := js.cacheSvc.SetProduct(ctx, product, js.cacheTTL); err != nil {
			log.Warnf("catalog cache warm: product %s write failed: %v", product.ID, err)
			return
		}
	}
	log.Debugf("catalog cache warm: refreshed %d products", len(products))
}
