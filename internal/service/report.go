package service

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/repository"
	"github.com/adventureworks/enterprise-api/pkg/apperror"
	"github.com/adventureworks/enterprise-api/pkg/logger"
	"github.com/adventureworks/enterprise-api/pkg/metrics"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

const (
	cacheKeyTenure       = "report:tenure"
	cacheKeyTopSellers   = "report:top_sellers"
	cacheKeyLowInventory = "report:low_inventory"
)

// ReportService serves the aggregate reports. Results are cached for a short
// TTL since the underlying queries scan whole tables.
type ReportService struct {
	repo    repository.ReportRepository
	cache   *cache.Cache
	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewReportService(repo repository.ReportRepository, ttl time.Duration, m *metrics.Metrics, log *logger.Logger) *ReportService {
	return &ReportService{
		repo:    repo,
		cache:   cache.New(ttl, 2*ttl),
		metrics: m,
		log:     log.WithComponent("report_service"),
	}
}

func (s *ReportService) countCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.ReportCacheHits.Inc()
	} else {
		s.metrics.ReportCacheMisses.Inc()
	}
}

func (s *ReportService) LongestTenuredEmployees(ctx context.Context) ([]model.LongestTenuredEmployee, error) {
	if cached, ok := s.cache.Get(cacheKeyTenure); ok {
		s.countCache(true)
		return cached.([]model.LongestTenuredEmployee), nil
	}
	s.countCache(false)

	rows, err := s.repo.LongestTenuredEmployees(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to build tenure report", err)
	}
	s.cache.SetDefault(cacheKeyTenure, rows)
	return rows, nil
}

func (s *ReportService) TopSellingProducts(ctx context.Context, limit int) ([]model.TopSellingProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	key := fmt.Sprintf("%s:%d", cacheKeyTopSellers, limit)
	if cached, ok := s.cache.Get(key); ok {
		s.countCache(true)
		return cached.([]model.TopSellingProduct), nil
	}
	s.countCache(false)

	rows, err := s.repo.TopSellingProducts(ctx, limit)
	if err != nil {
		return nil, apperror.NewInternal("failed to build top sellers report", err)
	}
	s.cache.SetDefault(key, rows)
	return rows, nil
}

func (s *ReportService) LowInventoryProducts(ctx context.Context) ([]model.LowInventoryProduct, error) {
	if cached, ok := s.cache.Get(cacheKeyLowInventory); ok {
		s.countCache(true)
		return cached.([]model.LowInventoryProduct), nil
	}
	s.countCache(false)

	rows, err := s.repo.LowInventoryProducts(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to build low inventory report", err)
	}
	s.cache.SetDefault(cacheKeyLowInventory, rows)
	return rows, nil
}

// LowInventoryPaged pages the cached low-inventory rows in process. Report
// views page locally over the snapshot they already hold.
func (s *ReportService) LowInventoryPaged(ctx context.Context, req paginate.Request) (paginate.Result[model.LowInventoryProduct], error) {
	rows, err := s.LowInventoryProducts(ctx)
	if err != nil {
		return paginate.Result[model.LowInventoryProduct]{}, err
	}
	return paginate.Paginate(rows, req, lowInventoryPageDefinition()), nil
}

func lowInventoryPageDefinition() paginate.Definition[model.LowInventoryProduct] {
	return paginate.Definition[model.LowInventoryProduct]{
		SearchFields: func(p model.LowInventoryProduct) []string {
			return []string{p.ProductName, p.ProductNumber, p.ProductLocation, p.InventoryStatus}
		},
		Sorts: map[string]func(a, b model.LowInventoryProduct) int{
			"productid": func(a, b model.LowInventoryProduct) int { return a.ProductID - b.ProductID },
			"inventory": func(a, b model.LowInventoryProduct) int { return a.CurrentInventory - b.CurrentInventory },
			"name": func(a, b model.LowInventoryProduct) int {
				switch {
				case a.ProductName < b.ProductName:
					return -1
				case a.ProductName > b.ProductName:
					return 1
				}
				return 0
			},
		},
		DefaultSort: "inventory",
	}
}
