package service

import (
	"time"

	"go-inventory-cli/internal/model"
	"go-inventory-cli/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ReportService interface {
	LowStock(threshold int) ([]model.Product, error)
	TotalInventoryValue() (decimal.Decimal, error)
	GetStats() (*Stats, error)
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	RecentMovements(limit int) ([]model.StockMovement, error)
	DefaultThreshold() int
}

// Stats is the overview shown on the system information screen.
type Stats struct {
	TotalProducts     int64
	TotalCategories   int64
	LowStockCount     int64
	LowStockThreshold int
	TotalValuation    decimal.Decimal
}

type reportService struct {
	productRepo      repository.ProductRepository
	categoryRepo     repository.CategoryRepository
	movementRepo     repository.StockMovementRepository
	defaultThreshold int
	now              func() time.Time
	log              zerolog.Logger
}

func NewReportService(
	pRepo repository.ProductRepository,
	cRepo repository.CategoryRepository,
	mRepo repository.StockMovementRepository,
	defaultThreshold int,
	log zerolog.Logger,
) ReportService {
	return &reportService{
		productRepo:      pRepo,
		categoryRepo:     cRepo,
		movementRepo:     mRepo,
		defaultThreshold: defaultThreshold,
		now:              time.Now,
		log:              log,
	}
}

func (s *reportService) DefaultThreshold() int {
	return s.defaultThreshold
}

// LowStock lists products under threshold, lowest quantity first.
// A non-positive threshold uses the configured default.
func (s *reportService) LowStock(threshold int) ([]model.Product, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}
	products, err := s.productRepo.FindLowStock(threshold)
	if err != nil {
		s.log.Error().Err(err).Int("threshold", threshold).Msg("failed to build low stock report")
		return nil, err
	}
	return products, nil
}

func (s *reportService) TotalInventoryValue() (decimal.Decimal, error) {
	total, err := s.productRepo.TotalValue()
	if err != nil {
		s.log.Error().Err(err).Msg("failed to compute inventory value")
		return decimal.Zero, err
	}
	return total, nil
}

func (s *reportService) GetStats() (*Stats, error) {
	stats := Stats{LowStockThreshold: s.defaultThreshold}

	var err error
	if stats.TotalProducts, err = s.productRepo.Count(); err != nil {
		s.log.Error().Err(err).Msg("failed to count products")
		return nil, err
	}
	if stats.TotalCategories, err = s.categoryRepo.Count(); err != nil {
		s.log.Error().Err(err).Msg("failed to count categories")
		return nil, err
	}
	if stats.LowStockCount, err = s.productRepo.CountLowStock(s.defaultThreshold); err != nil {
		s.log.Error().Err(err).Msg("failed to count low stock products")
		return nil, err
	}
	if stats.TotalValuation, err = s.productRepo.TotalValue(); err != nil {
		s.log.Error().Err(err).Msg("failed to compute inventory value")
		return nil, err
	}
	return &stats, nil
}

// GetStockMovement aggregates adjustments per day over the last days.
func (s *reportService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	if days <= 0 {
		days = 7
	}
	endDate := s.now()
	startDate := endDate.AddDate(0, 0, -days)

	data, err := s.movementRepo.GetStockMovement(startDate, endDate)
	if err != nil {
		s.log.Error().Err(err).Int("days", days).Msg("failed to aggregate stock movement")
		return nil, err
	}
	return data, nil
}

func (s *reportService) RecentMovements(limit int) ([]model.StockMovement, error) {
	if limit <= 0 {
		limit = 10
	}
	movements, err := s.movementRepo.FindRecent(limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load recent movements")
		return nil, err
	}
	return movements, nil
}
