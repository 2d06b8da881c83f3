package service

import (
	"context"
	"encoding/json"
	"time"
	"training_board/internal/common"
	"training_board/internal/domain/model"
	"training_board/internal/domain/repository"
	"training_board/internal/platform/metrics"

	"go.uber.org/zap"
)

// DatasetService performs the single fetch of a page load.
type DatasetService struct {
	source  repository.DatasetSource
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewDatasetService(source repository.DatasetSource, timeout time.Duration, m *metrics.Metrics, logger *zap.Logger) *DatasetService {
	return &DatasetService{source: source, timeout: timeout, metrics: m, logger: logger}
}

// Load fetches and decodes the dataset, applying defaults once. Any failure
// wraps both ErrDatasetUnavailable and its cause; nothing is retried.
func (s *DatasetService) Load(ctx context.Context) (*model.Dataset, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	data, err := s.source.Fetch(ctx)
	if err != nil {
		s.record(metrics.ResultError)
		return nil, common.Errorf("fetching dataset from %s: %w: %w", s.source.Name(), common.ErrDatasetUnavailable, err)
	}

	var ds model.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		s.record(metrics.ResultError)
		return nil, common.Errorf("decoding dataset from %s: %w: %w", s.source.Name(), common.ErrDatasetUnavailable, err)
	}
	ds.Normalize()

	s.record(metrics.ResultOK)
	s.logger.Debug("dataset loaded",
		zap.String("source", s.source.Name()),
		zap.Int("users", len(ds.Users)),
		zap.Int("universities", len(ds.Universities)),
		zap.Int("packages", len(ds.Packages)),
	)
	return &ds, nil
}

func (s *DatasetService) record(result string) {
	if s.metrics != nil {
		s.metrics.DatasetLoads.WithLabelValues(result).Inc()
	}
}
