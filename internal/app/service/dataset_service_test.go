package service

import (
	"context"
	"errors"
	"testing"
	"time"
	"training_board/internal/common"
	"training_board/internal/domain/model"
	"training_board/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	data []byte
	err  error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) Fetch(ctx context.Context) ([]byte, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("fetch called without a deadline")
	}
	return s.data, s.err
}

func TestDatasetServiceLoad(t *testing.T) {
	m := metrics.New()
	svc := NewDatasetService(stubSource{data: []byte(`{"packages":[{"package_name":"Intro"}]}`)}, time.Second, m, zap.NewNop())

	ds, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Packages, 1)
	assert.Equal(t, model.TierUncategorized, ds.Packages[0].Difficulty)
	assert.Empty(t, ds.Users)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetLoads.WithLabelValues(metrics.ResultOK)))
}

func TestDatasetServiceLoadFailures(t *testing.T) {
	m := metrics.New()

	svc := NewDatasetService(stubSource{err: errors.New("connection refused")}, time.Second, m, zap.NewNop())
	_, err := svc.Load(context.Background())
	require.ErrorIs(t, err, common.ErrDatasetUnavailable)
	assert.Contains(t, err.Error(), "connection refused")

	svc = NewDatasetService(stubSource{data: []byte(`{"packages": 7}`)}, time.Second, m, zap.NewNop())
	_, err = svc.Load(context.Background())
	require.ErrorIs(t, err, common.ErrDatasetUnavailable)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatasetLoads.WithLabelValues(metrics.ResultError)))
}
