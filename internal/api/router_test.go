package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"training_board/internal/api/handler"
	"training_board/internal/app/dashboard"
	"training_board/internal/common"
	"training_board/internal/domain/model"
	"training_board/internal/platform/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const payload = `{
  "users": [{"full_name": "Ada Lovelace", "total_points": 150}, {"full_name": "Alan Turing", "total_points": 90}],
  "universities": [{"university": "State University", "total_points": 240}],
  "packages": [
    {"package_id": 1, "package_name": "Intro to Networks", "difficulty": "foundational",
     "passing_threshold": 70, "release_date": "2024-02-01",
     "universities": [{"name": "State University", "users": 1}],
     "users": [{"full_name": "Ada Lovelace", "challenge_points_earned": 50}]},
    {"package_id": 2, "package_name": "Advanced Topics", "difficulty": "advanced",
     "passing_threshold": 90, "release_date": "2024-05-01"}
  ]
}`

type stubLoader struct {
	err error
}

func (l stubLoader) Load(context.Context) (*model.Dataset, error) {
	if l.err != nil {
		return nil, l.err
	}
	var ds model.Dataset
	if err := json.Unmarshal([]byte(payload), &ds); err != nil {
		return nil, err
	}
	ds.Normalize()
	return &ds, nil
}

func newTestRouter(loader handler.DatasetLoader) http.Handler {
	m := metrics.New()
	h := handler.NewDashboardHandler(loader, "https://catalog.test/", m, zap.NewNop())
	return NewRouter(h, m)
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHealth(t *testing.T) {
	rr := get(t, newTestRouter(stubLoader{}), "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestDashboardPage(t *testing.T) {
	rr := get(t, newTestRouter(stubLoader{}), "/?module-search=intro&tile=module-1-intro-to-networks&claims=universities")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "🥇 Ada Lovelace")
	assert.Contains(t, body, "💥 This user spot is up for grabs")
	assert.Contains(t, body, "<li>State University — 1 user</li>")
	assert.Equal(t, 1, strings.Count(body, `style="display: none"`))
}

func TestDashboardPageLoadFailureRendersShell(t *testing.T) {
	loader := stubLoader{err: common.Errorf("fetch: %w: %w", common.ErrDatasetUnavailable, errors.New("refused"))}
	rr := get(t, newTestRouter(loader), "/")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.NotContains(t, body, `class="rank-card`)
	assert.NotContains(t, body, `class="column"`)
}

func TestDashboardDocumentJSON(t *testing.T) {
	rr := get(t, newTestRouter(stubLoader{}), "/api/v1/dashboard?claimed-filter=unclaimed")
	require.Equal(t, http.StatusOK, rr.Code)

	var doc dashboard.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	require.Len(t, doc.Columns, 2)
	assert.Equal(t, dashboard.ClaimUnclaimed, doc.Filters.Claimed)
	assert.False(t, doc.Columns[0].Tiles[0].Visible)
	assert.True(t, doc.Columns[1].Tiles[0].Visible)
	assert.Equal(t, "(300 pts)", doc.Columns[1].PointsLabel)
}

func TestDashboardDocumentErrors(t *testing.T) {
	router := newTestRouter(stubLoader{})

	rr := get(t, router, "/api/v1/dashboard?tile=module-nope&claims=users")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = get(t, router, "/api/v1/dashboard?tile=module-1-intro-to-networks&claims=teams")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	failing := newTestRouter(stubLoader{err: common.Errorf("x: %w", common.ErrDatasetUnavailable)})
	rr = get(t, failing, "/api/v1/dashboard")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(stubLoader{})
	get(t, router, "/")

	rr := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "training_board_page_renders_total 1")
}
