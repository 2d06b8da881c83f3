package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"training_board/internal/app/dashboard"
	"training_board/internal/common"
	"training_board/internal/domain/model"
	"training_board/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DatasetLoader is the page-load fetch.
type DatasetLoader interface {
	Load(ctx context.Context) (*model.Dataset, error)
}

type DashboardHandler struct {
	loader         DatasetLoader
	catalogBaseURL string
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

func NewDashboardHandler(loader DatasetLoader, catalogBaseURL string, m *metrics.Metrics, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{loader: loader, catalogBaseURL: catalogBaseURL, metrics: m, logger: logger}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.page)
	r.Get("/api/v1/dashboard", h.document)
}

// page renders the dashboard. A failed load renders the empty shell with a
// 200, the same way a browser would leave the page blank.
func (h *DashboardHandler) page(w http.ResponseWriter, r *http.Request) {
	doc, err := h.build(r)
	if err != nil && !errors.Is(err, common.ErrDatasetUnavailable) {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.Render(w, doc); err != nil {
		h.logger.Error("render failed", zap.String("document", doc.ID), zap.Error(err))
	}
}

// document returns the same state as JSON. Here a load failure is reported.
func (h *DashboardHandler) document(w http.ResponseWriter, r *http.Request) {
	doc, err := h.build(r)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, doc)
}

// build runs one page load: fetch, mount, then replay the filter inputs and
// the claim click carried in the query string.
func (h *DashboardHandler) build(r *http.Request) (*dashboard.Document, error) {
	controller := dashboard.NewController(h.catalogBaseURL, h.logger)
	doc := controller.Document()
	query := r.URL.Query()
	doc.Filters = filtersFromQuery(query)

	ds, err := h.loader.Load(r.Context())
	if err != nil {
		h.logger.Warn("dataset load failed", zap.String("document", doc.ID), zap.Error(err))
		return doc, err
	}
	if err := controller.Mount(ds); err != nil {
		return doc, err
	}
	visible := controller.SetFilters(doc.Filters)

	if tileID := query.Get("tile"); tileID != "" {
		kind, ok := dashboard.ParseClaimKind(query.Get("claims"))
		if !ok {
			return doc, common.Errorf("claims must be universities or users: %w", common.ErrBadRequest)
		}
		if err := controller.OpenClaims(tileID, kind); err != nil {
			if errors.Is(err, dashboard.ErrTileNotFound) {
				return doc, common.Errorf("%v: %w", err, common.ErrNotFound)
			}
			return doc, err
		}
	}

	if h.metrics != nil {
		h.metrics.PageRenders.Inc()
		h.metrics.VisibleTiles.Observe(float64(visible))
	}
	return doc, nil
}

func filtersFromQuery(q url.Values) dashboard.Filters {
	return dashboard.Filters{
		User:       q.Get(dashboard.UserSearchControl),
		University: q.Get(dashboard.UniversitySearchControl),
		Module:     q.Get(dashboard.ModuleSearchControl),
		Claimed:    dashboard.ParseClaimState(q.Get(dashboard.ClaimedFilterControl)),
	}
}
