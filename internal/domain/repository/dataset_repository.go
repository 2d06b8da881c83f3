package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"training_board/internal/common"
)

// DatasetSource returns the raw bytes of the dataset document.
type DatasetSource interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}

// NewDatasetSource picks a source from the location: http(s) URLs are
// fetched, postgres DSNs are queried through db, anything else is a file path.
func NewDatasetSource(location string, client *http.Client, db *sql.DB) DatasetSource {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPDatasetSource(location, client)
	case IsPostgresDSN(location):
		return NewPgDatasetSource(db)
	default:
		return NewFileDatasetSource(location)
	}
}

func IsPostgresDSN(location string) bool {
	return strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://")
}

type fileDatasetSource struct {
	path string
}

func NewFileDatasetSource(path string) DatasetSource {
	return &fileDatasetSource{path: path}
}

func (s *fileDatasetSource) Name() string { return s.path }

func (s *fileDatasetSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("dataset file %s: %w", s.path, common.ErrNotFound)
		}
		return nil, fmt.Errorf("fileDatasetSource.Fetch: %w", err)
	}
	return data, nil
}

type httpDatasetSource struct {
	url    string
	client *http.Client
}

func NewHTTPDatasetSource(url string, client *http.Client) DatasetSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpDatasetSource{url: url, client: client}
}

func (s *httpDatasetSource) Name() string { return s.url }

// Fetch issues a single GET. There is no retry.
func (s *httpDatasetSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpDatasetSource.Fetch: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpDatasetSource.Fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("dataset %s: %w", s.url, common.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset %s: unexpected status %d", s.url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpDatasetSource.Fetch: reading body: %w", err)
	}
	return data, nil
}

type pgDatasetSource struct {
	db *sql.DB
}

// NewPgDatasetSource reads the most recent payload from training_datasets.
func NewPgDatasetSource(db *sql.DB) DatasetSource {
	return &pgDatasetSource{db: db}
}

func (s *pgDatasetSource) Name() string { return "postgres:training_datasets" }

func (s *pgDatasetSource) Fetch(ctx context.Context) ([]byte, error) {
	if s.db == nil {
		return nil, errors.New("pgDatasetSource.Fetch: no database connection")
	}
	query := `SELECT payload FROM training_datasets ORDER BY created_at DESC LIMIT 1`
	var payload []byte
	err := s.db.QueryRowContext(ctx, query).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no stored dataset: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("pgDatasetSource.Fetch: %w", err)
	}
	return payload, nil
}
