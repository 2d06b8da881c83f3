// Package dashboard renders the leaderboard and module catalog into a
// Document, the explicit UI state of one page view, and applies the filter
// and detail-modal interactions to it.
package dashboard

import (
	"errors"
	"fmt"
)

// Element ids and control names of the presentation surface.
const (
	TopUsersID        = "top-users"
	TopUniversitiesID = "top-universities"
	ColumnsID         = "difficulty-columns"
	ModalID           = "stats-modal"
	ModalTitleID      = "modal-title"
	ModalContentID    = "modal-content-list"

	UserSearchControl       = "user-search"
	UniversitySearchControl = "university-search"
	ModuleSearchControl     = "module-search"
	ClaimedFilterControl    = "claimed-filter"
)

var (
	ErrContainerNotFound = errors.New("container not found")
	ErrTileNotFound      = errors.New("tile not found")
	ErrUnknownControl    = errors.New("unknown filter control")
)

type RankCard struct {
	Class       string `json:"class"`
	Medal       string `json:"medal,omitempty"`
	Name        string `json:"name,omitempty"`
	Points      string `json:"points,omitempty"`
	Placeholder bool   `json:"placeholder"`
	Text        string `json:"text"`
}

type RankingContainer struct {
	ID    string     `json:"id"`
	Cards []RankCard `json:"cards"`
}

type Column struct {
	Tier        string  `json:"tier"`
	Title       string  `json:"title"`
	PointsLabel string  `json:"points_label"`
	Tiles       []*Tile `json:"tiles"`
}

// Document is the UI state of a single page view. It is not safe for
// concurrent use; every page view builds its own.
type Document struct {
	ID       string              `json:"id"`
	Rankings []*RankingContainer `json:"rankings"`
	Columns  []*Column           `json:"columns"`
	Modal    *Modal              `json:"modal"`
	Filters  Filters             `json:"filters"`
}

// NewDocument returns the empty page shell: both ranking containers, no
// columns, a closed modal and empty filters.
func NewDocument(id string) *Document {
	return &Document{
		ID: id,
		Rankings: []*RankingContainer{
			{ID: TopUsersID, Cards: []RankCard{}},
			{ID: TopUniversitiesID, Cards: []RankCard{}},
		},
		Columns: []*Column{},
		Modal:   &Modal{Rows: []string{}},
		Filters: Filters{Claimed: ClaimAny},
	}
}

func (d *Document) Ranking(id string) (*RankingContainer, error) {
	for _, r := range d.Rankings {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrContainerNotFound)
}

// Tiles returns every rendered tile in column order.
func (d *Document) Tiles() []*Tile {
	var tiles []*Tile
	for _, col := range d.Columns {
		tiles = append(tiles, col.Tiles...)
	}
	return tiles
}

func (d *Document) Tile(id string) (*Tile, error) {
	for _, t := range d.Tiles() {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrTileNotFound)
}

// VisibleTiles counts tiles currently shown.
func (d *Document) VisibleTiles() int {
	n := 0
	for _, t := range d.Tiles() {
		if t.Visible {
			n++
		}
	}
	return n
}
