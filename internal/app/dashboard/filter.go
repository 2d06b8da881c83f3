package dashboard

import (
	"fmt"
	"strings"
)

type ClaimState string

const (
	ClaimAny       ClaimState = "all"
	ClaimClaimed   ClaimState = "claimed"
	ClaimUnclaimed ClaimState = "unclaimed"
)

// ParseClaimState maps a selector value; anything unrecognised means any.
func ParseClaimState(s string) ClaimState {
	switch ClaimState(s) {
	case ClaimClaimed, ClaimUnclaimed:
		return ClaimState(s)
	}
	return ClaimAny
}

// Filters holds the current values of the four filter controls.
type Filters struct {
	User       string     `json:"user"`
	University string     `json:"university"`
	Module     string     `json:"module"`
	Claimed    ClaimState `json:"claimed"`
}

// Set updates the control called name, as an input event would.
func (f *Filters) Set(name, value string) error {
	switch name {
	case UserSearchControl:
		f.User = value
	case UniversitySearchControl:
		f.University = value
	case ModuleSearchControl:
		f.Module = value
	case ClaimedFilterControl:
		f.Claimed = ParseClaimState(value)
	default:
		return fmt.Errorf("%q: %w", name, ErrUnknownControl)
	}
	return nil
}

// Matches ANDs the four predicates against a tile. Text queries are
// case-insensitive substring matches; an empty query matches everything.
func (f Filters) Matches(t *Tile) bool {
	moduleQuery := strings.ToLower(f.Module)
	userQuery := strings.ToLower(f.User)
	universityQuery := strings.ToLower(f.University)

	if moduleQuery != "" && !strings.Contains(strings.ToLower(t.Name), moduleQuery) {
		return false
	}

	m := t.Module()
	if userQuery != "" {
		found := false
		for _, u := range m.Users {
			if strings.Contains(strings.ToLower(u.FullName.String()), userQuery) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if universityQuery != "" {
		found := false
		for _, u := range m.Universities {
			if strings.Contains(strings.ToLower(u.Name.String()), universityQuery) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch f.Claimed {
	case ClaimClaimed:
		return t.HasClaims
	case ClaimUnclaimed:
		return !t.HasClaims
	}
	return true
}

// ApplyFilters recomputes the visibility of every tile in doc from its
// current filters and returns how many stay visible.
func ApplyFilters(doc *Document) int {
	visible := 0
	for _, t := range doc.Tiles() {
		t.Visible = doc.Filters.Matches(t)
		if t.Visible {
			visible++
		}
	}
	return visible
}
