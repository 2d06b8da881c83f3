package dashboard

import (
	"fmt"
	"sort"
	"training_board/internal/domain/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	noUniversitiesMessage = "No universities have completed this module yet."
	noUsersMessage        = "No users have earned points on this module yet."
)

// Modal is the single shared detail overlay. Each Show call replaces its
// content; the last call wins.
type Modal struct {
	Open  bool      `json:"open"`
	Title string    `json:"title"`
	Kind  ClaimKind `json:"kind,omitempty"`
	Tile  string    `json:"tile,omitempty"`
	Empty bool      `json:"empty"`
	Rows  []string  `json:"rows"`
}

// ShowUniversityClaims lists universities by name in locale order.
func (m *Modal) ShowUniversityClaims(title string, claims []model.UniversityClaim) {
	m.reset(title, UniversityClaims)
	if len(claims) == 0 {
		m.Empty = true
		m.Rows = append(m.Rows, noUniversitiesMessage)
		m.Open = true
		return
	}

	sorted := make([]model.UniversityClaim, len(claims))
	copy(sorted, claims)
	c := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name.String(), sorted[j].Name.String()) < 0
	})
	for _, u := range sorted {
		suffix := "s"
		if u.Users.Value == 1 {
			suffix = ""
		}
		m.Rows = append(m.Rows, fmt.Sprintf("%s — %s user%s", u.Name, u.Users, suffix))
	}
	m.Open = true
}

// ShowUserClaims lists users by points earned, highest first, with ties in
// name order.
func (m *Modal) ShowUserClaims(title string, claims []model.UserClaim) {
	m.reset(title, UserClaims)
	if len(claims) == 0 {
		m.Empty = true
		m.Rows = append(m.Rows, noUsersMessage)
		m.Open = true
		return
	}

	sorted := make([]model.UserClaim, len(claims))
	copy(sorted, claims)
	c := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ChallengePointsEarned.Value != b.ChallengePointsEarned.Value {
			return a.ChallengePointsEarned.Value > b.ChallengePointsEarned.Value
		}
		return c.CompareString(a.FullName.String(), b.FullName.String()) < 0
	})
	for _, u := range sorted {
		m.Rows = append(m.Rows, fmt.Sprintf("%s — %s pts", u.FullName, u.ChallengePointsEarned))
	}
	m.Open = true
}

func (m *Modal) Close() {
	m.Open = false
}

func (m *Modal) reset(title string, kind ClaimKind) {
	m.Title = title
	m.Kind = kind
	m.Empty = false
	m.Rows = []string{}
}
