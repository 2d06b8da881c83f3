package dashboard

import (
	"encoding/json"
	"fmt"
	"training_board/internal/domain/model"

	"github.com/gosimple/slug"
)

type ClaimKind string

const (
	UniversityClaims ClaimKind = "universities"
	UserClaims       ClaimKind = "users"
)

func ParseClaimKind(s string) (ClaimKind, bool) {
	switch ClaimKind(s) {
	case UniversityClaims, UserClaims:
		return ClaimKind(s), true
	}
	return "", false
}

type Trigger struct {
	Kind  ClaimKind `json:"kind"`
	Label string    `json:"label"`
}

// Tile is the catalog entry of one module. It keeps the module itself so the
// filter engine and the claim triggers work on structured data; Attributes
// carries the same data serialized for the rendered markup.
type Tile struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Class           string            `json:"class"`
	Link            string            `json:"link"`
	Threshold       string            `json:"threshold"`
	ReleaseDate     string            `json:"release_date"`
	UniversityCount int               `json:"university_count"`
	UserCount       int               `json:"user_count"`
	HasClaims       bool              `json:"has_claims"`
	Visible         bool              `json:"visible"`
	Attributes      map[string]string `json:"attributes"`
	Triggers        []Trigger         `json:"triggers"`

	module   model.Module
	handlers map[ClaimKind]func()
}

// BuildTile constructs the tile for m. Claim triggers are inert until a
// handler is registered with On.
func BuildTile(m model.Module, catalogBaseURL string) *Tile {
	universityCount := len(m.Universities)
	userCount := len(m.Users)
	hasClaims := userCount > 0

	class := "tile tile-noclaims"
	if hasClaims {
		class = "tile tile-hasclaims"
	}

	return &Tile{
		ID:              "module-" + slug.Make(m.PackageID.String()+" "+m.PackageName.String()),
		Name:            m.PackageName.String(),
		Class:           class,
		Link:            catalogBaseURL + m.PackageID.String(),
		Threshold:       fmt.Sprintf("Completion Threshold: %s%%", m.PassingThreshold),
		ReleaseDate:     fmt.Sprintf("Release Date: %s", m.ReleaseDate),
		UniversityCount: universityCount,
		UserCount:       userCount,
		HasClaims:       hasClaims,
		Visible:         true,
		Attributes: map[string]string{
			"data-module-name":  m.PackageName.String(),
			"data-users":        mustJSON(m.Users),
			"data-universities": mustJSON(m.Universities),
		},
		Triggers: []Trigger{
			{Kind: UniversityClaims, Label: fmt.Sprintf("University Claims (%d)", universityCount)},
			{Kind: UserClaims, Label: fmt.Sprintf("User Claims (%d)", userCount)},
		},
		module:   m,
		handlers: map[ClaimKind]func(){},
	}
}

func (t *Tile) Module() model.Module {
	return t.module
}

// On registers fn as the activation handler of the trigger of kind.
func (t *Tile) On(kind ClaimKind, fn func()) {
	t.handlers[kind] = fn
}

// Activate fires the trigger of kind, as a click on its button would.
func (t *Tile) Activate(kind ClaimKind) error {
	fn, ok := t.handlers[kind]
	if !ok {
		return fmt.Errorf("tile %s has no %s trigger", t.ID, kind)
	}
	fn()
	return nil
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
