package dashboard

import (
	"fmt"
	"training_board/internal/domain/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderCatalog appends one column per displayed tier that has modules.
// Modules of any other tier, Uncategorized included, are not rendered. ds is
// expected to be normalized. Tile ids are unique within doc: a repeated id
// gets a "-2", "-3", ... suffix.
func RenderCatalog(doc *Document, ds *model.Dataset, catalogBaseURL string) {
	grouped := map[model.Tier][]model.Module{}
	for _, m := range ds.Packages {
		grouped[m.Difficulty] = append(grouped[m.Difficulty], m)
	}

	taken := map[string]bool{}
	for _, t := range doc.Tiles() {
		taken[t.ID] = true
	}

	points := ds.TierPoints()
	title := cases.Title(language.Und)
	for _, tier := range model.DisplayedTiers {
		modules, ok := grouped[tier]
		if !ok {
			continue
		}
		col := &Column{
			Tier:        string(tier),
			Title:       title.String(string(tier)),
			PointsLabel: pointsLabel(points, tier),
		}
		for _, m := range modules {
			tile := BuildTile(m, catalogBaseURL)
			tile.ID = uniqueID(tile.ID, taken)
			col.Tiles = append(col.Tiles, tile)
		}
		doc.Columns = append(doc.Columns, col)
	}
}

// pointsLabel renders "(N pts)"; unmapped or zero tiers show "?".
func pointsLabel(points map[model.Tier]model.Number, tier model.Tier) string {
	n, ok := points[tier]
	if !ok || n.IsZero() {
		return "(? pts)"
	}
	return "(" + n.String() + " pts)"
}

func uniqueID(id string, taken map[string]bool) string {
	candidate := id
	for n := 2; taken[candidate]; n++ {
		candidate = fmt.Sprintf("%s-%d", id, n)
	}
	taken[candidate] = true
	return candidate
}
