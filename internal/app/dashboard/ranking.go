package dashboard

import (
	"fmt"
	"sort"
	"training_board/internal/domain/model"
)

const rankSlots = 3

var medals = [rankSlots]string{"🥇", "🥈", "🥉"}

// RenderRankings appends three cards for the top entities of list to the
// named container: a medal card per filled rank, a placeholder otherwise.
// Existing cards are kept, so calling it twice on a container yields six.
func RenderRankings(doc *Document, containerID string, list []model.ScoredEntity, noun string) error {
	container, err := doc.Ranking(containerID)
	if err != nil {
		return err
	}

	sorted := make([]model.ScoredEntity, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPoints.Value > sorted[j].TotalPoints.Value
	})
	if len(sorted) > rankSlots {
		sorted = sorted[:rankSlots]
	}

	for i := 0; i < rankSlots; i++ {
		if i < len(sorted) {
			e := sorted[i]
			container.Cards = append(container.Cards, RankCard{
				Class:  fmt.Sprintf("rank-card medal-%d", i+1),
				Medal:  medals[i],
				Name:   e.DisplayName(),
				Points: e.TotalPoints.String(),
				Text:   medals[i] + " " + e.DisplayName(),
			})
			continue
		}
		container.Cards = append(container.Cards, RankCard{
			Class:       "rank-card placeholder",
			Placeholder: true,
			Text:        fmt.Sprintf("💥 This %s spot is up for grabs — complete a challenge to claim it!", noun),
		})
	}
	return nil
}
