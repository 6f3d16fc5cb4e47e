package domain

// Hand-strength heuristic. Royals carry base points, wilds a flat bonus, and
// same-rank groups an escalating bonus keyed to the rank's value. The bonuses
// are cumulative: a quad also collects the pair and triple bonus.

var basePoints = map[string]int{
	"A": 10, "K": 8, "Q": 6, "J": 4, "10": 3, "9": 2, "8": 1,
}

var wildPoints = map[string]int{
	RankJoker: 5, "2": 4, "3": 4,
}

// HandStrength scores a hand for relative-standing comparisons.
func HandStrength(hand []Card) int {
	if len(hand) == 0 {
		return 0
	}
	score := 0
	rankCounts := make(map[string]int)
	for _, c := range hand {
		if c.Wild {
			score += wildPoints[c.Rank]
			continue
		}
		score += basePoints[c.Rank]
		rankCounts[c.Rank]++
	}
	for rank, count := range rankCounts {
		value := rankValues[rank]
		if count >= 2 {
			score += 10 + ceilDiv(value, 2)
		}
		if count >= 3 {
			score += 15 + value
		}
		if count >= 4 {
			score += 15 + ceilDiv(value*3, 2)
		}
	}
	return score
}

// AvgStrength is the per-card strength used to compare a player's standing
// against the table. Empty hands score zero.
func AvgStrength(hand []Card) float64 {
	if len(hand) == 0 {
		return 0
	}
	return float64(HandStrength(hand)) / float64(len(hand))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
