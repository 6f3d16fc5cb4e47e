package bot

import (
	"sort"

	botinternal "swedishkings/internal/bot/internal"
	"swedishkings/internal/domain"
)

// LadderBot is the standard computer strategy: an ordered priority ladder
// (win, penultimate setup, stop opponent, falling behind, confident,
// conservative) whose confident/conservative outcomes are then run through
// the strategic override pipeline.
type LadderBot struct {
	Tuning Tuning
}

// NewLadderBot returns a LadderBot with the given per-game tuning.
func NewLadderBot(tuning Tuning) *LadderBot {
	return &LadderBot{Tuning: tuning}
}

// ladderResult carries the ladder outcome plus the context the override
// pipeline needs: the best play a pass left behind and the lowest-rank play.
type ladderResult struct {
	move             Move
	decision         Decision
	initialCandidate *domain.Play
	lowestPlay       *domain.Play
}

// CalculateMove picks the bot's action for the current turn. It never
// returns an error for rule-level dead ends; those degrade to a pass with a
// diagnostic reason so the game stays playable.
func (b *LadderBot) CalculateMove(game *domain.Game, playerIdx int) (Move, Decision, error) {
	if game == nil || playerIdx < 0 || playerIdx >= len(game.Players) {
		return Move{Pass: true}, Decision{Pass: true, PassReason: ReasonInternalError}, nil
	}
	player := game.Players[playerIdx]
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, Decision{Pass: true, PassReason: ReasonInternalError}, nil
	}
	hand := player.Hand
	validPlays := botinternal.FindValidPlays(hand, game.LastPlayedHand, game.IsGameStarted)

	var res ladderResult
	if !game.IsGameStarted && domain.ContainsOpener(hand) {
		// Forced opener: choose among the plays containing the 4♥.
		openerPlays := make([]domain.Play, 0, len(validPlays))
		for _, p := range validPlays {
			if domain.ContainsOpener(p.Cards) {
				openerPlays = append(openerPlays, p)
			}
		}
		if len(openerPlays) == 0 {
			// Should not occur under correct enumeration.
			return Move{Pass: true}, Decision{Tier: TierOpener, Pass: true, PassReason: ReasonNoOpenerPlay}, nil
		}
		res = b.ladder(game, playerIdx, hand, openerPlays)
		if res.move.Pass {
			res.move = Move{Play: openerPlays[0]}
		}
		res.decision = Decision{Tier: TierOpener, UsesWilds: res.move.Play.UsesWilds}
	} else {
		res = b.ladder(game, playerIdx, hand, validPlays)
		if res.decision.Tier == TierConfident || res.decision.Tier == TierConservative {
			ctx := &OverrideContext{
				Hand:             hand,
				Last:             game.LastPlayedHand,
				ValidPlays:       validPlays,
				Tuning:           b.Tuning,
				StartingRound:    game.LastPlayedHand == nil,
				InitialPass:      res.move.Pass,
				Decision:         res.decision,
				InitialCandidate: res.initialCandidate,
				LowestPlay:       res.lowestPlay,
			}
			if !res.move.Pass {
				chosen := res.move.Play
				ctx.Chosen = &chosen
			}
			ApplyOverrides(ctx)
			if ctx.Chosen != nil {
				res.move = Move{Play: *ctx.Chosen}
			} else {
				res.move = Move{Pass: true}
			}
			res.decision = ctx.Decision
		}
	}

	// Final safety: a chosen play may not close the hand with an ace or a
	// wild, mirroring the human-facing rule.
	if !res.move.Pass && res.move.Play.Quantity == len(hand) && !domain.IsWinningPlayLegal(res.move.Play) {
		res.move = Move{Pass: true}
		res.decision = Decision{Tier: res.decision.Tier, Pass: true, PassReason: ReasonIllegalWin}
	}
	return res.move, res.decision, nil
}

// ladder walks the priority tiers over the supplied play set and returns the
// first matching tier's outcome.
func (b *LadderBot) ladder(game *domain.Game, playerIdx int, hand []domain.Card, validPlays []domain.Play) ladderResult {
	if len(validPlays) == 0 {
		return ladderResult{
			move:     Move{Pass: true},
			decision: Decision{Pass: true, PassReason: ReasonNoValidPlays},
		}
	}
	last := game.LastPlayedHand
	lastRank := -1
	if last != nil {
		lastRank = last.RankValue
	}

	// Tier 1: a clean winning play trumps everything.
	for _, p := range validPlays {
		if p.Quantity == len(hand) && domain.IsWinningPlayLegal(p) {
			return ladderResult{
				move:     Move{Play: p},
				decision: Decision{Tier: TierWinning, UsesWilds: p.UsesWilds},
			}
		}
	}

	// Table context shared by the remaining tiers.
	minOpponentHand := int(^uint(0) >> 1)
	opponentCount := 0
	opponentAvgSum := 0.0
	for i, pl := range game.Players {
		if i == playerIdx || pl == nil {
			continue
		}
		opponentCount++
		if len(pl.Hand) < minOpponentHand {
			minOpponentHand = len(pl.Hand)
		}
		opponentAvgSum += domain.AvgStrength(pl.Hand)
	}
	myAvg := domain.AvgStrength(hand)
	tableAvg := 0.0
	if opponentCount > 0 {
		tableAvg = opponentAvgSum / float64(opponentCount)
	}

	// Tier 2: two distinct natural ranks left — dump the higher rank with
	// every wild to leave a single-rank hand for a guaranteed follow-up.
	if res, ok := b.penultimate(hand, last); ok {
		return res
	}

	// Tier 3: an opponent is close to going out; play as high as possible.
	if minOpponentHand <= b.Tuning.StopOpponentThreshold {
		candidates := append([]domain.Play(nil), validPlays...)
		sort.SliceStable(candidates, func(i, j int) bool {
			si := candidates[i].RankValue - wildDiscount(candidates[i])
			sj := candidates[j].RankValue - wildDiscount(candidates[j])
			if si != sj {
				return si > sj
			}
			if candidates[i].Quantity != candidates[j].Quantity {
				return candidates[i].Quantity > candidates[j].Quantity
			}
			return candidates[i].RankValue > candidates[j].RankValue
		})
		if len(candidates) > 0 {
			p := candidates[0]
			return ladderResult{
				move:     Move{Play: p},
				decision: Decision{Tier: TierStopOpponent, UsesWilds: p.UsesWilds},
			}
		}
		return ladderResult{
			move:     Move{Pass: true},
			decision: Decision{Tier: TierStopOpponent, Pass: true, PassReason: ReasonStopOpponent},
		}
	}

	// Tier 4: falling behind the leader — shed at parity, else grow the
	// quantity without spending wilds.
	if len(hand) >= minOpponentHand+b.Tuning.FallingBehindMargin {
		if p, ok := b.fallingBehind(validPlays, last); ok {
			return ladderResult{
				move:     Move{Play: p},
				decision: Decision{Tier: TierFallingBehind, UsesWilds: p.UsesWilds},
			}
		}
		return ladderResult{
			move:     Move{Pass: true},
			decision: Decision{Tier: TierFallingBehind, Pass: true, PassReason: ReasonFallingBehind},
		}
	}

	// Tiers 5/6 share the candidate bookkeeping the override stage needs.
	byRank := append([]domain.Play(nil), validPlays...)
	sort.SliceStable(byRank, func(i, j int) bool { return byRank[i].RankValue < byRank[j].RankValue })
	lowestPlay := byRank[0]

	standard := append([]domain.Play(nil), validPlays...)
	sortStandard(standard)
	initialCandidate := standard[0]

	var highestID, lowestID string
	if c, ok := botinternal.HighestNatural(hand); ok {
		highestID = c.ID
	}
	var lowestCardRank = -1
	if c, ok := botinternal.LowestNatural(hand); ok {
		lowestID = c.ID
		lowestCardRank = c.Value
	}

	if myAvg >= tableAvg {
		// Tier 5: confident.
		candidates := filterAndSortCandidates(validPlays, 4, 2, highestID, lowestID, lastRank)
		if len(candidates) == 0 {
			return ladderResult{
				move:             Move{Pass: true},
				decision:         Decision{Tier: TierConfident, Pass: true, PassReason: ReasonConfidentHold},
				initialCandidate: &initialCandidate,
				lowestPlay:       &lowestPlay,
			}
		}
		choice, swapped := aceStartAdjust(candidates, hand, last, lowestCardRank)
		return ladderResult{
			move:             Move{Play: choice},
			decision:         Decision{Tier: TierConfident, UsesWilds: choice.UsesWilds, AceStartSwap: swapped},
			initialCandidate: &candidates[0],
			lowestPlay:       &lowestPlay,
		}
	}

	// Tier 6: conservative — tighter margins plus the last+3 candidate.
	var rankPlusThree *domain.Play
	if lastRank != -1 {
		target := lastRank + 3
		var pool []domain.Play
		for _, p := range validPlays {
			if p.RankValue == target && !p.UsesWilds && p.RankValue < domain.RoyalValueThreshold {
				pool = append(pool, p)
			}
		}
		if len(pool) > 0 {
			sort.SliceStable(pool, func(i, j int) bool { return pool[i].Quantity > pool[j].Quantity })
			rankPlusThree = &pool[0]
		}
	}
	candidates := filterAndSortCandidates(validPlays, 2, 1, highestID, lowestID, lastRank)
	if rankPlusThree != nil {
		id := botinternal.PlayID(*rankPlusThree)
		present := false
		for _, p := range candidates {
			if botinternal.PlayID(p) == id {
				present = true
				break
			}
		}
		if !present {
			candidates = append(candidates, *rankPlusThree)
			sortStandard(candidates)
		}
	}
	if len(candidates) == 0 {
		return ladderResult{
			move:             Move{Pass: true},
			decision:         Decision{Tier: TierConservative, Pass: true, PassReason: ReasonConservativeHold},
			initialCandidate: &initialCandidate,
			lowestPlay:       &lowestPlay,
		}
	}
	choice, swapped := aceStartAdjust(candidates, hand, last, lowestCardRank)
	dec := Decision{Tier: TierConservative, UsesWilds: choice.UsesWilds, AceStartSwap: swapped}
	if rankPlusThree != nil && !swapped && botinternal.PlayID(choice) == botinternal.PlayID(*rankPlusThree) {
		dec.RankPlusThree = true
	}
	return ladderResult{
		move:             Move{Play: choice},
		decision:         dec,
		initialCandidate: &candidates[0],
		lowestPlay:       &lowestPlay,
	}
}

// penultimate implements tier 2: with exactly two distinct natural ranks in
// hand, try higher-rank-plus-all-wilds, then the lower rank.
func (b *LadderBot) penultimate(hand []domain.Card, last *domain.Play) (ladderResult, bool) {
	groups := botinternal.NaturalsByRank(hand)
	if len(groups) != 2 {
		return ladderResult{}, false
	}
	ranks := make([]int, 0, 2)
	for r := range groups {
		ranks = append(ranks, r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	wilds := botinternal.Wilds(hand)

	for i, rank := range ranks {
		cards := append(append([]domain.Card(nil), groups[rank]...), wilds...)
		p := domain.Play{
			Cards:     cards,
			RankValue: rank,
			Quantity:  len(cards),
			UsesWilds: len(wilds) > 0,
		}
		if domain.Beats(p, last) {
			return ladderResult{
				move: Move{Play: p},
				decision: Decision{
					Tier:             TierPenultimate,
					UsesWilds:        p.UsesWilds,
					LowerPenultimate: i == 1,
				},
			}, true
		}
	}
	return ladderResult{}, false
}

// fallingBehind implements tier 4's preference order: match the last
// quantity exactly (lowest rank, fewest wilds), else increase the quantity
// without wilds (lowest rank, highest quantity). Leading a fresh round falls
// back to the combined ordering since there is no quantity to match.
func (b *LadderBot) fallingBehind(validPlays []domain.Play, last *domain.Play) (domain.Play, bool) {
	if last == nil {
		standard := append([]domain.Play(nil), validPlays...)
		sortStandard(standard)
		return standard[0], true
	}
	var matching []domain.Play
	for _, p := range validPlays {
		if p.Quantity == last.Quantity {
			matching = append(matching, p)
		}
	}
	if len(matching) > 0 {
		sortStandard(matching)
		return matching[0], true
	}
	var growing []domain.Play
	for _, p := range validPlays {
		if p.Quantity > last.Quantity && !p.UsesWilds {
			growing = append(growing, p)
		}
	}
	if len(growing) > 0 {
		sort.SliceStable(growing, func(i, j int) bool {
			if growing[i].RankValue != growing[j].RankValue {
				return growing[i].RankValue < growing[j].RankValue
			}
			return growing[i].Quantity > growing[j].Quantity
		})
		return growing[0], true
	}
	return domain.Play{}, false
}

// filterAndSortCandidates applies the confident/conservative filter: plays
// containing the hand's single lowest natural card bypass every check, the
// rest must stay within rankLimit of the last rank (royalLimit when the last
// play was queen or higher) and avoid the hand's single highest natural card.
func filterAndSortCandidates(plays []domain.Play, rankLimit, royalLimit int, avoidHighestID, lowestID string, lastRank int) []domain.Play {
	if len(plays) == 0 {
		return nil
	}
	var lowestPlays, standard []domain.Play
	for _, p := range plays {
		if lowestID != "" && containsCardID(p.Cards, lowestID) {
			lowestPlays = append(lowestPlays, p)
			continue
		}
		if lastRank != -1 && p.RankValue > lastRank+rankLimit {
			continue
		}
		if avoidHighestID != "" && containsCardID(p.Cards, avoidHighestID) {
			continue
		}
		if lastRank >= domain.QueenValue && p.RankValue > lastRank+royalLimit {
			continue
		}
		standard = append(standard, p)
	}
	combined := append(lowestPlays, standard...)
	sortStandard(combined)
	return combined
}

// aceStartAdjust swaps away from the single lowest natural card when opening
// a fresh round with an ace in hand, preferring the first non-wild
// alternative in the candidate list.
func aceStartAdjust(candidates []domain.Play, hand []domain.Card, last *domain.Play, lowestCardRank int) (domain.Play, bool) {
	choice := candidates[0]
	if last != nil {
		return choice, false
	}
	if botinternal.CountRank(hand, "A") == 0 {
		return choice, false
	}
	if choice.RankValue != lowestCardRank || choice.Quantity != 1 {
		return choice, false
	}
	for _, alt := range candidates[1:] {
		if !alt.UsesWilds {
			return alt, true
		}
	}
	return choice, false
}

// sortStandard orders plays by ascending rank, then ascending wild count,
// then descending quantity — the engine's default preference.
func sortStandard(plays []domain.Play) {
	sort.SliceStable(plays, func(i, j int) bool {
		if plays[i].RankValue != plays[j].RankValue {
			return plays[i].RankValue < plays[j].RankValue
		}
		wi := domain.CountWilds(plays[i].Cards)
		wj := domain.CountWilds(plays[j].Cards)
		if wi != wj {
			return wi < wj
		}
		return plays[i].Quantity > plays[j].Quantity
	})
}

func wildDiscount(p domain.Play) int {
	if p.UsesWilds {
		return WildPenalty
	}
	return 0
}

func containsCardID(cards []domain.Card, id string) bool {
	for _, c := range cards {
		if c.ID == id {
			return true
		}
	}
	return false
}
