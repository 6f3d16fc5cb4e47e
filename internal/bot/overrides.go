package bot

import (
	"sort"

	botinternal "swedishkings/internal/bot/internal"
	"swedishkings/internal/domain"
)

// OverrideContext is the working state of the strategic override pipeline.
// The rules run in a fixed precedence; the first rule that fires ends the
// pass-conversion sequence, and the wild-ratio cap short-circuits everything.
type OverrideContext struct {
	Hand          []domain.Card
	Last          *domain.Play
	ValidPlays    []domain.Play
	Tuning        Tuning
	StartingRound bool
	// InitialPass records whether the ladder itself landed on a pass,
	// before any rule changed the outcome.
	InitialPass bool
	// Chosen is the play standing after the rules so far; nil means pass.
	Chosen           *domain.Play
	Decision         Decision
	InitialCandidate *domain.Play
	LowestPlay       *domain.Play

	done bool
}

// OverrideRule is one post-ladder adjustment: a predicate plus transform
// applied to the context.
type OverrideRule interface {
	Name() string
	Apply(ctx *OverrideContext)
}

// overrideRules in precedence order: the wildcard-ratio cap first (it may
// force a pass and short-circuit the rest), the ace-opener swap next, then
// the pass conversions (lowest natural, surplus ace, low double), and the
// cheap non-wild preference last as refinement or final pass override.
var overrideRules = []OverrideRule{
	&wildRatioCapRule{},
	&aceOpenerSwapRule{},
	&lowestNaturalOverPassRule{},
	&surplusAceRule{},
	&lowDoubleWildRule{},
	&cheapNonWildRule{},
}

// ApplyOverrides runs the override pipeline over the ladder outcome.
func ApplyOverrides(ctx *OverrideContext) {
	for _, rule := range overrideRules {
		if ctx.done {
			return
		}
		rule.Apply(ctx)
	}
}

func (ctx *OverrideContext) adopt(play domain.Play, rule Rule) {
	ctx.Chosen = &play
	ctx.Decision = Decision{
		Tier:      ctx.Decision.Tier,
		Rule:      rule,
		UsesWilds: play.UsesWilds,
	}
	ctx.done = true
}

// withinWildBudget applies the wild-ratio threshold locally to a candidate:
// true when the play is wild-free, the hand is small enough for the rule not
// to apply, or the consumed fraction stays at or below the threshold.
func (ctx *OverrideContext) withinWildBudget(play domain.Play) bool {
	if !play.UsesWilds || len(ctx.Hand) < MinHandForWildPassRule {
		return true
	}
	total := domain.CountWilds(ctx.Hand)
	if total == 0 {
		return true
	}
	used := domain.CountWilds(play.Cards)
	return float64(used)/float64(total) <= ctx.Tuning.WildPassRatio
}

// wildRatioCapRule (rule 5): when the candidate play — chosen or the one a
// pass left behind — would consume too large a fraction of the hand's wilds
// on a big hand, force a pass and stop evaluating further rules.
type wildRatioCapRule struct{}

func (r *wildRatioCapRule) Name() string { return "WildRatioCap" }

func (r *wildRatioCapRule) Apply(ctx *OverrideContext) {
	candidate := ctx.Chosen
	if candidate == nil {
		candidate = ctx.InitialCandidate
	}
	if candidate == nil || !candidate.UsesWilds {
		return
	}
	if ctx.withinWildBudget(*candidate) {
		return
	}
	ctx.Chosen = nil
	ctx.Decision = Decision{
		Tier:       ctx.Decision.Tier,
		Rule:       RuleWildRatioPass,
		Pass:       true,
		PassReason: ReasonHighWildUsage,
	}
	ctx.done = true
}

// aceOpenerSwapRule (rule 3): opening a fresh round while holding an ace,
// with the lowest natural single as the standing choice or candidate, play
// the second-lowest natural single instead.
type aceOpenerSwapRule struct{}

func (r *aceOpenerSwapRule) Name() string { return "AceOpenerSwap" }

func (r *aceOpenerSwapRule) Apply(ctx *OverrideContext) {
	if !ctx.StartingRound || botinternal.CountRank(ctx.Hand, "A") == 0 {
		return
	}
	initialChoice := ctx.Chosen
	if initialChoice == nil {
		initialChoice = ctx.InitialCandidate
	}
	if initialChoice == nil || ctx.LowestPlay == nil {
		return
	}
	if initialChoice.Quantity != 1 ||
		botinternal.PlayID(*initialChoice) != botinternal.PlayID(*ctx.LowestPlay) {
		return
	}
	second, ok := botinternal.SecondLowestNatural(ctx.Hand)
	if !ok {
		return
	}
	play := domain.Play{
		Cards:     []domain.Card{second},
		RankValue: second.Value,
		Quantity:  1,
	}
	if !domain.Beats(play, ctx.Last) {
		return
	}
	ctx.adopt(play, RuleSecondLowestSwap)
}

// lowestNaturalOverPassRule (rule 6): convert a pass into playing the lowest
// natural rank at the required quantity, filling with wilds if the wild
// budget allows; otherwise any non-wild play below jack.
type lowestNaturalOverPassRule struct{}

func (r *lowestNaturalOverPassRule) Name() string { return "LowestNaturalOverPass" }

func (r *lowestNaturalOverPassRule) Apply(ctx *OverrideContext) {
	if !ctx.InitialPass || ctx.Chosen != nil {
		return
	}
	if play, ok := r.lowestRankPlay(ctx); ok {
		ctx.adopt(play, RuleLowestNaturalPlay)
		return
	}
	var pool []domain.Play
	for _, p := range ctx.ValidPlays {
		if !p.UsesWilds && p.RankValue < domain.JackValue {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].RankValue != pool[j].RankValue {
			return pool[i].RankValue < pool[j].RankValue
		}
		return pool[i].Quantity > pool[j].Quantity
	})
	ctx.adopt(pool[0], RuleBelowJackPlay)
}

func (r *lowestNaturalOverPassRule) lowestRankPlay(ctx *OverrideContext) (domain.Play, bool) {
	lowest, ok := botinternal.LowestNatural(ctx.Hand)
	if !ok {
		return domain.Play{}, false
	}
	quantity := 1
	if ctx.Last != nil && ctx.Last.Quantity > quantity {
		quantity = ctx.Last.Quantity
	}
	naturals := botinternal.NaturalsByRank(ctx.Hand)[lowest.Value]
	wilds := botinternal.Wilds(ctx.Hand)
	use := quantity
	if use > len(naturals) {
		use = len(naturals)
	}
	wildsNeeded := quantity - use
	if wildsNeeded > len(wilds) {
		return domain.Play{}, false
	}
	cards := append(append([]domain.Card(nil), naturals[:use]...), wilds[:wildsNeeded]...)
	play := domain.Play{
		Cards:     cards,
		RankValue: lowest.Value,
		Quantity:  quantity,
		UsesWilds: wildsNeeded > 0,
	}
	if !domain.Beats(play, ctx.Last) || !ctx.withinWildBudget(play) {
		return domain.Play{}, false
	}
	return play, true
}

// surplusAceRule (rule 1): holding two or more aces, spend one on a passed
// turn — a single ace, or an ace-with-wild double when the wild budget
// allows.
type surplusAceRule struct{}

func (r *surplusAceRule) Name() string { return "SurplusAce" }

func (r *surplusAceRule) Apply(ctx *OverrideContext) {
	if !ctx.InitialPass || ctx.Chosen != nil || ctx.StartingRound {
		return
	}
	if botinternal.CountRank(ctx.Hand, "A") < SurplusAceMinimum {
		return
	}
	var candidates []domain.Play
	for _, p := range ctx.ValidPlays {
		if p.RankValue == domain.AceValue && p.Quantity <= 2 {
			candidates = append(candidates, p)
		}
	}
	// Spend as little as possible: fewest cards, then fewest wilds.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Quantity != candidates[j].Quantity {
			return candidates[i].Quantity < candidates[j].Quantity
		}
		return domain.CountWilds(candidates[i].Cards) < domain.CountWilds(candidates[j].Cards)
	})
	for _, p := range candidates {
		if ctx.withinWildBudget(p) {
			ctx.adopt(p, RuleSurplusAce)
			return
		}
	}
}

// lowDoubleWildRule (rule 2): with three or more wilds in hand and a sub-jack
// table, answer a passed-on double with lowest-natural-plus-wild.
type lowDoubleWildRule struct{}

func (r *lowDoubleWildRule) Name() string { return "LowDoubleWild" }

func (r *lowDoubleWildRule) Apply(ctx *OverrideContext) {
	if !ctx.InitialPass || ctx.Chosen != nil {
		return
	}
	wilds := botinternal.Wilds(ctx.Hand)
	if len(wilds) < LowDoubleMinWilds {
		return
	}
	lastRank := -1
	if ctx.Last != nil {
		lastRank = ctx.Last.RankValue
	}
	if lastRank >= domain.JackValue {
		return
	}
	if ctx.InitialCandidate == nil || ctx.InitialCandidate.Quantity != 2 {
		return
	}
	lowest, ok := botinternal.LowestNatural(ctx.Hand)
	if !ok {
		return
	}
	play := domain.Play{
		Cards:     []domain.Card{lowest, wilds[0]},
		RankValue: lowest.Value,
		Quantity:  2,
		UsesWilds: true,
	}
	if !domain.Beats(play, ctx.Last) {
		return
	}
	ctx.adopt(play, RuleLowDoubleWild)
}

// cheapNonWildRule (rule 4): a non-wild play below the per-game rank
// threshold refines a wild-using or higher-ranked chosen play, and serves as
// the final pass override when none of the earlier rules fired.
type cheapNonWildRule struct{}

func (r *cheapNonWildRule) Name() string { return "CheapNonWild" }

func (r *cheapNonWildRule) Apply(ctx *OverrideContext) {
	if ctx.StartingRound {
		return
	}
	var pool []domain.Play
	for _, p := range ctx.ValidPlays {
		if !p.UsesWilds && p.RankValue < ctx.Tuning.CheapRankThreshold {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].RankValue != pool[j].RankValue {
			return pool[i].RankValue < pool[j].RankValue
		}
		return pool[i].Quantity > pool[j].Quantity
	})
	cheap := pool[0]

	if ctx.Chosen != nil {
		if ctx.Chosen.UsesWilds || cheap.RankValue < ctx.Chosen.RankValue {
			ctx.adopt(cheap, RuleCheapNonWild)
		}
		return
	}
	if ctx.InitialPass {
		ctx.adopt(cheap, RuleCheapNonWild)
	}
}
