package bot

import (
	"fmt"

	"swedishkings/internal/domain"
)

// ReasonText renders a human-readable explanation of a decision. The text is
// derived from the structured decision, never the other way around.
func ReasonText(d Decision, play *domain.Play) string {
	if d.Pass {
		return passReasonText(d)
	}
	if play == nil {
		return "Thinking..."
	}
	desc := playDesc(*play)
	wildInfo := ""
	if play.UsesWilds {
		wildInfo = " (using wildcards)"
	}

	switch d.Rule {
	case RuleCheapNonWild:
		return fmt.Sprintf("Strategically played %s%s: preferred a cheap non-wild play.", desc, wildInfo)
	case RuleSurplusAce:
		return fmt.Sprintf("Strategically played %s%s: spent a surplus ace instead of passing.", desc, wildInfo)
	case RuleLowDoubleWild:
		return fmt.Sprintf("Strategically played %s%s: low double with a spare wildcard instead of passing.", desc, wildInfo)
	case RuleSecondLowestSwap:
		return fmt.Sprintf("Strategically played %s%s: kept the lowest single in reserve.", desc, wildInfo)
	case RuleLowestNaturalPlay:
		return fmt.Sprintf("Strategically played %s%s: lowest natural rank instead of passing.", desc, wildInfo)
	case RuleBelowJackPlay:
		return fmt.Sprintf("Strategically played %s%s: non-wild below jack instead of passing.", desc, wildInfo)
	}

	switch d.Tier {
	case TierOpener:
		return fmt.Sprintf("Played %s%s to start the game (must include 4♥).", desc, wildInfo)
	case TierWinning:
		return fmt.Sprintf("Played %s%s to win the game!", desc, wildInfo)
	case TierPenultimate:
		if d.LowerPenultimate {
			return fmt.Sprintf("Played lower rank %s%s to set up a potential win next turn.", desc, wildInfo)
		}
		return fmt.Sprintf("Played %s%s to set up a potential win next turn.", desc, wildInfo)
	case TierStopOpponent:
		return fmt.Sprintf("Played %s%s aggressively as an opponent is nearly out of cards.", desc, wildInfo)
	case TierFallingBehind:
		return fmt.Sprintf("Played %s%s trying to reduce hand size (currently falling behind).", desc, wildInfo)
	case TierConfident:
		if d.AceStartSwap {
			return fmt.Sprintf("Played %s%s instead of the lowest single to protect it while holding an ace.", desc, wildInfo)
		}
		return fmt.Sprintf("Played %s%s confidently while ahead or level.", desc, wildInfo)
	case TierConservative:
		if d.AceStartSwap {
			return fmt.Sprintf("Played %s%s instead of the lowest single to protect it while holding an ace.", desc, wildInfo)
		}
		if d.RankPlusThree {
			return fmt.Sprintf("Played %s%s as a safe, non-royal, non-wild +3 rank play.", desc, wildInfo)
		}
		return fmt.Sprintf("Played %s%s cautiously, trying to save stronger cards.", desc, wildInfo)
	}
	return fmt.Sprintf("Played %s%s.", desc, wildInfo)
}

func passReasonText(d Decision) string {
	switch d.PassReason {
	case ReasonNoValidPlays:
		return "Passed: No valid plays were available."
	case ReasonConfidentHold:
		return "Passed: Had a valid play, but chose to pass while feeling confident."
	case ReasonConservativeHold:
		return "Passed: Had a valid play, but chose to pass to be more conservative."
	case ReasonFallingBehind:
		return "Passed: Could not find a suitable play to catch up."
	case ReasonStopOpponent:
		return "Passed: Could not find a play to stop opponent."
	case ReasonNoOpenerPlay:
		return "Passed: Error - Held the 4♥ but couldn't select a valid play."
	case ReasonIllegalWin:
		return "Passed: Intended winning play was invalid (contained Ace/Wild)."
	case ReasonHighWildUsage:
		return "Passed: Play considered would use too high a share of available wildcards."
	case ReasonInternalError:
		return "Passed: Internal error occurred during decision making."
	default:
		return "Passed: No suitable play found based on current strategy."
	}
}

// StyleTag renders a decision as a short machine-friendly label for the
// turn log.
func (d Decision) StyleTag() string {
	if d.Pass {
		if d.PassReason == ReasonNone {
			return "pass"
		}
		return "pass_" + string(d.PassReason)
	}
	if d.Rule != RuleNone {
		return "override_" + ruleTag(d.Rule) + wildSuffix(d.UsesWilds)
	}
	switch d.Tier {
	case TierOpener:
		return "start_opener"
	case TierWinning:
		return "winning"
	case TierPenultimate:
		if d.LowerPenultimate {
			return "penultimate_lower_rank"
		}
		return "penultimate"
	case TierStopOpponent:
		return "stop_opponent" + wildSuffix(d.UsesWilds)
	case TierFallingBehind:
		return "falling_behind" + wildSuffix(d.UsesWilds)
	case TierConfident:
		if d.AceStartSwap {
			return "confident_ace_start_swap"
		}
		return "confident" + wildSuffix(d.UsesWilds)
	case TierConservative:
		if d.AceStartSwap {
			return "conservative_ace_start_swap"
		}
		if d.RankPlusThree {
			return "conservative_rank_plus_three"
		}
		return "conservative" + wildSuffix(d.UsesWilds)
	}
	return "play"
}

func ruleTag(r Rule) string {
	switch r {
	case RuleWildRatioPass:
		return "wild_ratio_pass"
	case RuleSecondLowestSwap:
		return "second_lowest_swap"
	case RuleLowestNaturalPlay:
		return "lowest_natural"
	case RuleBelowJackPlay:
		return "below_jack"
	case RuleSurplusAce:
		return "surplus_ace"
	case RuleLowDoubleWild:
		return "low_double_wild"
	case RuleCheapNonWild:
		return "cheap_non_wild"
	}
	return "none"
}

func wildSuffix(usesWilds bool) string {
	if usesWilds {
		return "_with_wilds"
	}
	return "_no_wilds"
}

func playDesc(p domain.Play) string {
	plural := ""
	if p.Quantity > 1 {
		plural = "S"
	}
	return fmt.Sprintf("%dx %s%s", p.Quantity, domain.RankName(p.RankValue), plural)
}
