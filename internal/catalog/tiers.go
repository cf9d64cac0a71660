// Package catalog derives the pricing-page tiers from the backend challenge list.
package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fundezy-io/fundezy-web/internal/matchtrader"
)

// Tier is the display projection of a challenge used on pricing surfaces.
// Tiers are rebuilt on every catalog fetch and never persisted.
type Tier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly float64  `json:"priceMonthly"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Featured     bool     `json:"featured"`
}

type tierTemplate func(initialBalance, fee float64) Tier

func standardFeatures(initialBalance float64) []string {
	return []string{
		fmt.Sprintf("$%s funded account", strconv.FormatFloat(initialBalance, 'f', -1, 64)),
		"10% profit target",
		"Maximum 5% daily drawdown",
		"Maximum 10% total drawdown",
		"30-day trading period",
		"Real-time tracking",
	}
}

// tierTemplates maps the backend's challenge identifiers to display tiers.
// Challenges whose id is not listed here are dropped from the pricing page
// without any error; see Service.ListTiers for the debug log that makes the
// drop at least operator-visible.
var tierTemplates = map[string]tierTemplate{
	"26135048-f2ce-48ad-a633-df3646eb48ad": func(initialBalance, fee float64) Tier {
		return Tier{
			ID:           "tier-special",
			Name:         "Special Challenge",
			PriceMonthly: fee,
			Description:  "Perfect for traders starting with a smaller account.",
			Features:     standardFeatures(initialBalance),
		}
	},
	"7cc659d9-04a0-42c0-a946-9eed8ee9ae13": func(initialBalance, fee float64) Tier {
		return Tier{
			ID:           "tier-standard",
			Name:         "Standard Challenge",
			PriceMonthly: fee,
			Description:  "Ideal for new traders beginning their journey.",
			Features:     standardFeatures(initialBalance),
		}
	},
	"fea61522-6f51-4b24-8f79-9836518d59b3": func(initialBalance, fee float64) Tier {
		return Tier{
			ID:           "tier-professional",
			Name:         "Professional Challenge",
			PriceMonthly: fee,
			Description:  "For skilled traders looking to grow further.",
			Features:     standardFeatures(initialBalance),
			Featured:     true,
		}
	},
	"2a965ca0-7612-4fcf-af2a-cc3717858799": func(initialBalance, fee float64) Tier {
		return Tier{
			ID:           "tier-enterprise",
			Name:         "Enterprise Challenge",
			PriceMonthly: fee,
			Description:  "For advanced traders pursuing greater potential.",
			Features:     standardFeatures(initialBalance),
		}
	},
}

// MapChallengesToTiers converts the raw challenge catalog into ordered display
// tiers: hidden challenges are excluded, the rest are sorted ascending by fee
// (ties keep catalog order), and challenges without a known template are
// silently dropped.
func MapChallengesToTiers(challenges []matchtrader.Challenge) []Tier {
	visible := make([]matchtrader.Challenge, 0, len(challenges))
	for _, c := range challenges {
		if !c.IsHidden {
			visible = append(visible, c)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Fee < visible[j].Fee
	})

	tiers := make([]Tier, 0, len(visible))
	for _, c := range visible {
		template, ok := tierTemplates[c.ChallengeID]
		if !ok {
			continue
		}
		var initialBalance float64
		if len(c.Phases) > 0 {
			initialBalance = c.Phases[0].InitialBalance
		}
		tiers = append(tiers, template(initialBalance, c.Fee))
	}
	return tiers
}

// UnmappedChallengeIDs lists the visible challenge ids MapChallengesToTiers
// would drop. Useful for surfacing the silent-drop policy in logs.
func UnmappedChallengeIDs(challenges []matchtrader.Challenge) []string {
	var unmapped []string
	for _, c := range challenges {
		if c.IsHidden {
			continue
		}
		if _, ok := tierTemplates[c.ChallengeID]; !ok {
			unmapped = append(unmapped, c.ChallengeID)
		}
	}
	return unmapped
}
