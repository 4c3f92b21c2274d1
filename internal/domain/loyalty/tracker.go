package loyalty

import (
	"fmt"
	"strings"

	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/shopspring/decimal"
)

// TierName is a named loyalty milestone. Thresholds are inclusive lower
// bounds on cumulative ordered quantity.
type TierName struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
}

// Progress is the tracker's view of one cumulative quantity
type Progress struct {
	CumulativeQuantity int             `json:"cumulative_quantity"`
	CurrentTier        TierName        `json:"current_tier"`
	NextTier           *TierName       `json:"next_tier,omitempty"`
	ProgressPercent    decimal.Decimal `json:"progress_percent"`
	RemainingToNext    int             `json:"remaining_to_next"`
}

// IsTerminal reports whether the current tier is the top of the ladder
func (p Progress) IsTerminal() bool {
	return p.NextTier == nil
}

// Tracker maps cumulative ordered quantity onto a ladder of named tiers. It
// keeps no state between calls; every Update recomputes from the counter.
type Tracker struct {
	ladder []TierName
}

var hundred = decimal.NewFromInt(100)

// DefaultLadder is Starter, Professional, Premium at 0, 100 and 250 vials
func DefaultLadder() []TierName {
	return []TierName{
		{Name: "Starter", Threshold: 0},
		{Name: "Professional", Threshold: 100},
		{Name: "Premium", Threshold: 250},
	}
}

// NewTracker validates the ladder: non-empty, first threshold 0, strictly
// increasing thresholds, unique non-blank names
func NewTracker(ladder []TierName) (*Tracker, error) {
	var errs []string

	if len(ladder) == 0 {
		errs = append(errs, "ladder must not be empty")
	} else if ladder[0].Threshold != 0 {
		errs = append(errs, fmt.Sprintf("first threshold must be 0, got %d", ladder[0].Threshold))
	}

	seen := make(map[string]struct{}, len(ladder))
	for i, tier := range ladder {
		name := strings.TrimSpace(tier.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("tier[%d] name is required", i))
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Sprintf("tier name %q is listed more than once", name))
		}
		seen[name] = struct{}{}

		if i > 0 && tier.Threshold <= ladder[i-1].Threshold {
			errs = append(errs, fmt.Sprintf("tier[%d] threshold %d must be greater than %d", i, tier.Threshold, ladder[i-1].Threshold))
		}
	}

	if len(errs) > 0 {
		return nil, ierr.NewError(fmt.Sprintf("loyalty ladder invalid: %s", strings.Join(errs, "; "))).
			WithHint("Loyalty tier ladder failed integrity checks").
			WithReportableDetails(map[string]any{
				"problems": errs,
			}).
			Mark(ierr.ErrDataIntegrity)
	}

	return &Tracker{ladder: append([]TierName(nil), ladder...)}, nil
}

// Ladder returns a copy of the tiers, lowest first
func (t *Tracker) Ladder() []TierName {
	return append([]TierName(nil), t.ladder...)
}

// Update places cumulative on the ladder. Negative input is treated as 0.
func (t *Tracker) Update(cumulative int) Progress {
	if cumulative < 0 {
		cumulative = 0
	}

	idx := 0
	for i := len(t.ladder) - 1; i >= 0; i-- {
		if cumulative >= t.ladder[i].Threshold {
			idx = i
			break
		}
	}

	current := t.ladder[idx]
	progress := Progress{
		CumulativeQuantity: cumulative,
		CurrentTier:        current,
	}

	if idx == len(t.ladder)-1 {
		progress.ProgressPercent = hundred
		return progress
	}

	next := t.ladder[idx+1]
	span := decimal.NewFromInt(int64(next.Threshold - current.Threshold))
	done := decimal.NewFromInt(int64(cumulative - current.Threshold))

	progress.NextTier = &next
	progress.ProgressPercent = decimal.Min(hundred, done.Mul(hundred).Div(span)).Round(2)
	progress.RemainingToNext = next.Threshold - cumulative
	return progress
}
