package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/craftshop/backoffice/internal/money"
)

// SummaryLine is one entry recovered from a human-readable item summary
// such as "Clay Pot (x2), Brass Lamp (x1)".
type SummaryLine struct {
	Name     string
	Quantity int64
}

var ErrEmptySummary = errors.New("empty_summary")

var summaryEntryRe = regexp.MustCompile(`^(.*)\(x(\d+)\)$`)

// ParseItemSummary recovers structured lines from a comma-joined summary
// string. Entries without an "(xN)" quantity suffix are kept with a
// quantity of one, so a degraded snapshot still produces a document.
func ParseItemSummary(summary string) ([]SummaryLine, error) {
	var lines []SummaryLine
	for _, part := range strings.Split(summary, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m := summaryEntryRe.FindStringSubmatch(part); m != nil {
			qty, err := strconv.ParseInt(m[2], 10, 64)
			if err != nil || qty <= 0 {
				qty = 1
			}
			lines = append(lines, SummaryLine{Name: strings.TrimSpace(m[1]), Quantity: qty})
			continue
		}
		lines = append(lines, SummaryLine{Name: part, Quantity: 1})
	}
	if len(lines) == 0 {
		return nil, ErrEmptySummary
	}
	return lines, nil
}

// DistributeTaxable splits an order's taxable value across summary lines
// proportionally to quantity, returning per-unit base prices in paise.
// The last line absorbs the rounding remainder so the split always sums
// back to the input.
func DistributeTaxable(taxable money.Amount, lines []SummaryLine) []money.Amount {
	var totalQty int64
	for _, l := range lines {
		totalQty += l.Quantity
	}
	if totalQty <= 0 {
		return nil
	}

	unitPrices := make([]money.Amount, len(lines))
	var assigned money.Amount
	for i, l := range lines {
		share := money.Amount(taxable.Paise() * l.Quantity / totalQty)
		if i == len(lines)-1 {
			share = taxable - assigned
		}
		assigned += share
		unitPrices[i] = money.FromPaise(share.Paise() / l.Quantity)
	}
	return unitPrices
}
