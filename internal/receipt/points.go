package receipt

import (
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Breakdown keys, one per scoring rule.
const (
	RetailerPoints    = "retailer_points"
	RoundDollarPoints = "round_dollar_points"
	QuarterPoints     = "multiple_of_0.25_points"
	ItemPoints        = "item_points"
	OddDatePoints     = "odd_date_points"
	TimePoints        = "time_points"
)

var quarter = decimal.RequireFromString("0.25")

// CalculatePoints scores a validated receipt against the six loyalty
// rules and returns the total alongside the per-rule breakdown. Each
// breakdown entry is that rule's own contribution, never a running sum.
// Pure and deterministic; rules 2 and 3 both fire on a total like "3.00".
func CalculatePoints(r Receipt) (int, Breakdown) {
	points := 0
	breakdown := Breakdown{}

	// Rule 1: one point per alphanumeric character in the retailer name.
	retailerPts := 0
	for _, c := range r.Retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			retailerPts++
		}
	}
	points += retailerPts
	breakdown[RetailerPoints] = retailerPts

	// Rules 2 and 3 need exact decimal arithmetic: 0.25-multiple checks
	// on binary floats misfire at boundary values.
	total, _ := decimal.NewFromString(r.Total)

	// Rule 2: 50 points for a round dollar amount with no cents.
	if total.IsInteger() {
		points += 50
		breakdown[RoundDollarPoints] = 50
	}

	// Rule 3: 25 points if the total is a multiple of 0.25.
	if total.Mod(quarter).IsZero() {
		points += 25
		breakdown[QuarterPoints] = 25
	}

	// Rule 4: 5 points for every two items.
	itemPts := (len(r.Items) / 2) * 5
	points += itemPts
	breakdown[ItemPoints] = itemPts

	// Rule 5: 6 points if the day of the purchase date is odd.
	if d, err := time.Parse(dateLayout, r.PurchaseDate); err == nil && d.Day()%2 == 1 {
		points += 6
		breakdown[OddDatePoints] = 6
	}

	// Rule 6: 10 points if the purchase time is in [14:00, 16:00).
	if t, err := time.Parse(timeLayout, r.PurchaseTime); err == nil && t.Hour() >= 14 && t.Hour() < 16 {
		points += 10
		breakdown[TimePoints] = 10
	}

	return points, breakdown
}
