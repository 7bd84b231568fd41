package receipt

import (
	"reflect"
	"testing"
)

func TestCalculatePointsIsDeterministic(t *testing.T) {
	r := validReceipt()

	p1, b1 := CalculatePoints(r)
	p2, b2 := CalculatePoints(r)

	if p1 != p2 {
		t.Errorf("points differ across calls: %d vs %d", p1, p2)
	}
	if !reflect.DeepEqual(b1, b2) {
		t.Errorf("breakdowns differ across calls: %v vs %v", b1, b2)
	}
}

func TestRoundDollarAndQuarterBonusesAreIndependent(t *testing.T) {
	r := validReceipt()
	r.Total = "3.00"

	_, breakdown := CalculatePoints(r)

	if breakdown[RoundDollarPoints] != 50 {
		t.Errorf("expected round_dollar_points=50, got %d", breakdown[RoundDollarPoints])
	}
	if breakdown[QuarterPoints] != 25 {
		t.Errorf("expected multiple_of_0.25_points=25, got %d", breakdown[QuarterPoints])
	}
}

func TestQuarterBonusWithoutRoundDollar(t *testing.T) {
	r := validReceipt()
	r.Total = "2.75"

	_, breakdown := CalculatePoints(r)

	if _, ok := breakdown[RoundDollarPoints]; ok {
		t.Error("round_dollar_points should not fire on 2.75")
	}
	if breakdown[QuarterPoints] != 25 {
		t.Errorf("expected multiple_of_0.25_points=25, got %d", breakdown[QuarterPoints])
	}
}

func TestQuarterBonusDoesNotMisfireNearBoundary(t *testing.T) {
	for _, total := range []string{"2.26", "0.99", "18.74"} {
		r := validReceipt()
		r.Total = total

		_, breakdown := CalculatePoints(r)
		if _, ok := breakdown[QuarterPoints]; ok {
			t.Errorf("multiple_of_0.25_points should not fire on %s", total)
		}
	}
}

func TestItemPairBonus(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{1, 0},
		{2, 5},
		{3, 5},
		{4, 10},
	}

	for _, tc := range cases {
		r := validReceipt()
		r.Items = nil
		for i := 0; i < tc.count; i++ {
			r.Items = append(r.Items, Item{ShortDescription: "Gatorade", Price: "2.25"})
		}

		_, breakdown := CalculatePoints(r)
		if breakdown[ItemPoints] != tc.want {
			t.Errorf("%d items: expected item_points=%d, got %d", tc.count, tc.want, breakdown[ItemPoints])
		}
	}
}

func TestAfternoonWindowIsHalfOpen(t *testing.T) {
	cases := []struct {
		time  string
		fires bool
	}{
		{"13:59", false},
		{"14:00", true},
		{"15:59", true},
		{"16:00", false},
	}

	for _, tc := range cases {
		r := validReceipt()
		r.PurchaseTime = tc.time

		_, breakdown := CalculatePoints(r)
		_, fired := breakdown[TimePoints]
		if fired != tc.fires {
			t.Errorf("time %s: expected fires=%v, got %v", tc.time, tc.fires, fired)
		}
	}
}

func TestOddDayBonus(t *testing.T) {
	r := validReceipt()
	r.PurchaseDate = "2022-01-01"
	_, breakdown := CalculatePoints(r)
	if breakdown[OddDatePoints] != 6 {
		t.Errorf("expected odd_date_points=6, got %d", breakdown[OddDatePoints])
	}

	r.PurchaseDate = "2022-01-02"
	_, breakdown = CalculatePoints(r)
	if _, ok := breakdown[OddDatePoints]; ok {
		t.Error("odd_date_points should not fire on an even day")
	}
}

func TestRetailerPointsCountOnlyAlphanumerics(t *testing.T) {
	r := validReceipt()
	r.Retailer = "M&M Corner Market"

	_, breakdown := CalculatePoints(r)
	if breakdown[RetailerPoints] != 14 {
		t.Errorf("expected retailer_points=14, got %d", breakdown[RetailerPoints])
	}
}

func TestRetailerPointsAlwaysPresent(t *testing.T) {
	r := validReceipt()
	r.Retailer = "&&&"

	_, breakdown := CalculatePoints(r)
	if pts, ok := breakdown[RetailerPoints]; !ok || pts != 0 {
		t.Errorf("expected retailer_points present and zero, got %v (present=%v)", pts, ok)
	}
}

func TestTargetReceiptScoresSeventeen(t *testing.T) {
	r := Receipt{
		Retailer:     "Target",
		PurchaseDate: "2022-01-01",
		PurchaseTime: "13:01",
		Items: []Item{
			{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
			{ShortDescription: "Emils Cheese Pizza", Price: "12.25"},
		},
		Total: "18.74",
	}

	points, breakdown := CalculatePoints(r)

	if points != 17 {
		t.Errorf("expected 17 points, got %d", points)
	}
	if breakdown[RetailerPoints] != 6 {
		t.Errorf("expected retailer_points=6, got %d", breakdown[RetailerPoints])
	}
	if breakdown[OddDatePoints] != 6 {
		t.Errorf("expected odd_date_points=6, got %d", breakdown[OddDatePoints])
	}
	if breakdown[ItemPoints] != 5 {
		t.Errorf("expected item_points=5, got %d", breakdown[ItemPoints])
	}
}

func TestGatoradeReceiptScoresOneOhNine(t *testing.T) {
	r := Receipt{
		Retailer:     "M&M Corner Market",
		PurchaseDate: "2022-03-20",
		PurchaseTime: "14:33",
		Items: []Item{
			{ShortDescription: "Gatorade", Price: "2.25"},
			{ShortDescription: "Gatorade", Price: "2.25"},
			{ShortDescription: "Gatorade", Price: "2.25"},
			{ShortDescription: "Gatorade", Price: "2.25"},
		},
		Total: "9.00",
	}

	points, _ := CalculatePoints(r)
	if points != 109 {
		t.Errorf("expected 109 points, got %d", points)
	}
}

func TestBreakdownSumsToTotalPoints(t *testing.T) {
	receipts := []Receipt{
		validReceipt(),
		{
			Retailer:     "Target",
			PurchaseDate: "2022-01-01",
			PurchaseTime: "13:01",
			Items:        []Item{{ShortDescription: "Pepsi", Price: "1.25"}},
			Total:        "35.35",
		},
		{
			Retailer:     "Walgreens",
			PurchaseDate: "2022-01-02",
			PurchaseTime: "08:13",
			Items: []Item{
				{ShortDescription: "Pepsi - 12-oz", Price: "1.25"},
				{ShortDescription: "Dasani", Price: "1.40"},
			},
			Total: "2.65",
		},
	}

	for _, r := range receipts {
		points, breakdown := CalculatePoints(r)
		sum := 0
		for _, v := range breakdown {
			sum += v
		}
		if sum != points {
			t.Errorf("retailer %s: breakdown sums to %d, points are %d", r.Retailer, sum, points)
		}
	}
}
