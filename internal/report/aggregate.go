package report

import (
	"time"

	"fixpos/internal/domain"
)

// sameDay reports whether t falls on the calendar day of now, evaluated in
// now's location. Any moment within the day counts; this is not a rolling
// 24-hour window.
func sameDay(t, now time.Time) bool {
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func sameMonth(t, now time.Time) bool {
	t = t.In(now.Location())
	y1, m1, _ := t.Date()
	y2, m2, _ := now.Date()
	return y1 == y2 && m1 == m2
}

// completedOn reports whether the repair was completed on the calendar day of
// now. Repairs whose status moved away from Completed keep their completion
// date but no longer have Completed status, so both are checked.
func completedOn(r domain.Repair, now time.Time) bool {
	return r.Status == domain.StatusCompleted && r.CompletedAt != nil && sameDay(*r.CompletedAt, now)
}

func completedIn(r domain.Repair, now time.Time) bool {
	return r.Status == domain.StatusCompleted && r.CompletedAt != nil && sameMonth(*r.CompletedAt, now)
}

// CostOfGoodsSold is the cumulative purchase cost of every unit ever sold.
// Sale.Cost is already 0 for legacy rows recorded before cost tracking.
func CostOfGoodsSold(s Snapshot) float64 {
	total := 0.0
	for _, sale := range s.Sales {
		total += sale.Cost
	}
	return total
}

func DailyPrintingProfit(s Snapshot, now time.Time) float64 {
	total := 0.0
	for _, j := range s.PrintJobs {
		if sameDay(j.CreatedAt, now) {
			total += j.Profit
		}
	}
	return total
}

func DailyLosses(s Snapshot, now time.Time) float64 {
	total := 0.0
	for _, l := range s.Losses {
		if sameDay(l.CreatedAt, now) {
			total += l.Amount
		}
	}
	return total
}

// DailyProfit = today's sale profit + cost of repairs completed today +
// today's manual funds - today's losses. Printing profit is deliberately NOT
// folded in; it is reported separately as DailyPrintingProfit.
func DailyProfit(s Snapshot, now time.Time) float64 {
	total := 0.0
	for _, sale := range s.Sales {
		if sameDay(sale.CreatedAt, now) {
			total += sale.Profit
		}
	}
	for _, r := range s.Repairs {
		if completedOn(r, now) {
			total += r.Cost
		}
	}
	for _, f := range s.Funds {
		if sameDay(f.CreatedAt, now) {
			total += f.Amount
		}
	}
	return total - DailyLosses(s, now)
}

// MonthlyProfit, unlike DailyProfit, includes print-job profit.
func MonthlyProfit(s Snapshot, now time.Time) float64 {
	total := 0.0
	for _, sale := range s.Sales {
		if sameMonth(sale.CreatedAt, now) {
			total += sale.Profit
		}
	}
	for _, r := range s.Repairs {
		if completedIn(r, now) {
			total += r.Cost
		}
	}
	for _, j := range s.PrintJobs {
		if sameMonth(j.CreatedAt, now) {
			total += j.Profit
		}
	}
	for _, f := range s.Funds {
		if sameMonth(f.CreatedAt, now) {
			total += f.Amount
		}
	}
	for _, l := range s.Losses {
		if sameMonth(l.CreatedAt, now) {
			total -= l.Amount
		}
	}
	return total
}

func TotalManualFunds(s Snapshot) float64 {
	total := 0.0
	for _, f := range s.Funds {
		total += f.Amount
	}
	return total
}

func TotalLosses(s Snapshot) float64 {
	total := 0.0
	for _, l := range s.Losses {
		total += l.Amount
	}
	return total
}

// TotalRevenue = all sale totals + cost of every completed repair + all
// print-job prices + all manual funds.
func TotalRevenue(s Snapshot) float64 {
	total := 0.0
	for _, sale := range s.Sales {
		total += sale.Total
	}
	for _, r := range s.Repairs {
		if r.Status == domain.StatusCompleted {
			total += r.Cost
		}
	}
	for _, j := range s.PrintJobs {
		total += j.Price
	}
	return total + TotalManualFunds(s)
}

// Capital = inventory at purchase value + revenue - cost of goods sold -
// print-job costs - losses.
func Capital(s Snapshot) float64 {
	inventory := 0.0
	for _, p := range s.Products {
		inventory += p.PurchasePrice * float64(p.Quantity)
	}
	printCosts := 0.0
	for _, j := range s.PrintJobs {
		printCosts += j.Cost
	}
	return inventory + TotalRevenue(s) - CostOfGoodsSold(s) - printCosts - TotalLosses(s)
}

// Summary bundles every derived figure for the dashboard.
type Summary struct {
	Capital             float64 `json:"capital"`
	DailyProfit         float64 `json:"dailyProfit"`
	MonthlyProfit       float64 `json:"monthlyProfit"`
	TotalRevenue        float64 `json:"totalRevenue"`
	CostOfGoodsSold     float64 `json:"costOfGoodsSold"`
	DailyLosses         float64 `json:"dailyLosses"`
	DailyPrintingProfit float64 `json:"dailyPrintingProfit"`
	TotalManualFunds    float64 `json:"totalManualFunds"`
	TotalLosses         float64 `json:"totalLosses"`
}

func Summarize(s Snapshot, now time.Time) Summary {
	return Summary{
		Capital:             Capital(s),
		DailyProfit:         DailyProfit(s, now),
		MonthlyProfit:       MonthlyProfit(s, now),
		TotalRevenue:        TotalRevenue(s),
		CostOfGoodsSold:     CostOfGoodsSold(s),
		DailyLosses:         DailyLosses(s, now),
		DailyPrintingProfit: DailyPrintingProfit(s, now),
		TotalManualFunds:    TotalManualFunds(s),
		TotalLosses:         TotalLosses(s),
	}
}
