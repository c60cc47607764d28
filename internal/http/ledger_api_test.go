package handlers_test

import (
	"net/http"
	"testing"
)

// Non-positive amounts answer 200 but never touch the books.
func TestFundsSilentNoop(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{`{"amount":0}`, `{"amount":-10}`} {
		resp := doJSON(t, app, "POST", "/api/v1/funds", body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("want 200 for %s, got %d", body, resp.StatusCode)
		}
	}

	var sum summaryDTO
	decode(t, doJSON(t, app, "GET", "/api/v1/summary", ""), &sum)
	if sum.TotalManualFunds != 0 {
		t.Fatalf("no-op amounts recorded: %+v", sum)
	}
}

func TestFundsAndLossesMoveTheBooks(t *testing.T) {
	app := newTestApp(t)

	var before summaryDTO
	decode(t, doJSON(t, app, "GET", "/api/v1/summary", ""), &before)

	if resp := doJSON(t, app, "POST", "/api/v1/funds", `{"amount":120}`); resp.StatusCode != http.StatusOK {
		t.Fatalf("funds: got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "POST", "/api/v1/losses", `{"amount":45}`); resp.StatusCode != http.StatusOK {
		t.Fatalf("losses: got %d", resp.StatusCode)
	}

	var after summaryDTO
	decode(t, doJSON(t, app, "GET", "/api/v1/summary", ""), &after)
	if after.TotalManualFunds != 120 || after.TotalLosses != 45 {
		t.Fatalf("ledgers misread: %+v", after)
	}
	if !almostEq(after.Capital, before.Capital+120-45) {
		t.Fatalf("capital off: %v -> %v", before.Capital, after.Capital)
	}
	if !almostEq(after.DailyProfit, before.DailyProfit+120-45) {
		t.Fatalf("daily profit off: %v -> %v", before.DailyProfit, after.DailyProfit)
	}
}
