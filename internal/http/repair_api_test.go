package handlers_test

import (
	"net/http"
	"testing"
)

type eventsDTO struct {
	Events []struct {
		Kind     string  `json:"kind"`
		RepairID string  `json:"repairId"`
		Cost     float64 `json:"cost"`
	} `json:"events"`
}

func TestRepairLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/repairs",
		`{"customerName":"Dana","customerPhone":"+15550100","device":"Pixel 7","issueDescription":"cracked screen","cost":80,"status":"Pending"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	var r struct {
		ID string `json:"id"`
	}
	decode(t, resp, &r)
	if r.ID == "" {
		t.Fatalf("no repair id assigned")
	}

	resp = doJSON(t, app, "POST", "/api/v1/repairs/"+r.ID+"/status", `{"status":"Completed"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var out eventsDTO
	decode(t, resp, &out)
	if len(out.Events) != 1 || out.Events[0].Kind != "repair.completed" || out.Events[0].Cost != 80 {
		t.Fatalf("bad events: %+v", out.Events)
	}

	// re-completing is inert
	resp = doJSON(t, app, "POST", "/api/v1/repairs/"+r.ID+"/status", `{"status":"Completed"}`)
	decode(t, resp, &out)
	if len(out.Events) != 0 {
		t.Fatalf("re-completion emitted events: %+v", out.Events)
	}

	// a completed repair counts toward revenue
	var sum summaryDTO
	decode(t, doJSON(t, app, "GET", "/api/v1/summary", ""), &sum)
	if sum.TotalRevenue != 80 {
		t.Fatalf("want revenue 80, got %v", sum.TotalRevenue)
	}
}

func TestRepairUnknownIDOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/repairs/nope/status", `{"status":"Completed"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var out eventsDTO
	decode(t, resp, &out)
	if len(out.Events) != 0 {
		t.Fatalf("ghost repair emitted events: %+v", out.Events)
	}
}

func TestRepairStatusValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/repairs/nope/status", `{"status":"Done"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for unknown status, got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "POST", "/api/v1/repairs",
		`{"customerName":"","device":"Pixel","cost":10,"status":"Pending"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for empty name, got %d", resp.StatusCode)
	}
}
