package services_test

import (
	"testing"

	"fixpos/internal/domain"
	"fixpos/internal/services"
)

func TestProcessSaleDecrementsStockAndRecordsTotals(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)
	sales := newSales(db)

	p := addProduct(t, inv, "USB-C Cable", "4006381333931", 5, 15, 10)

	sale, events, err := sales.Process([]services.CartLine{{ProductID: p.ID, Qty: 2}})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if sale.Total != 30 || sale.Profit != 10 || sale.Cost != 20 {
		t.Fatalf("got total=%v profit=%v cost=%v", sale.Total, sale.Profit, sale.Cost)
	}
	if len(sale.Items) != 1 || sale.Items[0].Quantity != 2 || sale.Items[0].Price != 15 {
		t.Fatalf("bad items: %+v", sale.Items)
	}

	got, err := inv.GetProduct(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != 3 {
		t.Fatalf("want quantity 3, got %d", got.Quantity)
	}

	// 3 left: above the threshold, so only the completion event
	if len(events) != 1 {
		t.Fatalf("want 1 event, got %d: %+v", len(events), events)
	}
	if _, ok := events[0].(domain.SaleCompleted); !ok {
		t.Fatalf("want SaleCompleted, got %T", events[0])
	}
}

func TestProcessSaleEmitsLowStock(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)
	sales := newSales(db)

	p := addProduct(t, inv, "Screen Protector", "4006381333932", 3, 8, 4)

	_, events, err := sales.Process([]services.CartLine{{ProductID: p.ID, Qty: 2}})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2 events, got %d", len(events))
	}
	low, ok := events[1].(domain.LowStock)
	if !ok {
		t.Fatalf("want LowStock, got %T", events[1])
	}
	if len(low.Products) != 1 || low.Products[0] != "Screen Protector" {
		t.Fatalf("bad low stock names: %v", low.Products)
	}
}

func TestProcessSaleOversellGoesNegative(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)
	sales := newSales(db)

	p := addProduct(t, inv, "Charger", "4006381333933", 1, 20, 12)

	// a stale cart can ask for more than is on the shelf; the commit does
	// not clamp
	if _, _, err := sales.Process([]services.CartLine{{ProductID: p.ID, Qty: 3}}); err != nil {
		t.Fatalf("process: %v", err)
	}
	got, err := inv.GetProduct(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != -2 {
		t.Fatalf("want quantity -2, got %d", got.Quantity)
	}
}

// Picking the same product twice is a legal cart shape; the lines merge into
// a single snapshot row and the commit must apply exactly once.
func TestProcessSaleMergesDuplicateLines(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)
	sales := newSales(db)

	p := addProduct(t, inv, "Lightning Cable", "4006381333937", 10, 8, 3)

	sale, _, err := sales.Process([]services.CartLine{
		{ProductID: p.ID, Qty: 1},
		{ProductID: p.ID, Qty: 1},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(sale.Items) != 1 || sale.Items[0].Quantity != 2 {
		t.Fatalf("lines not merged: %+v", sale.Items)
	}
	if sale.Total != 16 || sale.Cost != 6 {
		t.Fatalf("got total=%v cost=%v", sale.Total, sale.Cost)
	}

	got, err := inv.GetProduct(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != 8 {
		t.Fatalf("want quantity 8, got %d", got.Quantity)
	}

	stored, err := sales.Get(sale.ID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if len(stored.Items) != 1 || stored.Items[0].Quantity != 2 {
		t.Fatalf("bad stored items: %+v", stored.Items)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM sales`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 sale row, got %d", n)
	}
}

func TestProcessSaleSkipsUnknownAndNonPositiveLines(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)
	sales := newSales(db)

	p := addProduct(t, inv, "Tempered Glass", "4006381333934", 10, 5, 2)

	sale, _, err := sales.Process([]services.CartLine{
		{ProductID: "no-such-id", Qty: 1},
		{ProductID: p.ID, Qty: 0},
		{ProductID: p.ID, Qty: 1},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(sale.Items) != 1 || sale.Total != 5 {
		t.Fatalf("want single 5.00 line, got %+v", sale)
	}
}

func TestProcessSaleEmptyCart(t *testing.T) {
	db := memdb(t)
	sales := newSales(db)

	if _, _, err := sales.Process(nil); err != services.ErrEmptyCart {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
	// only-unknown lines collapse to an empty sale too
	if _, _, err := sales.Process([]services.CartLine{{ProductID: "ghost", Qty: 2}}); err != services.ErrEmptyCart {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
}

func TestSaleIsPersistedWithItems(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)
	sales := newSales(db)

	p := addProduct(t, inv, "Battery", "4006381333935", 4, 35, 22)

	sale, _, err := sales.Process([]services.CartLine{{ProductID: p.ID, Qty: 2}})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	got, err := sales.Get(sale.ID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if got.Total != 70 || got.Cost != 44 {
		t.Fatalf("got total=%v cost=%v", got.Total, got.Cost)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != p.ID || got.Items[0].Name != "Battery" {
		t.Fatalf("bad stored items: %+v", got.Items)
	}

	latest, err := sales.Latest(10)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(latest) != 1 || latest[0].ID != sale.ID {
		t.Fatalf("bad latest: %+v", latest)
	}
}

// Recorded sales keep the product snapshot: a later price change must not
// rewrite history.
func TestSaleSnapshotSurvivesPriceChange(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)
	sales := newSales(db)

	p := addProduct(t, inv, "Case", "4006381333936", 5, 12, 6)
	sale, _, err := sales.Process([]services.CartLine{{ProductID: p.ID, Qty: 1}})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if _, err := db.Exec(`UPDATE products SET price = 99 WHERE id = ?`, p.ID); err != nil {
		t.Fatalf("reprice: %v", err)
	}

	got, err := sales.Get(sale.ID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if got.Items[0].Price != 12 {
		t.Fatalf("snapshot price rewritten: %v", got.Items[0].Price)
	}
}
