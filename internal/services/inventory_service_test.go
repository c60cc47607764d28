package services_test

import (
	"testing"
)

func TestAddProductAssignsDistinctIDs(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)

	a := addProduct(t, inv, "iPhone 13 Screen", "1111111111111", 5, 120, 85)
	b := addProduct(t, inv, "Samsung Charger", "2222222222222", 8, 40, 28)

	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("bad ids: %q vs %q", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Fatalf("creation timestamp missing")
	}
}

func TestFindProductByBarcode(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)

	addProduct(t, inv, "iPhone 13 Screen", "1111111111111", 5, 120, 85)
	want := addProduct(t, inv, "USB Cable", "3333333333333", 20, 6, 3)

	got, err := inv.FindProduct("3333333333333")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.ID != want.ID {
		t.Fatalf("barcode lookup failed: %+v", got)
	}
}

func TestFindProductByNameIsCaseInsensitive(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)

	want := addProduct(t, inv, "iPhone 13 Screen", "1111111111111", 5, 120, 85)

	for _, term := range []string{"iphone", "IPHONE 13", "  iPhone  "} {
		got, err := inv.FindProduct(term)
		if err != nil {
			t.Fatalf("find %q: %v", term, err)
		}
		if got == nil || got.ID != want.ID {
			t.Fatalf("term %q: got %+v", term, got)
		}
	}
}

func TestFindProductReturnsFirstInStoreOrder(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)

	first := addProduct(t, inv, "HDMI Cable", "4444444444444", 10, 9, 4)
	addProduct(t, inv, "Aux Cable", "5555555555555", 10, 5, 2)

	got, err := inv.FindProduct("cable")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Fatalf("want first match %q, got %+v", first.ID, got)
	}
}

func TestFindProductNoMatch(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)

	addProduct(t, inv, "Power Bank", "6666666666666", 3, 25, 14)

	got, err := inv.FindProduct("projector")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Fatalf("want nil, got %+v", got)
	}
}

func TestLowStockThreshold(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)

	addProduct(t, inv, "Plenty", "7777777777777", 2, 10, 5)
	low := addProduct(t, inv, "Scarce", "8888888888888", 1, 10, 5)
	empty := addProduct(t, inv, "Gone", "9999999999999", 0, 10, 5)

	got, err := inv.LowStock()
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 low-stock products, got %d", len(got))
	}
	ids := map[string]bool{got[0].ID: true, got[1].ID: true}
	if !ids[low.ID] || !ids[empty.ID] {
		t.Fatalf("wrong products flagged: %+v", got)
	}
}

func TestAttachImage(t *testing.T) {
	db := memdb(t)
	inv := newInventory(db)

	p := addProduct(t, inv, "Stylus", "1212121212121", 4, 15, 7)
	if err := inv.AttachImage(p.ID, "/media/stylus.png"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	got, err := inv.GetProduct(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Image != "/media/stylus.png" {
		t.Fatalf("image not stored: %q", got.Image)
	}
	if err := inv.AttachImage("no-such-id", "x"); err == nil {
		t.Fatalf("want error for unknown product")
	}
}
