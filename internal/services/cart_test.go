package services_test

import (
	"errors"
	"testing"

	"campos/internal/domain"
	"campos/internal/services"
)

var (
	prodA = domain.Product{ID: "prod-a", Name: "Canon RF 24-70mm f/2.8L", Price: 1000, Stock: 0}
	prodB = domain.Product{ID: "prod-b", Name: "Sony FX3", Price: 2000, Stock: 5}
)

func TestCartAddMergesByIdentity(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"

	for i := 0; i < 3; i++ {
		if err := cart.AddItem(sid, prodB); err != nil {
			t.Fatal(err)
		}
	}

	lines := cart.Lines(sid)
	if len(lines) != 1 {
		t.Fatalf("want one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("want quantity 3, got %d", lines[0].Quantity)
	}
	if cart.LineCount(sid) != 1 {
		t.Fatalf("lineCount counts distinct lines, got %d", cart.LineCount(sid))
	}
}

func TestCartAddRejectsOutOfStock(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"

	err := cart.AddItem(sid, prodA)
	if !errors.Is(err, services.ErrOutOfStock) {
		t.Fatalf("want ErrOutOfStock, got %v", err)
	}
	if cart.LineCount(sid) != 0 {
		t.Fatal("rejected add must leave the cart untouched")
	}
}

func TestCartSetQuantityIsAbsolute(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	if err := cart.AddItem(sid, prodB); err != nil {
		t.Fatal(err)
	}

	if err := cart.SetQuantity(sid, prodB.ID, 5); err != nil {
		t.Fatal(err)
	}
	if q := cart.Lines(sid)[0].Quantity; q != 5 {
		t.Fatalf("set is absolute, want 5 got %d", q)
	}

	if err := cart.SetQuantity(sid, prodB.ID, 2); err != nil {
		t.Fatal(err)
	}
	if q := cart.Lines(sid)[0].Quantity; q != 2 {
		t.Fatalf("set does not add, want 2 got %d", q)
	}
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	if err := cart.AddItem(sid, prodB); err != nil {
		t.Fatal(err)
	}
	if err := cart.SetQuantity(sid, prodB.ID, 5); err != nil {
		t.Fatal(err)
	}
	if err := cart.SetQuantity(sid, prodB.ID, 0); err != nil {
		t.Fatal(err)
	}
	if cart.LineCount(sid) != 0 {
		t.Fatal("zero quantity must remove the line")
	}

	// negative behaves the same, and removing an absent line is a no-op
	if err := cart.SetQuantity(sid, prodB.ID, -3); err != nil {
		t.Fatalf("removing an absent line must be a no-op, got %v", err)
	}
}

func TestCartSetQuantityAbsentLineIsCallerError(t *testing.T) {
	cart := services.NewCartService()

	err := cart.SetQuantity("s1", prodB.ID, 4)
	if !errors.Is(err, services.ErrLineNotFound) {
		t.Fatalf("want ErrLineNotFound, got %v", err)
	}

	// A removed line is not resurrected either.
	if err := cart.AddItem("s1", prodB); err != nil {
		t.Fatal(err)
	}
	if err := cart.SetQuantity("s1", prodB.ID, 0); err != nil {
		t.Fatal(err)
	}
	err = cart.SetQuantity("s1", prodB.ID, 1)
	if !errors.Is(err, services.ErrLineNotFound) {
		t.Fatalf("want ErrLineNotFound after removal, got %v", err)
	}
}

func TestCartClear(t *testing.T) {
	cart := services.NewCartService()
	sid := "s1"
	if err := cart.AddItem(sid, prodB); err != nil {
		t.Fatal(err)
	}
	other := domain.Product{ID: "prod-c", Name: "Tripod", Price: 50, Stock: 9}
	if err := cart.AddItem(sid, other); err != nil {
		t.Fatal(err)
	}
	cart.Clear(sid)
	if cart.LineCount(sid) != 0 {
		t.Fatal("clear must empty the cart")
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	cart := services.NewCartService()
	if err := cart.AddItem("s1", prodB); err != nil {
		t.Fatal(err)
	}
	if cart.LineCount("s2") != 0 {
		t.Fatal("sessions must not share carts")
	}
}
