package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"campos/internal/config"
	"campos/internal/domain"
	"campos/internal/kv"
	"campos/internal/repos"
	"campos/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE transactions(id TEXT PRIMARY KEY, customer_name TEXT, cashier TEXT,
	  payment_method TEXT, status TEXT, subtotal NUMERIC, tax NUMERIC, total NUMERIC,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	CREATE TABLE transaction_items(transaction_id TEXT, product_id TEXT, name TEXT,
	  category TEXT, condition TEXT, qty INTEGER, price INTEGER,
	  PRIMARY KEY(transaction_id, product_id));
	CREATE TABLE cashiers(id TEXT PRIMARY KEY, name TEXT, pin_hash TEXT,
	  active INTEGER NOT NULL DEFAULT 1, created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	CREATE UNIQUE INDEX idx_cashiers_name_nocase ON cashiers(LOWER(name));
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newCheckoutFixture(t *testing.T) (*services.CartService, *services.CatalogService, *services.OrderService, *sqlx.DB) {
	t.Helper()
	db := memdb(t)
	store := kv.NewMemory()

	catalog := services.NewCatalogService(store)
	cart := services.NewCartService()
	settings := services.NewSettingsService(store, config.StoreConfig{
		Name: "CamPOS Store", Currency: "IDR", TaxRate: "0.1",
	}, repos.NewCashierRepo(db))
	orders := services.NewOrderService(cart, catalog, settings, repos.NewTransactionRepo(db), store)
	return cart, catalog, orders, db
}

func TestCheckoutFlow(t *testing.T) {
	cart, catalog, orders, _ := newCheckoutFixture(t)
	sid := "test-session"

	// flash-600ex seeds out of stock; adding it is rejected
	outOfStock, err := catalog.Get("flash-600ex")
	if err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(sid, outOfStock); !errors.Is(err, services.ErrOutOfStock) {
		t.Fatalf("want ErrOutOfStock, got %v", err)
	}

	// two adds of the same product merge into one line
	fx3, err := catalog.Get("cam-fx3")
	if err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(sid, fx3); err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(sid, fx3); err != nil {
		t.Fatal(err)
	}
	if cart.LineCount(sid) != 1 {
		t.Fatalf("want one merged line, got %d", cart.LineCount(sid))
	}

	stockBefore := fx3.Stock

	trx, err := orders.Place(sid, "Tester", "Sania", domain.PayCash)
	if err != nil {
		t.Fatal(err)
	}
	if trx.ID == "" || trx.Status != domain.TxCompleted {
		t.Fatalf("bad transaction: %+v", trx)
	}

	wantSubtotal := decimal.NewFromInt(fx3.Price * 2)
	if !trx.Subtotal.Equal(wantSubtotal) {
		t.Fatalf("want subtotal %s, got %s", wantSubtotal, trx.Subtotal)
	}
	if !trx.Total.Equal(wantSubtotal.Mul(decimal.RequireFromString("1.1"))) {
		t.Fatalf("total must include 10%% tax, got %s", trx.Total)
	}

	// checkout clears the cart and never touches inventory
	if cart.LineCount(sid) != 0 {
		t.Fatal("checkout must clear the cart")
	}
	after, _ := catalog.Get("cam-fx3")
	if after.Stock != stockBefore {
		t.Fatalf("checkout must not decrement stock, %d -> %d", stockBefore, after.Stock)
	}

	// running tally accumulated
	fin := orders.FinancialSummary()
	if fin.Transactions != 1 || fin.ItemsSold != 2 {
		t.Fatalf("bad financial tally: %+v", fin)
	}
	if !fin.Revenue.Equal(trx.Total) {
		t.Fatalf("want revenue %s, got %s", trx.Total, fin.Revenue)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	_, _, orders, _ := newCheckoutFixture(t)
	_, err := orders.Place("empty-session", "Tester", "", domain.PayCash)
	if !errors.Is(err, services.ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty, got %v", err)
	}
}

func TestRefundReversesTally(t *testing.T) {
	cart, catalog, orders, _ := newCheckoutFixture(t)
	sid := "s1"

	p, err := catalog.Get("mem-sd128")
	if err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(sid, p); err != nil {
		t.Fatal(err)
	}
	trx, err := orders.Place(sid, "Tester", "Ahmad", domain.PayEWallet)
	if err != nil {
		t.Fatal(err)
	}

	refunded, err := orders.Refund(trx.ID)
	if err != nil {
		t.Fatal(err)
	}
	if refunded.Status != domain.TxRefunded {
		t.Fatalf("want refunded, got %s", refunded.Status)
	}

	fin := orders.FinancialSummary()
	if fin.Transactions != 0 || fin.ItemsSold != 0 || !fin.Revenue.IsZero() {
		t.Fatalf("refund must back out the tally: %+v", fin)
	}

	// double refund is rejected
	if _, err := orders.Refund(trx.ID); err == nil {
		t.Fatal("want error on double refund")
	}
}

func TestRefundKeepsTallyConsistentWhenItemsUnreadable(t *testing.T) {
	cart, catalog, orders, db := newCheckoutFixture(t)
	sid := "s1"

	p, err := catalog.Get("mem-sd128")
	if err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(sid, p); err != nil {
		t.Fatal(err)
	}
	trx, err := orders.Place(sid, "Tester", "Ahmad", domain.PayCash)
	if err != nil {
		t.Fatal(err)
	}

	// Make the item read fail: the refund must still land, but the tally
	// moves all three counters together or not at all.
	if _, err := db.Exec(`DROP TABLE transaction_items`); err != nil {
		t.Fatal(err)
	}

	refunded, err := orders.Refund(trx.ID)
	if err != nil {
		t.Fatal(err)
	}
	if refunded.Status != domain.TxRefunded {
		t.Fatalf("want refunded, got %s", refunded.Status)
	}

	fin := orders.FinancialSummary()
	if fin.Transactions != 1 || fin.ItemsSold != 1 {
		t.Fatalf("partial reversal: %+v", fin)
	}
	if !fin.Revenue.Equal(trx.Total) {
		t.Fatalf("partial reversal of revenue: want %s, got %s", trx.Total, fin.Revenue)
	}
}

func TestRefundUnknownTransaction(t *testing.T) {
	_, _, orders, _ := newCheckoutFixture(t)
	_, err := orders.Refund("trx-missing")
	if !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
