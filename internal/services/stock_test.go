package services_test

import (
	"testing"

	"campos/internal/domain"
	"campos/internal/kv"
	"campos/internal/services"
)

func TestAdjustStockClampsAtZero(t *testing.T) {
	p := domain.Product{ID: "c", Stock: 3, MinStock: 5}

	p = services.AdjustStock(p, 0)
	if p.Stock != 3 || p.Status != domain.StockLow {
		t.Fatalf("stock 3 of min 5 must be low, got stock=%d status=%s", p.Stock, p.Status)
	}

	p = services.AdjustStock(p, -3)
	if p.Stock != 0 || p.Status != domain.StockOut {
		t.Fatalf("want out at zero, got stock=%d status=%s", p.Stock, p.Status)
	}

	p = services.AdjustStock(p, -10)
	if p.Stock != 0 {
		t.Fatalf("decrement below zero must clamp, got %d", p.Stock)
	}
	if p.Status != domain.StockOut {
		t.Fatalf("clamped stock must stay out, got %s", p.Status)
	}
}

func TestAdjustStockStatusTransitions(t *testing.T) {
	cases := []struct {
		stock, minStock int
		want            domain.StockStatus
	}{
		{0, 0, domain.StockOut},
		{0, 5, domain.StockOut},
		{1, 5, domain.StockLow},
		{5, 5, domain.StockLow},
		{6, 5, domain.StockGood},
		{1, 0, domain.StockGood},
	}
	for _, tc := range cases {
		if got := domain.StatusFor(tc.stock, tc.minStock); got != tc.want {
			t.Errorf("StatusFor(%d,%d) = %s, want %s", tc.stock, tc.minStock, got, tc.want)
		}
	}
}

func TestStockServiceAdjustAppliesToCatalog(t *testing.T) {
	catalog := services.NewCatalogService(kv.NewMemory())
	stock := services.NewStockService(catalog)

	before, err := catalog.Get("cam-eos-r5")
	if err != nil {
		t.Fatal(err)
	}

	p, err := stock.Adjust("cam-eos-r5", -before.Stock)
	if err != nil {
		t.Fatal(err)
	}
	if p.Stock != 0 || p.Status != domain.StockOut {
		t.Fatalf("want out of stock, got stock=%d status=%s", p.Stock, p.Status)
	}

	got, err := catalog.Get("cam-eos-r5")
	if err != nil {
		t.Fatal(err)
	}
	if got.Stock != 0 || got.Status != domain.StockOut {
		t.Fatalf("catalog copy must reflect the adjustment, got %+v", got)
	}
}

func TestStockServiceAdjustUnknownProduct(t *testing.T) {
	stock := services.NewStockService(services.NewCatalogService(kv.NewMemory()))
	if _, err := stock.Adjust("nope", 1); err == nil {
		t.Fatal("want error for unknown product")
	}
}

func TestStockServiceSetMinStockRederivesStatus(t *testing.T) {
	catalog := services.NewCatalogService(kv.NewMemory())
	stock := services.NewStockService(catalog)

	// cam-fx3 seeds with stock 3, minStock 2 -> good
	p, err := stock.SetMinStock("cam-fx3", 10)
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != domain.StockLow {
		t.Fatalf("raising minStock above stock must flip status to low, got %s", p.Status)
	}

	p, err = stock.SetMinStock("cam-fx3", 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != domain.StockGood {
		t.Fatalf("want good with zero threshold, got %s", p.Status)
	}
}
