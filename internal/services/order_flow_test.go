package services_test

import (
	"strings"
	"testing"

	"opticaluna/internal/repos"
	"opticaluna/internal/services"
)

type orderFixture struct {
	Order  *services.OrderService
	Cart   *services.CartService
	Prods  *repos.ProductRepo
	Orders *repos.OrderRepo
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	carts := repos.NewCartRepo(db)
	prods := repos.NewProductRepo(db)
	orders := repos.NewOrderRepo(db)
	return orderFixture{
		Order:  services.NewOrderService(carts, prods, orders),
		Cart:   services.NewCartService(carts, prods),
		Prods:  prods,
		Orders: orders,
	}
}

func TestPlaceOrderDecrementsStockAndClearsCart(t *testing.T) {
	fx := newOrderFixture(t)

	// seeded demo product with stock 12
	const pid = "sol-aviador-negro"
	before, err := fx.Prods.Stock(pid)
	if err != nil {
		t.Fatalf("stock: %v", err)
	}

	if err := fx.Cart.Add("sess-1", pid, 2); err != nil {
		t.Fatalf("cart add: %v", err)
	}
	orderID, err := fx.Order.Place("sess-1", services.Contact{Name: "Ana", Email: "ana@opticaluna.test", Address: "Calle 1"})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if orderID == "" {
		t.Fatal("empty order id")
	}

	after, err := fx.Prods.Stock(pid)
	if err != nil {
		t.Fatalf("stock: %v", err)
	}
	if after != before-2 {
		t.Fatalf("stock not decremented: %d -> %d", before, after)
	}

	cv, err := fx.Cart.View("sess-1")
	if err != nil {
		t.Fatalf("cart view: %v", err)
	}
	if len(cv.Items) != 0 {
		t.Fatalf("cart not cleared, %d items remain", len(cv.Items))
	}
}

// Stock can drop between carting and checkout; the pre-check catches it.
func TestPlaceOrderRejectsInsufficientStock(t *testing.T) {
	fx := newOrderFixture(t)

	// seeded demo product with stock 4
	const pid = "sol-wayfarer-carey"
	if err := fx.Cart.Add("sess-2", pid, 2); err != nil {
		t.Fatalf("cart add: %v", err)
	}
	if err := fx.Prods.SetStock(pid, 1); err != nil {
		t.Fatalf("set stock: %v", err)
	}
	_, err := fx.Order.Place("sess-2", services.Contact{Name: "Ana", Email: "ana@opticaluna.test", Address: "Calle 1"})
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if !strings.Contains(err.Error(), "insufficient stock") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	fx := newOrderFixture(t)
	if _, err := fx.Order.Place("sess-empty", services.Contact{Name: "Ana", Email: "a@b.com", Address: "x"}); err == nil {
		t.Fatal("expected error for empty cart")
	}
}

func TestOrderTotalsFromStoredPrices(t *testing.T) {
	fx := newOrderFixture(t)

	const pid = "sol-wayfarer-carey"
	p, err := fx.Prods.Get(pid)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}

	if err := fx.Cart.Add("sess-3", pid, 3); err != nil {
		t.Fatalf("cart add: %v", err)
	}
	orderID, err := fx.Order.Place("sess-3", services.Contact{Name: "Ana", Email: "a@b.com", Address: "x"})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	o, items, err := fx.Orders.Get(orderID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	want := p.Price * 3
	if o.Total != want {
		t.Fatalf("total mismatch: got %.2f want %.2f", o.Total, want)
	}
	if len(items) != 1 || items[0].Qty != 3 {
		t.Fatalf("unexpected items: %+v", items)
	}
}
