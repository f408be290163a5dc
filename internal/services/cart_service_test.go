package services_test

import (
	"errors"
	"testing"

	"opticaluna/internal/repos"
)

func TestCartAddRejectsBeyondStock(t *testing.T) {
	fx := newOrderFixture(t)

	// seeded demo product with stock 4
	const pid = "sol-wayfarer-carey"
	if err := fx.Cart.Add("sess-cart", pid, 5); err == nil {
		t.Fatal("expected rejection for qty above stock")
	} else if !errors.Is(err, repos.ErrInsufficientStock) {
		t.Fatalf("unexpected error: %v", err)
	}

	cv, err := fx.Cart.View("sess-cart")
	if err != nil {
		t.Fatalf("cart view: %v", err)
	}
	if len(cv.Items) != 0 {
		t.Fatalf("rejected add left %d items in cart", len(cv.Items))
	}
}

// The limit applies to the accumulated line, not each add in isolation.
func TestCartAddAccumulatedQtyCappedByStock(t *testing.T) {
	fx := newOrderFixture(t)

	const pid = "sol-wayfarer-carey"
	if err := fx.Cart.Add("sess-cart", pid, 3); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := fx.Cart.Add("sess-cart", pid, 2); err == nil {
		t.Fatal("expected rejection when accumulated qty passes stock")
	} else if !errors.Is(err, repos.ErrInsufficientStock) {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fx.Cart.Add("sess-cart", pid, 1); err != nil {
		t.Fatalf("add up to stock: %v", err)
	}

	cv, err := fx.Cart.View("sess-cart")
	if err != nil {
		t.Fatalf("cart view: %v", err)
	}
	if len(cv.Items) != 1 || cv.Items[0].Qty != 4 {
		t.Fatalf("unexpected cart state: %+v", cv.Items)
	}
}

func TestCartAddRejectsOutOfStockProduct(t *testing.T) {
	fx := newOrderFixture(t)

	// seeded demo product with stock 0
	if err := fx.Cart.Add("sess-cart", "oft-rect-negra", 1); !errors.Is(err, repos.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
}
