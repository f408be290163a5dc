package services

import (
	"errors"
	"fmt"

	"opticaluna/internal/repos"

	"github.com/google/uuid"
)

type Contact struct {
	Name    string
	Email   string
	Address string
}

type OrderService struct {
	Carts  *repos.CartRepo
	Prods  *repos.ProductRepo
	Orders *repos.OrderRepo
}

func NewOrderService(carts *repos.CartRepo, prods *repos.ProductRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Carts: carts, Prods: prods, Orders: orders}
}

// Place turns the session's cart into an order: stock pre-check, decrement,
// order header + items, then cart cleared.
func (s *OrderService) Place(sessionID string, contact Contact) (string, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return "", err
	}

	items, err := s.Carts.Items(cartID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", errors.New("cart empty")
	}

	for _, it := range items {
		qty, err := s.Prods.Stock(it.ProductID)
		if err != nil {
			return "", err
		}
		if qty < it.Qty {
			return "", fmt.Errorf("insufficient stock for %s (need %d, have %d)", it.ProductID, it.Qty, qty)
		}
	}

	for _, it := range items {
		if err := s.Prods.DecrementStock(it.ProductID, it.Qty); err != nil {
			return "", err
		}
	}

	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Qty)
	}

	orderID := uuid.NewString()
	if err := s.Orders.Create(orderID, sessionID, contact.Name, contact.Email, contact.Address, total); err != nil {
		return "", err
	}
	for _, it := range items {
		if err := s.Orders.InsertItem(orderID, it.ProductID, it.Qty, it.Price); err != nil {
			return "", err
		}
	}
	_ = s.Carts.Clear(cartID)
	return orderID, nil
}
