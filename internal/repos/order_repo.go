package repos

import "github.com/jmoiron/sqlx"

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderSummary struct {
	ID            string  `db:"id"`
	SessionID     string  `db:"session_id"`
	CustomerName  string  `db:"customer_name"`
	CustomerEmail string  `db:"customer_email"`
	Total         float64 `db:"total"`
	Status        string  `db:"status"`
	CreatedAt     string  `db:"created_at"`
}

type OrderRow struct {
	ID        string  `db:"id"`
	SessionID string  `db:"session_id"`
	Customer  string  `db:"customer_name"`
	Email     string  `db:"customer_email"`
	Address   string  `db:"shipping_address"`
	Total     float64 `db:"total"`
	Status    string  `db:"status"`
	CreatedAt string  `db:"created_at"`
}

type OrderItemRow struct {
	Name     string  `db:"name"`
	Qty      int     `db:"qty"`
	Price    float64 `db:"price"`
	Subtotal float64 `db:"subtotal"`
}

func (r *OrderRepo) Create(orderID, sessionID, name, email, address string, total float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders
	    (id, session_id, customer_name, customer_email, shipping_address, total, status, created_at)
	  VALUES (?,?,?,?,?,?, 'PLACED', CURRENT_TIMESTAMP)
	`, orderID, sessionID, name, email, address, total)
	return err
}

func (r *OrderRepo) InsertItem(orderID, productID string, qty int, price float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, product_id, qty, price)
	  VALUES (?,?,?,?)
	`, orderID, productID, qty, price)
	return err
}

func (r *OrderRepo) Get(orderID string) (OrderRow, []OrderItemRow, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
	  SELECT id, COALESCE(session_id,'') AS session_id,
	         COALESCE(customer_name,'') AS customer_name,
	         COALESCE(customer_email,'') AS customer_email,
	         COALESCE(shipping_address,'') AS shipping_address,
	         total, status, created_at
	  FROM orders WHERE id=?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	var items []OrderItemRow
	if err := r.db.Select(&items, `
	  SELECT p.name, oi.qty, oi.price, (oi.qty*oi.price) AS subtotal
	  FROM order_items oi JOIN products p ON p.id = oi.product_id
	  WHERE oi.order_id=?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(session_id,'') AS session_id,
	         COALESCE(customer_name,'') AS customer_name,
	         COALESCE(customer_email,'') AS customer_email,
	         total, status, created_at
	  FROM orders
	  ORDER BY created_at DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) ListBySession(sessionID string) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(session_id,'') AS session_id,
	         COALESCE(customer_name,'') AS customer_name,
	         COALESCE(customer_email,'') AS customer_email,
	         total, status, created_at
	  FROM orders
	  WHERE session_id = ?
	  ORDER BY created_at DESC
	`, sessionID)
	return out, err
}

func (r *OrderRepo) UpdateStatus(orderID, status string) error {
	switch status {
	case "PLACED", "PREPARING", "SHIPPED", "DELIVERED", "CANCELED":
	default:
		return ErrBadOrderStatus
	}
	_, err := r.db.Exec(`UPDATE orders SET status=? WHERE id=?`, status, orderID)
	return err
}
