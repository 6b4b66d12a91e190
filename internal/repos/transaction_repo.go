package repos

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"campos/internal/domain"
)

// ErrNotFound reports a lookup or update against a row that does not exist.
var ErrNotFound = errors.New("not found")

type TransactionRepo struct{ db *sqlx.DB }

func NewTransactionRepo(db *sqlx.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// Create writes the transaction and its items atomically.
func (r *TransactionRepo) Create(t domain.Transaction, items []domain.TransactionItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO transactions(id,customer_name,cashier,payment_method,status,subtotal,tax,total)
		VALUES(?,?,?,?,?,?,?,?)
	`, t.ID, t.Customer, t.Cashier, t.Payment, t.Status, t.Subtotal, t.Tax, t.Total); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := tx.Exec(`
			INSERT INTO transaction_items(transaction_id,product_id,name,category,condition,qty,price)
			VALUES(?,?,?,?,?,?,?)
		`, t.ID, it.ProductID, it.Name, it.Category, it.Condition, it.Qty, it.Price); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *TransactionRepo) Get(id string) (domain.Transaction, error) {
	var t domain.Transaction
	err := r.db.Get(&t, `
	  SELECT id, customer_name, cashier, payment_method, status, subtotal, tax, total,
	         COALESCE(created_at,'') AS created_at
	  FROM transactions
	  WHERE id = ?
	`, id)
	return t, err
}

func (r *TransactionRepo) Items(id string) ([]domain.TransactionItem, error) {
	var out []domain.TransactionItem
	err := r.db.Select(&out, `
	  SELECT transaction_id, product_id, name, category, condition, qty, price
	  FROM transaction_items
	  WHERE transaction_id = ?
	  ORDER BY name
	`, id)
	return out, err
}

// ListFilter narrows the history page. Zero values mean "no constraint".
type ListFilter struct {
	Query    string // matches customer name or transaction id
	Status   string
	DateFrom string // inclusive, YYYY-MM-DD
	DateTo   string // inclusive, YYYY-MM-DD
	Limit    int
	Offset   int
}

func (r *TransactionRepo) List(f ListFilter) ([]domain.Transaction, error) {
	where := `1=1`
	args := []any{}
	if f.Query != "" {
		where += ` AND (LOWER(customer_name) LIKE ? OR LOWER(id) LIKE ?)`
		q := "%" + f.Query + "%"
		args = append(args, q, q)
	}
	if f.Status != "" {
		where += ` AND status = ?`
		args = append(args, f.Status)
	}
	if f.DateFrom != "" {
		where += ` AND date(created_at) >= date(?)`
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		where += ` AND date(created_at) <= date(?)`
		args = append(args, f.DateTo)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	sql := `
	  SELECT id, customer_name, cashier, payment_method, status, subtotal, tax, total,
	         COALESCE(created_at,'') AS created_at
	  FROM transactions
	  WHERE ` + where + `
	  ORDER BY created_at DESC
	  LIMIT ? OFFSET ?`
	args = append(args, limit, f.Offset)

	var out []domain.Transaction
	err := r.db.Select(&out, sql, args...)
	return out, err
}

func (r *TransactionRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE transactions SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return nil
}

// MonthlyPoint is one bucket of the dashboard revenue chart.
type MonthlyPoint struct {
	Month   string          `db:"month" json:"month"` // YYYY-MM
	Revenue decimal.Decimal `db:"revenue" json:"revenue"`
	Orders  int             `db:"orders" json:"orders"`
}

func (r *TransactionRepo) MonthlyRevenue() ([]MonthlyPoint, error) {
	var out []MonthlyPoint
	err := r.db.Select(&out, `
	  SELECT strftime('%Y-%m', created_at) AS month,
	         COALESCE(SUM(total),0) AS revenue,
	         COUNT(*) AS orders
	  FROM transactions
	  WHERE status = 'COMPLETED'
	  GROUP BY month
	  ORDER BY month
	`)
	return out, err
}

// CategorySale is one slice of the dashboard category breakdown.
type CategorySale struct {
	Category string          `db:"category" json:"category"`
	Units    int             `db:"units" json:"units"`
	Amount   decimal.Decimal `db:"amount" json:"amount"`
}

func (r *TransactionRepo) CategorySales() ([]CategorySale, error) {
	var out []CategorySale
	err := r.db.Select(&out, `
	  SELECT ti.category,
	         COALESCE(SUM(ti.qty),0) AS units,
	         COALESCE(SUM(ti.qty * ti.price),0) AS amount
	  FROM transaction_items ti
	  JOIN transactions t ON t.id = ti.transaction_id
	  WHERE t.status = 'COMPLETED'
	  GROUP BY ti.category
	  ORDER BY amount DESC
	`)
	return out, err
}

// Summary is the dashboard stats strip.
type Summary struct {
	Revenue      decimal.Decimal `db:"revenue" json:"revenue"`
	Transactions int             `db:"transactions" json:"transactions"`
	ItemsSold    int             `db:"items_sold" json:"itemsSold"`
}

func (r *TransactionRepo) Summarize() (Summary, error) {
	var s Summary
	err := r.db.Get(&s, `
	  SELECT
	    (SELECT COALESCE(SUM(total),0) FROM transactions WHERE status = 'COMPLETED') AS revenue,
	    (SELECT COUNT(*) FROM transactions WHERE status = 'COMPLETED') AS transactions,
	    (SELECT COALESCE(SUM(ti.qty),0)
	       FROM transaction_items ti
	       JOIN transactions t ON t.id = ti.transaction_id
	      WHERE t.status = 'COMPLETED') AS items_sold
	`)
	return s, err
}
