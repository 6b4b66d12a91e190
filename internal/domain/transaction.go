package domain

import "github.com/shopspring/decimal"

// Payment methods accepted at checkout. Payment processing itself is mocked:
// a method is recorded, never charged.
const (
	PayCash       = "cash"
	PayCreditCard = "credit_card"
	PayTransfer   = "transfer"
	PayEWallet    = "e_wallet"
	PayQR         = "qr"
	PayCOD        = "cod"
)

// Transaction statuses.
const (
	TxCompleted = "COMPLETED"
	TxRefunded  = "REFUNDED"
)

// Transaction is a completed checkout snapshot kept in history.
type Transaction struct {
	ID        string          `db:"id" json:"id"`
	Customer  string          `db:"customer_name" json:"customer"`
	Cashier   string          `db:"cashier" json:"cashier"`
	Payment   string          `db:"payment_method" json:"payment"`
	Status    string          `db:"status" json:"status"`
	Subtotal  decimal.Decimal `db:"subtotal" json:"subtotal"`
	Tax       decimal.Decimal `db:"tax" json:"tax"`
	Total     decimal.Decimal `db:"total" json:"total"`
	CreatedAt string          `db:"created_at" json:"createdAt"`
}

// TransactionItem is one line of a recorded transaction. Price and condition
// are copied at checkout time so later catalog edits do not rewrite history.
type TransactionItem struct {
	TransactionID string `db:"transaction_id" json:"-"`
	ProductID     string `db:"product_id" json:"productId"`
	Name          string `db:"name" json:"name"`
	Category      string `db:"category" json:"category"`
	Condition     string `db:"condition" json:"condition"`
	Qty           int    `db:"qty" json:"qty"`
	Price         int64  `db:"price" json:"price"`
}
