package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Demo history so the dashboard has something to chart on a fresh DB.
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure cashier accounts exist (idempotent; safe to run every start)
	if err := seedCashiers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Completed checkouts
CREATE TABLE IF NOT EXISTS transactions(
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  cashier TEXT NOT NULL DEFAULT '',
  payment_method TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'COMPLETED' CHECK (status IN ('COMPLETED','REFUNDED')),
  subtotal NUMERIC NOT NULL CHECK (subtotal >= 0),
  tax NUMERIC NOT NULL CHECK (tax >= 0),
  total NUMERIC NOT NULL CHECK (total >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);
CREATE INDEX IF NOT EXISTS idx_transactions_status     ON transactions(status);

CREATE TABLE IF NOT EXISTS transaction_items(
  transaction_id TEXT NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  condition TEXT NOT NULL,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price INTEGER NOT NULL CHECK (price >= 0),
  PRIMARY KEY (transaction_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_transaction_items_category ON transaction_items(category);

-- Cashier accounts shown on receipts; there is no login flow.
CREATE TABLE IF NOT EXISTS cashiers(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  pin_hash TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_cashiers_name_nocase ON cashiers(LOWER(name));

-- JSON key-value persistence (catalog snapshot, settings, financial totals)
CREATE TABLE IF NOT EXISTS kv(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM transactions`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo transaction history")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO transactions(id,customer_name,cashier,payment_method,status,subtotal,tax,total,created_at) VALUES
	  ('trx-0001','John Doe','Sania','credit_card','COMPLETED',87000000,8700000,95700000,'2024-01-15 14:30:00'),
	  ('trx-0002','Jane Smith','Sania','transfer','COMPLETED',85000000,8500000,93500000,'2024-01-15 13:45:00'),
	  ('trx-0003','Bob Wilson','Ahmad','cash','COMPLETED',4500000,450000,4950000,'2024-01-14 16:20:00'),
	  ('trx-0004','Alice Brown','Sania','e_wallet','REFUNDED',18000000,1800000,19800000,'2024-01-14 11:15:00')`)

	tx.MustExec(`INSERT INTO transaction_items(transaction_id,product_id,name,category,condition,qty,price) VALUES
	  ('trx-0001','cam-eos-r5','Canon EOS R5','camera','new',1,65000000),
	  ('trx-0001','lens-rf2470','Canon RF 24-70mm f/2.8L','lens','new',1,22000000),
	  ('trx-0002','cam-fx3','Sony FX3','camera','new',1,85000000),
	  ('trx-0003','acc-manfrotto','Tripod Manfrotto','accessories','new',1,3500000),
	  ('trx-0003','mem-sd128','SanDisk Extreme Pro 128GB','memory','new',1,1000000),
	  ('trx-0004','lens-rf50','Canon RF 50mm f/1.2L','lens','new',1,18000000)`)

	return tx.Commit()
}

// seedCashiers ensures the default cashier accounts exist (idempotent).
func seedCashiers(db *sqlx.DB) error {
	type c struct {
		ID, Name, Hash string
	}
	mk := func(id, name, pin string) c {
		h, _ := bcrypt.GenerateFromPassword([]byte(pin), 12)
		return c{ID: id, Name: name, Hash: string(h)}
	}

	cashiers := []c{
		mk("csh-sania", "Sania", "124578"),
		mk("csh-ahmad", "Ahmad", "098123"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range cashiers {
		if _, err := tx.Exec(`
			INSERT INTO cashiers(id,name,pin_hash)
			VALUES(?,?,?)
			ON CONFLICT DO NOTHING
		`, x.ID, x.Name, x.Hash); err != nil {
			return err
		}
	}

	return tx.Commit()
}
