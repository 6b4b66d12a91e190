package repos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrDuplicate reports an insert that collides with an existing row.
var ErrDuplicate = errors.New("already exists")

type CashierRepo struct{ db *sqlx.DB }

func NewCashierRepo(db *sqlx.DB) *CashierRepo { return &CashierRepo{db: db} }

type Cashier struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	PinHash   string `db:"pin_hash" json:"-"`
	Active    bool   `db:"active" json:"active"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

func (r *CashierRepo) List() ([]Cashier, error) {
	var out []Cashier
	err := r.db.Select(&out, `
	  SELECT id, name, pin_hash, active, COALESCE(created_at,'') AS created_at
	  FROM cashiers
	  ORDER BY name
	`)
	return out, err
}

func (r *CashierRepo) GetByName(name string) (Cashier, error) {
	var c Cashier
	err := r.db.Get(&c, `
	  SELECT id, name, pin_hash, active, COALESCE(created_at,'') AS created_at
	  FROM cashiers
	  WHERE LOWER(name) = LOWER(?)
	`, name)
	return c, err
}

func (r *CashierRepo) Create(id, name, pinHash string) error {
	_, err := r.db.Exec(`
		INSERT INTO cashiers(id,name,pin_hash) VALUES(?,?,?)
	`, id, name, pinHash)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint") {
		return fmt.Errorf("cashier %s: %w", name, ErrDuplicate)
	}
	return err
}

func (r *CashierRepo) Deactivate(id string) error {
	res, err := r.db.Exec(`UPDATE cashiers SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("cashier %s: %w", id, ErrNotFound)
	}
	return nil
}
