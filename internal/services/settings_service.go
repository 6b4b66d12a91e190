package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"campos/internal/config"
	"campos/internal/kv"
	"campos/internal/repos"
)

// StoreSettings is the editable store profile. TaxRate feeds the pricing
// calculator on every checkout.
type StoreSettings struct {
	StoreName string          `json:"storeName"`
	Address   string          `json:"address"`
	Currency  string          `json:"currency"`
	TaxRate   decimal.Decimal `json:"taxRate"`
}

// SettingsService holds the store profile (KV-persisted under pos_settings,
// falling back to config defaults) and manages cashier accounts.
type SettingsService struct {
	mu       sync.RWMutex
	store    kv.Store
	cur      StoreSettings
	Cashiers *repos.CashierRepo
}

func NewSettingsService(store kv.Store, cfg config.StoreConfig, cashiers *repos.CashierRepo) *SettingsService {
	rate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		log.Printf("[settings] bad tax_rate %q, using 0.10", cfg.TaxRate)
		rate = decimal.RequireFromString("0.10")
	}
	s := &SettingsService{
		store:    store,
		Cashiers: cashiers,
		cur: StoreSettings{
			StoreName: cfg.Name,
			Address:   cfg.Address,
			Currency:  cfg.Currency,
			TaxRate:   rate,
		},
	}
	var saved StoreSettings
	if ok, err := s.store.Get(context.Background(), kv.KeySettings, &saved); err != nil {
		log.Printf("[settings] load: %v (using defaults)", err)
	} else if ok {
		s.cur = saved
	}
	return s
}

func (s *SettingsService) Get() StoreSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *SettingsService) TaxRate() decimal.Decimal {
	return s.Get().TaxRate
}

// Update replaces the profile wholesale after validating the tax rate.
func (s *SettingsService) Update(next StoreSettings) error {
	if next.TaxRate.IsNegative() || next.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate must be between 0 and 1")
	}
	if strings.TrimSpace(next.StoreName) == "" {
		return fmt.Errorf("store name required")
	}
	s.mu.Lock()
	s.cur = next
	s.mu.Unlock()
	if err := s.store.Set(context.Background(), kv.KeySettings, next); err != nil {
		log.Printf("[settings] persist: %v", err)
	}
	return nil
}

// AddCashier stores a new account with a bcrypt-hashed PIN.
func (s *SettingsService) AddCashier(name, pin string) (repos.Cashier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return repos.Cashier{}, fmt.Errorf("cashier name required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), 12)
	if err != nil {
		return repos.Cashier{}, err
	}
	c := repos.Cashier{ID: uuid.NewString(), Name: name, Active: true}
	if err := s.Cashiers.Create(c.ID, c.Name, string(hash)); err != nil {
		return repos.Cashier{}, err
	}
	return c, nil
}

func (s *SettingsService) ListCashiers() ([]repos.Cashier, error) {
	return s.Cashiers.List()
}

func (s *SettingsService) DeactivateCashier(id string) error {
	return s.Cashiers.Deactivate(id)
}

// VerifyPIN checks a cashier's PIN at the register. Not an authentication
// layer; it only identifies who rang up the sale.
func (s *SettingsService) VerifyPIN(name, pin string) bool {
	c, err := s.Cashiers.GetByName(name)
	if err != nil || !c.Active {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PinHash), []byte(pin)) == nil
}
