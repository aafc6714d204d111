package model

import (
	"time"

	"github.com/google/uuid"
)

// Satuan obat yang dikenal
var ValidMedicineUnits = map[string]bool{
	"tablets":  true,
	"capsules": true,
	"ml":       true,
	"bottles":  true,
	"boxes":    true,
	"pieces":   true,
}

type Medicine struct {
	ID           uuid.UUID  `db:"id"            json:"id"`
	Name         string     `db:"name"          json:"name"`
	Category     *string    `db:"category"      json:"category"`
	Stock        int        `db:"stock"         json:"stock"`
	Unit         string     `db:"unit"          json:"unit"`
	MinimumStock int        `db:"minimum_stock" json:"minimum_stock"`
	ExpiryDate   *time.Time `db:"expiry_date"   json:"expiry_date"`
	Description  *string    `db:"description"   json:"description"`
	CreatedAt    time.Time  `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"    json:"updated_at"`
}

// IsLowStock: stok sudah menyentuh ambang minimum
func (m *Medicine) IsLowStock() bool {
	return m.Stock <= m.MinimumStock
}

func (m *Medicine) IsExpired(now time.Time) bool {
	return m.ExpiryDate != nil && m.ExpiryDate.Before(now)
}

type TransactionType string

const (
	TransactionIn  TransactionType = "in"
	TransactionOut TransactionType = "out"
)

// MedicineTransaction adalah entri ledger append-only, tidak pernah dimutasi
type MedicineTransaction struct {
	ID         uuid.UUID       `db:"id"          json:"id"`
	MedicineID uuid.UUID       `db:"medicine_id" json:"medicine_id"`
	Type       TransactionType `db:"type"        json:"type"`
	Quantity   int             `db:"quantity"    json:"quantity"`
	Notes      *string         `db:"notes"       json:"notes"`
	CreatedBy  *uuid.UUID      `db:"created_by"  json:"created_by"`
	CreatedAt  time.Time       `db:"created_at"  json:"created_at"`

	// Join fields
	MedicineName *string `db:"medicine_name" json:"medicine_name,omitempty"`
}

type CreateMedicineRequest struct {
	Name         string  `json:"name"`
	Category     *string `json:"category"`
	Stock        int     `json:"stock"`
	Unit         string  `json:"unit"`
	MinimumStock int     `json:"minimum_stock"`
	ExpiryDate   string  `json:"expiry_date"` // format: YYYY-MM-DD, opsional
	Description  *string `json:"description"`
}

type UpdateMedicineRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Unit         *string `json:"unit"`
	MinimumStock *int    `json:"minimum_stock"`
	ExpiryDate   *string `json:"expiry_date"`
	Description  *string `json:"description"`
}

type CreateTransactionRequest struct {
	MedicineID string          `json:"medicine_id"`
	Type       TransactionType `json:"type"`
	Quantity   int             `json:"quantity"`
	Notes      *string         `json:"notes"`
}

// StockMutationResult membawa transaksi beserta stok terbaru setelah mutasi
type StockMutationResult struct {
	Transaction *MedicineTransaction `json:"transaction"`
	NewStock    int                  `json:"new_stock"`
}

type MedicineFilter struct {
	Search   string
	Category string
	View     string // "" | low_stock | expired
	Page     int
	PerPage  int
}
