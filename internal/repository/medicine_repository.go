package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	// ErrInsufficientStock: stock-out melebihi sisa stok; tidak ada write sama sekali
	ErrInsufficientStock = errors.New("stok obat tidak mencukupi")
	// ErrMedicineGone: obat hilang di tengah transaksi
	ErrMedicineGone = errors.New("obat tidak ditemukan")
)

type MedicineRepository interface {
	FindAll(ctx context.Context, filter model.MedicineFilter) ([]*model.Medicine, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error)
	Create(ctx context.Context, medicine *model.Medicine) error
	Update(ctx context.Context, medicine *model.Medicine) error
	ApplyTransaction(ctx context.Context, trans *model.MedicineTransaction, delta int) (int, error)
	FindTransactions(ctx context.Context, limit int) ([]*model.MedicineTransaction, error)
}

type medicineRepository struct {
	db *sqlx.DB
}

func NewMedicineRepository(db *sqlx.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) FindAll(ctx context.Context, filter model.MedicineFilter) ([]*model.Medicine, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, filter.Category)
		argIdx++
	}

	// Derived views: stok menipis dan kedaluwarsa
	switch filter.View {
	case "low_stock":
		conditions = append(conditions, "stock <= minimum_stock")
	case "expired":
		conditions = append(conditions, "expiry_date IS NOT NULL AND expiry_date < CURRENT_DATE")
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM medicines WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := fmt.Sprintf(`
		SELECT id, name, category, stock, unit, minimum_stock, expiry_date,
		       description, created_at, updated_at
		FROM medicines
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.PerPage, offset)

	var medicines []*model.Medicine
	if err := r.db.SelectContext(ctx, &medicines, query, args...); err != nil {
		return nil, 0, err
	}

	return medicines, total, nil
}

func (r *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	var medicine model.Medicine
	query := `
		SELECT id, name, category, stock, unit, minimum_stock, expiry_date,
		       description, created_at, updated_at
		FROM medicines WHERE id = $1
	`
	err := r.db.GetContext(ctx, &medicine, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	query := `
		INSERT INTO medicines (id, name, category, stock, unit, minimum_stock,
		                       expiry_date, description, created_at, updated_at)
		VALUES (:id, :name, :category, :stock, :unit, :minimum_stock,
		        :expiry_date, :description, NOW(), NOW())
	`
	_, err := r.db.NamedExecContext(ctx, query, medicine)
	return err
}

func (r *medicineRepository) Update(ctx context.Context, medicine *model.Medicine) error {
	query := `
		UPDATE medicines SET
			name = :name, category = :category, unit = :unit,
			minimum_stock = :minimum_stock, expiry_date = :expiry_date,
			description = :description, updated_at = NOW()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, medicine)
	return err
}

// ApplyTransaction memutasi stok dan mencatat entri ledger dalam SATU
// transaksi database. UPDATE-nya dijaga klausa stock + delta >= 0: kalau
// stok tidak cukup, tidak ada baris yang berubah dan seluruh transaksi
// dibatalkan. Mengembalikan stok terbaru setelah mutasi.
func (r *medicineRepository) ApplyTransaction(ctx context.Context, trans *model.MedicineTransaction, delta int) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var newStock int
	err = tx.QueryRowContext(ctx, `
		UPDATE medicines
		SET stock = stock + $1, updated_at = NOW()
		WHERE id = $2 AND stock + $1 >= 0
		RETURNING stock
	`, delta, trans.MedicineID).Scan(&newStock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Bedakan obat tidak ada vs stok kurang
			var exists bool
			if err := tx.QueryRowContext(ctx,
				"SELECT EXISTS(SELECT 1 FROM medicines WHERE id = $1)", trans.MedicineID,
			).Scan(&exists); err != nil {
				return 0, err
			}
			if !exists {
				return 0, ErrMedicineGone
			}
			return 0, ErrInsufficientStock
		}
		return 0, err
	}

	insert := `
		INSERT INTO medicine_transactions (id, medicine_id, type, quantity, notes, created_by, created_at)
		VALUES (:id, :medicine_id, :type, :quantity, :notes, :created_by, NOW())
	`
	if _, err := tx.NamedExecContext(ctx, insert, trans); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return newStock, nil
}

func (r *medicineRepository) FindTransactions(ctx context.Context, limit int) ([]*model.MedicineTransaction, error) {
	if limit <= 0 {
		limit = 50
	}

	var transactions []*model.MedicineTransaction
	query := `
		SELECT t.*, m.name AS medicine_name
		FROM medicine_transactions t
		LEFT JOIN medicines m ON t.medicine_id = m.id
		ORDER BY t.created_at DESC
		LIMIT $1
	`
	if err := r.db.SelectContext(ctx, &transactions, query, limit); err != nil {
		return nil, err
	}
	return transactions, nil
}
