package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateRecordNumber: nomor rekam medis sudah terpakai (unique index)
var ErrDuplicateRecordNumber = errors.New("nomor rekam medis sudah terdaftar")

type StudentRepository interface {
	FindAll(ctx context.Context, filter model.StudentFilter) ([]*model.Student, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	CreateWithRecordNumber(ctx context.Context, student *model.Student, institutionID string) error
	Update(ctx context.Context, student *model.Student) error
	Count(ctx context.Context) (int, error)
}

type studentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, full_name, medical_record_number, birth_date, gender, grade,
	       blood_type, allergies, emergency_contact, emergency_phone, email, address,
	       created_at, updated_at`

func (r *studentRepository) FindAll(ctx context.Context, filter model.StudentFilter) ([]*model.Student, int64, error) {
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
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR medical_record_number ILIKE $%d)", argIdx, argIdx+1))
		search := "%" + filter.Search + "%"
		args = append(args, search, search)
		argIdx += 2
	}

	if filter.Grade != "" {
		conditions = append(conditions, fmt.Sprintf("grade = $%d", argIdx))
		args = append(args, filter.Grade)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	// Count total
	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM students WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// Fetch data, yang terbaru dulu
	offset := (filter.Page - 1) * filter.PerPage
	query := fmt.Sprintf(`
		SELECT %s
		FROM students
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, studentColumns, where, argIdx, argIdx+1)

	args = append(args, filter.PerPage, offset)

	var students []*model.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var student model.Student
	query := fmt.Sprintf("SELECT %s FROM students WHERE id = $1", studentColumns)
	err := r.db.GetContext(ctx, &student, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

// CreateWithRecordNumber men-generate nomor rekam medis "<inst> -- <seq>" dan
// insert dalam satu transaksi. Baris dengan prefix yang sama dikunci dulu
// (FOR UPDATE) supaya dua registrasi bersamaan tidak mendapat sequence yang
// sama; unique index menjadi jaring pengaman terakhir.
func (r *studentRepository) CreateWithRecordNumber(ctx context.Context, student *model.Student, institutionID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing []string
	err = tx.SelectContext(ctx, &existing, `
		SELECT medical_record_number FROM students
		WHERE medical_record_number LIKE $1
		FOR UPDATE
	`, institutionID+" -- %")
	if err != nil {
		return err
	}

	seq := utils.NextRecordSequence(existing)
	student.MedicalRecordNumber = utils.FormatRecordNumber(institutionID, seq)

	query := `
		INSERT INTO students (id, full_name, medical_record_number, birth_date, gender, grade,
		                      blood_type, allergies, emergency_contact, emergency_phone,
		                      email, address, created_at, updated_at)
		VALUES (:id, :full_name, :medical_record_number, :birth_date, :gender, :grade,
		        :blood_type, :allergies, :emergency_contact, :emergency_phone,
		        :email, :address, NOW(), NOW())
	`
	if _, err := tx.NamedExecContext(ctx, query, student); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateRecordNumber
		}
		return err
	}

	return tx.Commit()
}

func (r *studentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students SET
			full_name = :full_name, birth_date = :birth_date, gender = :gender,
			grade = :grade, blood_type = :blood_type, allergies = :allergies,
			emergency_contact = :emergency_contact, emergency_phone = :emergency_phone,
			email = :email, address = :address, updated_at = NOW()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, student)
	return err
}

func (r *studentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM students").Scan(&count)
	return count, err
}
