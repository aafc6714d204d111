package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MedicalRecordRepository interface {
	FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]*model.MedicalRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error)
	Create(ctx context.Context, record *model.MedicalRecord) error
	CountByDateRange(ctx context.Context, from, to time.Time) (int, error)
	TopDiagnosesByDateRange(ctx context.Context, from, to time.Time, limit int) ([]model.IllnessCount, error)
}

type medicalRecordRepository struct {
	db *sqlx.DB
}

func NewMedicalRecordRepository(db *sqlx.DB) MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]*model.MedicalRecord, error) {
	var records []*model.MedicalRecord
	query := `
		SELECT m.*, s.full_name AS student_name, s.medical_record_number AS student_number
		FROM medical_records m
		LEFT JOIN students s ON m.student_id = s.id
		WHERE m.student_id = $1
		ORDER BY m.check_up_date DESC
	`
	if err := r.db.SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
	var record model.MedicalRecord
	query := `
		SELECT m.*, s.full_name AS student_name, s.medical_record_number AS student_number
		FROM medical_records m
		LEFT JOIN students s ON m.student_id = s.id
		WHERE m.id = $1
	`
	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (id, student_id, check_up_date, diagnosis, symptoms,
		                             treatment, medicine_name, dosage, doctor_notes,
		                             needs_letter, created_by, created_at)
		VALUES (:id, :student_id, :check_up_date, :diagnosis, :symptoms,
		        :treatment, :medicine_name, :dosage, :doctor_notes,
		        :needs_letter, :created_by, NOW())
	`
	_, err := r.db.NamedExecContext(ctx, query, record)
	return err
}

// CountByDateRange menghitung kunjungan dengan check_up_date di [from, to)
func (r *medicalRecordRepository) CountByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM medical_records WHERE check_up_date >= $1 AND check_up_date < $2",
		from, to,
	).Scan(&count)
	return count, err
}

// TopDiagnosesByDateRange: diagnosis dihitung exact string match, tanpa
// normalisasi huruf besar/kecil, lalu diurutkan dari yang paling sering.
func (r *medicalRecordRepository) TopDiagnosesByDateRange(ctx context.Context, from, to time.Time, limit int) ([]model.IllnessCount, error) {
	var counts []model.IllnessCount
	query := `
		SELECT diagnosis, COUNT(*) AS count
		FROM medical_records
		WHERE check_up_date >= $1 AND check_up_date < $2
		GROUP BY diagnosis
		ORDER BY count DESC, diagnosis ASC
		LIMIT $3
	`
	if err := r.db.SelectContext(ctx, &counts, query, from, to, limit); err != nil {
		return nil, err
	}
	return counts, nil
}
