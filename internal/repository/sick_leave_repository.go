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

type SickLeaveRepository interface {
	FindAll(ctx context.Context, filter model.SickLeaveFilter) ([]*model.SickLeave, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.SickLeave, error)
	FindByVerifyToken(ctx context.Context, token string) (*model.SickLeave, error)
	Create(ctx context.Context, leave *model.SickLeave) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.LeaveStatus) error
	UpdateDocumentURL(ctx context.Context, id uuid.UUID, documentURL string) error
	CountByStatus(ctx context.Context, status model.LeaveStatus) (int, error)
}

type sickLeaveRepository struct {
	db *sqlx.DB
}

func NewSickLeaveRepository(db *sqlx.DB) SickLeaveRepository {
	return &sickLeaveRepository{db: db}
}

func (r *sickLeaveRepository) FindAll(ctx context.Context, filter model.SickLeaveFilter) ([]*model.SickLeave, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM sick_leaves l WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := fmt.Sprintf(`
		SELECT l.*, s.full_name AS student_name, s.medical_record_number AS student_number
		FROM sick_leaves l
		LEFT JOIN students s ON l.student_id = s.id
		WHERE %s
		ORDER BY l.start_date DESC, l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.PerPage, offset)

	var leaves []*model.SickLeave
	if err := r.db.SelectContext(ctx, &leaves, query, args...); err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

func (r *sickLeaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SickLeave, error) {
	var leave model.SickLeave
	query := `
		SELECT l.*, s.full_name AS student_name, s.medical_record_number AS student_number
		FROM sick_leaves l
		LEFT JOIN students s ON l.student_id = s.id
		WHERE l.id = $1
	`
	err := r.db.GetContext(ctx, &leave, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &leave, nil
}

func (r *sickLeaveRepository) FindByVerifyToken(ctx context.Context, token string) (*model.SickLeave, error) {
	var leave model.SickLeave
	query := `
		SELECT l.*, s.full_name AS student_name, s.medical_record_number AS student_number
		FROM sick_leaves l
		LEFT JOIN students s ON l.student_id = s.id
		WHERE l.verify_token = $1
	`
	err := r.db.GetContext(ctx, &leave, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &leave, nil
}

func (r *sickLeaveRepository) Create(ctx context.Context, leave *model.SickLeave) error {
	query := `
		INSERT INTO sick_leaves (id, student_id, start_date, end_date, reason, notes,
		                         status, verify_token, created_by, created_at, updated_at)
		VALUES (:id, :student_id, :start_date, :end_date, :reason, :notes,
		        :status, :verify_token, :created_by, NOW(), NOW())
	`
	_, err := r.db.NamedExecContext(ctx, query, leave)
	return err
}

func (r *sickLeaveRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.LeaveStatus) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE sick_leaves SET status = $1, updated_at = NOW() WHERE id = $2",
		status, id,
	)
	return err
}

func (r *sickLeaveRepository) UpdateDocumentURL(ctx context.Context, id uuid.UUID, documentURL string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE sick_leaves SET document_url = $1, updated_at = NOW() WHERE id = $2",
		documentURL, id,
	)
	return err
}

func (r *sickLeaveRepository) CountByStatus(ctx context.Context, status model.LeaveStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sick_leaves WHERE status = $1", status,
	).Scan(&count)
	return count, err
}
