package model

import (
	"time"

	"github.com/google/uuid"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// IsTerminal: approved dan rejected adalah status akhir, tidak bisa diubah lagi
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

func (s LeaveStatus) IsValid() bool {
	return s == LeaveStatusPending || s == LeaveStatusApproved || s == LeaveStatusRejected
}

type SickLeave struct {
	ID          uuid.UUID   `db:"id"           json:"id"`
	StudentID   uuid.UUID   `db:"student_id"   json:"student_id"`
	StartDate   time.Time   `db:"start_date"   json:"start_date"`
	EndDate     time.Time   `db:"end_date"     json:"end_date"`
	Reason      string      `db:"reason"       json:"reason"`
	Notes       *string     `db:"notes"        json:"notes"`
	Status      LeaveStatus `db:"status"       json:"status"`
	VerifyToken string      `db:"verify_token" json:"-"`
	DocumentURL *string     `db:"document_url" json:"document_url"`
	CreatedBy   *uuid.UUID  `db:"created_by"   json:"created_by"`
	CreatedAt   time.Time   `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"   json:"updated_at"`

	// Join fields
	StudentName   *string `db:"student_name"   json:"student_name,omitempty"`
	StudentNumber *string `db:"student_number" json:"student_number,omitempty"`
}

// DurationDays menghitung lama izin dalam hari, inklusif kedua ujung
func (l *SickLeave) DurationDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

type CreateSickLeaveRequest struct {
	StudentID string  `json:"student_id"`
	StartDate string  `json:"start_date"` // format: YYYY-MM-DD
	EndDate   string  `json:"end_date"`
	Reason    string  `json:"reason"`
	Notes     *string `json:"notes"`
}

type TransitionSickLeaveRequest struct {
	Status LeaveStatus `json:"status"`
}

type SickLeaveFilter struct {
	Status  string
	Page    int
	PerPage int
}

// VerifyLeaveResponse untuk endpoint publik verifikasi QR surat keterangan sakit
type VerifyLeaveResponse struct {
	IsValid bool       `json:"is_valid"`
	Leave   *SickLeave `json:"leave,omitempty"`
	Student *Student   `json:"student,omitempty"`
	Message string     `json:"message"`
}
