package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord adalah catatan satu kali kunjungan. Setelah dibuat tidak pernah
// diubah, jadi tidak ada kolom updated_at.
type MedicalRecord struct {
	ID           uuid.UUID  `db:"id"            json:"id"`
	StudentID    uuid.UUID  `db:"student_id"    json:"student_id"`
	CheckUpDate  time.Time  `db:"check_up_date" json:"check_up_date"`
	Diagnosis    string     `db:"diagnosis"     json:"diagnosis"`
	Symptoms     string     `db:"symptoms"      json:"symptoms"`
	Treatment    string     `db:"treatment"     json:"treatment"`
	MedicineName *string    `db:"medicine_name" json:"medicine_name"`
	Dosage       *string    `db:"dosage"        json:"dosage"`
	DoctorNotes  *string    `db:"doctor_notes"  json:"doctor_notes"`
	NeedsLetter  bool       `db:"needs_letter"  json:"needs_letter"`
	CreatedBy    *uuid.UUID `db:"created_by"    json:"created_by"`
	CreatedAt    time.Time  `db:"created_at"    json:"created_at"`

	// Join fields
	StudentName   *string `db:"student_name"   json:"student_name,omitempty"`
	StudentNumber *string `db:"student_number" json:"student_number,omitempty"`
}

type CreateMedicalRecordRequest struct {
	StudentID    string  `json:"student_id"`
	CheckUpDate  string  `json:"check_up_date"` // format: YYYY-MM-DD, default hari ini
	Diagnosis    string  `json:"diagnosis"`
	Symptoms     string  `json:"symptoms"`
	Treatment    string  `json:"treatment"`
	MedicineName *string `json:"medicine_name"`
	Dosage       *string `json:"dosage"`
	DoctorNotes  *string `json:"doctor_notes"`
	NeedsLetter  bool    `json:"needs_letter"`
}
