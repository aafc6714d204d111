package model

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID                  uuid.UUID  `db:"id"                    json:"id"`
	FullName            string     `db:"full_name"             json:"full_name"`
	MedicalRecordNumber string     `db:"medical_record_number" json:"medical_record_number"`
	BirthDate           time.Time  `db:"birth_date"            json:"birth_date"`
	Gender              string     `db:"gender"                json:"gender"` // L | P
	Grade               string     `db:"grade"                 json:"grade"`
	BloodType           *string    `db:"blood_type"            json:"blood_type"`
	Allergies           *string    `db:"allergies"             json:"allergies"`
	EmergencyContact    string     `db:"emergency_contact"     json:"emergency_contact"`
	EmergencyPhone      string     `db:"emergency_phone"       json:"emergency_phone"`
	Email               *string    `db:"email"                 json:"email"`
	Address             *string    `db:"address"               json:"address"`
	CreatedAt           time.Time  `db:"created_at"            json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"            json:"updated_at"`
}

type RegisterStudentRequest struct {
	FullName         string  `json:"full_name"`
	BirthDate        string  `json:"birth_date"` // format: YYYY-MM-DD
	Gender           string  `json:"gender"`     // L | P
	Grade            string  `json:"grade"`
	BloodType        *string `json:"blood_type"`
	Allergies        *string `json:"allergies"`
	EmergencyContact string  `json:"emergency_contact"`
	EmergencyPhone   string  `json:"emergency_phone"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
}

// UpdateStudentRequest berisi field opsional: hanya yang non-nil yang di-merge
type UpdateStudentRequest struct {
	FullName         *string `json:"full_name"`
	BirthDate        *string `json:"birth_date"`
	Gender           *string `json:"gender"`
	Grade            *string `json:"grade"`
	BloodType        *string `json:"blood_type"`
	Allergies        *string `json:"allergies"`
	EmergencyContact *string `json:"emergency_contact"`
	EmergencyPhone   *string `json:"emergency_phone"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
}

type StudentFilter struct {
	Search  string
	Grade   string
	Page    int
	PerPage int
}
