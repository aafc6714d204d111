package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/config"
	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMedicalRecord_StudentNotFound(t *testing.T) {
	mockStudents := &MockStudentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Student, error) {
			return nil, nil
		},
	}
	mockRecords := &MockMedicalRecordRepository{}
	svc := NewMedicalRecordService(mockRecords, mockStudents, config.ClinicConfig{})

	_, err := svc.Create(context.Background(), model.CreateMedicalRecordRequest{
		StudentID: uuid.NewString(),
		Diagnosis: "Flu",
		Symptoms:  "Demam, pilek",
		Treatment: "Istirahat",
	}, uuid.NewString())

	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.EqualValues(t, 0, mockRecords.CreateCallCount)
}

func TestCreateMedicalRecord_DefaultsCheckUpDateToToday(t *testing.T) {
	student := &model.Student{ID: uuid.New()}
	var created *model.MedicalRecord

	mockStudents := &MockStudentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Student, error) {
			return student, nil
		},
	}
	mockRecords := &MockMedicalRecordRepository{
		CreateFunc: func(ctx context.Context, record *model.MedicalRecord) error {
			created = record
			return nil
		},
	}
	svc := NewMedicalRecordService(mockRecords, mockStudents, config.ClinicConfig{})

	before := time.Now()
	record, err := svc.Create(context.Background(), model.CreateMedicalRecordRequest{
		StudentID: student.ID.String(),
		Diagnosis: "Flu",
		Symptoms:  "Demam, pilek",
		Treatment: "Istirahat dan banyak minum",
	}, uuid.NewString())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, record.CheckUpDate.Before(before))
	assert.False(t, record.CheckUpDate.After(time.Now()))
}

func TestCreateMedicalRecord_ExplicitCheckUpDate(t *testing.T) {
	student := &model.Student{ID: uuid.New()}
	mockStudents := &MockStudentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Student, error) {
			return student, nil
		},
	}
	svc := NewMedicalRecordService(&MockMedicalRecordRepository{}, mockStudents, config.ClinicConfig{})

	record, err := svc.Create(context.Background(), model.CreateMedicalRecordRequest{
		StudentID:   student.ID.String(),
		CheckUpDate: "2025-03-05",
		Diagnosis:   "Flu",
		Symptoms:    "Demam",
		Treatment:   "Istirahat",
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 2025, record.CheckUpDate.Year())
	assert.Equal(t, time.March, record.CheckUpDate.Month())
	assert.Equal(t, 5, record.CheckUpDate.Day())
}

func TestCreateMedicalRecord_InvalidCheckUpDate(t *testing.T) {
	student := &model.Student{ID: uuid.New()}
	mockStudents := &MockStudentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Student, error) {
			return student, nil
		},
	}
	svc := NewMedicalRecordService(&MockMedicalRecordRepository{}, mockStudents, config.ClinicConfig{})

	_, err := svc.Create(context.Background(), model.CreateMedicalRecordRequest{
		StudentID:   student.ID.String(),
		CheckUpDate: "05/03/2025",
		Diagnosis:   "Flu",
		Symptoms:    "Demam",
		Treatment:   "Istirahat",
	}, uuid.NewString())

	assert.ErrorIs(t, err, ErrInvalidCheckUpDate)
}

func TestPermissionLetterPDF_RecordNotFound(t *testing.T) {
	mockRecords := &MockMedicalRecordRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
			return nil, nil
		},
	}
	svc := NewMedicalRecordService(mockRecords, &MockStudentRepository{}, config.ClinicConfig{})

	_, _, err := svc.PermissionLetterPDF(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPermissionLetterPDF_Success(t *testing.T) {
	student := &model.Student{
		ID:                  uuid.New(),
		FullName:            "Budi Santoso",
		MedicalRecordNumber: "DMC -- 4",
		BirthDate:           time.Date(2003, 4, 17, 0, 0, 0, 0, time.UTC),
		Grade:               "TI-2022",
	}
	record := &model.MedicalRecord{
		ID:          uuid.New(),
		StudentID:   student.ID,
		CheckUpDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Diagnosis:   "Flu",
		Treatment:   "Istirahat",
	}
	mockRecords := &MockMedicalRecordRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
			return record, nil
		},
	}
	mockStudents := &MockStudentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Student, error) {
			return student, nil
		},
	}
	svc := NewMedicalRecordService(mockRecords, mockStudents, config.ClinicConfig{
		Name:    "Klinik Kampus DMC",
		Address: "Jl. Pendidikan No. 1",
	})

	pdfBytes, fileName, err := svc.PermissionLetterPDF(context.Background(), record.ID.String())

	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "surat-izin-DMC -- 4", fileName)
}

func TestGetRecordsByStudent_ValidatesStudent(t *testing.T) {
	mockStudents := &MockStudentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Student, error) {
			return nil, nil
		},
	}
	svc := NewMedicalRecordService(&MockMedicalRecordRepository{}, mockStudents, config.ClinicConfig{})

	_, err := svc.GetByStudent(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrStudentNotFound)
}
