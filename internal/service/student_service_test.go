package service

import (
	"context"
	"testing"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/repository"
	"github.com/dmchealth/student-health-clinic/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() model.RegisterStudentRequest {
	return model.RegisterStudentRequest{
		FullName:         "Budi Santoso",
		BirthDate:        "2003-04-17",
		Gender:           "L",
		Grade:            "TI-2022",
		EmergencyContact: "Ibu Sari",
		EmergencyPhone:   "+62 812-3456-7890",
	}
}

func TestRegisterStudent_Success(t *testing.T) {
	mockRepo := &MockStudentRepository{
		CreateWithRecordNumberFunc: func(ctx context.Context, student *model.Student, institutionID string) error {
			// Repository mengisi nomor rekam medis di dalam transaksi
			student.MedicalRecordNumber = utils.FormatRecordNumber(institutionID, 4)
			return nil
		},
	}
	svc := NewStudentService(mockRepo, "A1")

	student, err := svc.Register(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	assert.Equal(t, "A1 -- 4", student.MedicalRecordNumber)
	assert.Equal(t, "Budi Santoso", student.FullName)
	assert.Equal(t, 2003, student.BirthDate.Year())
	assert.EqualValues(t, 1, mockRepo.CreateCallCount)
}

func TestRegisterStudent_InvalidBirthDate(t *testing.T) {
	mockRepo := &MockStudentRepository{}
	svc := NewStudentService(mockRepo, "DMC")

	req := validRegisterRequest()
	req.BirthDate = "17-04-2003"

	_, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidBirthDate)
	assert.EqualValues(t, 0, mockRepo.CreateCallCount)
}

func TestRegisterStudent_DuplicateRecordNumber(t *testing.T) {
	mockRepo := &MockStudentRepository{
		CreateWithRecordNumberFunc: func(ctx context.Context, student *model.Student, institutionID string) error {
			return repository.ErrDuplicateRecordNumber
		},
	}
	svc := NewStudentService(mockRepo, "DMC")

	_, err := svc.Register(context.Background(), validRegisterRequest())

	assert.ErrorIs(t, err, ErrRecordNumberConflict)
}

func TestGetStudentByID_NotFound(t *testing.T) {
	mockRepo := &MockStudentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Student, error) {
			return nil, nil
		},
	}
	svc := NewStudentService(mockRepo, "DMC")

	_, err := svc.GetByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestGetStudentByID_InvalidID(t *testing.T) {
	svc := NewStudentService(&MockStudentRepository{}, "DMC")

	_, err := svc.GetByID(context.Background(), "bukan-uuid")

	assert.Error(t, err)
}

func TestUpdateStudent_PartialMerge(t *testing.T) {
	existing := &model.Student{
		ID:                  uuid.New(),
		FullName:            "Budi Santoso",
		MedicalRecordNumber: "DMC -- 7",
		Gender:              "L",
		Grade:               "TI-2022",
		EmergencyContact:    "Ibu Sari",
		EmergencyPhone:      "081234567890",
	}
	mockRepo := &MockStudentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Student, error) {
			return existing, nil
		},
	}
	svc := NewStudentService(mockRepo, "DMC")

	newGrade := "TI-2023"
	updated, err := svc.Update(context.Background(), existing.ID.String(), model.UpdateStudentRequest{
		Grade: &newGrade,
	})

	require.NoError(t, err)
	assert.Equal(t, "TI-2023", updated.Grade)
	// Field yang tidak dikirim tidak berubah
	assert.Equal(t, "Budi Santoso", updated.FullName)
	assert.Equal(t, "DMC -- 7", updated.MedicalRecordNumber)
	assert.EqualValues(t, 1, mockRepo.UpdateCallCount)
}

func TestGetAllStudents_Pagination(t *testing.T) {
	mockRepo := &MockStudentRepository{
		FindAllFunc: func(ctx context.Context, filter model.StudentFilter) ([]*model.Student, int64, error) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 10, filter.PerPage)
			return []*model.Student{{FullName: "Budi Santoso"}}, 25, nil
		},
	}
	svc := NewStudentService(mockRepo, "DMC")

	students, pagination, err := svc.GetAll(context.Background(), model.StudentFilter{})

	require.NoError(t, err)
	assert.Len(t, students, 1)
	assert.EqualValues(t, 25, pagination.TotalItems)
	assert.Equal(t, 3, pagination.TotalPages)
}
