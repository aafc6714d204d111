package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/repository"
	"github.com/google/uuid"
)

// --- MockStudentRepository ---
// Compile-time check to ensure MockStudentRepository implements StudentRepository
var _ repository.StudentRepository = (*MockStudentRepository)(nil)

type MockStudentRepository struct {
	FindAllFunc                func(ctx context.Context, filter model.StudentFilter) ([]*model.Student, int64, error)
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*model.Student, error)
	CreateWithRecordNumberFunc func(ctx context.Context, student *model.Student, institutionID string) error
	UpdateFunc                 func(ctx context.Context, student *model.Student) error
	CountFunc                  func(ctx context.Context) (int, error)

	CreateCallCount int32
	UpdateCallCount int32
}

func (m *MockStudentRepository) FindAll(ctx context.Context, filter model.StudentFilter) ([]*model.Student, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockStudentRepository) CreateWithRecordNumber(ctx context.Context, student *model.Student, institutionID string) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateWithRecordNumberFunc != nil {
		return m.CreateWithRecordNumberFunc(ctx, student, institutionID)
	}
	return nil
}

func (m *MockStudentRepository) Update(ctx context.Context, student *model.Student) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, student)
	}
	return nil
}

func (m *MockStudentRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// --- MockMedicalRecordRepository ---
var _ repository.MedicalRecordRepository = (*MockMedicalRecordRepository)(nil)

type MockMedicalRecordRepository struct {
	FindByStudentIDFunc         func(ctx context.Context, studentID uuid.UUID) ([]*model.MedicalRecord, error)
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error)
	CreateFunc                  func(ctx context.Context, record *model.MedicalRecord) error
	CountByDateRangeFunc        func(ctx context.Context, from, to time.Time) (int, error)
	TopDiagnosesByDateRangeFunc func(ctx context.Context, from, to time.Time, limit int) ([]model.IllnessCount, error)

	CreateCallCount int32
}

func (m *MockMedicalRecordRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]*model.MedicalRecord, error) {
	if m.FindByStudentIDFunc != nil {
		return m.FindByStudentIDFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *MockMedicalRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockMedicalRecordRepository) CountByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	if m.CountByDateRangeFunc != nil {
		return m.CountByDateRangeFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *MockMedicalRecordRepository) TopDiagnosesByDateRange(ctx context.Context, from, to time.Time, limit int) ([]model.IllnessCount, error) {
	if m.TopDiagnosesByDateRangeFunc != nil {
		return m.TopDiagnosesByDateRangeFunc(ctx, from, to, limit)
	}
	return nil, nil
}

// --- MockSickLeaveRepository ---
var _ repository.SickLeaveRepository = (*MockSickLeaveRepository)(nil)

type MockSickLeaveRepository struct {
	FindAllFunc           func(ctx context.Context, filter model.SickLeaveFilter) ([]*model.SickLeave, int64, error)
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*model.SickLeave, error)
	FindByVerifyTokenFunc func(ctx context.Context, token string) (*model.SickLeave, error)
	CreateFunc            func(ctx context.Context, leave *model.SickLeave) error
	UpdateStatusFunc      func(ctx context.Context, id uuid.UUID, status model.LeaveStatus) error
	UpdateDocumentURLFunc func(ctx context.Context, id uuid.UUID, documentURL string) error
	CountByStatusFunc     func(ctx context.Context, status model.LeaveStatus) (int, error)

	CreateCallCount       int32
	UpdateStatusCallCount int32
}

func (m *MockSickLeaveRepository) FindAll(ctx context.Context, filter model.SickLeaveFilter) ([]*model.SickLeave, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockSickLeaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SickLeave, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockSickLeaveRepository) FindByVerifyToken(ctx context.Context, token string) (*model.SickLeave, error) {
	if m.FindByVerifyTokenFunc != nil {
		return m.FindByVerifyTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockSickLeaveRepository) Create(ctx context.Context, leave *model.SickLeave) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, leave)
	}
	return nil
}

func (m *MockSickLeaveRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.LeaveStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockSickLeaveRepository) UpdateDocumentURL(ctx context.Context, id uuid.UUID, documentURL string) error {
	if m.UpdateDocumentURLFunc != nil {
		return m.UpdateDocumentURLFunc(ctx, id, documentURL)
	}
	return nil
}

func (m *MockSickLeaveRepository) CountByStatus(ctx context.Context, status model.LeaveStatus) (int, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

// --- MockMedicineRepository ---
var _ repository.MedicineRepository = (*MockMedicineRepository)(nil)

type MockMedicineRepository struct {
	FindAllFunc          func(ctx context.Context, filter model.MedicineFilter) ([]*model.Medicine, int64, error)
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*model.Medicine, error)
	CreateFunc           func(ctx context.Context, medicine *model.Medicine) error
	UpdateFunc           func(ctx context.Context, medicine *model.Medicine) error
	ApplyTransactionFunc func(ctx context.Context, trans *model.MedicineTransaction, delta int) (int, error)
	FindTransactionsFunc func(ctx context.Context, limit int) ([]*model.MedicineTransaction, error)

	ApplyTransactionCallCount int32
}

func (m *MockMedicineRepository) FindAll(ctx context.Context, filter model.MedicineFilter) ([]*model.Medicine, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockMedicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockMedicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, medicine)
	}
	return nil
}

func (m *MockMedicineRepository) Update(ctx context.Context, medicine *model.Medicine) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, medicine)
	}
	return nil
}

func (m *MockMedicineRepository) ApplyTransaction(ctx context.Context, trans *model.MedicineTransaction, delta int) (int, error) {
	atomic.AddInt32(&m.ApplyTransactionCallCount, 1)
	if m.ApplyTransactionFunc != nil {
		return m.ApplyTransactionFunc(ctx, trans, delta)
	}
	return 0, nil
}

func (m *MockMedicineRepository) FindTransactions(ctx context.Context, limit int) ([]*model.MedicineTransaction, error) {
	if m.FindTransactionsFunc != nil {
		return m.FindTransactionsFunc(ctx, limit)
	}
	return nil, nil
}
