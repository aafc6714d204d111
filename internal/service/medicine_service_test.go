package service

import (
	"context"
	"testing"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTransaction_StockIn(t *testing.T) {
	medicineID := uuid.New()
	mockRepo := &MockMedicineRepository{
		ApplyTransactionFunc: func(ctx context.Context, trans *model.MedicineTransaction, delta int) (int, error) {
			assert.Equal(t, 20, delta)
			assert.Equal(t, model.TransactionIn, trans.Type)
			assert.Equal(t, 20, trans.Quantity)
			return 70, nil
		},
	}
	svc := NewMedicineService(mockRepo)

	result, err := svc.RecordTransaction(context.Background(), model.CreateTransactionRequest{
		MedicineID: medicineID.String(),
		Type:       model.TransactionIn,
		Quantity:   20,
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 70, result.NewStock)
	assert.Equal(t, medicineID, result.Transaction.MedicineID)
	assert.EqualValues(t, 1, mockRepo.ApplyTransactionCallCount)
}

func TestRecordTransaction_StockOutUsesNegativeDelta(t *testing.T) {
	mockRepo := &MockMedicineRepository{
		ApplyTransactionFunc: func(ctx context.Context, trans *model.MedicineTransaction, delta int) (int, error) {
			assert.Equal(t, -5, delta)
			// Jumlah di ledger tetap positif, arah ada di kolom type
			assert.Equal(t, 5, trans.Quantity)
			return 45, nil
		},
	}
	svc := NewMedicineService(mockRepo)

	result, err := svc.RecordTransaction(context.Background(), model.CreateTransactionRequest{
		MedicineID: uuid.NewString(),
		Type:       model.TransactionOut,
		Quantity:   5,
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 45, result.NewStock)
}

func TestRecordTransaction_InsufficientStock(t *testing.T) {
	mockRepo := &MockMedicineRepository{
		ApplyTransactionFunc: func(ctx context.Context, trans *model.MedicineTransaction, delta int) (int, error) {
			return 0, repository.ErrInsufficientStock
		},
	}
	svc := NewMedicineService(mockRepo)

	_, err := svc.RecordTransaction(context.Background(), model.CreateTransactionRequest{
		MedicineID: uuid.NewString(),
		Type:       model.TransactionOut,
		Quantity:   100,
	}, uuid.NewString())

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestRecordTransaction_MedicineNotFound(t *testing.T) {
	mockRepo := &MockMedicineRepository{
		ApplyTransactionFunc: func(ctx context.Context, trans *model.MedicineTransaction, delta int) (int, error) {
			return 0, repository.ErrMedicineGone
		},
	}
	svc := NewMedicineService(mockRepo)

	_, err := svc.RecordTransaction(context.Background(), model.CreateTransactionRequest{
		MedicineID: uuid.NewString(),
		Type:       model.TransactionOut,
		Quantity:   1,
	}, uuid.NewString())

	assert.ErrorIs(t, err, ErrMedicineNotFound)
}

func TestRecordTransaction_InvalidType(t *testing.T) {
	mockRepo := &MockMedicineRepository{}
	svc := NewMedicineService(mockRepo)

	_, err := svc.RecordTransaction(context.Background(), model.CreateTransactionRequest{
		MedicineID: uuid.NewString(),
		Type:       "transfer",
		Quantity:   1,
	}, uuid.NewString())

	assert.ErrorIs(t, err, ErrInvalidTransaction)
	assert.EqualValues(t, 0, mockRepo.ApplyTransactionCallCount)
}

func TestRecordTransaction_ZeroQuantity(t *testing.T) {
	mockRepo := &MockMedicineRepository{}
	svc := NewMedicineService(mockRepo)

	_, err := svc.RecordTransaction(context.Background(), model.CreateTransactionRequest{
		MedicineID: uuid.NewString(),
		Type:       model.TransactionIn,
		Quantity:   0,
	}, uuid.NewString())

	assert.Error(t, err)
	assert.EqualValues(t, 0, mockRepo.ApplyTransactionCallCount)
}

func TestCreateMedicine_InvalidExpiryDate(t *testing.T) {
	svc := NewMedicineService(&MockMedicineRepository{})

	_, err := svc.Create(context.Background(), model.CreateMedicineRequest{
		Name:       "Paracetamol",
		Unit:       "tablets",
		Stock:      50,
		ExpiryDate: "31/12/2026",
	})

	assert.ErrorIs(t, err, ErrInvalidExpiryDate)
}

func TestCreateMedicine_Success(t *testing.T) {
	var created *model.Medicine
	mockRepo := &MockMedicineRepository{
		CreateFunc: func(ctx context.Context, medicine *model.Medicine) error {
			created = medicine
			return nil
		},
	}
	svc := NewMedicineService(mockRepo)

	medicine, err := svc.Create(context.Background(), model.CreateMedicineRequest{
		Name:         "Paracetamol 500mg",
		Unit:         "tablets",
		Stock:        100,
		MinimumStock: 20,
		ExpiryDate:   "2026-12-31",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Paracetamol 500mg", medicine.Name)
	assert.Equal(t, 100, medicine.Stock)
	require.NotNil(t, medicine.ExpiryDate)
	assert.Equal(t, 2026, medicine.ExpiryDate.Year())
}

func TestUpdateMedicine_StockUntouched(t *testing.T) {
	existing := &model.Medicine{
		ID:           uuid.New(),
		Name:         "Paracetamol 500mg",
		Stock:        80,
		Unit:         "tablets",
		MinimumStock: 20,
	}
	mockRepo := &MockMedicineRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
			return existing, nil
		},
	}
	svc := NewMedicineService(mockRepo)

	newMin := 30
	updated, err := svc.Update(context.Background(), existing.ID.String(), model.UpdateMedicineRequest{
		MinimumStock: &newMin,
	})

	require.NoError(t, err)
	assert.Equal(t, 30, updated.MinimumStock)
	assert.Equal(t, 80, updated.Stock)
}

func TestMedicineIsLowStock(t *testing.T) {
	m := &model.Medicine{Stock: 20, MinimumStock: 20}
	assert.True(t, m.IsLowStock())

	m.Stock = 21
	assert.False(t, m.IsLowStock())
}
