package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyStatistics_MarchWindow(t *testing.T) {
	mockRecords := &MockMedicalRecordRepository{
		CountByDateRangeFunc: func(ctx context.Context, from, to time.Time) (int, error) {
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), to)
			return 3, nil
		},
		TopDiagnosesByDateRangeFunc: func(ctx context.Context, from, to time.Time, limit int) ([]model.IllnessCount, error) {
			assert.Equal(t, 10, limit)
			return []model.IllnessCount{
				{Name: "Flu", Count: 2},
				{Name: "Cold", Count: 1},
			}, nil
		},
	}
	mockStudents := &MockStudentRepository{
		CountFunc: func(ctx context.Context) (int, error) { return 120, nil },
	}
	mockLeaves := &MockSickLeaveRepository{
		CountByStatusFunc: func(ctx context.Context, status model.LeaveStatus) (int, error) {
			assert.Equal(t, model.LeaveStatusPending, status)
			return 2, nil
		},
	}
	svc := NewReportService(mockRecords, mockStudents, mockLeaves)

	stats, err := svc.MonthlyStatistics(context.Background(), 3, 2025)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Month)
	assert.Equal(t, 2025, stats.Year)
	assert.Equal(t, 3, stats.TotalVisits)
	assert.Equal(t, 120, stats.TotalStudents)
	assert.Equal(t, 2, stats.ActiveSickLeaves)
	require.Len(t, stats.TopIllnesses, 2)
	assert.Equal(t, "Flu", stats.TopIllnesses[0].Name)
	assert.Equal(t, 2, stats.TopIllnesses[0].Count)
}

func TestMonthlyStatistics_DecemberWrapsToJanuary(t *testing.T) {
	mockRecords := &MockMedicalRecordRepository{
		CountByDateRangeFunc: func(ctx context.Context, from, to time.Time) (int, error) {
			assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to)
			return 0, nil
		},
	}
	svc := NewReportService(mockRecords, &MockStudentRepository{}, &MockSickLeaveRepository{})

	_, err := svc.MonthlyStatistics(context.Background(), 12, 2024)

	require.NoError(t, err)
}

func TestMonthlyStatistics_EmptyMonth(t *testing.T) {
	svc := NewReportService(&MockMedicalRecordRepository{}, &MockStudentRepository{}, &MockSickLeaveRepository{})

	stats, err := svc.MonthlyStatistics(context.Background(), 7, 2025)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalVisits)
	// Bulan kosong menghasilkan list kosong, bukan nil
	assert.NotNil(t, stats.TopIllnesses)
	assert.Empty(t, stats.TopIllnesses)
}

func TestMonthlyStatistics_InvalidMonth(t *testing.T) {
	svc := NewReportService(&MockMedicalRecordRepository{}, &MockStudentRepository{}, &MockSickLeaveRepository{})

	for _, month := range []int{0, 13, -1} {
		_, err := svc.MonthlyStatistics(context.Background(), month, 2025)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}
