package service

import (
	"context"
	"errors"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/repository"
)

var ErrInvalidMonth = errors.New("bulan harus di antara 1 dan 12")

type ReportService interface {
	MonthlyStatistics(ctx context.Context, month, year int) (*model.MonthlyStatistics, error)
}

type reportService struct {
	recordRepo  repository.MedicalRecordRepository
	studentRepo repository.StudentRepository
	leaveRepo   repository.SickLeaveRepository
}

func NewReportService(
	recordRepo repository.MedicalRecordRepository,
	studentRepo repository.StudentRepository,
	leaveRepo repository.SickLeaveRepository,
) ReportService {
	return &reportService{
		recordRepo:  recordRepo,
		studentRepo: studentRepo,
		leaveRepo:   leaveRepo,
	}
}

// MonthlyStatistics merangkum kunjungan dan diagnosis terbanyak untuk satu
// bulan kalender. totalStudents dan activeSickLeaves dihitung global, tidak
// dibatasi bulan.
func (s *reportService) MonthlyStatistics(ctx context.Context, month, year int) (*model.MonthlyStatistics, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	if year < 1900 || year > 2200 {
		return nil, errors.New("tahun tidak valid")
	}

	// Rentang [awal bulan, awal bulan berikutnya); time.Date menormalkan
	// bulan 13 menjadi Januari tahun berikutnya.
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)

	totalVisits, err := s.recordRepo.CountByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	topIllnesses, err := s.recordRepo.TopDiagnosesByDateRange(ctx, from, to, 10)
	if err != nil {
		return nil, err
	}
	if topIllnesses == nil {
		topIllnesses = []model.IllnessCount{}
	}

	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	activeSickLeaves, err := s.leaveRepo.CountByStatus(ctx, model.LeaveStatusPending)
	if err != nil {
		return nil, err
	}

	return &model.MonthlyStatistics{
		Month:            month,
		Year:             year,
		TotalVisits:      totalVisits,
		TotalStudents:    totalStudents,
		ActiveSickLeaves: activeSickLeaves,
		TopIllnesses:     topIllnesses,
	}, nil
}
