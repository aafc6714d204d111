package service

import (
	"context"
	"errors"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/repository"
	"github.com/dmchealth/student-health-clinic/internal/response"
	"github.com/google/uuid"
)

var (
	ErrStudentNotFound      = errors.New("data mahasiswa tidak ditemukan")
	ErrRecordNumberConflict = errors.New("nomor rekam medis sudah terdaftar, silakan coba lagi")
	ErrInvalidBirthDate     = errors.New("format tanggal lahir tidak valid, gunakan YYYY-MM-DD")
)

type StudentService interface {
	GetAll(ctx context.Context, filter model.StudentFilter) ([]*model.Student, *response.Pagination, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Register(ctx context.Context, req model.RegisterStudentRequest) (*model.Student, error)
	Update(ctx context.Context, id string, req model.UpdateStudentRequest) (*model.Student, error)
}

type studentService struct {
	repo          repository.StudentRepository
	institutionID string
}

func NewStudentService(repo repository.StudentRepository, institutionID string) StudentService {
	return &studentService{repo: repo, institutionID: institutionID}
}

func (s *studentService) GetAll(ctx context.Context, filter model.StudentFilter) ([]*model.Student, *response.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	students, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int(total) / filter.PerPage
	if int(total)%filter.PerPage > 0 {
		totalPages++
	}

	pagination := &response.Pagination{
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}

	return students, pagination, nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("ID tidak valid")
	}

	student, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	return student, nil
}

func (s *studentService) Register(ctx context.Context, req model.RegisterStudentRequest) (*model.Student, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	student := &model.Student{
		ID:               uuid.New(),
		FullName:         req.FullName,
		BirthDate:        birthDate,
		Gender:           req.Gender,
		Grade:            req.Grade,
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Email:            req.Email,
		Address:          req.Address,
	}

	// Nomor rekam medis di-generate di dalam transaksi repository
	if err := s.repo.CreateWithRecordNumber(ctx, student, s.institutionID); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecordNumber) {
			return nil, ErrRecordNumberConflict
		}
		return nil, err
	}

	return student, nil
}

func (s *studentService) Update(ctx context.Context, id string, req model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Merge: hanya field yang dikirim yang diubah
	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.BirthDate != nil {
		t, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, ErrInvalidBirthDate
		}
		student.BirthDate = t
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.BloodType != nil {
		student.BloodType = req.BloodType
	}
	if req.Allergies != nil {
		student.Allergies = req.Allergies
	}
	if req.EmergencyContact != nil {
		student.EmergencyContact = *req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		student.EmergencyPhone = *req.EmergencyPhone
	}
	if req.Email != nil {
		student.Email = req.Email
	}
	if req.Address != nil {
		student.Address = req.Address
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}
