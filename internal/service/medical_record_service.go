package service

import (
	"context"
	"errors"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/config"
	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/repository"
	"github.com/dmchealth/student-health-clinic/internal/utils"
	"github.com/google/uuid"
)

var (
	ErrRecordNotFound     = errors.New("rekam medis tidak ditemukan")
	ErrInvalidCheckUpDate = errors.New("format tanggal periksa tidak valid, gunakan YYYY-MM-DD")
)

type MedicalRecordService interface {
	GetByStudent(ctx context.Context, studentID string) ([]*model.MedicalRecord, error)
	Create(ctx context.Context, req model.CreateMedicalRecordRequest, createdBy string) (*model.MedicalRecord, error)
	PermissionLetterPDF(ctx context.Context, recordID string) ([]byte, string, error)
}

type medicalRecordService struct {
	repo        repository.MedicalRecordRepository
	studentRepo repository.StudentRepository
	clinic      config.ClinicConfig
}

func NewMedicalRecordService(
	repo repository.MedicalRecordRepository,
	studentRepo repository.StudentRepository,
	clinic config.ClinicConfig,
) MedicalRecordService {
	return &medicalRecordService{repo: repo, studentRepo: studentRepo, clinic: clinic}
}

func (s *medicalRecordService) GetByStudent(ctx context.Context, studentID string) ([]*model.MedicalRecord, error) {
	uid, err := uuid.Parse(studentID)
	if err != nil {
		return nil, errors.New("student_id tidak valid")
	}

	student, err := s.studentRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	return s.repo.FindByStudentID(ctx, uid)
}

func (s *medicalRecordService) Create(ctx context.Context, req model.CreateMedicalRecordRequest, createdBy string) (*model.MedicalRecord, error) {
	studentUID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, errors.New("student_id tidak valid")
	}

	// Selalu validasi mahasiswa ada, jangan percaya caller
	student, err := s.studentRepo.FindByID(ctx, studentUID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	// Tanggal periksa default hari ini
	checkUpDate := time.Now()
	if req.CheckUpDate != "" {
		t, err := time.Parse("2006-01-02", req.CheckUpDate)
		if err != nil {
			return nil, ErrInvalidCheckUpDate
		}
		checkUpDate = t
	}

	record := &model.MedicalRecord{
		ID:           uuid.New(),
		StudentID:    studentUID,
		CheckUpDate:  checkUpDate,
		Diagnosis:    req.Diagnosis,
		Symptoms:     req.Symptoms,
		Treatment:    req.Treatment,
		MedicineName: req.MedicineName,
		Dosage:       req.Dosage,
		DoctorNotes:  req.DoctorNotes,
		NeedsLetter:  req.NeedsLetter,
	}

	if uid, err := uuid.Parse(createdBy); err == nil {
		record.CreatedBy = &uid
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// PermissionLetterPDF merender surat izin dari rekam medis + data mahasiswa.
// Murni baca: tidak ada side effect ke storage. Mengembalikan bytes PDF dan
// nama file yang disarankan.
func (s *medicalRecordService) PermissionLetterPDF(ctx context.Context, recordID string) ([]byte, string, error) {
	uid, err := uuid.Parse(recordID)
	if err != nil {
		return nil, "", errors.New("ID tidak valid")
	}

	record, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, "", err
	}
	if record == nil {
		return nil, "", ErrRecordNotFound
	}

	student, err := s.studentRepo.FindByID(ctx, record.StudentID)
	if err != nil {
		return nil, "", err
	}
	if student == nil {
		return nil, "", ErrStudentNotFound
	}

	pdfBytes, err := utils.GeneratePermissionLetterPDF(utils.PermissionLetterData{
		Letterhead: utils.ClinicLetterhead{
			ClinicName:    s.clinic.Name,
			ClinicAddress: s.clinic.Address,
			HeadName:      s.clinic.HeadName,
			HeadNIP:       s.clinic.HeadNIP,
		},
		Student: utils.LetterStudent{
			FullName:     student.FullName,
			RecordNumber: student.MedicalRecordNumber,
			Grade:        student.Grade,
			BirthDate:    utils.FormatDateID(student.BirthDate),
		},
		VisitDate: record.CheckUpDate,
		Diagnosis: record.Diagnosis,
		Treatment: record.Treatment,
		IssuedAt:  time.Now(),
	})
	if err != nil {
		return nil, "", err
	}

	fileName := "surat-izin-" + student.MedicalRecordNumber
	return pdfBytes, fileName, nil
}
