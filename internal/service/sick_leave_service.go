package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/config"
	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/repository"
	"github.com/dmchealth/student-health-clinic/internal/response"
	"github.com/dmchealth/student-health-clinic/internal/utils"
	"github.com/google/uuid"
)

var (
	ErrLeaveNotFound       = errors.New("data izin sakit tidak ditemukan")
	ErrLeaveAlreadyDecided = errors.New("izin sakit sudah diputuskan dan tidak bisa diubah lagi")
	ErrInvalidLeaveStatus  = errors.New("status hanya bisa diubah ke approved atau rejected")
	ErrInvalidLeaveDates   = errors.New("tanggal selesai tidak boleh sebelum tanggal mulai")
	ErrLeaveNotApproved    = errors.New("surat keterangan hanya untuk izin yang sudah disetujui")
)

type SickLeaveService interface {
	GetAll(ctx context.Context, filter model.SickLeaveFilter) ([]*model.SickLeave, *response.Pagination, error)
	Create(ctx context.Context, req model.CreateSickLeaveRequest, createdBy string) (*model.SickLeave, error)
	Transition(ctx context.Context, id string, newStatus model.LeaveStatus) (*model.SickLeave, error)
	CertificatePDF(ctx context.Context, id string) ([]byte, string, error)
	Verify(ctx context.Context, token string) (*model.VerifyLeaveResponse, error)
}

type sickLeaveService struct {
	repo        repository.SickLeaveRepository
	studentRepo repository.StudentRepository
	storage     *utils.StorageService
	clinic      config.ClinicConfig
	baseURL     string
}

func NewSickLeaveService(
	repo repository.SickLeaveRepository,
	studentRepo repository.StudentRepository,
	storage *utils.StorageService,
	clinic config.ClinicConfig,
	baseURL string,
) SickLeaveService {
	return &sickLeaveService{
		repo: repo, studentRepo: studentRepo,
		storage: storage, clinic: clinic, baseURL: baseURL,
	}
}

func (s *sickLeaveService) GetAll(ctx context.Context, filter model.SickLeaveFilter) ([]*model.SickLeave, *response.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	leaves, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int(total) / filter.PerPage
	if int(total)%filter.PerPage > 0 {
		totalPages++
	}

	return leaves, &response.Pagination{
		Page: filter.Page, PerPage: filter.PerPage,
		TotalItems: total, TotalPages: totalPages,
	}, nil
}

func (s *sickLeaveService) Create(ctx context.Context, req model.CreateSickLeaveRequest, createdBy string) (*model.SickLeave, error) {
	studentUID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, errors.New("student_id tidak valid")
	}

	student, err := s.studentRepo.FindByID(ctx, studentUID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, errors.New("format tanggal mulai tidak valid, gunakan YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, errors.New("format tanggal selesai tidak valid, gunakan YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidLeaveDates
	}

	verifyToken, err := utils.GenerateVerifyToken()
	if err != nil {
		return nil, err
	}

	leave := &model.SickLeave{
		ID:          uuid.New(),
		StudentID:   studentUID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Notes:       req.Notes,
		Status:      model.LeaveStatusPending,
		VerifyToken: verifyToken,
	}

	if uid, err := uuid.Parse(createdBy); err == nil {
		leave.CreatedBy = &uid
	}

	if err := s.repo.Create(ctx, leave); err != nil {
		return nil, err
	}

	return leave, nil
}

// Transition hanya mengizinkan pending -> approved dan pending -> rejected.
// Status terminal ditolak eksplisit, bukan no-op diam-diam.
func (s *sickLeaveService) Transition(ctx context.Context, id string, newStatus model.LeaveStatus) (*model.SickLeave, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("ID tidak valid")
	}

	if newStatus != model.LeaveStatusApproved && newStatus != model.LeaveStatusRejected {
		return nil, ErrInvalidLeaveStatus
	}

	leave, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if leave == nil {
		return nil, ErrLeaveNotFound
	}
	if leave.Status.IsTerminal() {
		return nil, ErrLeaveAlreadyDecided
	}

	if err := s.repo.UpdateStatus(ctx, uid, newStatus); err != nil {
		return nil, err
	}
	leave.Status = newStatus

	// Arsipkan surat keterangan sakit di background setelah disetujui
	if newStatus == model.LeaveStatusApproved && s.storage != nil {
		go s.archiveCertificate(context.Background(), leave)
	}

	return leave, nil
}

func (s *sickLeaveService) archiveCertificate(ctx context.Context, leave *model.SickLeave) {
	pdfBytes, name, err := s.buildCertificate(ctx, leave)
	if err != nil {
		log.Printf("Gagal generate surat keterangan %s: %v", leave.ID, err)
		return
	}

	documentURL, err := s.storage.UploadPDF(ctx, "sick-leaves", pdfBytes, name)
	if err != nil {
		log.Printf("Gagal arsip surat keterangan %s: %v", leave.ID, err)
		return
	}

	if err := s.repo.UpdateDocumentURL(ctx, leave.ID, documentURL); err != nil {
		log.Printf("Gagal simpan URL dokumen %s: %v", leave.ID, err)
	}
}

func (s *sickLeaveService) CertificatePDF(ctx context.Context, id string) ([]byte, string, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, "", errors.New("ID tidak valid")
	}

	leave, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, "", err
	}
	if leave == nil {
		return nil, "", ErrLeaveNotFound
	}
	if leave.Status != model.LeaveStatusApproved {
		return nil, "", ErrLeaveNotApproved
	}

	return s.buildCertificate(ctx, leave)
}

func (s *sickLeaveService) buildCertificate(ctx context.Context, leave *model.SickLeave) ([]byte, string, error) {
	student, err := s.studentRepo.FindByID(ctx, leave.StudentID)
	if err != nil {
		return nil, "", err
	}
	if student == nil {
		return nil, "", ErrStudentNotFound
	}

	verifyURL := fmt.Sprintf("%s/api/v1/verify/%s", s.baseURL, leave.VerifyToken)
	qrPNG, _ := utils.GenerateQRCodePNG(verifyURL, 150)

	pdfBytes, err := utils.GenerateSickLeaveCertificatePDF(utils.SickLeaveCertificateData{
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
		},
		StartDate:    leave.StartDate,
		EndDate:      leave.EndDate,
		DurationDays: leave.DurationDays(),
		Reason:       leave.Reason,
		IssuedAt:     time.Now(),
		QRCodePNG:    qrPNG,
	})
	if err != nil {
		return nil, "", err
	}

	fileName := "surat-sakit-" + student.MedicalRecordNumber
	return pdfBytes, fileName, nil
}

func (s *sickLeaveService) Verify(ctx context.Context, token string) (*model.VerifyLeaveResponse, error) {
	leave, err := s.repo.FindByVerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if leave == nil {
		return &model.VerifyLeaveResponse{
			IsValid: false,
			Message: "Surat keterangan tidak ditemukan. Dokumen ini mungkin tidak sah.",
		}, nil
	}

	if leave.Status != model.LeaveStatusApproved {
		return &model.VerifyLeaveResponse{
			IsValid: false,
			Leave:   leave,
			Message: "Izin sakit ini belum atau tidak disetujui klinik.",
		}, nil
	}

	student, err := s.studentRepo.FindByID(ctx, leave.StudentID)
	if err != nil {
		return nil, err
	}

	return &model.VerifyLeaveResponse{
		IsValid: true,
		Leave:   leave,
		Student: student,
		Message: "Surat keterangan sakit valid dan sah dikeluarkan oleh klinik.",
	}, nil
}
