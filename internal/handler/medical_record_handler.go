package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmchealth/student-health-clinic/internal/middleware"
	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/response"
	"github.com/dmchealth/student-health-clinic/internal/service"
	"github.com/dmchealth/student-health-clinic/internal/utils"
	"github.com/go-chi/chi/v5"
)

type MedicalRecordHandler struct {
	svc service.MedicalRecordService
}

func NewMedicalRecordHandler(svc service.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{svc: svc}
}

// GetByStudent retrieves the visit history of one student
// @Summary      Get medical records of a student
// @Description  Get all medical records for a student, most recent check-up first
// @Tags         medical-records
// @Accept       json
// @Produce      json
// @Param        studentId  path      string  true  "Student ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /medical-records/student/{studentId} [get]
func (h *MedicalRecordHandler) GetByStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentId")

	records, err := h.svc.GetByStudent(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal mengambil rekam medis")
		return
	}

	response.Success(w, "Rekam medis berhasil diambil", records)
}

// Create adds a new medical record
// @Summary      Create a medical record
// @Description  Record a clinic visit for a student. Records are immutable once created.
// @Tags         medical-records
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateMedicalRecordRequest  true  "Medical record creation request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /medical-records [post]
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMedicalRecordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.Diagnosis = utils.SanitizeString(req.Diagnosis)
	req.Symptoms = utils.SanitizeString(req.Symptoms)
	req.Treatment = utils.SanitizeString(req.Treatment)

	if req.StudentID == "" {
		errs["student_id"] = "Student ID wajib diisi"
	}
	if req.Diagnosis == "" {
		errs["diagnosis"] = "Diagnosis wajib diisi"
	}
	if req.Symptoms == "" {
		errs["symptoms"] = "Gejala wajib diisi"
	}
	if req.Treatment == "" {
		errs["treatment"] = "Penanganan wajib diisi"
	}

	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	createdBy := middleware.GetUserIDFromContext(r.Context())
	record, err := h.svc.Create(r.Context(), req, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInvalidCheckUpDate):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalError(w, "Gagal membuat rekam medis")
		}
		return
	}

	response.Created(w, "Rekam medis berhasil dibuat", record)
}

// DownloadPermissionLetter generates the permission letter PDF for a record
// @Summary      Download permission letter
// @Description  Generate and download the class-absence permission letter for a medical record
// @Tags         medical-records
// @Produce      application/pdf
// @Param        id   path      string  true  "Medical record ID"
// @Security     BearerAuth
// @Success      200  {file}    file    "Permission letter PDF"
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /medical-records/{id}/letter [get]
func (h *MedicalRecordHandler) DownloadPermissionLetter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdfBytes, filename, err := h.svc.PermissionLetterPDF(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
