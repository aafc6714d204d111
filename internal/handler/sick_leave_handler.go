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

type SickLeaveHandler struct {
	svc service.SickLeaveService
}

func NewSickLeaveHandler(svc service.SickLeaveService) *SickLeaveHandler {
	return &SickLeaveHandler{svc: svc}
}

// GetAll retrieves all sick leave requests
// @Summary      Get all sick leaves
// @Description  Get a paginated list of sick leave requests, optionally filtered by status
// @Tags         sick-leave
// @Accept       json
// @Produce      json
// @Param        status    query    string  false  "Filter by status (pending, approved, rejected)"
// @Param        page      query    int     false  "Page number"
// @Param        per_page  query    int     false  "Items per page"
// @Security     BearerAuth
// @Success      200  {object}  response.PaginatedResponse
// @Failure      500  {object}  response.Response
// @Router       /sick-leave [get]
func (h *SickLeaveHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.SickLeaveFilter{
		Status:  q.Get("status"),
		Page:    parseIntQuery(q.Get("page"), 1),
		PerPage: parseIntQuery(q.Get("per_page"), 10),
	}

	leaves, pagination, err := h.svc.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalError(w, "Gagal mengambil data izin sakit")
		return
	}

	response.Paginated(w, "Data izin sakit berhasil diambil", leaves, pagination)
}

// Create submits a new sick leave request
// @Summary      Create a sick leave request
// @Description  Submit a sick leave request for a student; new requests always start as pending
// @Tags         sick-leave
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateSickLeaveRequest  true  "Sick leave creation request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /sick-leave [post]
func (h *SickLeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSickLeaveRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.Reason = utils.SanitizeString(req.Reason)

	if req.StudentID == "" {
		errs["student_id"] = "Student ID wajib diisi"
	}
	if req.StartDate == "" {
		errs["start_date"] = "Tanggal mulai wajib diisi"
	}
	if req.EndDate == "" {
		errs["end_date"] = "Tanggal selesai wajib diisi"
	}
	if req.Reason == "" {
		errs["reason"] = "Alasan wajib diisi"
	}

	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	createdBy := middleware.GetUserIDFromContext(r.Context())
	leave, err := h.svc.Create(r.Context(), req, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInvalidLeaveDates):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalError(w, "Gagal membuat izin sakit")
		}
		return
	}

	response.Created(w, "Izin sakit berhasil dibuat", leave)
}

// UpdateStatus decides a pending sick leave request
// @Summary      Approve or reject a sick leave
// @Description  Transition a pending request to approved or rejected. Decided requests cannot change again.
// @Tags         sick-leave
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Sick leave ID"
// @Param        request  body      model.TransitionSickLeaveRequest  true  "Target status"
// @Security     BearerAuth
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /sick-leave/{id}/status [patch]
func (h *SickLeaveHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.TransitionSickLeaveRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	leave, err := h.svc.Transition(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInvalidLeaveStatus):
			response.BadRequest(w, err.Error(), nil)
		case errors.Is(err, service.ErrLeaveAlreadyDecided):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Gagal mengupdate status izin sakit")
		}
		return
	}

	response.Success(w, "Status izin sakit berhasil diupdate", leave)
}

// DownloadCertificate generates the sick leave certificate PDF
// @Summary      Download sick leave certificate
// @Description  Generate and download the certificate PDF for an approved sick leave
// @Tags         sick-leave
// @Produce      application/pdf
// @Param        id   path      string  true  "Sick leave ID"
// @Security     BearerAuth
// @Success      200  {file}    file    "Sick leave certificate PDF"
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /sick-leave/{id}/certificate [get]
func (h *SickLeaveHandler) DownloadCertificate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdfBytes, filename, err := h.svc.CertificatePDF(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrLeaveNotApproved):
			response.JSON(w, http.StatusUnprocessableEntity, false, err.Error(), nil)
		default:
			response.InternalError(w, "Gagal generate PDF")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// Verify checks the validity of a sick leave certificate via its public token
// @Summary      Verify a sick leave certificate
// @Description  Public verify endpoint for the QR token printed on a certificate
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        token  path      string  true  "Verification Token"
// @Success      200    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /verify/{token} [get]
func (h *SickLeaveHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	result, err := h.svc.Verify(r.Context(), token)
	if err != nil {
		response.InternalError(w, "Gagal memverifikasi surat keterangan")
		return
	}

	if !result.IsValid {
		response.JSON(w, http.StatusUnprocessableEntity, false, result.Message, result)
		return
	}

	response.Success(w, result.Message, result)
}
