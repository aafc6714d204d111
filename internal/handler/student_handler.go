package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/response"
	"github.com/dmchealth/student-health-clinic/internal/service"
	"github.com/dmchealth/student-health-clinic/internal/utils"
	"github.com/go-chi/chi/v5"
)

type StudentHandler struct {
	svc service.StudentService
}

func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// GetAll retrieves all students with optional filters
// @Summary      Get all students
// @Description  Get a paginated list of registered students
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        search    query    string  false  "Search by name or medical record number"
// @Param        grade     query    string  false  "Filter by grade/class"
// @Param        page      query    int     false  "Page number"
// @Param        per_page  query    int     false  "Items per page"
// @Security     BearerAuth
// @Success      200  {object}  response.PaginatedResponse
// @Failure      500  {object}  response.Response
// @Router       /students [get]
func (h *StudentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.StudentFilter{
		Search:  q.Get("search"),
		Grade:   q.Get("grade"),
		Page:    parseIntQuery(q.Get("page"), 1),
		PerPage: parseIntQuery(q.Get("per_page"), 10),
	}

	students, pagination, err := h.svc.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalError(w, "Gagal mengambil data mahasiswa")
		return
	}

	response.Paginated(w, "Data mahasiswa berhasil diambil", students, pagination)
}

// GetByID retrieves a specific student
// @Summary      Get student by ID
// @Description  Get detailed info about a specific student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /students/{id} [get]
func (h *StudentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	student, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal mengambil data mahasiswa")
		return
	}

	response.Success(w, "Data mahasiswa berhasil diambil", student)
}

// Register adds a new student to the clinic registry
// @Summary      Register a student
// @Description  Register a new student; the medical record number is generated automatically
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      model.RegisterStudentRequest  true  "Student registration request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /students [post]
func (h *StudentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterStudentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.FullName = utils.SanitizeString(req.FullName)
	req.Grade = utils.SanitizeString(req.Grade)

	if req.FullName == "" {
		errs["full_name"] = "Nama lengkap wajib diisi"
	}
	if req.BirthDate == "" {
		errs["birth_date"] = "Tanggal lahir wajib diisi"
	}
	if req.Gender != "L" && req.Gender != "P" {
		errs["gender"] = "Jenis kelamin harus L atau P"
	}
	if req.Grade == "" {
		errs["grade"] = "Kelas/angkatan wajib diisi"
	}
	if req.EmergencyContact == "" {
		errs["emergency_contact"] = "Kontak darurat wajib diisi"
	}
	if req.EmergencyPhone == "" {
		errs["emergency_phone"] = "Nomor telepon darurat wajib diisi"
	} else if !utils.IsValidPhone(req.EmergencyPhone) {
		errs["emergency_phone"] = "Format nomor telepon tidak valid"
	}
	if req.Email != nil && *req.Email != "" && !utils.IsValidEmail(*req.Email) {
		errs["email"] = "Format email tidak valid"
	}

	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	student, err := h.svc.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBirthDate):
			response.BadRequest(w, err.Error(), nil)
		case errors.Is(err, service.ErrRecordNumberConflict):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Gagal mendaftarkan mahasiswa")
		}
		return
	}

	response.Created(w, "Mahasiswa berhasil didaftarkan", student)
}

// Update modifies an existing student
// @Summary      Update a student
// @Description  Partially update student data; fields omitted from the body are left unchanged
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Student ID"
// @Param        request  body      model.UpdateStudentRequest  true  "Student update request"
// @Security     BearerAuth
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.UpdateStudentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	if req.FullName != nil && utils.SanitizeString(*req.FullName) == "" {
		errs["full_name"] = "Nama lengkap tidak boleh kosong"
	}
	if req.Gender != nil && *req.Gender != "L" && *req.Gender != "P" {
		errs["gender"] = "Jenis kelamin harus L atau P"
	}
	if req.EmergencyPhone != nil && !utils.IsValidPhone(*req.EmergencyPhone) {
		errs["emergency_phone"] = "Format nomor telepon tidak valid"
	}
	if req.Email != nil && *req.Email != "" && !utils.IsValidEmail(*req.Email) {
		errs["email"] = "Format email tidak valid"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	student, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInvalidBirthDate):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalError(w, "Gagal mengupdate data mahasiswa")
		}
		return
	}

	response.Success(w, "Data mahasiswa berhasil diupdate", student)
}

func parseIntQuery(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}
