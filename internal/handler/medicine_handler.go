package handler

import (
	"errors"
	"net/http"

	"github.com/dmchealth/student-health-clinic/internal/middleware"
	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/response"
	"github.com/dmchealth/student-health-clinic/internal/service"
	"github.com/dmchealth/student-health-clinic/internal/utils"
	"github.com/go-chi/chi/v5"
)

type MedicineHandler struct {
	svc service.MedicineService
}

func NewMedicineHandler(svc service.MedicineService) *MedicineHandler {
	return &MedicineHandler{svc: svc}
}

// GetAll retrieves the medicine inventory
// @Summary      Get all medicines
// @Description  Get a paginated list of medicines; use view=low_stock or view=expired for alert lists
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Param        search    query    string  false  "Search by medicine name"
// @Param        category  query    string  false  "Filter by category"
// @Param        view      query    string  false  "Special view: low_stock or expired"
// @Param        page      query    int     false  "Page number"
// @Param        per_page  query    int     false  "Items per page"
// @Security     BearerAuth
// @Success      200  {object}  response.PaginatedResponse
// @Failure      500  {object}  response.Response
// @Router       /medicines [get]
func (h *MedicineHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	view := q.Get("view")
	if view != "" && view != "low_stock" && view != "expired" {
		response.BadRequest(w, "View tidak valid (low_stock, expired)", nil)
		return
	}

	filter := model.MedicineFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		View:     view,
		Page:     parseIntQuery(q.Get("page"), 1),
		PerPage:  parseIntQuery(q.Get("per_page"), 10),
	}

	medicines, pagination, err := h.svc.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalError(w, "Gagal mengambil data obat")
		return
	}

	response.Paginated(w, "Data obat berhasil diambil", medicines, pagination)
}

// GetByID retrieves a specific medicine
// @Summary      Get medicine by ID
// @Description  Get detailed info about a specific medicine
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Medicine ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /medicines/{id} [get]
func (h *MedicineHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	medicine, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMedicineNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal mengambil data obat")
		return
	}

	response.Success(w, "Data obat berhasil diambil", medicine)
}

// Create adds a new medicine
// @Summary      Create a medicine
// @Description  Add a medicine to the inventory with an opening stock level
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateMedicineRequest  true  "Medicine creation request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /medicines [post]
func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMedicineRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.Name = utils.SanitizeString(req.Name)

	if req.Name == "" {
		errs["name"] = "Nama obat wajib diisi"
	}
	if req.Unit == "" {
		errs["unit"] = "Satuan wajib diisi"
	} else if !model.ValidMedicineUnits[req.Unit] {
		errs["unit"] = "Satuan tidak valid (tablets, capsules, ml, bottles, boxes, pieces)"
	}
	if req.Stock < 0 {
		errs["stock"] = "Stok awal tidak boleh negatif"
	}
	if req.MinimumStock < 0 {
		errs["minimum_stock"] = "Stok minimum tidak boleh negatif"
	}

	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	medicine, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidExpiryDate) {
			response.BadRequest(w, err.Error(), nil)
			return
		}
		response.InternalError(w, "Gagal membuat data obat")
		return
	}

	response.Created(w, "Data obat berhasil dibuat", medicine)
}

// Update modifies medicine metadata
// @Summary      Update a medicine
// @Description  Update medicine metadata. Stock cannot be changed here, use a stock transaction instead.
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Medicine ID"
// @Param        request  body      model.UpdateMedicineRequest  true  "Medicine update request"
// @Security     BearerAuth
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /medicines/{id} [put]
func (h *MedicineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.UpdateMedicineRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	if req.Name != nil && utils.SanitizeString(*req.Name) == "" {
		errs["name"] = "Nama obat tidak boleh kosong"
	}
	if req.Unit != nil && !model.ValidMedicineUnits[*req.Unit] {
		errs["unit"] = "Satuan tidak valid (tablets, capsules, ml, bottles, boxes, pieces)"
	}
	if req.MinimumStock != nil && *req.MinimumStock < 0 {
		errs["minimum_stock"] = "Stok minimum tidak boleh negatif"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	medicine, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMedicineNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInvalidExpiryDate):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalError(w, "Gagal mengupdate data obat")
		}
		return
	}

	response.Success(w, "Data obat berhasil diupdate", medicine)
}

// CreateTransaction records a stock-in or stock-out mutation
// @Summary      Record a stock transaction
// @Description  Apply a stock mutation (in/out) to a medicine and append it to the transaction ledger
// @Tags         medicine-transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateTransactionRequest  true  "Stock transaction request"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /medicine-transactions [post]
func (h *MedicineHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTransactionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	if req.MedicineID == "" {
		errs["medicine_id"] = "Medicine ID wajib diisi"
	}
	if req.Type != model.TransactionIn && req.Type != model.TransactionOut {
		errs["type"] = "Jenis transaksi harus in atau out"
	}
	if req.Quantity <= 0 {
		errs["quantity"] = "Jumlah harus lebih dari 0"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	createdBy := middleware.GetUserIDFromContext(r.Context())
	result, err := h.svc.RecordTransaction(r.Context(), req, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMedicineNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInsufficientStock):
			response.JSON(w, http.StatusUnprocessableEntity, false, err.Error(), nil)
		default:
			response.InternalError(w, "Gagal mencatat transaksi obat")
		}
		return
	}

	response.Created(w, "Transaksi obat berhasil dicatat", result)
}

// GetTransactions retrieves recent stock transactions
// @Summary      Get stock transactions
// @Description  Get the most recent stock transactions across all medicines, newest first
// @Tags         medicine-transactions
// @Accept       json
// @Produce      json
// @Param        limit  query    int  false  "Maximum number of entries (default 50)"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /medicine-transactions [get]
func (h *MedicineHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r.URL.Query().Get("limit"), 50)

	transactions, err := h.svc.GetTransactions(r.Context(), limit)
	if err != nil {
		response.InternalError(w, "Gagal mengambil riwayat transaksi obat")
		return
	}

	response.Success(w, "Riwayat transaksi obat berhasil diambil", transactions)
}
