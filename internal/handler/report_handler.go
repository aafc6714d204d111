package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/response"
	"github.com/dmchealth/student-health-clinic/internal/service"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Statistics returns the monthly health statistics
// @Summary      Monthly health statistics
// @Description  Visit count and top diagnoses for one calendar month, plus global student and pending sick leave counts
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        month  query    int  false  "Month 1-12 (default: current month)"
// @Param        year   query    int  false  "Year (default: current year)"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /reports/statistics [get]
func (h *ReportHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	q := r.URL.Query()

	month := parseIntQuery(q.Get("month"), int(now.Month()))
	year := parseIntQuery(q.Get("year"), now.Year())

	stats, err := h.svc.MonthlyStatistics(r.Context(), month, year)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			response.BadRequest(w, err.Error(), nil)
			return
		}
		response.InternalError(w, "Gagal mengambil statistik kesehatan")
		return
	}

	response.Success(w, "Statistik kesehatan berhasil diambil", stats)
}
