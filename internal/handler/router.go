package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dmchealth/student-health-clinic/docs" // Import generated docs
	appMiddleware "github.com/dmchealth/student-health-clinic/internal/middleware"
	"github.com/dmchealth/student-health-clinic/internal/response"
)

type Router struct {
	authHandler          *AuthHandler
	studentHandler       *StudentHandler
	medicalRecordHandler *MedicalRecordHandler
	sickLeaveHandler     *SickLeaveHandler
	medicineHandler      *MedicineHandler
	reportHandler        *ReportHandler
	jwtSecret            string
}

func NewRouter(
	authHandler *AuthHandler,
	studentHandler *StudentHandler,
	medicalRecordHandler *MedicalRecordHandler,
	sickLeaveHandler *SickLeaveHandler,
	medicineHandler *MedicineHandler,
	reportHandler *ReportHandler,
	jwtSecret string,
) *Router {
	return &Router{
		authHandler:          authHandler,
		studentHandler:       studentHandler,
		medicalRecordHandler: medicalRecordHandler,
		sickLeaveHandler:     sickLeaveHandler,
		medicineHandler:      medicineHandler,
		reportHandler:        reportHandler,
		jwtSecret:            jwtSecret,
	}
}

func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "Server berjalan dengan baik", map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {

		// ── Auth (public) ────────────────────────────────
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", ro.authHandler.Login)
			r.Post("/refresh", ro.authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(appMiddleware.Authenticate(ro.jwtSecret))
				r.Get("/me", ro.authHandler.Me)
			})
		})

		// ── Public: verifikasi QR surat keterangan sakit ──
		r.Get("/verify/{token}", ro.sickLeaveHandler.Verify)

		// ── Protected routes ──────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.Authenticate(ro.jwtSecret))

			// User management (admin only)
			r.Route("/users", func(r chi.Router) {
				r.Use(appMiddleware.RequireRole("admin"))
				r.Post("/", ro.authHandler.Register)
			})

			// Students
			r.Route("/students", func(r chi.Router) {
				r.Get("/", ro.studentHandler.GetAll)
				r.Post("/", ro.studentHandler.Register)
				r.Get("/{id}", ro.studentHandler.GetByID)
				r.Put("/{id}", ro.studentHandler.Update)
			})

			// Medical records
			r.Route("/medical-records", func(r chi.Router) {
				r.Post("/", ro.medicalRecordHandler.Create)
				r.Get("/student/{studentId}", ro.medicalRecordHandler.GetByStudent)
				r.Get("/{id}/letter", ro.medicalRecordHandler.DownloadPermissionLetter)
			})

			// Sick leaves
			r.Route("/sick-leave", func(r chi.Router) {
				r.Get("/", ro.sickLeaveHandler.GetAll)
				r.Post("/", ro.sickLeaveHandler.Create)
				r.Patch("/{id}/status", ro.sickLeaveHandler.UpdateStatus)
				r.Get("/{id}/certificate", ro.sickLeaveHandler.DownloadCertificate)
			})

			// Medicine inventory
			r.Route("/medicines", func(r chi.Router) {
				r.Get("/", ro.medicineHandler.GetAll)
				r.Post("/", ro.medicineHandler.Create)
				r.Get("/{id}", ro.medicineHandler.GetByID)
				r.Put("/{id}", ro.medicineHandler.Update)
			})

			// Stock transaction ledger
			r.Route("/medicine-transactions", func(r chi.Router) {
				r.Get("/", ro.medicineHandler.GetTransactions)
				r.Post("/", ro.medicineHandler.CreateTransaction)
			})

			// Reports
			r.Get("/reports/statistics", ro.reportHandler.Statistics)
		})
	})

	return r
}
