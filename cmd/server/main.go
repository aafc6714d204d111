package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmchealth/student-health-clinic/internal/config"
	"github.com/dmchealth/student-health-clinic/internal/database"
	"github.com/dmchealth/student-health-clinic/internal/handler"
	"github.com/dmchealth/student-health-clinic/internal/repository"
	"github.com/dmchealth/student-health-clinic/internal/service"
	"github.com/dmchealth/student-health-clinic/internal/utils"
)

// @title           Student Health Clinic API
// @version         1.0
// @description     Backend server for the campus health clinic: student registry, medical records, sick leaves, and medicine inventory.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// ── Database ───────────────────────────────────────
	db := database.Connect(&cfg.Database)
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	log.Printf("Running migrations from: %s", migrationsPath)
	if err := database.RunMigrations(db, migrationsPath); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedAdminUser(context.Background()); err != nil {
		log.Printf("Warning: seed failed: %v", err)
	}

	// ── Storage (MinIO) ─────────────────────────────────
	storage, err := utils.NewStorageService(&cfg.MinIO)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}
	log.Println("MinIO connected successfully")

	// ── Repositories ──────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	medicalRecordRepo := repository.NewMedicalRecordRepository(db)
	sickLeaveRepo := repository.NewSickLeaveRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)

	// ── Services ─────────────────────────────────────────
	authService := service.NewAuthService(userRepo, cfg)
	studentService := service.NewStudentService(studentRepo, cfg.Clinic.InstitutionID)
	medicalRecordService := service.NewMedicalRecordService(medicalRecordRepo, studentRepo, cfg.Clinic)
	sickLeaveService := service.NewSickLeaveService(sickLeaveRepo, studentRepo, storage, cfg.Clinic, cfg.App.BaseURL)
	medicineService := service.NewMedicineService(medicineRepo)
	reportService := service.NewReportService(medicalRecordRepo, studentRepo, sickLeaveRepo)

	// ── Handlers ─────────────────────────────────────────
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordService)
	sickLeaveHandler := handler.NewSickLeaveHandler(sickLeaveService)
	medicineHandler := handler.NewMedicineHandler(medicineService)
	reportHandler := handler.NewReportHandler(reportService)

	// ── Router ───────────────────────────────────────────
	router := handler.NewRouter(
		authHandler,
		studentHandler,
		medicalRecordHandler,
		sickLeaveHandler,
		medicineHandler,
		reportHandler,
		cfg.JWT.Secret,
	)

	// ── HTTP Server ──────────────────────────────────────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Server berjalan di port %s (mode: %s)", cfg.App.Port, cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
