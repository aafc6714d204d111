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
	ErrMedicineNotFound   = errors.New("obat tidak ditemukan")
	ErrInsufficientStock  = errors.New("stok obat tidak mencukupi")
	ErrInvalidExpiryDate  = errors.New("format tanggal kedaluwarsa tidak valid, gunakan YYYY-MM-DD")
	ErrInvalidTransaction = errors.New("jenis transaksi harus in atau out")
)

type MedicineService interface {
	GetAll(ctx context.Context, filter model.MedicineFilter) ([]*model.Medicine, *response.Pagination, error)
	GetByID(ctx context.Context, id string) (*model.Medicine, error)
	Create(ctx context.Context, req model.CreateMedicineRequest) (*model.Medicine, error)
	Update(ctx context.Context, id string, req model.UpdateMedicineRequest) (*model.Medicine, error)
	RecordTransaction(ctx context.Context, req model.CreateTransactionRequest, createdBy string) (*model.StockMutationResult, error)
	GetTransactions(ctx context.Context, limit int) ([]*model.MedicineTransaction, error)
}

type medicineService struct {
	repo repository.MedicineRepository
}

func NewMedicineService(repo repository.MedicineRepository) MedicineService {
	return &medicineService{repo: repo}
}

func (s *medicineService) GetAll(ctx context.Context, filter model.MedicineFilter) ([]*model.Medicine, *response.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	medicines, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int(total) / filter.PerPage
	if int(total)%filter.PerPage > 0 {
		totalPages++
	}

	return medicines, &response.Pagination{
		Page: filter.Page, PerPage: filter.PerPage,
		TotalItems: total, TotalPages: totalPages,
	}, nil
}

func (s *medicineService) GetByID(ctx context.Context, id string) (*model.Medicine, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("ID tidak valid")
	}

	medicine, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return medicine, nil
}

func (s *medicineService) Create(ctx context.Context, req model.CreateMedicineRequest) (*model.Medicine, error) {
	medicine := &model.Medicine{
		ID:           uuid.New(),
		Name:         req.Name,
		Category:     req.Category,
		Stock:        req.Stock,
		Unit:         req.Unit,
		MinimumStock: req.MinimumStock,
		Description:  req.Description,
	}

	if req.ExpiryDate != "" {
		t, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidExpiryDate
		}
		medicine.ExpiryDate = &t
	}

	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, err
	}

	return medicine, nil
}

func (s *medicineService) Update(ctx context.Context, id string, req model.UpdateMedicineRequest) (*model.Medicine, error) {
	medicine, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.Category != nil {
		medicine.Category = req.Category
	}
	if req.Unit != nil {
		medicine.Unit = *req.Unit
	}
	if req.MinimumStock != nil {
		medicine.MinimumStock = *req.MinimumStock
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			medicine.ExpiryDate = nil
		} else {
			t, err := time.Parse("2006-01-02", *req.ExpiryDate)
			if err != nil {
				return nil, ErrInvalidExpiryDate
			}
			medicine.ExpiryDate = &t
		}
	}
	if req.Description != nil {
		medicine.Description = req.Description
	}

	if err := s.repo.Update(ctx, medicine); err != nil {
		return nil, err
	}

	return medicine, nil
}

// RecordTransaction mencatat mutasi stok. Stok keluar yang melebihi sisa stok
// ditolak tanpa write apa pun; mutasi stok dan entri ledger dieksekusi dalam
// satu transaksi database oleh repository.
func (s *medicineService) RecordTransaction(ctx context.Context, req model.CreateTransactionRequest, createdBy string) (*model.StockMutationResult, error) {
	medicineUID, err := uuid.Parse(req.MedicineID)
	if err != nil {
		return nil, errors.New("medicine_id tidak valid")
	}

	if req.Type != model.TransactionIn && req.Type != model.TransactionOut {
		return nil, ErrInvalidTransaction
	}
	if req.Quantity <= 0 {
		return nil, errors.New("jumlah harus lebih dari 0")
	}

	delta := req.Quantity
	if req.Type == model.TransactionOut {
		delta = -req.Quantity
	}

	trans := &model.MedicineTransaction{
		ID:         uuid.New(),
		MedicineID: medicineUID,
		Type:       req.Type,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
	}

	if uid, err := uuid.Parse(createdBy); err == nil {
		trans.CreatedBy = &uid
	}

	newStock, err := s.repo.ApplyTransaction(ctx, trans, delta)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMedicineGone):
			return nil, ErrMedicineNotFound
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, ErrInsufficientStock
		}
		return nil, err
	}

	return &model.StockMutationResult{
		Transaction: trans,
		NewStock:    newStock,
	}, nil
}

func (s *medicineService) GetTransactions(ctx context.Context, limit int) ([]*model.MedicineTransaction, error) {
	return s.repo.FindTransactions(ctx, limit)
}
