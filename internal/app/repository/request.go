package repository

import (
	"context"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/ds"

	"gorm.io/gorm/clause"
)

// RequestFilter narrows ListRequestsWithFilters. Nil fields are ignored.
type RequestFilter struct {
	Status       *ds.RequestStatus
	AmountStatus *ds.AmountStatus
	DonorID      *uint
}

func (r *Repository) CreateRequest(ctx context.Context, request *ds.BloodRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(request).Error
}

func (r *Repository) GetRequestByID(ctx context.Context, id uint) (*ds.BloodRequest, error) {
	var request ds.BloodRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &request, nil
}

func (r *Repository) SaveRequest(ctx context.Context, request *ds.BloodRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(request).Error
}

// DeleteRequest removes the row. A missing id is not an error.
func (r *Repository) DeleteRequest(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&ds.BloodRequest{}).Error
}

func (r *Repository) ListRequestsByEmail(ctx context.Context, email string) ([]ds.BloodRequest, error) {
	requests := []ds.BloodRequest{}
	err := r.db.WithContext(ctx).Where("requester_email = ?", email).Order("id").Find(&requests).Error
	return requests, err
}

func (r *Repository) ListRequestsWithFilters(ctx context.Context, f RequestFilter) ([]ds.BloodRequest, error) {
	q := r.db.WithContext(ctx).Model(&ds.BloodRequest{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.AmountStatus != nil {
		q = q.Where("amount_status = ?", *f.AmountStatus)
	}
	if f.DonorID != nil {
		q = q.Where("donor_id = ?", *f.DonorID)
	}
	requests := []ds.BloodRequest{}
	err := q.Order("id").Find(&requests).Error
	return requests, err
}
