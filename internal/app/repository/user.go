package repository

import (
	"context"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/ds"

	"gorm.io/gorm/clause"
)

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*ds.User, error) {
	var u ds.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]ds.User, error) {
	users := []ds.User{}
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

// UpsertUser inserts u or refreshes role, blood group and password of the
// user with the same email.
func (r *Repository) UpsertUser(ctx context.Context, u *ds.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role", "blood_group"}),
	}).Create(u).Error
}
