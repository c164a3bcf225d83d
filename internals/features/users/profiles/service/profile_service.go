package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/users/profiles/dto"
	"capacitajun_backend/internals/features/users/profiles/model"
)

// CreateInitialProfile inserts the profile row of a freshly registered user.
func CreateInitialProfile(tx *gorm.DB, userID uuid.UUID, fullName string, department, jobTitle *string) error {
	return tx.Create(&model.ProfileModel{
		ProfileID:         userID,
		ProfileFullName:   strings.TrimSpace(fullName),
		ProfileDepartment: department,
		ProfileJobTitle:   jobTitle,
		ProfileRole:       constants.RoleLearner,
		ProfileIsActive:   true,
	}).Error
}

func joined(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("profiles").
		Joins("JOIN users ON users.id = profiles.profile_id")
}

func baseQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return joined(ctx, db).Select("profiles.*, users.email")
}

func GetProfile(ctx context.Context, db *gorm.DB, userID uuid.UUID) (dto.ProfileRow, error) {
	var row dto.ProfileRow
	err := baseQuery(ctx, db).Where("profiles.profile_id = ?", userID).Take(&row).Error
	return row, err
}

type ListFilter struct {
	Query  string
	Role   string
	Limit  int
	Offset int
	Order  string
}

func ListProfiles(ctx context.Context, db *gorm.DB, f ListFilter) ([]dto.ProfileRow, int64, error) {
	filter := func(q *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(f.Query); s != "" {
			like := "%" + s + "%"
			q = q.Where("profiles.profile_full_name ILIKE ? OR users.email ILIKE ?", like, like)
		}
		if f.Role != "" {
			q = q.Where("profiles.profile_role = ?", f.Role)
		}
		return q
	}

	var total int64
	if err := filter(joined(ctx, db)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []dto.ProfileRow
	if err := filter(baseQuery(ctx, db)).
		Order(f.Order).
		Limit(f.Limit).
		Offset(f.Offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListMentors returns active profiles flagged as mentors.
func ListMentors(ctx context.Context, db *gorm.DB) ([]dto.ProfileRow, error) {
	var rows []dto.ProfileRow
	err := baseQuery(ctx, db).
		Where("profiles.profile_is_mentor = TRUE AND profiles.profile_is_active = TRUE").
		Order("profiles.profile_full_name ASC").
		Scan(&rows).Error
	return rows, err
}
