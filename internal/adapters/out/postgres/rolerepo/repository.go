package rolerepo

import (
	"context"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/pkg/errs"
)

// GormRoleRepository implements RoleRepository using GORM.
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GORM role repository.
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// Add saves a new role grant to the database.
func (r *GormRoleRepository) Add(ctx context.Context, aggregate *access.Role) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Delete removes a user's grant of the given role kind.
func (r *GormRoleRepository) Delete(ctx context.Context, userID int64, name access.RoleName) error {
	result := r.db.WithContext(ctx).Delete(&RoleDTO{}, "user_id = ? AND name = ?", userID, string(name))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("role", string(name))
	}

	return nil
}

// GetRolesByUserID retrieves a user's current grants.
func (r *GormRoleRepository) GetRolesByUserID(ctx context.Context, userID int64) ([]*access.Role, error) {
	var dtos []RoleDTO
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&dtos).Error; err != nil {
		return nil, err
	}

	roles := make([]*access.Role, 0, len(dtos))
	for _, dto := range dtos {
		role, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	return roles, nil
}
