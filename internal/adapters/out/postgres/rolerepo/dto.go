// Package rolerepo provides data transfer objects and mapping functions for
// user role-grant persistence.
package rolerepo

import (
	"github.com/google/uuid"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
)

// RoleDTO represents the database structure for persisting role grants.
type RoleDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID int64     `gorm:"type:bigint;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Data   *int64    `gorm:"type:bigint"`
}

// TableName specifies the database table name for role grants.
func (RoleDTO) TableName() string {
	return "user_roles"
}

// fromDomain converts a role grant to its database representation.
func fromDomain(r *access.Role) RoleDTO {
	return RoleDTO{
		ID:     r.ID().Bytes(),
		UserID: r.UserID(),
		Name:   string(r.Name()),
		Data:   r.Data(),
	}
}

// toDomain converts a database DTO to a role grant.
func toDomain(dto RoleDTO) (*access.Role, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return access.RestoreRole(id, dto.UserID, access.RoleName(dto.Name), dto.Data)
}
