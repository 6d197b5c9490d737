package access_test

import (
	"testing"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNewRole(t *testing.T) {
	t.Run("should create role with valid parameters", func(t *testing.T) {
		role, err := access.NewRole(42, access.RoleStoreManager, int64Ptr(7))

		require.NoError(t, err)
		require.NoError(t, role.Validate())
		assert.Equal(t, int64(42), role.UserID())
		assert.Equal(t, access.RoleStoreManager, role.Name())
		require.NotNil(t, role.Data())
		assert.Equal(t, int64(7), *role.Data())
	})

	t.Run("should allow nil data", func(t *testing.T) {
		role, err := access.NewRole(42, access.RoleSuperuser, nil)

		require.NoError(t, err)
		assert.Nil(t, role.Data())
	})

	t.Run("should fail with non-positive user id", func(t *testing.T) {
		_, err := access.NewRole(0, access.RoleUser, nil)

		assert.ErrorIs(t, err, access.ErrUserIDIsInvalid)
	})

	t.Run("should fail with unknown role name", func(t *testing.T) {
		_, err := access.NewRole(42, "janitor", nil)

		assert.ErrorIs(t, err, access.ErrRoleNameIsInvalid)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var role access.Role

		assert.ErrorIs(t, role.Validate(), access.ErrRoleIsNotConstructed)
	})
}

func TestRestoreRole(t *testing.T) {
	t.Run("should keep the given identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		role, err := access.RestoreRole(id, 42, access.RoleUser, nil)

		require.NoError(t, err)
		assert.True(t, role.ID().IsEqual(id))
	})
}

func TestRoleOwns(t *testing.T) {
	t.Run("should own the key in role data", func(t *testing.T) {
		role, err := access.NewRole(42, access.RoleStoreManager, int64Ptr(7))
		require.NoError(t, err)

		assert.True(t, role.Owns(7))
		assert.False(t, role.Owns(8))
	})

	t.Run("should own nothing without data", func(t *testing.T) {
		role, err := access.NewRole(42, access.RoleStoreManager, nil)
		require.NoError(t, err)

		assert.False(t, role.Owns(7))
	})
}
