package mysql

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

func seedRolesAndUser(t *testing.T, db *gorm.DB) (entities.User, entities.Role, entities.Role) {
	t.Helper()

	manager := entities.Role{Name: "Manager", DisplayName: "管理员"}
	editor := entities.Role{Name: "editor", DisplayName: "编辑"}
	mustCreate(t, db, &manager)
	mustCreate(t, db, &editor)

	user := entities.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	mustCreate(t, db, &user)
	return user, manager, editor
}

func TestGetRoleByNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db, newTestLogger(t))
	_, manager, _ := seedRolesAndUser(t, db)
	ctx := context.Background()

	for _, name := range []string{"manager", "MANAGER", "Manager"} {
		role, err := repo.GetRoleByName(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, manager.ID, role.ID)
	}

	_, err := repo.GetRoleByName(ctx, "ghost")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestGetRolesByNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db, newTestLogger(t))
	seedRolesAndUser(t, db)
	ctx := context.Background()

	roles, err := repo.GetRolesByNames(ctx, []string{"MANAGER", "Editor"})
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	// 缺失项不报错，仅少返回，由调用方比对数量
	roles, err = repo.GetRolesByNames(ctx, []string{"editor", "ghost"})
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestGrantLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db, newTestLogger(t))
	user, manager, _ := seedRolesAndUser(t, db)
	ctx := context.Background()

	has, err := repo.HasGrant(ctx, user.ID, manager.ID)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.AddGrant(ctx, db, user.ID, manager.ID))
	has, err = repo.HasGrant(ctx, user.ID, manager.ID)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, repo.RemoveGrant(ctx, db, user.ID, manager.ID))
	// 再删一次：授权已不存在
	assert.ErrorIs(t, repo.RemoveGrant(ctx, db, user.ID, manager.ID), commonerrors.ErrRepoNotFound)
}

func TestReplaceGrants(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db, newTestLogger(t))
	user, manager, editor := seedRolesAndUser(t, db)
	ctx := context.Background()

	require.NoError(t, repo.AddGrant(ctx, db, user.ID, manager.ID))

	// 整组替换为 editor
	require.NoError(t, repo.ReplaceGrants(ctx, db, user.ID, []uint64{editor.ID}))

	var grants []entities.UserRole
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&grants).Error)
	require.Len(t, grants, 1)
	assert.Equal(t, editor.ID, grants[0].RoleID)

	// 空列表清空授权
	require.NoError(t, repo.ReplaceGrants(ctx, db, user.ID, nil))
	grants = nil
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&grants).Error)
	assert.Empty(t, grants)
}
