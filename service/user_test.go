package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/security"
)

func newUserServiceForTest(t *testing.T, db *gorm.DB) UserService {
	t.Helper()
	logger := newTestLogger(t)
	return NewUserService(
		db,
		mysql.NewUserRepository(db, logger),
		mysql.NewRoleRepository(db, logger),
		security.NewPasswordHasher(bcrypt.MinCost),
		logger,
	)
}

func seedServiceRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&entities.Role{Name: "manager", DisplayName: "管理员"}).Error)
	require.NoError(t, db.Create(&entities.Role{Name: "editor", DisplayName: "编辑"}).Error)
}

func TestAssignRoleTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	seedServiceRoles(t, db)
	svc := newUserServiceForTest(t, db)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "carol", Email: "carol@example.com", Password: "password1",
	})
	require.NoError(t, err)

	granted, err := svc.AssignRole(ctx, user.ID, "editor")
	require.NoError(t, err)
	assert.Contains(t, granted.Roles, "editor")

	// 重复授予：冲突，大小写变体也算同一角色
	_, err = svc.AssignRole(ctx, user.ID, "EDITOR")
	assert.ErrorIs(t, err, myErrors.ErrRoleAlreadyAssigned)
}

func TestRemoveRoleNotAssigned(t *testing.T) {
	db := newTestDB(t)
	seedServiceRoles(t, db)
	svc := newUserServiceForTest(t, db)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "carol", Email: "carol@example.com", Password: "password1",
	})
	require.NoError(t, err)

	// 未持有的角色无从移除
	_, err = svc.RemoveRole(ctx, user.ID, "manager")
	assert.ErrorIs(t, err, myErrors.ErrRoleNotAssigned)
}

func TestUpdateUserReplacesRoles(t *testing.T) {
	db := newTestDB(t)
	seedServiceRoles(t, db)
	svc := newUserServiceForTest(t, db)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "carol", Email: "carol@example.com", Password: "password1",
		Roles: []string{"manager"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"manager"}, user.Roles)

	// roles 出现即整组替换
	newRoles := []string{"editor"}
	updated, err := svc.UpdateUser(ctx, user.ID, &dto.UpdateUserRequest{Roles: &newRoles})
	require.NoError(t, err)
	assert.Equal(t, []string{"editor"}, updated.Roles)
}

func TestCreateUserUnknownRoleFails(t *testing.T) {
	db := newTestDB(t)
	seedServiceRoles(t, db)
	svc := newUserServiceForTest(t, db)

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "carol", Email: "carol@example.com", Password: "password1",
		Roles: []string{"ghost"},
	})
	assert.ErrorIs(t, err, myErrors.ErrRelatedEntityMissing)
}
