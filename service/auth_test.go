package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/security"
)

func newAuthServiceForTest(t *testing.T, db *gorm.DB) AuthService {
	t.Helper()
	logger := newTestLogger(t)
	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret",
		JWTExpireMinutes: 60,
		JWTIssuer:        "content_service_test",
		DefaultUserRole:  "user",
		BcryptCost:       bcrypt.MinCost,
	}
	return NewAuthService(
		db,
		mysql.NewUserRepository(db, logger),
		mysql.NewRoleRepository(db, logger),
		security.NewPasswordHasher(authCfg.BcryptCost),
		security.NewTokenManager(&authCfg),
		authCfg,
		logger,
	)
}

func TestRegisterGrantsDefaultRole(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Role{Name: "user", DisplayName: "普通用户"}).Error)
	svc := newAuthServiceForTest(t, db)

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, []string{"user"}, result.User.Roles)
}

func TestRegisterDuplicateIdentityConflicts(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Role{Name: "user", DisplayName: "普通用户"}).Error)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "password1",
	})
	require.NoError(t, err)

	// 用户名重复
	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "password1",
	})
	assert.ErrorIs(t, err, myErrors.ErrIdentityTaken)

	// 邮箱重复
	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: "bob", Email: "alice@example.com", Password: "password1",
	})
	assert.ErrorIs(t, err, myErrors.ErrIdentityTaken)
}

func TestRegisterWithoutDefaultRoleStillSucceeds(t *testing.T) {
	// 角色表为空：注册成功但不带角色，只打告警
	db := newTestDB(t)
	svc := newAuthServiceForTest(t, db)

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "password1",
	})
	require.NoError(t, err)
	assert.Empty(t, result.User.Roles)
}

func TestLoginUniformFailure(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Role{Name: "user", DisplayName: "普通用户"}).Error)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "password1",
	})
	require.NoError(t, err)

	// 未知账号与密码错误返回同一个哨兵错误，不区分失败环节
	_, errUnknown := svc.Login(ctx, &dto.LoginRequest{Identifier: "nobody", Password: "password1"})
	_, errWrongPass := svc.Login(ctx, &dto.LoginRequest{Identifier: "alice", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, myErrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, myErrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Role{Name: "user", DisplayName: "普通用户"}).Error)
	svc := newAuthServiceForTest(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "password1",
	})
	require.NoError(t, err)

	byName, err := svc.Login(ctx, &dto.LoginRequest{Identifier: "alice", Password: "password1"})
	require.NoError(t, err)
	byEmail, err := svc.Login(ctx, &dto.LoginRequest{Identifier: "alice@example.com", Password: "password1"})
	require.NoError(t, err)

	assert.Equal(t, byName.User.ID, byEmail.User.ID)
}
