package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/security"
)

// UserService 定义了用户与角色管理的业务逻辑接口（管理端）。
type UserService interface {
	// CreateUser 管理端创建用户，可同时指定角色列表。
	// - 角色列表里有不存在的角色名时整个请求失败（ErrRelatedEntityMissing）。
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*vo.UserVO, error)

	// GetUserByID 检索单个用户（带角色与帖子数）。
	GetUserByID(ctx context.Context, id uint64) (*vo.UserVO, error)

	// ListUsers 分页检索用户列表。
	ListUsers(ctx context.Context, page, pageSize int) ([]vo.UserVO, int64, error)

	// UpdateUser 部分字段更新用户；Roles 出现时整组替换授权。
	UpdateUser(ctx context.Context, id uint64, req *dto.UpdateUserRequest) (*vo.UserVO, error)

	// DeleteUser 软删用户。
	DeleteUser(ctx context.Context, id uint64) error

	// AssignRole 给用户追加角色（大小写不敏感匹配角色名）。
	// - 角色不存在返回 commonerrors.ErrRepoNotFound；已持有返回 myErrors.ErrRoleAlreadyAssigned。
	AssignRole(ctx context.Context, userID uint64, roleName string) (*vo.UserVO, error)

	// RemoveRole 移除用户的一个角色。
	// - 未持有该角色时返回 myErrors.ErrRoleNotAssigned。
	RemoveRole(ctx context.Context, userID uint64, roleName string) (*vo.UserVO, error)

	// ListRoles 检索全部角色。
	ListRoles(ctx context.Context) ([]vo.RoleVO, error)
}

type userService struct {
	db       *gorm.DB
	userRepo mysql.UserRepository
	roleRepo mysql.RoleRepository
	hasher   *security.PasswordHasher
	logger   *core.ZapLogger
}

// NewUserService 是 userService 的构造函数。
func NewUserService(
	db *gorm.DB,
	userRepo mysql.UserRepository,
	roleRepo mysql.RoleRepository,
	hasher *security.PasswordHasher,
	logger *core.ZapLogger,
) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// resolveRoleIDs 批量把角色名解析成 ID；有缺失即失败。
func (s *userService) resolveRoleIDs(ctx context.Context, names []string) ([]uint64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	roles, err := s.roleRepo.GetRolesByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	// GetRolesByNames 只返回命中的角色，数量不齐说明名单里有不存在的角色名
	if len(roles) < len(names) {
		return nil, myErrors.ErrRelatedEntityMissing
	}
	ids := make([]uint64, 0, len(roles))
	for _, role := range roles {
		ids = append(ids, role.ID)
	}
	return ids, nil
}

func (s *userService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*vo.UserVO, error) {
	taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, myErrors.ErrIdentityTaken
	}

	roleIDs, err := s.resolveRoleIDs(ctx, dedupStrings(req.Roles))
	if err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("创建用户时散列密码失败", zap.Error(err))
		return nil, err
	}

	status := enums.UserStatusActive
	if req.Status != "" {
		status = enums.UserStatus(req.Status)
	}

	user := &entities.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
		Status:       status,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := s.userRepo.CreateUser(ctx, tx, user); txErr != nil {
			return txErr
		}
		if len(roleIDs) == 0 {
			return nil
		}
		return s.roleRepo.ReplaceGrants(ctx, tx, user.ID, roleIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetUserByID(ctx, user.ID)
}

func (s *userService) GetUserByID(ctx context.Context, id uint64) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	postCount, err := s.userRepo.CountPostsByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewUserVO(user, postCount), nil
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int) ([]vo.UserVO, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	users, total, err := s.userRepo.ListUsers(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	result := make([]vo.UserVO, 0, len(users))
	for _, user := range users {
		result = append(result, *vo.NewUserVO(user, 0))
	}
	return result, total, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint64, req *dto.UpdateUserRequest) (*vo.UserVO, error) {
	// 1. 先确认目标存在
	if _, err := s.userRepo.GetUserByID(ctx, id); err != nil {
		return nil, err
	}

	// 2. 唯一性预检（改名 / 改邮箱时）
	if req.Username != nil || req.Email != nil {
		username := ""
		email := ""
		if req.Username != nil {
			username = *req.Username
		}
		if req.Email != nil {
			email = *req.Email
		}
		taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, myErrors.ErrIdentityTaken
		}
	}

	// 3. 角色整组替换的名单先行解析，避免半途失败
	var roleIDs []uint64
	replaceRoles := false
	if req.Roles != nil {
		replaceRoles = true
		ids, err := s.resolveRoleIDs(ctx, dedupStrings(*req.Roles))
		if err != nil {
			return nil, err
		}
		roleIDs = ids
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Password != nil {
		passwordHash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = passwordHash
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if txErr := s.userRepo.UpdateUser(ctx, tx, id, updates); txErr != nil {
				return txErr
			}
		}
		if replaceRoles {
			if txErr := s.roleRepo.ReplaceGrants(ctx, tx, id, roleIDs); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUserByID(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.userRepo.DeleteUser(ctx, tx, id)
	})
}

func (s *userService) AssignRole(ctx context.Context, userID uint64, roleName string) (*vo.UserVO, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	role, err := s.roleRepo.GetRoleByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	has, err := s.roleRepo.HasGrant(ctx, userID, role.ID)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, myErrors.ErrRoleAlreadyAssigned
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.roleRepo.AddGrant(ctx, tx, userID, role.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetUserByID(ctx, userID)
}

func (s *userService) RemoveRole(ctx context.Context, userID uint64, roleName string) (*vo.UserVO, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	role, err := s.roleRepo.GetRoleByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.roleRepo.RemoveGrant(ctx, tx, userID, role.ID)
	})
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrRoleNotAssigned
		}
		return nil, fmt.Errorf("移除角色授权失败: %w", err)
	}
	return s.GetUserByID(ctx, userID)
}

func (s *userService) ListRoles(ctx context.Context) ([]vo.RoleVO, error) {
	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]vo.RoleVO, 0, len(roles))
	for _, role := range roles {
		result = append(result, *vo.NewRoleVO(role))
	}
	return result, nil
}

// dedupStrings 去重并保留首次出现顺序（大小写不敏感）
func dedupStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, item := range in {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
