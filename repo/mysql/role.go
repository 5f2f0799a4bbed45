package mysql

import (
	"context"
	"errors"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// RoleRepository 定义了角色与用户授权数据的持久化操作接口。
// 角色名匹配统一大小写不敏感：数据库侧用 LOWER(name) 比较。
type RoleRepository interface {
	// GetRoleByName 按名称检索角色（大小写不敏感）。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetRoleByName(ctx context.Context, name string) (*entities.Role, error)

	// GetRolesByNames 批量按名称检索角色（大小写不敏感）。
	// - 只返回命中的角色，缺失项由调用方比对数量后处理。
	GetRolesByNames(ctx context.Context, names []string) ([]*entities.Role, error)

	// ListRoles 检索全部角色，按 ID 升序。
	ListRoles(ctx context.Context) ([]*entities.Role, error)

	// HasGrant 检查用户是否已持有指定角色。
	HasGrant(ctx context.Context, userID, roleID uint64) (bool, error)

	// AddGrant 给用户追加一条角色授权。
	AddGrant(ctx context.Context, db *gorm.DB, userID, roleID uint64) error

	// RemoveGrant 移除用户的一条角色授权。
	// - 授权不存在时返回 commonerrors.ErrRepoNotFound。
	RemoveGrant(ctx context.Context, db *gorm.DB, userID, roleID uint64) error

	// ReplaceGrants 整组替换用户的角色授权：先清空再按 roleIDs 重建。
	// - 必须跑在事务里，调用方传入 tx。
	ReplaceGrants(ctx context.Context, db *gorm.DB, userID uint64, roleIDs []uint64) error
}

type roleRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewRoleRepository 是 roleRepository 的构造函数。
func NewRoleRepository(db *gorm.DB, logger *core.ZapLogger) RoleRepository {
	return &roleRepository{db: db, logger: logger}
}

func (r *roleRepository) GetRoleByName(ctx context.Context, name string) (*entities.Role, error) {
	var role entities.Role
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按名称检索角色失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) GetRolesByNames(ctx context.Context, names []string) ([]*entities.Role, error) {
	var roles []*entities.Role
	if len(names) == 0 {
		return roles, nil
	}
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(n))
	}
	err := r.db.WithContext(ctx).
		Where("LOWER(name) IN ?", lowered).
		Find(&roles).Error
	if err != nil {
		r.logger.Error("批量检索角色失败", zap.Strings("names", names), zap.Error(err))
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) ListRoles(ctx context.Context) ([]*entities.Role, error) {
	var roles []*entities.Role
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error; err != nil {
		r.logger.Error("角色列表查询失败", zap.Error(err))
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) HasGrant(ctx context.Context, userID, roleID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.UserRole{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("检查角色授权失败",
			zap.Uint64("userID", userID),
			zap.Uint64("roleID", roleID),
			zap.Error(err),
		)
		return false, err
	}
	return count > 0, nil
}

func (r *roleRepository) AddGrant(ctx context.Context, db *gorm.DB, userID, roleID uint64) error {
	grant := entities.UserRole{UserID: userID, RoleID: roleID}
	if err := db.WithContext(ctx).Create(&grant).Error; err != nil {
		return err
	}
	return nil
}

func (r *roleRepository) RemoveGrant(ctx context.Context, db *gorm.DB, userID, roleID uint64) error {
	result := db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&entities.UserRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// ReplaceGrants 先全删再重建。roleIDs 为空时等价于清空授权。
func (r *roleRepository) ReplaceGrants(ctx context.Context, db *gorm.DB, userID uint64, roleIDs []uint64) error {
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.UserRole{}).Error; err != nil {
		return err
	}
	if len(roleIDs) == 0 {
		return nil
	}
	grants := make([]entities.UserRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		grants = append(grants, entities.UserRole{UserID: userID, RoleID: roleID})
	}
	if err := db.WithContext(ctx).Create(&grants).Error; err != nil {
		return err
	}
	return nil
}
