package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// UserRepository 定义了用户数据在 MySQL 中的持久化操作接口。
type UserRepository interface {
	// CreateUser 持久化一个新的用户记录。
	// - db 参数允许调用方传入事务对象，保证用户与授权在同一事务中落库。
	CreateUser(ctx context.Context, db *gorm.DB, user *entities.User) error

	// GetUserByID 根据主键检索用户，预载角色授权。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)

	// GetUserByIdentifier 按用户名或邮箱检索用户（登录场景），预载角色授权。
	GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error)

	// ExistsByUsernameOrEmail 检查用户名或邮箱是否已被占用。
	// - excludeID 大于 0 时排除该用户自身（更新场景）。
	ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uint64) (bool, error)

	// ListUsers 分页检索用户列表，预载角色授权，按 ID 升序。
	ListUsers(ctx context.Context, offset, limit int) ([]*entities.User, int64, error)

	// UpdateUser 按 map 部分更新用户字段。
	// - 未命中任何记录时返回 commonerrors.ErrRepoNotFound。
	UpdateUser(ctx context.Context, db *gorm.DB, userID uint64, updates map[string]interface{}) error

	// DeleteUser 对指定用户执行软删除，并清理其角色授权。
	DeleteUser(ctx context.Context, db *gorm.DB, id uint64) error

	// CountPostsByAuthor 统计用户名下（未删除）帖子数。
	CountPostsByAuthor(ctx context.Context, userID uint64) (int64, error)
}

// userRepository 是 UserRepository 接口针对 MySQL 的具体实现。
type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) CreateUser(ctx context.Context, db *gorm.DB, user *entities.User) error {
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	return nil
}

// GetUserByID 预载 UserRoles.Role，服务层直接拿 RoleNames() 做鉴权。
func (r *userRepository) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).
		Preload("UserRoles.Role").
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户数据库查询失败", zap.Uint64("userID", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// GetUserByIdentifier 同一个入参同时匹配 username 与 email 两列。
// 调用方不应把“未找到”与“密码错误”区分暴露给客户端。
func (r *userRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).
		Preload("UserRoles.Role").
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按标识检索用户数据库查询失败", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		r.logger.Error("检查用户名/邮箱占用失败",
			zap.String("username", username),
			zap.String("email", email),
			zap.Error(err),
		)
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) ListUsers(ctx context.Context, offset, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var totalCount int64

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&totalCount).Error; err != nil {
		r.logger.Error("用户列表计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数用户失败: %w", err)
	}
	if totalCount == 0 {
		return users, 0, nil
	}

	err := r.db.WithContext(ctx).
		Preload("UserRoles.Role").
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&users).Error
	if err != nil {
		r.logger.Error("用户列表查询失败", zap.Int("offset", offset), zap.Int("limit", limit), zap.Error(err))
		return nil, 0, fmt.Errorf("查询用户列表失败: %w", err)
	}
	return users, totalCount, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, db *gorm.DB, userID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新用户", zap.Uint64("userID", userID))
		return nil
	}

	result := db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新用户数据库操作失败", zap.Uint64("userID", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteUser 软删用户本体，授权关系是硬删（无业务价值可追溯）。
func (r *userRepository) DeleteUser(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	if err := db.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&entities.UserRole{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *userRepository) CountPostsByAuthor(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("author_id = ?", userID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计用户帖子数失败", zap.Uint64("userID", userID), zap.Error(err))
		return 0, err
	}
	return count, nil
}
