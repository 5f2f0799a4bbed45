package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/security"
)

// AuthService 定义了注册 / 登录的业务逻辑接口。
type AuthService interface {
	// Register 处理新用户注册。
	// - 用户名或邮箱已被占用时返回 myErrors.ErrIdentityTaken。
	// - 注册成功自动授予配置的默认角色（默认角色不存在时跳过，不影响注册）。
	// - 返回 JWT 与用户视图。
	Register(ctx context.Context, req *dto.RegisterRequest) (*vo.AuthResultVO, error)

	// Login 处理登录。identifier 同时匹配用户名与邮箱。
	// - 用户不存在与密码错误统一返回 myErrors.ErrInvalidCredentials，不泄露哪一步失败。
	Login(ctx context.Context, req *dto.LoginRequest) (*vo.AuthResultVO, error)

	// GetProfile 返回当前登录用户的视图（带角色与发帖数）。
	GetProfile(ctx context.Context, userID uint64) (*vo.UserVO, error)
}

type authService struct {
	db       *gorm.DB
	userRepo mysql.UserRepository
	roleRepo mysql.RoleRepository
	hasher   *security.PasswordHasher
	tokens   *security.TokenManager
	authCfg  config.AuthConfig
	logger   *core.ZapLogger
}

// NewAuthService 是 authService 的构造函数。
func NewAuthService(
	db *gorm.DB,
	userRepo mysql.UserRepository,
	roleRepo mysql.RoleRepository,
	hasher *security.PasswordHasher,
	tokens *security.TokenManager,
	authCfg config.AuthConfig,
	logger *core.ZapLogger,
) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		tokens:   tokens,
		authCfg:  authCfg,
		logger:   logger,
	}
}

// Register 实现注册流程。
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*vo.AuthResultVO, error) {
	// 1. 占用检查。唯一索引兜底，这里先查一次给出友好错误。
	taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, myErrors.ErrIdentityTaken
	}

	// 2. 散列密码
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("注册时散列密码失败", zap.Error(err))
		return nil, err
	}

	user := &entities.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
		Status:       enums.UserStatusActive,
	}

	// 3. 用户与默认角色授权在同一事务里落库
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := s.userRepo.CreateUser(ctx, tx, user); txErr != nil {
			return txErr
		}

		defaultRole, roleErr := s.roleRepo.GetRoleByName(ctx, s.authCfg.DefaultUserRole)
		if roleErr != nil {
			if errors.Is(roleErr, commonerrors.ErrRepoNotFound) {
				// 默认角色缺失不阻断注册，只记告警，用户之后可由管理员补授权
				s.logger.Warn("默认角色不存在，注册用户未获得任何角色",
					zap.String("defaultRole", s.authCfg.DefaultUserRole),
					zap.Uint64("userID", user.ID),
				)
				return nil
			}
			return roleErr
		}
		return s.roleRepo.AddGrant(ctx, tx, user.ID, defaultRole.ID)
	})
	if err != nil {
		return nil, err
	}

	// 4. 重新加载用户（带角色）并签发令牌
	created, err := s.userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.issueFor(created)
}

// Login 实现登录流程。
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*vo.AuthResultVO, error) {
	user, err := s.userRepo.GetUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, myErrors.ErrInvalidCredentials
	}

	return s.issueFor(user)
}

// GetProfile 实现个人资料查询。
func (s *authService) GetProfile(ctx context.Context, userID uint64) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	postCount, err := s.userRepo.CountPostsByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return vo.NewUserVO(user, postCount), nil
}

// issueFor 签发 JWT 并组装返回体
func (s *authService) issueFor(user *entities.User) (*vo.AuthResultVO, error) {
	token, err := s.tokens.Issue(user.ID, user.Username, user.RoleNames())
	if err != nil {
		s.logger.Error("签发 JWT 失败", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, err
	}
	return &vo.AuthResultVO{
		Token: token,
		User:  vo.NewUserVO(user, 0),
	}, nil
}
