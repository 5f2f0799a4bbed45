package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appConfig "github.com/Xushengqwer/content_service/config"
)

// ErrInvalidToken token 缺失、签名不对、已过期或载荷不合法
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenClaims 承载在 bearer token 中的身份信息。
// sub 为用户 ID 的十进制字符串，roles 为签发时刻的角色名快照；
// 授权判断以数据库中的当前角色为准，token 中的 roles 仅供下游展示。
type TokenClaims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager 签发与校验 bearer token（HS256，共享密钥）
type TokenManager struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewTokenManager 基于认证配置创建 TokenManager
func NewTokenManager(cfg *appConfig.AuthConfig) *TokenManager {
	expireMinutes := cfg.JWTExpireMinutes
	if expireMinutes <= 0 {
		expireMinutes = 120
	}
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		expiry: time.Duration(expireMinutes) * time.Minute,
		issuer: cfg.JWTIssuer,
	}
}

// Issue 为指定用户签发 token
func (m *TokenManager) Issue(userID uint64, username string, roles []string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("签发 token 失败: %w", err)
	}
	return signed, nil
}

// Verify 校验 token 并返回用户 ID 与载荷。
// 签名错误、过期、算法不符、subject 非法均归一为 ErrInvalidToken。
func (m *TokenManager) Verify(tokenString string) (uint64, *TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return 0, nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, nil, ErrInvalidToken
	}
	return userID, claims, nil
}
