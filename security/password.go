package security

import "golang.org/x/crypto/bcrypt"

// PasswordHasher 封装加盐哈希/校验原语，成本可配置
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher 创建 PasswordHasher。cost 超出 bcrypt 合法区间时回退为默认成本。
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash 生成明文密码的 bcrypt 哈希
func (h *PasswordHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify 校验明文密码与存储哈希是否匹配
func (h *PasswordHasher) Verify(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
