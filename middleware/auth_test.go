package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/content_service/constant"
)

func runRequireRoles(t *testing.T, handler gin.HandlerFunc, contextRoles []string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if authenticated {
		c.Set(constant.ContextKeyUserID, uint64(1))
		c.Set(constant.ContextKeyRoles, contextRoles)
	}

	handler(c)
	if !c.IsAborted() {
		c.Status(http.StatusOK)
	}
	return recorder
}

func TestRequireRoles(t *testing.T) {
	cases := []struct {
		name          string
		allowed       []string
		contextRoles  []string
		authenticated bool
		wantStatus    int
	}{
		{"持有所需角色", []string{"manager"}, []string{"manager"}, true, http.StatusOK},
		{"角色匹配大小写不敏感", []string{"Manager"}, []string{"MANAGER"}, true, http.StatusOK},
		{"多角色命中其一", []string{"editor", "manager"}, []string{"user", "editor"}, true, http.StatusOK},
		{"无所需角色", []string{"manager"}, []string{"user"}, true, http.StatusForbidden},
		{"无任何角色", []string{"manager"}, nil, true, http.StatusForbidden},
		{"空允许列表放行任意已认证用户", nil, []string{}, true, http.StatusOK},
		{"未认证", []string{"manager"}, nil, false, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := runRequireRoles(t, RequireRoles(tc.allowed...), tc.contextRoles, tc.authenticated)
			assert.Equal(t, tc.wantStatus, recorder.Code)
		})
	}
}
