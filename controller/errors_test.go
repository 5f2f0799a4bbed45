package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/content_service/myErrors"
)

func TestRespondServiceErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"资源不存在", commonerrors.ErrRepoNotFound, http.StatusNotFound},
		{"关联目标缺失", myErrors.ErrRelatedEntityMissing, http.StatusNotFound},
		{"身份占用", myErrors.ErrIdentityTaken, http.StatusConflict},
		{"无效凭证", myErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"重复授予角色", myErrors.ErrRoleAlreadyAssigned, http.StatusConflict},
		{"移除未持有的角色", myErrors.ErrRoleNotAssigned, http.StatusNotFound},
		{"分类仍有子级", myErrors.ErrCategoryHasChildren, http.StatusBadRequest},
		{"分类挂载成环", myErrors.ErrCategoryParentCycle, http.StatusBadRequest},
		{"上游服务失败", myErrors.ErrUpstreamService, http.StatusBadGateway},
		{"未识别错误兜底 500", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			respondServiceError(c, tc.err)
			assert.Equal(t, tc.wantStatus, recorder.Code)

			// 内部错误文本不外泄
			if tc.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, recorder.Body.String(), "database exploded")
			}
		})
	}
}
