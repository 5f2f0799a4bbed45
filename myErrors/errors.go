package myErrors

import "errors"

// 服务层向控制器暴露的域哨兵错误。
// 控制器用 errors.Is 将其映射到 HTTP 状态码，仓库层的"未找到"
// 统一使用 commonerrors.ErrRepoNotFound，不在这里重复定义。

// ErrIdentityTaken 注册或改名时用户名/邮箱已被占用
var ErrIdentityTaken = errors.New("username or email already registered")

// ErrInvalidCredentials 登录身份或密码错误。
// 身份不存在与密码不匹配共用该错误，避免泄露哪一项出了问题。
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrRoleAlreadyAssigned 用户已持有同名角色（大小写不敏感）
var ErrRoleAlreadyAssigned = errors.New("role already assigned to user")

// ErrRoleNotAssigned 按角色名移除授权时用户并未持有该角色
var ErrRoleNotAssigned = errors.New("role not assigned to user")

// ErrCategoryHasChildren 分类下仍有子分类，不允许删除
var ErrCategoryHasChildren = errors.New("category still has child categories")

// ErrCategoryParentCycle 分类重挂载会形成环（含挂到自身）
var ErrCategoryParentCycle = errors.New("category cannot be its own ancestor")

// ErrRelatedEntityMissing 关系同步的目标 id 列表中存在不存在的实体
var ErrRelatedEntityMissing = errors.New("related entity does not exist")

// ErrUpstreamService 外部服务（媒体存储 / 视频 API）调用失败
var ErrUpstreamService = errors.New("upstream service failure")
