package vo

import "github.com/Xushengqwer/content_service/response"

// 本文件只为 swag 生成文档服务：swag 不支持泛型实例化，
// 需要把常用的 APIResponse[T] 组合显式落成具名类型。

// AuthResultResponseWrapper 注册 / 登录响应
type AuthResultResponseWrapper struct {
	response.APIResponse[AuthResultVO]
}

// UserResponseWrapper 单个用户响应
type UserResponseWrapper struct {
	response.APIResponse[UserVO]
}

// UserListResponseWrapper 用户列表响应
type UserListResponseWrapper struct {
	response.APIResponse[[]UserVO]
}

// RoleListResponseWrapper 角色列表响应
type RoleListResponseWrapper struct {
	response.APIResponse[[]RoleVO]
}

// PostResponseWrapper 单个帖子响应
type PostResponseWrapper struct {
	response.APIResponse[PostVO]
}

// PostListResponseWrapper 帖子列表响应
type PostListResponseWrapper struct {
	response.APIResponse[[]PostVO]
}

// CategoryResponseWrapper 单个分类响应
type CategoryResponseWrapper struct {
	response.APIResponse[CategoryVO]
}

// CategoryListResponseWrapper 分类列表响应
type CategoryListResponseWrapper struct {
	response.APIResponse[[]CategoryVO]
}

// TagResponseWrapper 单个标签响应
type TagResponseWrapper struct {
	response.APIResponse[TagVO]
}

// TagListResponseWrapper 标签列表响应
type TagListResponseWrapper struct {
	response.APIResponse[[]TagVO]
}

// EventResponseWrapper 单个活动响应
type EventResponseWrapper struct {
	response.APIResponse[EventVO]
}

// EventListResponseWrapper 活动列表响应
type EventListResponseWrapper struct {
	response.APIResponse[[]EventVO]
}

// UploadResponseWrapper 上传结果响应
type UploadResponseWrapper struct {
	response.APIResponse[UploadVO]
}

// YouTubeVideoListResponseWrapper 频道视频列表响应
type YouTubeVideoListResponseWrapper struct {
	response.APIResponse[[]YouTubeVideoVO]
}

// EmptyResponseWrapper 无数据响应
type EmptyResponseWrapper struct {
	response.APIResponse[any]
}
