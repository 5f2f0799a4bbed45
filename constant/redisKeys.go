package constant

// Redis Key 相关常量
const (
	// PostViewCountPrefix 是帖子浏览量计数器的 Key 前缀。
	// 每个帖子对应一个 String 类型的 Key，用于原子性计数。
	// 示例 Key: "post_view_count:123" (其中 123 是 postID)
	// 定时任务会 SCAN 该前缀下的全部 Key，将计数回写到 posts.view_count。
	PostViewCountPrefix = "post_view_count:"
)
