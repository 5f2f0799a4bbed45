package dto

import (
	"errors"
	"strconv"
	"strings"
)

// FlexibleID 兼容 JSON 数字与数字字符串两种写法的 id 值。
// 前端历史负载两种形态都有（"category_ids": [1, "3"]），这里统一收口：
// 无法解析为正整数的值归零，归一化阶段直接丢弃，不让单个坏值毁掉整个请求。
type FlexibleID uint64

// UnmarshalJSON 接受数字或数字字符串；非整数、非正数、不可解析的值置 0
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	// 先去引号再去空白，"\" 7\"" 这种带内侧空白的字符串形态才能解析
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	raw = strings.TrimSpace(raw)

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		*f = 0
		return nil
	}
	*f = FlexibleID(v)
	return nil
}

// FlexibleIDList 目标 id 列表，如帖子的 category_ids / tag_ids
type FlexibleIDList []FlexibleID

// Normalize 丢弃归零的非法值，保序返回。不做去重——存在性校验阶段
// 以去重后的数量比对，重复值由联结表主键兜底。
func (l FlexibleIDList) Normalize() []uint64 {
	ids := make([]uint64, 0, len(l))
	for _, f := range l {
		if f > 0 {
			ids = append(ids, uint64(f))
		}
	}
	return ids
}

// NullableParentID 三态的 parent_id 字段：
// 字段缺省（Present=false，不改动）、显式 null（Value=nil，脱离父级）、正整数（重挂载）。
type NullableParentID struct {
	Present bool
	Value   *uint64
}

// UnmarshalJSON 仅在字段出现在负载中时被调用，借此区分"缺省"与"显式 null"
func (n *NullableParentID) UnmarshalJSON(data []byte) error {
	n.Present = true
	if strings.TrimSpace(string(data)) == "null" {
		n.Value = nil
		return nil
	}

	var f FlexibleID
	_ = f.UnmarshalJSON(data)
	if f == 0 {
		return errors.New("parent_id must be a positive integer")
	}
	v := uint64(f)
	n.Value = &v
	return nil
}
