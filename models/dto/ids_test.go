package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleIDUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want FlexibleID
	}{
		{"数字", `42`, 42},
		{"数字字符串", `"7"`, 7},
		{"带空白的字符串", `" 7"`, 7},
		{"零", `0`, 0},
		{"负数归零", `-3`, 0},
		{"非数字归零", `"abc"`, 0},
		{"小数归零", `1.5`, 0},
		{"null 归零", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexibleID
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &f))
			assert.Equal(t, tc.want, f)
		})
	}
}

func TestFlexibleIDListNormalize(t *testing.T) {
	var list FlexibleIDList
	require.NoError(t, json.Unmarshal([]byte(`[1, "3", "x", 0, 2, 3]`), &list))

	// 非法值丢弃、保序、不去重
	assert.Equal(t, []uint64{1, 3, 2, 3}, list.Normalize())
}

func TestNullableParentID(t *testing.T) {
	type payload struct {
		ParentID NullableParentID `json:"parent_id"`
	}

	t.Run("字段缺省", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.ParentID.Present)
	})

	t.Run("显式 null 表示脱离父级", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"parent_id": null}`), &p))
		assert.True(t, p.ParentID.Present)
		assert.Nil(t, p.ParentID.Value)
	})

	t.Run("正整数", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"parent_id": "5"}`), &p))
		assert.True(t, p.ParentID.Present)
		require.NotNil(t, p.ParentID.Value)
		assert.Equal(t, uint64(5), *p.ParentID.Value)
	})

	t.Run("非法值报错", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"parent_id": -1}`), &p))
	})
}
