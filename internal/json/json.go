// Package json 统一封装项目使用的 JSON 引擎（bytedance/sonic）。
//
// 在 sonic.ConfigStd 的基础上关闭 HTML 转义：结构体字段按声明顺序输出，遵守 omitempty，
// 类型不匹配时报错，`<`、`>`、`&` 原样输出。
package json

import (
	"github.com/bytedance/sonic"
)

var api = sonic.Config{
	EscapeHTML:       false,
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
}.Froze()

func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
