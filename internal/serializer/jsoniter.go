package serializer

import (
	jsoniter "github.com/json-iterator/go"
)

// JSONIterSerializer 使用 json-iterator 实现 JSON 编解码，配置与 internal/json 一致（不转义 HTML）。
//
// 输出与 JSONSerializer 逐字节一致，可在 sonic 不可用的平台上替换使用。
type JSONIterSerializer struct{}

var (
	_ Serializer    = (*JSONIterSerializer)(nil)
	_ ObjectChecker = (*JSONIterSerializer)(nil)

	jsoniterAPI = jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
)

func (JSONIterSerializer) Name() string { return NameJSONIter }

func (JSONIterSerializer) Marshal(v any) ([]byte, error) {
	return jsoniterAPI.Marshal(v)
}

func (JSONIterSerializer) Unmarshal(data []byte, v any) error {
	return jsoniterAPI.Unmarshal(data, v)
}

func (JSONIterSerializer) CheckObject(data []byte) error {
	return checkJSONObject(data)
}
