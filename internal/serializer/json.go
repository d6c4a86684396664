package serializer

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/skipdefault/internal/json"
)

const (
	NameJSON     = "json"
	NameJSONIter = "jsoniter"
)

// JSONSerializer 使用 internal/json（基于 bytedance/sonic）实现 JSON 编解码。
type JSONSerializer struct{}

// 编译期断言：确保 JSONSerializer 实现了 Serializer 接口。
var (
	_ Serializer    = (*JSONSerializer)(nil)
	_ ObjectChecker = (*JSONSerializer)(nil)
)

func (JSONSerializer) Name() string { return NameJSON }

func (JSONSerializer) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONSerializer) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONSerializer) CheckObject(data []byte) error {
	return checkJSONObject(data)
}

// checkJSONObject 只看第一个非空白字符，完整语法由 Unmarshal 校验。
func checkJSONObject(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return errors.New("serializer: empty json input")
	}
	if trimmed[0] != '{' {
		return errors.Newf("serializer: top-level json value must be an object, got %q", trimmed[0])
	}
	return nil
}
