package serializer

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/lk2023060901/skipdefault/pkg/util/merr"
)

var registry = map[string]Serializer{
	NameJSON:     JSONSerializer{},
	NameJSONIter: JSONIterSerializer{},
	NameYAML:     YAMLSerializer{},
}

// Default 返回缺省的 JSON（sonic）实现。
func Default() Serializer {
	return JSONSerializer{}
}

// ByName 按格式名（大小写不敏感）查找 Serializer，空字符串返回 Default。
func ByName(name string) (Serializer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default(), nil
	}
	s, ok := registry[name]
	if !ok {
		return nil, merr.WrapErrParameterInvalid(strings.Join(Names(), "|"), name, "unknown serializer")
	}
	return s, nil
}

// Names 返回已注册的格式名，按字典序排列。
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// IsJSON 判断 s 是否产出 JSON 文本。
func IsJSON(s Serializer) bool {
	return lo.Contains([]string{NameJSON, NameJSONIter}, s.Name())
}
