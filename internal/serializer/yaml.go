package serializer

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const NameYAML = "yaml"

// YAMLSerializer 使用 gopkg.in/yaml.v3 实现 YAML 编解码，字段名与 JSON 相同。
type YAMLSerializer struct{}

var (
	_ Serializer    = (*YAMLSerializer)(nil)
	_ ObjectChecker = (*YAMLSerializer)(nil)
)

func (YAMLSerializer) Name() string { return NameYAML }

func (YAMLSerializer) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAMLSerializer) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func (YAMLSerializer) CheckObject(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return errors.New("serializer: empty yaml document")
	}
	if root := doc.Content[0]; root.Kind != yaml.MappingNode {
		return errors.Newf("serializer: top-level yaml node must be a mapping, got %s", root.Tag)
	}
	return nil
}
