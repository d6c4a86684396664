package record

import (
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/lk2023060901/skipdefault/pkg/optional"
)

// wire 是 Record 编码时的形状。指针为 nil 的字段被 omitempty 省略。
type wire struct {
	Text   *string `json:"text,omitempty" yaml:"text,omitempty"`
	Number *int32  `json:"number,omitempty" yaml:"number,omitempty"`
	Flags  *[]bool `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// wireIn 是解码目标。显式的 null 得到 nil，即未设置；
// flags 的元素用指针接收，列表中的 null 在 toRecord 中被拒绝。
type wireIn struct {
	Text   *string  `json:"text"`
	Number *int32   `json:"number"`
	Flags  *[]*bool `json:"flags"`
}

// YAML 中每个字段允许的节点类型，!!null 表示未设置。
var yamlTags = map[string]string{
	KeyText:   "!!str",
	KeyNumber: "!!int",
	KeyFlags:  "!!seq",
}

func (r Record) toWire() wire {
	var w wire
	if !r.OmitText() {
		w.Text = r.Text.Ptr()
	}
	if !r.OmitNumber() {
		w.Number = r.Number.Ptr()
	}
	if !r.OmitFlags() {
		flags, _ := r.Flags.Get()
		flags = slices.Clone(flags)
		w.Flags = &flags
	}
	return w
}

func (w wireIn) toRecord() (Record, error) {
	r := Record{
		Text:   optional.FromPtr(w.Text),
		Number: optional.FromPtr(w.Number),
	}
	if w.Flags != nil {
		flags := make([]bool, len(*w.Flags))
		for i, f := range *w.Flags {
			if f == nil {
				return Record{}, errors.Newf("flags[%d]: null is not a bool", i)
			}
			flags[i] = *f
		}
		r.Flags = optional.Some(flags)
	}
	return r, nil
}

// UnmarshalYAML 按节点标签检查字段类型。yaml.v3 默认会把 42、true 解码进字符串，
// 把 1.0 截断进整数，这里一律拒绝。未知字段忽略，重复字段报错。
func (w *wireIn) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return errors.Newf("line %d: expected a mapping, got %s", node.Line, node.ShortTag())
	}
	var out wireIn
	seen := make(map[string]struct{}, len(yamlTags))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		want, known := yamlTags[key.Value]
		if !known {
			continue
		}
		if _, dup := seen[key.Value]; dup {
			return errors.Newf("line %d: duplicate key %q", key.Line, key.Value)
		}
		seen[key.Value] = struct{}{}

		val := resolveAlias(node.Content[i+1])
		tag := val.ShortTag()
		if tag == "!!null" {
			continue
		}
		if tag != want {
			return errors.Newf("line %d: %s must be %s, got %s", val.Line, key.Value, want, tag)
		}

		var err error
		switch key.Value {
		case KeyText:
			err = val.Decode(&out.Text)
		case KeyNumber:
			err = val.Decode(&out.Number)
		case KeyFlags:
			for _, item := range val.Content {
				if itemTag := resolveAlias(item).ShortTag(); itemTag != "!!bool" {
					return errors.Newf("line %d: flags items must be !!bool, got %s", item.Line, itemTag)
				}
			}
			err = val.Decode(&out.Flags)
		}
		if err != nil {
			return err
		}
	}
	*w = out
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
