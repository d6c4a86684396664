// Package record 定义带可选字段的 Record，以及它与文本之间的转换。
//
// 序列化时，未设置或等于类型零值（""、0、空切片）的字段会被省略；
// 反序列化时缺失的字段一律视为未设置。因此“显式零值”与“未设置”在文本上无法区分，
// 只有已设置且非零值的字段能完整往返。
package record

import (
	"fmt"
	"slices"

	"github.com/lk2023060901/skipdefault/pkg/optional"
)

// 文本中的字段名，顺序即 Record 字段的声明顺序。
const (
	KeyText   = "text"
	KeyNumber = "number"
	KeyFlags  = "flags"
)

// Record 的每个字段都可以独立地未设置、设置为零值或设置为非零值。
type Record struct {
	Text   optional.Option[string]
	Number optional.Option[int32]
	Flags  optional.Option[[]bool]
}

// OmitText 报告 text 字段是否会在序列化时被省略。
func (r Record) OmitText() bool { return optional.IsNoneOrZero(r.Text) }

// OmitNumber 报告 number 字段是否会在序列化时被省略。
func (r Record) OmitNumber() bool { return optional.IsNoneOrZero(r.Number) }

// OmitFlags 报告 flags 字段是否会在序列化时被省略。
func (r Record) OmitFlags() bool { return optional.IsNoneOrEmpty(r.Flags) }

// Keys 返回序列化后会出现的字段名，按声明顺序排列。
func (r Record) Keys() []string {
	keys := make([]string, 0, 3)
	if !r.OmitText() {
		keys = append(keys, KeyText)
	}
	if !r.OmitNumber() {
		keys = append(keys, KeyNumber)
	}
	if !r.OmitFlags() {
		keys = append(keys, KeyFlags)
	}
	return keys
}

// IsEmpty 报告 Record 是否会序列化为空对象。
func (r Record) IsEmpty() bool {
	return len(r.Keys()) == 0
}

// Equal 按字段值比较两个 Record。nil 与空的 flags 视为相等。
func (r Record) Equal(other Record) bool {
	return r.Text.Equal(other.Text, func(a, b string) bool { return a == b }) &&
		r.Number.Equal(other.Number, func(a, b int32) bool { return a == b }) &&
		r.Flags.Equal(other.Flags, slices.Equal[[]bool])
}

func (r Record) String() string {
	return fmt.Sprintf("Record{Text: %s, Number: %s, Flags: %s}", r.Text, r.Number, r.Flags)
}

// MarshalJSON 使 Record 可以直接嵌入其它 JSON 结构。
func (r Record) MarshalJSON() ([]byte, error) {
	return defaultCodec.Encode(r)
}

// UnmarshalJSON 失败时返回 merr.ErrMalformedInput，且不修改 r。
func (r *Record) UnmarshalJSON(data []byte) error {
	decoded, err := defaultCodec.Decode(data)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

// Serialize 使用缺省 JSON 编码 r。对任何 Record 都不会失败，结果是确定的。
func Serialize(r Record) string {
	data, err := defaultCodec.Encode(r)
	if err != nil {
		// wire 结构只含字符串、整数与布尔切片，编码失败只可能来自引擎缺陷。
		panic(fmt.Sprintf("record: encode %s: %v", r, err))
	}
	return string(data)
}

// Deserialize 使用缺省 JSON 解码 text。
// 文本不符合期望结构时返回 merr.ErrMalformedInput 与零值 Record。
func Deserialize(text string) (Record, error) {
	return defaultCodec.Decode([]byte(text))
}
