package record

import (
	"github.com/cockroachdb/errors"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"github.com/lk2023060901/skipdefault/internal/serializer"
	"github.com/lk2023060901/skipdefault/pkg/log"
	"github.com/lk2023060901/skipdefault/pkg/metrics"
	"github.com/lk2023060901/skipdefault/pkg/util/merr"
)

var defaultCodec = MustNewCodec(Options{})

// Options 用于构造 Codec 的依赖注入参数。
type Options struct {
	Serializer serializer.Serializer // 允许为 nil（内部会用 serializer.Default）

	// AllowComments 为 true 时，解码前用 tidwall/jsonc 去掉注释与尾随逗号。仅支持 JSON 格式。
	AllowComments bool

	// EnableMetrics 为 true 时，每次编解码都会记录到 pkg/metrics 的指标中。
	EnableMetrics bool
}

// Codec 将 Record 绑定到一个具体的文本 Serializer。构造后不可变，可并发使用。
type Codec struct {
	serializer    serializer.Serializer
	allowComments bool
	enableMetrics bool
}

// NewCodec 创建一个基于给定依赖的 Codec。
func NewCodec(opts Options) (*Codec, error) {
	s := opts.Serializer
	if s == nil {
		s = serializer.Default()
	}
	if opts.AllowComments && !serializer.IsJSON(s) {
		return nil, merr.WrapErrOperationNotSupported("allow comments", s.Name())
	}
	return &Codec{
		serializer:    s,
		allowComments: opts.AllowComments,
		enableMetrics: opts.EnableMetrics,
	}, nil
}

// MustNewCodec 与 NewCodec 相同，出错时 panic。
func MustNewCodec(opts Options) *Codec {
	c, err := NewCodec(opts)
	if err != nil {
		panic(err)
	}
	return c
}

// ByFormat 按格式名创建 Codec，格式名见 serializer.Names。
func ByFormat(format string) (*Codec, error) {
	s, err := serializer.ByName(format)
	if err != nil {
		return nil, err
	}
	return NewCodec(Options{Serializer: s})
}

// Format 返回底层 Serializer 的格式名。
func (c *Codec) Format() string {
	return c.serializer.Name()
}

// Encode 只输出未被省略的字段，顺序为 text、number、flags。不修改 r。
func (c *Codec) Encode(r Record) ([]byte, error) {
	data, err := c.serializer.Marshal(r.toWire())
	if err != nil {
		err = errors.Wrapf(err, "record: encode %s", c.Format())
	}
	c.observe(metrics.OpEncode, len(data), err)
	return data, err
}

// Decode 解析 data。文本中缺失或为 null 的字段得到未设置的 Option。
//
// 语法错误、字段类型错误（包括 flags 中的 null）、整数越界或顶层不是对象时返回 merr.ErrMalformedInput，
// 此时返回零值 Record，不会返回部分解析的结果。
func (c *Codec) Decode(data []byte) (Record, error) {
	r, err := c.decode(data)
	c.observe(metrics.OpDecode, len(data), err)
	if err != nil {
		log.With(log.FieldModule("record"), log.FieldFormat(c.Format())).
			Debug("decode record failed", zap.Int("size", len(data)), zap.Error(err))
		return Record{}, err
	}
	return r, nil
}

func (c *Codec) decode(data []byte) (Record, error) {
	if c.allowComments {
		data = jsonc.ToJSON(data)
	}
	if checker, ok := c.serializer.(serializer.ObjectChecker); ok {
		if err := checker.CheckObject(data); err != nil {
			return Record{}, merr.WrapErrMalformedInput(c.Format(), err)
		}
	}
	var w wireIn
	if err := c.serializer.Unmarshal(data, &w); err != nil {
		return Record{}, merr.WrapErrMalformedInput(c.Format(), err)
	}
	r, err := w.toRecord()
	if err != nil {
		return Record{}, merr.WrapErrMalformedInput(c.Format(), err)
	}
	return r, nil
}

func (c *Codec) observe(op string, size int, err error) {
	if c.enableMetrics {
		metrics.ObserveCodec(c.Format(), op, size, err)
	}
}
