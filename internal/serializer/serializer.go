package serializer

// Serializer 抽象了“对象 <-> 文本”的序列化能力。
//
// 设计目标：
//   - 面向 Record 的文本编码，JSON（sonic / json-iterator）与 YAML 共用同一套结构体标签。
//   - 调用方通过接口注入具体实现，便于后续扩展其它文本格式。
type Serializer interface {
	// Name 返回格式名，用于日志、指标与按名查找。
	Name() string

	// Marshal 将任意对象编码为字节序列。
	Marshal(v any) ([]byte, error)

	// Unmarshal 将字节序列解码到目标对象。
	//
	// v 通常为指针类型，用于接收解码结果。
	Unmarshal(data []byte, v any) error
}

// ObjectChecker 由能够在解码前校验顶层结构的 Serializer 实现。
//
// 结构体目标在遇到顶层 null 或空文档时不会报错，解码方需要借助它拒绝非对象输入。
type ObjectChecker interface {
	// CheckObject 在 data 顶层不是对象（映射）时返回错误。
	CheckObject(data []byte) error
}
