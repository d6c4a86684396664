// Package optional 提供可区分“未设置”与“已设置为零值”的泛型 Option，
// 以及判断字段是否应在序列化时省略的谓词。
package optional

import (
	"fmt"
	"slices"
)

// Option 持有一个可选值。零值 Option 表示未设置（None）。
type Option[T any] struct {
	value T
	valid bool
}

// Some 返回持有 v 的 Option。
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, valid: true}
}

// None 返回未设置的 Option。
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr 将指针转换为 Option，nil 视为 None。
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool { return o.valid }

func (o Option[T]) IsNone() bool { return !o.valid }

// Get 返回持有的值以及是否已设置。
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid
}

// OrElse 在未设置时返回 fallback。
func (o Option[T]) OrElse(fallback T) T {
	if !o.valid {
		return fallback
	}
	return o.value
}

// Ptr 返回指向值副本的指针，None 返回 nil。
func (o Option[T]) Ptr() *T {
	if !o.valid {
		return nil
	}
	v := o.value
	return &v
}

// Equal 使用 equal 比较两个 Option：同为 None，或同为 Some 且值相等。
func (o Option[T]) Equal(other Option[T], equal func(a, b T) bool) bool {
	if o.valid != other.valid {
		return false
	}
	return !o.valid || equal(o.value, other.value)
}

// String 以 Some(v) / None 的形式输出。
func (o Option[T]) String() string {
	if !o.valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// IsNoneOrDefault 是唯一的省略判定：未设置，或持有的值与 T 的零值相等时返回 true。
// equal 只提供 T 的相等语义，判定逻辑不随类型重复。
func IsNoneOrDefault[T any](o Option[T], equal func(a, b T) bool) bool {
	v, ok := o.Get()
	if !ok {
		return true
	}
	var zero T
	return equal(v, zero)
}

// IsNoneOrZero 适用于可直接用 == 比较的类型（string、int32 等）。
func IsNoneOrZero[T comparable](o Option[T]) bool {
	return IsNoneOrDefault(o, func(a, b T) bool { return a == b })
}

// IsNoneOrEmpty 适用于切片：nil 与长度为 0 的切片都视为零值。
func IsNoneOrEmpty[E comparable](o Option[[]E]) bool {
	return IsNoneOrDefault(o, slices.Equal[[]E])
}
