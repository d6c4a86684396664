package viper

import (
	"path/filepath"

	"github.com/spf13/pflag"
	spfviper "github.com/spf13/viper"
)

// Config 封装 spf13/viper 实例，对外提供精简的 YAML/JSON 配置加载接口。
type Config struct {
	v *spfviper.Viper
}

// New 创建一个空的 Config。未调用 LoadFile 时只包含 SetDefault 设置的缺省值。
func New() *Config {
	return &Config{
		v: spfviper.New(),
	}
}

// LoadFile 将 YAML 或 JSON 配置文件加载到 Config 中。
// 文件类型通过扩展名（.yaml/.yml/.json）推断。
func (c *Config) LoadFile(path string) error {
	c.v.SetConfigFile(path)

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		c.v.SetConfigType("yaml")
	case ".json":
		c.v.SetConfigType("json")
	default:
		// 让 viper 自行推断类型，或在读取时返回清晰的错误信息。
	}

	return c.v.ReadInConfig()
}

// SetDefault 设置 key 的缺省值，优先级低于配置文件与命令行参数。
func (c *Config) SetDefault(key string, value any) {
	c.v.SetDefault(key, value)
}

// BindFlag 将命令行参数绑定到 key；仅当参数被显式设置时覆盖配置文件中的值。
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	return c.v.BindPFlag(key, flag)
}

// GetString 返回 key 对应的字符串值。
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// Unmarshal 将完整配置反序列化到 dst。
// dst 应为结构体或 map 的指针。
func (c *Config) Unmarshal(dst interface{}) error {
	return c.v.Unmarshal(dst)
}

// UnmarshalKey 将指定 key 对应的子配置反序列化到 dst。
// dst 应为结构体或 map 的指针。
func (c *Config) UnmarshalKey(key string, dst interface{}) error {
	return c.v.UnmarshalKey(key, dst)
}
