// Package config 加载演示程序的配置：日志与编解码格式。
package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/lk2023060901/skipdefault/internal/serializer"
	"github.com/lk2023060901/skipdefault/pkg/log"
	"github.com/lk2023060901/skipdefault/pkg/util/merr"
	"github.com/lk2023060901/skipdefault/pkg/util/viper"
)

const (
	KeyCodecFormat        = "codec.format"
	KeyCodecAllowComments = "codec.allow-comments"
	KeyCodecMetrics       = "codec.metrics"
)

// CodecConfig 对应 record.Options。
type CodecConfig struct {
	Format        string `mapstructure:"format"`
	AllowComments bool   `mapstructure:"allow-comments"`
	Metrics       bool   `mapstructure:"metrics"`
}

type Config struct {
	Log   log.Config  `mapstructure:"log"`
	Codec CodecConfig `mapstructure:"codec"`
}

// Default 返回不读取任何文件时使用的配置。
func Default() Config {
	return Config{
		Log:   log.DefaultConfig(),
		Codec: CodecConfig{Format: serializer.NameJSON},
	}
}

// Load 依次应用缺省值、path 指向的文件（为空则跳过）与 flags 中显式设置的参数。
// flags 中名为 format 的参数会覆盖 codec.format。
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.stdout", def.Log.Stdout)
	v.SetDefault(KeyCodecFormat, def.Codec.Format)
	v.SetDefault(KeyCodecAllowComments, def.Codec.AllowComments)
	v.SetDefault(KeyCodecMetrics, def.Codec.Metrics)

	if path != "" {
		if err := v.LoadFile(path); err != nil {
			return Config{}, merr.WrapErrParameterInvalidMsg("load config %s: %s", path, err.Error())
		}
	}
	if flags != nil {
		if f := flags.Lookup("format"); f != nil {
			if err := v.BindFlag(KeyCodecFormat, f); err != nil {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, merr.WrapErrParameterInvalidMsg("decode config: %s", err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 检查日志格式、编解码格式名是否已知，以及 allow-comments 是否只用于 JSON。
// 所有问题合并为一个错误返回。
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Format) {
	case "", log.FormatJSON, log.FormatConsole, log.FormatText:
	default:
		errs = append(errs, merr.WrapErrParameterInvalid("json|console|text", c.Log.Format, "unknown log format"))
	}

	s, err := serializer.ByName(c.Codec.Format)
	if err != nil {
		errs = append(errs, err)
	} else if c.Codec.AllowComments && !serializer.IsJSON(s) {
		errs = append(errs, merr.WrapErrParameterInvalid("json|jsoniter", c.Codec.Format, "allow-comments requires a json format"))
	}
	return merr.Combine(errs...)
}
