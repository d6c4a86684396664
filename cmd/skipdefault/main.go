// skipdefault 演示省略零值字段的序列化：依次打印 Record、它的文本形式以及解码回来的 Record。
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lk2023060901/skipdefault/internal/config"
	"github.com/lk2023060901/skipdefault/internal/serializer"
	"github.com/lk2023060901/skipdefault/pkg/log"
	"github.com/lk2023060901/skipdefault/pkg/metrics"
	"github.com/lk2023060901/skipdefault/pkg/optional"
	"github.com/lk2023060901/skipdefault/pkg/record"
	"github.com/lk2023060901/skipdefault/pkg/util/merr"
)

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal("skipdefault failed",
			zap.Int32("code", merr.Code(err)),
			zap.Stringer("type", merr.GetErrorType(err)),
			zap.Error(err))
	}
	_ = log.Sync()
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("skipdefault", pflag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "optional YAML/JSON config file")
	fs.String("format", serializer.NameJSON, fmt.Sprintf("text format, one of %v", serializer.Names()))
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath, fs)
	if err != nil {
		return err
	}
	if err := log.Setup(&cfg.Log); err != nil {
		return err
	}
	ctx = log.WithModule(ctx, "skipdefault")
	if cfg.Codec.Metrics {
		metrics.Register(prometheus.DefaultRegisterer)
	}

	s, err := serializer.ByName(cfg.Codec.Format)
	if err != nil {
		return err
	}
	codec, err := record.NewCodec(record.Options{
		Serializer:    s,
		AllowComments: cfg.Codec.AllowComments,
		EnableMetrics: cfg.Codec.Metrics,
	})
	if err != nil {
		return err
	}
	log.Ctx(ctx).Debug("codec ready", log.FieldFormat(codec.Format()))

	for i, r := range examples() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printRecord(out, codec, r); err != nil {
			return errors.Wrapf(err, "example %d", i)
		}
	}
	return nil
}

// examples 覆盖：零值 Record、全部未设置、通过类型零值显式设置、通过字面量显式设置、非零值。
func examples() []record.Record {
	var (
		zeroText   string
		zeroNumber int32
		zeroFlags  []bool
	)
	return []record.Record{
		{},
		{
			Text:   optional.None[string](),
			Number: optional.None[int32](),
			Flags:  optional.None[[]bool](),
		},
		{
			Text:   optional.Some(zeroText),
			Number: optional.Some(zeroNumber),
			Flags:  optional.Some(zeroFlags),
		},
		{
			Text:   optional.Some(""),
			Number: optional.Some(int32(0)),
			Flags:  optional.Some([]bool{}),
		},
		{
			Text:   optional.Some("a string"),
			Number: optional.Some(int32(42)),
			Flags:  optional.Some([]bool{true, false}),
		},
	}
}

func printRecord(out io.Writer, codec *record.Codec, r record.Record) error {
	fmt.Fprintf(out, "record as passed: %s\n", r)

	data, err := codec.Encode(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "record serialized to %s: %s\n", codec.Format(), data)

	decoded, err := codec.Decode(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s deserialized back to record: %s\n", codec.Format(), decoded)
	return nil
}
