package trigger

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrConfig = errs.Class("trigger config")

type Config struct {
	IsolateErrors bool   `help:"回调出错后继续调用剩余回调并合并错误" default:"false" mapstructure:"isolate-errors"`
	LogLevel      string `help:"日志最低级别,默认为空,可选[debug|info|warn|error]" default:"" mapstructure:"log-level"`
}

// BindFlags 按 mapstructure/help/default 标签将配置注册为命令行参数
func (conf *Config) BindFlags(fs *pflag.FlagSet) {
	val := reflect.ValueOf(conf).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		help := field.Tag.Get("help")
		def := field.Tag.Get("default")
		switch ptr := val.Field(i).Addr().Interface().(type) {
		case *bool:
			fs.BoolVar(ptr, name, cast.ToBool(def), help)
		case *string:
			fs.StringVar(ptr, name, def, help)
		default:
			panic(fmt.Sprintf("trigger: unsupported config field %s of type %s", field.Name, field.Type))
		}
	}
}

// LoadConfig 从 viper(命令行参数、环境变量、配置文件)解析配置
func LoadConfig(vip *viper.Viper) (Config, error) {
	var conf Config
	if err := vip.Unmarshal(&conf); err != nil {
		return Config{}, ErrConfig.Wrap(err)
	}
	return conf, nil
}

// NewFromConfig 根据配置创建 Trigger, logger 为空时不输出日志
func NewFromConfig(logger *zap.Logger, conf Config) (*Trigger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(conf.LogLevel)
		if err != nil {
			return nil, ErrConfig.Wrap(err)
		}
		logger = logger.WithOptions(zap.IncreaseLevel(lvl))
	}
	opts := []Option{WithLogger(logger)}
	if conf.IsolateErrors {
		opts = append(opts, WithErrorIsolation())
	}
	return New(opts...), nil
}
