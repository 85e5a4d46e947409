package trigger

import "go.uber.org/zap"

type Option func(t *Trigger)

// WithLogger 注入日志, 默认不输出
func WithLogger(logger *zap.Logger) Option {
	return func(t *Trigger) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithErrorIsolation 回调出错后 Fire 继续调用剩余回调, 返回合并后的错误
func WithErrorIsolation() Option {
	return func(t *Trigger) {
		t.isolate = true
	}
}
