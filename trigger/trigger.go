package trigger

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/opdss/trigger/contracts/event"
)

// Version 版本号,仅用于诊断
const Version = "0.2.0"

var ErrInvalidArgument = errs.Class("invalid argument")

var _ event.Trigger = (*Trigger)(nil)

// sequence 同一事件下按注册顺序排列的回调.
// Fire 持有 sequence 指针迭代, 因此派发过程中追加的回调会被本次派发调用.
type sequence struct {
	callbacks []event.Callback
}

// Trigger 基于内存的命名事件注册表, 非并发安全
type Trigger struct {
	triggers map[string]*sequence
	logger   *zap.Logger
	isolate  bool
}

func New(opts ...Option) *Trigger {
	t := &Trigger{
		triggers: make(map[string]*sequence),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(zap.String("trigger_id", uuid.New().String()))
	return t
}

// Version 与包常量 Version 相同
func (t *Trigger) Version() string {
	return Version
}

// Bind 在事件回调列表末尾追加回调, 事件不存在时先创建.
// 回调不可调用(nil 接口、nil 函数或 nil 指针等)时返回 ErrInvalidArgument, 不修改注册表
func (t *Trigger) Bind(name string, callback event.Callback) error {
	if !invocable(callback) {
		return ErrInvalidArgument.New("callback must be invocable, got %T", callback)
	}
	seq, ok := t.triggers[name]
	if !ok {
		seq = &sequence{}
		t.triggers[name] = seq
	}
	seq.callbacks = append(seq.callbacks, callback)
	t.logger.Debug("bind", zap.String("name", name), zap.Int("callbacks", len(seq.callbacks)))
	return nil
}

// BindAny 运行时检查回调类型后再 Bind.
// 支持 event.Callback、func(event.Trigger, any) error、func(any) error 和 func(any)
func (t *Trigger) BindAny(name string, callback any) error {
	cb, ok := asCallback(callback)
	if !ok {
		return ErrInvalidArgument.New("callback must be invocable, got %T", callback)
	}
	return t.Bind(name, cb)
}

// Unbind 移除事件下的全部回调, 事件不存在时什么都不做
func (t *Trigger) Unbind(name string) {
	if _, ok := t.triggers[name]; !ok {
		return
	}
	delete(t.triggers, name)
	t.logger.Debug("unbind", zap.String("name", name))
}

// Fire 按注册顺序同步调用事件下的回调, 回调收到 Trigger 本身和 parameters.
// 事件不存在时什么都不做.
//
// 默认第一个回调错误原样返回并跳过剩余回调; 使用 WithErrorIsolation 时调用全部回调并合并错误
func (t *Trigger) Fire(name string, parameters any) error {
	seq, ok := t.triggers[name]
	if !ok {
		return nil
	}
	t.logger.Debug("fire", zap.String("name", name), zap.Int("callbacks", len(seq.callbacks)))

	var failed []error
	for i := 0; i < len(seq.callbacks); i++ {
		if err := seq.callbacks[i].Handle(t, parameters); err != nil {
			t.logger.Debug("callback failed", zap.String("name", name), zap.Int("index", i), zap.Error(err))
			if !t.isolate {
				return err
			}
			failed = append(failed, err)
		}
	}
	return errs.Combine(failed...)
}

// Has 事件是否存在回调
func (t *Trigger) Has(name string) bool {
	_, ok := t.triggers[name]
	return ok
}

// Len 事件下的回调数量
func (t *Trigger) Len(name string) int {
	if seq, ok := t.triggers[name]; ok {
		return len(seq.callbacks)
	}
	return 0
}

// Names 已注册的事件名, 按字典序排列
func (t *Trigger) Names() []string {
	names := maps.Keys(t.triggers)
	slices.Sort(names)
	return names
}

func invocable(callback event.Callback) bool {
	if callback == nil {
		return false
	}
	switch v := reflect.ValueOf(callback); v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.Slice:
		return !v.IsNil()
	}
	return true
}

func asCallback(v any) (event.Callback, bool) {
	switch f := v.(type) {
	case event.Callback:
		return f, true
	case func(event.Trigger, any) error:
		return event.CallbackFunc(f), true
	case func(any) error:
		return event.PayloadFunc(f), true
	case func(any):
		if f == nil {
			return nil, false
		}
		return event.PayloadFunc(func(parameters any) error {
			f(parameters)
			return nil
		}), true
	}
	return nil, false
}
