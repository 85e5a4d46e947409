package event

// Trigger 命名事件注册表
type Trigger interface {
	// Bind 为事件追加一个回调
	Bind(name string, callback Callback) error
	// Unbind 移除事件下的全部回调
	Unbind(name string)
	// Fire 按注册顺序同步调用事件下的回调
	Fire(name string, parameters any) error
	Version() string
}
