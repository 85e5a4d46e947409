package event

type Callback interface {
	Handle(t Trigger, parameters any) error
}

type CallbackFunc func(Trigger, any) error

func (f CallbackFunc) Handle(t Trigger, parameters any) error {
	return f(t, parameters)
}

// PayloadFunc 只关心参数的回调
type PayloadFunc func(any) error

func (f PayloadFunc) Handle(_ Trigger, parameters any) error {
	return f(parameters)
}
