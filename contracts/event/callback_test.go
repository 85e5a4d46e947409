package event

import (
	"errors"
	"testing"
)

type stubTrigger struct{}

func (stubTrigger) Bind(string, Callback) error { return nil }
func (stubTrigger) Unbind(string)               {}
func (stubTrigger) Fire(string, any) error      { return nil }
func (stubTrigger) Version() string             { return "stub" }

func TestCallbackFunc(t *testing.T) {
	var got Trigger
	var cb Callback = CallbackFunc(func(tr Trigger, parameters any) error {
		got = tr
		if parameters != 7 {
			t.Fatalf("unexpected parameters %v", parameters)
		}
		return nil
	})
	if err := cb.Handle(stubTrigger{}, 7); err != nil {
		t.Fatal(err)
	}
	if got.Version() != "stub" {
		t.Fatal("trigger not passed through")
	}
}

func TestPayloadFunc(t *testing.T) {
	boom := errors.New("boom")
	var cb Callback = PayloadFunc(func(parameters any) error {
		return boom
	})
	if err := cb.Handle(nil, nil); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
