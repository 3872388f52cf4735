package dispatcher

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestDispatch(t *testing.T) {
	d := New()
	d.Register("echo", func(_ context.Context, args Args) (any, error) {
		return args.String("text"), nil
	})

	got, err := d.Dispatch(context.Background(), "echo", Args{"text": "hello"})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("result = %v, want hello", got)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	d := New()
	_, err := d.Dispatch(context.Background(), "missing", nil)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Dispatch() error = %v, want ErrUnknownCommand", err)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	d := New()
	d.Register("boom", func(context.Context, Args) (any, error) {
		panic("handler blew up")
	})

	_, err := d.Dispatch(context.Background(), "boom", nil)
	if !errors.Is(err, ErrPanic) {
		t.Errorf("Dispatch() error = %v, want ErrPanic", err)
	}
}

func TestRegisterReplaces(t *testing.T) {
	d := New()
	d.Register("cmd", func(context.Context, Args) (any, error) { return 1, nil })
	d.Register("cmd", func(context.Context, Args) (any, error) { return 2, nil })

	got, err := d.Dispatch(context.Background(), "cmd", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("result = %v, want the replacing handler", got)
	}
}

func TestUnregister(t *testing.T) {
	d := New()
	d.Register("cmd", func(context.Context, Args) (any, error) { return nil, nil })
	d.Unregister("cmd")

	if d.Has("cmd") {
		t.Error("Has() = true after Unregister")
	}
	if _, err := d.Dispatch(context.Background(), "cmd", nil); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Dispatch() error = %v, want ErrUnknownCommand", err)
	}
}

func TestList(t *testing.T) {
	d := New()
	for _, name := range []string{"window.hide", "shortcuts.update", "auth.callback"} {
		d.Register(name, func(context.Context, Args) (any, error) { return nil, nil })
	}

	want := []string{"auth.callback", "shortcuts.update", "window.hide"}
	if got := d.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestArgsAccessors(t *testing.T) {
	args := Args{"s": "text", "f": float64(42), "i": 7, "b": true}

	if got := args.String("s"); got != "text" {
		t.Errorf("String() = %q", got)
	}
	if got := args.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	if got, ok := args.Int("f"); !ok || got != 42 {
		t.Errorf("Int(f) = %d,%v, want 42,true", got, ok)
	}
	if got, ok := args.Int("i"); !ok || got != 7 {
		t.Errorf("Int(i) = %d,%v, want 7,true", got, ok)
	}
	if _, ok := args.Int("missing"); ok {
		t.Error("Int(missing) reported present")
	}
	if !args.Bool("b") {
		t.Error("Bool(b) = false")
	}
}
