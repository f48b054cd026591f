package viedit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/viedit/internal/pubsub"
)

func TestRegister_SharedAcrossEditors(t *testing.T) {
	reg := NewRegister()
	first := New(Config{InitialText: "hello world", Register: reg})
	second := New(Config{InitialText: "", Register: reg})

	first.SetCursor(0)
	press(t, first, "d", "w")
	press(t, second, "P")

	require.Equal(t, "hello ", second.Text())
}

func TestRegister_DefaultIsProcessWide(t *testing.T) {
	saved := DefaultRegister.Get()
	t.Cleanup(func() { DefaultRegister.Set(saved) })

	first := New(Config{InitialText: "foo bar"})
	first.SetCursor(0)
	press(t, first, "y", "w")

	second := New(Config{InitialText: "x"})
	press(t, second, "p")

	require.Equal(t, "foo ", DefaultRegister.Get())
	require.Equal(t, "xfoo ", second.Text())
}

func TestRegister_PublishesWrites(t *testing.T) {
	reg := NewRegister()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := reg.Subscribe(ctx)

	e := New(Config{InitialText: "hello world", Register: reg})
	e.SetCursor(0)
	press(t, e, "d", "w")
	press(t, e, "y", "$")
	press(t, e, "c", "$")

	want := []struct {
		typ     pubsub.EventType
		payload string
	}{
		{pubsub.DeleteEvent, "hello "},
		{pubsub.YankEvent, "world"},
		{pubsub.ChangeEvent, "world"},
	}
	for _, w := range want {
		select {
		case ev := <-events:
			require.Equal(t, w.typ, ev.Type)
			require.Equal(t, w.payload, ev.Payload)
		case <-time.After(100 * time.Millisecond):
			require.Fail(t, "timeout waiting for register event")
		}
	}
}

func TestRegister_SetAndGet(t *testing.T) {
	reg := NewRegister()
	require.Empty(t, reg.Get())

	reg.Set("abc")
	require.Equal(t, "abc", reg.Get())
}
