package server

import (
	"encoding/json"
	"testing"

	"github.com/playperu/jeopardy/internal/controller"
)

func TestBrokerPublish(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("s1")
	other := b.Subscribe("s2")

	b.Publish("s1", controller.Event{
		Kind:    controller.EventScoreChanged,
		Payload: controller.ScoreChangedPayload{Score: 300},
	})

	msg := <-ch
	if msg.Type != controller.EventScoreChanged {
		t.Errorf("type = %q, want %q", msg.Type, controller.EventScoreChanged)
	}
	if got, want := string(msg.Data), `{"type":"score_changed","data":{"score":300}}`; got != want {
		t.Errorf("data = %s, want %s", got, want)
	}

	select {
	case m := <-other:
		t.Errorf("other session received %s", m.Data)
	default:
	}
}

func TestBrokerBoardChangedHasNoData(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("s1")

	b.Publish("s1", controller.Event{Kind: controller.EventBoardChanged})

	var got map[string]any
	if err := json.Unmarshal((<-ch).Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := got["data"]; ok {
		t.Errorf("board_changed carries data: %v", got)
	}
}

func TestBrokerDropsWhenFull(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("s1")

	for i := 0; i < 20; i++ {
		b.Publish("s1", controller.Event{Kind: controller.EventBoardChanged})
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered = %d, want %d", len(ch), cap(ch))
	}
}

func TestBrokerClose(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("s1")

	b.Close("s1")
	if _, ok := <-ch; ok {
		t.Error("channel still open after Close")
	}
	if n := b.Subscribers("s1"); n != 0 {
		t.Errorf("subscribers = %d, want 0", n)
	}

	// Unsubscribing after Close must not close the channel twice.
	b.Unsubscribe("s1", ch)
}

func TestBrokerSubscribeAfterClose(t *testing.T) {
	b := NewBroker()
	b.Close("s1")

	ch := b.Subscribe("s1")
	if _, ok := <-ch; ok {
		t.Error("subscription to a closed session is open")
	}
	if n := b.Subscribers("s1"); n != 0 {
		t.Errorf("subscribers = %d, want 0", n)
	}
	b.Unsubscribe("s1", ch)

	// Other sessions are unaffected.
	other := b.Subscribe("s2")
	b.Publish("s2", controller.Event{Kind: controller.EventBoardChanged})
	if _, ok := <-other; !ok {
		t.Error("s2 channel closed")
	}
}

func TestBrokerShutdown(t *testing.T) {
	b := NewBroker()
	s1 := b.Subscribe("s1")
	s2 := b.Subscribe("s2")

	b.Shutdown()

	for name, ch := range map[string]chan message{"s1": s1, "s2": s2} {
		if _, ok := <-ch; ok {
			t.Errorf("%s channel still open after Shutdown", name)
		}
	}
	if _, ok := <-b.Subscribe("s3"); ok {
		t.Error("subscription accepted after Shutdown")
	}

	b.Unsubscribe("s1", s1)
}
