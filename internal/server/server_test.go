package server

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

func TestShutdownEndsEventStreams(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	logger := discardLogger()
	broker := NewBroker()
	sessions := NewRegistry(logger, broker, jeopardy.DefaultOptions(), 1)
	srv := New(ln.Addr().String(), logger, Deps{
		Sessions: sessions,
		Broker:   broker,
		DB:       pingFunc(func(context.Context) error { return nil }),
	})

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	sess, _, err := sessions.Create()
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "http://" + ln.Addr().String() + "/api/sessions/" + sess.ID + "/events"
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer resp.Body.Close()

	start := time.Now()
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if d := time.Since(start); d > 2*time.Second {
		t.Errorf("shutdown took %v, want under 2s", d)
	}
	if err := <-served; err != nil {
		t.Errorf("serve: %v", err)
	}

	r := bufio.NewReader(resp.Body)
	for {
		if _, err := r.ReadString('\n'); err != nil {
			break
		}
	}
	if ctx.Err() != nil {
		t.Fatal("event stream still open after shutdown")
	}
}
