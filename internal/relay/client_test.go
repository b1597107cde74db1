package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newTestRelay starts a fake relay that hands accepted connections to the
// test over a channel.
func newTestRelay(t *testing.T) (*httptest.Server, chan *websocket.Conn) {
	t.Helper()
	conns := make(chan *websocket.Conn, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("client") != "pc" {
			t.Errorf("missing client=pc marker in query: %s", r.URL.RawQuery)
		}
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)
	return srv, conns
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

// startEngine runs the engine in the background with test-friendly timing.
func startEngine(t *testing.T, e *Engine) context.CancelFunc {
	t.Helper()
	e.reconnectDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("engine did not stop after cancel")
		}
	})
	return cancel
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read from engine: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return m
}

func sendJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	if err := conn.WriteJSON(v); err != nil {
		t.Fatalf("write to engine: %v", err)
	}
}

func TestEngineSendsAuthOnConnect(t *testing.T) {
	srv, conns := newTestRelay(t)

	e := New(wsURL(srv), "tok123")
	startEngine(t, e)

	conn := <-conns
	defer conn.Close()

	auth := readJSON(t, conn)
	if auth["type"] != "auth" {
		t.Errorf("first message type = %v, want auth", auth["type"])
	}
	if auth["token"] != "tok123" {
		t.Errorf("auth token = %v, want tok123", auth["token"])
	}
}

func TestEngineDispatchRoundTrip(t *testing.T) {
	srv, conns := newTestRelay(t)

	e := New(wsURL(srv), "tok")
	if err := e.Handle("echo", func(ctx context.Context, env Envelope) (any, error) {
		return map[string]any{"ok": true, "echo": env.Text}, nil
	}); err != nil {
		t.Fatal(err)
	}
	startEngine(t, e)

	conn := <-conns
	defer conn.Close()
	readJSON(t, conn) // auth

	sendJSON(t, conn, map[string]any{"type": "echo", "text": "hello"})
	resp := readJSON(t, conn)
	if resp["ok"] != true || resp["echo"] != "hello" {
		t.Errorf("response = %v", resp)
	}
}

func TestEngineAuthAck(t *testing.T) {
	srv, conns := newTestRelay(t)

	e := New(wsURL(srv), "tok")
	startEngine(t, e)

	conn := <-conns
	defer conn.Close()
	readJSON(t, conn) // outbound auth

	sendJSON(t, conn, map[string]any{"type": "auth", "token": "whatever"})
	resp := readJSON(t, conn)
	if resp["ok"] != true || resp["auth"] != true || resp["type"] != "auth_response" {
		t.Errorf("auth ack = %v", resp)
	}
}

func TestEngineRelayStatusNoReply(t *testing.T) {
	srv, conns := newTestRelay(t)

	e := New(wsURL(srv), "tok")
	if err := e.Handle("probe", func(ctx context.Context, env Envelope) (any, error) {
		return map[string]any{"ok": true}, nil
	}); err != nil {
		t.Fatal(err)
	}
	startEngine(t, e)

	conn := <-conns
	defer conn.Close()
	readJSON(t, conn) // auth

	sendJSON(t, conn, map[string]any{"type": "relay_status", "phone_connected": true})
	// The next reply must belong to the probe, not the status message.
	sendJSON(t, conn, map[string]any{"type": "probe"})
	resp := readJSON(t, conn)
	if resp["ok"] != true || resp["echo"] != nil {
		t.Errorf("unexpected reply ordering: %v", resp)
	}
}

func TestEngineUnknownCommand(t *testing.T) {
	srv, conns := newTestRelay(t)

	e := New(wsURL(srv), "tok")
	startEngine(t, e)

	conn := <-conns
	defer conn.Close()
	readJSON(t, conn) // auth

	sendJSON(t, conn, map[string]any{"type": "self_destruct"})
	resp := readJSON(t, conn)
	if resp["ok"] != false {
		t.Errorf("ok = %v, want false", resp["ok"])
	}
	if errMsg, _ := resp["error"].(string); !strings.Contains(errMsg, "Unknown command: self_destruct") {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestEngineMalformedPayload(t *testing.T) {
	srv, conns := newTestRelay(t)

	e := New(wsURL(srv), "tok")
	if err := e.Handle("probe", func(ctx context.Context, env Envelope) (any, error) {
		return map[string]any{"ok": true}, nil
	}); err != nil {
		t.Fatal(err)
	}
	startEngine(t, e)

	conn := <-conns
	defer conn.Close()
	readJSON(t, conn) // auth

	conn.WriteMessage(websocket.TextMessage, []byte("{not json"))
	resp := readJSON(t, conn)
	if resp["ok"] != false {
		t.Errorf("decode error response = %v", resp)
	}

	// Session stays alive after the decode error.
	sendJSON(t, conn, map[string]any{"type": "probe"})
	resp = readJSON(t, conn)
	if resp["ok"] != true {
		t.Errorf("session dead after decode error: %v", resp)
	}
}

func TestEngineReconnects(t *testing.T) {
	srv, conns := newTestRelay(t)

	e := New(wsURL(srv), "tok")
	startEngine(t, e)

	first := <-conns
	readJSON(t, first) // auth
	first.Close()

	// The engine must dial again on its own after the fixed delay.
	select {
	case second := <-conns:
		defer second.Close()
		auth := readJSON(t, second)
		if auth["type"] != "auth" {
			t.Errorf("reconnected session did not authenticate: %v", auth)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("engine did not reconnect")
	}
}

func TestHandleRejectsDuplicates(t *testing.T) {
	e := New("ws://example.invalid", "tok")
	h := func(ctx context.Context, env Envelope) (any, error) { return nil, nil }

	if err := e.Handle("x", h); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := e.Handle("x", h); err == nil {
		t.Error("duplicate registration accepted")
	}
	if err := e.Handle("", h); err == nil {
		t.Error("empty type accepted")
	}
}
