package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultReconnectDelay = 5 * time.Second
	defaultPingInterval   = 20 * time.Second
	defaultPongTimeout    = 10 * time.Second
	handshakeTimeout      = 10 * time.Second
)

// EventKind classifies engine lifecycle events.
type EventKind int

const (
	EventConnecting EventKind = iota
	EventConnected
	EventDisconnected
	EventPhoneConnected
	EventPhoneDisconnected
	EventCommand
)

// Event notifies observers (dashboard, notifiers) of engine activity.
type Event struct {
	Kind   EventKind
	Detail string
}

// Engine keeps the agent reachable by the relay indefinitely. It owns the
// connection lifecycle (connect, authenticate, listen, reconnect) and
// dispatches inbound envelopes to registered handlers, one at a time in
// arrival order.
type Engine struct {
	relayURL string
	token    string

	reconnectDelay time.Duration
	pingInterval   time.Duration
	pongTimeout    time.Duration

	handlers map[string]Handler
	onEvent  func(Event)
	dialer   *websocket.Dialer

	writeMu sync.Mutex // gorilla allows one concurrent writer
}

// New creates an engine for the given relay endpoint and pairing token.
func New(relayURL, token string) *Engine {
	return &Engine{
		relayURL:       relayURL,
		token:          token,
		reconnectDelay: defaultReconnectDelay,
		pingInterval:   defaultPingInterval,
		pongTimeout:    defaultPongTimeout,
		handlers:       make(map[string]Handler),
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

// Handle registers a handler for an envelope type. Registration happens at
// startup; a duplicate type is a programming error and is rejected.
func (e *Engine) Handle(envType string, h Handler) error {
	if envType == "" || h == nil {
		return fmt.Errorf("relay: handler registration requires a type and a func")
	}
	if _, exists := e.handlers[envType]; exists {
		return fmt.Errorf("relay: handler for %q already registered", envType)
	}
	e.handlers[envType] = h
	return nil
}

// OnEvent installs an observer for lifecycle events. Must be called before
// Run.
func (e *Engine) OnEvent(fn func(Event)) { e.onEvent = fn }

func (e *Engine) emit(ev Event) {
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}

// Run connects to the relay and reconnects after every disconnect with a
// fixed delay, forever, until ctx is cancelled. No error short of
// cancellation is fatal.
func (e *Engine) Run(ctx context.Context) error {
	for {
		e.emit(Event{Kind: EventConnecting, Detail: e.relayURL})

		if err := e.connectOnce(ctx); err != nil {
			log.Printf("[relay] connection error: %v", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		e.emit(Event{Kind: EventDisconnected})
		log.Printf("[relay] reconnecting in %s...", e.reconnectDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.reconnectDelay):
		}
	}
}

// connectOnce runs a single session: dial, authenticate, then listen until
// the transport closes. The connection is released on every exit path.
func (e *Engine) connectOnce(ctx context.Context) error {
	connectURL, err := e.buildURL()
	if err != nil {
		return fmt.Errorf("build relay URL: %w", err)
	}

	log.Printf("[relay] connecting to %s", e.relayURL)
	conn, _, err := e.dialer.DialContext(ctx, connectURL, nil)
	if err != nil {
		return fmt.Errorf("dial relay: %w", err)
	}
	defer conn.Close()

	log.Printf("[relay] connected")
	e.emit(Event{Kind: EventConnected})

	// Authenticate; fire-and-forget, no ack is awaited.
	if err := e.write(conn, Envelope{Type: TypeAuth, Token: e.token}); err != nil {
		return fmt.Errorf("send auth: %w", err)
	}

	// Close the connection when the context is cancelled so the blocked
	// read below returns. done ends the watcher on normal disconnect.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	e.keepAlive(conn, done)

	// Listen: messages are processed one at a time in arrival order.
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[relay] connection closed")
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		e.handleMessage(ctx, conn, raw)
	}
}

// keepAlive pings the relay on an interval and treats a missed pong as a
// dead connection.
func (e *Engine) keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	conn.SetReadDeadline(time.Now().Add(e.pingInterval + e.pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(e.pingInterval + e.pongTimeout))
	})

	go func() {
		ticker := time.NewTicker(e.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				e.writeMu.Lock()
				err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(e.pongTimeout))
				e.writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()
}

// handleMessage decodes and dispatches a single inbound message. Nothing
// here crashes the listen loop: malformed payloads and handler errors are
// reported back on the same connection.
func (e *Engine) handleMessage(ctx context.Context, conn *websocket.Conn, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("[relay] malformed message: %v", err)
		e.respond(conn, ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	switch env.Type {
	case TypeRelayStatus:
		// Informational only, no reply.
		if env.PhoneConnected != nil {
			if *env.PhoneConnected {
				log.Printf("[relay] phone connected")
				e.emit(Event{Kind: EventPhoneConnected})
			} else {
				log.Printf("[relay] phone disconnected")
				e.emit(Event{Kind: EventPhoneDisconnected})
			}
		}
		return

	case TypeAuth:
		// Reply-only acknowledgment; does not gate further processing.
		e.respond(conn, AuthAck{OK: true, Auth: true, Type: TypeAuthResponse})
		return
	}

	handler, ok := e.handlers[env.Type]
	if !ok {
		log.Printf("[relay] unknown command: %s", env.Type)
		e.respond(conn, ErrorResponse{Error: "Unknown command: " + env.Type})
		return
	}

	resp, err := handler(ctx, env)
	if err != nil {
		log.Printf("[relay] handler %s failed: %v", env.Type, err)
		e.respond(conn, ErrorResponse{Error: err.Error()})
		return
	}
	e.respond(conn, resp)
	e.emit(Event{Kind: EventCommand, Detail: env.Type})
	log.Printf("[relay] command executed: %s", env.Type)
}

// respond sends a response on the connection that received the request.
// Send failures are swallowed; the reconnect loop is the recovery path.
func (e *Engine) respond(conn *websocket.Conn, resp any) {
	if err := e.write(conn, resp); err != nil {
		log.Printf("[relay] send response failed: %v", err)
	}
}

func (e *Engine) write(conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e.writeMu.Lock()
	defer e.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

// buildURL appends the token and client marker as query parameters.
func (e *Engine) buildURL() (string, error) {
	u, err := url.Parse(e.relayURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", e.token)
	q.Set("client", "pc")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
