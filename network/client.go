// Package network connects the client to a game server. Router callbacks run
// on necs goroutines; they only queue messages, which the game loop drains at
// the start of each tick.
package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	default:
		return "disconnected"
	}
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	playerID   netconfig.EntityID
	serverName string
	tickRate   int
	level      string
	conn       *websocket.Conn

	// inbox holds entity messages in arrival order until the next tick.
	inbox []any
}

func NewClient() *Client {
	return &Client{
		state: StateDisconnected,
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
		}); err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: playerID=%d server=%s tickRate=%d level=%s",
			msg.PlayerID, msg.ServerName, msg.TickRate, msg.Level)
		c.mu.Lock()
		c.playerID = netconfig.EntityID(msg.PlayerID)
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.level = msg.Level
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, msg messages.EntitySpawn) {
		c.Enqueue(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.EntityUpdate) {
		c.Enqueue(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.EntityRemove) {
		c.Enqueue(msg)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.inbox = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

// Enqueue queues an entity message for the next tick.
func (c *Client) Enqueue(msg any) {
	c.mu.Lock()
	c.inbox = append(c.inbox, msg)
	c.mu.Unlock()
}

// Drain returns every queued message in arrival order and empties the queue.
// Non-blocking.
func (c *Client) Drain() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.inbox
	c.inbox = nil
	return out
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// PlayerID is the id of the entity the server assigned to this client.
func (c *Client) PlayerID() netconfig.EntityID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playerID
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) Level() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
