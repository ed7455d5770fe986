package gameclient

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"AuctionAgent/internal/model"
)

// Bidder decides a round. Calls are serialized by the client.
type Bidder interface {
	Decide(in *model.RoundInput) *model.Decision
}

// BidderFunc adapts a plain function to Bidder.
type BidderFunc func(in *model.RoundInput) *model.Decision

func (f BidderFunc) Decide(in *model.RoundInput) *model.Decision { return f(in) }

// RoundHook observes each round after the bids were sent.
type RoundHook func(in *model.RoundInput, d *model.Decision)

// roundMessage is one frame from the game server.
type roundMessage struct {
	model.RoundInput
	Done bool `json:"done"`
}

type bidReply struct {
	Bids map[string]int `json:"bids"`
	Pool int            `json:"pool"`
}

// Client plays one game against the auction server over a websocket.
type Client struct {
	URL       string
	AgentName string
	Dialer    *websocket.Dialer
	OnRound   RoundHook
}

// NewClient creates a client for the game server endpoint url.
func NewClient(url, agentName string) *Client {
	return &Client{
		URL:       url,
		AgentName: agentName,
		Dialer:    &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

// Run plays until the server ends the game, ctx is cancelled, or the connection fails.
func (c *Client) Run(ctx context.Context, b Bidder) error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("parse game url: %w", err)
	}
	q := u.Query()
	q.Set("agent_name", c.AgentName)
	u.RawQuery = q.Encode()

	conn, _, err := c.Dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("dial game server: %w", err)
	}
	defer conn.Close()
	log.Printf("[INFO] connected to game server %s as %s", c.URL, c.AgentName)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "agent shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			conn.Close()
		case <-stop:
		}
	}()

	rounds := 0
	for {
		var msg roundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[INFO] game server closed the connection after %d rounds", rounds)
				return nil
			}
			return fmt.Errorf("read round: %w", err)
		}
		if msg.Done {
			log.Printf("[INFO] game finished after %d rounds", rounds)
			return nil
		}

		in := &msg.RoundInput
		d := b.Decide(in)
		if err := conn.WriteJSON(bidReply{Bids: d.Bids, Pool: d.Pool}); err != nil {
			return fmt.Errorf("send bids for round %d: %w", in.Round, err)
		}
		rounds++

		if c.OnRound != nil {
			c.OnRound(in, d)
		}
	}
}
