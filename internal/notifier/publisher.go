package notifier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"AuctionAgent/internal/model"
)

// Publisher is the dashboard sink. The agent never reads anything back from it.
type Publisher interface {
	Publish(ctx context.Context, snap *model.GameSnapshot) error
	Close() error
}

// NoopPublisher drops every snapshot; used when no dashboard is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, _ *model.GameSnapshot) error { return nil }
func (NoopPublisher) Close() error                                          { return nil }

// ack is the relay's reply to each snapshot.
type ack struct {
	Status string `json:"status"`
	Round  int    `json:"round"`
	Error  string `json:"error"`
}

// WSPublisher pushes snapshots to the dashboard relay over a websocket and waits for
// the relay's acknowledgement. A broken connection is dropped and redialed on the next publish.
type WSPublisher struct {
	URL          string
	Dialer       *websocket.Dialer
	WriteTimeout time.Duration
	AckTimeout   time.Duration

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWSPublisher creates a publisher for the relay at url.
func NewWSPublisher(url string) *WSPublisher {
	return &WSPublisher{
		URL:          url,
		Dialer:       &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		WriteTimeout: 10 * time.Second,
		AckTimeout:   10 * time.Second,
	}
}

// Publish sends one snapshot and waits for the relay's ack.
func (p *WSPublisher) Publish(ctx context.Context, snap *model.GameSnapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		conn, _, err := p.Dialer.DialContext(ctx, p.URL, nil)
		if err != nil {
			return fmt.Errorf("dial relay: %w", err)
		}
		p.conn = conn
		log.Printf("[INFO] connected to dashboard relay %s", p.URL)
	}

	if err := p.exchange(snap); err != nil {
		p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

func (p *WSPublisher) exchange(snap *model.GameSnapshot) error {
	_ = p.conn.SetWriteDeadline(time.Now().Add(p.WriteTimeout))
	if err := p.conn.WriteJSON(snap); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	_ = p.conn.SetReadDeadline(time.Now().Add(p.AckTimeout))
	var reply ack
	if err := p.conn.ReadJSON(&reply); err != nil {
		return fmt.Errorf("read ack: %w", err)
	}
	if reply.Error != "" {
		return fmt.Errorf("relay rejected snapshot: %s", reply.Error)
	}
	if reply.Round != snap.Round {
		log.Printf("[WARN] relay acked round %d, sent %d", reply.Round, snap.Round)
	}
	return nil
}

// Close sends a close frame and releases the connection.
func (p *WSPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return nil
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "agent done")
	_ = p.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	err := p.conn.Close()
	p.conn = nil
	return err
}

// PublishWithRetry publishes with exponential backoff starting at base.
func PublishWithRetry(ctx context.Context, p Publisher, snap *model.GameSnapshot, maxRetries int, base time.Duration) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := p.Publish(ctx, snap); err != nil {
			lastErr = err
			if i == maxRetries {
				break
			}
			backoff := base * time.Duration(1<<uint(i))
			log.Printf("[WARN] publish failed (attempt %d/%d): %v, retrying in %v", i+1, maxRetries+1, err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}

// ErrQueueFull is returned by Enqueue when the publisher is too far behind.
var ErrQueueFull = errors.New("publish queue full")

// Queue decouples publishing from bidding: snapshots are handed over without blocking
// and delivered in order by Run.
type Queue struct {
	Publisher  Publisher
	MaxRetries int
	Backoff    time.Duration

	ch chan *model.GameSnapshot
}

// NewQueue buffers up to size snapshots for pub.
func NewQueue(pub Publisher, size int) *Queue {
	return &Queue{
		Publisher:  pub,
		MaxRetries: 3,
		Backoff:    time.Second,
		ch:         make(chan *model.GameSnapshot, size),
	}
}

// Enqueue hands a snapshot to Run without blocking.
func (q *Queue) Enqueue(snap *model.GameSnapshot) error {
	select {
	case q.ch <- snap:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run delivers queued snapshots until ctx is cancelled.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] publish queue stopped")
			return
		case snap := <-q.ch:
			if err := PublishWithRetry(ctx, q.Publisher, snap, q.MaxRetries, q.Backoff); err != nil {
				log.Printf("[ERROR] publish round %d: %v", snap.Round, err)
			}
		}
	}
}
