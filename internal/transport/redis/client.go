package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictacgpu/internal/entity"
)

const defaultPublishTimeout = 250 * time.Millisecond

// Client publishes round snapshots to a pub/sub channel for spectators. Nothing is stored.
type Client struct {
	client  *redis.Client
	channel string
	timeout time.Duration
}

// Connect - dials addr and checks the connection with a ping.
func Connect(ctx context.Context, addr, channel string, timeout time.Duration) (*Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return New(conn, channel, timeout), nil
}

func New(conn *redis.Client, channel string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &Client{
		client:  conn,
		channel: channel,
		timeout: timeout,
	}
}

// Publish - sends the snapshot as JSON. Blocks for at most the configured timeout.
func (that *Client) Publish(snapshot entity.RoundSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal round snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
	defer cancel()

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish round snapshot: %w", err)
	}

	return nil
}

func (that *Client) Close() error {
	return that.client.Close()
}
