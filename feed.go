package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// PriceUpdate is one message from a live quote stream.
type PriceUpdate struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Change    float64   `json:"change"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceFeed subscribes to a websocket quote stream. The feed only delivers
// fresh price data; the caller reacts by re-invoking the analytics pipeline
// with an updated snapshot, the core itself holds no subscription state.
type PriceFeed struct {
	URL string
}

// Run connects to the stream and forwards updates until the context is
// cancelled or the connection drops. The updates channel is closed on
// return.
func (f *PriceFeed) Run(ctx context.Context, updates chan<- PriceUpdate) error {
	defer close(updates)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.URL, nil)
	if err != nil {
		return fmt.Errorf("cannot connect to price feed %s: %w", f.URL, err)
	}
	defer conn.Close()

	// Unblock ReadJSON when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var update PriceUpdate
		if err := conn.ReadJSON(&update); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("price feed closed: %w", err)
		}
		select {
		case updates <- update:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
