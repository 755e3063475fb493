// Package adapter contains the IO ports of a campaign: the target that
// receives payloads and the store that keeps failing iterations.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

// ErrEmptyAddress is returned when a network target has no address.
var ErrEmptyAddress = errors.New("target address is empty")

// TargetAdapter delivers serialized payloads to the system under test. It is
// called concurrently by all workers.
type TargetAdapter interface {
	// Send delivers payload. An error marks the iteration as failed.
	Send(ctx context.Context, payload []byte) error
	// Close releases any resources held by the adapter.
	Close() error
}

// NetTargetAdapter dials a fresh connection for every payload, writes it and
// closes the connection.
type NetTargetAdapter struct {
	network string
	address string
	dialer  net.Dialer
	timeout time.Duration
}

// NewNetTargetAdapter returns an adapter for address over network ("tcp" or
// "udp"). timeout bounds both dialing and writing.
func NewNetTargetAdapter(network, address string, timeout time.Duration) (*NetTargetAdapter, error) {
	if address == "" {
		return nil, ErrEmptyAddress
	}

	if network == "" {
		network = "tcp"
	}

	return &NetTargetAdapter{
		network: network,
		address: address,
		dialer:  net.Dialer{Timeout: timeout},
		timeout: timeout,
	}, nil
}

// Address returns the target address.
func (a *NetTargetAdapter) Address() string {
	return a.address
}

// Send writes payload to a new connection.
func (a *NetTargetAdapter) Send(ctx context.Context, payload []byte) error {
	conn, err := a.dialer.DialContext(ctx, a.network, a.address)
	if err != nil {
		return fmt.Errorf("dial %s %s: %w", a.network, a.address, err)
	}

	defer conn.Close()

	if a.timeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(a.timeout)); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
	}

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("write to %s: %w", a.address, err)
	}

	return nil
}

// Close is a no-op: connections are closed after every payload.
func (a *NetTargetAdapter) Close() error {
	return nil
}

// DiscardTargetAdapter drops every payload. It is used for dry runs.
type DiscardTargetAdapter struct {
	payloads atomic.Uint64
	bytes    atomic.Uint64
}

// NewDiscardTargetAdapter returns an adapter that only counts payloads.
func NewDiscardTargetAdapter() *DiscardTargetAdapter {
	return &DiscardTargetAdapter{}
}

func (a *DiscardTargetAdapter) Send(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.payloads.Add(1)
	a.bytes.Add(uint64(len(payload)))

	return nil
}

func (a *DiscardTargetAdapter) Close() error {
	return nil
}

// Payloads returns how many payloads were sent.
func (a *DiscardTargetAdapter) Payloads() uint64 {
	return a.payloads.Load()
}

// Bytes returns the total size of all payloads.
func (a *DiscardTargetAdapter) Bytes() uint64 {
	return a.bytes.Load()
}
