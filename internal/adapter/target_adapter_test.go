package adapter

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetTargetAdapter(t *testing.T) {
	t.Run("rejects an empty address", func(t *testing.T) {
		_, err := NewNetTargetAdapter("tcp", "", time.Second)
		require.ErrorIs(t, err, ErrEmptyAddress)
	})

	t.Run("delivers the payload over tcp", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		received := make(chan []byte, 1)

		go func() {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()

			data, _ := io.ReadAll(conn)
			received <- data
		}()

		target, err := NewNetTargetAdapter("", ln.Addr().String(), time.Second)
		require.NoError(t, err)
		defer target.Close()

		require.NoError(t, target.Send(context.Background(), []byte{0xde, 0xad, 0xbe, 0xef}))

		select {
		case data := <-received:
			assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, data)
		case <-time.After(5 * time.Second):
			t.Fatal("payload was not received")
		}
	})

	t.Run("reports an unreachable target", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		addr := ln.Addr().String()
		require.NoError(t, ln.Close())

		target, err := NewNetTargetAdapter("tcp", addr, time.Second)
		require.NoError(t, err)

		require.Error(t, target.Send(context.Background(), []byte{1}))
	})
}

func TestDiscardTargetAdapter(t *testing.T) {
	target := NewDiscardTargetAdapter()

	require.NoError(t, target.Send(context.Background(), []byte{1, 2, 3}))
	require.NoError(t, target.Send(context.Background(), nil))

	assert.Equal(t, uint64(2), target.Payloads())
	assert.Equal(t, uint64(3), target.Bytes())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, target.Send(ctx, []byte{1}), context.Canceled)
	assert.Equal(t, uint64(2), target.Payloads())
}
