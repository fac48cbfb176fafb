package transport

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queue struct {
	mutex  sync.Mutex
	pdus   [][]byte
	err    error
	closed chan struct{}
}

func newQueue(err error, pdus ...[]byte) *queue {
	return &queue{pdus: pdus, err: err, closed: make(chan struct{})}
}

func (q *queue) ReadPDU() ([]byte, error) {
	q.mutex.Lock()
	if len(q.pdus) > 0 {
		data := q.pdus[0]
		q.pdus = q.pdus[1:]
		q.mutex.Unlock()
		return data, nil
	}
	q.mutex.Unlock()
	if q.err != nil {
		return nil, q.err
	}
	<-q.closed
	return nil, errors.New("use of closed association")
}

func (q *queue) Close() error {
	select {
	case <-q.closed:
	default:
		close(q.closed)
	}
	return nil
}

type collector struct {
	mutex    sync.Mutex
	received [][]byte
}

func (c *collector) Dispatch(_ context.Context, data []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.received = append(c.received, data)
	return errors.New("not handled")
}

func TestServeUntilEOF(t *testing.T) {
	reader := newQueue(io.EOF, []byte{0x01}, []byte{0x02})
	dispatcher := new(collector)
	require.NoError(t, Serve(context.Background(), reader, dispatcher, nil))
	assert.Equal(t, [][]byte{{0x01}, {0x02}}, dispatcher.received)
}

func TestServeReadError(t *testing.T) {
	failure := errors.New("connection reset")
	err := Serve(context.Background(), newQueue(failure), new(collector), nil)
	assert.True(t, errors.Is(err, failure))
}

func TestServeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- Serve(ctx, newQueue(nil, []byte{0x01}), new(collector), nil)
	}()
	cancel()
	select {
	case err := <-result:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestNetworkOrder(t *testing.T) {
	assert.Equal(t, S1AP_PPID, networkOrder(networkOrder(S1AP_PPID)))

	options := Options{Address: "127.0.0.1"}.withDefaults()
	assert.Equal(t, S1AP_PORT, options.Port)
	assert.Equal(t, S1AP_PPID, options.PPID)
	assert.Equal(t, uint16(2), options.Streams)
}

func TestLoopback(t *testing.T) {
	listener, err := Listen(Options{Address: "127.0.0.1", Port: 38412}, nil)
	if err != nil {
		t.Skipf("SCTP unavailable: %v", err)
	}
	defer listener.Close()

	accepted := make(chan *Association, 1)
	go func() {
		association, err := listener.Accept()
		if err != nil {
			close(accepted)
			return
		}
		accepted <- association
	}()

	client, err := Dial(Options{Address: "127.0.0.1", Port: 38412}, nil)
	if err != nil {
		t.Skipf("SCTP unavailable: %v", err)
	}
	defer client.Close()

	server, ok := <-accepted
	require.True(t, ok)
	defer server.Close()

	payload := []byte{0x00, 0x11, 0x00, 0x01, 0x00}
	require.NoError(t, client.Send(payload))
	data, err := server.ReadPDU()
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}
