package transport

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/logger"
)

// Reader is the receiving side of an association.
type Reader interface {
	ReadPDU() ([]byte, error)
	Close() error
}

// Dispatcher consumes received PDUs.
type Dispatcher interface {
	Dispatch(ctx context.Context, data []byte) error
}

// Serve reads PDUs from reader and dispatches them in order until the peer
// closes the association or ctx ends. Dispatch errors are logged and do not
// stop the loop.
func Serve(ctx context.Context, reader Reader, dispatcher Dispatcher, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			reader.Close()
		case <-done:
		}
	}()

	for {
		data, err := reader.ReadPDU()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				log.Info("Association closed by peer")
				return nil
			}
			return errors.Wrap(err, "read PDU")
		}
		if err := dispatcher.Dispatch(ctx, data); err != nil {
			log.Warn("Dispatch failed: %v", err)
		}
	}
}
