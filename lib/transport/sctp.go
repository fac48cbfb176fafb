// Package transport carries S1AP PDUs over SCTP.
package transport

import (
	"encoding/binary"
	"io"
	"net"
	"strconv"
	"syscall"

	"github.com/ishidawataru/sctp"
	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/logger"
)

const (
	// S1AP_PPID is the SCTP payload protocol identifier of S1AP.
	S1AP_PPID uint32 = 18

	// S1AP_PORT is the SCTP port of the MME.
	S1AP_PORT = 36412

	bufferSize = 65536
)

// ErrNotConnected is returned when writing to a closed association.
var ErrNotConnected = errors.New("SCTP association not established")

// Options describes one end of an association.
type Options struct {
	Address string
	Port    int
	PPID    uint32
	Streams uint16
}

func (o Options) withDefaults() Options {
	if o.Port == 0 {
		o.Port = S1AP_PORT
	}
	if o.PPID == 0 {
		o.PPID = S1AP_PPID
	}
	if o.Streams == 0 {
		o.Streams = 2
	}
	return o
}

func (o Options) resolve() (*sctp.SCTPAddr, error) {
	address, err := sctp.ResolveSCTPAddr("sctp", net.JoinHostPort(o.Address, strconv.Itoa(o.Port)))
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s:%d", o.Address, o.Port)
	}
	return address, nil
}

func (o Options) init() sctp.InitMsg {
	return sctp.InitMsg{
		NumOstreams:    o.Streams,
		MaxInstreams:   o.Streams,
		MaxAttempts:    2,
		MaxInitTimeout: 2,
	}
}

// networkOrder swaps v between host and network byte order. The kernel
// carries the PPID as sent, in network order.
func networkOrder(v uint32) uint32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return binary.NativeEndian.Uint32(b[:])
}

// Association is an established SCTP association exchanging S1AP PDUs.
type Association struct {
	*logger.Logger

	conn   *sctp.SCTPConn
	ppid   uint32
	buffer []byte
}

func newAssociation(conn *sctp.SCTPConn, options Options, log *logger.Logger) (*Association, error) {
	if log == nil {
		log = logger.Nop()
	}
	events := sctp.SCTP_EVENT_DATA_IO | sctp.SCTP_EVENT_SHUTDOWN | sctp.SCTP_EVENT_ASSOCIATION
	if err := conn.SubscribeEvents(events); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "subscribe events")
	}
	info := &sctp.SndRcvInfo{PPID: networkOrder(options.PPID)}
	if err := conn.SetDefaultSentParam(info); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "set default sent param")
	}
	return &Association{
		Logger: log.With("peer", conn.RemoteAddr().String()),
		conn:   conn,
		ppid:   options.PPID,
		buffer: make([]byte, bufferSize),
	}, nil
}

// Dial opens an association to the peer described by options.
func Dial(options Options, log *logger.Logger) (*Association, error) {
	options = options.withDefaults()
	remote, err := options.resolve()
	if err != nil {
		return nil, err
	}
	conn, err := sctp.DialSCTPExt("sctp", nil, remote, options.init())
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", remote)
	}
	return newAssociation(conn, options, log)
}

// ReadPDU returns the next S1AP payload. Notifications and payloads with
// another PPID are skipped.
func (a *Association) ReadPDU() ([]byte, error) {
	for {
		n, info, err := a.conn.SCTPRead(a.buffer)
		if err != nil {
			if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR) {
				continue
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		if n == 0 {
			return nil, io.EOF
		}
		if info == nil {
			continue
		}
		if ppid := networkOrder(info.PPID); ppid != a.ppid {
			a.Warn("Dropped %d bytes with PPID %d", n, ppid)
			continue
		}
		return append([]byte(nil), a.buffer[:n]...), nil
	}
}

// WritePDU sends one S1AP payload on stream 0.
func (a *Association) WritePDU(data []byte) error {
	if a.conn == nil {
		return ErrNotConnected
	}
	info := &sctp.SndRcvInfo{PPID: networkOrder(a.ppid), Stream: 0}
	if _, err := a.conn.SCTPWrite(data, info); err != nil {
		return errors.Wrap(err, "SCTP write")
	}
	return nil
}

// Send implements procedure.Sender.
func (a *Association) Send(data []byte) error {
	return a.WritePDU(data)
}

func (a *Association) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}

// Listener accepts associations from peers.
type Listener struct {
	*logger.Logger

	listener *sctp.SCTPListener
	options  Options
}

// Listen binds the local end described by options.
func Listen(options Options, log *logger.Logger) (*Listener, error) {
	if log == nil {
		log = logger.Nop()
	}
	options = options.withDefaults()
	local, err := options.resolve()
	if err != nil {
		return nil, err
	}
	listener, err := sctp.ListenSCTPExt("sctp", local, options.init())
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s", local)
	}
	return &Listener{Logger: log, listener: listener, options: options}, nil
}

func (l *Listener) Addr() net.Addr {
	return l.listener.Addr()
}

// Accept waits for the next association.
func (l *Listener) Accept() (*Association, error) {
	conn, err := l.listener.AcceptSCTP()
	if err != nil {
		return nil, err
	}
	l.Info("Accepted association from %s", conn.RemoteAddr())
	return newAssociation(conn, l.options, l.Logger)
}

func (l *Listener) Close() error {
	return l.listener.Close()
}
