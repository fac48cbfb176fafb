// Package bitbuffer provides bit-level I/O for ASN.1 PER (Packed Encoding Rules).
//
// # Overview
//
// The Codec type is a cursor over a byte slice with MSB-first bit ordering. A
// writer appends bits to the end of its buffer, a reader consumes bits from the
// front. Both sides keep a single bit counter; the byte index and the offset
// inside the current byte are derived from it, so there is no partially
// consumed state to keep in sync.
//
// # Key Features
//
//   - Fast paths for byte-aligned operations using encoding/binary.BigEndian
//   - Bit-by-bit packing and unpacking when the cursor sits mid-byte
//   - Zero padding on Align, skipping on Advance
//   - Remaining reports how many unread bits are left, so callers can fail
//     before touching a truncated buffer
//
// # Scope
//
// This package only moves bits. Callers are responsible for the ASN.1 meaning
// of those bits and for constraint validation.
//
// # Thread Safety
//
// Codec is NOT thread-safe. Each goroutine should use its own instance.
package bitbuffer

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

const (
	// BITS_PER_BYTE is the number of bits in a byte
	BITS_PER_BYTE = 8

	// TMP_ARRAY_SIZE is the size of temporary arrays used for binary operations
	TMP_ARRAY_SIZE = 8
)

var (
	// ErrInsufficientData is returned when a read needs more bits than remain.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrBitCount is returned for a bit count outside 1..64.
	ErrBitCount = errors.New("bit count must be between 1 and 64")

	// ErrNegativeCount is returned for a negative byte count.
	ErrNegativeCount = errors.New("negative byte count")
)

// InitialBufferSize is the initial capacity for the buffer in CreateWriter.
var InitialBufferSize = 64

// Codec manages a bit stream for encoding and decoding.
// Fields:
//
//	Buff: byte slice holding the bit stream
//	written: total number of bits written; len(Buff) == ceil(written/8)
//	read: total number of bits read; the read cursor
type Codec struct {
	Buff    []byte
	written uint64
	read    uint64
}

// CreateWriter creates a new Codec for writing with InitialBufferSize bytes
// of capacity pre-allocated.
func CreateWriter() *Codec {
	return &Codec{
		Buff: make([]byte, 0, InitialBufferSize),
	}
}

// CreateReader creates a new Codec reading data from its first bit.
// The slice is not copied.
func CreateReader(data []byte) *Codec {
	return &Codec{
		Buff:    data,
		written: uint64(len(data)) * BITS_PER_BYTE,
	}
}

// Len returns the number of bytes in the buffer, including a partial last byte.
func (c *Codec) Len() int {
	return len(c.Buff)
}

// Cap returns the capacity of the underlying buffer.
func (c *Codec) Cap() int {
	return cap(c.Buff)
}

// NumWritten returns the total number of bits written. For a reader this is
// the size of the input in bits.
func (c *Codec) NumWritten() uint64 {
	return c.written
}

// NumRead returns the total number of bits read.
func (c *Codec) NumRead() uint64 {
	return c.read
}

// Remaining returns the number of bits left to read.
func (c *Codec) Remaining() uint64 {
	return c.written - c.read
}

// IsAligned reports whether the write cursor sits on a byte boundary.
func (c *Codec) IsAligned() bool {
	return c.written&7 == 0
}

// Bytes returns the written data. A partial final byte is zero padded.
func (c *Codec) Bytes() []byte {
	if c.written == 0 {
		return nil
	}
	return c.Buff
}

// String implements the fmt.Stringer interface for Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("Codec{Buff: len=%d, written: %d, read: %d}",
		len(c.Buff), c.written, c.read)
}

// grow appends n zero bytes, doubling capacity when it runs out.
func (c *Codec) grow(n int) {
	if cap(c.Buff) < len(c.Buff)+n {
		capacity := max(cap(c.Buff)*2, len(c.Buff)+n)
		c.Buff = slices.Grow(c.Buff, capacity-len(c.Buff))
	}
	size := len(c.Buff)
	c.Buff = c.Buff[:size+n]
	clear(c.Buff[size:])
}

// Write writes the least significant num bits of value (1 <= num <= 64),
// most significant bit first.
//
// Fast path: whole bytes when the cursor is byte aligned and num is a
// multiple of eight. Slow path: chunks of at most eight bits filling the
// current byte.
func (c *Codec) Write(num uint8, value uint64) error {
	if num == 0 || num > 64 {
		return ErrBitCount
	}
	if num < 64 {
		value = value & ((1 << num) - 1)
	}

	if c.written&7 == 0 && num&7 == 0 {
		nbytes := int(num) >> 3
		tmp := [TMP_ARRAY_SIZE]byte{}
		binary.BigEndian.PutUint64(tmp[:], value<<(64-uint(num)))
		c.Buff = append(c.Buff, tmp[:nbytes]...)
		c.written += uint64(num)
		return nil
	}

	pending := num
	for pending > 0 {
		offset := uint8(c.written & 7)
		if offset == 0 {
			c.grow(1)
		}
		var (
			available = 8 - offset
			nbits     = min(pending, available)
			remaining = pending - nbits
			chunk     = uint8(value>>remaining) & uint8((1<<nbits)-1)
			pos       = len(c.Buff) - 1
		)
		c.Buff[pos] = c.Buff[pos] | (chunk << (available - nbits))
		c.written += uint64(nbits)
		pending = remaining
	}
	return nil
}

// Read reads the next num bits (num <= 64) and returns them right-aligned
// in a uint64. num=0 returns 0 without error.
func (c *Codec) Read(num uint8) (uint64, error) {
	if num == 0 {
		return 0, nil
	}
	if num > 64 {
		return 0, ErrBitCount
	}
	if c.Remaining() < uint64(num) {
		return 0, errors.Wrapf(ErrInsufficientData, "need %d bits, have %d", num, c.Remaining())
	}

	if c.read&7 == 0 && num&7 == 0 {
		var (
			start  = c.read >> 3
			nbytes = uint64(num) >> 3
			tmp    = [TMP_ARRAY_SIZE]byte{}
		)
		copy(tmp[:], c.Buff[start:start+nbytes])
		c.read += uint64(num)
		return binary.BigEndian.Uint64(tmp[:]) >> (64 - uint(num)), nil
	}

	var (
		result  uint64
		pending = num
	)
	for pending > 0 {
		var (
			offset    = uint8(c.read & 7)
			available = 8 - offset
			nbits     = min(pending, available)
			shift     = available - nbits
			bits      = (c.Buff[c.read>>3] >> shift) & uint8((1<<nbits)-1)
		)
		result = (result << nbits) | uint64(bits)
		c.read += uint64(nbits)
		pending = pending - nbits
	}
	return result, nil
}

// WriteBytes writes full octets continuing from the current bit offset.
// It does NOT align first; callers that need octet alignment call Align.
func (c *Codec) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if c.written&7 == 0 {
		c.Buff = append(c.Buff, data...)
		c.written += uint64(len(data)) * BITS_PER_BYTE
		return nil
	}
	for _, b := range data {
		if err := c.Write(8, uint64(b)); err != nil {
			return err
		}
	}
	return nil
}

// ReadBytes reads exactly n octets continuing from the current bit offset.
// The returned slice is a copy.
func (c *Codec) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 {
		return []byte{}, nil
	}
	if c.Remaining() < uint64(n)*BITS_PER_BYTE {
		return nil, errors.Wrapf(ErrInsufficientData, "need %d octets, have %d bits", n, c.Remaining())
	}

	result := make([]byte, n)
	if c.read&7 == 0 {
		start := c.read >> 3
		copy(result, c.Buff[start:start+uint64(n)])
		c.read += uint64(n) * BITS_PER_BYTE
		return result, nil
	}
	for i := range result {
		val, err := c.Read(8)
		if err != nil {
			return nil, err
		}
		result[i] = uint8(val)
	}
	return result, nil
}

// Align pads the current byte with zero bits so the next write starts on a
// byte boundary. It is a no-op when already aligned.
func (c *Codec) Align() error {
	if pad := c.written & 7; pad != 0 {
		c.written += 8 - pad
	}
	return nil
}

// Advance skips the rest of the current byte so the next read starts on a
// byte boundary. This is the read counterpart to Align.
func (c *Codec) Advance() error {
	if pad := c.read & 7; pad != 0 {
		if c.Remaining() < 8-pad {
			return ErrInsufficientData
		}
		c.read += 8 - pad
	}
	return nil
}
