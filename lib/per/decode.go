package per

import (
	"encoding/asn1"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/bitbuffer"
)

// Decoder represents a PER decoder
type Decoder struct {
	codec   *bitbuffer.Codec
	aligned bool
	sink    any
}

// NewDecoder creates a new PER decoder from encoded data
// aligned: true for APER, false for UPER
func NewDecoder(data []byte, aligned bool) *Decoder {
	return &Decoder{
		codec:   bitbuffer.CreateReader(data),
		aligned: aligned,
	}
}

// Aligned reports the variant this decoder expects.
func (d *Decoder) Aligned() bool {
	return d.aligned
}

// Nested returns a decoder over the contents of an open type. It keeps the
// variant and the sink of d.
func (d *Decoder) Nested(data []byte) *Decoder {
	nested := NewDecoder(data, d.aligned)
	nested.sink = d.sink
	return nested
}

// SetSink attaches a value that nested decoders inherit, for layers above
// this package to collect what a decode leaves behind.
func (d *Decoder) SetSink(sink any) {
	d.sink = sink
}

func (d *Decoder) Sink() any {
	return d.sink
}

// Remaining returns the number of unread bits.
func (d *Decoder) Remaining() uint64 {
	return d.codec.Remaining()
}

// NumBits returns the number of bits consumed so far.
func (d *Decoder) NumBits() uint64 {
	return d.codec.NumRead()
}

// advance skips to the next octet boundary in the ALIGNED variant only.
func (d *Decoder) advance() error {
	if d.aligned {
		return d.codec.Advance()
	}
	return nil
}

// DecodeConstrainedWholeNumber decodes a constrained whole number
// with lower bound lb and upper bound ub. A value above ub is rejected.
func (d *Decoder) DecodeConstrainedWholeNumber(lb, ub int64) (int64, error) {
	offset, err := d.constrainedWholeNumber(lb, ub)
	if err != nil {
		return 0, err
	}
	if offset > uint64(ub-lb) {
		return 0, errors.Wrapf(ErrOutOfRange, "%d not in %d..%d", lb+int64(offset), lb, ub)
	}
	return lb + int64(offset), nil
}

// constrainedWholeNumber returns the raw offset from lb as read from the wire.
func (d *Decoder) constrainedWholeNumber(lb, ub int64) (uint64, error) {
	if lb > ub {
		return 0, errors.Errorf("invalid bounds %d..%d", lb, ub)
	}
	vr := uint64(ub-lb) + 1
	if vr == 1 {
		return 0, nil
	}

	if !d.aligned || vr <= 0xFF {
		return d.codec.Read(uint8(BitsNonNegativeBinaryInteger(vr - 1)))
	}

	switch {
	case vr == 0x100:
		if err := d.codec.Advance(); err != nil {
			return 0, err
		}
		return d.codec.Read(8)
	case vr <= 0x10000:
		if err := d.codec.Advance(); err != nil {
			return 0, err
		}
		return d.codec.Read(16)
	}

	octetsRange := uint64(OctetsNonNegativeBinaryIntegerLength(vr - 1))
	octets, _, err := d.DecodeLengthDeterminant(Bound[uint64](1), &octetsRange)
	if err != nil {
		return 0, err
	}
	if err := d.codec.Advance(); err != nil {
		return 0, err
	}
	return d.codec.Read(uint8(octets * 8))
}

// DecodeNormallySmallNonNegativeWholeNumber decodes a normally small non-negative whole number.
// This is used when a non-negative whole number is expected to be small but whose size
// is potentially unlimited due to the presence of an extension marker.
func (d *Decoder) DecodeNormallySmallNonNegativeWholeNumber() (uint64, error) {
	bit, err := d.codec.Read(1)
	if err != nil {
		return 0, err
	}

	// 11.6.1
	if bit == 0 {
		return d.codec.Read(6)
	}

	// 11.6.2
	return d.DecodeSemiConstrainedWholeNumber(0)
}

// DecodeSemiConstrainedWholeNumber decodes a semi-constrained whole number
// with lower bound lb.
func (d *Decoder) DecodeSemiConstrainedWholeNumber(lb int64) (uint64, error) {
	octets, err := d.wholeNumberLength()
	if err != nil {
		return 0, err
	}
	value, err := d.codec.Read(uint8(octets * 8))
	if err != nil {
		return 0, err
	}
	return uint64(lb) + value, nil
}

// DecodeUnconstrainedWholeNumber decodes an unconstrained whole number
// encoded as a 2's-complement-binary-integer in the minimum number of octets.
func (d *Decoder) DecodeUnconstrainedWholeNumber() (int64, error) {
	octets, err := d.wholeNumberLength()
	if err != nil {
		return 0, err
	}
	value, err := d.codec.Read(uint8(octets * 8))
	if err != nil {
		return 0, err
	}

	// Sign extension
	if octets < 8 {
		msb := uint64(1) << (octets*8 - 1)
		if value&msb != 0 {
			value |= ^uint64(0) << (octets * 8)
		}
	}
	return int64(value), nil
}

// wholeNumberLength reads the octet count of a semi-constrained or
// unconstrained whole number, which must fit in 64 bits.
func (d *Decoder) wholeNumberLength() (uint64, error) {
	octets, more, err := d.DecodeUnconstrainedLength()
	if err != nil {
		return 0, err
	}
	if more || octets == 0 || octets > 8 {
		return 0, errors.Wrapf(ErrOutOfRange, "whole number of %d octets", octets)
	}
	return octets, nil
}

// DecodeLengthDeterminant decodes a length determinant.
// When ub is known and below 64K the length is a constrained whole number,
// otherwise it is an unconstrained length.
// Returns (length, hasMoreFragments, error).
func (d *Decoder) DecodeLengthDeterminant(lb, ub *uint64) (uint64, bool, error) {
	// 11.9.3.3 / 11.9.4.1
	if ub != nil && *ub < MAX_CONSTRAINED_LENGTH {
		lower := uint64(0)
		if lb != nil {
			lower = *lb
		}
		offset, err := d.constrainedWholeNumber(int64(lower), int64(*ub))
		if err != nil {
			return 0, false, err
		}
		n := lower + offset
		if n > *ub {
			return 0, false, sizeViolation(n, lb, ub)
		}
		return n, false, nil
	}
	return d.DecodeUnconstrainedLength()
}

// DecodeUnconstrainedLength decodes an unconstrained length determinant.
// Returns (length, hasMoreFragments, error); hasMoreFragments is set for
// the 11mmmmmm fragment form, after which another length determinant follows.
func (d *Decoder) DecodeUnconstrainedLength() (uint64, bool, error) {
	if err := d.advance(); err != nil {
		return 0, false, err
	}

	first, err := d.codec.Read(8)
	if err != nil {
		return 0, false, err
	}

	// 0nnnnnnn
	if first&0x80 == 0 {
		return first, false, nil
	}

	// 10nnnnnn nnnnnnnn
	if first&0xC0 == 0x80 {
		second, err := d.codec.Read(8)
		if err != nil {
			return 0, false, err
		}
		return ((first & 0x3F) << 8) | second, false, nil
	}

	// 11mmmmmm
	m := first & 0x3F
	if m < 1 || m > 4 {
		return 0, false, errors.Errorf("invalid fragment multiplier %d", m)
	}
	return m * FRAGMENT_SIZE, true, nil
}

// DecodeNormallySmallLength decodes a normally small length determinant.
// Returns (length, hasMoreFragments, error).
func (d *Decoder) DecodeNormallySmallLength() (uint64, bool, error) {
	bit, err := d.codec.Read(1)
	if err != nil {
		return 0, false, err
	}

	// 1..64 as n-1 in six bits
	if bit == 0 {
		value, err := d.codec.Read(6)
		if err != nil {
			return 0, false, err
		}
		return value + 1, false, nil
	}

	return d.DecodeUnconstrainedLength()
}

// decodeFragments reads length determinants until the last fragment and
// calls read with the unit count of every non-empty fragment. It returns
// the total number of units.
func (d *Decoder) decodeFragments(lb, ub *uint64, contentAligned bool,
	read func(n uint64) error) (uint64, error) {
	var total uint64
	for {
		length, more, err := d.DecodeLengthDeterminant(lb, ub)
		if err != nil {
			return 0, err
		}
		if length > 0 {
			if contentAligned {
				if err := d.advance(); err != nil {
					return 0, err
				}
			}
			if err := read(length); err != nil {
				return 0, err
			}
		}
		total += length
		if !more {
			return total, nil
		}
	}
}

// DecodeBoolean decodes a boolean value.
// Per ITU-T X.691 Section 12, a boolean is encoded as a single bit:
// - 1 for TRUE
// - 0 for FALSE
func (d *Decoder) DecodeBoolean() (bool, error) {
	bit, err := d.codec.Read(1)
	if err != nil {
		return false, err
	}
	return bit != 0, nil
}

// DecodeInteger decodes an integer value with optional constraints and extensibility.
// Parameters:
// - lb: lower bound (nil if unconstrained)
// - ub: upper bound (nil if unconstrained)
// - extensible: whether the type has an extension marker
func (d *Decoder) DecodeInteger(lb *int64, ub *int64, extensible bool) (int64, error) {
	if extensible {
		extended, err := d.DecodeBoolean()
		if err != nil {
			return 0, err
		}
		if extended {
			return d.DecodeUnconstrainedWholeNumber()
		}
	}

	switch {
	case lb != nil && ub != nil:
		return d.DecodeConstrainedWholeNumber(*lb, *ub)
	case lb != nil:
		value, err := d.DecodeSemiConstrainedWholeNumber(*lb)
		if err != nil {
			return 0, err
		}
		return int64(value), nil
	default:
		return d.DecodeUnconstrainedWholeNumber()
	}
}

// DecodeEnumerated decodes an enumeration index. count is the number of root
// enumerations; an extension addition is returned as count plus its index.
func (d *Decoder) DecodeEnumerated(count uint64, extensible bool) (uint64, error) {
	if extensible {
		extended, err := d.DecodeBoolean()
		if err != nil {
			return 0, err
		}
		if extended {
			value, err := d.DecodeNormallySmallNonNegativeWholeNumber()
			if err != nil {
				return 0, err
			}
			return value + count, nil
		}
	}

	value, err := d.DecodeConstrainedWholeNumber(0, int64(count-1))
	if err != nil {
		return 0, err
	}
	return uint64(value), nil
}

// ReadBits reads count bits MSB-first into a byte slice. A trailing partial
// octet is left aligned.
func (d *Decoder) ReadBits(count uint64) ([]byte, error) {
	if count == 0 {
		return []byte{}, nil
	}
	if d.codec.Remaining() < count {
		return nil, errors.Wrapf(ErrInsufficientData, "need %d bits, have %d", count, d.codec.Remaining())
	}

	num := count / 8
	result, err := d.codec.ReadBytes(int(num))
	if err != nil {
		return nil, err
	}

	remaining := count % 8
	if remaining > 0 {
		value, err := d.codec.Read(uint8(remaining))
		if err != nil {
			return nil, err
		}
		result = append(result, uint8(value<<(8-remaining)))
	}
	return result, nil
}

// extensionBit reads the bit preceding an extensible size constraint.
func (d *Decoder) extensionBit() (bool, error) {
	return d.DecodeBoolean()
}

// DecodeBitString decodes a bitstring value with optional constraints and extensibility.
// Parameters:
// - lb: lower bound on bitstring length in bits (nil if unconstrained)
// - ub: upper bound on bitstring length in bits (nil if unconstrained)
// - extensible: whether the type has an extension marker
func (d *Decoder) DecodeBitString(lb *uint64, ub *uint64, extensible bool) (*asn1.BitString, error) {
	// 16.6
	if extensible {
		extended, err := d.extensionBit()
		if err != nil {
			return nil, err
		}
		if extended {
			return d.DecodeBitStringFragments(Bound[uint64](0), nil)
		}
	}

	// 16.8
	if ub != nil && *ub == 0 {
		return &asn1.BitString{Bytes: []byte{}}, nil
	}

	// 16.9
	if fixedSize(lb, ub) && *ub <= MAX_SHORT_STRING_BITS {
		data, err := d.ReadBits(*ub)
		if err != nil {
			return nil, err
		}
		return &asn1.BitString{Bytes: data, BitLength: int(*ub)}, nil
	}

	// 16.10
	if fixedSize(lb, ub) && *ub < MAX_CONSTRAINED_LENGTH {
		if err := d.advance(); err != nil {
			return nil, err
		}
		data, err := d.ReadBits(*ub)
		if err != nil {
			return nil, err
		}
		return &asn1.BitString{Bytes: data, BitLength: int(*ub)}, nil
	}

	// 16.11
	value, err := d.DecodeBitStringFragments(lb, ub)
	if err != nil {
		return nil, err
	}
	if err := checkSize(uint64(value.BitLength), lb, ub); err != nil {
		return nil, err
	}
	return value, nil
}

// DecodeBitStringFragments decodes a bitstring behind one or more length
// determinants.
func (d *Decoder) DecodeBitStringFragments(lb *uint64, ub *uint64) (*asn1.BitString, error) {
	content := []byte{}
	count, err := d.decodeFragments(lb, ub, true, func(n uint64) error {
		fragment, err := d.ReadBits(n)
		if err != nil {
			return err
		}
		content = append(content, fragment...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &asn1.BitString{Bytes: content, BitLength: int(count)}, nil
}

// DecodeOctetString decodes an octet string value with optional constraints and extensibility.
// Parameters:
// - lb: lower bound on octet string length in bytes (nil if unconstrained)
// - ub: upper bound on octet string length in bytes (nil if unconstrained)
// - extensible: whether the type has an extension marker
func (d *Decoder) DecodeOctetString(lb *uint64, ub *uint64, extensible bool) ([]byte, error) {
	// 17.3
	if extensible {
		extended, err := d.extensionBit()
		if err != nil {
			return nil, err
		}
		if extended {
			return d.DecodeOctetStringFragments(Bound[uint64](0), nil)
		}
	}

	// 17.5
	if ub != nil && *ub == 0 {
		return []byte{}, nil
	}

	// 17.6
	if fixedSize(lb, ub) && *ub <= 2 {
		return d.codec.ReadBytes(int(*ub))
	}

	// 17.7
	if fixedSize(lb, ub) && *ub < MAX_CONSTRAINED_LENGTH {
		if err := d.advance(); err != nil {
			return nil, err
		}
		return d.codec.ReadBytes(int(*ub))
	}

	// 17.8
	value, err := d.DecodeOctetStringFragments(lb, ub)
	if err != nil {
		return nil, err
	}
	if err := checkSize(uint64(len(value)), lb, ub); err != nil {
		return nil, err
	}
	return value, nil
}

// DecodeOctetStringFragments decodes an octet string behind one or more
// length determinants.
func (d *Decoder) DecodeOctetStringFragments(lb *uint64, ub *uint64) ([]byte, error) {
	content := []byte{}
	_, err := d.decodeFragments(lb, ub, true, func(n uint64) error {
		fragment, err := d.codec.ReadBytes(int(n))
		if err != nil {
			return err
		}
		content = append(content, fragment...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return content, nil
}

// DecodeNull decodes a NULL value, which never contributes any bits.
func (d *Decoder) DecodeNull() error {
	return nil
}
