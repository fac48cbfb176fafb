package per

import (
	"encoding/asn1"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/bitbuffer"
)

// Encoder represents a PER encoder for bit-level encoding
type Encoder struct {
	codec   *bitbuffer.Codec
	aligned bool

	// sizeExtensions permits sizes outside the root of an extensible
	// SIZE constraint. Off by default.
	sizeExtensions bool
}

// NewEncoder creates a new PER encoder
// aligned: true for APER (Aligned PER), false for UPER (Unaligned PER)
func NewEncoder(aligned bool) *Encoder {
	return &Encoder{
		codec:   bitbuffer.CreateWriter(),
		aligned: aligned,
	}
}

// Aligned reports the variant this encoder produces.
func (e *Encoder) Aligned() bool {
	return e.aligned
}

// SetSizeExtensions controls whether a size outside the root of an
// extensible SIZE constraint is written as an extension value or rejected
// with ErrSizeConstraint.
func (e *Encoder) SetSizeExtensions(allow bool) {
	e.sizeExtensions = allow
}

// Bytes returns the encoded bytes; a partial last octet is zero padded.
func (e *Encoder) Bytes() []byte {
	return e.codec.Bytes()
}

// NumBits returns the number of bits written so far.
func (e *Encoder) NumBits() uint64 {
	return e.codec.NumWritten()
}

// align pads to an octet boundary in the ALIGNED variant only.
func (e *Encoder) align() error {
	if e.aligned {
		return e.codec.Align()
	}
	return nil
}

// 11.3 Encoding as a non-negative-binary-integer
// |- The value is the sum of 2^n over the set bits, bit zero being the trailing bit.
// |- 11.3.6 The minimum octet form has no leading all-zero octet unless the field
// |  |  is exactly one octet long.

func BitsNonNegativeBinaryInteger(value uint64) int {
	if value == 0 {
		return 1
	}
	return bits.Len64(value)
}

func OctetsNonNegativeBinaryIntegerLength(value uint64) int {
	bits := BitsNonNegativeBinaryInteger(value)
	return (bits + 7) >> 3
}

// 11.4 Encoding as a 2's-complement-binary-integer
// |- 11.4.6 The minimum octet form never starts with nine bits all zero or all one.

func BitsTwosComplementBinaryInteger(value int64) int {
	if value == 0 {
		return 1
	}
	if value > 0 {
		return bits.Len64(uint64(value)) + 1
	}
	return bits.Len64(uint64(^value)) + 1
}

func OctetsTwosComplementBinaryInteger(value int64) int {
	bits := BitsTwosComplementBinaryInteger(value)
	return (bits + 7) >> 3
}

// 11.5 Encoding of a constrained whole number
// |- "range" is ub - lb + 1. A range of 1 produces no bits.
// |- 11.5.6 UNALIGNED: (n - lb) in the minimum number of bits for the range.
// |- 11.5.7 ALIGNED:
// |  |- range <= 255: the same minimal bit-field, never aligned
// |  |- range == 256: one octet, octet-aligned
// |  |- range in 257..64K: two octets, octet-aligned
// |  |- otherwise: a constrained length 1..octets(range - 1) followed by the
// |  |  minimum number of octets, octet-aligned

func (e *Encoder) EncodeConstrainedWholeNumber(lb, ub, n int64) error {
	if lb > ub {
		return errors.Errorf("invalid bounds %d..%d", lb, ub)
	}
	if n < lb || n > ub {
		return outOfRange(n, lb, ub)
	}
	var (
		vr    = uint64(ub-lb) + 1
		value = uint64(n - lb)
	)
	if vr == 1 {
		return nil
	}

	if !e.aligned || vr <= 0xFF {
		return e.codec.Write(uint8(BitsNonNegativeBinaryInteger(vr-1)), value)
	}

	switch {
	case vr == 0x100:
		if err := e.codec.Align(); nil != err {
			return err
		}
		return e.codec.Write(8, value)
	case vr <= 0x10000:
		if err := e.codec.Align(); nil != err {
			return err
		}
		return e.codec.Write(16, value)
	}

	var (
		octets      = uint64(OctetsNonNegativeBinaryIntegerLength(value))
		octetsRange = uint64(OctetsNonNegativeBinaryIntegerLength(vr - 1))
	)
	if _, _, err := e.EncodeLengthDeterminant(octets, Bound[uint64](1), &octetsRange); err != nil {
		return err
	}
	if err := e.codec.Align(); nil != err {
		return err
	}
	return e.codec.Write(uint8(octets*8), value)
}

// 11.6 Encoding of a normally small non-negative whole number
// |- 11.6.1 n <= 63: a zero bit, then n in six bits.
// |- 11.6.2 otherwise: a one bit, then n as a semi-constrained whole number, lb 0.

func (e *Encoder) EncodeNormallySmallNonNegativeWholeNumber(n uint64) error {
	if n <= NORMALLY_SMALL_LIMIT {
		if err := e.codec.Write(1, 0); err != nil {
			return err
		}
		return e.codec.Write(6, n)
	}
	if err := e.codec.Write(1, 1); err != nil {
		return err
	}
	return e.EncodeSemiConstrainedWholeNumber(0, int64(n))
}

// 11.7 Encoding of a semi-constrained whole number
// |- 11.7.4 (n - lb) in the minimum number of octets (octet-aligned in the ALIGNED
// |  |  variant), preceded by an unconstrained length.

func (e *Encoder) EncodeSemiConstrainedWholeNumber(lb, n int64) error {
	if n < lb {
		return errors.Wrapf(ErrOutOfRange, "%d below lower bound %d", n, lb)
	}
	value := uint64(n - lb)
	octets := OctetsNonNegativeBinaryIntegerLength(value)
	if _, _, err := e.EncodeUnconstrainedLength(uint64(octets)); err != nil {
		return err
	}
	return e.codec.Write(uint8(octets*8), value)
}

// 11.8 Encoding of an unconstrained whole number
// |- 11.8.3 n as a minimum octet 2's-complement-binary-integer (octet-aligned in
// |  |  the ALIGNED variant), preceded by an unconstrained length.

func (e *Encoder) EncodeUnconstrainedWholeNumber(n int64) error {
	octets := OctetsTwosComplementBinaryInteger(n)
	if _, _, err := e.EncodeUnconstrainedLength(uint64(octets)); err != nil {
		return err
	}
	return e.codec.Write(uint8(octets*8), uint64(n))
}

// 11.9 General rules for encoding a length determinant
// |- 11.9.3.3 / 11.9.4.1 ub < 64K: the length is a constrained whole number.
// |- 11.9.3.4 Normally small length: a zero bit and n-1 in six bits for n <= 64,
// |  |  otherwise a one bit and an unconstrained length.
// |- 11.9.3.6 n <= 127: one octet 0nnnnnnn
// |- 11.9.3.7 n < 16K: two octets 10nnnnnn nnnnnnnn
// |- 11.9.3.8 otherwise: one octet 11mmmmmm with m in 1..4 announcing m*16K units.
// |  |  The rest follows behind its own length determinant; a rest that is empty
// |  |  is written as a zero length.
// |- In the ALIGNED variant the unconstrained forms are octet-aligned.

// EncodeLengthDeterminant writes the length determinant for n units. It returns
// how many units the caller must write next and whether another length
// determinant follows them.
func (e *Encoder) EncodeLengthDeterminant(n uint64, lb *uint64, ub *uint64) (uint64, bool, error) {
	if ub != nil && *ub < MAX_CONSTRAINED_LENGTH {
		lower := uint64(0)
		if lb != nil {
			lower = *lb
		}
		if n < lower || n > *ub {
			return 0, false, sizeViolation(n, lb, ub)
		}
		if err := e.EncodeConstrainedWholeNumber(int64(lower), int64(*ub), int64(n)); err != nil {
			return 0, false, err
		}
		return n, false, nil
	}
	return e.EncodeUnconstrainedLength(n)
}

func (e *Encoder) EncodeUnconstrainedLength(n uint64) (uint64, bool, error) {
	if err := e.align(); err != nil {
		return 0, false, err
	}

	if n <= 127 {
		return n, false, e.codec.Write(8, n)
	}

	if n < FRAGMENT_SIZE {
		return n, false, e.codec.Write(16, (1<<15)|n)
	}

	m := CalculateFragmentSize(n)
	if err := e.codec.Write(8, (3<<6)|(m/FRAGMENT_SIZE)); err != nil {
		return 0, false, err
	}
	return m, true, nil
}

func (e *Encoder) EncodeNormallySmallLength(n uint64) (uint64, bool, error) {
	if n == 0 {
		return 0, false, errors.Wrap(ErrSizeConstraint, "normally small length must be positive")
	}
	if n <= 64 {
		if err := e.codec.Write(1, 0); err != nil {
			return 0, false, err
		}
		return n, false, e.codec.Write(6, n-1)
	}
	if err := e.codec.Write(1, 1); err != nil {
		return 0, false, err
	}
	return e.EncodeUnconstrainedLength(n)
}

func CalculateFragmentSize(n uint64) uint64 {
	switch {
	case n >= 4*FRAGMENT_SIZE:
		return 4 * FRAGMENT_SIZE // 64K
	case n >= 3*FRAGMENT_SIZE:
		return 3 * FRAGMENT_SIZE // 48K
	case n >= 2*FRAGMENT_SIZE:
		return 2 * FRAGMENT_SIZE // 32K
	default:
		return FRAGMENT_SIZE // 16K
	}
}

// encodeFragments writes count units behind length determinants. write is
// called once per non-empty fragment with the unit range [from, to).
func (e *Encoder) encodeFragments(count uint64, lb, ub *uint64, contentAligned bool,
	write func(from, to uint64) error) error {
	var offset uint64
	for {
		length, more, err := e.EncodeLengthDeterminant(count-offset, lb, ub)
		if err != nil {
			return err
		}
		if length > 0 {
			if contentAligned {
				if err := e.align(); err != nil {
					return err
				}
			}
			if err := write(offset, offset+length); err != nil {
				return err
			}
		}
		offset += length
		if !more {
			return nil
		}
	}
}

// extensionBit writes the bit preceding an extensible size constraint and
// reports whether n lies outside the extension root. Such an n is an error
// unless size extensions are enabled.
func (e *Encoder) extensionBit(n uint64, lb, ub *uint64) (bool, error) {
	extended := (lb != nil && n < *lb) || (ub != nil && n > *ub)
	if extended && !e.sizeExtensions {
		return false, sizeViolation(n, lb, ub)
	}
	return extended, e.EncodeBoolean(extended)
}

func checkSize(n uint64, lb, ub *uint64) error {
	if (lb != nil && n < *lb) || (ub != nil && n > *ub) {
		return sizeViolation(n, lb, ub)
	}
	return nil
}

func fixedSize(lb, ub *uint64) bool {
	return lb != nil && ub != nil && *lb == *ub
}

// 12 Encoding the boolean type
// |- A single bit, 1 for TRUE and 0 for FALSE.

func (e *Encoder) EncodeBoolean(value bool) error {
	if value {
		return e.codec.Write(1, 1)
	}
	return e.codec.Write(1, 0)
}

// 13 Encoding the integer type
// |- 13.1 Extensible constraint: one bit, set when the value is outside the root.
// |  |  Such a value is an unconstrained whole number.
// |- 13.2.2 Both bounds: constrained whole number
// |- 13.2.3 Lower bound only: semi-constrained whole number
// |- 13.2.4 Otherwise: unconstrained whole number

func (e *Encoder) EncodeInteger(value int64, lb *int64, ub *int64, extensible bool) error {
	if extensible {
		extended := (lb != nil && value < *lb) || (ub != nil && value > *ub)
		if err := e.EncodeBoolean(extended); err != nil {
			return err
		}
		if extended {
			return e.EncodeUnconstrainedWholeNumber(value)
		}
	}

	switch {
	case lb != nil && ub != nil:
		return e.EncodeConstrainedWholeNumber(*lb, *ub, value)
	case lb != nil:
		return e.EncodeSemiConstrainedWholeNumber(*lb, value)
	default:
		return e.EncodeUnconstrainedWholeNumber(value)
	}
}

// 14 Encoding the enumerated type
// |- 14.2 Root index as a constrained whole number 0..count-1.
// |- 14.3 Extensible: one bit, set for an extension addition whose index counted
// |  |  from the first addition follows as a normally small number.

// EncodeEnumerated writes enumeration index value; count is the number of root
// enumerations, indexes from count on are extension additions.
func (e *Encoder) EncodeEnumerated(value uint64, count uint64, extensible bool) error {
	if extensible {
		extended := value >= count
		if err := e.EncodeBoolean(extended); err != nil {
			return err
		}
		if extended {
			return e.EncodeNormallySmallNonNegativeWholeNumber(value - count)
		}
	}
	if value >= count {
		return errors.Wrapf(ErrOutOfRange, "enumeration index %d not below %d", value, count)
	}
	return e.EncodeConstrainedWholeNumber(0, int64(count-1), int64(value))
}

// 16 Encoding the bitstring type
// |- 16.6 Extensible size: one bit, set when the length is outside the root; the
// |  |  length is then semi-constrained.
// |- 16.8 ub == 0: nothing
// |- 16.9 Fixed size <= 16 bits: no length, never aligned
// |- 16.10 Fixed size < 64K: no length, octet-aligned
// |- 16.11 Otherwise: the length determinant, then the bits (octet-aligned in the
// |  |  ALIGNED variant when there are any).

func (e *Encoder) WriteBits(data []byte, count uint64) error {
	if count == 0 {
		return nil
	}
	if uint64(len(data))*8 < count {
		return errors.Wrapf(ErrSizeConstraint, "bit string holds %d bits, need %d", len(data)*8, count)
	}

	num := count / 8
	if num > 0 {
		if err := e.codec.WriteBytes(data[:num]); err != nil {
			return err
		}
	}

	remaining := count % 8
	if remaining > 0 {
		value := uint64(data[num] >> (8 - remaining))
		return e.codec.Write(uint8(remaining), value)
	}
	return nil
}

func (e *Encoder) EncodeBitString(value *asn1.BitString, lb *uint64,
	ub *uint64, extensible bool) error {
	count := uint64(value.BitLength)
	if extensible {
		extended, err := e.extensionBit(count, lb, ub)
		if err != nil {
			return err
		}
		if extended {
			return e.EncodeBitStringFragments(value.Bytes, count, Bound[uint64](0), nil)
		}
	}
	if err := checkSize(count, lb, ub); err != nil {
		return err
	}

	if ub != nil && *ub == 0 {
		return nil
	}

	if fixedSize(lb, ub) && *ub <= MAX_SHORT_STRING_BITS {
		return e.WriteBits(value.Bytes, count)
	}

	if fixedSize(lb, ub) && *ub < MAX_CONSTRAINED_LENGTH {
		if err := e.align(); err != nil {
			return err
		}
		return e.WriteBits(value.Bytes, count)
	}

	return e.EncodeBitStringFragments(value.Bytes, count, lb, ub)
}

// EncodeBitStringFragments writes count bits of value behind length
// determinants, fragmenting from 16K bits on.
func (e *Encoder) EncodeBitStringFragments(value []byte, count uint64,
	lb *uint64, ub *uint64) error {
	return e.encodeFragments(count, lb, ub, true, func(from, to uint64) error {
		if from%8 == 0 {
			return e.WriteBits(value[from/8:], to-from)
		}
		// Fragment boundaries are multiples of 16K so this is unreachable
		return errors.Errorf("fragment starts mid-octet at bit %d", from)
	})
}

// 17 Encoding the octetstring type
// |- Same shape as 16 with octets as the unit: 17.6 fixed size <= 2 octets is
// |  |  never aligned, 17.7 fixed size < 64K is aligned without a length.
// |- 17.8 Otherwise the length comes first and non-empty content is aligned.

func (e *Encoder) EncodeOctetString(value []byte, lb *uint64, ub *uint64, extensible bool) error {
	n := uint64(len(value))
	if extensible {
		extended, err := e.extensionBit(n, lb, ub)
		if err != nil {
			return err
		}
		if extended {
			return e.EncodeOctetStringFragments(value, Bound[uint64](0), nil)
		}
	}
	if err := checkSize(n, lb, ub); err != nil {
		return err
	}

	if ub != nil && *ub == 0 {
		return nil
	}

	if fixedSize(lb, ub) && *ub <= 2 {
		return e.codec.WriteBytes(value)
	}

	if fixedSize(lb, ub) && *ub < MAX_CONSTRAINED_LENGTH {
		if err := e.align(); err != nil {
			return err
		}
		return e.codec.WriteBytes(value)
	}

	return e.EncodeOctetStringFragments(value, lb, ub)
}

// EncodeOctetStringFragments writes value behind length determinants,
// fragmenting from 16K octets on.
func (e *Encoder) EncodeOctetStringFragments(value []byte, lb *uint64, ub *uint64) error {
	return e.encodeFragments(uint64(len(value)), lb, ub, true, func(from, to uint64) error {
		return e.codec.WriteBytes(value[from:to])
	})
}

// 18 Encoding the null type
// |- Nothing is written.

func (e *Encoder) EncodeNull() error {
	return nil
}
