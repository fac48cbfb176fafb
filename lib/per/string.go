package per

import (
	"strings"

	"github.com/pkg/errors"
)

// PRINTABLE_ALPHABET is the character set of PrintableString.
const PRINTABLE_ALPHABET = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 '()+,-./:=?"

// 30 Encoding the restricted character string types
// |- 30.5.2 Each character takes b bits: 8 in the ALIGNED variant, 7 in the
// |  |  UNALIGNED variant for PrintableString. With no PermittedAlphabet
// |  |  constraint the character code itself is written.
// |- 30.5.6 Fixed size with ub*b <= 16: no length, never aligned.
// |- 30.5.7 Fixed size with ub*b < 64K: no length, octet-aligned.
// |- Otherwise: a length determinant in characters, then the characters,
// |  |  octet-aligned unless ub*b <= 16.

func (e *Encoder) charBits() uint64 {
	if e.aligned {
		return 8
	}
	return 7
}

func (d *Decoder) charBits() uint64 {
	if d.aligned {
		return 8
	}
	return 7
}

func validPrintable(value string) error {
	for i := 0; i < len(value); i++ {
		if !strings.ContainsRune(PRINTABLE_ALPHABET, rune(value[i])) {
			return errors.Wrapf(ErrInvalidCharacter, "%q at offset %d", value[i], i)
		}
	}
	return nil
}

func shortString(ub *uint64, b uint64) bool {
	return ub != nil && *ub*b <= MAX_SHORT_STRING_BITS
}

// EncodePrintableString writes value as a PrintableString with an optional
// SIZE constraint counted in characters.
func (e *Encoder) EncodePrintableString(value string, lb *uint64, ub *uint64, extensible bool) error {
	if err := validPrintable(value); err != nil {
		return err
	}
	var (
		n = uint64(len(value))
		b = e.charBits()
	)
	write := func(from, to uint64) error {
		for i := from; i < to; i++ {
			if err := e.codec.Write(uint8(b), uint64(value[i])); err != nil {
				return err
			}
		}
		return nil
	}

	if extensible {
		extended, err := e.extensionBit(n, lb, ub)
		if err != nil {
			return err
		}
		if extended {
			return e.encodeFragments(n, Bound[uint64](0), nil, true, write)
		}
	}
	if err := checkSize(n, lb, ub); err != nil {
		return err
	}

	if ub != nil && *ub == 0 {
		return nil
	}

	if fixedSize(lb, ub) && shortString(ub, b) {
		return write(0, n)
	}

	if fixedSize(lb, ub) && *ub*b < MAX_CONSTRAINED_LENGTH {
		if err := e.align(); err != nil {
			return err
		}
		return write(0, n)
	}

	return e.encodeFragments(n, lb, ub, !shortString(ub, b), write)
}

// DecodePrintableString reads a PrintableString written by EncodePrintableString.
func (d *Decoder) DecodePrintableString(lb *uint64, ub *uint64, extensible bool) (string, error) {
	var (
		b       = d.charBits()
		builder strings.Builder
	)
	read := func(n uint64) error {
		if d.codec.Remaining() < n*b {
			return errors.Wrapf(ErrInsufficientData, "need %d characters", n)
		}
		for range n {
			char, err := d.codec.Read(uint8(b))
			if err != nil {
				return err
			}
			builder.WriteByte(byte(char))
		}
		return nil
	}
	finish := func() (string, error) {
		value := builder.String()
		if err := validPrintable(value); err != nil {
			return "", err
		}
		return value, nil
	}

	if extensible {
		extended, err := d.extensionBit()
		if err != nil {
			return "", err
		}
		if extended {
			if _, err := d.decodeFragments(Bound[uint64](0), nil, true, read); err != nil {
				return "", err
			}
			return finish()
		}
	}

	if ub != nil && *ub == 0 {
		return "", nil
	}

	if fixedSize(lb, ub) && shortString(ub, b) {
		if err := read(*ub); err != nil {
			return "", err
		}
		return finish()
	}

	if fixedSize(lb, ub) && *ub*b < MAX_CONSTRAINED_LENGTH {
		if err := d.advance(); err != nil {
			return "", err
		}
		if err := read(*ub); err != nil {
			return "", err
		}
		return finish()
	}

	n, err := d.decodeFragments(lb, ub, !shortString(ub, b), read)
	if err != nil {
		return "", err
	}
	if err := checkSize(n, lb, ub); err != nil {
		return "", err
	}
	return finish()
}
