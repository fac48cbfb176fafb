package s1ap

import (
	"encoding/asn1"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/per"
)

// encodeOctets writes value as an OCTET STRING (SIZE(len(value))).
func encodeOctets(e *per.Encoder, value []byte) error {
	n := uint64(len(value))
	return e.EncodeOctetString(value, &n, &n, false)
}

// decodeOctets fills dst from an OCTET STRING (SIZE(len(dst))).
func decodeOctets(d *per.Decoder, dst []byte) error {
	n := uint64(len(dst))
	value, err := d.DecodeOctetString(&n, &n, false)
	if err != nil {
		return err
	}
	copy(dst, value)
	return nil
}

// encodeBits writes the low size bits of value as a BIT STRING (SIZE(size)).
func encodeBits(e *per.Encoder, value uint64, size uint64, extensible bool) error {
	if size < 64 && value>>size != 0 {
		return errors.Wrapf(per.ErrOutOfRange, "%d does not fit %d bits", value, size)
	}
	octets := (size + 7) / 8
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value<<(octets*8-size))
	bits := asn1.BitString{Bytes: buffer[8-octets:], BitLength: int(size)}
	return e.EncodeBitString(&bits, &size, &size, extensible)
}

// decodeBits reads a BIT STRING (SIZE(size)) written by encodeBits.
func decodeBits(d *per.Decoder, size uint64, extensible bool) (uint64, error) {
	bits, err := d.DecodeBitString(&size, &size, extensible)
	if err != nil {
		return 0, err
	}
	if uint64(bits.BitLength) != size {
		return 0, errors.Wrapf(per.ErrSizeConstraint, "%d bits, want %d", bits.BitLength, size)
	}
	buffer := make([]byte, 8)
	copy(buffer[8-len(bits.Bytes):], bits.Bytes)
	return binary.BigEndian.Uint64(buffer) >> (uint64(len(bits.Bytes))*8 - size), nil
}

// encodeTail writes the iE-Extensions of a SEQUENCE when present. The
// preamble must have announced it.
func encodeTail(e *per.Encoder, extensions container.Extensions) error {
	if !extensions.Present() {
		return nil
	}
	return extensions.Encode(e)
}

// decodeTail reads the iE-Extensions of a SEQUENCE into extensions and
// skips its extension additions.
func decodeTail(d *per.Decoder, extensions *container.Extensions, present, extended bool) error {
	*extensions = nil
	if present {
		if err := extensions.Decode(d); err != nil {
			return errors.Wrap(err, "iE-Extensions")
		}
	}
	if extended {
		return d.SkipExtensionAdditions()
	}
	return nil
}

// encodeSequence writes the preamble of an extensible SEQUENCE whose
// optional components are given in order, iE-Extensions last.
func encodeSequence(e *per.Encoder, extensions container.Extensions, optionals ...bool) error {
	return e.EncodeSequencePreamble(true, false, append(optionals, extensions.Present())...)
}

// decodeSequence reads the preamble written by encodeSequence. The presence
// of the iE-Extensions is the last entry of the returned slice.
func decodeSequence(d *per.Decoder, optionals int) (bool, []bool, error) {
	return d.DecodeSequencePreamble(true, optionals+1)
}

// encodeMessage writes SEQUENCE { protocolIEs ProtocolIE-Container, ... }.
func encodeMessage(e *per.Encoder, m container.Container) error {
	if err := e.EncodeSequencePreamble(true, false); err != nil {
		return err
	}
	return container.Encode(e, m)
}

// decodeMessage reads what encodeMessage writes.
func decodeMessage(d *per.Decoder, m container.Container) error {
	extended, _, err := d.DecodeSequencePreamble(true, 0)
	if err != nil {
		return err
	}
	if err := container.Decode(d, m); err != nil {
		return err
	}
	if extended {
		return d.SkipExtensionAdditions()
	}
	return nil
}
