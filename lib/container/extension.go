package container

import (
	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/per"
)

// Extension is one ProtocolExtensionField kept as raw open type octets.
type Extension struct {
	ID          uint16
	Criticality Criticality
	Value       []byte
}

// Extensions is a ProtocolExtensionContainer, SIZE(1..maxProtocolExtensions).
// No extension is understood: items are kept as received, a reject item
// fails the decode and notify items are recorded in the Report the decoder
// carries as its sink.
type Extensions []Extension

// Present reports whether the container has to be put on the wire.
func (x Extensions) Present() bool {
	return len(x) > 0
}

func (x *Extensions) Encode(e *per.Encoder) error {
	items := *x
	if _, _, err := e.EncodeLengthDeterminant(uint64(len(items)), per.Bound[uint64](1),
		per.Bound[uint64](MAX_PROTOCOL_EXTENSIONS)); err != nil {
		return err
	}
	for _, item := range items {
		if err := e.EncodeConstrainedWholeNumber(0, 65535, int64(item.ID)); err != nil {
			return err
		}
		if err := item.Criticality.Encode(e); err != nil {
			return err
		}
		if err := e.EncodeOpenTypeBytes(item.Value); err != nil {
			return err
		}
	}
	return nil
}

func (x *Extensions) Decode(d *per.Decoder) error {
	count, _, err := d.DecodeLengthDeterminant(per.Bound[uint64](1), per.Bound[uint64](MAX_PROTOCOL_EXTENSIONS))
	if err != nil {
		return err
	}
	report, _ := d.Sink().(*Report)
	items := make(Extensions, 0, count)
	for range count {
		id, criticality, data, err := DecodeField(d)
		if err != nil {
			return err
		}
		switch criticality {
		case Reject:
			report.add(id, criticality, NotUnderstood)
			return errors.Wrapf(ErrRejectedIE, "extension id %d", id)
		case Notify:
			report.add(id, criticality, NotUnderstood)
		}
		items = append(items, Extension{ID: id, Criticality: criticality, Value: data})
	}
	*x = items
	return nil
}
