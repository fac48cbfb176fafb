// Package container implements the S1AP ProtocolIE containers on top of the
// PER codec.
//
// A container is a counted list of fields, each carrying an IE id, a
// criticality and the IE value as an open type. The ids a message accepts,
// and how each is treated, come from an ObjectSet: a table of descriptors
// mapping id to name, criticality and presence.
//
// # Decoding policy
//
// A received IE whose id is not understood is handled according to the
// criticality it was sent with:
//
//   - reject: decoding fails with ErrRejectedIE
//   - ignore: the IE is dropped
//   - notify: the IE is dropped and recorded in the Report
//
// Mandatory IEs absent from the wire fail decoding with ErrMissingMandatory
// and are recorded in the Report as missing.
package container

import (
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/per"
)

const (
	// MAX_PROTOCOL_IES is maxProtocolIEs
	MAX_PROTOCOL_IES = 65535

	// MAX_PROTOCOL_EXTENSIONS is maxProtocolExtensions
	MAX_PROTOCOL_EXTENSIONS = 65535
)

var (
	// ErrRejectedIE is returned for a not understood IE sent with reject criticality.
	ErrRejectedIE = errors.New("not understood IE with reject criticality")

	// ErrMissingMandatory is returned for a mandatory IE absent from a container.
	ErrMissingMandatory = errors.New("mandatory IE missing")

	// ErrDuplicateIE is returned by Decode when an IE id occurs twice.
	ErrDuplicateIE = errors.New("IE occurs more than once")

	// ErrUnknownIE is returned when encoding an IE id outside the object set.
	ErrUnknownIE = errors.New("IE not in object set")
)

// Descriptor is one row of an object set.
type Descriptor struct {
	ID          uint16
	Name        string
	Criticality Criticality
	Presence    Presence
}

// ObjectSet is the table of IEs a container accepts.
type ObjectSet []Descriptor

// Lookup returns the descriptor for id.
func (s ObjectSet) Lookup(id uint16) (Descriptor, bool) {
	for _, desc := range s {
		if desc.ID == id {
			return desc, true
		}
	}
	return Descriptor{}, false
}

// Name returns the IE name for id, or its number when id is unknown.
func (s ObjectSet) Name(id uint16) string {
	if desc, ok := s.Lookup(id); ok {
		return desc.Name
	}
	return "id-" + strconv.Itoa(int(id))
}

// Field is an IE ready to be encoded.
type Field struct {
	ID    uint16
	Value per.Value
}

// Container is implemented by every message carrying a ProtocolIE-Container.
type Container interface {
	// ObjectSet returns the IEs the message accepts.
	ObjectSet() ObjectSet

	// Fields returns the IEs present, in encoding order.
	Fields() []Field

	// Target returns where the value of IE id decodes to, allocating optional
	// members as needed, or nil when the message holds no such IE.
	Target(id uint16) per.Value

	// CriticalityReport returns where not understood and missing IEs are recorded.
	CriticalityReport() *Report
}

// Encode writes the ProtocolIE-Container of c. Every mandatory IE of the
// object set must be present; the criticality written for each IE is the one
// from the object set.
func Encode(e *per.Encoder, c Container) error {
	var (
		set    = c.ObjectSet()
		fields = c.Fields()
		result *multierror.Error
	)
	for _, desc := range set {
		if desc.Presence == Mandatory && !contains(fields, desc.ID) {
			result = multierror.Append(result, errors.Wrapf(ErrMissingMandatory, "%s (%d)", desc.Name, desc.ID))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	if _, _, err := e.EncodeLengthDeterminant(uint64(len(fields)), per.Bound[uint64](0),
		per.Bound[uint64](MAX_PROTOCOL_IES)); err != nil {
		return err
	}
	for _, field := range fields {
		desc, ok := set.Lookup(field.ID)
		if !ok {
			return errors.Wrapf(ErrUnknownIE, "id %d", field.ID)
		}
		if err := EncodeField(e, field.ID, desc.Criticality, field.Value); err != nil {
			return errors.Wrapf(err, "%s (%d)", desc.Name, desc.ID)
		}
	}
	return nil
}

// Decode reads a ProtocolIE-Container into c applying the decoding policy.
// Report items are appended to c.CriticalityReport(), including those of
// protocol extensions nested in the IE values. A repeated IE fails the
// decode. On error c keeps the IEs decoded so far, and an optional IE whose
// value failed may be left allocated.
func Decode(d *per.Decoder, c Container) error {
	count, _, err := d.DecodeLengthDeterminant(per.Bound[uint64](0), per.Bound[uint64](MAX_PROTOCOL_IES))
	if err != nil {
		return err
	}

	var (
		set    = c.ObjectSet()
		report = c.CriticalityReport()
		seen   = make(map[uint16]bool, len(set))
	)
	for i := range count {
		id, criticality, data, err := DecodeField(d)
		if err != nil {
			return errors.Wrapf(err, "IE %d of %d", i+1, count)
		}

		if seen[id] {
			report.add(id, criticality, NotUnderstood)
			return errors.Wrapf(ErrDuplicateIE, "%s (%d)", set.Name(id), id)
		}

		var target per.Value
		if _, ok := set.Lookup(id); ok {
			target = c.Target(id)
		}
		if target != nil {
			nested := d.Nested(data)
			nested.SetSink(report)
			if err := target.Decode(nested); err != nil {
				return errors.Wrapf(err, "%s (%d)", set.Name(id), id)
			}
			seen[id] = true
			continue
		}

		switch criticality {
		case Reject:
			report.add(id, criticality, NotUnderstood)
			return errors.Wrapf(ErrRejectedIE, "id %d", id)
		case Notify:
			report.add(id, criticality, NotUnderstood)
		}
	}

	var result *multierror.Error
	for _, desc := range set {
		if desc.Presence == Mandatory && !seen[desc.ID] {
			report.add(desc.ID, desc.Criticality, Missing)
			result = multierror.Append(result, errors.Wrapf(ErrMissingMandatory, "%s (%d)", desc.Name, desc.ID))
		}
	}
	return result.ErrorOrNil()
}

// EncodeField writes one ProtocolIE-Field: the id, the criticality and the
// value as an open type.
func EncodeField(e *per.Encoder, id uint16, criticality Criticality, value per.Value) error {
	if err := e.EncodeConstrainedWholeNumber(0, 65535, int64(id)); err != nil {
		return err
	}
	if err := criticality.Encode(e); err != nil {
		return err
	}
	return e.EncodeOpenType(value)
}

// DecodeField reads one ProtocolIE-Field and returns the value octets
// undecoded.
func DecodeField(d *per.Decoder) (uint16, Criticality, []byte, error) {
	id, err := d.DecodeConstrainedWholeNumber(0, 65535)
	if err != nil {
		return 0, 0, nil, err
	}
	var criticality Criticality
	if err := criticality.Decode(d); err != nil {
		return 0, 0, nil, err
	}
	data, err := d.DecodeOpenType()
	if err != nil {
		return 0, 0, nil, err
	}
	return uint16(id), criticality, data, nil
}

func contains(fields []Field, id uint16) bool {
	for _, field := range fields {
		if field.ID == id {
			return true
		}
	}
	return false
}
