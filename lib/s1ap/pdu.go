package s1ap

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/per"
)

const (
	ALIGNED   = true
	UNALIGNED = false
)

// Variant is the PER variant used by Marshal and Unmarshal. S1AP runs over
// ALIGNED PER.
var Variant = ALIGNED

// PDUType is the S1AP-PDU alternative.
type PDUType uint8

const (
	InitiatingMessage PDUType = iota
	SuccessfulOutcome
	UnsuccessfulOutcome
)

const pduRootAlternatives = 3

func (t PDUType) String() string {
	switch t {
	case InitiatingMessage:
		return "initiatingMessage"
	case SuccessfulOutcome:
		return "successfulOutcome"
	case UnsuccessfulOutcome:
		return "unsuccessfulOutcome"
	}
	return fmt.Sprintf("PDUType(%d)", uint8(t))
}

// PDU is an S1AP-PDU. Whichever alternative Type names, the content is
// SEQUENCE { procedureCode, criticality, value } with value an open type
// whose type follows from the procedure code.
type PDU struct {
	Type          PDUType
	ProcedureCode ProcedureCode
	Criticality   container.Criticality
	Value         Message
}

// NewPDU wraps m with the header its procedure prescribes.
func NewPDU(m Message) *PDU {
	pdu := &PDU{
		Type:          m.Kind(),
		ProcedureCode: m.Procedure(),
		Criticality:   container.Ignore,
		Value:         m,
	}
	if p, err := LookupProcedure(pdu.ProcedureCode); err == nil {
		pdu.Criticality = p.Criticality
	}
	return pdu
}

func (p *PDU) String() string {
	return fmt.Sprintf("%s %s (%s)", p.Type, p.ProcedureCode, p.Criticality)
}

func (p *PDU) Encode(e *per.Encoder) error {
	if _, err := LookupProcedure(p.ProcedureCode); err != nil {
		return err
	}
	if p.Value == nil || p.Value.Procedure() != p.ProcedureCode || p.Value.Kind() != p.Type {
		return errors.Wrapf(ErrUnexpectedMessage, "%s %s", p.Type, p.ProcedureCode)
	}
	if err := e.EncodeChoiceIndex(uint64(p.Type), pduRootAlternatives, true); err != nil {
		return errors.Wrap(err, "S1AP-PDU")
	}
	if err := p.ProcedureCode.Encode(e); err != nil {
		return err
	}
	if err := p.Criticality.Encode(e); err != nil {
		return err
	}
	return errors.Wrap(e.EncodeOpenType(p.Value), p.ProcedureCode.String())
}

// Decode reads an S1AP-PDU. The header is kept whenever it was read, and
// Value holds the partially decoded message when the container policy
// fails, so callers can build diagnostics from its report.
func (p *PDU) Decode(d *per.Decoder) error {
	index, extended, err := d.DecodeChoiceIndex(pduRootAlternatives, true)
	if err != nil {
		return errors.Wrap(err, "S1AP-PDU")
	}
	if extended {
		if _, err := d.DecodeOpenType(); err != nil {
			return err
		}
		return errors.Wrapf(per.ErrUnknownChoice, "S1AP-PDU alternative %d", index)
	}
	p.Type = PDUType(index)
	if err := p.ProcedureCode.Decode(d); err != nil {
		return err
	}
	if err := p.Criticality.Decode(d); err != nil {
		return err
	}

	procedure, err := LookupProcedure(p.ProcedureCode)
	if err != nil {
		return err
	}
	message, err := procedure.New(p.Type)
	if err != nil {
		return err
	}
	data, err := d.DecodeOpenType()
	if err != nil {
		return err
	}
	p.Value = message
	return errors.Wrap(message.Decode(per.NewDecoder(data, d.Aligned())), procedure.Name)
}

// Marshal encodes pdu with the configured Variant.
func Marshal(pdu *PDU) ([]byte, error) {
	return per.Marshal(pdu, Variant)
}

// Unmarshal decodes an S1AP-PDU with the configured Variant. The returned
// PDU is non-nil even on error and holds whatever was decoded.
func Unmarshal(data []byte) (*PDU, error) {
	pdu := new(PDU)
	return pdu, per.Unmarshal(data, pdu, Variant)
}
