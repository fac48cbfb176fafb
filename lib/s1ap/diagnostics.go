package s1ap

import (
	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/per"
)

// CriticalityDiagnostics-IE-Item ::= SEQUENCE { iECriticality, iE-ID,
// typeOfError, iE-Extensions OPTIONAL, ... }
type CriticalityDiagnosticsIEItem struct {
	IECriticality container.Criticality
	IEID          uint16
	TypeOfError   container.TypeOfError
	IEExtensions  container.Extensions
}

func (i *CriticalityDiagnosticsIEItem) Encode(e *per.Encoder) error {
	if err := encodeSequence(e, i.IEExtensions); err != nil {
		return err
	}
	if err := i.IECriticality.Encode(e); err != nil {
		return err
	}
	if err := e.EncodeConstrainedWholeNumber(0, MAX_PROTOCOL_IE_ID, int64(i.IEID)); err != nil {
		return err
	}
	if err := i.TypeOfError.Encode(e); err != nil {
		return err
	}
	return encodeTail(e, i.IEExtensions)
}

func (i *CriticalityDiagnosticsIEItem) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 0)
	if err != nil {
		return err
	}
	if err := i.IECriticality.Decode(d); err != nil {
		return err
	}
	id, err := d.DecodeConstrainedWholeNumber(0, MAX_PROTOCOL_IE_ID)
	if err != nil {
		return err
	}
	i.IEID = uint16(id)
	if err := i.TypeOfError.Decode(d); err != nil {
		return err
	}
	return decodeTail(d, &i.IEExtensions, optionals[0], extended)
}

// CriticalityDiagnostics ::= SEQUENCE { procedureCode OPTIONAL,
// triggeringMessage OPTIONAL, procedureCriticality OPTIONAL,
// iEsCriticalityDiagnostics OPTIONAL, iE-Extensions OPTIONAL, ... }
type CriticalityDiagnostics struct {
	ProcedureCode             *ProcedureCode
	TriggeringMessage         *TriggeringMessage
	ProcedureCriticality      *container.Criticality
	IEsCriticalityDiagnostics []CriticalityDiagnosticsIEItem
	IEExtensions              container.Extensions
}

// NewCriticalityDiagnostics describes a received message by its procedure
// and the IEs recorded in report.
func NewCriticalityDiagnostics(code ProcedureCode, kind PDUType, criticality container.Criticality,
	report *container.Report) CriticalityDiagnostics {
	triggering := TriggeringMessage(kind)
	diagnostics := CriticalityDiagnostics{
		ProcedureCode:        &code,
		TriggeringMessage:    &triggering,
		ProcedureCriticality: &criticality,
	}
	if report.Empty() {
		return diagnostics
	}
	for _, item := range report.Items {
		if len(diagnostics.IEsCriticalityDiagnostics) == MAX_NOOF_ERRORS {
			break
		}
		diagnostics.IEsCriticalityDiagnostics = append(diagnostics.IEsCriticalityDiagnostics, CriticalityDiagnosticsIEItem{
			IECriticality: item.Criticality,
			IEID:          item.ID,
			TypeOfError:   item.TypeOfError,
		})
	}
	return diagnostics
}

func (c *CriticalityDiagnostics) Encode(e *per.Encoder) error {
	err := encodeSequence(e, c.IEExtensions, c.ProcedureCode != nil, c.TriggeringMessage != nil,
		c.ProcedureCriticality != nil, c.IEsCriticalityDiagnostics != nil)
	if err != nil {
		return err
	}
	if c.ProcedureCode != nil {
		if err := c.ProcedureCode.Encode(e); err != nil {
			return err
		}
	}
	if c.TriggeringMessage != nil {
		if err := c.TriggeringMessage.Encode(e); err != nil {
			return err
		}
	}
	if c.ProcedureCriticality != nil {
		if err := c.ProcedureCriticality.Encode(e); err != nil {
			return err
		}
	}
	if c.IEsCriticalityDiagnostics != nil {
		err := per.EncodeSequenceOf(e, c.IEsCriticalityDiagnostics, per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_ERRORS), false)
		if err != nil {
			return errors.Wrap(err, "iEsCriticalityDiagnostics")
		}
	}
	return encodeTail(e, c.IEExtensions)
}

func (c *CriticalityDiagnostics) Decode(d *per.Decoder) error {
	extended, optionals, err := decodeSequence(d, 4)
	if err != nil {
		return err
	}
	if optionals[0] {
		c.ProcedureCode = new(ProcedureCode)
		if err := c.ProcedureCode.Decode(d); err != nil {
			return err
		}
	}
	if optionals[1] {
		c.TriggeringMessage = new(TriggeringMessage)
		if err := c.TriggeringMessage.Decode(d); err != nil {
			return err
		}
	}
	if optionals[2] {
		c.ProcedureCriticality = new(container.Criticality)
		if err := c.ProcedureCriticality.Decode(d); err != nil {
			return err
		}
	}
	if optionals[3] {
		c.IEsCriticalityDiagnostics, err = per.DecodeSequenceOf[CriticalityDiagnosticsIEItem](d,
			per.Bound[uint64](1), per.Bound[uint64](MAX_NOOF_ERRORS), false)
		if err != nil {
			return errors.Wrap(err, "iEsCriticalityDiagnostics")
		}
	}
	return decodeTail(d, &c.IEExtensions, optionals[4], extended)
}
