package s1ap

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/per"
)

// enumeration describes an ENUMERATED type. names holds the root
// enumerations followed by the known extension additions.
type enumeration struct {
	kind       string
	names      []string
	root       uint64
	extensible bool
}

func (n enumeration) name(value uint8) string {
	if int(value) < len(n.names) {
		return n.names[value]
	}
	return fmt.Sprintf("%s(%d)", n.kind, value)
}

func (n enumeration) encode(e *per.Encoder, value uint8) error {
	if int(value) >= len(n.names) {
		return errors.Wrapf(per.ErrOutOfRange, "%s(%d)", n.kind, value)
	}
	return e.EncodeEnumerated(uint64(value), n.root, n.extensible)
}

// decode accepts extension additions unknown to names; they keep their
// index and print as numbers.
func (n enumeration) decode(d *per.Decoder) (uint8, error) {
	value, err := d.DecodeEnumerated(n.root, n.extensible)
	if err != nil {
		return 0, errors.Wrap(err, n.kind)
	}
	if value > 255 {
		return 0, errors.Wrapf(per.ErrOutOfRange, "%s(%d)", n.kind, value)
	}
	return uint8(value), nil
}

// HandoverType ::= ENUMERATED { intralte, ltetoutran, ltetogeran, utrantolte,
// gerantolte, ..., eps-to-5gs, fivegs-to-eps }
type HandoverType uint8

const (
	HandoverTypeIntraLTE HandoverType = iota
	HandoverTypeLTEToUTRAN
	HandoverTypeLTEToGERAN
	HandoverTypeUTRANToLTE
	HandoverTypeGERANToLTE
	HandoverTypeEPSTo5GS
	HandoverType5GSToEPS
)

var handoverTypes = enumeration{
	kind:       "HandoverType",
	names:      []string{"intralte", "ltetoutran", "ltetogeran", "utrantolte", "gerantolte", "eps-to-5gs", "fivegs-to-eps"},
	root:       5,
	extensible: true,
}

func (t HandoverType) String() string { return handoverTypes.name(uint8(t)) }
func (t HandoverType) Encode(e *per.Encoder) error { return handoverTypes.encode(e, uint8(t)) }

func (t *HandoverType) Decode(d *per.Decoder) error {
	value, err := handoverTypes.decode(d)
	*t = HandoverType(value)
	return err
}

// PagingDRX ::= ENUMERATED { v32, v64, v128, v256, ... }
type PagingDRX uint8

const (
	PagingDRX32 PagingDRX = iota
	PagingDRX64
	PagingDRX128
	PagingDRX256
)

var pagingDRXs = enumeration{
	kind:       "PagingDRX",
	names:      []string{"v32", "v64", "v128", "v256"},
	root:       4,
	extensible: true,
}

func (p PagingDRX) String() string { return pagingDRXs.name(uint8(p)) }
func (p PagingDRX) Encode(e *per.Encoder) error { return pagingDRXs.encode(e, uint8(p)) }

func (p *PagingDRX) Decode(d *per.Decoder) error {
	value, err := pagingDRXs.decode(d)
	*p = PagingDRX(value)
	return err
}

// TimeToWait ::= ENUMERATED { v1s, v2s, v5s, v10s, v20s, v60s, ... }
type TimeToWait uint8

const (
	TimeToWait1s TimeToWait = iota
	TimeToWait2s
	TimeToWait5s
	TimeToWait10s
	TimeToWait20s
	TimeToWait60s
)

var timesToWait = enumeration{
	kind:       "TimeToWait",
	names:      []string{"v1s", "v2s", "v5s", "v10s", "v20s", "v60s"},
	root:       6,
	extensible: true,
}

func (t TimeToWait) String() string { return timesToWait.name(uint8(t)) }
func (t TimeToWait) Encode(e *per.Encoder) error { return timesToWait.encode(e, uint8(t)) }

func (t *TimeToWait) Decode(d *per.Decoder) error {
	value, err := timesToWait.decode(d)
	*t = TimeToWait(value)
	return err
}

// RRC-Establishment-Cause ::= ENUMERATED { emergency, highPriorityAccess,
// mt-Access, mo-Signalling, mo-Data, ..., delay-TolerantAccess, mo-VoiceCall,
// mo-ExceptionData }
type RRCEstablishmentCause uint8

const (
	RRCEstablishmentCauseEmergency RRCEstablishmentCause = iota
	RRCEstablishmentCauseHighPriorityAccess
	RRCEstablishmentCauseMTAccess
	RRCEstablishmentCauseMOSignalling
	RRCEstablishmentCauseMOData
	RRCEstablishmentCauseDelayTolerantAccess
	RRCEstablishmentCauseMOVoiceCall
	RRCEstablishmentCauseMOExceptionData
)

var rrcEstablishmentCauses = enumeration{
	kind: "RRC-Establishment-Cause",
	names: []string{"emergency", "highPriorityAccess", "mt-Access", "mo-Signalling", "mo-Data",
		"delay-TolerantAccess", "mo-VoiceCall", "mo-ExceptionData"},
	root:       5,
	extensible: true,
}

func (c RRCEstablishmentCause) String() string { return rrcEstablishmentCauses.name(uint8(c)) }

func (c RRCEstablishmentCause) Encode(e *per.Encoder) error {
	return rrcEstablishmentCauses.encode(e, uint8(c))
}

func (c *RRCEstablishmentCause) Decode(d *per.Decoder) error {
	value, err := rrcEstablishmentCauses.decode(d)
	*c = RRCEstablishmentCause(value)
	return err
}

// Direct-Forwarding-Path-Availability ::= ENUMERATED { directPathAvailable, ... }
type DirectForwardingPathAvailability uint8

const DirectPathAvailable DirectForwardingPathAvailability = 0

var directForwardingPathAvailabilities = enumeration{
	kind:       "Direct-Forwarding-Path-Availability",
	names:      []string{"directPathAvailable"},
	root:       1,
	extensible: true,
}

func (a DirectForwardingPathAvailability) String() string {
	return directForwardingPathAvailabilities.name(uint8(a))
}

func (a DirectForwardingPathAvailability) Encode(e *per.Encoder) error {
	return directForwardingPathAvailabilities.encode(e, uint8(a))
}

func (a *DirectForwardingPathAvailability) Decode(d *per.Decoder) error {
	value, err := directForwardingPathAvailabilities.decode(d)
	*a = DirectForwardingPathAvailability(value)
	return err
}

// Pre-emptionCapability ::= ENUMERATED { shall-not-trigger-pre-emption, may-trigger-pre-emption }
type PreEmptionCapability uint8

const (
	ShallNotTriggerPreEmption PreEmptionCapability = iota
	MayTriggerPreEmption
)

var preEmptionCapabilities = enumeration{
	kind:  "Pre-emptionCapability",
	names: []string{"shall-not-trigger-pre-emption", "may-trigger-pre-emption"},
	root:  2,
}

func (c PreEmptionCapability) String() string { return preEmptionCapabilities.name(uint8(c)) }
func (c PreEmptionCapability) Encode(e *per.Encoder) error { return preEmptionCapabilities.encode(e, uint8(c)) }

func (c *PreEmptionCapability) Decode(d *per.Decoder) error {
	value, err := preEmptionCapabilities.decode(d)
	*c = PreEmptionCapability(value)
	return err
}

// Pre-emptionVulnerability ::= ENUMERATED { not-pre-emptable, pre-emptable }
type PreEmptionVulnerability uint8

const (
	NotPreEmptable PreEmptionVulnerability = iota
	PreEmptable
)

var preEmptionVulnerabilities = enumeration{
	kind:  "Pre-emptionVulnerability",
	names: []string{"not-pre-emptable", "pre-emptable"},
	root:  2,
}

func (v PreEmptionVulnerability) String() string { return preEmptionVulnerabilities.name(uint8(v)) }

func (v PreEmptionVulnerability) Encode(e *per.Encoder) error {
	return preEmptionVulnerabilities.encode(e, uint8(v))
}

func (v *PreEmptionVulnerability) Decode(d *per.Decoder) error {
	value, err := preEmptionVulnerabilities.decode(d)
	*v = PreEmptionVulnerability(value)
	return err
}

// TriggeringMessage ::= ENUMERATED { initiating-message, successful-outcome,
// unsuccessfull-outcome }
type TriggeringMessage uint8

const (
	TriggeringInitiatingMessage TriggeringMessage = iota
	TriggeringSuccessfulOutcome
	TriggeringUnsuccessfulOutcome
)

var triggeringMessages = enumeration{
	kind:  "TriggeringMessage",
	names: []string{"initiating-message", "successful-outcome", "unsuccessfull-outcome"},
	root:  3,
}

func (m TriggeringMessage) String() string { return triggeringMessages.name(uint8(m)) }
func (m TriggeringMessage) Encode(e *per.Encoder) error { return triggeringMessages.encode(e, uint8(m)) }

func (m *TriggeringMessage) Decode(d *per.Decoder) error {
	value, err := triggeringMessages.decode(d)
	*m = TriggeringMessage(value)
	return err
}

// CNDomain ::= ENUMERATED { ps, cs }
type CNDomain uint8

const (
	CNDomainPS CNDomain = iota
	CNDomainCS
)

var cnDomains = enumeration{
	kind:  "CNDomain",
	names: []string{"ps", "cs"},
	root:  2,
}

func (c CNDomain) String() string { return cnDomains.name(uint8(c)) }
func (c CNDomain) Encode(e *per.Encoder) error { return cnDomains.encode(e, uint8(c)) }

func (c *CNDomain) Decode(d *per.Decoder) error {
	value, err := cnDomains.decode(d)
	*c = CNDomain(value)
	return err
}

// GWContextReleaseIndication ::= ENUMERATED { true, ... }
type GWContextReleaseIndication uint8

const GWContextReleaseIndicationTrue GWContextReleaseIndication = 0

var gwContextReleaseIndications = enumeration{
	kind:       "GWContextReleaseIndication",
	names:      []string{"true"},
	root:       1,
	extensible: true,
}

func (g GWContextReleaseIndication) String() string {
	return gwContextReleaseIndications.name(uint8(g))
}

func (g GWContextReleaseIndication) Encode(e *per.Encoder) error {
	return gwContextReleaseIndications.encode(e, uint8(g))
}

func (g *GWContextReleaseIndication) Decode(d *per.Decoder) error {
	value, err := gwContextReleaseIndications.decode(d)
	*g = GWContextReleaseIndication(value)
	return err
}
