package s1ap

import (
	"fmt"

	"github.com/thebagchi/s1ap-go/lib/per"
)

// CauseRadioNetwork ::= ENUMERATED { unspecified, ..., x2-handover-triggered,
// ..., redirection-towards-1xRTT, not-supported-QCI-value, invalid-CSG-Id,
// release-due-to-pre-emption }
type CauseRadioNetwork uint8

const (
	CauseRadioNetworkUnspecified CauseRadioNetwork = iota
	CauseRadioNetworkTX2RelocOverallExpiry
	CauseRadioNetworkSuccessfulHandover
	CauseRadioNetworkReleaseDueToEUTRANGeneratedReason
	CauseRadioNetworkHandoverCancelled
	CauseRadioNetworkPartialHandover
	CauseRadioNetworkHOFailureInTargetEPCENBOrTargetSystem
	CauseRadioNetworkHOTargetNotAllowed
	CauseRadioNetworkTS1RelocOverallExpiry
	CauseRadioNetworkTS1RelocPrepExpiry
	CauseRadioNetworkCellNotAvailable
	CauseRadioNetworkUnknownTargetID
	CauseRadioNetworkNoRadioResourcesAvailableInTargetCell
	CauseRadioNetworkUnknownMMEUES1APID
	CauseRadioNetworkUnknownENBUES1APID
	CauseRadioNetworkUnknownPairUES1APID
	CauseRadioNetworkHandoverDesirableForRadioReason
	CauseRadioNetworkTimeCriticalHandover
	CauseRadioNetworkResourceOptimisationHandover
	CauseRadioNetworkReduceLoadInServingCell
	CauseRadioNetworkUserInactivity
	CauseRadioNetworkRadioConnectionWithUELost
	CauseRadioNetworkLoadBalancingTAURequired
	CauseRadioNetworkCSFallbackTriggered
	CauseRadioNetworkUENotAvailableForPSService
	CauseRadioNetworkRadioResourcesNotAvailable
	CauseRadioNetworkFailureInRadioInterfaceProcedure
	CauseRadioNetworkInvalidQOSCombination
	CauseRadioNetworkInterRATRedirection
	CauseRadioNetworkInteractionWithOtherProcedure
	CauseRadioNetworkUnknownERABID
	CauseRadioNetworkMultipleERABIDInstances
	CauseRadioNetworkEncryptionAndOrIntegrityProtectionAlgorithmsNotSupported
	CauseRadioNetworkS1IntraSystemHandoverTriggered
	CauseRadioNetworkS1InterSystemHandoverTriggered
	CauseRadioNetworkX2HandoverTriggered
	CauseRadioNetworkRedirectionTowards1xRTT
	CauseRadioNetworkNotSupportedQCIValue
	CauseRadioNetworkInvalidCSGID
	CauseRadioNetworkReleaseDueToPreEmption
)

var causesRadioNetwork = enumeration{
	kind: "CauseRadioNetwork",
	names: []string{
		"unspecified",
		"tx2relocoverall-expiry",
		"successful-handover",
		"release-due-to-eutran-generated-reason",
		"handover-cancelled",
		"partial-handover",
		"ho-failure-in-target-EPC-eNB-or-target-system",
		"ho-target-not-allowed",
		"tS1relocoverall-expiry",
		"tS1relocprep-expiry",
		"cell-not-available",
		"unknown-targetID",
		"no-radio-resources-available-in-target-cell",
		"unknown-mme-ue-s1ap-id",
		"unknown-enb-ue-s1ap-id",
		"unknown-pair-ue-s1ap-id",
		"handover-desirable-for-radio-reason",
		"time-critical-handover",
		"resource-optimisation-handover",
		"reduce-load-in-serving-cell",
		"user-inactivity",
		"radio-connection-with-ue-lost",
		"load-balancing-tau-required",
		"cs-fallback-triggered",
		"ue-not-available-for-ps-service",
		"radio-resources-not-available",
		"failure-in-radio-interface-procedure",
		"invalid-qos-combination",
		"interrat-redirection",
		"interaction-with-other-procedure",
		"unknown-E-RAB-ID",
		"multiple-E-RAB-ID-instances",
		"encryption-and-or-integrity-protection-algorithms-not-supported",
		"s1-intra-system-handover-triggered",
		"s1-inter-system-handover-triggered",
		"x2-handover-triggered",
		"redirection-towards-1xRTT",
		"not-supported-QCI-value",
		"invalid-CSG-Id",
		"release-due-to-pre-emption",
	},
	root:       36,
	extensible: true,
}

func (c CauseRadioNetwork) String() string { return causesRadioNetwork.name(uint8(c)) }

func (c CauseRadioNetwork) Encode(e *per.Encoder) error {
	return causesRadioNetwork.encode(e, uint8(c))
}

func (c *CauseRadioNetwork) Decode(d *per.Decoder) error {
	value, err := causesRadioNetwork.decode(d)
	*c = CauseRadioNetwork(value)
	return err
}

// CauseTransport ::= ENUMERATED { transport-resource-unavailable, unspecified, ... }
type CauseTransport uint8

const (
	CauseTransportTransportResourceUnavailable CauseTransport = iota
	CauseTransportUnspecified
)

var causesTransport = enumeration{
	kind:       "CauseTransport",
	names:      []string{"transport-resource-unavailable", "unspecified"},
	root:       2,
	extensible: true,
}

func (c CauseTransport) String() string { return causesTransport.name(uint8(c)) }

func (c CauseTransport) Encode(e *per.Encoder) error {
	return causesTransport.encode(e, uint8(c))
}

func (c *CauseTransport) Decode(d *per.Decoder) error {
	value, err := causesTransport.decode(d)
	*c = CauseTransport(value)
	return err
}

// CauseNas ::= ENUMERATED { normal-release, authentication-failure, detach,
// unspecified, ..., csg-subscription-expiry, uE-not-in-PLMN-serving-area }
type CauseNas uint8

const (
	CauseNasNormalRelease CauseNas = iota
	CauseNasAuthenticationFailure
	CauseNasDetach
	CauseNasUnspecified
	CauseNasCSGSubscriptionExpiry
	CauseNasUENotInPLMNServingArea
)

var causesNas = enumeration{
	kind: "CauseNas",
	names: []string{"normal-release", "authentication-failure", "detach", "unspecified",
		"csg-subscription-expiry", "uE-not-in-PLMN-serving-area"},
	root:       4,
	extensible: true,
}

func (c CauseNas) String() string { return causesNas.name(uint8(c)) }

func (c CauseNas) Encode(e *per.Encoder) error {
	return causesNas.encode(e, uint8(c))
}

func (c *CauseNas) Decode(d *per.Decoder) error {
	value, err := causesNas.decode(d)
	*c = CauseNas(value)
	return err
}

// CauseProtocol ::= ENUMERATED { transfer-syntax-error,
// abstract-syntax-error-reject, abstract-syntax-error-ignore-and-notify,
// message-not-compatible-with-receiver-state, semantic-error,
// abstract-syntax-error-falsely-constructed-message, unspecified, ... }
type CauseProtocol uint8

const (
	CauseProtocolTransferSyntaxError CauseProtocol = iota
	CauseProtocolAbstractSyntaxErrorReject
	CauseProtocolAbstractSyntaxErrorIgnoreAndNotify
	CauseProtocolMessageNotCompatibleWithReceiverState
	CauseProtocolSemanticError
	CauseProtocolAbstractSyntaxErrorFalselyConstructedMessage
	CauseProtocolUnspecified
)

var causesProtocol = enumeration{
	kind: "CauseProtocol",
	names: []string{
		"transfer-syntax-error",
		"abstract-syntax-error-reject",
		"abstract-syntax-error-ignore-and-notify",
		"message-not-compatible-with-receiver-state",
		"semantic-error",
		"abstract-syntax-error-falsely-constructed-message",
		"unspecified",
	},
	root:       7,
	extensible: true,
}

func (c CauseProtocol) String() string { return causesProtocol.name(uint8(c)) }

func (c CauseProtocol) Encode(e *per.Encoder) error {
	return causesProtocol.encode(e, uint8(c))
}

func (c *CauseProtocol) Decode(d *per.Decoder) error {
	value, err := causesProtocol.decode(d)
	*c = CauseProtocol(value)
	return err
}

// CauseMisc ::= ENUMERATED { control-processing-overload,
// not-enough-user-plane-processing-resources, hardware-failure,
// om-intervention, unspecified, unknown-PLMN, ... }
type CauseMisc uint8

const (
	CauseMiscControlProcessingOverload CauseMisc = iota
	CauseMiscNotEnoughUserPlaneProcessingResources
	CauseMiscHardwareFailure
	CauseMiscOMIntervention
	CauseMiscUnspecified
	CauseMiscUnknownPLMN
)

var causesMisc = enumeration{
	kind: "CauseMisc",
	names: []string{"control-processing-overload", "not-enough-user-plane-processing-resources",
		"hardware-failure", "om-intervention", "unspecified", "unknown-PLMN"},
	root:       6,
	extensible: true,
}

func (c CauseMisc) String() string { return causesMisc.name(uint8(c)) }

func (c CauseMisc) Encode(e *per.Encoder) error {
	return causesMisc.encode(e, uint8(c))
}

func (c *CauseMisc) Decode(d *per.Decoder) error {
	value, err := causesMisc.decode(d)
	*c = CauseMisc(value)
	return err
}

// CausePresent names the live alternative of a Cause.
type CausePresent uint8

const (
	CausePresentNothing CausePresent = iota
	CausePresentRadioNetwork
	CausePresentTransport
	CausePresentNas
	CausePresentProtocol
	CausePresentMisc
)

var causeGroups = [...]string{"nothing", "radioNetwork", "transport", "nas", "protocol", "misc"}

func (p CausePresent) String() string {
	if int(p) < len(causeGroups) {
		return causeGroups[p]
	}
	return causeGroups[0]
}

// Cause ::= CHOICE { radioNetwork, transport, nas, protocol, misc, ... }
type Cause struct {
	choice
}

func NewRadioNetworkCause(value CauseRadioNetwork) Cause {
	var c Cause
	c.SetRadioNetwork(value)
	return c
}

func NewTransportCause(value CauseTransport) Cause {
	var c Cause
	c.SetTransport(value)
	return c
}

func NewNasCause(value CauseNas) Cause {
	var c Cause
	c.SetNas(value)
	return c
}

func NewProtocolCause(value CauseProtocol) Cause {
	var c Cause
	c.SetProtocol(value)
	return c
}

func NewMiscCause(value CauseMisc) Cause {
	var c Cause
	c.SetMisc(value)
	return c
}

func (c Cause) Present() CausePresent {
	return CausePresent(c.present)
}

func (c *Cause) SetRadioNetwork(value CauseRadioNetwork) {
	c.set(uint8(CausePresentRadioNetwork), &value)
}

func (c *Cause) SetTransport(value CauseTransport) {
	c.set(uint8(CausePresentTransport), &value)
}

func (c *Cause) SetNas(value CauseNas) {
	c.set(uint8(CausePresentNas), &value)
}

func (c *Cause) SetProtocol(value CauseProtocol) {
	c.set(uint8(CausePresentProtocol), &value)
}

func (c *Cause) SetMisc(value CauseMisc) {
	c.set(uint8(CausePresentMisc), &value)
}

func (c Cause) RadioNetwork() (CauseRadioNetwork, bool) {
	return alternativeOf[CauseRadioNetwork](c.choice, uint8(CausePresentRadioNetwork))
}

func (c Cause) Transport() (CauseTransport, bool) {
	return alternativeOf[CauseTransport](c.choice, uint8(CausePresentTransport))
}

func (c Cause) Nas() (CauseNas, bool) {
	return alternativeOf[CauseNas](c.choice, uint8(CausePresentNas))
}

func (c Cause) Protocol() (CauseProtocol, bool) {
	return alternativeOf[CauseProtocol](c.choice, uint8(CausePresentProtocol))
}

func (c Cause) Misc() (CauseMisc, bool) {
	return alternativeOf[CauseMisc](c.choice, uint8(CausePresentMisc))
}

// String renders the cause as group and value, "protocol: semantic-error".
func (c Cause) String() string {
	if c.value == nil {
		return CausePresentNothing.String()
	}
	return fmt.Sprintf("%s: %s", c.Present(), c.value)
}

func (c *Cause) Encode(e *per.Encoder) error {
	return c.encode(e, "Cause", 5, true)
}

func (c *Cause) Decode(d *per.Decoder) error {
	return c.decode(d, "Cause", 5, true,
		func() per.Value { return new(CauseRadioNetwork) },
		func() per.Value { return new(CauseTransport) },
		func() per.Value { return new(CauseNas) },
		func() per.Value { return new(CauseProtocol) },
		func() per.Value { return new(CauseMisc) })
}
