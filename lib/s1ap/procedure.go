package s1ap

import (
	"maps"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/thebagchi/s1ap-go/lib/container"
)

var (
	// ErrUnknownProcedure is returned for a procedure code outside the table.
	ErrUnknownProcedure = errors.New("unknown procedure code")

	// ErrUnexpectedMessage is returned when a procedure defines no message for
	// the PDU type, or the value does not belong to the procedure.
	ErrUnexpectedMessage = errors.New("unexpected message for procedure")
)

// Procedure is one row of the S1AP-ELEMENTARY-PROCEDURES table. Class 2
// procedures leave the outcome constructors nil.
type Procedure struct {
	Code         ProcedureCode
	Name         string
	Criticality  container.Criticality
	Initiating   func() Message
	Successful   func() Message
	Unsuccessful func() Message
}

// Class returns 1 for procedures with a response, 2 otherwise.
func (p *Procedure) Class() int {
	if p.Successful != nil || p.Unsuccessful != nil {
		return 1
	}
	return 2
}

// New returns an empty message of the given PDU type for this procedure.
func (p *Procedure) New(kind PDUType) (Message, error) {
	var build func() Message
	switch kind {
	case InitiatingMessage:
		build = p.Initiating
	case SuccessfulOutcome:
		build = p.Successful
	case UnsuccessfulOutcome:
		build = p.Unsuccessful
	}
	if build == nil {
		return nil, errors.Wrapf(ErrUnexpectedMessage, "%s for %s", kind, p.Name)
	}
	return build(), nil
}

var procedures = map[ProcedureCode]*Procedure{
	PROCEDURE_HANDOVER_PREPARATION: {
		Code:         PROCEDURE_HANDOVER_PREPARATION,
		Name:         "HandoverPreparation",
		Criticality:  container.Reject,
		Initiating:   func() Message { return new(HandoverRequired) },
		Successful:   func() Message { return new(HandoverCommand) },
		Unsuccessful: func() Message { return new(HandoverPreparationFailure) },
	},
	PROCEDURE_HANDOVER_CANCEL: {
		Code:        PROCEDURE_HANDOVER_CANCEL,
		Name:        "HandoverCancel",
		Criticality: container.Reject,
		Initiating:  func() Message { return new(HandoverCancel) },
		Successful:  func() Message { return new(HandoverCancelAcknowledge) },
	},
	PROCEDURE_INITIAL_CONTEXT_SETUP: {
		Code:         PROCEDURE_INITIAL_CONTEXT_SETUP,
		Name:         "InitialContextSetup",
		Criticality:  container.Reject,
		Initiating:   func() Message { return new(InitialContextSetupRequest) },
		Successful:   func() Message { return new(InitialContextSetupResponse) },
		Unsuccessful: func() Message { return new(InitialContextSetupFailure) },
	},
	PROCEDURE_PAGING: {
		Code:        PROCEDURE_PAGING,
		Name:        "Paging",
		Criticality: container.Ignore,
		Initiating:  func() Message { return new(Paging) },
	},
	PROCEDURE_DOWNLINK_NAS_TRANSPORT: {
		Code:        PROCEDURE_DOWNLINK_NAS_TRANSPORT,
		Name:        "DownlinkNASTransport",
		Criticality: container.Ignore,
		Initiating:  func() Message { return new(DownlinkNASTransport) },
	},
	PROCEDURE_INITIAL_UE_MESSAGE: {
		Code:        PROCEDURE_INITIAL_UE_MESSAGE,
		Name:        "InitialUEMessage",
		Criticality: container.Ignore,
		Initiating:  func() Message { return new(InitialUEMessage) },
	},
	PROCEDURE_UPLINK_NAS_TRANSPORT: {
		Code:        PROCEDURE_UPLINK_NAS_TRANSPORT,
		Name:        "UplinkNASTransport",
		Criticality: container.Ignore,
		Initiating:  func() Message { return new(UplinkNASTransport) },
	},
	PROCEDURE_ERROR_INDICATION: {
		Code:        PROCEDURE_ERROR_INDICATION,
		Name:        "ErrorIndication",
		Criticality: container.Ignore,
		Initiating:  func() Message { return new(ErrorIndication) },
	},
	PROCEDURE_S1_SETUP: {
		Code:         PROCEDURE_S1_SETUP,
		Name:         "S1Setup",
		Criticality:  container.Reject,
		Initiating:   func() Message { return new(S1SetupRequest) },
		Successful:   func() Message { return new(S1SetupResponse) },
		Unsuccessful: func() Message { return new(S1SetupFailure) },
	},
	PROCEDURE_UE_CONTEXT_RELEASE_REQUEST: {
		Code:        PROCEDURE_UE_CONTEXT_RELEASE_REQUEST,
		Name:        "UEContextReleaseRequest",
		Criticality: container.Ignore,
		Initiating:  func() Message { return new(UEContextReleaseRequest) },
	},
	PROCEDURE_UE_CONTEXT_RELEASE: {
		Code:        PROCEDURE_UE_CONTEXT_RELEASE,
		Name:        "UEContextRelease",
		Criticality: container.Reject,
		Initiating:  func() Message { return new(UEContextReleaseCommand) },
		Successful:  func() Message { return new(UEContextReleaseComplete) },
	},
}

// LookupProcedure returns the table row for code.
func LookupProcedure(code ProcedureCode) (*Procedure, error) {
	if p, ok := procedures[code]; ok {
		return p, nil
	}
	return nil, errors.Wrapf(ErrUnknownProcedure, "%d", code)
}

// Procedures returns every modelled procedure ordered by code.
func Procedures() []*Procedure {
	result := make([]*Procedure, 0, len(procedures))
	for _, code := range slices.Sorted(maps.Keys(procedures)) {
		result = append(result, procedures[code])
	}
	return result
}

// String returns the procedure name, or the code for unknown procedures.
func (c ProcedureCode) String() string {
	if p, ok := procedures[c]; ok {
		return p.Name
	}
	return "procedure-" + strconv.Itoa(int(c))
}
