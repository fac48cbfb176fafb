// Package procedure routes decoded S1AP PDUs to handlers and answers
// malformed or partially understood PDUs with an ErrorIndication.
package procedure

import (
	"context"
	"encoding/hex"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/thebagchi/s1ap-go/lib/container"
	"github.com/thebagchi/s1ap-go/lib/logger"
	"github.com/thebagchi/s1ap-go/lib/s1ap"
)

// ErrNoHandler is returned by Dispatch when no handler is registered for a
// decoded PDU.
var ErrNoHandler = errors.New("no handler registered")

var (
	pdusReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "s1ap_pdus_received_total",
		Help: "Total number of S1AP PDUs decoded",
	}, []string{"procedure", "type"})

	pdusRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "s1ap_pdus_rejected_total",
		Help: "Total number of S1AP PDUs that could not be delivered",
	}, []string{"reason"})

	pdusNotified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "s1ap_pdus_notified_total",
		Help: "Total number of S1AP PDUs delivered with not understood IEs",
	}, []string{"procedure"})

	errorIndications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "s1ap_error_indications_sent_total",
		Help: "Total number of ErrorIndication messages sent",
	}, []string{"cause"})
)

// Sender writes an encoded S1AP PDU to the peer.
type Sender interface {
	Send(data []byte) error
}

// Handler processes one decoded PDU.
type Handler func(ctx context.Context, pdu *s1ap.PDU) error

type route struct {
	kind s1ap.PDUType
	code s1ap.ProcedureCode
}

// Dispatcher decodes PDUs and hands them to the handler registered for their
// type and procedure code. Dispatch may be called concurrently.
type Dispatcher struct {
	*logger.Logger

	sender   Sender
	mutex    sync.RWMutex
	handlers map[route]Handler
}

func NewDispatcher(sender Sender, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		Logger:   log,
		sender:   sender,
		handlers: make(map[route]Handler),
	}
}

// Handle registers handler for PDUs of the given type and procedure,
// replacing any earlier registration.
func (d *Dispatcher) Handle(kind s1ap.PDUType, code s1ap.ProcedureCode, handler Handler) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.handlers[route{kind: kind, code: code}] = handler
}

func (d *Dispatcher) handler(kind s1ap.PDUType, code s1ap.ProcedureCode) (Handler, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	handler, ok := d.handlers[route{kind: kind, code: code}]
	return handler, ok
}

// Send encodes m with the header of its procedure and writes it.
func (d *Dispatcher) Send(m s1ap.Message) error {
	data, err := s1ap.Marshal(s1ap.NewPDU(m))
	if err != nil {
		return err
	}
	if d.sender == nil {
		return errors.New("no sender configured")
	}
	return d.sender.Send(data)
}

// Dispatch decodes data and delivers it. A PDU failing the container policy
// or the procedure table is answered with an ErrorIndication and the decode
// error is returned; a PDU carrying notify IEs is delivered and also
// reported to the peer.
func (d *Dispatcher) Dispatch(ctx context.Context, data []byte) error {
	pdu, err := s1ap.Unmarshal(data)
	if err != nil {
		d.Warn("Failed to decode S1AP PDU [%s]: %v", hex.EncodeToString(data), err)
		d.reject(pdu, err)
		return err
	}
	pdusReceived.WithLabelValues(pdu.ProcedureCode.String(), pdu.Type.String()).Inc()
	d.Debug("Received %s", pdu)

	if report := pdu.Value.CriticalityReport(); !report.Empty() {
		pdusNotified.WithLabelValues(pdu.ProcedureCode.String()).Inc()
		diagnostics := s1ap.NewCriticalityDiagnostics(pdu.ProcedureCode, pdu.Type, pdu.Criticality, report)
		d.indicate(pdu, s1ap.CauseProtocolAbstractSyntaxErrorIgnoreAndNotify, &diagnostics)
	}

	handler, ok := d.handler(pdu.Type, pdu.ProcedureCode)
	if !ok {
		d.Warn("No handler for %s", pdu)
		return errors.Wrap(ErrNoHandler, pdu.String())
	}
	return handler(ctx, pdu)
}

// reject answers a PDU that could not be delivered. What is known about it
// depends on how far decoding went.
func (d *Dispatcher) reject(pdu *s1ap.PDU, err error) {
	var report *container.Report
	if pdu.Value != nil {
		report = pdu.Value.CriticalityReport()
	}
	switch {
	case errors.Is(err, container.ErrDuplicateIE):
		pdusRejected.WithLabelValues("abstract-syntax").Inc()
		diagnostics := s1ap.NewCriticalityDiagnostics(pdu.ProcedureCode, pdu.Type, pdu.Criticality, report)
		d.indicate(pdu, s1ap.CauseProtocolAbstractSyntaxErrorFalselyConstructedMessage, &diagnostics)
	case errors.Is(err, container.ErrRejectedIE), errors.Is(err, container.ErrMissingMandatory):
		pdusRejected.WithLabelValues("abstract-syntax").Inc()
		diagnostics := s1ap.NewCriticalityDiagnostics(pdu.ProcedureCode, pdu.Type, pdu.Criticality, report)
		d.indicate(pdu, s1ap.CauseProtocolAbstractSyntaxErrorReject, &diagnostics)
	case errors.Is(err, s1ap.ErrUnknownProcedure), errors.Is(err, s1ap.ErrUnexpectedMessage):
		pdusRejected.WithLabelValues("unknown-procedure").Inc()
		if pdu.Criticality == container.Ignore {
			return
		}
		diagnostics := s1ap.NewCriticalityDiagnostics(pdu.ProcedureCode, pdu.Type, pdu.Criticality, nil)
		d.indicate(pdu, s1ap.CauseProtocolAbstractSyntaxErrorReject, &diagnostics)
	default:
		pdusRejected.WithLabelValues("transfer-syntax").Inc()
		d.indicate(&s1ap.PDU{Type: pdu.Type, ProcedureCode: pdu.ProcedureCode}, s1ap.CauseProtocolTransferSyntaxError, nil)
	}
}

// indicate sends an ErrorIndication about pdu. No ErrorIndication is sent in
// reply to an ErrorIndication.
func (d *Dispatcher) indicate(pdu *s1ap.PDU, value s1ap.CauseProtocol, diagnostics *s1ap.CriticalityDiagnostics) {
	if pdu != nil && pdu.ProcedureCode == s1ap.PROCEDURE_ERROR_INDICATION {
		return
	}
	cause := s1ap.NewProtocolCause(value)
	indication := &s1ap.ErrorIndication{
		Cause:                  &cause,
		CriticalityDiagnostics: diagnostics,
	}
	if pdu != nil && pdu.Value != nil {
		indication.MMEUES1APID, indication.ENBUES1APID = UEIDs(pdu.Value)
	}
	errorIndications.WithLabelValues(value.String()).Inc()
	if err := d.Send(indication); err != nil {
		d.Error("Failed to send ErrorIndication (%s): %v", CauseString(&cause), err)
		return
	}
	d.Info("Sent ErrorIndication (%s)", CauseString(&cause))
}
