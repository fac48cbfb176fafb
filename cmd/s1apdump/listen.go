package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thebagchi/s1ap-go/lib/procedure"
	"github.com/thebagchi/s1ap-go/lib/s1ap"
	"github.com/thebagchi/s1ap-go/lib/transport"
)

var listenCmd = &cobra.Command{
	Use:     "listen",
	Short:   "Accept SCTP associations and log every S1AP PDU received",
	Long:    "Accept SCTP associations on the configured address, log every S1AP PDU received and answer S1SetupRequest and UEContextReleaseRequest.",
	Example: "s1apdump listen -c s1apdump.yaml",
	RunE:    listenFunc,
}

func init() {
	rootCmd.AddCommand(listenCmd)
}

func listenFunc(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := transport.Listen(cfg.Transport(), log)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		listener.Close()
	}()
	log.Info("Listening on %s", listener.Addr())

	for {
		association, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go serve(ctx, association)
	}
}

func serve(ctx context.Context, association *transport.Association) {
	defer association.Close()
	dispatcher := procedure.NewDispatcher(association, association.Logger)
	register(dispatcher)
	if err := transport.Serve(ctx, association, dispatcher, association.Logger); err != nil {
		association.Error("Association failed: %v", err)
	}
}

// register logs every modelled message and answers S1SetupRequest and
// UEContextReleaseRequest.
func register(dispatcher *procedure.Dispatcher) {
	for _, p := range s1ap.Procedures() {
		for _, kind := range []s1ap.PDUType{s1ap.InitiatingMessage, s1ap.SuccessfulOutcome, s1ap.UnsuccessfulOutcome} {
			if _, err := p.New(kind); err != nil {
				continue
			}
			dispatcher.Handle(kind, p.Code, func(ctx context.Context, pdu *s1ap.PDU) error {
				dispatcher.Info("Received %s", pdu)
				return nil
			})
		}
	}
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_S1_SETUP, func(ctx context.Context, pdu *s1ap.PDU) error {
		request := pdu.Value.(*s1ap.S1SetupRequest)
		if id, ok := request.GlobalENBID.ENBID.MacroENBID(); ok {
			dispatcher.Info("S1SetupRequest from eNB %#x in %s", id, request.GlobalENBID.PLMNIdentity)
		}
		return dispatcher.Send(s1SetupResponse(request))
	})
	dispatcher.Handle(s1ap.InitiatingMessage, s1ap.PROCEDURE_UE_CONTEXT_RELEASE_REQUEST, func(ctx context.Context, pdu *s1ap.PDU) error {
		request := pdu.Value.(*s1ap.UEContextReleaseRequest)
		dispatcher.Info("Releasing UE %d/%d: %s", request.MMEUES1APID, request.ENBUES1APID, request.Cause)
		return dispatcher.Send(ueContextReleaseCommand(request))
	})
}
