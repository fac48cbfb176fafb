package main

import (
	"encoding/hex"
	"fmt"
	"net"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thebagchi/s1ap-go/lib/config"
	"github.com/thebagchi/s1ap-go/lib/s1ap"
)

type builder func(cfg *config.Config) (s1ap.Message, error)

var samples = map[string]builder{
	"handover-required":              handoverRequired,
	"s1-setup-request":               s1SetupRequest,
	"error-indication":               errorIndication,
	"initial-context-setup-response": initialContextSetupResponse,
	"paging":                         paging,
	"ue-context-release-request":     ueContextReleaseRequest,
}

var sampleCmd = &cobra.Command{
	Use:       "sample <name>",
	Short:     "Encode a built-in sample PDU and print it as hex",
	Example:   "s1apdump sample s1-setup-request",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: sampleNames(),
	RunE:      sampleFunc,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func sampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func sampleFunc(cmd *cobra.Command, args []string) error {
	data, err := encodeSample(args[0], cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
	return nil
}

func encodeSample(name string, cfg *config.Config) ([]byte, error) {
	build, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q", name)
	}
	message, err := build(cfg)
	if err != nil {
		return nil, err
	}
	return s1ap.Marshal(s1ap.NewPDU(message))
}

func globalENBID(cfg *config.Config) (s1ap.GlobalENBID, s1ap.TAI, error) {
	plmn, err := cfg.ENB.PLMNIdentity()
	if err != nil {
		return s1ap.GlobalENBID{}, s1ap.TAI{}, err
	}
	tac, err := cfg.ENB.TrackingAreaCode()
	if err != nil {
		return s1ap.GlobalENBID{}, s1ap.TAI{}, err
	}
	id := s1ap.GlobalENBID{PLMNIdentity: plmn, ENBID: s1ap.NewENBID(s1ap.ENBIDPresentMacroENBID, cfg.ENB.ID)}
	return id, s1ap.TAI{PLMNIdentity: plmn, TAC: tac}, nil
}

func s1SetupRequest(cfg *config.Config) (s1ap.Message, error) {
	id, tai, err := globalENBID(cfg)
	if err != nil {
		return nil, err
	}
	drx, err := cfg.ENB.DefaultPagingDRX()
	if err != nil {
		return nil, err
	}
	request := &s1ap.S1SetupRequest{
		GlobalENBID: id,
		SupportedTAs: s1ap.SupportedTAs{
			{TAC: tai.TAC, BroadcastPLMNs: []s1ap.PLMNIdentity{tai.PLMNIdentity}},
		},
		DefaultPagingDRX: drx,
	}
	if len(cfg.ENB.Name) > 0 {
		name := s1ap.ENBName(cfg.ENB.Name)
		request.ENBName = &name
	}
	return request, nil
}

func handoverRequired(cfg *config.Config) (s1ap.Message, error) {
	id, tai, err := globalENBID(cfg)
	if err != nil {
		return nil, err
	}
	message := &s1ap.HandoverRequired{
		MMEUES1APID:  42,
		ENBUES1APID:  1,
		HandoverType: s1ap.HandoverTypeIntraLTE,
		Cause:        s1ap.NewRadioNetworkCause(s1ap.CauseRadioNetworkHandoverDesirableForRadioReason),
		// RRC HandoverPreparationInformation would go here
		SourceToTargetTransparentContainer: s1ap.TransparentContainer{0x00},
	}
	message.TargetID.SetTargetENBID(s1ap.TargetENBID{GlobalENBID: id, SelectedTAI: tai})
	return message, nil
}

func errorIndication(*config.Config) (s1ap.Message, error) {
	cause := s1ap.NewProtocolCause(s1ap.CauseProtocolTransferSyntaxError)
	return &s1ap.ErrorIndication{Cause: &cause}, nil
}

func initialContextSetupResponse(*config.Config) (s1ap.Message, error) {
	return &s1ap.InitialContextSetupResponse{
		MMEUES1APID: 1,
		ENBUES1APID: 1,
		ERABSetupListCtxtSURes: s1ap.ERABSetupListCtxtSURes{{
			ERABID:                5,
			TransportLayerAddress: s1ap.NewTransportLayerAddress(net.IPv4(127, 0, 1, 1)),
			GTPTEID:               s1ap.GTPTEID{0, 0, 0, 1},
		}},
	}, nil
}

func paging(cfg *config.Config) (s1ap.Message, error) {
	_, tai, err := globalENBID(cfg)
	if err != nil {
		return nil, err
	}
	message := &s1ap.Paging{
		UEIdentityIndexValue: 0x123,
		CNDomain:             s1ap.CNDomainPS,
		TAIList:              s1ap.TAIList{{TAI: tai}},
	}
	message.UEPagingID.SetSTMSI(s1ap.STMSI{MMEC: 0x1a, MTMSI: s1ap.MTMSI{0xC0, 0x00, 0x0A, 0x3B}})
	return message, nil
}

func ueContextReleaseRequest(*config.Config) (s1ap.Message, error) {
	return &s1ap.UEContextReleaseRequest{
		MMEUES1APID: 1,
		ENBUES1APID: 1,
		Cause:       s1ap.NewRadioNetworkCause(s1ap.CauseRadioNetworkUserInactivity),
	}, nil
}

// ueContextReleaseCommand grants a UEContextReleaseRequest with the cause the
// eNB gave.
func ueContextReleaseCommand(request *s1ap.UEContextReleaseRequest) *s1ap.UEContextReleaseCommand {
	command := &s1ap.UEContextReleaseCommand{Cause: request.Cause}
	command.UES1APIDs.SetUES1APIDPair(s1ap.UES1APIDPair{
		MMEUES1APID: request.MMEUES1APID,
		ENBUES1APID: request.ENBUES1APID,
	})
	return command
}

// s1SetupResponse answers an S1SetupRequest with a single GUMMEI in the
// PLMN the eNB announced.
func s1SetupResponse(request *s1ap.S1SetupRequest) *s1ap.S1SetupResponse {
	name := s1ap.MMEName("s1apdump")
	return &s1ap.S1SetupResponse{
		MMEName: &name,
		ServedGUMMEIs: s1ap.ServedGUMMEIs{{
			ServedPLMNs:    []s1ap.PLMNIdentity{request.GlobalENBID.PLMNIdentity},
			ServedGroupIDs: []s1ap.MMEGroupID{{0x01, 0x00}},
			ServedMMECs:    []s1ap.MMECode{0x1a},
		}},
		RelativeMMECapacity: s1ap.MAX_RELATIVE_MME_CAPACITY,
	}
}
