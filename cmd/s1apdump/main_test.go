package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebagchi/s1ap-go/lib/config"
	"github.com/thebagchi/s1ap-go/lib/s1ap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSamples(t *testing.T) {
	for _, name := range sampleNames() {
		t.Run(name, func(t *testing.T) {
			data, err := encodeSample(name, config.Default())
			require.NoError(t, err)
			pdu, err := s1ap.Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, pdu.Value.CriticalityReport().Empty())
		})
	}
	_, err := encodeSample("unknown", config.Default())
	assert.Error(t, err)
}

func TestS1SetupRequestSample(t *testing.T) {
	message, err := s1SetupRequest(config.Default())
	require.NoError(t, err)
	request := message.(*s1ap.S1SetupRequest)
	id, ok := request.GlobalENBID.ENBID.MacroENBID()
	require.True(t, ok)
	assert.Equal(t, uint32(0x19B), id)
	assert.Equal(t, s1ap.PagingDRX128, request.DefaultPagingDRX)
	require.NotNil(t, request.ENBName)
	assert.Equal(t, s1ap.ENBName("srsenb01"), *request.ENBName)

	response := s1SetupResponse(request)
	data, err := s1ap.Marshal(s1ap.NewPDU(response))
	require.NoError(t, err)
	pdu, err := s1ap.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, response, pdu.Value)
}

func TestUEContextReleaseCommand(t *testing.T) {
	message, err := ueContextReleaseRequest(config.Default())
	require.NoError(t, err)
	request := message.(*s1ap.UEContextReleaseRequest)
	command := ueContextReleaseCommand(request)
	pair, ok := command.UES1APIDs.UES1APIDPair()
	require.True(t, ok)
	assert.Equal(t, request.MMEUES1APID, pair.MMEUES1APID)
	assert.Equal(t, request.ENBUES1APID, pair.ENBUES1APID)
	assert.Equal(t, request.Cause, command.Cause)

	pdu := s1ap.NewPDU(command)
	assert.Equal(t, s1ap.PROCEDURE_UE_CONTEXT_RELEASE, pdu.ProcedureCode)
	data, err := s1ap.Marshal(pdu)
	require.NoError(t, err)
	decoded, err := s1ap.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, command, decoded.Value)
}

func TestSampleCommand(t *testing.T) {
	output, err := execute(t, "sample", "error-indication")
	require.NoError(t, err)
	data, err := hex.DecodeString(strings.TrimSpace(output))
	require.NoError(t, err)
	pdu, err := s1ap.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, s1ap.PROCEDURE_ERROR_INDICATION, pdu.ProcedureCode)

	_, err = execute(t, "sample", "unknown")
	assert.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	output, err := execute(t, "decode", "--hex",
		"20110025000003003d400a03807372736d6d6530310069000b000000f11000000100001a00574001ff")
	require.NoError(t, err)
	assert.Contains(t, output, "successfulOutcome")
	assert.Contains(t, output, "S1Setup")
	assert.Contains(t, output, "MMEname")
	assert.Contains(t, output, "srsmme01")

	_, err = execute(t, "decode", "--hex", "000540")
	assert.Error(t, err)
}
