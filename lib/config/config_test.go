package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebagchi/s1ap-go/lib/s1ap"
	"github.com/thebagchi/s1ap-go/lib/transport"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "s1apdump.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Aligned())
	assert.Equal(t, transport.Options{Address: "127.0.0.1", Port: 36412, PPID: 18, Streams: 2}, cfg.Transport())

	plmn, err := cfg.ENB.PLMNIdentity()
	require.NoError(t, err)
	assert.Equal(t, "001-01", plmn.String())
	tac, err := cfg.ENB.TrackingAreaCode()
	require.NoError(t, err)
	assert.Equal(t, s1ap.TAC{0x00, 0x07}, tac)
	drx, err := cfg.ENB.DefaultPagingDRX()
	require.NoError(t, err)
	assert.Equal(t, s1ap.PagingDRX128, drx)
}

func TestLoad(t *testing.T) {
	path := write(t, `
log:
  level: debug
codec:
  aligned: false
sctp:
  address: 10.0.0.1
  port: 36413
enb:
  plmn:
    mcc: "310"
    mnc: "410"
  tac: "0101"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Aligned())
	assert.Equal(t, "10.0.0.1", cfg.SCTP.Address)
	assert.Equal(t, 36413, cfg.SCTP.Port)
	assert.Equal(t, transport.S1AP_PPID, cfg.SCTP.PPID)
	assert.Equal(t, "srsenb01", cfg.ENB.Name)
	plmn, err := cfg.ENB.PLMNIdentity()
	require.NoError(t, err)
	assert.Equal(t, "310-410", plmn.String())
}

func TestValidate(t *testing.T) {
	path := write(t, `
sctp:
  address: ""
  port: 70000
enb:
  id: 2000000
  plmn:
    mcc: "1"
  tac: "zz"
  paging_drx: 100
`)
	_, err := Load(path)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 6)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(write(t, "sctp: [unclosed"))
	assert.Error(t, err)
}
