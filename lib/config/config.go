// Package config loads the s1apdump configuration file.
package config

import (
	"encoding/hex"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/thebagchi/s1ap-go/lib/s1ap"
	"github.com/thebagchi/s1ap-go/lib/transport"
)

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Codec CodecConfig `yaml:"codec"`
	SCTP  SCTPConfig  `yaml:"sctp"`
	ENB   ENBConfig   `yaml:"enb"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type CodecConfig struct {
	Aligned *bool `yaml:"aligned"`
}

type SCTPConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
	PPID    uint32 `yaml:"ppid"`
	Streams uint16 `yaml:"streams"`
}

// ENBConfig describes the eNB announced by the sample S1SetupRequest.
type ENBConfig struct {
	ID        uint32     `yaml:"id"`
	Name      string     `yaml:"name"`
	PLMN      PLMNConfig `yaml:"plmn"`
	TAC       string     `yaml:"tac"`
	PagingDRX int        `yaml:"paging_drx"`
}

type PLMNConfig struct {
	MCC string `yaml:"mcc"`
	MNC string `yaml:"mnc"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	aligned := s1ap.ALIGNED
	return &Config{
		Log:   LogConfig{Level: "info"},
		Codec: CodecConfig{Aligned: &aligned},
		SCTP: SCTPConfig{
			Address: "127.0.0.1",
			Port:    transport.S1AP_PORT,
			PPID:    transport.S1AP_PPID,
			Streams: 2,
		},
		ENB: ENBConfig{
			ID:        0x19B,
			Name:      "srsenb01",
			PLMN:      PLMNConfig{MCC: "001", MNC: "01"},
			TAC:       "0007",
			PagingDRX: 128,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.SCTP.Address == "" {
		result = multierror.Append(result, errors.New("sctp.address is required"))
	}
	if c.SCTP.Port <= 0 || c.SCTP.Port > 65535 {
		result = multierror.Append(result, errors.Errorf("sctp.port %d out of range", c.SCTP.Port))
	}
	if c.ENB.ID >= 1<<s1ap.MACRO_ENB_ID_BITS {
		result = multierror.Append(result, errors.Errorf("enb.id %#x exceeds %d bits", c.ENB.ID, s1ap.MACRO_ENB_ID_BITS))
	}
	if len(c.ENB.Name) > s1ap.MAX_NAME_LENGTH {
		result = multierror.Append(result, errors.Errorf("enb.name longer than %d", s1ap.MAX_NAME_LENGTH))
	}
	if _, err := c.ENB.PLMNIdentity(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "enb.plmn"))
	}
	if _, err := c.ENB.TrackingAreaCode(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "enb.tac"))
	}
	if _, err := c.ENB.DefaultPagingDRX(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "enb.paging_drx"))
	}
	return result.ErrorOrNil()
}

// Aligned reports whether ALIGNED PER is configured.
func (c *Config) Aligned() bool {
	if c.Codec.Aligned == nil {
		return s1ap.ALIGNED
	}
	return *c.Codec.Aligned
}

// Transport returns the SCTP options of the configured endpoint.
func (c *Config) Transport() transport.Options {
	return transport.Options{
		Address: c.SCTP.Address,
		Port:    c.SCTP.Port,
		PPID:    c.SCTP.PPID,
		Streams: c.SCTP.Streams,
	}
}

func (e ENBConfig) PLMNIdentity() (s1ap.PLMNIdentity, error) {
	return s1ap.NewPLMNIdentity(e.PLMN.MCC, e.PLMN.MNC)
}

// TrackingAreaCode parses the TAC as four hex digits.
func (e ENBConfig) TrackingAreaCode() (s1ap.TAC, error) {
	var tac s1ap.TAC
	data, err := hex.DecodeString(e.TAC)
	if err != nil {
		return tac, err
	}
	if len(data) != len(tac) {
		return tac, errors.Errorf("%q is not %d octets", e.TAC, len(tac))
	}
	copy(tac[:], data)
	return tac, nil
}

func (e ENBConfig) DefaultPagingDRX() (s1ap.PagingDRX, error) {
	switch e.PagingDRX {
	case 32:
		return s1ap.PagingDRX32, nil
	case 64:
		return s1ap.PagingDRX64, nil
	case 128:
		return s1ap.PagingDRX128, nil
	case 256:
		return s1ap.PagingDRX256, nil
	}
	return 0, errors.Errorf("unsupported cycle %d", e.PagingDRX)
}
