package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/geoknoesis/ssap-go/ssap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputFormat != "table" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Limits != ssap.DefaultLimits() || cfg.MaxItems != ssap.DefaultMaxItems {
		t.Fatalf("expected protocol limits, got %+v", cfg.Limits)
	}
}

func TestLoadOverridesKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
output_format: json
all_properties: true
max_items: 10
limits:
  node_id: 8
jsonld_context:
  ex: http://example.org/
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputFormat != "json" || !cfg.AllProperties || cfg.MaxItems != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Limits.NodeID != 8 {
		t.Fatalf("expected node_id limit 8, got %d", cfg.Limits.NodeID)
	}
	if cfg.Limits.Subject != ssap.MaxSubjectLen {
		t.Fatalf("expected untouched limits to keep defaults, got %d", cfg.Limits.Subject)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.JSONLDContext["ex"] != "http://example.org/" {
		t.Fatalf("unexpected jsonld context %v", cfg.JSONLDContext)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"format": "output_format: xml\n",
		"level":  "log_level: loud\n",
		"syntax": "limits: [1, 2\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidateAcceptsEveryFormat(t *testing.T) {
	for _, format := range append(Formats, "JSON") {
		cfg := Default()
		cfg.OutputFormat = format
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: unexpected error: %v", format, err)
		}
	}
}

func TestDecoderOptionsApplyLimits(t *testing.T) {
	cfg := Default()
	cfg.Limits.NodeID = 2
	cfg.RejectOverlong = false

	doc := `<SSAP_message><message_type>CONFIRM</message_type><transaction_type>QUERY</transaction_type>` +
		`<transaction_id>1</transaction_id><node_id>kp-1</node_id><space_id>X</space_id></SSAP_message>`
	msg, err := ssap.NewDecoder(cfg.DecoderOptions(zap.NewNop())...).Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.NodeID != "kp" {
		t.Fatalf("expected configured node id limit, got %q", msg.NodeID)
	}

	cfg.RejectOverlong = true
	if _, err := ssap.NewDecoder(cfg.DecoderOptions(zap.NewNop())...).Decode(strings.NewReader(doc)); ssap.Code(err) != ssap.ErrCodeFieldTooLong {
		t.Fatalf("expected field too long, got %v", err)
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	logger, err := cfg.Logger()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected debug level to be enabled")
	}
}
