package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoknoesis/ssap-go/internal/output"
	"github.com/geoknoesis/ssap-go/ssap"
)

var (
	expectType     string
	allProperties  bool
	rejectOverlong bool
	strict         bool
	maxItems       int
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode an SSAP_message document",
	Long: `Decode reads an SSAP_message document from a file, or from stdin when
the file is omitted or "-", and prints the decoded message.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if allProperties {
			cfg.AllProperties = true
		}
		if rejectOverlong {
			cfg.RejectOverlong = true
		}
		if strict {
			cfg.Strict = true
		}
		if cmd.Flags().Changed("max-items") {
			cfg.MaxItems = maxItems
		}

		r, name, err := openInput(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		msg, err := ssap.NewDecoder(cfg.DecoderOptions(logger)...).Decode(r)
		if err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		if err := reportWarnings(name, msg.Warnings); err != nil {
			return err
		}
		if expectType != "" {
			if err := msg.Expect(strings.ToUpper(expectType)); err != nil {
				return err
			}
		}

		out, err := output.Render(formatter, msg)
		if err != nil {
			return fmt.Errorf("format %s: %w", name, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// reportWarnings logs recoverable decode conditions and, in strict mode,
// turns the first one into the command's error.
func reportWarnings(name string, warnings []error) error {
	for _, w := range warnings {
		logger.Warn("decode warning",
			zap.String("input", name),
			zap.String("code", string(ssap.Code(w))),
			zap.Error(w))
	}
	if cfg.Strict && len(warnings) > 0 {
		return fmt.Errorf("decode %s: %d warnings, first: %w", name, len(warnings), warnings[0])
	}
	return nil
}

// openInput opens the named file, or stdin for no argument or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}

func init() {
	decodeCmd.Flags().StringVar(&expectType, "expect", "", "fail unless the message answers this transaction type (e.g. QUERY)")
	decodeCmd.Flags().BoolVar(&allProperties, "all-properties", false, "emit one triple per RDF/XML property element")
	decodeCmd.Flags().BoolVar(&rejectOverlong, "reject-overlong", false, "fail on values longer than the protocol limits instead of truncating")
	decodeCmd.Flags().BoolVar(&strict, "strict", false, "fail when any recoverable decode warning is reported")
	decodeCmd.Flags().IntVar(&maxItems, "max-items", 0, "maximum entries per result list (negative disables the limit)")
	rootCmd.AddCommand(decodeCmd)
}
