package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoknoesis/ssap-go/internal/output"
	"github.com/geoknoesis/ssap-go/ssap"
)

var selectCmd = &cobra.Command{
	Use:   "select [file]",
	Short: "Decode a bare SPARQL XML results document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		result, width, err := ssap.NewDecoder(cfg.DecoderOptions(logger)...).DecodeSelectDocument(r)
		if err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		logger.Debug("decoded select result", zap.String("input", name), zap.Int("variables", width))
		if err := reportWarnings(name, result.Warnings); err != nil {
			return err
		}

		out, err := output.Render(formatter, result)
		if err != nil {
			return fmt.Errorf("format %s: %w", name, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	selectCmd.Flags().BoolVar(&strict, "strict", false, "fail when any recoverable decode warning is reported")
	selectCmd.Flags().IntVar(&maxItems, "max-items", 0, "maximum rows (negative disables the limit)")
	rootCmd.AddCommand(selectCmd)
}
