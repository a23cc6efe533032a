package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/BioBenchWorks/nanoqc-cli/internal/assay"
	"github.com/BioBenchWorks/nanoqc-cli/internal/table"
	"github.com/BioBenchWorks/nanoqc-cli/internal/utils"
)

var (
	btOutput      string
	btProtocol    string
	btDelimiter   string
	btSheetName   string
	btStrict      bool
	btNoEstimate  bool
	btShowMapping bool
)

// progressThreshold is the row count below which no progress bar is
// shown; small batches finish faster than the bar can draw.
const progressThreshold = 200

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Process a table of samples from a CSV/TSV/XLSX file",
	Long: `Process every row of a sample table. Column headers are reconciled
against the known name variants (case-insensitive exact match, then
substring); each row is analyzed independently and the input table is
re-exported with the derived columns appended. A bad row degrades only
itself.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		proto, err := cfg.Protocol(btProtocol)
		if err != nil {
			return err
		}
		delim, err := parseDelimiter(btDelimiter)
		if err != nil {
			return err
		}

		t, err := table.Read(path, table.ReadOptions{Delimiter: delim, SheetName: btSheetName})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Loaded %s (%d rows)\n", filepath.Base(path), len(t.Rows))

		runID := uuid.NewString()
		slog.Debug("batch run starting", "run_id", runID, "rows", len(t.Rows), "protocol", proto.Name)

		opt := table.ProcessOptions{
			Assay: assay.Options{
				DefaultFactor: cfg.DefaultFactor,
				Estimate230:   cfg.Estimate260230 && !btNoEstimate,
			},
			Strict: btStrict,
		}
		var bar *progressbar.ProgressBar
		if len(t.Rows) >= progressThreshold {
			bar = progressbar.Default(int64(len(t.Rows)), "processing")
			opt.OnRow = func(int) { _ = bar.Add(1) }
		}

		br, err := table.Process(t, proto, opt)
		if err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Finish()
		}

		if btShowMapping {
			b, err := utils.PrettyJSON(br.Mapping.Describe(t.Headers))
			if err != nil {
				return err
			}
			fmt.Printf("Column mapping:\n%s\n", b)
		}
		for _, w := range br.Warnings {
			fmt.Printf("⚠ %s\n", w)
		}

		fmt.Print(renderSummary(assay.Summarize(br.Results)))

		out := btOutput
		if out == "" {
			out = defaultOutputPath(path)
		}
		if err := table.Write(br.Table, out, runID); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		fmt.Printf("✓ Wrote results to %s\n", out)
		return nil
	},
}

// defaultOutputPath derives <name>_results.<ext> next to the input,
// keeping the input format.
func defaultOutputPath(in string) string {
	ext := filepath.Ext(in)
	if !strings.EqualFold(ext, ".xlsx") {
		ext = ".csv"
	}
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(filepath.Dir(in), base+"_results"+ext)
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&btOutput, "output", "o", "", "output path (.csv/.tsv/.xlsx; default <input>_results)")
	batchCmd.Flags().StringVar(&btProtocol, "protocol", "PCR", "protocol applied to every sample")
	batchCmd.Flags().StringVar(&btDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	batchCmd.Flags().StringVar(&btSheetName, "sheet-name", "", "XLSX: sheet name to read (default first sheet)")
	batchCmd.Flags().BoolVar(&btStrict, "strict-columns", false, "fail when required columns (a260, sample type) cannot be resolved")
	batchCmd.Flags().BoolVar(&btNoEstimate, "no-estimate-230", false, "disable the estimated 260/230 fallback")
	batchCmd.Flags().BoolVar(&btShowMapping, "show-mapping", false, "print the detected column mapping")
}
