package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BioBenchWorks/nanoqc-cli/internal/assay"
)

var (
	sgID          string
	sgType        string
	sgA260        string
	sgA280        string
	sgA230        string
	sgRatio260230 string
	sgFactor      string
	sgProtocol    string
	sgTargetConc  float64
	sgFinalVol    float64
	sgNoEstimate  bool
)

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Analyze one manually entered sample",
	Long: `Analyze a single spectrophotometer reading. Readings are passed as raw
tokens; blank or non-numeric values degrade the affected outputs with a
note instead of failing the run.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		proto, err := cfg.Protocol(sgProtocol)
		if err != nil {
			return err
		}
		// Explicit dilution overrides replace the protocol values; they
		// go through the same validation as configured settings.
		if cmd.Flags().Changed("target-conc") {
			proto.TargetConc = sgTargetConc
		}
		if cmd.Flags().Changed("final-vol") {
			proto.FinalVol = sgFinalVol
		}

		reading := assay.Reading{
			SampleID:    sgID,
			Type:        assay.ParseSampleType(sgType),
			A260:        assay.Coerce(sgA260),
			A280:        assay.Coerce(sgA280),
			A230:        assay.Coerce(sgA230),
			Ratio260230: assay.Coerce(sgRatio260230),
			Factor:      assay.Coerce(sgFactor),
		}

		opt := assay.Options{
			DefaultFactor: cfg.DefaultFactor,
			Estimate230:   cfg.Estimate260230 && !sgNoEstimate,
		}
		res, err := assay.Evaluate(reading, proto, opt)
		if err != nil {
			return err
		}

		fmt.Print(renderResult(&res))
		fmt.Printf("Protocol: %s (target %g ng/µl in %g µl)\n",
			proto.Name, proto.TargetConc, proto.FinalVol)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(singleCmd)
	singleCmd.Flags().StringVar(&sgID, "id", "", "sample identifier")
	singleCmd.Flags().StringVar(&sgType, "type", "DNA", "sample type: DNA|RNA|Protein|other")
	singleCmd.Flags().StringVar(&sgA260, "a260", "", "absorbance at 260nm, e.g. 0.12")
	singleCmd.Flags().StringVar(&sgA280, "a280", "", "absorbance at 280nm")
	singleCmd.Flags().StringVar(&sgA230, "a230", "", "absorbance at 230nm (optional)")
	singleCmd.Flags().StringVar(&sgRatio260230, "ratio-260-230", "", "device-reported 260/230 ratio (overrides --a230)")
	singleCmd.Flags().StringVar(&sgFactor, "factor", "", "A260 conversion factor (default from config)")
	singleCmd.Flags().StringVar(&sgProtocol, "protocol", "PCR", "protocol for dilution targets")
	singleCmd.Flags().Float64Var(&sgTargetConc, "target-conc", 0, "target concentration ng/µl (overrides protocol)")
	singleCmd.Flags().Float64Var(&sgFinalVol, "final-vol", 0, "final volume µl (overrides protocol)")
	singleCmd.Flags().BoolVar(&sgNoEstimate, "no-estimate-230", false, "disable the estimated 260/230 fallback")
}
