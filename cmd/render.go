package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BioBenchWorks/nanoqc-cli/internal/assay"
	"github.com/BioBenchWorks/nanoqc-cli/internal/table"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderVerdict(v assay.Verdict) string {
	if v == assay.VerdictWarning {
		return warnStyle.Render(v.String())
	}
	return okStyle.Render(v.String())
}

// renderResult prints the numeric results and the dilution instructions
// for one sample.
func renderResult(res *assay.Result) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Results") + "\n")
	if res.SampleID != "" {
		fmt.Fprintf(&b, "  Sample:              %s (%s)\n", res.SampleID, res.Type)
	} else {
		fmt.Fprintf(&b, "  Sample type:         %s\n", res.Type)
	}
	fmt.Fprintf(&b, "  Concentration:       %s ng/µl\n", orDash(res.Concentration))
	fmt.Fprintf(&b, "  260/280:             %s\n", orDash(res.Ratio260280))
	ratio230 := orDash(res.Ratio260230)
	if res.Estimated230 {
		ratio230 += " (estimated)"
	}
	fmt.Fprintf(&b, "  260/230:             %s\n", ratio230)
	fmt.Fprintf(&b, "  Purity:              %s\n", renderVerdict(res.Verdict))
	fmt.Fprintf(&b, "  Purity notes:        %s\n", res.RationaleText())

	b.WriteString(headingStyle.Render("Dilution") + "\n")
	switch {
	case !res.VolumeSample.Valid():
		b.WriteString("  cannot compute volumes: invalid concentration\n")
	case res.VolumeSample.Float > res.Protocol.FinalVol:
		fmt.Fprintf(&b, "  %s\n", warnStyle.Render("sample too dilute to reach target within the final volume"))
		fmt.Fprintf(&b, "  required sample volume: %s µl (final volume %g µl)\n",
			orDash(res.VolumeSample), res.Protocol.FinalVol)
	default:
		fmt.Fprintf(&b, "  take %s µl sample + %s µl diluent to reach %g ng/µl in %g µl\n",
			orDash(res.VolumeSample), orDash(res.VolumeDiluent),
			res.Protocol.TargetConc, res.Protocol.FinalVol)
	}

	if len(res.Notes) > 0 {
		b.WriteString(headingStyle.Render("Notes") + "\n")
		for _, n := range res.Notes {
			b.WriteString(noteStyle.Render("  - "+n) + "\n")
		}
	}
	return b.String()
}

// renderSummary prints batch-level statistics.
func renderSummary(s assay.Summary) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Batch summary") + "\n")
	fmt.Fprintf(&b, "  Samples:             %d\n", s.Samples)
	if s.Warnings > 0 {
		fmt.Fprintf(&b, "  Purity warnings:     %s\n", warnStyle.Render(fmt.Sprintf("%d", s.Warnings)))
	} else {
		fmt.Fprintf(&b, "  Purity warnings:     %s\n", okStyle.Render("0"))
	}
	writeStats := func(name string, cs assay.ColumnStats) {
		if cs.N == 0 {
			fmt.Fprintf(&b, "  %-20s no numeric values\n", name+":")
			return
		}
		fmt.Fprintf(&b, "  %-20s n=%d mean=%.2f min=%.2f max=%.2f sd=%.2f\n",
			name+":", cs.N, cs.Mean, cs.Min, cs.Max, cs.StdDev)
	}
	writeStats("Conc (ng/µl)", s.Concentration)
	writeStats("260/280", s.Ratio260280)
	writeStats("260/230", s.Ratio260230)
	return b.String()
}

func orDash(v assay.Value) string {
	if !v.Valid() {
		return "n/a"
	}
	return table.FormatValue(v)
}
