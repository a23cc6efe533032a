package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/BioBenchWorks/nanoqc-cli/internal/config"
)

var protoInitPath string

var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "Show the effective protocol configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Printf("Default factor: %g\n", cfg.DefaultFactor)
		fmt.Printf("Estimate 260/230 fallback: %v\n", cfg.Estimate260230)
		fmt.Println("Protocols:")
		for _, name := range cfg.ProtocolNames() {
			p := cfg.Protocols[name]
			fmt.Printf("  %-8s target %g ng/µl in %g µl\n", name, p.TargetConc, p.FinalVol)
		}
		return nil
	},
}

var protocolsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file with the built-in defaults",
	RunE: func(_ *cobra.Command, _ []string) error {
		c := cfgpkg.Default()
		if err := cfgpkg.Save(c, protoInitPath); err != nil {
			return err
		}
		dest := protoInitPath
		if dest == "" {
			dest = "~/.nanoqc/config.yaml"
		}
		fmt.Printf("✓ Wrote default configuration to %s\n", dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(protocolsCmd)
	protocolsCmd.AddCommand(protocolsInitCmd)
	protocolsInitCmd.Flags().StringVarP(&protoInitPath, "output", "o", "", "config path (default ~/.nanoqc/config.yaml)")
}
