package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/oisee/svsema/pkg/demo"
	"github.com/oisee/svsema/pkg/diag"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "svsema",
		Short: "SystemVerilog semantic core — bind and constant-fold canned expressions",
	}

	var reportPath string

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run every canned scenario and report PASS/FAIL against its expected result",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("svsema selftest\n\n")
			failures := 0
			var allDiags []diag.Diagnostic
			for _, s := range demo.Scenarios() {
				got, diags := s.Build()
				allDiags = append(allDiags, diags...)
				status := "PASS"
				if got != s.Want {
					status = "FAIL"
					failures++
				}
				fmt.Printf("[%s] %-24s %s -> %s\n", status, s.Name, s.Source, got)
				if status == "FAIL" {
					fmt.Printf("       want %s\n", s.Want)
				}
			}
			fmt.Printf("\n%d scenario(s), %d failure(s), %d diagnostic(s) recorded\n",
				len(demo.Scenarios()), failures, len(allDiags))

			if reportPath != "" {
				if err := saveCombinedReport(reportPath, allDiags); err != nil {
					return fmt.Errorf("saving report: %w", err)
				}
				fmt.Printf("report written to %s\n", reportPath)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failures, len(demo.Scenarios()))
			}
			return nil
		},
	}
	selftestCmd.Flags().StringVar(&reportPath, "report", "", "save a gob-encoded diagnostic snapshot to this path")

	evalCmd := &cobra.Command{
		Use:   "eval <scenario>",
		Short: "Bind and evaluate one named scenario, printing its result and diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := demo.Find(args[0])
			if !ok {
				return fmt.Errorf("unknown scenario %q (see 'svsema list')", args[0])
			}
			fmt.Printf("%s\n  %s\n\n", s.Name, s.Source)
			got, diags := s.Build()
			fmt.Printf("result: %s\n", got)
			for _, d := range diags {
				fmt.Printf("  %s\n", d.String())
			}
			if reportPath != "" {
				if err := saveCombinedReport(reportPath, diags); err != nil {
					return fmt.Errorf("saving report: %w", err)
				}
				fmt.Printf("report written to %s\n", reportPath)
			}
			return nil
		},
	}
	evalCmd.Flags().StringVar(&reportPath, "report", "", "save a gob-encoded diagnostic snapshot to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available canned scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(demo.Scenarios()))
			for _, s := range demo.Scenarios() {
				names = append(names, s.Name)
			}
			sort.Strings(names)
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}

	showReportCmd := &cobra.Command{
		Use:   "show-report <path>",
		Short: "Print a previously saved diagnostic report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := diag.LoadReport(args[0])
			if err != nil {
				return fmt.Errorf("loading report: %w", err)
			}
			if len(r.Diagnostics) == 0 {
				fmt.Println("(no diagnostics recorded)")
				return nil
			}
			for _, e := range r.Diagnostics {
				fmt.Printf("%s: %s %v\n", e.Location, e.Code, e.Args)
			}
			return nil
		},
	}

	rootCmd.AddCommand(selftestCmd, evalCmd, listCmd, showReportCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "svsema:", err)
		os.Exit(1)
	}
}

// saveCombinedReport writes a one-off Sink populated with diags and
// delegates to diag.SaveReport, since the report format is keyed on a Sink
// rather than a bare diagnostic slice.
func saveCombinedReport(path string, diags []diag.Diagnostic) error {
	sink := diag.NewSink()
	for _, d := range diags {
		sink.Report(d.Code, d.Location, d.Args...)
	}
	return diag.SaveReport(path, sink)
}
