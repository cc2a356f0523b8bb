package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tn-payroll/payroll-engine/internal/calculation"
	"github.com/tn-payroll/payroll-engine/internal/config"
	"github.com/tn-payroll/payroll-engine/internal/output"
	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
)

var (
	inputPath  string
	formatName string
	outPath    string
	endDate    string
	verbose    bool
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func main() {
	root := &cobra.Command{
		Use:   "payrollctl",
		Short: "Tamil Nadu government employee payroll simulator",
		Long: "payrollctl computes the month-by-month salary history of a state " +
			"government employee across pay commissions, from a YAML or JSON case file.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the payroll history for a case file",
		RunE:  runRun,
	}
	runCmd.Flags().StringVarP(&inputPath, "input", "i", "", "case file (YAML or JSON)")
	runCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: console, csv, json")
	runCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report to a file instead of stdout")
	runCmd.Flags().StringVar(&endDate, "end-date", "", "override the calculation end date (YYYY-MM-DD)")
	_ = runCmd.MarkFlagRequired("input")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a case file without running the simulation",
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "case file (YAML or JSON)")
	_ = validateCmd.MarkFlagRequired("input")

	root.AddCommand(runCmd, validateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	log := newLogger()

	parser := config.NewParser()
	in, err := parser.LoadFromFile(inputPath)
	if err != nil {
		return err
	}
	log.Infof("loaded case %s for %s", in.CaseID, in.Name)

	if endDate != "" {
		end, err := dateutil.ParseUTC(endDate)
		if err != nil {
			return err
		}
		in.CalculationEnd = end
	}

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v, aliases: %v)",
			formatName, output.AvailableFormatterNames(), output.AvailableFormatAliases())
	}

	engine := calculation.NewEngine(calculation.NewLogrusLogger(log))
	result, err := engine.ComputePayrollHistory(in)
	if err != nil {
		return err
	}

	data, err := formatter.Format(result)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return err
		}
		log.Infof("report written to %s", outPath)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runValidate(cmd *cobra.Command, args []string) error {
	parser := config.NewParser()
	in, err := parser.LoadFromFile(inputPath)
	if err != nil {
		return err
	}
	if err := calculation.ValidateInput(in); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "case %s (%s) is valid\n", in.CaseID, in.Name)
	return nil
}
