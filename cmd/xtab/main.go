// Package main provides the CLI entry point for xtab.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/perNyfelt/birt/pkg/xtab"
	"github.com/perNyfelt/birt/pkg/xtab/design"
	"github.com/perNyfelt/birt/pkg/xtab/logger"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/perNyfelt/birt/pkg/xtab/output"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	locale       string
	logLevel     string
	outputPath   string
	pretty       bool
	crosstabName string
	writeBack    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xtab",
		Short: "Derive crosstab bindings and lay out crosstab headers",
		Long: `xtab reads crosstab designs (YAML or JSON), derives their query bindings,
and lays out, merges or splits their header cells.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Options file (YAML)")
	flags.StringVar(&locale, "locale", "", "Message locale: en, de")
	flags.StringVar(&logLevel, "log-level", "", "Log level: err, warn, info, debug, off")
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&crosstabName, "crosstab", "", "Crosstab name (default: first in design)")

	mergeCmd := &cobra.Command{
		Use:   "merge [design]",
		Short: "Merge the header into a single cell",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit(func(s *xtab.Service, ct *models.Crosstab) error { return s.Merge(ct) }),
	}
	splitCmd := &cobra.Command{
		Use:   "split [design]",
		Short: "Split a merged header into one cell per grid position",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit(func(s *xtab.Service, ct *models.Crosstab) error { return s.Split(ct) }),
	}
	labelsCmd := &cobra.Command{
		Use:   "labels [design]",
		Short: "Place level labels into the header cells",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit(func(s *xtab.Service, ct *models.Crosstab) error { return s.PlaceLabels(ct) }),
	}
	for _, cmd := range []*cobra.Command{mergeCmd, splitCmd, labelsCmd} {
		cmd.Flags().BoolVar(&writeBack, "write", false, "Write the edited design back to its file")
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "bindings [design]",
			Short: "Derive the query bindings of a crosstab",
			Args:  cobra.ExactArgs(1),
			RunE:  runBindings,
		},
		&cobra.Command{
			Use:   "header [design]",
			Short: "Describe the header grid of a crosstab",
			Args:  cobra.ExactArgs(1),
			RunE:  runHeader,
		},
		labelsCmd,
		mergeCmd,
		splitCmd,
		&cobra.Command{
			Use:   "export [design]",
			Short: "Write an xlsx preview of every crosstab header",
			Args:  cobra.ExactArgs(1),
			RunE:  runExport,
		},
		&cobra.Command{
			Use:   "inspect [input.xlsx]",
			Short: "Read back the header grids of an xlsx preview",
			Args:  cobra.ExactArgs(1),
			RunE:  runInspect,
		},
	)
	return rootCmd
}

func newService(cmd *cobra.Command) (*xtab.Service, error) {
	opts := xtab.DefaultOptions()
	if configPath != "" {
		loaded, err := xtab.LoadOptions(configPath)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}
	if cmd.Flags().Changed("locale") {
		opts.Locale = locale
	}
	if cmd.Flags().Changed("log-level") {
		opts.LogLevel = logLevel
	}
	if cmd.Flags().Changed("pretty") {
		opts.Pretty = pretty
	}
	log := logger.Configure(opts.LogLevel, opts.LogFormat)
	return xtab.New(opts, log), nil
}

func runBindings(cmd *cobra.Command, args []string) error {
	s, err := newService(cmd)
	if err != nil {
		return err
	}
	_, ct, err := s.Open(args[0], crosstabName)
	if err != nil {
		return err
	}
	bindings, err := s.Bindings(context.Background(), ct)
	if err != nil {
		return fmt.Errorf("binding derivation failed: %w", err)
	}
	data, err := output.BindingsToJSON(bindings, s.Options().Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(data)
}

func runHeader(cmd *cobra.Command, args []string) error {
	s, err := newService(cmd)
	if err != nil {
		return err
	}
	_, ct, err := s.Open(args[0], crosstabName)
	if err != nil {
		return err
	}
	data, err := output.ToJSON(s.Header(ct), s.Options().Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(data)
}

func runEdit(edit func(*xtab.Service, *models.Crosstab) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newService(cmd)
		if err != nil {
			return err
		}
		d, ct, err := s.Open(args[0], crosstabName)
		if err != nil {
			return err
		}
		if err := edit(s, ct); err != nil {
			return err
		}
		if writeBack {
			if err := design.Save(args[0], d); err != nil {
				return fmt.Errorf("failed to write design: %w", err)
			}
		}
		data, err := output.ToJSON(s.Header(ct), s.Options().Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return write(data)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	if outputPath == "" {
		return fmt.Errorf("export requires --output")
	}
	s, err := newService(cmd)
	if err != nil {
		return err
	}
	d, _, err := s.Open(args[0], crosstabName)
	if err != nil {
		return err
	}
	cts := d.Crosstabs
	if crosstabName != "" {
		cts = []*models.Crosstab{d.Crosstab(crosstabName)}
	}
	return s.Export(outputPath, cts...)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := newService(cmd)
	if err != nil {
		return err
	}
	wb, err := s.Inspect(args[0])
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}
	data, err := output.WorkbookToJSON(wb, s.Options().Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(data)
}

func write(data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
