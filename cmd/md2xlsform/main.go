// Package main provides the CLI entry point for md2xlsform.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuaberetta/md2xlsform/internal/logging"
	"github.com/joshuaberetta/md2xlsform/pkg/xlsform"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command. Logs and errors go to stderr.
func newRootCmd(stderr io.Writer) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "md2xlsform -i input.{md,json,xlsx} -o output.{xlsx,md}",
		Short: "Convert survey forms between Markdown, JSON and XLSForm",
		Long: `md2xlsform converts survey forms written as Markdown pipe tables, or
exported as JSON, into XLSForm workbooks, and workbooks back into Markdown.
Formats are picked from the file extensions; an output path without a known
extension is written as .xlsx.

Defaults for the section markers and logging can be set in md2xlsform.yaml
(current directory or ~/.config/md2xlsform/) or MD2XLSFORM_* variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, stderr)
		},
	}
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringP("input", "i", "", "Input file: .md, .json or .xlsx")
	flags.StringP("output", "o", "", "Output file: .xlsx or .md")
	flags.String("input-marker", xlsform.DefaultMarker, "Section marker when reading Markdown")
	flags.String("output-marker", xlsform.DefaultMarker, "Section marker when writing Markdown")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	_ = v.BindPFlag("input_marker", flags.Lookup("input-marker"))
	_ = v.BindPFlag("output_marker", flags.Lookup("output-marker"))

	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper, stderr io.Writer) error {
	if err := initConfig(v); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}

	logger, err := newLogger(v, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}

	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	opts := xlsform.Options{
		InputMarker:  v.GetString("input_marker"),
		OutputMarker: v.GetString("output_marker"),
	}

	if err := convert(logger, inputPath, outputPath, opts); err != nil {
		logger.Error("conversion failed", "input", inputPath, "error", err)
		return err
	}
	return nil
}

func convert(logger *slog.Logger, inputPath, outputPath string, opts xlsform.Options) error {
	inFormat, err := xlsform.InputFormat(inputPath)
	if err != nil {
		return err
	}
	target, outFormat, err := xlsform.OutputTarget(outputPath)
	if err != nil {
		return err
	}
	logger.Debug("formats detected", "input", inFormat.String(), "output", outFormat.String())

	project, err := xlsform.Read(inputPath, opts)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	for _, sheet := range project.Sheets() {
		logger.Debug("sheet loaded", "sheet", sheet.Name,
			"columns", len(sheet.Columns), "records", len(sheet.Records))
	}

	written, err := xlsform.Write(project, target, opts)
	if err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	logger.Info("wrote form", "output", written, "sheets", project.Len())
	return nil
}

// initConfig loads optional defaults from md2xlsform.yaml and the
// MD2XLSFORM_* environment. A missing config file is not an error.
func initConfig(v *viper.Viper) error {
	v.SetConfigName("md2xlsform")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "md2xlsform"))
	}

	v.SetEnvPrefix("MD2XLSFORM")
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", string(logging.FormatText))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

func newLogger(v *viper.Viper, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(v.GetString("log_format"))
	if err != nil {
		return nil, err
	}
	return logging.New(w, level, format), nil
}
