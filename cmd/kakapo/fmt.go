package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kakapo/internal/diag"
	"kakapo/internal/driver"
	"kakapo/internal/format"
	"kakapo/internal/project"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format MATLAB source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("no-cache", false, "reformat files even when cached as already formatted")
	fmtCmd.Flags().Int("max-line-length", 0, "wrap statements longer than this (0 = kakapo.toml or 120)")
	fmtCmd.Flags().Int("indent-width", 0, "spaces per indentation level (0 = kakapo.toml or 4)")
	fmtCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	formatOpts, err := resolveFormatOptions(cmd, args)
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Check:   check,
		Stdout:  writeToStdout,
		Options: formatOpts,
	}
	if !noCache && !check && !writeToStdout {
		if cache, cacheErr := driver.OpenFormatCache("kakapo"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	var formatResults []driver.FormatResult
	if mode.wantsTUI() && outputFormat == "text" && !writeToStdout {
		formatResults, err = runFmtWithUI(cmd, args, opts)
	} else {
		formatResults, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(formatResults, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		renderFmtText(cmd, formatResults, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(formatResults, check); err != nil {
			return err
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// resolveFormatOptions layers flag overrides on top of the kakapo.toml
// [format] section found above the first target path.
func resolveFormatOptions(cmd *cobra.Command, args []string) (format.Options, error) {
	var opts format.Options

	startDir := args[0]
	if info, err := os.Stat(startDir); err == nil && !info.IsDir() {
		startDir = filepath.Dir(startDir)
	}
	manifest, ok, err := project.LoadManifestFor(startDir)
	if err != nil {
		return opts, err
	}
	if ok {
		opts.MaxLineLength = manifest.Format.MaxLineLength
		opts.IndentWidth = manifest.Format.IndentWidth
	}

	if v, err := cmd.Flags().GetInt("max-line-length"); err == nil && v > 0 {
		opts.MaxLineLength = v
	}
	if v, err := cmd.Flags().GetInt("indent-width"); err == nil && v > 0 {
		opts.IndentWidth = v
	}
	return opts, nil
}

// squawkLine renders a per-file failure. Parse errors get the caret frame
// pointing at the offending column; anything else prints as-is.
func squawkLine(res driver.FormatResult) string {
	var perr *diag.ParseError
	if errors.As(res.Err, &perr) {
		return fmt.Sprintf("SQUAWK! %s", perr.Render())
	}
	return fmt.Sprintf("SQUAWK! %s: %v", res.Path, res.Err)
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintln(os.Stderr, squawkLine(res))
			continue
		}

		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(cmd *cobra.Command, results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintln(os.Stderr, squawkLine(res))
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed {
			*hasChanges = true
		}
		if !quiet {
			status := "ok"
			if res.Changed {
				status = "reformatted"
			}
			fmt.Fprintf(os.Stdout, "%s %s\n", status, res.Path)
		}
	}

	// The celebratory line appears only when every file came through clean.
	if !*hasErrors && !(check && *hasChanges) && !quiet {
		if useColor(cmd) {
			_, _ = color.New(color.FgGreen, color.Bold).Fprintln(os.Stdout, "Ching!")
		} else {
			fmt.Fprintln(os.Stdout, "Ching!")
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
