package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/bjaus/cellfmt"
)

type renderFlags struct {
	format string
	theme  string
	color  string
	border string
	vars   map[string]string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var debug, jsonLogs bool

	root := &cobra.Command{
		Use:           "cellfmt",
		Short:         "Render table cells with styles, thresholds and links",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(debug, jsonLogs, stderr)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "emit logs as JSON")
	root.AddCommand(newRenderCmd(stdin, stdout))
	return root
}

// setupLogging installs the default slog logger on w.
func setupLogging(debug, jsonLogs bool, w io.Writer) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonLogs {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newRenderCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	f := renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML table document",
		Long: `Render reads a table document (columns, styles, rows) from a file or
stdin ("-") and writes every rendered cell in the chosen format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := stdin
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			return runRender(in, stdout, f)
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", string(cellfmt.Table), "output format: "+joinFormats())
	cmd.Flags().StringVar(&f.theme, "theme", "auto", "color theme: auto, dark or light")
	cmd.Flags().StringVar(&f.color, "color", "auto", "terminal colors: auto, always or never")
	cmd.Flags().StringVar(&f.border, "border", "rounded", "table border: rounded, ascii or none")
	cmd.Flags().StringToStringVar(&f.vars, "var", nil, "scoped variable for link templates (key=value)")
	return cmd
}

func runRender(in io.Reader, out io.Writer, f renderFlags) error {
	format, err := cellfmt.ParseFormat(f.format)
	if err != nil {
		return err
	}
	border, err := parseBorder(f.border)
	if err != nil {
		return err
	}
	doc, err := cellfmt.Load(in)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	vars := make(cellfmt.Scope, len(doc.Vars)+len(f.vars))
	for k, v := range doc.Vars {
		vars[k] = v
	}
	for k, v := range f.vars {
		vars[k] = v
	}

	profile, err := colorProfile(f.color, out)
	if err != nil {
		return err
	}
	variant, err := themeVariant(f.theme)
	if err != nil {
		return err
	}
	slog.Debug("rendering document",
		"columns", len(doc.Columns),
		"rows", len(doc.Rows),
		"format", format,
		"theme", variant,
	)

	r := cellfmt.Renderer{
		Theme: cellfmt.Theme{Variant: variant},
		Vars:  vars,
	}
	return cellfmt.Write(out, format, doc.Grid, r,
		cellfmt.WithBorder(border),
		cellfmt.WithProfile(profile),
	)
}

func joinFormats() string {
	names := make([]string, 0, len(cellfmt.Formats()))
	for _, f := range cellfmt.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func parseBorder(s string) (cellfmt.BorderStyle, error) {
	switch s {
	case "rounded":
		return cellfmt.BorderRounded, nil
	case "ascii":
		return cellfmt.BorderASCII, nil
	case "none":
		return cellfmt.BorderNone, nil
	default:
		return 0, fmt.Errorf("unknown border %q", s)
	}
}

// colorProfile follows the NO_COLOR convention before honoring the flag.
// Detection looks at out, not the process stdout.
func colorProfile(mode string, out io.Writer) (termenv.Profile, error) {
	switch mode {
	case "never":
		return termenv.Ascii, nil
	case "always":
		if os.Getenv("NO_COLOR") != "" {
			return termenv.Ascii, nil
		}
		if p := termenv.NewOutput(out, termenv.WithTTY(true)).Profile; p != termenv.Ascii {
			return p, nil
		}
		return termenv.ANSI256, nil
	case "auto":
		return termenv.NewOutput(out).Profile, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color mode %q", mode)
	}
}

func themeVariant(s string) (cellfmt.ThemeVariant, error) {
	switch s {
	case "dark":
		return cellfmt.ThemeDark, nil
	case "light":
		return cellfmt.ThemeLight, nil
	case "auto":
		if termenv.HasDarkBackground() {
			return cellfmt.ThemeDark, nil
		}
		return cellfmt.ThemeLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}
