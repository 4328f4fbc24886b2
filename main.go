package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/mcncl/jsonlite/internal/analyzer"
	"github.com/mcncl/jsonlite/internal/config"
	"github.com/mcncl/jsonlite/internal/errors"
	"github.com/mcncl/jsonlite/internal/formatter"
	"github.com/mcncl/jsonlite/internal/models"
	"github.com/mcncl/jsonlite/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config      string `help:"Path to config file. Overrides the discovered .jsonlite.yml." short:"c" type:"path"`
	Indent      int    `help:"Spaces per nesting level in the outline." default:"2"`
	KeyStyle    string `help:"Rewrite object keys for display." enum:"none,camel,pascal,snake,screaming" default:"none"`
	Color       bool   `help:"Color keys and kind names in the outline."`
	MaxDepth    int    `help:"Elide subtrees nested deeper than this many levels. 0 means no limit."`
	Stats       bool   `help:"Print structural statistics to stderr." short:"s"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Logger *logrus.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	kongParser := kong.Must(&CLI,
		kong.Name("jsonlite"),
		kong.Description("A standalone JSON decoder and document inspector"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := kongParser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonlite version %s\n", Version)
		return
	}

	cfg, err := config.LoadConfigWithCLI(CLI.Config, config.CLIOverrides{
		Indent:   CLI.Indent,
		KeyStyle: CLI.KeyStyle,
		Color:    CLI.Color,
		MaxDepth: CLI.MaxDepth,
		Stats:    CLI.Stats,
		Debug:    CLI.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	ctx := &Context{
		Config: cfg,
		Logger: newLogger(cfg),
	}

	if err := run(ctx); err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Parse errors carry a caret-annotated snippet worth showing in full
		var parseErr *parser.ParseError
		if stderrors.As(err, &parseErr) {
			fmt.Fprintf(os.Stderr, "\n%s\n", parseErr.Error())
		}

		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonlite --help\n")

		os.Exit(1)
	}
}

// newLogger builds the process logger; -d raises it to debug level
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if cfg.Dev.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Read and decode the JSON input
	ir, err := parseInput(ctx)
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}
	ctx.Logger.WithField("root", models.Kind(ir.Root)).Debug("document decoded")

	// 2. Render the value tree as an outline
	f := formatter.NewFormatter()
	f.Indent = ctx.Config.Indent
	f.KeyStyle = ctx.Config.KeyStyle
	f.Color = ctx.Config.Color
	f.MaxDepth = ctx.Config.MaxDepth
	outline, err := f.Render(ir)
	if err != nil {
		return errors.NewRenderError("failed to render value tree", err)
	}

	// 3. Compute statistics if requested
	if ctx.Config.Stats {
		result, err := analyzer.NewAnalyzer().Analyze(ir)
		if err != nil {
			return errors.NewAnalysisError("failed to analyze document", err)
		}
		fmt.Fprint(os.Stderr, result.Summary())
	}

	// 4. Output the result
	return writeOutput(outline)
}

// parseInput reads JSON from file or stdin
func parseInput(ctx *Context) (models.IntermediateRepresentation, error) {
	if CLI.Input != "" {
		ctx.Logger.WithField("file", CLI.Input).Debug("reading input file")
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput(ctx)
		}
		// No data provided on stdin and not in interactive mode
		return models.IntermediateRepresentation{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	ctx.Logger.Debug("reading piped stdin")
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes the outline to file or stdout
func writeOutput(outline string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(outline), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Outline written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(strings.TrimRight(outline, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(ctx *Context) (models.IntermediateRepresentation, error) {
	fmt.Fprintln(os.Stderr, "jsonlite Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// End of input
			break
		}
		if err != nil {
			return models.IntermediateRepresentation{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	ctx.Logger.Debug("processing pasted document")
	return parser.ParseString(jsonData)
}
