package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/erraggy/oasfill"
	"github.com/erraggy/oasfill/fill"
	"github.com/erraggy/oasfill/internal/mcpserver"
	"github.com/erraggy/oasfill/repair"
	"github.com/erraggy/oasfill/spec"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasfill v%s\n", oasfill.Version())
	case "help", "-h", "--help":
		printUsage()
	case "operations":
		if err := handleOperations(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "expand":
		if err := handleExpand(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "repair":
		if err := handleRepair(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// Output format constants
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// outputStructured writes data to stdout in the requested format.
func outputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case formatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case formatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, formatJSON, formatYAML)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// operationsFlags contains flags for the operations command
type operationsFlags struct {
	format string
}

func setupOperationsFlags() (*flag.FlagSet, *operationsFlags) {
	fs := flag.NewFlagSet("operations", flag.ContinueOnError)
	flags := &operationsFlags{}

	fs.StringVar(&flags.format, "format", formatJSON, "output format (json or yaml)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasfill operations [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "List the operations of an OpenAPI document with their declared parameters.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasfill operations openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasfill operations --format yaml openapi.json\n")
	}

	return fs, flags
}

// operationOutput is the listing form of an operation.
type operationOutput struct {
	Path       string        `json:"path"                 yaml:"path"`
	Method     string        `json:"method"               yaml:"method"`
	Parameters []paramOutput `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// paramOutput is the listing form of one parameter, with its fill value when
// produced by the expand command.
type paramOutput struct {
	Name     string `json:"name"               yaml:"name"`
	In       string `json:"in,omitempty"       yaml:"in,omitempty"`
	Type     string `json:"type,omitempty"     yaml:"type,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Fill     any    `json:"fill,omitempty"     yaml:"fill,omitempty"`
	Filled   bool   `json:"filled,omitempty"   yaml:"filled,omitempty"`
}

func handleOperations(args []string) error {
	fs, flags := setupOperationsFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("operations command requires exactly one file path")
	}

	doc, err := spec.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	ops, err := doc.Operations()
	if err != nil {
		return err
	}

	output := make([]operationOutput, 0, len(ops))
	for _, op := range ops {
		entry := operationOutput{Path: op.Path, Method: op.Method}
		for _, p := range op.Params {
			paramType, _ := p.Spec["type"].(string)
			entry.Parameters = append(entry.Parameters, paramOutput{
				Name:     p.Name,
				In:       p.In,
				Type:     paramType,
				Required: p.Required,
			})
		}
		output = append(output, entry)
	}

	return outputStructured(output, flags.format)
}

// expandFlags contains flags for the expand command
type expandFlags struct {
	path            string
	method          string
	includeOptional bool
	valuesFile      string
	format          string
	verbose         bool
}

func setupExpandFlags() (*flag.FlagSet, *expandFlags) {
	fs := flag.NewFlagSet("expand", flag.ContinueOnError)
	flags := &expandFlags{}

	fs.StringVar(&flags.path, "path", "", "expand only the operation with this path template (requires -method)")
	fs.StringVar(&flags.method, "method", "", "expand only the operation with this HTTP method (requires -path)")
	fs.BoolVar(&flags.includeOptional, "optional", false, "also fill parameters that are not required")
	fs.StringVar(&flags.valuesFile, "values", "", "YAML file with candidate values per (path, parameter)")
	fs.StringVar(&flags.format, "format", formatJSON, "output format (json or yaml)")
	fs.BoolVar(&flags.verbose, "verbose", false, "log fill decisions to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasfill expand [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Fill operation parameters with synthetic values and expand across candidate values.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nValues File Format:\n")
		_, _ = fmt.Fprintf(output, "  - path: /pets/{petId}\n")
		_, _ = fmt.Fprintf(output, "    parameters:\n")
		_, _ = fmt.Fprintf(output, "      - name: petId\n")
		_, _ = fmt.Fprintf(output, "        values: [1, 2]\n\n")
		_, _ = fmt.Fprintf(output, "  Multiple values multiply the operation into one instance per combination.\n")
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasfill expand openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasfill expand --optional openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasfill expand --path /pets/{petId} --method get openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasfill expand --values values.yaml --format yaml openapi.yaml\n")
	}

	return fs, flags
}

func handleExpand(args []string) error {
	fs, flags := setupExpandFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expand command requires exactly one file path")
	}

	doc, err := spec.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	ops, err := selectOperations(doc, flags.path, flags.method)
	if err != nil {
		return err
	}

	var values *fill.Values
	if flags.valuesFile != "" {
		values, err = fill.LoadValuesFromFile(flags.valuesFile)
		if err != nil {
			return err
		}
	}

	expander := fill.NewExpander(doc)
	if flags.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		expander.Logger = spec.NewSlogAdapter(slog.New(handler))
	}

	var output []operationOutput
	for _, op := range ops {
		expanded, err := expander.Expand(op, flags.includeOptional, values)
		if err != nil {
			return err
		}
		for _, e := range expanded {
			entry := operationOutput{Path: e.Path, Method: e.Method}
			for _, p := range e.Params {
				entry.Parameters = append(entry.Parameters, paramOutput{
					Name:   p.Name,
					In:     p.In,
					Fill:   p.Fill,
					Filled: p.Filled,
				})
			}
			output = append(output, entry)
		}
	}

	return outputStructured(output, flags.format)
}

// selectOperations narrows the document's operations to the requested
// path+method, or returns all of them when no selector was given.
func selectOperations(doc *spec.Document, path, method string) ([]*spec.Operation, error) {
	ops, err := doc.Operations()
	if err != nil {
		return nil, err
	}

	if path == "" && method == "" {
		return ops, nil
	}
	if path == "" || method == "" {
		return nil, fmt.Errorf("-path and -method must be provided together")
	}

	method = strings.ToLower(method)
	for _, op := range ops {
		if op.Path == path && op.Method == method {
			return []*spec.Operation{op}, nil
		}
	}
	return nil, fmt.Errorf("no operation %s %s in document", strings.ToUpper(method), path)
}

// repairFlags contains flags for the repair command
type repairFlags struct {
	format string
}

func setupRepairFlags() (*flag.FlagSet, *repairFlags) {
	fs := flag.NewFlagSet("repair", flag.ContinueOnError)
	flags := &repairFlags{}

	fs.StringVar(&flags.format, "format", formatJSON, "output format (json or yaml)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasfill repair [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Report the malformed parameter declarations that are normalized before filling.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasfill repair openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasfill repair --format yaml openapi.json\n")
	}

	return fs, flags
}

// repairOutput is the report form of one applied repair.
type repairOutput struct {
	Type        string `json:"type"        yaml:"type"`
	Path        string `json:"path"        yaml:"path"`
	Method      string `json:"method"      yaml:"method"`
	Parameter   string `json:"parameter"   yaml:"parameter"`
	Description string `json:"description" yaml:"description"`
}

func handleRepair(args []string) error {
	fs, flags := setupRepairFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("repair command requires exactly one file path")
	}

	doc, err := spec.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	ops, err := doc.Operations()
	if err != nil {
		return err
	}

	r := repair.New()
	output := make([]repairOutput, 0)
	for _, op := range ops {
		for _, rep := range r.RepairOperation(op) {
			output = append(output, repairOutput{
				Type:        string(rep.Type),
				Path:        op.Path,
				Method:      op.Method,
				Parameter:   rep.Parameter,
				Description: rep.Description,
			})
		}
	}

	return outputStructured(output, flags.format)
}

func printUsage() {
	fmt.Println(`oasfill - OpenAPI Parameter Fill & Operation Expansion

Usage:
  oasfill <command> [options]

Commands:
  operations  List the operations of an OpenAPI document
  expand      Fill operation parameters and expand across candidate values
  repair      Report malformed parameter declarations
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasfill operations openapi.yaml
  oasfill expand --optional openapi.yaml
  oasfill expand --path /pets/{petId} --method get --values values.yaml openapi.yaml
  oasfill repair --format yaml openapi.yaml

Run 'oasfill <command> --help' for more information on a command.`)
}
