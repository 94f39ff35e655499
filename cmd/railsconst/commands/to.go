package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/railsconst/normalizer"
)

// ToFlags contains flags for the to command
type ToFlags struct {
	Format      string
	Inflections string
	Output      string
	Verbose     bool
}

// ToResult is one converted token, as printed by --output json|yaml.
type ToResult struct {
	Token  string `json:"token" yaml:"token"`
	Kind   string `json:"kind" yaml:"kind"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	Value  string `json:"value" yaml:"value"`
}

// SetupToFlags creates and configures a FlagSet for the to command.
// Returns the FlagSet and a ToFlags struct with bound flag variables.
func SetupToFlags() (*flag.FlagSet, *ToFlags) {
	fs := flag.NewFlagSet("to", flag.ContinueOnError)
	flags := &ToFlags{}

	fs.StringVar(&flags.Format, "f", "", "format: "+formatList())
	fs.StringVar(&flags.Format, "format", "", "format: "+formatList())
	fs.StringVar(&flags.Inflections, "inflections", "", "YAML file of plural/singular/uncountable overrides")
	fs.StringVar(&flags.Output, "o", FormatText, "output format: text, json, yaml")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "log each transformation to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log each transformation to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: railsconst to [flags] <kind> <token>...\n\n")
		Writef(output, "Convert naming tokens into Rails artifact names.\n\n")
		Writef(output, "Kinds: %s\n\n", kindList())
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  railsconst to controller name\n")
		Writef(output, "  railsconst to -f klass responder controller_name#index\n")
		Writef(output, "  railsconst to -f file_path model_concern controller_name#index-model_ones\n")
		Writef(output, "  railsconst to -o json interactor users#create users#update\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    All tokens converted\n")
		Writef(output, "  1    A token was rejected (invalid action, malformed token, unknown kind or format)\n")
	}

	return fs, flags
}

// HandleTo executes the to command
func HandleTo(args []string) error {
	fs, flags := SetupToFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("to command requires a kind and at least one token")
	}
	if err := ValidateOutputFormat(flags.Output); err != nil {
		return err
	}

	kind, err := normalizer.ParseKind(fs.Arg(0))
	if err != nil {
		return err
	}
	format, err := normalizer.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	n, err := newNormalizer(flags.Inflections, flags.Verbose)
	if err != nil {
		return err
	}

	results := make([]ToResult, 0, fs.NArg()-1)
	for _, token := range fs.Args()[1:] {
		value, err := n.To(token, kind, format)
		if err != nil {
			return fmt.Errorf("converting %q: %w", token, err)
		}
		results = append(results, ToResult{Token: token, Kind: kind.String(), Format: format.String(), Value: value})
	}

	if flags.Output != FormatText {
		return OutputStructured(results, flags.Output)
	}
	for _, r := range results {
		fmt.Println(r.Value)
	}
	return nil
}

func kindList() string {
	names := make([]string, 0, len(normalizer.Kinds()))
	for _, k := range normalizer.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func formatList() string {
	names := []string{"none"}
	for _, f := range normalizer.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
