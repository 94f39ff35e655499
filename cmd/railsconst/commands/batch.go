package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/erraggy/railsconst/manifest"
	"github.com/erraggy/railsconst/normalizer"
)

// BatchFlags contains flags for the batch command
type BatchFlags struct {
	Inflections string
	Output      string
	Verbose     bool
}

// SetupBatchFlags creates and configures a FlagSet for the batch command.
// Returns the FlagSet and a BatchFlags struct with bound flag variables.
func SetupBatchFlags() (*flag.FlagSet, *BatchFlags) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	flags := &BatchFlags{}

	fs.StringVar(&flags.Inflections, "inflections", "", "YAML file of overrides applied before the manifest's own")
	fs.StringVar(&flags.Output, "o", FormatText, "output format: text, json, yaml")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "log each transformation to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log each transformation to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: railsconst batch [flags] <manifest.yaml|->\n\n")
		Writef(output, "Convert every token listed in a YAML manifest.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nManifest:\n")
		Writef(output, "  kind: responder\n")
		Writef(output, "  formats: [none, klass, file_path]\n")
		Writef(output, "  inflections:\n")
		Writef(output, "    plural: {octopus: octopi}\n")
		Writef(output, "  entries:\n")
		Writef(output, "    - token: controller_name#index\n")
		Writef(output, "    - token: controller_name#index-model_ones\n")
		Writef(output, "      kind: model_concern\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '%s' as the file path to read from stdin\n", StdinFilePath)
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    All entries converted\n")
		Writef(output, "  1    The manifest could not be read, or an entry failed\n")
	}

	return fs, flags
}

// HandleBatch executes the batch command
func HandleBatch(args []string) error {
	fs, flags := SetupBatchFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("batch command requires exactly one manifest path or '%s' for stdin", StdinFilePath)
	}
	if err := ValidateOutputFormat(flags.Output); err != nil {
		return err
	}

	source := manifest.WithFilePath(fs.Arg(0))
	if fs.Arg(0) == StdinFilePath {
		source = manifest.WithReader(os.Stdin)
	}
	m, err := manifest.LoadWithOptions(source)
	if err != nil {
		return err
	}

	opts := []normalizer.Option{normalizer.WithLogger(newLogger(flags.Verbose))}
	if flags.Inflections != "" {
		base, err := newNormalizer(flags.Inflections, false)
		if err != nil {
			return err
		}
		opts = append(opts, normalizer.WithInflector(base.Inflector))
	}

	report, err := m.Evaluate(context.Background(), opts...)
	if err != nil {
		return err
	}

	if flags.Output != FormatText {
		if err := OutputStructured(report, flags.Output); err != nil {
			return err
		}
	} else {
		writeReportText(report)
	}

	if report.HasErrors() {
		return fmt.Errorf("%d of %d conversions failed", report.ErrorCount, len(report.Results))
	}
	return nil
}

func writeReportText(report *manifest.Report) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"TOKEN", "KIND", "FORMAT", "RESULT"})
	for _, r := range report.Results {
		format := r.Format
		if format == "" {
			format = "none"
		}
		value := r.Value
		if r.Error != "" {
			value = "ERROR: " + r.Error
		}
		table.Append([]string{r.Token, r.Kind, format, value})
	}
	table.Render()
}
