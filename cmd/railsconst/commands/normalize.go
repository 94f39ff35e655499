package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/railsconst/normalizer"
)

// SetupNormalizeFlags creates the FlagSet for the normalize command.
func SetupNormalizeFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: railsconst normalize <text>...\n\n")
		Writef(output, "Map full-width letters, digits and spaces to ASCII and remove all whitespace.\n")
		Writef(output, "Multiple arguments are joined with a space before normalizing.\n\n")
		Writef(output, "Examples:\n")
		Writef(output, "  railsconst normalize 'ｎormalized'\n")
		Writef(output, "  railsconst normalize controller_name '#' index\n")
	}
	return fs
}

// HandleNormalize executes the normalize command
func HandleNormalize(args []string) error {
	fs := SetupNormalizeFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("normalize command requires text to normalize")
	}

	fmt.Println(normalizer.Normalize(strings.Join(fs.Args(), " ")))
	return nil
}

// SetupPermitFlags creates the FlagSet for the permit command.
func SetupPermitFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("permit", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: railsconst permit <action>\n\n")
		Writef(output, "Check that an action is one of: %s\n\n", strings.Join(normalizer.Actions(), ", "))
		Writef(output, "Exit Codes:\n")
		Writef(output, "  0    Action is permitted\n")
		Writef(output, "  1    Action is not permitted\n")
	}
	return fs
}

// HandlePermit executes the permit command
func HandlePermit(args []string) error {
	fs := SetupPermitFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("permit command requires exactly one action")
	}

	action, err := normalizer.Permit(normalizer.Normalize(fs.Arg(0)))
	if err != nil {
		return err
	}
	fmt.Println(action)
	return nil
}
