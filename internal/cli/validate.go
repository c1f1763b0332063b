package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	shelfio "github.com/matzehuels/stackshelf/pkg/io"
	"github.com/matzehuels/stackshelf/pkg/pipeline"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <shelf.toml>",
		Short: "Check a shelf description and report every problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := shelfio.Import(args[0])
			if err != nil {
				return err
			}
			problems := validateShelf(s)
			if len(problems) == 0 {
				printSuccess("%s is valid", args[0])
				printKeyValue("Rows", strconv.Itoa(len(s.Rows)))
				printKeyValue("Compartments", strconv.Itoa(s.Compartments()))
				for _, w := range s.Warnings() {
					printWarning("%s", w)
				}
				return nil
			}
			for _, p := range problems {
				printError("%s", p)
			}
			return fmt.Errorf("%s: %d problem(s) found", args[0], len(problems))
		},
	}
}

// validateShelf lists every problem of s. Validation errors are reported
// individually; layout is only attempted once they are all fixed.
func validateShelf(s *shelf.Shelf) []error {
	if errs := multierr.Errors(s.Validate()); len(errs) > 0 {
		return errs
	}
	if _, _, err := pipeline.Build(s); err != nil {
		return []error{err}
	}
	return nil
}
