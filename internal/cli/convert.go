package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackshelf/pkg/errors"
	shelfio "github.com/matzehuels/stackshelf/pkg/io"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Rewrite a shelf description in another format",
		Long: `Convert reads a shelf description and writes it again in the format of the
output file's extension (.toml, .yaml, .yml or .json).`,
		Example: `  stackshelf convert shelf.toml shelf.yaml`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(args[0], args[1])
		},
	}
}

func (c *CLI) runConvert(input, output string) error {
	if samePath(input, output) {
		return errors.New(errors.ErrCodeInvalidInput, "output %s is the input file", output)
	}
	if _, err := shelfio.FormatOf(output); err != nil {
		return err
	}
	s, err := shelfio.Import(input)
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if err := shelfio.Export(s, output); err != nil {
		return err
	}
	c.Logger.Debug("converted description", "input", input, "output", output, "rows", len(s.Rows))
	printSuccess("Wrote %s", output)
	return nil
}
