package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackshelf/pkg/boards"
	shelfio "github.com/matzehuels/stackshelf/pkg/io"
	"github.com/matzehuels/stackshelf/pkg/layout"
	"github.com/matzehuels/stackshelf/pkg/pipeline"
)

// layoutCommand creates the layout command, which prints the computed
// stacks without rendering anything.
func (c *CLI) layoutCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout <shelf.toml>",
		Short: "Print the computed layout and boards of a shelf",
		Long: `Print the computed layout of a shelf description.

For every slot the command shows the horizontal interval and the positioned
rect; gaps are listed as such. The derived boards follow in emission order.
With --json the same data is written as a JSON document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := shelfio.Import(args[0])
			if err != nil {
				return err
			}
			l, bs, err := pipeline.Build(s)
			if err != nil {
				return err
			}
			c.Logger.Debug("computed layout", "rows", l.Rows(), "boards", len(bs))

			out := cmd.OutOrStdout()
			if asJSON {
				return writeReport(out, pipeline.NewReport(l, bs))
			}
			printLayout(out, l, bs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write the layout as JSON")
	return cmd
}

func writeReport(w io.Writer, rep pipeline.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// printLayout writes the slot table and the board table of l to w.
func printLayout(w io.Writer, l layout.Layout, bs []boards.Board) {
	fmt.Fprintln(w, StyleTitle.Render("Slots"))
	fmt.Fprintln(w, renderTable([]string{"Row", "Slot", "Interval", "Rect"}, slotRows(l)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Boards"))
	fmt.Fprintln(w, renderTable([]string{"#", "Kind", "Row", "X", "Y", "Width", "Height"}, boardRows(bs)))
}

func slotRows(l layout.Layout) [][]string {
	var rows [][]string
	for r, row := range l.Rects {
		for i, rect := range row {
			if rect == nil {
				rows = append(rows, []string{strconv.Itoa(r), strconv.Itoa(i), "gap", "gap"})
				continue
			}
			iv := l.Intervals[r][i]
			rows = append(rows, []string{
				strconv.Itoa(r),
				strconv.Itoa(i),
				fmt.Sprintf("%g - %g", iv.Start, iv.End()),
				fmt.Sprintf("x=%g y=%g w=%g h=%g", rect.X, rect.Y, rect.Width, rect.Height),
			})
		}
	}
	return rows
}

func boardRows(bs []boards.Board) [][]string {
	rows := make([][]string, len(bs))
	for i, b := range bs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			styleKind.Render(b.Kind.String()),
			strconv.Itoa(b.Row),
			formatFloat(b.Rect.X),
			formatFloat(b.Rect.Y),
			formatFloat(b.Rect.Width),
			formatFloat(b.Rect.Height),
		}
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
