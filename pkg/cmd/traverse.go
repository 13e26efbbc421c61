package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bstviz/bstviz/pkg/visualizer"
)

func init() {
	TraverseCmd.Flags().IntSlice("values", nil, "values to insert, in order")
	RootCmd.AddCommand(TraverseCmd)
}

var TraverseCmd = &cobra.Command{
	Use:   "traverse",
	Short: "build a tree from the given values and print all four traversals",

	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := cmd.Flags().GetIntSlice("values")
		if err != nil {
			return err
		}

		config, err := loadConfig()
		if err != nil {
			return err
		}

		viz := visualizer.New(*config)
		for _, value := range values {
			if _, err := viz.Insert(value); err != nil {
				return err
			}
		}

		if viz.Size() == 0 {
			fmt.Println("tree is empty, nothing to traverse")
			return nil
		}

		fmt.Print(viz.Tree().Sprint())
		printTraversals(viz)
		return nil
	},
}

func printTraversals(viz *visualizer.Visualizer) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Order", "Values"})
	t.AppendRows([]table.Row{
		{"inorder", formatValues(viz.Inorder())},
		{"preorder", formatValues(viz.Preorder())},
		{"postorder", formatValues(viz.Postorder())},
		{"levelorder", formatValues(viz.Levelorder())},
	})
	t.AppendFooter(table.Row{"height", viz.Height()})
	t.Render()
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
