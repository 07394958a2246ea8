package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/layoutkit/internal/scenario"
	"github.com/joshuapare/layoutkit/track"
	"github.com/joshuapare/layoutkit/track/printer"
)

var applyCmd = &cobra.Command{
	Use:   "apply <scenario.yaml>",
	Short: "Replay a scenario and render the resulting layout",
	Long: `Apply replays every operation in the scenario file against a fresh
tracker, then renders the final layout. Rejected insertions do not abort the
replay; use --verbose to see each operation's outcome as it happens.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.LoadFile(args[0])
		if err != nil {
			return err
		}

		t, results := s.Run(&track.Config{Logger: traceLogger()})

		w := outWriter()
		for _, res := range results {
			if res.Op.Op == scenario.OpFind {
				if res.Found {
					fmt.Fprintf(w, "find length=%d -> offset=%d\n", res.Op.Length, res.Offset)
				} else {
					fmt.Fprintf(w, "find length=%d -> no space\n", res.Op.Length)
				}
			}
		}

		opts := printer.DefaultOptions()
		opts.Color = !noColor && !jsonOut
		if jsonOut {
			opts.Format = printer.FormatJSON
		}
		return printer.New(t, w, opts).Print()
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
