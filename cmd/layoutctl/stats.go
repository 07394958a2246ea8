package main

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/layoutkit/internal/scenario"
	"github.com/joshuapare/layoutkit/track"
)

var statsCmd = &cobra.Command{
	Use:   "stats <scenario.yaml>",
	Short: "Replay a scenario and report occupancy and fragmentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.LoadFile(args[0])
		if err != nil {
			return err
		}

		t, _ := s.Run(&track.Config{Logger: traceLogger()})
		st := t.Stats()
		w := outWriter()

		if jsonOut {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				track.Stats
				Capacity uint32  `json:"capacity"`
				Usage    float64 `json:"usage"`
			}{st, t.Capacity(), t.Usage()})
		}

		fmt.Fprintf(w, "Capacity:      %s cells\n", humanize.Comma(int64(t.Capacity())))
		fmt.Fprintf(w, "Regions:       %s\n", humanize.Comma(int64(st.Regions)))
		fmt.Fprintf(w, "Used:          %s cells (%.1f%%)\n",
			humanize.Comma(int64(st.Used)), t.Usage()*100)
		fmt.Fprintf(w, "Free:          %s cells\n", humanize.Comma(int64(st.Free)))
		fmt.Fprintf(w, "Gaps:          %s (largest %s cells)\n",
			humanize.Comma(int64(st.Gaps)), humanize.Comma(int64(st.LargestGap)))
		fmt.Fprintf(w, "Fragmentation: %.1f%%\n", st.Fragmentation*100)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
