package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/areanav/navmap"
)

func newPartitionCmd(a *app) *cobra.Command {
	var showLabels, showGroups bool
	cmd := &cobra.Command{
		Use:   "partition MAP",
		Short: "Split a map into areas and portal groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, hit, err := a.loadMap(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSummary(out, m, hit)
			if showGroups {
				for _, g := range m.Groups() {
					fmt.Fprintln(out, g)
				}
			}
			if showLabels {
				printLabels(out, m)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&showLabels, "labels", false, "Print the area label of every cell")
	cmd.Flags().BoolVar(&showGroups, "groups", false, "Print every portal group")

	return cmd
}

func printSummary(w io.Writer, m *navmap.Map, cached bool) {
	fmt.Fprintf(w, "map %s %dx%d\n", m.Name(), m.Width(), m.Height())
	fmt.Fprintf(w, "areas: %d islands: %d groups: %d squares: %d cached: %t\n",
		m.AreaCount(), m.Islands(), len(m.Groups()), len(m.PortalSquares()), cached)
}

// labelGlyphs encodes area ids in one character, cycling past the end.
const labelGlyphs = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func printLabels(w io.Writer, m *navmap.Map) {
	areas := m.Areas()
	var sb strings.Builder
	for y := 0; y < areas.Height(); y++ {
		sb.Reset()
		for x := 0; x < areas.Width(); x++ {
			v := areas.Get(x, y)
			if v == 0 {
				sb.WriteByte('@')
				continue
			}
			sb.WriteByte(labelGlyphs[(v-1)%len(labelGlyphs)])
		}
		fmt.Fprintln(w, sb.String())
	}
}
