package main

import (
	"fmt"
	"io"

	"github.com/lukaszgryglicki/trackball4d/internal/trackball4d"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the vertices and edges of a polytope",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("variant")
		half, _ := cmd.Flags().GetFloat64("half")
		edges, _ := cmd.Flags().GetBool("edges")
		return printInfo(cmd.OutOrStdout(), name, half, edges)
	},
}

func init() {
	infoCmd.Flags().StringP("variant", "v", "tesseract", "Polytope variant (tesseract, hyperoctahedron)")
	infoCmd.Flags().Float64("half", 0, "Half-edge; 0 uses the variant default")
	infoCmd.Flags().Bool("edges", false, "List edges too")
	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer, name string, half float64, edges bool) error {
	v, err := trackball4d.ParseVariant(name)
	if err != nil {
		return err
	}
	p, err := trackball4d.NewPolytope(v, half)
	if err != nil {
		return err
	}
	es := p.Edges()
	fmt.Fprintf(w, "%s: %d vertices, %d edges, half-edge %g\n", v, p.VertexCount(), len(es), p.Half())
	for i := 0; i < p.VertexCount(); i++ {
		fmt.Fprintf(w, "v%-2d %v\n", i, []float64(p.Source(i)))
	}
	if edges {
		for i, e := range es {
			fmt.Fprintf(w, "e%-2d %2d-%-2d %s\n", i, e.A, e.B, e.Color)
		}
	}
	return nil
}
