package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command (grounded on
// cmd/recast/cmd/infos.go).
var infoCmd = &cobra.Command{
	Use:   "info NAVMESH",
	Short: "show information about a baked navmesh",
	Long: `Read a navigation mesh from a binary file, and print a summary
of its vertex and triangle counts.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfo,
}

var exportVal string

func init() {
	RootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVar(&exportVal, "export-obj", "", "also export the triangle soup to this .obj file for inspection")
}

func doInfo(cmd *cobra.Command, args []string) {
	m := mustDecodeNavmesh(args[0])
	fmt.Printf("vertices:  %d\n", m.VertexCount())
	fmt.Printf("triangles: %d\n", m.TriangleCount())

	if exportVal == "" {
		return
	}
	out, err := os.Create(exportVal)
	check(err)
	defer out.Close()
	check(exportDebugOBJ(out, m))
	fmt.Printf("exported debug mesh to '%s'\n", exportVal)
}
