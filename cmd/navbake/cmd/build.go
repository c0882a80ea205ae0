package cmd

import (
	"fmt"
	"os"

	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/navmesh"
	"github.com/spf13/cobra"
)

var (
	buildCfgVal   string
	buildInputVal string
)

// buildCmd represents the build command (grounded on
// cmd/recast/cmd/build.go).
var buildCmd = &cobra.Command{
	Use:   "build OUTFILE",
	Short: "build a navigation mesh from input geometry",
	Long: `Build a navigation mesh from a .obj scene (first face: boundary,
remaining faces: obstacles). Build process is controlled by the provided
build settings. The generated navmesh is saved to OUTFILE in binary format,
readable with navmesh2d.`,
	Args: cobra.ExactArgs(1),
	Run:  doBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildCfgVal, "config", "navbake.yml", "build settings")
	buildCmd.Flags().StringVar(&buildInputVal, "input", "", "input scene .obj file (required)")
}

func doBuild(cmd *cobra.Command, args []string) {
	outfile := args[0]
	if buildInputVal == "" {
		fmt.Println("error: --input is required")
		os.Exit(-1)
	}

	settings := defaultBuildSettings()
	if err := unmarshalYAMLFile(buildCfgVal, &settings); err != nil && !os.IsNotExist(err) {
		check(err)
	}

	boundary, obstacles, err := loadScene(buildInputVal)
	check(err)

	opts := navmesh.BuildOptions{
		MaxTriangleCount: settings.MaxTriangleCount,
		SnapTolerance:    settings.SnapTolerance,
	}
	logger := navmesh.NewBuildContext()
	m, err := navmesh.Build(boundary, obstacles, nil, opts, logger)
	check(err)
	for _, msg := range logger.Messages() {
		fmt.Println(msg)
	}

	out, err := os.Create(outfile)
	check(err)
	defer out.Close()
	check(navmesh.Encode(out, m))

	fmt.Printf("baked %d vertices, %d triangles to '%s'\n", m.VertexCount(), m.TriangleCount(), outfile)

	for _, qp := range settings.QueryPoints {
		q := navmesh.NewPathQuery(m)
		start := fixed.Vec2FromFloat64(qp[0], qp[1])
		end := fixed.Vec2FromFloat64(qp[2], qp[3])
		res := q.FindPath(start, end)
		if !res.Success {
			fmt.Printf("query (%v -> %v): no path\n", qp[:2], qp[2:])
			continue
		}
		fmt.Printf("query (%v -> %v): length=%s, %d waypoints\n", qp[:2], qp[2:], res.Length, len(res.Path))
	}
}
