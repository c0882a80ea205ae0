package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/navmesh"
	"github.com/spf13/cobra"
)

// queryCmd runs a single FindPath query against a baked navmesh.
var queryCmd = &cobra.Command{
	Use:   "query NAVMESH STARTX STARTY ENDX ENDY",
	Short: "find a path between two points on a baked navmesh",
	Long: `Read a navigation mesh from binary file and run a single
find-path query between the two given points, printing the resulting
waypoints and length.`,
	Args: cobra.ExactArgs(5),
	Run:  doQuery,
}

func init() {
	RootCmd.AddCommand(queryCmd)
}

func doQuery(cmd *cobra.Command, args []string) {
	m := mustDecodeNavmesh(args[0])

	coords := make([]float64, 4)
	for i, s := range args[1:5] {
		v, err := strconv.ParseFloat(s, 64)
		check(err)
		coords[i] = v
	}
	start := fixed.Vec2FromFloat64(coords[0], coords[1])
	end := fixed.Vec2FromFloat64(coords[2], coords[3])

	q := navmesh.NewPathQuery(m)
	res := q.FindPath(start, end)
	if !res.Success {
		fmt.Println("no path")
		return
	}
	fmt.Printf("length: %s\n", res.Length)
	for _, p := range res.Path {
		x, y := p.Float64()
		fmt.Printf("  %f, %f\n", x, y)
	}
}

func mustDecodeNavmesh(path string) *navmesh.NavMesh {
	f, err := os.Open(path)
	check(err)
	defer f.Close()
	m, err := navmesh.Decode(f)
	check(err)
	return m
}
