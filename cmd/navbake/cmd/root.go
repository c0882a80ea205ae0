package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
// (grounded on cmd/recast/cmd/root.go's RootCmd).
var RootCmd = &cobra.Command{
	Use:   "navbake",
	Short: "build and query navmesh2d navigation meshes",
	Long: `navbake is the command-line companion to navmesh2d:
	- build a navmesh from a .obj scene (boundary + obstacle faces),
	- save it to a binary file,
	- run a point-to-point query against a saved navmesh,
	- tweak build settings via a YAML config file,
	- print summary information about a saved navmesh.`,
}

// Execute runs RootCmd; the child commands add themselves to it in their
// own init functions. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
