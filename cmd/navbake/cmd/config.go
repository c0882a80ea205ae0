package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// BuildSettings is the YAML-serializable build configuration navbake reads
// before baking a navmesh (SPEC_FULL §2 "Config": `gopkg.in/yaml.v2`,
// grounded on cmd/recast/cmd/utils.go's unmarshalYAMLFile).
type BuildSettings struct {
	// SnapTolerance is the distance below which two input vertices are
	// unified into a single triangulator vertex.
	SnapTolerance float64 `yaml:"snap_tolerance"`
	// MaxTriangleCount bounds subdivision from below; zero disables it.
	MaxTriangleCount int `yaml:"max_triangle_count"`
	// QueryPoints, if non-empty, are run as FindPath queries right after a
	// build, each as [startX, startY, endX, endY].
	QueryPoints [][4]float64 `yaml:"query_points"`
}

// defaultBuildSettings mirrors the zero-config defaults navmesh.BuildOptions
// itself assumes.
func defaultBuildSettings() BuildSettings {
	return BuildSettings{
		SnapTolerance:    1e-4,
		MaxTriangleCount: 0,
	}
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

// configCmd represents the config command (grounded on
// cmd/recast/cmd/config.go).
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'navbake.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "navbake.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		out, err := yaml.Marshal(defaultBuildSettings())
		check(err)
		check(ioutil.WriteFile(path, out, 0644))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
