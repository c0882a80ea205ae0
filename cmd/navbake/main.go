// Command navbake builds, inspects and queries navmesh2d navigation
// meshes from the command line (SPEC_FULL §5 "ambient, not part of core
// API").
package main

import "github.com/arl/navmesh2d/cmd/navbake/cmd"

func main() {
	cmd.Execute()
}
