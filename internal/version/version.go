// Package version records the plaingen release.
package version

import "fmt"

const (
	// ToolMajor and ToolMinor track the generated-file surface: Minor
	// moves when generation adds declarations, Major when it changes or
	// removes them.
	ToolMajor = 0
	ToolMinor = 1
)

// ToolVersion identifies this build of plaingen.
var ToolVersion = SemVer{ToolMajor, ToolMinor, 0}

type SemVer struct {
	Major int
	Minor int
	Patch int
}

func (v SemVer) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}
