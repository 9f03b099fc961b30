package main

import (
	"fmt"
)

type versionType struct {
	Major, Minor, Patch int
	Prefix, Suffix      string
}

func (v *versionType) String() string {
	if v.Major == 0 && v.Minor == 0 && v.Patch == 0 && len(v.Prefix) == 0 && len(v.Suffix) == 0 {
		return "private-dev"
	}
	return fmt.Sprintf("%s%d.%d.%d%s", v.Prefix, v.Major, v.Minor, v.Patch, v.Suffix)
}

var Version versionType

// set with -ldflags "-X main.versionString=1.2.3"
var versionString string

func init() {
	if len(versionString) > 0 {
		var v versionType
		if _, err := fmt.Sscanf(versionString, "%d.%d.%d", &v.Major, &v.Minor, &v.Patch); err == nil {
			Version = v
		}
	}
}

func version(exe string) {
	_, _ = fmt.Fprintf(stdout, "%s %s\n", exe, Version.String())
}
