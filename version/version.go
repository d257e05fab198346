package version

import "runtime/debug"

// Version can be set at build time:
//
//	go build -ldflags "-X github.com/vsariola/kuvaaja/version.Version=$(git describe --dirty)"
//
// When unset, VersionOrHash falls back to the vcs revision stamped into the
// build info, if there is one.
var Version string

var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	hash, dirty := "", ""
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			hash = setting.Value[:7]
		case "vcs.modified":
			if setting.Value == "true" {
				dirty = "-dirty"
			}
		}
	}
	if hash == "" {
		return ""
	}
	return hash + dirty
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()
