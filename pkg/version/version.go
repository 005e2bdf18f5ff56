package version

import "runtime/debug"

var Version = func() string {
	commit := "unknown"
	when := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				commit = setting.Value
			case "vcs.time":
				when = setting.Value
			}
		}
	}
	if when == "" {
		return commit
	}
	return commit + " (" + when + ")"
}()
