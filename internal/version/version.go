package version

// Both values are replaced at the build time with -ldflags "-X ..."
var (
	version = "undefined"
	commit  = ""
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}
