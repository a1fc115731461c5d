package version

// VERSION is the version of this application.
const VERSION = "1.0.0"

// AppVersion returns the identity of this application including its version.
func AppVersion() string {
	return "ccmm-go " + VERSION
}
