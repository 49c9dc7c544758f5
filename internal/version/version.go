// internal/version/version.go
package version

// Version is overridden at build time with -ldflags "-X tolasm/internal/version.Version=...".
var Version = "0.4.0-dev"
