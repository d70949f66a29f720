package version

// Version is the accessgrid release version, overridden at build time with
// -ldflags "-X github.com/access-grid/accessgrid-go/internal/version.Version=...".
var Version = "0.1.0"
