package version

// AppVersion is the democtl release version. Overridden at build time via
// -ldflags "-X democtl/internal/version.AppVersion=...".
var AppVersion = "0.3.0"
