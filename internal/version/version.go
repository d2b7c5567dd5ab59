package version

// Version is set at build time via -ldflags "-X github.com/juanibiapina/layouts/internal/version.Version=..."
var Version = "dev"
