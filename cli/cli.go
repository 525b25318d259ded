package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/t9search/cli.Version=1.2.3' -X 'github.com/flarebyte/t9search/cli.Date=2026-10-15'"
var (
	Version string
	Date    string
)
