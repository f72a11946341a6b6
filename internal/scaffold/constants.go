package scaffold

const (
	DefaultDir      = "."
	DefaultTemplate = "test"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const tempPattern = ".rfkit-*"
