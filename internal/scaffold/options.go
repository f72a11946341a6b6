package scaffold

import (
	"io"
	"regexp"
	"strings"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
)

// Opt describes one scaffold run.
// Fields are plain values so callers can map flags directly.
type Opt struct {
	Dir      string
	Name     string
	Template string
	Imports  []string
	Force    bool
	DryRun   bool
	Out      io.Writer
}

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName accepts names made of letters, digits, underscores and
// hyphens.
func ValidateName(name string) error {
	if name == "" {
		return errdef.New(errdef.CodeValidation, "file name is required")
	}
	if !nameRe.MatchString(name) {
		return errdef.New(
			errdef.CodeValidation,
			"invalid file name %q: use letters, digits, '_' or '-'",
			name,
		)
	}
	return nil
}

func withDefaults(opt Opt) Opt {
	opt.Dir = strings.TrimSpace(opt.Dir)
	if opt.Dir == "" {
		opt.Dir = DefaultDir
	}
	opt.Template = normalizeTemplateName(opt.Template)
	if opt.Template == "" {
		opt.Template = DefaultTemplate
	}
	opt.Name = strings.TrimSpace(opt.Name)
	return opt
}

func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
