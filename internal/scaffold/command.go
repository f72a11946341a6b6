package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
)

// ErrDeclined is returned by Create when the overwrite prompt is declined.
var ErrDeclined = errors.New("scaffold: overwrite declined")

// Confirm asks whether path may be overwritten.
type Confirm func(path string) (bool, error)

// Command creates template files with injectable dependencies.
type Command struct {
	fs        FS
	templates TemplateStore
	out       io.Writer
}

func New() *Command {
	return &Command{
		fs:        OSFS{},
		templates: BuiltinTemplates{},
		out:       os.Stdout,
	}
}

// WithTemplates swaps the template store, e.g. to apply configured
// extensions.
func (c *Command) WithTemplates(ts TemplateStore) *Command {
	cp := *c
	cp.templates = ts
	return &cp
}

func (c *Command) WithFS(fsys FS) *Command {
	cp := *c
	cp.fs = fsys
	return &cp
}

func (c *Command) Templates() TemplateStore { return c.templates }

func (c *Command) runner(o Opt) (*runner, error) {
	o = withDefaults(o)
	if o.Out == nil {
		o.Out = c.out
	}
	tpl, ok := c.templates.Find(o.Template)
	if !ok {
		return nil, unknownTemplateErr(c.templates, o.Template)
	}
	return &runner{fs: c.fs, o: o, t: tpl}, nil
}

// Plan validates the name and resolves the destination without writing.
func (c *Command) Plan(o Opt) (Op, error) {
	r, err := c.runner(o)
	if err != nil {
		return Op{}, err
	}
	return r.plan()
}

// Apply writes op. Overwrites require o.Force.
func (c *Command) Apply(op Op, o Opt) error {
	r, err := c.runner(o)
	if err != nil {
		return err
	}
	return r.apply(op)
}

// Create plans and writes in one step. When the destination exists and
// o.Force is not set, confirm decides; declining returns ErrDeclined and
// leaves the file untouched.
func (c *Command) Create(o Opt, confirm Confirm) (Op, error) {
	op, err := c.Plan(o)
	if err != nil {
		return Op{}, err
	}
	if op.Action == ActionOverwrite && !o.Force {
		if confirm == nil {
			return op, c.Apply(op, o)
		}
		ok, err := confirm(op.Path)
		if err != nil {
			return op, err
		}
		if !ok {
			return op, ErrDeclined
		}
		o.Force = true
	}
	return op, c.Apply(op, o)
}

// Update replaces the content of an existing file atomically.
func (c *Command) Update(path, data string, o Opt) error {
	o.Force = true
	r := &runner{fs: c.fs, o: o}
	if r.o.Out == nil {
		r.o.Out = c.out
	}
	info, err := c.fs.Stat(path)
	if err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "stat %s", path)
	}
	op := Op{
		Action: ActionUpdate,
		Path:   path,
		Abs:    path,
		Mode:   info.Mode().Perm(),
		Data:   data,
	}
	return r.apply(op)
}

// ListTemplates writes one line per template.
func (c *Command) ListTemplates(w io.Writer) error {
	width := c.templates.Width()
	for _, t := range c.templates.List() {
		if _, err := fmt.Fprintf(w, "%-*s  %-9s  %s\n", width, t.Name, t.Ext, t.Description); err != nil {
			return fmt.Errorf("scaffold: list templates: %w", err)
		}
	}
	return nil
}

func unknownTemplateErr(tpls TemplateStore, name string) error {
	if name == "" {
		name = "(empty)"
	}
	return errdef.New(
		errdef.CodeValidation,
		"unknown template %q (available: %s)",
		name,
		strings.Join(tpls.Names(), ", "),
	)
}
