package scaffold

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
)

func (r *runner) plan() (Op, error) {
	name := r.o.Name
	if err := ValidateName(name); err != nil {
		return Op{}, err
	}
	if err := r.checkDir(); err != nil {
		return Op{}, err
	}

	file := name + r.t.Ext
	abs := filepath.Join(r.o.Dir, file)
	info, err := r.fs.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return Op{}, errdef.New(errdef.CodeFilesystem, "%s is a directory", abs)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return Op{}, errdef.Wrap(errdef.CodeFilesystem, err, "stat %s", abs)
	}

	act := ActionCreate
	if err == nil {
		act = ActionOverwrite
	}
	op := Op{
		Action:   act,
		Path:     abs,
		Abs:      abs,
		Mode:     filePerm,
		Template: r.t,
	}
	return op.WithImports(r.o.Imports), nil
}

func (r *runner) apply(op Op) error {
	if op.Action == ActionOverwrite && !r.o.Force {
		return errdef.New(
			errdef.CodeExists,
			"%s already exists (use --force to overwrite)",
			op.Path,
		)
	}
	if r.o.DryRun {
		return r.report(string(op.Action), op.Path)
	}

	if err := r.fs.MkdirAll(filepath.Dir(op.Abs), dirPerm); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create dir for %s", op.Path)
	}

	force := op.Action != ActionCreate
	if err := r.writeAtomic(op.Abs, op.Mode, op.Data, force); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errdef.Wrap(errdef.CodeExists, err, "write %s", op.Path)
		}
		return errdef.Wrap(errdef.CodeFilesystem, err, "write %s", op.Path)
	}

	return r.report(string(op.Action), op.Path)
}
