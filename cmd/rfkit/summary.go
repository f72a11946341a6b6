package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/unkn0wn-root/rfkit/internal/ui"
)

// report prints the one-line summary of a picker run. Dry runs also print
// the content or diff that would have been written.
func report(w io.Writer, out ui.Outcome) error {
	if out.Err != nil {
		return out.Err
	}
	name := filepath.Base(out.Path)
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	prefix := ""
	if out.DryRun {
		prefix = "dry-run: "
	}
	switch out.Action {
	case "created", "overwritten":
		fmt.Fprintf(w, "%s%s %s (%s)\n", prefix, green(actionVerb(out.Action)), name, plural(out.Imports, "import"))
		if out.DryRun {
			fmt.Fprint(w, out.Content)
		}
	case "updated":
		fmt.Fprintf(w, "%s%s %s\n", prefix, green("Updated imports in"), name)
		if out.DryRun {
			fmt.Fprint(w, out.Diff)
		}
	case "unchanged":
		fmt.Fprintf(w, "%s %s\n", yellow("No import changes in"), name)
	case "declined":
		fmt.Fprintf(w, "%s %s\n", yellow("Kept existing"), name)
	case "cancelled":
		fmt.Fprintln(os.Stderr, yellow("Cancelled; nothing written"))
	}
	return nil
}

func actionVerb(action string) string {
	if action == "overwritten" {
		return "Overwrote"
	}
	return "Created"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
