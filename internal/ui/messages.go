package ui

import (
	"github.com/unkn0wn-root/rfkit/internal/imports"
	"github.com/unkn0wn-root/rfkit/internal/scaffold"
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
	statusSuccess
)

type statusMsg struct {
	text  string
	level statusLevel
}

type scanDoneMsg struct {
	files []imports.DiscoveredFile
	err   error
}

type writeDoneMsg struct {
	op   scaffold.Op
	diff string
	err  error
}

type previewLoadedMsg struct {
	path    string
	content string
	size    int64
	err     error
}

type editorClosedMsg struct {
	path string
	err  error
}
