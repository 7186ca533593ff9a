package assets

import (
	"embed"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

// Templates holds the TCL scripts handed to the vendor toolchain.
var Templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// ProjectTmplParams parametrizes project.tcl.tmpl.
type ProjectTmplParams struct {
	Name        string
	Part        string
	Board       string
	Dir         string
	CfgScript   string
	HdlDir      string
	LibraryMode string
}

// SimLibTmplParams parametrizes simlib.tcl.tmpl.
type SimLibTmplParams struct {
	Module      string
	Script      string
	HdlDir      string
	LibraryMode string
}

// RunTmplParams parametrizes run.tcl.tmpl.
type RunTmplParams struct {
	Project       string
	Test          string
	Gui           bool
	WaveConfig    string
	HasWaveConfig bool
}
