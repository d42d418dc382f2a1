package main

type Mode int

const (
	ModeNormal Mode = iota
	ModePen
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmQuit
)

const (
	Cols      = 53 // weeks
	Rows      = 7  // days, Sunday first
	NumLevels = 5  // palette size, level 0 is "no contribution"
)

const (
	ExportWidth    = 1500
	ExportHeight   = 500
	ExportPadding  = 80
	Oversample     = 3
	ExportFilename = "github-contribution-graph.png"
)

// Terminal layout of the grid view.
const (
	dayLabelWidth = 4 // "Mon "
	cellWidth     = 2 // glyph plus gap
	headerRows    = 1 // month labels
)

type month struct {
	Label string
	Start int
	Span  int
}

// months follows GitHub's placement in a 53-week year.
var months = []month{
	{"Jan", 0, 4},
	{"Feb", 4, 5},
	{"Mar", 9, 4},
	{"Apr", 13, 5},
	{"May", 18, 4},
	{"Jun", 22, 5},
	{"Jul", 27, 4},
	{"Aug", 31, 5},
	{"Sep", 36, 4},
	{"Oct", 40, 5},
	{"Nov", 45, 4},
	{"Dec", 49, 4},
}

// Only Mon, Wed and Fri are labelled.
var dayLabels = [Rows]string{"", "Mon", "", "Wed", "", "Fri", ""}

var dayNames = [Rows]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
