package main

type model struct {
	width          int
	height         int
	cursorWeek     int
	cursorDay      int
	mode           Mode
	help           bool
	confirmAction  ConfirmAction
	ctrl           *Controller
	config         *Config
	exporting      int // exports in flight
	errorMessage   string
	successMessage string
}

// exportDoneMsg carries the result of a background PNG export.
type exportDoneMsg struct {
	data []byte
	err  error
}
