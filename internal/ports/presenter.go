package ports

// Presenter renders everything the user sees. Implementations decide
// whether colour is available; the conversion service never writes to the
// terminal directly.
type Presenter interface {
	// Banner prints the welcome banner.
	Banner()

	// Section prints a bold heading for the next step.
	Section(title string)

	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)

	// Display prints styled output between two rules.
	Display(styled string)

	// Preview prints up to lines lines of clean output saved at path.
	Preview(path, clean string, lines int)

	// NextSteps prints the paste-into-Medium checklist.
	NextSteps(displayed bool)

	// StartProgress shows an activity indicator until Stop is called.
	StartProgress(msg string) Progress
}

// Progress is a running activity indicator.
type Progress interface {
	Stop(msg string)
}
