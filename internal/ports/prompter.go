package ports

// Prompter asks the user questions in interactive mode. Implementations
// return io.EOF once no more answers can be read.
type Prompter interface {
	// Input asks for free text and returns it trimmed.
	Input(label string) (string, error)

	// Select returns the index of the chosen option.
	Select(label string, options []string) (int, error)

	// Confirm asks a yes/no question with def as the default answer.
	Confirm(label string, def bool) (bool, error)
}
