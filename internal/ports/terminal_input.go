package ports

// TerminalInput provides methods for reading user input from the terminal.
type TerminalInput interface {
	// ReadLine prompts and returns one line of input, without the newline.
	ReadLine(prompt string) (string, error)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
