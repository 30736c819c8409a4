package parse

// State represents the current position of the tokenizer in the raw argument vector
type State interface {
	Pos() int            // Get the current position
	CurrentArg() string  // Get the current argument
	Peek() string        // Peek at the next argument
	Advance() bool       // Advance to the next argument
	Len() int            // Gets the length of the argument list
	Remaining() []string // Arguments after the current position
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}

// Remaining returns the arguments after the current position, in order
func (s *DefaultState) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}
	rest := make([]string, len(s.args)-s.pos-1)
	copy(rest, s.args[s.pos+1:])
	return rest
}
