package manifest

// Scripts is an insertion-ordered set of npm script entries.
// Setting an existing key replaces its command and keeps its position.
type Scripts struct {
	keys     []string
	commands map[string]string
}

// NewScripts returns an empty script set.
func NewScripts() *Scripts {
	return &Scripts{commands: map[string]string{}}
}

// Set adds or replaces the command for key.
func (s *Scripts) Set(key, command string) {
	if _, ok := s.commands[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.commands[key] = command
}

// Get returns the command registered for key.
func (s *Scripts) Get(key string) (string, bool) {
	cmd, ok := s.commands[key]
	return cmd, ok
}

// Keys returns the script names in insertion order.
func (s *Scripts) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of scripts.
func (s *Scripts) Len() int { return len(s.keys) }
