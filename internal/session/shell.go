package session

// Shell is the state machine around the current user identity. It starts
// Anonymous unless a well-formed persisted session exists, and only Login and
// Logout transition it.
type Shell struct {
	store   *Store
	current *Session
}

// NewShell rehydrates the shell from the store.
func NewShell(store *Store) *Shell {
	shell := &Shell{store: store}
	if sess, ok := store.Load(); ok {
		shell.current = &sess
	}
	return shell
}

// Current returns the active session, if any.
func (s *Shell) Current() (Session, bool) {
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Login validates the email, builds the session and persists it. The name may
// be blank; it defaults to the email's local part.
func (s *Shell) Login(name, email string) (Session, error) {
	if err := ValidateEmail(email); err != nil {
		return Session{}, err
	}

	sess := New(name, email)
	if err := s.store.Save(sess); err != nil {
		return Session{}, err
	}

	s.current = &sess
	return sess, nil
}

// Logout clears both the in-memory and the persisted session.
func (s *Shell) Logout() error {
	s.current = nil
	return s.store.Clear()
}
