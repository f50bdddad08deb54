// Package session holds the state shared by every call of one client: the
// session token, its destroyed flag, the global loading flag and the
// in-flight request counter.
package session

import "sync"

// State implements wms.SessionStore and wms.LoadTracker.
type State struct {
	mutex     sync.RWMutex
	token     string
	destroyed bool
	loading   bool
	inFlight  int
	onChange  func(inFlight int, loading bool)
}

// New creates a session holding token.
func New(token string) *State {
	return &State{token: token}
}

// OnChange registers a callback invoked after every counter transition.
func (s *State) OnChange(fn func(inFlight int, loading bool)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.onChange = fn
}

// Token returns the current token.
func (s *State) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// SetToken stores a new token and revives a destroyed session.
func (s *State) SetToken(token string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
	s.destroyed = false
}

// Destroy clears the token.
func (s *State) Destroy() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = ""
	s.destroyed = true
}

// Destroyed reports whether the session was logged out.
func (s *State) Destroyed() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.destroyed
}

// Begin takes an in-flight slot and sets loading.
func (s *State) Begin() int {
	s.mutex.Lock()
	s.inFlight++
	s.loading = true
	inFlight, fn := s.inFlight, s.onChange
	s.mutex.Unlock()

	if fn != nil {
		fn(inFlight, true)
	}

	return inFlight
}

// End releases a slot. It reports true and clears loading when the counter
// reaches zero.
func (s *State) End() bool {
	s.mutex.Lock()
	s.inFlight--

	idle := s.inFlight <= 0
	if idle {
		s.inFlight = 0
		s.loading = false
	}

	inFlight, loading, fn := s.inFlight, s.loading, s.onChange
	s.mutex.Unlock()

	if fn != nil {
		fn(inFlight, loading)
	}

	return idle
}

// Reset drops all in-flight accounting.
func (s *State) Reset() {
	s.mutex.Lock()
	s.inFlight = 0
	s.loading = false
	fn := s.onChange
	s.mutex.Unlock()

	if fn != nil {
		fn(0, false)
	}
}

// InFlight returns the number of outstanding requests.
func (s *State) InFlight() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.inFlight
}

// Loading reports whether at least one request is outstanding.
func (s *State) Loading() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.loading
}
