package state

import "github.com/atomicstack/termfolio/internal/content"

// maxHistory bounds the back stack.
const maxHistory = 32

type PageStore interface {
	Library() *content.Library
	SetLibrary(*content.Library)
	Current() string
	// SetCurrent moves to path, remembering the previous location.
	SetCurrent(string)
	// Back pops the previous location and makes it current.
	Back() (string, bool)
	History() []string
}

type pageStore struct {
	library *content.Library
	current string
	history []string
}

func NewPageStore(lib *content.Library, current string) PageStore {
	return &pageStore{library: lib, current: current}
}

func (s *pageStore) Library() *content.Library {
	return s.library
}

func (s *pageStore) SetLibrary(lib *content.Library) {
	s.library = lib
}

func (s *pageStore) Current() string {
	return s.current
}

func (s *pageStore) SetCurrent(path string) {
	if path == s.current {
		return
	}
	if s.current != "" {
		s.history = append(s.history, s.current)
		if len(s.history) > maxHistory {
			s.history = s.history[len(s.history)-maxHistory:]
		}
	}
	s.current = path
}

func (s *pageStore) Back() (string, bool) {
	if len(s.history) == 0 {
		return s.current, false
	}
	last := len(s.history) - 1
	s.current = s.history[last]
	s.history = s.history[:last]
	return s.current, true
}

func (s *pageStore) History() []string {
	if len(s.history) == 0 {
		return nil
	}
	dup := make([]string, len(s.history))
	copy(dup, s.history)
	return dup
}
