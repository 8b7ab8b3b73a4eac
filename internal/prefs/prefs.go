// Package prefs holds the two persisted user preferences: site language
// and color theme.
package prefs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Gabolonhez/Portfolio/internal/i18n"
)

// Kind names a preference.
type Kind string

const (
	Language Kind = "language"
	Theme    Kind = "theme"
)

// Theme values.
const (
	Dark  = "dark"
	Light = "light"
)

var (
	ErrUnknownKind  = errors.New("unknown preference")
	ErrInvalidValue = errors.New("invalid preference value")
)

// Backend persists preference values by storage key.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

type definition struct {
	key      string
	fallback string
	values   []string
}

var kinds = map[Kind]definition{
	Language: {key: "preferredLanguage", fallback: string(i18n.Default), values: []string{string(i18n.PT), string(i18n.EN)}},
	Theme:    {key: "theme", fallback: Dark, values: []string{Dark, Light}},
}

// Kinds lists the preferences in display order.
var Kinds = []Kind{Language, Theme}

// ParseKind validates a preference name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Values returns the accepted values of kind.
func Values(kind Kind) []string {
	return append([]string(nil), kinds[kind].values...)
}

// Key returns the storage key of kind.
func Key(kind Kind) string { return kinds[kind].key }

// Store is the in-memory view of the preferences backed by a Backend.
type Store struct {
	backend Backend

	mu       sync.Mutex
	values   map[Kind]string
	bindings map[Kind][]func(string)
}

// Open reads every preference from b once. Absent or unrecognized stored
// values resolve to the defaults; nothing is written until Set.
func Open(b Backend) (*Store, error) {
	s := &Store{
		backend:  b,
		values:   make(map[Kind]string, len(kinds)),
		bindings: make(map[Kind][]func(string)),
	}
	for kind, sp := range kinds {
		v, ok, err := b.Get(sp.key)
		if err != nil {
			return nil, fmt.Errorf("reading %s preference: %w", kind, err)
		}
		if !ok || !valid(sp, v) {
			v = sp.fallback
		}
		s.values[kind] = v
	}
	return s, nil
}

func valid(sp definition, v string) bool {
	for _, allowed := range sp.values {
		if v == allowed {
			return true
		}
	}
	return false
}

// Get returns the current value of kind, or "" for an unknown kind.
func (s *Store) Get(kind Kind) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[kind]
}

// Language returns the language preference.
func (s *Store) Language() i18n.Lang { return i18n.Lang(s.Get(Language)) }

// Set validates and stores value, persists it, then notifies the
// indicators bound to kind.
func (s *Store) Set(kind Kind, value string) error {
	sp, ok := kinds[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !valid(sp, value) {
		return fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidValue, kind, sp.values, value)
	}

	s.mu.Lock()
	if err := s.backend.Set(sp.key, value); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("saving %s preference: %w", kind, err)
	}
	s.values[kind] = value
	fns := append([]func(string){}, s.bindings[kind]...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
	return nil
}

// Toggle switches kind to its other value and returns it.
func (s *Store) Toggle(kind Kind) (string, error) {
	sp, ok := kinds[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	next := sp.values[0]
	if s.Get(kind) == next {
		next = sp.values[1]
	}
	if err := s.Set(kind, next); err != nil {
		return "", err
	}
	return next, nil
}

// Bind registers fn to be called with every new value of kind, and calls
// it once with the current value.
func (s *Store) Bind(kind Kind, fn func(string)) {
	s.mu.Lock()
	s.bindings[kind] = append(s.bindings[kind], fn)
	v := s.values[kind]
	s.mu.Unlock()
	fn(v)
}
