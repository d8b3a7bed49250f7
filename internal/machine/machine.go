// Package machine loads finite automata from text descriptions and
// simulates them.
package machine

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Acceptor decides membership of a string in a language.
type Acceptor interface {
	Accepts(input string) bool
}

// Kind selects how a description is validated and simulated.
type Kind string

const (
	KindDFA Kind = "dfa"
	KindNFA Kind = "nfa"
)

// KindOf derives the machine kind from a file extension.
func KindOf(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dfa":
		return KindDFA, nil
	case ".nfa":
		return KindNFA, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, path)
}

// New builds an acceptor of the given kind from d.
func New(kind Kind, d *Description) (Acceptor, error) {
	switch kind {
	case KindDFA:
		m, err := NewDFA(d)
		if err != nil {
			return nil, err
		}
		return m, nil
	case KindNFA:
		m, err := NewNFA(d)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Load reads the description at path and builds the machine its extension
// names.
func Load(path string) (Acceptor, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	d, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := New(kind, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

type all []Acceptor

func (a all) Accepts(input string) bool {
	for _, m := range a {
		if !m.Accepts(input) {
			return false
		}
	}
	return true
}

// All accepts exactly the strings every one of ms accepts.
func All(ms ...Acceptor) Acceptor { return all(ms) }
