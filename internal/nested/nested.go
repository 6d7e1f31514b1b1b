// Package nested resolves key paths against nested JSON-style mappings.
package nested

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyNotFound is matched by every *KeyError.
	ErrKeyNotFound = errors.New("key not found")
	// ErrEmptyPath is returned when Access is called without any key.
	ErrEmptyPath = errors.New("path must contain at least one key")
)

// KeyError reports the key at which a traversal could not proceed.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %q", e.Key)
}

// Is lets errors.Is(err, ErrKeyNotFound) match any KeyError.
func (e *KeyError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// TypeError is returned by the typed accessors when the value at Key
// exists but has the wrong type.
type TypeError struct {
	Key  string
	Want string
	Got  any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value at %q is %T, want %s", e.Key, e.Got, e.Want)
}

// Access walks m one key at a time and returns the value reached after the
// last key. It fails with a *KeyError naming the first key that is missing,
// or the first key that had to be looked up in something that is not a map.
func Access(m map[string]any, path ...string) (any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	var current any = m
	for _, key := range path {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, &KeyError{Key: key}
		}
		current, ok = node[key]
		if !ok {
			return nil, &KeyError{Key: key}
		}
	}
	return current, nil
}

// String is Access followed by a string assertion on the result.
func String(m map[string]any, path ...string) (string, error) {
	v, err := Access(m, path...)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Key: path[len(path)-1], Want: "string", Got: v}
	}
	return s, nil
}

// SplitPath turns a dotted path such as "license.key" into its keys.
// Empty segments are dropped, so "" yields an empty path.
func SplitPath(s string) []string {
	parts := strings.Split(s, ".")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
