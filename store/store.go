// Package store keeps the few integers the app persists, the snake high
// score among them.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownKind = errors.New("unknown store kind")

const (
	KindSQLite = "sqlite"
	KindINI    = "ini"
	KindMemory = "memory"
)

type Store interface {
	Get(ctx context.Context, key string) (int, bool, error)
	Set(ctx context.Context, key string, value int) error
	Close() error
}

// Open returns the store of the given kind backed by path.
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(kind) {
	case KindSQLite:
		return OpenSQLite(path)
	case KindINI:
		return NewINI(path), nil
	case KindMemory, "":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func encode(value int) string {
	return strconv.Itoa(value)
}

func decode(key, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("value of %s is not an integer: %w", key, err)
	}
	return v, nil
}
