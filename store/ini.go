package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/ini.v1"
)

const iniSection = "scores"

// INI keeps values in one section of an ini file. The file is read on every
// Get and rewritten on every Set.
type INI struct {
	mu   sync.Mutex
	path string
}

func NewINI(path string) *INI {
	return &INI{path: path}
}

func (s *INI) load() (*ini.File, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return ini.Empty(), nil
	}
	f, err := ini.Load(s.path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return f, nil
}

func (s *INI) Get(ctx context.Context, key string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.load()
	if err != nil {
		return 0, false, err
	}
	sec := f.Section(iniSection)
	if !sec.HasKey(key) {
		return 0, false, nil
	}
	v, err := decode(key, sec.Key(key).String())
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (s *INI) Set(ctx context.Context, key string, value int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.load()
	if err != nil {
		return err
	}
	f.Section(iniSection).Key(key).SetValue(encode(value))
	if err := f.SaveTo(s.path); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}

func (s *INI) Close() error {
	return nil
}
