// Package template loads the baseline JSON documents a profile is written into.
package template

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Source reads raw template bytes. A file path is the default source.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
}

// File is a Source backed by a path on disk.
type File string

// Read implements Source.
func (f File) Read(_ context.Context) ([]byte, error) {
	return os.ReadFile(string(f))
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithProfileSource replaces the wallet profile source.
func WithProfileSource(s Source) Option {
	return func(l *Loader) { l.profile = s }
}

// WithMetadataSource replaces the beast metadata source.
func WithMetadataSource(s Source) Option {
	return func(l *Loader) { l.metadata = s }
}

// Loader reads templates on every call so each request gets its own copy.
type Loader struct {
	profile  Source
	metadata Source
}

// NewLoader creates a loader over the two template files.
func NewLoader(profilePath, metadataPath string, opts ...Option) *Loader {
	l := &Loader{profile: File(profilePath), metadata: File(metadataPath)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadProfile reads and parses the wallet profile template.
func (l *Loader) LoadProfile(ctx context.Context) (*Document, error) {
	root, err := load(ctx, l.profile)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// LoadBeastMetadata reads and parses the beast token metadata template.
func (l *Loader) LoadBeastMetadata(ctx context.Context) (map[string]any, error) {
	return load(ctx, l.metadata)
}

func load(ctx context.Context, s Source) (map[string]any, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrRead)
	}
	b, err := s.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: document is null", ErrInvalid)
	}
	return root, nil
}
