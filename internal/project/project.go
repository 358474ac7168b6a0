// Package project persists named matching projects: a reference color and
// the history of samples measured against it. Each project is a single
// JSON file under the store directory.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tintlab/tintmatch/internal/color"
	"github.com/tintlab/tintmatch/internal/match"
)

var (
	// ErrNotFound is returned when the named project does not exist.
	ErrNotFound = errors.New("project not found")
	// ErrExists is returned when creating a project whose name is taken.
	ErrExists = errors.New("project already exists")
	// ErrNoReference is returned when adding a sample to a project that
	// has no reference color yet.
	ErrNoReference = errors.New("project has no reference color")
	// ErrInvalidName is returned for empty names or names containing
	// path separators.
	ErrInvalidName = errors.New("invalid project name")
)

// Sample is one measured candidate color and its comparison against the
// project reference at the time it was taken.
type Sample struct {
	Hex            string    `json:"hex"`
	R              uint8     `json:"r"`
	G              uint8     `json:"g"`
	B              uint8     `json:"b"`
	DeltaE         float64   `json:"delta_e"`
	Verdict        string    `json:"verdict"`
	Recommendation string    `json:"recommendation"`
	TakenAt        time.Time `json:"taken_at"`
}

// Project is a named matching session.
type Project struct {
	Name      string    `json:"name"`
	Reference *string   `json:"reference,omitempty"` // hex, nil until set
	Samples   []Sample  `json:"samples,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReferenceRGB returns the parsed reference color, or ok=false if the
// project has none.
func (p *Project) ReferenceRGB() (color.RGB, bool) {
	if p.Reference == nil {
		return color.RGB{}, false
	}
	c, err := color.ParseHex(*p.Reference)
	if err != nil {
		return color.RGB{}, false
	}
	return c, true
}

// Store reads and writes projects under a directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir, creating it if necessary.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Create makes a new project. reference may be nil.
func (s *Store) Create(name string, reference *color.RGB) (*Project, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.path(name)); err == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrExists)
	}

	now := time.Now().UTC()
	p := &Project{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if reference != nil {
		hex := reference.Hex()
		p.Reference = &hex
	}
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get loads a project by name.
func (s *Store) Get(name string) (*Project, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reading project: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project %q: %w", name, err)
	}
	return &p, nil
}

// List returns all project names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Save writes the project to disk, bumping UpdatedAt.
func (s *Store) Save(p *Project) error {
	if err := validateName(p.Name); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding project %q: %w", p.Name, err)
	}
	if err := os.WriteFile(s.path(p.Name), data, 0o644); err != nil {
		return fmt.Errorf("writing project %q: %w", p.Name, err)
	}
	return nil
}

// Delete removes a project.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("deleting project %q: %w", name, err)
	}
	return nil
}

// SetReference updates the project's reference color.
func (s *Store) SetReference(name string, reference color.RGB) (*Project, error) {
	p, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	hex := reference.Hex()
	p.Reference = &hex
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddSample compares the sample against the project reference, appends the
// result to the history, and persists it.
func (s *Store) AddSample(name string, sample color.RGB) (*Project, Sample, error) {
	p, err := s.Get(name)
	if err != nil {
		return nil, Sample{}, err
	}
	ref, ok := p.ReferenceRGB()
	if !ok {
		return nil, Sample{}, fmt.Errorf("%q: %w", name, ErrNoReference)
	}

	cmp := match.Compare(ref, sample)
	rec := Sample{
		Hex:            sample.Hex(),
		R:              sample.R,
		G:              sample.G,
		B:              sample.B,
		DeltaE:         cmp.DeltaE,
		Verdict:        cmp.Verdict,
		Recommendation: cmp.Recommendation,
		TakenAt:        time.Now().UTC(),
	}
	p.Samples = append(p.Samples, rec)
	if err := s.Save(p); err != nil {
		return nil, Sample{}, err
	}
	return p, rec, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
