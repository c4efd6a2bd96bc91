// Package edgefile reads and writes edge lists as YAML or JSON documents:
//
//	edges:
//	  - source: Library
//	    destination: Cafeteria
//	    distance: 120
//
// The format is picked from the file extension (.yaml, .yml or .json).
package edgefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanshika/campusroute/internal/domain"
)

// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("unsupported edge file format")

// ErrReadOnly is returned when writing edges through a file Source.
var ErrReadOnly = errors.New("edge file source is read-only")

// Document is the on-disk layout of an edge file.
type Document struct {
	Edges []domain.Edge `json:"edges" yaml:"edges"`
}

// Load parses the edge file at path.
func Load(path string) ([]domain.Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc Document
	switch format(path) {
	case "yaml":
		err = yaml.Unmarshal(data, &doc)
	case "json":
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc.Edges, nil
}

// Write serialises edges to path, creating parent directories as needed.
func Write(path string, edges []domain.Edge) error {
	doc := Document{Edges: edges}

	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return ""
	}
}

// Source serves the edges of a file, re-reading it on every ListEdges call.
type Source struct {
	path string
}

// NewSource returns a Source for the file at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// ListEdges loads the file.
func (s *Source) ListEdges(context.Context) ([]domain.Edge, error) {
	return Load(s.path)
}

// UpsertEdge always fails; edge files are edited out of band.
func (s *Source) UpsertEdge(context.Context, domain.Edge) error {
	return ErrReadOnly
}

// Ping checks that the file is present.
func (s *Source) Ping(context.Context) error {
	_, err := os.Stat(s.path)
	return err
}

// Close is a no-op.
func (s *Source) Close(context.Context) error {
	return nil
}
