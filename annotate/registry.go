package annotate

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/sevigo/semseg/annotate/markdown"
	"github.com/sevigo/semseg/annotate/uax29"
)

// Registry tracks annotators by name and by file extension.
type Registry interface {
	Register(a Annotator) error
	Get(name string) (Annotator, error)
	ForFile(path string) (Annotator, error)
	Names() []string
}

type registry struct {
	annotators map[string]Annotator
	extensions map[string]Annotator
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewRegistry creates an empty annotator registry.
func NewRegistry(logger *slog.Logger) Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &registry{
		annotators: make(map[string]Annotator),
		extensions: make(map[string]Annotator),
		logger:     logger.With("component", "annotator_registry"),
	}
}

func (r *registry) Register(a Annotator) error {
	if a == nil {
		return errors.New("cannot register nil annotator")
	}

	name := a.Name()
	if name == "" {
		return errors.New("annotator must have a non-empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.annotators[name]; exists {
		return fmt.Errorf("annotator with name %q already registered", name)
	}
	r.annotators[name] = a

	for _, ext := range a.Extensions() {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		r.extensions[strings.ToLower(ext)] = a
	}

	r.logger.Debug("Registered annotator", "name", name, "extensions", a.Extensions())
	return nil
}

func (r *registry) Get(name string) (Annotator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.annotators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAnnotatorNotFound, name)
	}
	return a, nil
}

// ForFile picks an annotator by the extension of path.
func (r *registry) ForFile(path string) (Annotator, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, fmt.Errorf("%w for file %s", ErrAnnotatorNotFound, path)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w for extension %s", ErrAnnotatorNotFound, ext)
	}
	return a, nil
}

// Names returns the registered annotator names in sorted order.
func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.annotators))
	for name := range r.annotators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RegisterDefaults returns a registry holding the plain, uax29 and markdown
// annotators.
func RegisterDefaults(logger *slog.Logger) (Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	reg := NewRegistry(logger)

	for _, a := range []Annotator{
		Plain(),
		uax29.New(logger.With("annotator", uax29.Name)),
		markdown.New(logger.With("annotator", markdown.Name)),
	} {
		if err := reg.Register(a); err != nil {
			return reg, fmt.Errorf("failed to register annotator %s: %w", a.Name(), err)
		}
	}

	return reg, nil
}
