package platforms

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"colloquy/internal/domain"
	"colloquy/internal/domain/models/discussion"
)

//go:embed config/platforms.yaml
var configFiles embed.FS

// Descriptor describes how one platform's records map onto the canonical
// comment shape: which keys may carry each field, and whether content
// arrives as HTML.
type Descriptor struct {
	Source      string   `yaml:"source"`
	Name        string   `yaml:"name"`
	IDKeys      []string `yaml:"id_keys"`
	ParentKeys  []string `yaml:"parent_keys"`
	AuthorKeys  []string `yaml:"author_keys"`
	ContentKeys []string `yaml:"content_keys"`
	TimeKeys    []string `yaml:"time_keys"`
	URLKeys     []string `yaml:"url_keys"`
	ScoreKeys   []string `yaml:"score_keys"`
	HTMLContent bool     `yaml:"html_content"`
}

type registryFile struct {
	Platforms []Descriptor `yaml:"platforms"`
}

// Registry manages platform descriptors loaded from the embedded YAML.
type Registry struct {
	descriptors map[string]*Descriptor
	order       []string
	mu          sync.RWMutex
}

// NewRegistry creates a registry and loads the embedded descriptor file.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/platforms.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read platform config: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal platform config: %w", err)
	}

	r := &Registry{descriptors: make(map[string]*Descriptor, len(file.Platforms))}
	for i := range file.Platforms {
		d := &file.Platforms[i]
		if d.Source == "" {
			return nil, fmt.Errorf("platform descriptor %d has no source tag", i)
		}
		r.descriptors[d.Source] = d
		r.order = append(r.order, d.Source)
	}
	return r, nil
}

// Descriptor returns the descriptor for a source tag.
func (r *Registry) Descriptor(source discussion.SourceType) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[string(source)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPlatform, source)
	}
	return d, nil
}

// Sources returns all known source tags, ordered as defined in the YAML.
func (r *Registry) Sources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
