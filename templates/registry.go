package templates

import (
	"fmt"

	"github.com/yeremiapane/menu-studio/models"
)

// Renderer draws a canonical menu with a token set. Every renderer accepts
// the same two shapes whatever its layout.
type Renderer interface {
	Render(menu *models.CanonicalMenu, tokens models.TokenSet) Node
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(menu *models.CanonicalMenu, tokens models.TokenSet) Node

func (f RendererFunc) Render(menu *models.CanonicalMenu, tokens models.TokenSet) Node {
	return f(menu, tokens)
}

// PreviewHint describes the thumbnail shown in the template picker.
type PreviewHint struct {
	Thumbnail string `json:"thumbnail"`
	Accent    string `json:"accent"`
	Layout    string `json:"layout"`
}

// Descriptor is a registry entry.
type Descriptor struct {
	ID          string                  `json:"id"`
	Name        models.Localized        `json:"name"`
	Description models.Localized        `json:"description"`
	Preview     PreviewHint             `json:"preview"`
	Buckets     []models.SemanticBucket `json:"buckets,omitempty"`
	Defaults    models.TemplateDefaults `json:"defaults"`
	Renderer    Renderer                `json:"-"`
}

// Registry is a fixed lookup table of templates with a guaranteed default.
type Registry struct {
	byID      map[string]Descriptor
	order     []string
	defaultID string
}

// NewRegistry builds a registry. It panics on a duplicate id, a missing
// renderer or an unknown default, since the table is static.
func NewRegistry(defaultID string, descriptors ...Descriptor) *Registry {
	r := &Registry{
		byID:      make(map[string]Descriptor, len(descriptors)),
		defaultID: defaultID,
	}
	for _, d := range descriptors {
		if _, dup := r.byID[d.ID]; dup {
			panic(fmt.Sprintf("templates: duplicate template id %q", d.ID))
		}
		if d.Renderer == nil {
			panic(fmt.Sprintf("templates: template %q has no renderer", d.ID))
		}
		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	if _, ok := r.byID[defaultID]; !ok {
		panic(fmt.Sprintf("templates: default template %q is not registered", defaultID))
	}
	return r
}

// List returns all descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Get returns the descriptor for id, or the default one when id is unknown.
func (r *Registry) Get(id string) Descriptor {
	if d, ok := r.byID[id]; ok {
		return d
	}
	return r.Default()
}

func (r *Registry) Default() Descriptor {
	return r.byID[r.defaultID]
}

// Has reports whether id is registered (settings screens validate with it).
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Render dispatches to the template's renderer. It is a pure function of its
// inputs apart from decorative nodes.
func (r *Registry) Render(menu *models.CanonicalMenu, templateID string, tokens models.TokenSet) Node {
	d := r.Get(templateID)
	if menu == nil {
		menu = &models.CanonicalMenu{}
	}

	root := d.Renderer.Render(menu, tokens)
	attrs := make(map[string]string, len(root.Attrs)+1)
	for k, v := range root.Attrs {
		attrs[k] = v
	}
	attrs["template"] = d.ID
	root.Attrs = attrs
	return root
}

// Builtin is the process-wide template table.
var Builtin = NewRegistry(ClassicID,
	classicDescriptor(),
	elegantDescriptor(),
	cafeDescriptor(),
)
