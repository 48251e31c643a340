package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/templates"
	"github.com/yeremiapane/menu-studio/utils"
)

const (
	ModeLive    = "live"
	ModePreview = "preview"
)

type RenderRequest struct {
	Slug       string
	Locale     string
	TemplateID string
}

// PreviewRequest renders unsaved draft values. Session scopes stale-load
// detection to one editor.
type PreviewRequest struct {
	Session    string
	Slug       string
	Locale     string
	TemplateID string
	Draft      models.CustomizationInput
}

type RenderResult struct {
	Template string                `json:"template"`
	Mode     string                `json:"mode"`
	Tokens   models.TokenSet       `json:"tokens"`
	Model    *models.CanonicalMenu `json:"model"`
	Tree     templates.Node        `json:"tree"`
}

type RenderService struct {
	Loader        *SnapshotLoader
	Registry      *templates.Registry
	DefaultLocale string
}

func NewRenderService(loader *SnapshotLoader, registry *templates.Registry, defaultLocale string) *RenderService {
	if registry == nil {
		registry = templates.Builtin
	}
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	return &RenderService{Loader: loader, Registry: registry, DefaultLocale: defaultLocale}
}

// Render draws the persisted menu with its persisted customization.
func (s *RenderService) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	snap, err := s.Loader.Load(ctx, "", req.Slug)
	if err != nil {
		return nil, err
	}
	return s.RenderSnapshot(snap, req.Locale, req.TemplateID, snap.Customization, ModeLive)
}

// Preview draws the persisted menu with draft values laid over the
// persisted customization. Nothing is written.
func (s *RenderService) Preview(ctx context.Context, req PreviewRequest) (*RenderResult, error) {
	snap, err := s.Loader.Load(ctx, req.Session, req.Slug)
	if err != nil {
		return nil, err
	}
	draft := ApplyDraft(snap.Customization, req.Draft)
	return s.RenderSnapshot(snap, req.Locale, req.TemplateID, &draft, ModePreview)
}

// RenderSnapshot runs build, overlay and dispatch on an already loaded
// snapshot. Live and preview renders differ only in custom.
func (s *RenderService) RenderSnapshot(snap *models.Snapshot, locale, templateID string, custom *models.Customization, mode string) (*RenderResult, error) {
	start := time.Now()
	if snap == nil || snap.Menu == nil {
		return nil, ErrMenuNotFound
	}

	id := strings.TrimSpace(templateID)
	if id == "" {
		id = snap.Menu.Theme
	}
	d := s.Registry.Get(id)

	model, err := BuildCanonicalMenu(snap, BuildOptions{
		Locale:         normalizeLocale(locale),
		FallbackLocale: s.DefaultLocale,
		Scheme:         d.Buckets,
		Placeholder:    d.Defaults.Placeholder,
	})
	if err != nil {
		return nil, err
	}

	tokens := ResolveTokens(d.Defaults, custom, model.Locale, s.DefaultLocale)
	tree := s.Registry.Render(model, d.ID, tokens)

	rendersTotal.WithLabelValues(d.ID, mode).Inc()
	if model.Fallback {
		renderFallbackTotal.WithLabelValues(d.ID).Inc()
		utils.Info(logrus.Fields{"slug": model.Menu.Slug, "template": d.ID, "buckets": len(model.Buckets)}).
			Info("no semantic match, items split evenly across template sections")
	}
	renderDuration.WithLabelValues(d.ID).Observe(time.Since(start).Seconds())

	return &RenderResult{Template: d.ID, Mode: mode, Tokens: tokens, Model: model, Tree: tree}, nil
}

// normalizeLocale keeps the primary subtag: "ar-SA" -> "ar".
func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return locale
}
