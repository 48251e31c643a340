package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/services"
	"github.com/yeremiapane/menu-studio/templates"
	"github.com/yeremiapane/menu-studio/utils"
)

// ThemeStore persists a menu's selected template.
type ThemeStore interface {
	SetTheme(ctx context.Context, slug, templateID string) (*models.Menu, error)
}

type MenuController struct {
	Repo     services.SnapshotRepository
	Themes   ThemeStore
	Cache    services.SnapshotInvalidator
	Registry *templates.Registry
}

func NewMenuController(repo services.SnapshotRepository, themes ThemeStore, cache services.SnapshotInvalidator, registry *templates.Registry) *MenuController {
	if registry == nil {
		registry = templates.Builtin
	}
	return &MenuController{Repo: repo, Themes: themes, Cache: cache, Registry: registry}
}

// GetSnapshot returns the raw menu payload as stored.
func (mc *MenuController) GetSnapshot(c *gin.Context) {
	snap, err := mc.Repo.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu snapshot", snap)
}

// ImportSnapshot replaces a menu's items, categories and branches. The
// caller becomes the owner of a new menu; an existing one must be theirs.
func (mc *MenuController) ImportSnapshot(c *gin.Context) {
	var snap models.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if snap.Menu != nil {
		userID, _ := c.Get("userID")
		snap.Menu.OwnerID, _ = userID.(uint)
	}

	menu, err := mc.Repo.ImportSnapshot(c.Request.Context(), &snap)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu snapshot imported", menu)
}

// UpdateTemplate switches the template a menu renders with.
func (mc *MenuController) UpdateTemplate(c *gin.Context) {
	var req struct {
		Template string `json:"template" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id := strings.TrimSpace(req.Template)
	if !mc.Registry.Has(id) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown template: "+id))
		return
	}

	slug := c.Param("slug")
	menu, err := mc.Themes.SetTheme(c.Request.Context(), slug, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if mc.Cache != nil {
		mc.Cache.Invalidate(c.Request.Context(), slug)
	}
	utils.RespondJSON(c, http.StatusOK, "Template updated", menu)
}
