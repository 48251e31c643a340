package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-studio/templates"
	"github.com/yeremiapane/menu-studio/utils"
)

type TemplateController struct {
	Registry *templates.Registry
}

func NewTemplateController(registry *templates.Registry) *TemplateController {
	if registry == nil {
		registry = templates.Builtin
	}
	return &TemplateController{Registry: registry}
}

// GetAllTemplates lists the template picker entries.
func (tc *TemplateController) GetAllTemplates(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of templates", gin.H{
		"default":   tc.Registry.Default().ID,
		"templates": tc.Registry.List(),
	})
}

// GetTemplateByID never fails: an unknown id answers with the default
// template, the same one a render would use.
func (tc *TemplateController) GetTemplateByID(c *gin.Context) {
	id := c.Param("template_id")
	d := tc.Registry.Get(id)
	message := "Template detail"
	if !tc.Registry.Has(id) {
		message = "Unknown template, using default"
	}
	utils.RespondJSON(c, http.StatusOK, message, d)
}
