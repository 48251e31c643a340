package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/services"
	"github.com/yeremiapane/menu-studio/utils"
)

type RenderController struct {
	Service *services.RenderService
}

func NewRenderController(service *services.RenderService) *RenderController {
	return &RenderController{Service: service}
}

// RenderMenu -> GET /menus/:slug/render?lang=ar&template=cafe
func (rc *RenderController) RenderMenu(c *gin.Context) {
	result, err := rc.Service.Render(c.Request.Context(), services.RenderRequest{
		Slug:       c.Param("slug"),
		Locale:     c.Query("lang"),
		TemplateID: c.Query("template"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu rendered", result)
}

type previewBody struct {
	Locale   string                    `json:"locale"`
	Template string                    `json:"template"`
	Draft    models.CustomizationInput `json:"draft"`
}

// PreviewMenu renders unsaved customization values. Nothing is stored.
func (rc *RenderController) PreviewMenu(c *gin.Context) {
	var body previewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := rc.Service.Preview(c.Request.Context(), services.PreviewRequest{
		Session:    sessionFor(c),
		Slug:       c.Param("slug"),
		Locale:     body.Locale,
		TemplateID: body.Template,
		Draft:      body.Draft,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu preview", result)
}
