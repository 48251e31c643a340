package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/services"
	"github.com/yeremiapane/menu-studio/utils"
)

type CustomizationController struct {
	Service *services.CustomizationService
}

func NewCustomizationController(service *services.CustomizationService) *CustomizationController {
	return &CustomizationController{Service: service}
}

func (cc *CustomizationController) GetCustomization(c *gin.Context) {
	custom, err := cc.Service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customization", custom)
}

// SaveCustomization replaces the stored record with the request body.
func (cc *CustomizationController) SaveCustomization(c *gin.Context) {
	var input models.CustomizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	custom, err := cc.Service.Save(c.Request.Context(), c.Param("slug"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customization saved", custom)
}

// ResetCustomization kembali ke tampilan default template.
func (cc *CustomizationController) ResetCustomization(c *gin.Context) {
	custom, err := cc.Service.Reset(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customization reset", custom)
}
