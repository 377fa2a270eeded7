package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/middlewares"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type AdminController struct{}

func NewAdminController() *AdminController {
	return &AdminController{}
}

// GetAccess answers the admin panel's mount-time check. RequireAdmin has
// already turned away everyone else.
func (ac *AdminController) GetAccess(c *gin.Context) {
	decision, ok := middlewares.AccessDecision(c)
	if !ok || decision.Verdict != services.Granted {
		utils.RespondRedirect(c, http.StatusUnauthorized, services.MsgLoginRequired, "/auth", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, services.MsgAccessGranted, gin.H{
		"verdict": decision.Verdict.String(),
		"session": decision.Session,
	})
}
