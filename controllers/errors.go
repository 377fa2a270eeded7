package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/repository"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/storage"
	"github.com/yeremiapane/restaurant-site/utils"
)

// respondFailure maps err to a status code and a localized toast. fallback
// is shown for persistence and unknown failures.
func respondFailure(c *gin.Context, err error, fallback, notFound string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondError(c, http.StatusBadRequest, verr.Message)
		return
	case errors.Is(err, storage.ErrUnsupportedImage):
		utils.RespondError(c, http.StatusBadRequest, services.MsgUnsupportedImage)
		return
	case errors.Is(err, repository.ErrInvalidStatus):
		utils.RespondError(c, http.StatusBadRequest, services.MsgInvalidStatus)
		return
	case errors.Is(err, repository.ErrNotFound) && notFound != "":
		utils.RespondError(c, http.StatusNotFound, notFound)
		return
	}

	utils.ErrorLogger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	if errors.Is(err, storage.ErrUploadFailed) {
		utils.RespondError(c, http.StatusBadGateway, services.MsgUploadFailed)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, fallback)
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}
