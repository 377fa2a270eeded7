package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

func (rc *ReservationController) respondWithList(c *gin.Context, message string) {
	reservations, err := rc.Reservations.List(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("reservation refresh after write failed")
		utils.RespondJSON(c, http.StatusOK, message, nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, message, reservations)
}

// GetAllReservations -> newest date first
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Reservations.List(c.Request.Context())
	if err != nil {
		respondFailure(c, err, services.MsgGenericError, "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, services.MsgReservationList, reservations)
}

// UpdateReservationStatus -> confirmed or cancelled
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" form:"status" binding:"required"`
	}
	if err := c.ShouldBind(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.MsgInvalidStatus)
		return
	}

	if err := rc.Reservations.SetStatus(c.Request.Context(), c.Param("reservation_id"), body.Status); err != nil {
		respondFailure(c, err, services.MsgStatusUpdateFailed, services.MsgReservationNotFound)
		return
	}
	rc.respondWithList(c, services.MsgStatusUpdated)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	err := rc.Reservations.Delete(c.Request.Context(), c.Param("reservation_id"), confirmed(c))
	if errors.Is(err, services.ErrConfirmationRequired) {
		utils.RespondJSON(c, http.StatusPreconditionRequired, services.MsgConfirmDeleteReservation, gin.H{"confirm_required": true})
		return
	}
	if err != nil {
		respondFailure(c, err, services.MsgReservationDeleteFailed, services.MsgReservationNotFound)
		return
	}
	rc.respondWithList(c, services.MsgReservationDeleted)
}
