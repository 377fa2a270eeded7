package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/metrics"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

// FeaturedItems is how many dishes the landing page shows.
const FeaturedItems = 3

type menuItemView struct {
	models.MenuItem
	PriceLabel string `json:"price_label"`
}

func viewItems(items []models.MenuItem) []menuItemView {
	views := make([]menuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, menuItemView{MenuItem: item, PriceLabel: utils.FormatPriceDH(item.Price)})
	}
	return views
}

type PublicController struct {
	Menu         *services.MenuService
	Reservations *services.ReservationService
	Metrics      *metrics.Metrics
}

func NewPublicController(menu *services.MenuService, reservations *services.ReservationService, m *metrics.Metrics) *PublicController {
	return &PublicController{Menu: menu, Reservations: reservations, Metrics: m}
}

// Landing -> the featured available dishes
func (pc *PublicController) Landing(c *gin.Context) {
	items, err := pc.Menu.ListAvailable(c.Request.Context(), FeaturedItems)
	if err != nil {
		respondFailure(c, err, services.MsgGenericError, "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, services.MsgMenuList, gin.H{
		"featured": viewItems(items),
	})
}

// GetMenu -> every available dish, optionally one category
// Endpoint: GET /api/menu?category=<category>
func (pc *PublicController) GetMenu(c *gin.Context) {
	items, err := pc.Menu.ListAvailable(c.Request.Context(), 0)
	if err != nil {
		respondFailure(c, err, services.MsgGenericError, "")
		return
	}

	selected := c.DefaultQuery("category", services.AllCategories)
	utils.RespondJSON(c, http.StatusOK, services.MsgMenuList, gin.H{
		"categories": services.CategoryTabs(items),
		"selected":   selected,
		"items":      viewItems(services.FilterByCategory(items, selected)),
	})
}

// CreateReservation -> public booking form, always stored as pending
func (pc *PublicController) CreateReservation(c *gin.Context) {
	var form services.ReservationForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.MsgReservationFailed)
		return
	}

	reservation, err := pc.Reservations.Create(c.Request.Context(), form)
	if err != nil {
		respondFailure(c, err, services.MsgReservationFailed, "")
		return
	}
	if pc.Metrics != nil {
		pc.Metrics.ReservationsCreated.Inc()
	}

	utils.RespondRedirect(c, http.StatusCreated, services.MsgReservationCreated, "/", reservation)
}
