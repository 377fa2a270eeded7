package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/metrics"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

// MaxImageSize caps a menu picture upload.
const MaxImageSize = 10 << 20

type MenuController struct {
	Menu    *services.MenuService
	Metrics *metrics.Metrics
}

func NewMenuController(menu *services.MenuService, m *metrics.Metrics) *MenuController {
	return &MenuController{Menu: menu, Metrics: m}
}

func (mc *MenuController) observe(op string, err error) {
	if mc.Metrics != nil {
		mc.Metrics.ObserveMenuMutation(op, err)
	}
}

// respondWithList re-reads the whole menu after a successful write so the
// panel only ever shows committed rows.
func (mc *MenuController) respondWithList(c *gin.Context, code int, message string) {
	items, err := mc.Menu.List(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("menu refresh after write failed")
		utils.RespondJSON(c, code, message, nil)
		return
	}
	utils.RespondJSON(c, code, message, viewItems(items))
}

// GetAllMenus -> admin list, available or not
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	items, err := mc.Menu.List(c.Request.Context())
	if err != nil {
		respondFailure(c, err, services.MsgGenericError, "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, services.MsgMenuList, viewItems(items))
}

// imageFromRequest returns the picture picked in the form, if any. The caller
// must call the returned close func.
func imageFromRequest(c *gin.Context) (*services.ImageFile, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		return nil, noop, nil
	}

	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, &services.ValidationError{Field: "image", Message: services.MsgUploadFailed}
	}
	if fh.Size > MaxImageSize {
		return nil, noop, &services.ValidationError{Field: "image", Message: services.MsgImageTooLarge}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, &services.ValidationError{Field: "image", Message: services.MsgUploadFailed}
	}
	image := &services.ImageFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}
	return image, func() { f.Close() }, nil
}

func (mc *MenuController) bind(c *gin.Context) (services.MenuForm, *services.ImageFile, func(), bool) {
	var form services.MenuForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.MsgGenericError)
		return form, nil, nil, false
	}
	image, closeImage, err := imageFromRequest(c)
	if err != nil {
		respondFailure(c, err, services.MsgUploadFailed, "")
		return form, nil, nil, false
	}
	return form, image, closeImage, true
}

// CreateMenu accepts the item fields and an optional "image" file. A file
// wins over the image_url field.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	form, image, closeImage, ok := mc.bind(c)
	if !ok {
		return
	}
	defer closeImage()

	_, err := mc.Menu.Create(c.Request.Context(), form, image)
	mc.observe("create", err)
	if err != nil {
		respondFailure(c, err, services.MsgItemCreateFailed, "")
		return
	}
	mc.respondWithList(c, http.StatusCreated, services.MsgItemCreated)
}

func (mc *MenuController) UpdateMenu(c *gin.Context) {
	form, image, closeImage, ok := mc.bind(c)
	if !ok {
		return
	}
	defer closeImage()

	err := mc.Menu.Update(c.Request.Context(), c.Param("menu_id"), form, image)
	mc.observe("update", err)
	if err != nil {
		respondFailure(c, err, services.MsgItemUpdateFailed, services.MsgItemNotFound)
		return
	}
	mc.respondWithList(c, http.StatusOK, services.MsgItemUpdated)
}

// DeleteMenu needs ?confirm=true, otherwise it asks for confirmation.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	err := mc.Menu.Delete(c.Request.Context(), c.Param("menu_id"), confirmed(c))
	if errors.Is(err, services.ErrConfirmationRequired) {
		utils.RespondJSON(c, http.StatusPreconditionRequired, services.MsgConfirmDeleteItem, gin.H{"confirm_required": true})
		return
	}
	mc.observe("delete", err)
	if err != nil {
		respondFailure(c, err, services.MsgItemDeleteFailed, services.MsgItemNotFound)
		return
	}
	mc.respondWithList(c, http.StatusOK, services.MsgItemDeleted)
}
