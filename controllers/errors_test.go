package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/repository"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/storage"
	"github.com/yeremiapane/restaurant-site/utils"
)

func TestRespondFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", &services.ValidationError{Field: "Price", Message: services.MsgInvalidPrice}, http.StatusBadRequest, services.MsgInvalidPrice},
		{"unsupported image", fmt.Errorf("%w: %w", storage.ErrUploadFailed, storage.ErrUnsupportedImage), http.StatusBadRequest, services.MsgUnsupportedImage},
		{"upload", fmt.Errorf("%w: disk full", storage.ErrUploadFailed), http.StatusBadGateway, services.MsgUploadFailed},
		{"invalid status", fmt.Errorf("%w: %q", repository.ErrInvalidStatus, "pending"), http.StatusBadRequest, services.MsgInvalidStatus},
		{"not found", fmt.Errorf("%w: menu item x", repository.ErrNotFound), http.StatusNotFound, services.MsgItemNotFound},
		{"persistence", fmt.Errorf("%w: locked", repository.ErrPersistence), http.StatusInternalServerError, services.MsgItemUpdateFailed},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, services.MsgItemUpdateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPut, "/api/admin/menu/x", nil)

			respondFailure(c, tt.err, services.MsgItemUpdateFailed, services.MsgItemNotFound)

			assert.Equal(t, tt.code, w.Code)
			var resp utils.JSONResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Status)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestConfirmed(t *testing.T) {
	for query, want := range map[string]bool{"": false, "?confirm=true": true, "?confirm=1": false, "?confirm=false": false} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/admin/menu/x"+query, nil)
		assert.Equal(t, want, confirmed(c), query)
	}
}

func TestViewItemsAddsPriceLabel(t *testing.T) {
	views := viewItems([]models.MenuItem{{Name: "Pastilla", Price: 1250.5}})
	require.Len(t, views, 1)
	assert.Equal(t, "1 250,50 DH", views[0].PriceLabel)
	assert.Equal(t, "Pastilla", views[0].Name)

	assert.NotNil(t, viewItems(nil))
}
