package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/repository"
	"github.com/yeremiapane/restaurant-site/storage"
)

type fakeMenuStore struct {
	created []models.MenuFields
	updated []models.MenuFields
	deleted []string
	err     error
}

func (f *fakeMenuStore) List(ctx context.Context) ([]models.MenuItem, error) { return nil, nil }

func (f *fakeMenuStore) ListAvailable(ctx context.Context, limit int) ([]models.MenuItem, error) {
	return nil, nil
}

func (f *fakeMenuStore) Create(ctx context.Context, fields models.MenuFields) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, fields)
	return &models.MenuItem{ID: "item-1", Name: fields.Name, ImageURL: fields.ImageURL}, nil
}

func (f *fakeMenuStore) Update(ctx context.Context, id string, fields models.MenuFields) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, fields)
	return nil
}

func (f *fakeMenuStore) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeImages struct {
	uploads []string
	err     error
}

func (f *fakeImages) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, filename)
	return "http://localhost:8080/storage/menu-images/items/" + filename, nil
}

func tajineForm() MenuForm {
	return MenuForm{
		Name:     "Tajine de poulet",
		Price:    "85.50",
		Category: string(models.CategoryPlats),
	}
}

func picture() *ImageFile {
	return &ImageFile{Filename: "tajine.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpeg")}
}

func TestMenuFormFields(t *testing.T) {
	fields, err := tajineForm().Fields()
	require.NoError(t, err)
	assert.Equal(t, "Tajine de poulet", fields.Name)
	assert.Equal(t, 85.5, fields.Price)
	assert.Equal(t, models.CategoryPlats, fields.Category)
	assert.True(t, fields.IsAvailable)
	assert.Nil(t, fields.ImageURL)
}

func TestMenuFormAvailability(t *testing.T) {
	for input, want := range map[string]bool{"": true, "on": true, "true": true, "false": false, "0": false} {
		form := tajineForm()
		form.IsAvailable = FormValue(input)
		fields, err := form.Fields()
		require.NoError(t, err, input)
		assert.Equal(t, want, fields.IsAvailable, input)
	}

	form := tajineForm()
	form.IsAvailable = "maybe"
	_, err := form.Fields()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMenuFormRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MenuForm)
		message string
	}{
		{"missing name", func(f *MenuForm) { f.Name = "  " }, MsgNameRequired},
		{"missing price", func(f *MenuForm) { f.Price = "" }, MsgInvalidPrice},
		{"text price", func(f *MenuForm) { f.Price = "cher" }, MsgInvalidPrice},
		{"negative price", func(f *MenuForm) { f.Price = "-3" }, MsgInvalidPrice},
		{"nan price", func(f *MenuForm) { f.Price = "NaN" }, MsgInvalidPrice},
		{"unknown category", func(f *MenuForm) { f.Category = "Pizza" }, MsgInvalidCategory},
		{"bad url", func(f *MenuForm) { f.ImageURL = "not a url" }, MsgInvalidImageURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := tajineForm()
			tt.mutate(&form)
			_, err := form.Fields()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestCreateWithTypedURL(t *testing.T) {
	store, images := &fakeMenuStore{}, &fakeImages{}
	svc := NewMenuService(store, images)

	form := tajineForm()
	form.ImageURL = "https://cdn.example.com/tajine.jpg"
	_, err := svc.Create(context.Background(), form, nil)
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.Equal(t, "https://cdn.example.com/tajine.jpg", *store.created[0].ImageURL)
	assert.Empty(t, images.uploads)
}

func TestCreateFileWinsOverURL(t *testing.T) {
	store, images := &fakeMenuStore{}, &fakeImages{}
	svc := NewMenuService(store, images)

	form := tajineForm()
	form.ImageURL = "not even a url"
	item, err := svc.Create(context.Background(), form, picture())
	require.NoError(t, err)

	assert.Equal(t, []string{"tajine.jpg"}, images.uploads)
	require.Len(t, store.created, 1)
	assert.Equal(t, "http://localhost:8080/storage/menu-images/items/tajine.jpg", *store.created[0].ImageURL)
	assert.Equal(t, *store.created[0].ImageURL, *item.ImageURL)
}

func TestUploadFailureWritesNothing(t *testing.T) {
	store := &fakeMenuStore{}
	images := &fakeImages{err: fmt.Errorf("%w: bucket offline", storage.ErrUploadFailed)}
	svc := NewMenuService(store, images)
	ctx := context.Background()

	_, err := svc.Create(ctx, tajineForm(), picture())
	assert.ErrorIs(t, err, storage.ErrUploadFailed)
	assert.Empty(t, store.created)

	err = svc.Update(ctx, "item-1", tajineForm(), picture())
	assert.ErrorIs(t, err, storage.ErrUploadFailed)
	assert.Empty(t, store.updated)
}

func TestValidationFailureSkipsUpload(t *testing.T) {
	store, images := &fakeMenuStore{}, &fakeImages{}
	svc := NewMenuService(store, images)

	form := tajineForm()
	form.Price = "-1"
	_, err := svc.Create(context.Background(), form, picture())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, images.uploads)
	assert.Empty(t, store.created)
}

func TestUpdateClearsImage(t *testing.T) {
	store := &fakeMenuStore{}
	svc := NewMenuService(store, &fakeImages{})

	require.NoError(t, svc.Update(context.Background(), "item-1", tajineForm(), nil))
	require.Len(t, store.updated, 1)
	assert.Nil(t, store.updated[0].ImageURL)
}

func TestUpdatePassesNotFound(t *testing.T) {
	store := &fakeMenuStore{err: fmt.Errorf("%w: menu item x", repository.ErrNotFound)}
	svc := NewMenuService(store, &fakeImages{})

	err := svc.Update(context.Background(), "x", tajineForm(), picture())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	store := &fakeMenuStore{}
	svc := NewMenuService(store, &fakeImages{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, "item-1", false), ErrConfirmationRequired)
	assert.Empty(t, store.deleted)

	require.NoError(t, svc.Delete(ctx, "item-1", true))
	assert.Equal(t, []string{"item-1"}, store.deleted)

	store.err = errors.New("boom")
	assert.Error(t, svc.Delete(ctx, "item-2", true))
}

func TestCategoryTabsAndFilter(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Thé", Category: models.CategoryBoissons},
		{Name: "Harira", Category: models.CategoryEntrees},
		{Name: "Zaalouk", Category: models.CategoryEntrees},
		{Name: "Tajine", Category: models.CategoryPlats},
	}

	assert.Equal(t, []string{"Tous", "Boissons", "Entrées", "Plats Principaux"}, CategoryTabs(items))
	assert.Len(t, FilterByCategory(items, ""), 4)
	assert.Len(t, FilterByCategory(items, AllCategories), 4)
	assert.Len(t, FilterByCategory(items, "Entrées"), 2)
	assert.Empty(t, FilterByCategory(items, "Desserts"))
	assert.Equal(t, []string{"Tous"}, CategoryTabs(nil))
}
