package services

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/utils"
)

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	ListAvailable(ctx context.Context, limit int) ([]models.MenuItem, error)
	Create(ctx context.Context, f models.MenuFields) (*models.MenuItem, error)
	Update(ctx context.Context, id string, f models.MenuFields) error
	Delete(ctx context.Context, id string) error
}

type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// MenuForm is the admin item form as submitted. Price and availability arrive
// as text, or as a JSON number and boolean.
type MenuForm struct {
	Name        string    `form:"name" json:"name" validate:"required"`
	Description string    `form:"description" json:"description"`
	Price       FormValue `form:"price" json:"price" validate:"required"`
	Category    string    `form:"category" json:"category" validate:"required"`
	ImageURL    string    `form:"image_url" json:"image_url" validate:"omitempty,url"`
	IsAvailable FormValue `form:"is_available" json:"is_available"`
}

var menuFormMessages = map[string]string{
	"Name":     MsgNameRequired,
	"Price":    MsgInvalidPrice,
	"Category": MsgInvalidCategory,
	"ImageURL": MsgInvalidImageURL,
}

// ImageFile is a picture picked in the item form.
type ImageFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Fields validates the form and converts it to storable fields. An empty
// image URL becomes nil and an empty availability means available.
func (f MenuForm) Fields() (models.MenuFields, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Price = FormValue(strings.TrimSpace(f.Price.String()))
	f.ImageURL = strings.TrimSpace(f.ImageURL)

	if err := checkStruct(f, menuFormMessages); err != nil {
		return models.MenuFields{}, err
	}

	price, err := strconv.ParseFloat(f.Price.String(), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return models.MenuFields{}, invalid("Price", MsgInvalidPrice)
	}

	category := models.Category(f.Category)
	if !category.Valid() {
		return models.MenuFields{}, invalid("Category", MsgInvalidCategory)
	}

	available := true
	if v := strings.TrimSpace(f.IsAvailable.String()); v != "" {
		if v == "on" {
			v = "true"
		}
		available, err = strconv.ParseBool(v)
		if err != nil {
			return models.MenuFields{}, invalid("IsAvailable", MsgInvalidAvailable)
		}
	}

	fields := models.MenuFields{
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Category:    category,
		IsAvailable: available,
	}
	if f.ImageURL != "" {
		url := f.ImageURL
		fields.ImageURL = &url
	}
	return fields, nil
}

type MenuService struct {
	items  MenuStore
	images ImageStore
}

func NewMenuService(items MenuStore, images ImageStore) *MenuService {
	return &MenuService{items: items, images: images}
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.items.List(ctx)
}

func (s *MenuService) ListAvailable(ctx context.Context, limit int) ([]models.MenuItem, error) {
	return s.items.ListAvailable(ctx, limit)
}

// prepare validates the form and, when a file was picked, uploads it. The
// file replaces whatever URL was typed. An upload failure stops here, before
// anything is written to menu_items.
func (s *MenuService) prepare(ctx context.Context, form MenuForm, image *ImageFile) (models.MenuFields, error) {
	if image != nil {
		form.ImageURL = ""
	}

	fields, err := form.Fields()
	if err != nil {
		return models.MenuFields{}, err
	}

	if image != nil {
		url, err := s.images.Upload(ctx, image.Filename, image.ContentType, image.Body)
		if err != nil {
			return models.MenuFields{}, err
		}
		fields.ImageURL = &url
	}
	return fields, nil
}

func (s *MenuService) Create(ctx context.Context, form MenuForm, image *ImageFile) (*models.MenuItem, error) {
	fields, err := s.prepare(ctx, form, image)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, fields)
	if err != nil {
		logOrphanedUpload(image, fields, err)
		return nil, err
	}
	utils.InfoLogger.WithField("menu_item_id", item.ID).Info("menu item created")
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, form MenuForm, image *ImageFile) error {
	fields, err := s.prepare(ctx, form, image)
	if err != nil {
		return err
	}

	if err := s.items.Update(ctx, id, fields); err != nil {
		logOrphanedUpload(image, fields, err)
		return err
	}
	utils.InfoLogger.WithField("menu_item_id", id).Info("menu item updated")
	return nil
}

// Delete removes an item once the admin has confirmed.
func (s *MenuService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	utils.InfoLogger.WithField("menu_item_id", id).Info("menu item deleted")
	return nil
}

// FilterByCategory keeps the items of one category. "Tous" or empty keeps all.
func FilterByCategory(items []models.MenuItem, category string) []models.MenuItem {
	if category == "" || category == AllCategories {
		return items
	}
	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if string(item.Category) == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// AllCategories is the label of the unfiltered menu tab.
const AllCategories = "Tous"

// CategoryTabs lists "Tous" followed by each category present, in item order.
func CategoryTabs(items []models.MenuItem) []string {
	tabs := []string{AllCategories}
	seen := make(map[models.Category]bool)
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			tabs = append(tabs, string(item.Category))
		}
	}
	return tabs
}

// The uploaded object is left in the bucket when the row write fails.
func logOrphanedUpload(image *ImageFile, fields models.MenuFields, err error) {
	if image == nil || fields.ImageURL == nil {
		return
	}
	utils.ErrorLogger.WithError(err).WithField("image_url", *fields.ImageURL).Error("menu item write failed after upload, object left in bucket")
}
