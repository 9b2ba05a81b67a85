package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/silkline/catalog/app/api"
	"github.com/silkline/catalog/models"
)

// Product is the JSON shape of a catalog item. Decimal amounts are written
// as exact JSON numbers.
type Product struct {
	ID            uint        `json:"id"`
	Name          string      `json:"name"`
	CategoryID    *uint       `json:"category_id"`
	SizeID        *uint       `json:"size_id"`
	ColorID       *uint       `json:"color_id"`
	BrandID       *uint       `json:"brand_id"`
	MaterialID    *uint       `json:"material_id"`
	StyleID       *uint       `json:"style_id"`
	BrasTypeID    *uint       `json:"bras_type_id"`
	PantiesTypeID *uint       `json:"panties_type_id"`
	Count         int         `json:"count"`
	Rating        int         `json:"rating"`
	Discount      json.Number `json:"discount"`
	PriceRaw      json.Number `json:"price_raw"`
	Price         json.Number `json:"price"`
}

func newProduct(p *models.Product) Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		SizeID:        p.SizeID,
		ColorID:       p.ColorID,
		BrandID:       p.BrandID,
		MaterialID:    p.MaterialID,
		StyleID:       p.StyleID,
		BrasTypeID:    p.BrasTypeID,
		PantiesTypeID: p.PantiesTypeID,
		Count:         p.Count,
		Rating:        p.Rating,
		Discount:      json.Number(p.Discount.String()),
		PriceRaw:      json.Number(p.PriceRaw.String()),
		Price:         json.Number(p.Price().String()),
	}
}

type ProductProvider interface {
	ListProducts(ctx context.Context, offset, limit int, filters models.ProductFilters) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
}

type CatalogHandler struct {
	repo ProductProvider
	log  zerolog.Logger
}

func NewCatalogHandler(r ProductProvider, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
		log:  log,
	}
}

// HandleGet serves the filtered product listing.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	params, err := ParseFilterParams(r.URL.Query())
	if err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.repo.ListProducts(r.Context(), params.Offset, params.Limit, params.Filters())
	if err != nil {
		h.log.Error().Err(err).Msg("listing products failed")
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	products := make([]Product, len(res))
	for i := range res {
		products[i] = newProduct(&res[i])
	}

	api.OKResponse(w, products)
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.repo.GetByID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.ErrorResponse(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error().Err(err).Uint64("product_id", id).Msg("loading product failed")
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	api.OKResponse(w, newProduct(product))
}
