package taxonomy

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/silkline/catalog/app/api"
	"github.com/silkline/catalog/models"
)

type TaxonResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TaxonomyProvider interface {
	GetAll(ctx context.Context, kind models.Kind) ([]models.Taxon, error)
}

type TaxonomyHandler struct {
	repo TaxonomyProvider
	log  zerolog.Logger
}

func NewTaxonomyHandler(r TaxonomyProvider, log zerolog.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{repo: r, log: log}
}

// HandleGetAll returns a handler listing every entry of one dimension.
func (h *TaxonomyHandler) HandleGetAll(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taxa, err := h.repo.GetAll(r.Context(), kind)
		if err != nil {
			h.log.Error().Err(err).Str("taxonomy", string(kind)).Msg("listing taxonomy failed")
			api.ErrorResponse(w, http.StatusInternalServerError, "failed to fetch "+string(kind))
			return
		}

		response := make([]TaxonResponse, len(taxa))
		for i, t := range taxa {
			response[i] = TaxonResponse{
				ID:   t.ID,
				Name: t.Name,
			}
		}

		api.OKResponse(w, response)
	}
}
