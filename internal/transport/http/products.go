package http

import (
	"context"
	"log"
	"net/http"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

// ProductLister is the minimal interface needed to list catalog products.
type ProductLister interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
}

// HandleListProducts returns an HTTP handler for the storefront catalog.
// When featuredOnly is set it serves the featured subset.
func HandleListProducts(svc ProductLister, logger *log.Logger, featuredOnly bool) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var (
			products []domain.Product
			err      error
		)
		if featuredOnly {
			products, err = svc.ListFeatured(r.Context())
		} else {
			products, err = svc.ListActive(r.Context())
		}
		if err != nil {
			logger.Printf("list products failed featured=%t err=%v", featuredOnly, err)
			writeError(w, http.StatusInternalServerError, codeInternalError, "could not list products")
			return
		}

		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			out = append(out, productResponse{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Category:    p.Category,
				Inventory:   p.Inventory,
				Featured:    p.Featured,
			})
		}
		writeSuccess(w, http.StatusOK, "products", out)
	}
}

type productResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Inventory   int    `json:"inventory"`
	Featured    bool   `json:"featured"`
}
