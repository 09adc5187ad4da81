package handler

import (
	"fmt"

	"github.com/lojinha/catalog-api/internal/core/domain"
	"github.com/lojinha/catalog-api/internal/core/ports"
)

// --- Request → Service input ---

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{Name: req.Name, Price: req.Price}
}

// --- Service result → HTTP response ---

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		PriceFloat: p.PriceFloat(),
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}
}

func toProductDetailResponse(d *ports.ProductDetail) productResponse {
	resp := toProductResponse(d.Product)
	resp.Categories = toCategoryResponses(d.Categories)
	return resp
}

func toCategoryResponses(categories []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = categoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Slug:        c.Slug,
		}
	}
	return out
}

func toPhotoResponses(photos []*domain.ProductPhoto) []photoResponse {
	out := make([]photoResponse, len(photos))
	for i, p := range photos {
		out[i] = photoResponse{
			ID:        p.ID,
			ProductID: p.ProductID,
			Photo:     p.Photo,
			CreatedAt: p.CreatedAt.UTC(),
		}
	}
	return out
}

func toListResponse(page *ports.ProductPage, basePath string) listProductsResponse {
	items := make([]productResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = toProductResponse(p)
	}

	from, to := 0, 0
	if len(page.Items) > 0 {
		from = (page.Page-1)*page.Limit + 1
		to = from + len(page.Items) - 1
	}

	lastPage := page.TotalPages
	if lastPage < 1 {
		lastPage = 1
	}

	links := paginationLinks{
		First: pageLink(basePath, 1),
		Last:  pageLink(basePath, lastPage),
	}
	if page.Page > 1 {
		prev := pageLink(basePath, page.Page-1)
		links.Prev = &prev
	}
	if page.Page < lastPage {
		next := pageLink(basePath, page.Page+1)
		links.Next = &next
	}

	return listProductsResponse{
		Data: items,
		Meta: paginationMeta{
			CurrentPage: page.Page,
			From:        from,
			To:          to,
			PerPage:     page.Limit,
			LastPage:    lastPage,
			Total:       page.Total,
		},
		Links: links,
	}
}

func pageLink(basePath string, page int) string {
	return fmt.Sprintf("%s?page=%d", basePath, page)
}
