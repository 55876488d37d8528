package model

import (
	"encoding/json"
	"time"

	"github.com/luckyspin-lab/backend/internal/entity"
)

// Page is the tenant summary returned by list and create. The access token is
// write-only and never round-trips through this shape.
type Page struct {
	ID          string    `json:"id"`
	ShopName    string    `json:"shop_name"`
	IsActive    bool      `json:"is_active"`
	TotalSpins  int64     `json:"totalSpins"`
	TotalPrizes int64     `json:"totalPrizes"`
	TotalUsers  int64     `json:"totalUsers"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GetPagesRequest struct{}

type GetPagesResponse struct {
	Pages []Page `json:"pages"`
}

type GetPageRequest struct {
	ID string `json:"id"`
}

// GetPageResponse carries the tenant with its config keys flattened to the
// top level (shop_patterns and prizes appear as siblings of shop_name), the
// shape the dashboard expects.
type GetPageResponse map[string]any

type CreatePageRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShopName    string `json:"shop_name"`
	AccessToken string `json:"access_token"`
}

type CreatePageResponse Page

// UpdatePageRequest is an arbitrary partial tenant/config shape. The whole
// body is kept as a bag; the id comes from the URL.
type UpdatePageRequest struct {
	ID    string     `json:"id"`
	Patch entity.Map `json:"-"`
}

func (r *UpdatePageRequest) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.Patch)
}

type UpdatePageResponse GetPageResponse

type UpdatePageTokenRequest struct {
	ID          string `json:"id"`
	AccessToken string `json:"access_token"`
}

type UpdatePageTokenResponse struct {
	Success bool `json:"success"`
}

type DeletePageRequest struct {
	ID string `json:"id"`
}

type DeletePageResponse struct{}
