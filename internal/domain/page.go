package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/luckyspin-lab/backend/internal/entity"
	"github.com/luckyspin-lab/backend/internal/model"
	"github.com/luckyspin-lab/backend/internal/repository"
	"github.com/luckyspin-lab/backend/pkg/errorx"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PageDomain interface {
	GetList(context.Context, *model.GetPagesRequest) (*model.GetPagesResponse, error)
	Get(context.Context, *model.GetPageRequest) (*model.GetPageResponse, error)
	Create(context.Context, *model.CreatePageRequest) (*model.CreatePageResponse, error)
	UpdateByID(context.Context, *model.UpdatePageRequest) (*model.UpdatePageResponse, error)
	UpdateToken(context.Context, *model.UpdatePageTokenRequest) (*model.UpdatePageTokenResponse, error)
	DeleteByID(context.Context, *model.DeletePageRequest) (*model.DeletePageResponse, error)
}

type pageDomain struct {
	tenantRepo repository.TenantRepository
}

func NewPageDomain(tenantRepo repository.TenantRepository) PageDomain {
	return &pageDomain{tenantRepo: tenantRepo}
}

func (d *pageDomain) GetList(
	ctx context.Context, req *model.GetPagesRequest,
) (*model.GetPagesResponse, error) {
	tenants, err := d.tenantRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tenant list: %v", err)
		return nil, errorx.Unknown
	}

	pages := []model.Page{}
	for i := range tenants {
		pages = append(pages, summarizeTenant(&tenants[i]))
	}

	return &model.GetPagesResponse{Pages: pages}, nil
}

func (d *pageDomain) Get(
	ctx context.Context, req *model.GetPageRequest,
) (*model.GetPageResponse, error) {
	tenant, err := d.tenantRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Page not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get tenant: %v", err)
		return nil, errorx.Unknown
	}

	resp := flattenTenant(tenant)
	return &resp, nil
}

func (d *pageDomain) Create(
	ctx context.Context, req *model.CreatePageRequest,
) (*model.CreatePageResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Page id is required")
	}

	_, err := d.tenantRepo.GetByID(ctx, req.ID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Page %s already connected", req.ID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check for existing tenant: %v", err)
		return nil, errorx.Unknown
	}

	tenant := &entity.Tenant{
		Base:        entity.Base{ID: req.ID},
		ShopName:    displayNameOf(req.ID, req.Name, req.ShopName),
		AccessToken: req.AccessToken,
		IsActive:    true,
		Config:      entity.Map{},
	}

	if err := d.tenantRepo.Create(ctx, tenant); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create tenant: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreatePageResponse(summarizeTenant(tenant))
	return &resp, nil
}

func (d *pageDomain) UpdateByID(
	ctx context.Context, req *model.UpdatePageRequest,
) (*model.UpdatePageResponse, error) {
	patch := entity.Map{}
	for key, value := range req.Patch {
		patch[key] = value
	}
	for _, key := range reservedPatchKeys {
		delete(patch, key)
	}

	// The merge reads the stored bag before overlaying the patch, so the
	// read and the write must see the same row.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	tenant, err := d.tenantRepo.GetByID(ctx, req.ID)
	isNew := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get tenant: %v", err)
			return nil, errorx.Unknown
		}

		// Upsert semantics: configuring a page before connecting it is
		// allowed, so an unknown id becomes an implicit create.
		isNew = true
		tenant = &entity.Tenant{
			Base:     entity.Base{ID: req.ID},
			IsActive: true,
			Config:   entity.Map{},
		}
	}

	if value, ok := patch["shop_name"].(string); ok && value != "" {
		tenant.ShopName = value
	}
	if value, ok := patch["access_token"].(string); ok {
		tenant.AccessToken = value
	}
	if value, ok := patch["is_active"].(bool); ok {
		tenant.IsActive = value
	}
	for _, key := range tenantFieldKeys {
		delete(patch, key)
	}

	if tenant.ShopName == "" {
		tenant.ShopName = displayNameOf(req.ID)
	}

	merged := mergeConfig(tenant.Config, patch)
	typed, err := entity.DecodeTenantConfig(merged)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode tenant config: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid configuration shape")
	}

	if _, touched := patch[entity.ConfigKeyPrizes]; touched {
		if err := validatePrizeTable(ctx, typed.Prizes); err != nil {
			return nil, err
		}
	}

	if _, touched := patch[entity.ConfigKeyShopPatterns]; touched {
		patterns, err := normalizeShopPatterns(typed.ShopPatterns)
		if err != nil {
			return nil, err
		}
		merged[entity.ConfigKeyShopPatterns] = patterns
	}

	tenant.Config = merged

	if isNew {
		err = d.tenantRepo.Create(ctx, tenant)
	} else {
		err = d.tenantRepo.Update(ctx, tenant)
	}
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save tenant: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	resp := model.UpdatePageResponse(flattenTenant(tenant))
	return &resp, nil
}

func (d *pageDomain) UpdateToken(
	ctx context.Context, req *model.UpdatePageTokenRequest,
) (*model.UpdatePageTokenResponse, error) {
	minLength := xcontext.Configs(ctx).Page.MinTokenLength
	if len(req.AccessToken) < minLength {
		return nil, errorx.New(errorx.BadRequest, "Invalid access token")
	}

	tenant, err := d.tenantRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Page not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get tenant: %v", err)
		return nil, errorx.Unknown
	}

	tenant.AccessToken = req.AccessToken
	if err := d.tenantRepo.Update(ctx, tenant); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot rotate tenant token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdatePageTokenResponse{Success: true}, nil
}

func (d *pageDomain) DeleteByID(
	ctx context.Context, req *model.DeletePageRequest,
) (*model.DeletePageResponse, error) {
	if err := d.tenantRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Page not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete tenant: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePageResponse{}, nil
}

func displayNameOf(id string, candidates ...string) string {
	for _, name := range candidates {
		if name != "" {
			return name
		}
	}

	return fmt.Sprintf("Page %s", id)
}

func summarizeTenant(tenant *entity.Tenant) model.Page {
	return model.Page{
		ID:          tenant.ID,
		ShopName:    tenant.ShopName,
		IsActive:    tenant.IsActive,
		TotalSpins:  tenant.TotalSpins,
		TotalPrizes: tenant.TotalPrizes,
		TotalUsers:  tenant.TotalUsers,
		CreatedAt:   tenant.CreatedAt,
		UpdatedAt:   tenant.UpdatedAt,
	}
}

// flattenTenant lifts the config bag keys next to the entity fields. The
// access token stays out of read responses.
func flattenTenant(tenant *entity.Tenant) model.GetPageResponse {
	resp := model.GetPageResponse{
		"id":          tenant.ID,
		"shop_name":   tenant.ShopName,
		"is_active":   tenant.IsActive,
		"totalSpins":  tenant.TotalSpins,
		"totalPrizes": tenant.TotalPrizes,
		"totalUsers":  tenant.TotalUsers,
		"created_at":  tenant.CreatedAt,
		"updated_at":  tenant.UpdatedAt,
	}

	for key, value := range tenant.Config {
		if _, taken := resp[key]; !taken {
			resp[key] = value
		}
	}

	return resp
}
