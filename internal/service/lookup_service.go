package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/entity"
	"ux-matching-be/internal/pkg/logger"
	"ux-matching-be/pkg/latest"
	"ux-matching-be/pkg/legacy"
)

type ILookupService interface {
	SearchCompanies(ctx context.Context, sessionId, query string) (*dto.SirenSearchResponse, error)
	SearchPostalCodes(ctx context.Context, sessionId, cp string) (*dto.PostalCodeResponse, error)
	Countries(ctx context.Context) (*dto.CountriesResponse, error)
	CheckBuyer(ctx context.Context, req *dto.BuyerCheckRequest) (*dto.BuyerCheckResponse, error)
}

// LegacyLookup is the slice of the legacy client the lookup endpoints use.
type LegacyLookup interface {
	SearchCompanies(ctx context.Context, query string) ([]entity.CompanyResult, error)
	SearchPostalCodes(ctx context.Context, cp string) ([]legacy.PostalCodeCity, error)
	Countries(ctx context.Context) (*legacy.Countries, error)
	CheckBuyer(ctx context.Context, email, rubriqueId, urlPage string) (*legacy.BuyerCheck, error)
}

const countriesCacheTTL = time.Hour

type lookupService struct {
	legacyClient LegacyLookup
	guard        *latest.Guard
	logger       logger.ILogger

	mu               sync.Mutex
	cachedCountries  *dto.CountriesResponse
	countriesFetched time.Time
}

func NewLookupService(legacyClient LegacyLookup, log logger.ILogger) ILookupService {
	return &lookupService{
		legacyClient: legacyClient,
		guard:        latest.NewGuard(),
		logger:       log,
	}
}

// guardKey scopes the stale-response guard to one visitor, so typing in
// one session never invalidates another session's in-flight lookup.
func guardKey(kind, sessionId string) string {
	if sessionId == "" {
		return kind
	}
	return kind + ":" + sessionId
}

// SearchCompanies proxies the registry lookup. A query superseded by a
// newer one from the same session while in flight yields an empty list:
// typing fast must never surface results for an earlier prefix.
func (c *lookupService) SearchCompanies(ctx context.Context, sessionId, query string) (*dto.SirenSearchResponse, error) {
	result, stale, err := c.guard.Do(guardKey("siren", sessionId), func() (interface{}, error) {
		return c.legacyClient.SearchCompanies(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	if stale {
		return &dto.SirenSearchResponse{Companies: []entity.CompanyResult{}}, nil
	}
	return &dto.SirenSearchResponse{Companies: result.([]entity.CompanyResult)}, nil
}

func (c *lookupService) SearchPostalCodes(ctx context.Context, sessionId, cp string) (*dto.PostalCodeResponse, error) {
	result, stale, err := c.guard.Do(guardKey("postal", sessionId), func() (interface{}, error) {
		return c.legacyClient.SearchPostalCodes(ctx, cp)
	})
	if err != nil {
		return nil, err
	}
	if stale {
		return &dto.PostalCodeResponse{Results: []legacy.PostalCodeCity{}}, nil
	}
	return &dto.PostalCodeResponse{Results: result.([]legacy.PostalCodeCity)}, nil
}

// Countries serves the legacy country lists from a one-hour cache; the
// lists change rarely and every profile render needs them.
func (c *lookupService) Countries(ctx context.Context) (*dto.CountriesResponse, error) {
	c.mu.Lock()
	if c.cachedCountries != nil && time.Since(c.countriesFetched) < countriesCacheTTL {
		cached := c.cachedCountries
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	countries, err := c.legacyClient.Countries(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.CountriesResponse{
		Priority: toCountryOptions(countries.Principal),
		All:      toCountryOptions(countries.Complet),
	}

	c.mu.Lock()
	c.cachedCountries = resp
	c.countriesFetched = time.Now()
	c.mu.Unlock()
	return resp, nil
}

func (c *lookupService) CheckBuyer(ctx context.Context, req *dto.BuyerCheckRequest) (*dto.BuyerCheckResponse, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	check, err := c.legacyClient.CheckBuyer(ctx, req.Email, req.RubriqueId, req.UrlPage)
	if err != nil {
		return nil, err
	}
	return &dto.BuyerCheckResponse{
		IsKnown:     check.IsKnown,
		IsDuplicate: check.IsDuplicate,
	}, nil
}

func toCountryOptions(countries []legacy.Country) []dto.CountryOption {
	out := make([]dto.CountryOption, 0, len(countries))
	for _, country := range countries {
		out = append(out, dto.CountryOption{Id: country.Id, Label: country.Libelle})
	}
	return out
}
