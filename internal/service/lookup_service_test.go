package service

import (
	"context"
	"sync"
	"testing"

	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/entity"
	"ux-matching-be/pkg/legacy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	mu            sync.Mutex
	countriesHits int
	companyCalls  int

	companies   []entity.CompanyResult
	postalCodes []legacy.PostalCodeCity
	countries   *legacy.Countries
	buyerCheck  *legacy.BuyerCheck

	// When set, the first company search blocks until released.
	firstStarted chan struct{}
	releaseFirst chan struct{}
}

func (f *fakeLookup) SearchCompanies(_ context.Context, _ string) ([]entity.CompanyResult, error) {
	f.mu.Lock()
	f.companyCalls++
	first := f.companyCalls == 1
	f.mu.Unlock()
	if first && f.releaseFirst != nil {
		close(f.firstStarted)
		<-f.releaseFirst
	}
	return f.companies, nil
}

func (f *fakeLookup) SearchPostalCodes(_ context.Context, _ string) ([]legacy.PostalCodeCity, error) {
	return f.postalCodes, nil
}

func (f *fakeLookup) Countries(_ context.Context) (*legacy.Countries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countriesHits++
	return f.countries, nil
}

func (f *fakeLookup) CheckBuyer(_ context.Context, _, _, _ string) (*legacy.BuyerCheck, error) {
	return f.buyerCheck, nil
}

func TestLookupSearchCompanies(t *testing.T) {
	lookup := &fakeLookup{companies: []entity.CompanyResult{
		{Siren: "123456789", Name: "Acme SAS", City: "Paris"},
	}}
	svc := NewLookupService(lookup, nopLogger{})

	resp, err := svc.SearchCompanies(context.Background(), "s1", "acme")
	require.NoError(t, err)
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, "Acme SAS", resp.Companies[0].Name)
}

func TestLookupGuardIsScopedPerSession(t *testing.T) {
	lookup := &fakeLookup{
		companies:    []entity.CompanyResult{{Siren: "123456789", Name: "Acme SAS"}},
		firstStarted: make(chan struct{}),
		releaseFirst: make(chan struct{}),
	}
	svc := NewLookupService(lookup, nopLogger{})

	type outcome struct {
		resp *dto.SirenSearchResponse
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		resp, err := svc.SearchCompanies(context.Background(), "visitor-a", "acm")
		done <- outcome{resp, err}
	}()
	<-lookup.firstStarted

	// Another visitor searches while the first request is in flight.
	resp, err := svc.SearchCompanies(context.Background(), "visitor-b", "par")
	require.NoError(t, err)
	require.Len(t, resp.Companies, 1)

	close(lookup.releaseFirst)
	got := <-done
	require.NoError(t, got.err)
	assert.Len(t, got.resp.Companies, 1, "another visitor's search must not supersede this one")
}

func TestLookupCountriesCached(t *testing.T) {
	lookup := &fakeLookup{countries: &legacy.Countries{
		Principal: []legacy.Country{{Id: 1, Libelle: "France"}},
		Complet:   []legacy.Country{{Id: 1, Libelle: "France"}, {Id: 49, Libelle: "Allemagne"}},
	}}
	svc := NewLookupService(lookup, nopLogger{})

	first, err := svc.Countries(context.Background())
	require.NoError(t, err)
	second, err := svc.Countries(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, lookup.countriesHits)
	require.Len(t, first.Priority, 1)
	assert.Equal(t, "France", first.Priority[0].Label)
	assert.Len(t, first.All, 2)
}

func TestLookupCheckBuyer(t *testing.T) {
	lookup := &fakeLookup{buyerCheck: &legacy.BuyerCheck{IsKnown: true, IsDuplicate: true}}
	svc := NewLookupService(lookup, nopLogger{})

	resp, err := svc.CheckBuyer(context.Background(), &dto.BuyerCheckRequest{Email: "buyer@example.com"})
	require.NoError(t, err)
	assert.True(t, resp.IsKnown)
	assert.True(t, resp.IsDuplicate)

	_, err = svc.CheckBuyer(context.Background(), &dto.BuyerCheckRequest{})
	require.Error(t, err)
}

func TestLookupSearchPostalCodes(t *testing.T) {
	lookup := &fakeLookup{postalCodes: []legacy.PostalCodeCity{{PostalCode: "75011", City: "Paris"}}}
	svc := NewLookupService(lookup, nopLogger{})

	resp, err := svc.SearchPostalCodes(context.Background(), "s1", "750")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Paris", resp.Results[0].City)
}
