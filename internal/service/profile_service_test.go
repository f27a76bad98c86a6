package service

import (
	"context"
	"sync"
	"testing"

	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/entity"
	"ux-matching-be/pkg/events"
	"ux-matching-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionRepo is a map-backed ISessionRepository for service tests.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*store.Session
	saveErr  error
}

func newFakeSessionRepo(sessions ...*store.Session) *fakeSessionRepo {
	r := &fakeSessionRepo{sessions: map[string]*store.Session{}}
	for _, s := range sessions {
		r.sessions[s.ID] = s
	}
	return r
}

func (r *fakeSessionRepo) Save(_ context.Context, s *store.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (*store.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id], nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// fakePublisher records published events.
type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// nopLogger satisfies logger.ILogger without output.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestProfileSubmitValidity(t *testing.T) {
	company := &entity.CompanyResult{Siren: "123456789", Name: "Acme SAS", PostalCode: "75001", City: "Paris"}

	cases := []struct {
		name    string
		req     dto.ProfileRequest
		wantErr string
	}{
		{
			name: "pro france with registry pick",
			req:  dto.ProfileRequest{Type: "pro_france", Company: company},
		},
		{
			name: "pro france manual needs full address",
			req:  dto.ProfileRequest{Type: "pro_france", CompanyName: "Acme", PostalCode: "75001", City: "Paris"},
		},
		{
			name:    "pro france manual short postal code",
			req:     dto.ProfileRequest{Type: "pro_france", CompanyName: "Acme", PostalCode: "750", City: "Paris"},
			wantErr: "postal code",
		},
		{
			name:    "pro france manual missing city",
			req:     dto.ProfileRequest{Type: "pro_france", CompanyName: "Acme", PostalCode: "75001"},
			wantErr: "city",
		},
		{
			name:    "pro france without company",
			req:     dto.ProfileRequest{Type: "pro_france", PostalCode: "75001", City: "Paris"},
			wantErr: "company",
		},
		{
			name: "creation needs only address",
			req:  dto.ProfileRequest{Type: "creation", PostalCode: "69001", City: "Lyon"},
		},
		{
			name:    "creation missing address",
			req:     dto.ProfileRequest{Type: "creation"},
			wantErr: "postal code",
		},
		{
			name: "pro foreign needs company and country",
			req:  dto.ProfileRequest{Type: "pro_foreign", CompanyName: "Acme GmbH", CountryId: 49},
		},
		{
			name:    "pro foreign missing country",
			req:     dto.ProfileRequest{Type: "pro_foreign", CompanyName: "Acme GmbH"},
			wantErr: "country",
		},
		{
			name: "particulier in france needs address",
			req:  dto.ProfileRequest{Type: "particulier", PostalCode: "33000", City: "Bordeaux"},
		},
		{
			name:    "particulier in france missing city",
			req:     dto.ProfileRequest{Type: "particulier", PostalCode: "33000"},
			wantErr: "city",
		},
		{
			name: "particulier abroad needs only country",
			req:  dto.ProfileRequest{Type: "particulier", CountryId: 32},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := store.NewSession("s1", "")
			repo := newFakeSessionRepo(sess)
			svc := NewProfileService(repo, &fakePublisher{}, nopLogger{})

			resp, err := svc.Submit(context.Background(), "s1", &tc.req)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp.Profile)
			assert.Equal(t, entity.ProfileType(tc.req.Type), resp.Profile.Type)
		})
	}
}

func TestProfileSubmitAdvancesStepAndPublishes(t *testing.T) {
	sess := store.NewSession("s1", "")
	repo := newFakeSessionRepo(sess)
	pub := &fakePublisher{}
	svc := NewProfileService(repo, pub, nopLogger{})

	_, err := svc.Submit(context.Background(), "s1", &dto.ProfileRequest{
		Type: "creation", PostalCode: "75011", City: "Paris",
	})
	require.NoError(t, err)

	saved, _ := repo.Get(context.Background(), "s1")
	assert.Equal(t, "selection", saved.Step)
	require.NotNil(t, saved.Profile)
	assert.Contains(t, pub.types(), events.TypeProfileCompleted)
}

func TestProfileSubmitUnknownSession(t *testing.T) {
	svc := NewProfileService(newFakeSessionRepo(), &fakePublisher{}, nopLogger{})
	_, err := svc.Submit(context.Background(), "missing", &dto.ProfileRequest{Type: "creation", PostalCode: "75011", City: "Paris"})
	require.Error(t, err)
}
