package service

import (
	"context"
	"testing"

	"ux-matching-be/internal/catalog"
	"ux-matching-be/internal/dto"
	"ux-matching-be/pkg/events"
	"ux-matching-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionGetSeedsRecommendedDefaults(t *testing.T) {
	sess := store.NewSession("s1", "")
	repo := newFakeSessionRepo(sess)
	svc := NewSelectionService(repo, &fakePublisher{}, nopLogger{})

	resp, err := svc.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.ElementsMatch(t, catalog.DefaultSelection(), resp.SelectedSupplierIds)
	assert.False(t, resp.IsModified)

	// The seeded defaults are persisted.
	saved, _ := repo.Get(context.Background(), "s1")
	assert.ElementsMatch(t, catalog.DefaultSelection(), saved.SelectedSupplierIds)
}

func TestSelectionGetKeepsExistingSelection(t *testing.T) {
	sess := store.NewSession("s1", "")
	sess.SetSelectedSupplierIds([]string{"2"})
	repo := newFakeSessionRepo(sess)
	svc := NewSelectionService(repo, &fakePublisher{}, nopLogger{})

	resp, err := svc.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, resp.SelectedSupplierIds)
	assert.True(t, resp.IsModified)
}

func TestSelectionToggleMarksModified(t *testing.T) {
	sess := store.NewSession("s1", "")
	repo := newFakeSessionRepo(sess)
	pub := &fakePublisher{}
	svc := NewSelectionService(repo, pub, nopLogger{})

	defaults := catalog.DefaultSelection()

	// Toggling off one of the defaults modifies the selection.
	resp, err := svc.Toggle(context.Background(), "s1", &dto.ToggleSupplierRequest{SupplierId: defaults[0]})
	require.NoError(t, err)
	assert.Len(t, resp.SelectedSupplierIds, len(defaults)-1)
	assert.True(t, resp.IsModified)
	assert.Contains(t, pub.types(), events.TypeSupplierToggled)

	// Toggling it back on restores the default set.
	resp, err = svc.Toggle(context.Background(), "s1", &dto.ToggleSupplierRequest{SupplierId: defaults[0]})
	require.NoError(t, err)
	assert.ElementsMatch(t, defaults, resp.SelectedSupplierIds)
	assert.False(t, resp.IsModified)
}

func TestSelectionToggleUnknownSupplier(t *testing.T) {
	sess := store.NewSession("s1", "")
	svc := NewSelectionService(newFakeSessionRepo(sess), &fakePublisher{}, nopLogger{})

	_, err := svc.Toggle(context.Background(), "s1", &dto.ToggleSupplierRequest{SupplierId: "nope"})
	require.Error(t, err)
}

func TestSelectionResetRestoresDefaults(t *testing.T) {
	sess := store.NewSession("s1", "")
	sess.SetSelectedSupplierIds([]string{"7"})
	svc := NewSelectionService(newFakeSessionRepo(sess), &fakePublisher{}, nopLogger{})

	resp, err := svc.Reset(context.Background(), "s1")
	require.NoError(t, err)
	assert.ElementsMatch(t, catalog.DefaultSelection(), resp.SelectedSupplierIds)
	assert.False(t, resp.IsModified)
}
