package mapper

import (
	"encoding/base64"
	"testing"

	"ux-matching-be/internal/entity"
	"ux-matching-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatutFor(t *testing.T) {
	m := NewLeadMapper()
	assert.Equal(t, "1", m.StatutFor(entity.ProfileProFrance))
	assert.Equal(t, "4", m.StatutFor(entity.ProfileCreation))
	assert.Equal(t, "6", m.StatutFor(entity.ProfileProForeign))
	assert.Equal(t, "7", m.StatutFor(entity.ProfileParticulier))
}

func TestDemandeForm(t *testing.T) {
	sess := store.NewSession("s1", "")
	sess.SetProfile(&entity.ProfileData{
		Type:       entity.ProfileProFrance,
		Company:    &entity.CompanyResult{Siren: "123456789", Name: "Acme SAS"},
		PostalCode: "75001",
		City:       "Paris",
	})
	sess.SetContact(&entity.ContactData{
		Email:     "buyer@example.com",
		FirstName: "Jean",
		LastName:  "Martin",
		Phone:     "0612345678",
	})

	supplier := &entity.Supplier{Id: "3", SupplierName: "Fournisseur 3"}
	form := NewLeadMapper().DemandeForm(sess, supplier)

	assert.Equal(t, "form_fiche_produit", form.Get("form_ab"))
	assert.Equal(t, "1", form.Get("statut"))
	assert.Equal(t, "Martin", form.Get("nom-acheteur"))
	assert.Equal(t, "Jean", form.Get("prenom-acheteur"))
	assert.Equal(t, "buyer@example.com", form.Get("mail-acheteur"))
	assert.Equal(t, "+33", form.Get("indicatif_tel"))
	assert.Equal(t, "Acme SAS", form.Get("societe-acheteur"))
	assert.Equal(t, "123456789", form.Get("id_siret_insee"))
	assert.Equal(t, "75001", form.Get("code-postal-acheteur"))
	assert.Equal(t, "1", form.Get("pays-acheteur"))
	assert.Equal(t, "3", form.Get("soc"))
	assert.Equal(t, "3", form.Get("check_id_prod_soc_3"))
	assert.Equal(t, "52", form.Get("origine"))
	assert.Equal(t, "ux_matching", form.Get("provenance_di"))
	assert.Equal(t, "1", form.Get("demande_ia"))

	// Anti-robot token decodes to a millisecond timestamp.
	raw, err := base64.StdEncoding.DecodeString(form.Get("ddc_is_i"))
	require.NoError(t, err)
	assert.Regexp(t, `^\d{13}$`, string(raw))
}

func TestDemandeFormForeignBuyer(t *testing.T) {
	sess := store.NewSession("s1", "")
	sess.SetProfile(&entity.ProfileData{
		Type:        entity.ProfileProForeign,
		CompanyName: "Acme GmbH",
		CountryId:   49,
	})
	sess.SetContact(&entity.ContactData{
		Email: "buyer@example.de", FirstName: "Hans", LastName: "Weber",
		Phone: "301234567", CountryCode: "+49",
	})

	form := NewLeadMapper().DemandeForm(sess, &entity.Supplier{Id: "1"})
	assert.Equal(t, "6", form.Get("statut"))
	assert.Equal(t, "+49", form.Get("indicatif_tel"))
	assert.Equal(t, "Acme GmbH", form.Get("societe-acheteur"))
	assert.Equal(t, "49", form.Get("pays-acheteur"))
	assert.Empty(t, form.Get("id_siret_insee"))
}
