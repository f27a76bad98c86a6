package mapper

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ux-matching-be/internal/constant"
	"ux-matching-be/internal/entity"
	"ux-matching-be/pkg/store"
)

// LeadMapper turns the accumulated session state into the $_POST-shaped
// form the legacy demande insertion endpoint expects, one form per
// selected supplier.
type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

// StatutFor maps the profile type onto the legacy buyer statut code.
func (m *LeadMapper) StatutFor(t entity.ProfileType) string {
	switch t {
	case entity.ProfileProFrance:
		return constant.StatutProFrance
	case entity.ProfileCreation:
		return constant.StatutCreation
	case entity.ProfileProForeign:
		return constant.StatutProForeign
	case entity.ProfileParticulier:
		return constant.StatutParticulier
	default:
		return constant.StatutProFrance
	}
}

// DemandeForm builds the legacy form for one supplier.
func (m *LeadMapper) DemandeForm(sess *store.Session, supplier *entity.Supplier) url.Values {
	contact := sess.Contact
	profile := sess.Profile

	form := url.Values{}
	form.Set("form_ab", constant.LegacyFormAb)

	statut := m.StatutFor(profile.Type)
	form.Set("statut", statut)
	form.Set("rep_prof_part", statut)

	form.Set("civilite", "")
	form.Set("nom-acheteur", contact.LastName)
	form.Set("prenom-acheteur", contact.FirstName)
	form.Set("mail-acheteur", contact.Email)
	form.Set("telephone-acheteur", contact.Phone)
	indicatif := contact.CountryCode
	if indicatif == "" {
		indicatif = "+33"
	}
	form.Set("indicatif_tel", indicatif)

	societe := contact.Company
	if societe == "" && profile.Company != nil {
		societe = profile.Company.Name
	}
	if societe == "" {
		societe = profile.CompanyName
	}
	form.Set("societe-acheteur", societe)
	if profile.Company != nil && profile.Company.Siren != "" {
		form.Set("id_siret_insee", profile.Company.Siren)
	}

	form.Set("adresse-acheteur", "")
	form.Set("code-postal-acheteur", profile.PostalCode)
	form.Set("ville-acheteur", profile.City)
	pays := strconv.Itoa(entity.FranceCountryId)
	if profile.CountryId > 0 {
		pays = strconv.Itoa(profile.CountryId)
	}
	form.Set("pays-acheteur", pays)

	form.Set("fonction", "")
	form.Set("service", "")
	form.Set("metier", "")

	message := contact.Message
	if message == "" {
		message = "Demande de devis via UX Matching"
	}
	form.Set("message-acheteur", message)

	// One supplier per demande: soc plus the matching product checkbox.
	form.Set("soc", supplier.Id)
	form.Set(fmt.Sprintf("check_id_prod_soc_%s", supplier.Id), supplier.Id)

	form.Set("souhait_devis_prod_sim", "1")
	form.Set("souhaiter_devis", "on")

	form.Set("origine", constant.LegacyOrigine)
	form.Set("provenance_di", constant.LegacyProvenanceDi)
	form.Set("ddc_is_i", antiRobotToken())
	form.Set("demande_ia", "1")

	return form
}

func antiRobotToken() string {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return base64.StdEncoding.EncodeToString([]byte(now))
}
