package constant

import "time"

// Funnel steps in order.
const (
	StepQuestionnaire = "questionnaire"
	StepProfile       = "profile"
	StepSelection     = "selection"
)

const (
	// AutoAdvanceDelay is the pause between a single-select answer and the
	// automatic move to the next question, so the client can show the
	// selection before transitioning.
	AutoAdvanceDelay = 300 * time.Millisecond

	// InterRequestDelay spaces the per-supplier legacy submissions. The
	// legacy PHP side is rate-sensitive, so the fan-out stays sequential.
	InterRequestDelay = 200 * time.Millisecond
)

// Legacy demande defaults (see pkg/legacy).
const (
	LegacyFormAb       = "form_fiche_produit"
	LegacyOrigine      = "52"
	LegacyProvenanceDi = "ux_matching"
)

// Buyer statut codes the legacy backend expects.
const (
	StatutProFrance   = "1"
	StatutCreation    = "4"
	StatutProForeign  = "6"
	StatutParticulier = "7"
)

// Matching-product countdown shown during the questionnaire: the pool
// starts at the base figure and shrinks with every answered question.
const BaseProductCount = 347

// Analytics topics published on the in-process bus.
const (
	TopicFunnelEvents = "FUNNEL_EVENTS"
)
