// Package legacy is the HTTP client for the historical PHP backend: the
// dynamic questionnaire, the INSEE company registry proxy, postal-code and
// country data, the buyer duplicate check and the demande insertion
// endpoint. Only the wire contract lives here; funnel semantics stay in
// the services.
package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ux-matching-be/internal/entity"
)

type Client struct {
	baseURL    string
	demandeURL string
	http       *http.Client
}

// NewClient builds a client against the legacy host. demandeURL is the
// full demande_info_insertion.php endpoint, which historically lives on a
// different (dev) host than the rest.
func NewClient(baseURL, demandeURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		demandeURL: demandeURL,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

type dynamicAnswer struct {
	Code          string `json:"code"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText"`
}

type dynamicQuestion struct {
	Code          string          `json:"code"`
	Title         string          `json:"title"`
	Justification string          `json:"justification"`
	Type          string          `json:"type"` // "single" | "multi"
	Answers       []dynamicAnswer `json:"answers"`
}

func (q dynamicQuestion) toEntity() entity.Question {
	out := entity.Question{
		Code:          q.Code,
		Title:         q.Title,
		Justification: q.Justification,
		MultiSelect:   q.Type == "multi",
	}
	for _, a := range q.Answers {
		out.Answers = append(out.Answers, entity.AnswerOption{
			Id:            a.Code,
			MainText:      a.MainText,
			SecondaryText: a.SecondaryText,
		})
	}
	return out
}

// EntryQuestion fetches the first question of a rubrique's dynamic path.
func (c *Client) EntryQuestion(ctx context.Context, rubriqueId string) (*entity.Question, error) {
	var payload struct {
		EntryQuestion *dynamicQuestion `json:"entryQuestion"`
	}
	params := url.Values{"rubrique_id": {rubriqueId}}
	if err := c.getJSON(ctx, "/api/questionnaire/entry.php", params, &payload); err != nil {
		return nil, fmt.Errorf("questionnaire entry: %w", err)
	}
	if payload.EntryQuestion == nil {
		return nil, fmt.Errorf("questionnaire entry: empty response for rubrique %s", rubriqueId)
	}
	q := payload.EntryQuestion.toEntity()
	return &q, nil
}

// PathQuestions fetches the remainder of the path for the chosen entry
// answer. Returns the questions and the server's total count (which may
// exceed the returned slice when the server paginates).
func (c *Client) PathQuestions(ctx context.Context, rubriqueId, q1Answer string) ([]entity.Question, int, error) {
	var payload struct {
		Questions      []dynamicQuestion `json:"questions"`
		TotalQuestions int               `json:"totalQuestions"`
		PathId         string            `json:"pathId"`
	}
	params := url.Values{"rubrique_id": {rubriqueId}, "q1_answer": {q1Answer}}
	if err := c.getJSON(ctx, "/api/questionnaire/path.php", params, &payload); err != nil {
		return nil, 0, fmt.Errorf("questionnaire path: %w", err)
	}
	questions := make([]entity.Question, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		questions = append(questions, q.toEntity())
	}
	return questions, payload.TotalQuestions, nil
}

// SearchCompanies queries the INSEE registry proxy by company name or
// SIREN. The legacy service wants at least 2 characters.
func (c *Client) SearchCompanies(ctx context.Context, query string) ([]entity.CompanyResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, fmt.Errorf("siren search: query needs at least 2 characters")
	}
	var payload struct {
		Status string `json:"status"`
		Nb     int    `json:"nb"`
		Result []struct {
			Siren      string `json:"siren"`
			Nom        string `json:"nom"`
			Adresse    string `json:"adresse"`
			CodePostal string `json:"code_postal"`
			Ville      string `json:"ville"`
		} `json:"result"`
	}
	params := url.Values{"soc": {query}, "p": {"demande_information_v2"}}
	if err := c.getJSON(ctx, "/api_insee/_ag_web_service_insee_v2.php", params, &payload); err != nil {
		return nil, fmt.Errorf("siren search: %w", err)
	}
	out := make([]entity.CompanyResult, 0, len(payload.Result))
	for _, r := range payload.Result {
		out = append(out, entity.CompanyResult{
			Siren:      r.Siren,
			Name:       r.Nom,
			Address:    r.Adresse,
			PostalCode: r.CodePostal,
			City:       r.Ville,
		})
	}
	return out, nil
}

// PostalCodeCity is one postal-code suggestion.
type PostalCodeCity struct {
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// SearchPostalCodes resolves partial postal codes (>= 3 digits) to
// candidate cities. The legacy field names vary, both spellings are read.
func (c *Client) SearchPostalCodes(ctx context.Context, cp string) ([]PostalCodeCity, error) {
	if len(cp) < 3 {
		return []PostalCodeCity{}, nil
	}
	var payload []struct {
		Cp         string `json:"cp"`
		PostalCode string `json:"postalCode"`
		Ville      string `json:"ville"`
		City       string `json:"city"`
	}
	params := url.Values{"t": {"2"}, "cp": {cp}}
	if err := c.getJSON(ctx, "/hellopro_fr/ajax/ajax_get_data.php", params, &payload); err != nil {
		return nil, fmt.Errorf("postal code search: %w", err)
	}
	out := make([]PostalCodeCity, 0, len(payload))
	for _, item := range payload {
		entry := PostalCodeCity{PostalCode: item.Cp, City: item.Ville}
		if entry.PostalCode == "" {
			entry.PostalCode = item.PostalCode
		}
		if entry.City == "" {
			entry.City = item.City
		}
		out = append(out, entry)
	}
	return out, nil
}

// Country is one legacy country entry.
type Country struct {
	Id      int    `json:"id"`
	Libelle string `json:"libelle"`
}

// Countries is the two-list country payload: the short priority list shown
// first and the complete list behind it.
type Countries struct {
	Principal []Country `json:"principal"`
	Complet   []Country `json:"complet"`
}

func (c *Client) Countries(ctx context.Context) (*Countries, error) {
	var payload struct {
		Success bool      `json:"success"`
		Error   string    `json:"error"`
		Data    Countries `json:"data"`
	}
	params := url.Values{"t": {"1"}}
	if err := c.getJSON(ctx, "/hellopro_fr/ajax/ajax_get_data.php", params, &payload); err != nil {
		return nil, fmt.Errorf("countries: %w", err)
	}
	if !payload.Success {
		if payload.Error == "" {
			payload.Error = "unknown legacy error"
		}
		return nil, fmt.Errorf("countries: %s", payload.Error)
	}
	return &payload.Data, nil
}

// BuyerCheck is the duplicate-check outcome. The legacy endpoint answers
// with an empty body for unknown buyers and "notifier" for duplicates.
type BuyerCheck struct {
	IsKnown     bool   `json:"isKnown"`
	IsDuplicate bool   `json:"isDuplicate"`
	Raw         string `json:"-"`
}

func (c *Client) CheckBuyer(ctx context.Context, email, rubriqueId, urlPage string) (*BuyerCheck, error) {
	form := url.Values{"email": {strings.TrimSpace(email)}}
	if rubriqueId != "" {
		form.Set("id_rubrique", rubriqueId)
	}
	if urlPage != "" {
		form.Set("url_page", url.QueryEscape(urlPage))
	}
	body, err := c.postForm(ctx, c.baseURL+"/annuaire_hp/ajax/demande_information/verif_doublon_di.php", form)
	if err != nil {
		return nil, fmt.Errorf("buyer check: %w", err)
	}
	raw := strings.TrimSpace(string(body))
	return &BuyerCheck{
		IsKnown:     raw != "",
		IsDuplicate: raw == "notifier",
		Raw:         raw,
	}, nil
}

// DemandeResult is the outcome of one per-supplier demande insertion.
type DemandeResult struct {
	Success     bool   `json:"success"`
	IdDemande   string `json:"id_demande,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SubmitDemande posts one form-encoded demande. The PHP side answers with
// either a bare redirect URL or a small JSON object; both are accepted.
func (c *Client) SubmitDemande(ctx context.Context, form url.Values) (*DemandeResult, error) {
	body, err := c.postForm(ctx, c.demandeURL, form)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, "http") {
		return &DemandeResult{Success: true, RedirectURL: text}, nil
	}
	var payload struct {
		Success     *bool  `json:"success"`
		IdDemande   string `json:"id_demande"`
		RedirectURL string `json:"redirect_url"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		// Not JSON either; treat whatever came back as the redirect target.
		return &DemandeResult{Success: true, RedirectURL: text}, nil
	}
	return &DemandeResult{
		// An omitted success field means the insert went through; an
		// explicit false wins.
		Success:     payload.Success == nil || *payload.Success,
		IdDemande:   payload.IdDemande,
		RedirectURL: payload.RedirectURL,
		Error:       payload.Error,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("legacy api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("legacy api status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
