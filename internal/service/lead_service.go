package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"ux-matching-be/internal/catalog"
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/entity"
	"ux-matching-be/internal/mapper"
	"ux-matching-be/internal/model"
	"ux-matching-be/internal/pkg/logger"
	"ux-matching-be/internal/repository/contract"
	"ux-matching-be/pkg/events"
	"ux-matching-be/pkg/legacy"
	"ux-matching-be/pkg/store"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ILeadService interface {
	Submit(ctx context.Context, sessionId string, req *dto.LeadRequest) (*dto.LeadResponse, error)
	History(ctx context.Context, sessionId string) (*dto.LeadHistoryResponse, error)
}

// DemandeSubmitter is the slice of the legacy client the fan-out needs.
type DemandeSubmitter interface {
	SubmitDemande(ctx context.Context, form url.Values) (*legacy.DemandeResult, error)
}

type leadService struct {
	repo             contract.ISessionRepository
	legacyClient     DemandeSubmitter
	leadMapper       *mapper.LeadMapper
	leadLogs         contract.ILeadLogRepository // nil when no database is configured
	publisherService IPublisherService
	logger           logger.ILogger
	delay            time.Duration
}

func NewLeadService(
	repo contract.ISessionRepository,
	legacyClient DemandeSubmitter,
	leadMapper *mapper.LeadMapper,
	leadLogs contract.ILeadLogRepository,
	publisherService IPublisherService,
	log logger.ILogger,
	delay time.Duration,
) ILeadService {
	return &leadService{
		repo:             repo,
		legacyClient:     legacyClient,
		leadMapper:       leadMapper,
		leadLogs:         leadLogs,
		publisherService: publisherService,
		logger:           log,
		delay:            delay,
	}
}

// Submit records the contact data and fans the demande out to every
// selected supplier, one legacy request per supplier. The requests stay
// sequential and spaced out; the legacy side throttles bursts. The
// aggregate succeeds as soon as one supplier went through.
func (c *leadService) Submit(ctx context.Context, sessionId string, req *dto.LeadRequest) (*dto.LeadResponse, error) {
	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}
	if sess.Profile == nil {
		return nil, fmt.Errorf("profile step not completed")
	}
	if len(sess.SelectedSupplierIds) == 0 {
		return nil, fmt.Errorf("no supplier selected")
	}

	sess.SetContact(&entity.ContactData{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Company:     req.Company,
		CountryCode: req.CountryCode,
		Phone:       req.Phone,
		Message:     req.Message,
	})
	if err := c.repo.Save(ctx, sess); err != nil {
		return nil, err
	}

	var (
		sent        int
		leadId      string
		redirectURL string
		lastError   string
	)
	for i, supplierId := range sess.SelectedSupplierIds {
		supplier, ok := catalog.SupplierById(supplierId)
		if !ok {
			c.logger.Warn("LeadService", "skipping unknown supplier", map[string]interface{}{
				"sessionId":  sessionId,
				"supplierId": supplierId,
			})
			continue
		}
		if i > 0 && c.delay > 0 {
			time.Sleep(c.delay)
		}

		form := c.leadMapper.DemandeForm(sess, supplier)
		result, err := c.legacyClient.SubmitDemande(ctx, form)
		if err != nil {
			lastError = err.Error()
			c.logger.Error("LeadService", "demande submission failed", map[string]interface{}{
				"sessionId":  sessionId,
				"supplierId": supplierId,
				"error":      err.Error(),
			})
			continue
		}
		if !result.Success {
			lastError = result.Error
			continue
		}
		sent++
		if leadId == "" && result.IdDemande != "" {
			leadId = result.IdDemande
		}
		if redirectURL == "" && result.RedirectURL != "" {
			redirectURL = result.RedirectURL
		}
	}

	resp := &dto.LeadResponse{
		Success:        sent > 0,
		TotalSent:      sent,
		TotalRequested: len(sess.SelectedSupplierIds),
	}
	if resp.Success {
		if leadId == "" {
			leadId = "lead_" + uuid.NewString()
		}
		resp.LeadId = leadId
		resp.RedirectUrl = redirectURL
	} else {
		resp.Message = lastError
		if resp.Message == "" {
			resp.Message = "all demande submissions failed"
		}
	}

	c.audit(ctx, sess, resp)

	eventType := events.TypeLeadSubmitted
	if !resp.Success {
		eventType = events.TypeLeadSubmissionFailed
	}
	if err := c.publisherService.Publish(ctx, events.New(eventType, map[string]interface{}{
		"sessionId":      sessionId,
		"totalSent":      resp.TotalSent,
		"totalRequested": resp.TotalRequested,
	})); err != nil {
		c.logger.Warn("LeadService", "failed to publish lead event", map[string]interface{}{"error": err.Error()})
	}

	return resp, nil
}

// History lists the audit records of past fan-outs for a session, newest
// first. Without a database the audit log is off and the list is empty.
func (c *leadService) History(ctx context.Context, sessionId string) (*dto.LeadHistoryResponse, error) {
	resp := &dto.LeadHistoryResponse{Entries: []dto.LeadHistoryEntry{}}
	if c.leadLogs == nil {
		return resp, nil
	}

	logs, err := c.leadLogs.ListBySession(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	for _, log := range logs {
		resp.Entries = append(resp.Entries, dto.LeadHistoryEntry{
			LeadId:         log.LeadId,
			ProfileType:    log.ProfileType,
			TotalSent:      log.TotalSent,
			TotalRequested: log.TotalRequested,
			TimeSpentSec:   log.TimeSpentSec,
			CreatedAt:      log.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

// audit writes the fan-out outcome to the lead log. Best-effort: the
// response never depends on it.
func (c *leadService) audit(ctx context.Context, sess *store.Session, resp *dto.LeadResponse) {
	if c.leadLogs == nil {
		return
	}

	criteria, err := json.Marshal(map[string]interface{}{
		"answers":        sess.Answers,
		"dynamicAnswers": sess.DynamicAnswers,
		"otherTexts":     sess.OtherTexts,
	})
	if err != nil {
		criteria = []byte("{}")
	}

	entry := &model.LeadLog{
		Id:             uuid.New(),
		SessionId:      sess.ID,
		RubriqueId:     sess.RubriqueId,
		Email:          sess.Contact.Email,
		ProfileType:    string(sess.Profile.Type),
		TotalRequested: resp.TotalRequested,
		TotalSent:      resp.TotalSent,
		LeadId:         resp.LeadId,
		RedirectURL:    resp.RedirectUrl,
		Criteria:       datatypes.JSON(criteria),
		TimeSpentSec:   sess.TimeSpentSeconds(time.Now()),
	}
	if err := c.leadLogs.Create(ctx, entry); err != nil {
		c.logger.Warn("LeadService", "failed to write lead log", map[string]interface{}{
			"sessionId": sess.ID,
			"error":     err.Error(),
		})
	}
}
