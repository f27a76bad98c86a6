package service

import (
	"context"
	"fmt"

	"ux-matching-be/internal/catalog"
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/pkg/logger"
	"ux-matching-be/internal/repository/contract"
	"ux-matching-be/pkg/events"
	"ux-matching-be/pkg/funnel"
	"ux-matching-be/pkg/store"
)

type ISelectionService interface {
	Suppliers(ctx context.Context) (*dto.SuppliersResponse, error)
	Get(ctx context.Context, sessionId string) (*dto.SelectionResponse, error)
	Toggle(ctx context.Context, sessionId string, req *dto.ToggleSupplierRequest) (*dto.SelectionResponse, error)
	Reset(ctx context.Context, sessionId string) (*dto.SelectionResponse, error)
}

type selectionService struct {
	repo             contract.ISessionRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSelectionService(
	repo contract.ISessionRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) ISelectionService {
	return &selectionService{
		repo:             repo,
		publisherService: publisherService,
		logger:           log,
	}
}

func (c *selectionService) Suppliers(ctx context.Context) (*dto.SuppliersResponse, error) {
	return &dto.SuppliersResponse{Suppliers: catalog.Suppliers}, nil
}

// Get returns the current selection, seeding the recommended subset the
// first time the selection step is reached.
func (c *selectionService) Get(ctx context.Context, sessionId string) (*dto.SelectionResponse, error) {
	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}

	if len(sess.SelectedSupplierIds) == 0 {
		sess.SetSelectedSupplierIds(catalog.DefaultSelection())
		if err := c.repo.Save(ctx, sess); err != nil {
			return nil, err
		}
	}
	return toSelectionResponse(sess), nil
}

func (c *selectionService) Toggle(ctx context.Context, sessionId string, req *dto.ToggleSupplierRequest) (*dto.SelectionResponse, error) {
	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}
	supplier, ok := catalog.SupplierById(req.SupplierId)
	if !ok {
		return nil, fmt.Errorf("unknown supplier %q", req.SupplierId)
	}

	if len(sess.SelectedSupplierIds) == 0 {
		sess.SetSelectedSupplierIds(catalog.DefaultSelection())
	}
	sess.ToggleSupplier(supplier.Id)
	if err := c.repo.Save(ctx, sess); err != nil {
		return nil, err
	}

	if err := c.publisherService.Publish(ctx, events.New(events.TypeSupplierToggled, map[string]interface{}{
		"sessionId":  sessionId,
		"supplierId": supplier.Id,
		"selected":   len(sess.SelectedSupplierIds),
	})); err != nil {
		c.logger.Warn("SelectionService", "failed to publish supplier toggled event", map[string]interface{}{"error": err.Error()})
	}

	return toSelectionResponse(sess), nil
}

func (c *selectionService) Reset(ctx context.Context, sessionId string) (*dto.SelectionResponse, error) {
	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}

	sess.SetSelectedSupplierIds(catalog.DefaultSelection())
	if err := c.repo.Save(ctx, sess); err != nil {
		return nil, err
	}
	return toSelectionResponse(sess), nil
}

func toSelectionResponse(sess *store.Session) *dto.SelectionResponse {
	return &dto.SelectionResponse{
		SelectedSupplierIds: sess.SelectedSupplierIds,
		IsModified:          !funnel.SameSelection(sess.SelectedSupplierIds, catalog.DefaultSelection()),
	}
}
