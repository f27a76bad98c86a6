package service

import (
	"context"
	"fmt"

	"ux-matching-be/internal/constant"
	"ux-matching-be/internal/dto"
	"ux-matching-be/internal/entity"
	"ux-matching-be/internal/pkg/logger"
	"ux-matching-be/internal/repository/contract"
	"ux-matching-be/pkg/events"
)

type IProfileService interface {
	Submit(ctx context.Context, sessionId string, req *dto.ProfileRequest) (*dto.ProfileResponse, error)
	Get(ctx context.Context, sessionId string) (*dto.ProfileResponse, error)
}

type profileService struct {
	repo             contract.ISessionRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewProfileService(
	repo contract.ISessionRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		repo:             repo,
		publisherService: publisherService,
		logger:           log,
	}
}

func (c *profileService) Get(ctx context.Context, sessionId string) (*dto.ProfileResponse, error) {
	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}
	return &dto.ProfileResponse{Profile: sess.Profile}, nil
}

func (c *profileService) Submit(ctx context.Context, sessionId string, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	sess, err := c.repo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found")
	}

	profile := &entity.ProfileData{
		Type:        entity.ProfileType(req.Type),
		Company:     req.Company,
		CompanyName: req.CompanyName,
		PostalCode:  req.PostalCode,
		City:        req.City,
		Country:     req.Country,
		CountryId:   req.CountryId,
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	sess.SetProfile(profile)
	sess.Step = constant.StepSelection
	if err := c.repo.Save(ctx, sess); err != nil {
		return nil, err
	}

	if err := c.publisherService.Publish(ctx, events.New(events.TypeProfileCompleted, map[string]interface{}{
		"sessionId":   sessionId,
		"profileType": string(profile.Type),
	})); err != nil {
		c.logger.Warn("ProfileService", "failed to publish profile completed event", map[string]interface{}{"error": err.Error()})
	}

	return &dto.ProfileResponse{Profile: profile}, nil
}

// validateProfile enforces the per-type completeness rules. A registry
// pick carries its own address, manual entry must spell one out.
func validateProfile(p *entity.ProfileData) error {
	switch p.Type {
	case entity.ProfileProFrance:
		if p.Company != nil {
			return nil
		}
		if p.CompanyName == "" {
			return fmt.Errorf("company is required")
		}
		return requireFrenchAddress(p)

	case entity.ProfileCreation:
		return requireFrenchAddress(p)

	case entity.ProfileProForeign:
		if p.CompanyName == "" && p.Company == nil {
			return fmt.Errorf("company is required")
		}
		if p.CountryId <= 0 {
			return fmt.Errorf("country is required")
		}
		return nil

	case entity.ProfileParticulier:
		if p.CountryId == 0 || p.CountryId == entity.FranceCountryId {
			return requireFrenchAddress(p)
		}
		return nil

	default:
		return fmt.Errorf("unknown profile type %q", p.Type)
	}
}

func requireFrenchAddress(p *entity.ProfileData) error {
	if len(p.PostalCode) < 5 {
		return fmt.Errorf("postal code is required")
	}
	if p.City == "" {
		return fmt.Errorf("city is required")
	}
	return nil
}
