package bootstrap

import (
	"log"

	"ux-matching-be/internal/config"
	"ux-matching-be/internal/controller"
	"ux-matching-be/internal/mapper"
	"ux-matching-be/internal/pkg/logger"
	"ux-matching-be/internal/repository/contract"
	"ux-matching-be/internal/repository/implementation"
	"ux-matching-be/internal/repository/memory"
	redisrepo "ux-matching-be/internal/repository/redis"
	"ux-matching-be/internal/service"
	"ux-matching-be/pkg/legacy"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController       controller.ISessionController
	QuestionnaireController controller.IQuestionnaireController
	ProfileController       controller.IProfileController
	SelectionController     controller.ISelectionController
	LeadController          controller.ILeadController
	LookupController        controller.ILookupController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewContainer wires the whole funnel backend. db may be nil; the lead
// audit log is then disabled.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Storage
	var sessionRepo contract.ISessionRepository
	if cfg.App.SessionStore == "redis" {
		repo, err := redisrepo.NewSessionRepository(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis, falling back to memory sessions: %v", err)
			sessionRepo = memory.NewSessionRepository()
		} else {
			sessionRepo = repo
			log.Printf("[INFO] Using Session Store: REDIS")
		}
	} else {
		sessionRepo = memory.NewSessionRepository()
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	var leadLogRepo contract.ILeadLogRepository
	if db != nil {
		leadLogRepo = implementation.NewLeadLogRepository(db)
	} else {
		log.Printf("[WARN] No database configured, lead audit log disabled")
	}

	// 4. Legacy platform client
	legacyClient := legacy.NewClient(cfg.Legacy.BaseURL, cfg.Legacy.DemandeURL)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.FunnelEvents, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.FunnelEvents, sysLogger)

	questionnaireService := service.NewQuestionnaireService(sessionRepo, legacyClient, publisherService, sysLogger, cfg.Funnel.AutoAdvanceDelay)
	sessionService := service.NewSessionService(sessionRepo, publisherService, questionnaireService, sysLogger)
	profileService := service.NewProfileService(sessionRepo, publisherService, sysLogger)
	selectionService := service.NewSelectionService(sessionRepo, publisherService, sysLogger)
	lookupService := service.NewLookupService(legacyClient, sysLogger)
	leadService := service.NewLeadService(
		sessionRepo,
		legacyClient,
		mapper.NewLeadMapper(),
		leadLogRepo,
		publisherService,
		sysLogger,
		cfg.Funnel.InterRequestDelay,
	)

	// 6. Controllers
	return &Container{
		SessionController:       controller.NewSessionController(sessionService),
		QuestionnaireController: controller.NewQuestionnaireController(questionnaireService),
		ProfileController:       controller.NewProfileController(profileService),
		SelectionController:     controller.NewSelectionController(selectionService),
		LeadController:          controller.NewLeadController(leadService),
		LookupController:        controller.NewLookupController(lookupService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
