package order

import (
	"retail-storage/core/broker"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the Order feature.
func NewFeature(db *gorm.DB, table string, client broker.Client, queueName string, logger *zap.Logger) *Feature {
	store := NewStore(db, table, logger)
	queue := NewQueue(client, queueName, logger)
	svc := NewService(store, queue, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "order"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Store exposes the record store for composition with other features.
func (f *Feature) Store() RecordStore {
	return f.service.store
}
