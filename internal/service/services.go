package service

import (
	"github.com/MKhiriev/go-webhooks/internal/adapter"
	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/metrics"
	"github.com/MKhiriev/go-webhooks/internal/store"
	"github.com/MKhiriev/go-webhooks/models"
)

type Services struct {
	AppInfoService  AppInfoService
	DeliveryService DeliveryService
	WebhookService  WebhookService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, metrics *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	sender := adapter.NewHTTPWebhookSender(cfg.Delivery, logger)
	deliveryService := NewDeliveryService(sender, cfg.Delivery, metrics, logger)
	webhookService := NewWebhookValidationService().Wrap(
		NewWebhookService(storages.RegistryRepository, deliveryService, cfg.Delivery, logger),
	)

	return &Services{
		AppInfoService:  appInfoService,
		DeliveryService: deliveryService,
		WebhookService:  webhookService,
	}, nil
}
