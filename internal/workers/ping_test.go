package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/mock"
	"github.com/MKhiriev/go-webhooks/models"
)

func TestPingWorker_PingsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	webhooks := mock.NewMockWebhookService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	webhooks.EXPECT().Ping(gomock.Any()).DoAndReturn(func(context.Context) (models.PingResponse, error) {
		calls++
		if calls == 2 {
			return models.PingResponse{}, errors.New("webhook storage unavailable")
		}
		if calls == 3 {
			cancel()
		}
		return models.PingResponse{DeliveryReport: models.NewDeliveryReport(nil)}, nil
	}).MinTimes(3)

	done := make(chan struct{})
	go func() {
		NewPingWorker(webhooks, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ping worker did not stop")
	}
	assert.GreaterOrEqual(t, calls, 3)
}
