package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/handler"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/mock"
	"github.com/MKhiriev/go-webhooks/internal/service"
)

// freeAddress returns a localhost address with a port nobody listens on.
func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

func newTestServer(t *testing.T, cfg config.Server) (Server, *mock.MockWebhookService, *mock.MockAppInfoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	webhooks := mock.NewMockWebhookService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	services := &service.Services{AppInfoService: appInfo, WebhookService: webhooks}
	handlers, err := handler.NewHandlers(services, nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, webhooks, cfg, logger.Nop())
	require.NoError(t, err)

	return srv, webhooks, appInfo
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), RequestTimeout: 5 * time.Second}
	srv, webhooks, appInfo := newTestServer(t, cfg)

	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	webhooks.EXPECT().Wait(gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	url := fmt.Sprintf("http://%s/version", cfg.HTTPAddress)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "1.0.0"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv, _, _ := newTestServer(t, config.Server{HTTPAddress: l.Addr().String()})

	err = srv.RunServer(context.Background())

	assert.Error(t, err)
}

func TestShutdown_ReportsUnfinishedDeliveries(t *testing.T) {
	srv, webhooks, _ := newTestServer(t, config.Server{HTTPAddress: freeAddress(t)})
	webhooks.EXPECT().Wait(gomock.Any()).Return(context.DeadlineExceeded)

	err := srv.Shutdown(context.Background())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
