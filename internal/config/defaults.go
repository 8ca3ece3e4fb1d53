package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultReceiverAddress = "localhost:8081"
	defaultRequestTimeout  = 30 * time.Second
	defaultStorageFile     = "webhook_data.json"
	defaultRedisKey        = "webhooks:registry"
	defaultDeliveryTimeout = 10 * time.Second
	defaultConcurrency     = 8
	defaultPingMessage     = "hello"
	defaultServerURL       = "http://localhost:8080"
	defaultLogLevel        = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "N/A",
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			Driver: DriverFile,
			File:   File{Path: defaultStorageFile},
			Redis:  Redis{Key: defaultRedisKey},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Delivery: Delivery{
			Timeout:     defaultDeliveryTimeout,
			Concurrency: defaultConcurrency,
			PingMessage: defaultPingMessage,
		},
		Receiver: Receiver{
			HTTPAddress: defaultReceiverAddress,
		},
		Subscriber: Subscriber{
			ServerURL:      defaultServerURL,
			RequestTimeout: defaultDeliveryTimeout,
		},
	}
}
