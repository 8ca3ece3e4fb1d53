package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number is a positive integer"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", expectError: true, errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

// TestParseFlags tests the parseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-r", "127.0.0.1:8081",
				"-storage", "sqlite",
				"-f", "/var/hooks.json",
				"-d", "hooks.db",
				"-redis-address", "localhost:6379",
				"-redis-key", "hooks",
				"-c", "/path/to/config.json",
				"-events", "user_registered, order_placed",
				"-request-timeout", "30s",
				"-delivery-timeout", "5s",
				"-concurrency", "3",
				"-ping-interval", "1m",
				"-log-level", "warn",
				"-server-url", "http://localhost:8080",
				"-callback-url", "http://localhost:8081/",
				"-subscribe", "user_registered",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "127.0.0.1:8081", cfg.Receiver.HTTPAddress)
				assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
				assert.Equal(t, "/var/hooks.json", cfg.Storage.File.Path)
				assert.Equal(t, "hooks.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
				assert.Equal(t, "hooks", cfg.Storage.Redis.Key)
				assert.Equal(t, "/path/to/config.json", cfg.ConfigFilePath)
				assert.Equal(t, []string{"user_registered", "order_placed"}, cfg.Registry.Events)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 5*time.Second, cfg.Delivery.Timeout)
				assert.Equal(t, 3, cfg.Delivery.Concurrency)
				assert.Equal(t, time.Minute, cfg.Workers.PingInterval)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, "http://localhost:8080", cfg.Subscriber.ServerURL)
				assert.Equal(t, "http://localhost:8081/", cfg.Subscriber.CallbackURL)
				assert.Equal(t, []string{"user_registered"}, cfg.Subscriber.Events)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Storage.Driver)
				assert.Nil(t, cfg.Registry.Events)
				assert.Zero(t, cfg.Delivery.Timeout)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/hooks.yaml"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/hooks.yaml", cfg.ConfigFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nowhere"})
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, splitList("a, ,b"))
}
