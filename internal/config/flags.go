package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	return os.Args[1:]
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-r receiver stub address in format [host]:[port]
//	-storage registry backend: file, sqlite, postgres or redis
//	-f registry JSON file path
//	-d database DSN
//	-redis-address redis address in format host:port
//	-redis-key redis key holding the registry
//	-c/-config JSON or YAML file path with configs
//	-events comma separated events seeded at startup
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-delivery-timeout timeout of a single webhook POST
//	-concurrency maximum concurrent webhook POSTs
//	-ping-interval interval of the scheduled ping worker, 0 disables it
//	-log-level minimum log level
//	-server-url webhook service URL used by the subscriber
//	-callback-url URL the subscriber registers
//	-subscribe comma separated events the subscriber registers for
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("webhooks", flag.ContinueOnError)

	var serverAddress, receiverAddress NetAddress
	var storageDriver, filePath, databaseDSN string
	var redisAddress, redisKey string
	var configPath string
	var events, subscribeEvents string
	var requestTimeout, deliveryTimeout, pingInterval time.Duration
	var concurrency int
	var logLevel string
	var serverURL, callbackURL string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&receiverAddress, "r", "Receiver net address host:port")
	fs.StringVar(&storageDriver, "storage", "", "Registry backend: file, sqlite, postgres, redis")
	fs.StringVar(&filePath, "f", "", "Registry file path")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&redisKey, "redis-key", "", "Redis key holding the registry")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&events, "events", "", "Comma separated events created at startup")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&deliveryTimeout, "delivery-timeout", 0, "Timeout of a single webhook POST")
	fs.IntVar(&concurrency, "concurrency", 0, "Maximum concurrent webhook POSTs")
	fs.DurationVar(&pingInterval, "ping-interval", 0, "Scheduled ping interval, 0 disables")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&serverURL, "server-url", "", "Webhook service URL used by the subscriber")
	fs.StringVar(&callbackURL, "callback-url", "", "Callback URL registered by the subscriber")
	fs.StringVar(&subscribeEvents, "subscribe", "", "Comma separated events to subscribe to")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			Driver: storageDriver,
			File:   File{Path: filePath},
			DB:     DB{DSN: databaseDSN},
			Redis:  Redis{Address: redisAddress, Key: redisKey},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Registry: Registry{
			Events: splitList(events),
		},
		Delivery: Delivery{
			Timeout:     deliveryTimeout,
			Concurrency: concurrency,
		},
		Workers: Workers{
			PingInterval: pingInterval,
		},
		Receiver: Receiver{
			HTTPAddress: receiverAddress.String(),
		},
		Subscriber: Subscriber{
			ServerURL:   serverURL,
			CallbackURL: callbackURL,
			Events:      splitList(subscribeEvents),
		},
		ConfigFilePath: configPath,
	}, nil
}

// splitList splits a comma separated flag value, dropping blank items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; any other host must be "localhost" or
// an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
