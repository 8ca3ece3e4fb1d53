package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file. The same
// struct is decoded from JSON or YAML depending on the file extension.
type StructuredFileConfig struct {
	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
		File   struct {
			Path string `json:"path" yaml:"path"`
		} `json:"file,omitempty" yaml:"file,omitempty"`
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
		Redis struct {
			Address  string `json:"address" yaml:"address"`
			Password string `json:"password" yaml:"password"`
			DB       int    `json:"db" yaml:"db"`
			Key      string `json:"key" yaml:"key"`
		} `json:"redis,omitempty" yaml:"redis,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Registry struct {
		Events []string `json:"events" yaml:"events"`
	} `json:"registry,omitempty" yaml:"registry,omitempty"`

	Delivery struct {
		Timeout     Duration `json:"timeout" yaml:"timeout"`
		Concurrency int      `json:"concurrency" yaml:"concurrency"`
		PingMessage string   `json:"ping_message" yaml:"ping_message"`
	} `json:"delivery,omitempty" yaml:"delivery,omitempty"`

	Workers struct {
		PingInterval Duration `json:"ping_interval" yaml:"ping_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Receiver struct {
		HTTPAddress string `json:"http_address" yaml:"http_address"`
	} `json:"receiver,omitempty" yaml:"receiver,omitempty"`

	Subscriber struct {
		ServerURL      string   `json:"server_url" yaml:"server_url"`
		CallbackURL    string   `json:"callback_url" yaml:"callback_url"`
		Events         []string `json:"events" yaml:"events"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"subscriber,omitempty" yaml:"subscriber,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(content, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructuredConfig(), nil
}

func (f *StructuredFileConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  f.App.Version,
			LogLevel: f.App.LogLevel,
		},
		Storage: Storage{
			Driver: f.Storage.Driver,
			File:   File{Path: f.Storage.File.Path},
			DB:     DB{DSN: f.Storage.DB.DSN},
			Redis: Redis{
				Address:  f.Storage.Redis.Address,
				Password: f.Storage.Redis.Password,
				DB:       f.Storage.Redis.DB,
				Key:      f.Storage.Redis.Key,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Registry: Registry{
			Events: f.Registry.Events,
		},
		Delivery: Delivery{
			Timeout:     time.Duration(f.Delivery.Timeout),
			Concurrency: f.Delivery.Concurrency,
			PingMessage: f.Delivery.PingMessage,
		},
		Workers: Workers{
			PingInterval: time.Duration(f.Workers.PingInterval),
		},
		Receiver: Receiver{
			HTTPAddress: f.Receiver.HTTPAddress,
		},
		Subscriber: Subscriber{
			ServerURL:      f.Subscriber.ServerURL,
			CallbackURL:    f.Subscriber.CallbackURL,
			Events:         f.Subscriber.Events,
			RequestTimeout: time.Duration(f.Subscriber.RequestTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds, in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!int" {
		var nanos int64
		if err := node.Decode(&nanos); err != nil {
			return err
		}
		*d = Duration(time.Duration(nanos))
		return nil
	}

	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
