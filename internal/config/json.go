package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Passphrase string `json:"passphrase"`
		StorageKey string `json:"storage_key"`
		HashKey    string `json:"hash_key"`
	} `json:"app,omitempty"`

	Crypto struct {
		KDF          string `json:"kdf"`
		Iterations   int    `json:"pbkdf2_iterations"`
		ArgonTime    uint32 `json:"argon_time"`
		ArgonMemory  uint32 `json:"argon_memory"`
		ArgonThreads uint8  `json:"argon_threads"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DSN        string `json:"dsn"`
		QuotaBytes int64  `json:"quota_bytes"`
		KeyPrefix  string `json:"key_prefix"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TestEndpoint   string   `json:"test_endpoint"`
	} `json:"adapter,omitempty"`

	Log struct {
		FilePath string `json:"file"`
		Level    string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Passphrase: jsonCfg.App.Passphrase,
			StorageKey: jsonCfg.App.StorageKey,
			HashKey:    jsonCfg.App.HashKey,
		},
		Crypto: Crypto{
			KDF:          jsonCfg.Crypto.KDF,
			Iterations:   jsonCfg.Crypto.Iterations,
			ArgonTime:    jsonCfg.Crypto.ArgonTime,
			ArgonMemory:  jsonCfg.Crypto.ArgonMemory,
			ArgonThreads: jsonCfg.Crypto.ArgonThreads,
		},
		Storage: Storage{
			DB:         DB{DSN: jsonCfg.Storage.DSN},
			QuotaBytes: jsonCfg.Storage.QuotaBytes,
			KeyPrefix:  jsonCfg.Storage.KeyPrefix,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			TestEndpoint:   jsonCfg.Adapter.TestEndpoint,
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
			Level:    jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
