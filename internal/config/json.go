package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version    string `json:"version"`
		BcryptCost int    `json:"bcrypt_cost"`
		LogLevel   string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey       string `json:"jwt_secret"`
		TokenIssuer        string `json:"jwt_issuer"`
		TokenExpirySeconds int64  `json:"jwt_expiry_seconds"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			Username     string `json:"username"`
			Password     string `json:"password"`
			MaxOpenConns int    `json:"max_open_conns"`
			AutoMigrate  bool   `json:"auto_migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Synthesizer struct {
		APIKey        string   `json:"api_key"`
		Endpoint      string   `json:"api_url"`
		Timeout       Duration `json:"timeout"`
		SurfaceErrors bool     `json:"surface_errors"`
	} `json:"nano_banana,omitempty"`
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
			Version:    jsonCfg.App.Version,
			BcryptCost: jsonCfg.App.BcryptCost,
			LogLevel:   jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey:       jsonCfg.Auth.TokenSignKey,
			TokenIssuer:        jsonCfg.Auth.TokenIssuer,
			TokenExpirySeconds: jsonCfg.Auth.TokenExpirySeconds,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				Username:     jsonCfg.Storage.DB.Username,
				Password:     jsonCfg.Storage.DB.Password,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				AutoMigrate:  jsonCfg.Storage.DB.AutoMigrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Synthesizer: Synthesizer{
			APIKey:        jsonCfg.Synthesizer.APIKey,
			Endpoint:      jsonCfg.Synthesizer.Endpoint,
			Timeout:       time.Duration(jsonCfg.Synthesizer.Timeout),
			SurfaceErrors: jsonCfg.Synthesizer.SurfaceErrors,
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
