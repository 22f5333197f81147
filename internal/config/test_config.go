package config

import "time"

func LoadTestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8081,
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 5 * time.Second,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Session: SessionConfig{
			CookieName: "rf_session",
			TTL:        time.Hour,
		},
		Notify: NotifyConfig{
			TTL: 3 * time.Second,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		},
	}
}
