package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Redis     RedisConfigs
	Webhook   WebhookConfigs
	Page      PageConfigs
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// DatabaseConfigs selects the tenant storage backend. Driver is one of
// "mysql", "sqlite" or "redis"; Connection is the DSN (mysql), the file path
// (sqlite) or unused (redis, which uses RedisConfigs).
type DatabaseConfigs struct {
	Driver     string
	Connection string
}

type RedisConfigs struct {
	Addr string
}

type WebhookConfigs struct {
	// VerifyToken is the shared secret echoed back by Facebook during the
	// subscription handshake.
	VerifyToken string

	// EngineURL is the base URL of the downstream game engine receiving
	// forwarded Messenger events.
	EngineURL string

	// ForwardTimeout bounds a single forward attempt. It must stay well under
	// Facebook's retry-trigger window.
	ForwardTimeout time.Duration
}

type PageConfigs struct {
	// RateSumTolerance is the accepted deviation of the prize rate sum from
	// 1.0, absorbing the float error of dashboards that edit rates as
	// percentages.
	RateSumTolerance float64

	// MinTokenLength is a sanity check on rotated page access tokens, not a
	// validation of the real Facebook token format.
	MinTokenLength int
}
