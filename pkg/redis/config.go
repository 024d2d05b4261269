package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // redis://:password@host:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	KeyPrefix     string        `env:"REDIS_PREFERENCE_PREFIX" envDefault:"areacalc:pref:"` // Namespace for preference keys.
	PreferenceTTL time.Duration `env:"REDIS_PREFERENCE_TTL" envDefault:"8760h"`             // Zero keeps preferences forever.
}
