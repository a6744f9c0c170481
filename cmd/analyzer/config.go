package main

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=info"`
	// MaxPayloadBytes is the request-size guard; 0 disables it.
	MaxPayloadBytes int `env:"MAX_PAYLOAD_BYTES,default=16777216"`
}
