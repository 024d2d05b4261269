// Package config loads typed configuration structs from environment variables.
//
// It uses github.com/caarlos0/env for struct tag parsing and
// github.com/joho/godotenv to read an optional .env file once per process.
// Each infrastructure package (httpserver, redis, pg, cookie) exposes its own
// Config struct so the binary can compose exactly what it needs.
package config
