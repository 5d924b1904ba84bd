// Package config loads environment-based configuration for the vatkit CLI
// and for services embedding the registry client.
//
// Values come from the process environment, optionally seeded from a .env
// file in the working directory. Every field has a default, so Load succeeds
// on an empty environment.
package config
