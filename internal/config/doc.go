// Package config loads and persists the forge.json registry
// configuration. The loaded Config value is handed explicitly to every
// pipeline stage; nothing reads configuration from package state.
package config
