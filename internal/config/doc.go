// Package config provides configuration loading, merging, and validation
// facilities for the delivery board server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty afterwards receive defaults (SQLite file
// "gestao_entregas.db", address "localhost:8080", eight-hour sessions, top
// ten tasks, batch-month replace scope).
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
