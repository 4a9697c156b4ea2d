// Package repo provides ProviderRepository implementations.
//
// PostgresRepository stores providers in the providers table created by the
// db package migrations. MemoryRepository keeps them in process memory and is
// selected when APP_DB_ENABLED=false.
//
// Both key providers by the encoded domain name, so lookups never decode.
package repo
