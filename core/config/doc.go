// Package config centralizes application configuration loading.
//
// The Config struct is the central repository for all application settings,
// divided into subsections: server, storage, broker, log and database. Every
// backend resource name (orders table, image bucket, report bucket, queue) is
// supplied here and provisioned lazily by the component that owns it.
//
// Values come from environment variables (optionally via a .env file loaded
// with godotenv), with defaults declared on the struct tags and bound into
// Viper by reflection.
package config
