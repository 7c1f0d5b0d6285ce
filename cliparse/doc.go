// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first when present; real
environment variables win over file entries.

# Config Fields

  - Port: Server listen port (default: 8000)
  - MongoURI: MongoDB connection URI (required)
  - DBName: Database name (default: wavelength)
  - JWTSecret: Token signing secret (required)

# CLI Flags

	-p          Server port
	-d          MongoDB connection URI
	-n          Database name
	-jwt-secret Token signing secret

# Environment Variables

Flags fall back to environment variables:

	PORT       → -p
	MONGO_URI  → -d
	DB_NAME    → -n
	JWT_SECRET → -jwt-secret

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - MONGO_URI must be provided
  - JWT_SECRET must be provided
*/
package cliparse
