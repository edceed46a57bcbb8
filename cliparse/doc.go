/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: database connection string (required)
  - DatabaseType: postgres or sqlite (default: postgres)
  - LabUsername: dashboard username (default: admin)
  - LabPassword / LabPasswordHash: dashboard secret, plain or bcrypt (one required)
  - LabRealm: Basic auth realm (default: Laboratoire Central CBeT)
  - StaticDir: frontend files (default: public)
  - MaxBodyBytes: request body cap (default: 1 MiB)

# Sources

Values are layered, later sources winning:

	defaults → YAML file (-c / CONFIG_FILE) → environment → CLI flags

# CLI Flags

	-c                  YAML config file
	-p                  Server port
	-d                  Database URL
	-t                  Database type
	-static             Static files directory
	-lab-user           Dashboard username
	-lab-password       Dashboard password
	-lab-password-hash  Dashboard bcrypt hash
	-hash-password      Print a bcrypt hash and exit

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, LAB_USERNAME, LAB_PASSWORD,
	LAB_PASSWORD_HASH, LAB_REALM, STATIC_DIR, MAX_BODY_BYTES, CONFIG_FILE

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be postgres or sqlite
  - LAB_PASSWORD or LAB_PASSWORD_HASH must be provided
*/
package cliparse
