/*
Package main provides the entry point for the CBeT sentinelles API server.

The server backs the public site's forms (contact messages, volunteer
"sentinelle" engagements, field collection reports) and the lab dashboard
(lab test records and read access to every table behind Basic auth).

# Starting the Server

The server reads environment variables, an optional .env file, an optional
YAML file and CLI flags:

	DATABASE_URL=postgres://... LAB_PASSWORD=... go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -lab-password ...

Local development without Postgres:

	go run . -t sqlite -d cbet.db -lab-password dev

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string or SQLite file
  - LAB_PASSWORD (-lab-password) or LAB_PASSWORD_HASH (-lab-password-hash)

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - LAB_USERNAME (-lab-user): dashboard user (default: admin)
  - STATIC_DIR (-static): frontend files (default: public)

Print a bcrypt hash for LAB_PASSWORD_HASH:

	go run . -hash-password 's3cret'

# Architecture

  - handlers: HTTP request handlers (contact, sentinelles, recoltes, lab tests, static)
  - router: Route definitions using Go 1.22+ routing
  - middleware: request ids, logging, CORS, Basic auth, JSON helpers
  - forms: request body schemas and decoding
  - models: Request/response and row types
  - auth: lab credential verification
  - db: Store, schema creation and queries
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
