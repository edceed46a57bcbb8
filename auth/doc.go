/*
Package auth verifies the lab dashboard credentials.

# Verifier

Protected routes depend only on the Verifier interface:

	type Verifier interface {
		Verify(ctx context.Context, username, password string) bool
	}

Two implementations ship with the server:

  - StaticVerifier: one username/password pair, constant-time comparison
  - BcryptVerifier: one username and a bcrypt hash of the password

NewVerifier picks between them from configuration:

	v, err := auth.NewVerifier(cfg.LabUsername, cfg.LabPassword, cfg.LabPasswordHash)

# Hashes

Generate a value for LAB_PASSWORD_HASH with:

	hash, err := auth.HashPassword("s3cret")

or from the command line with the -hash-password flag.

There are no sessions, tokens, lockouts or rate limits; every request is
checked on its own.
*/
package auth
