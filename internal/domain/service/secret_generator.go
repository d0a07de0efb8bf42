package service

// SecretGenerator produces the unpredictable values rotated on every authentication.
type SecretGenerator interface {
	NewSessionID() (string, error)
	NewSigningSecret() (string, error)
}
