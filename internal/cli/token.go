package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/daystreak/internal/security"
	"github.com/terraincognita07/daystreak/internal/services"
)

// RunTokenCommand prints a bearer token for the given profile.
func RunTokenCommand(out io.Writer, secretKey string, profileID string, ttl time.Duration, now time.Time) error {
	normalizedID, err := services.NormalizeProfileID(profileID)
	if err != nil {
		return fmt.Errorf("profile id %q: %w", profileID, err)
	}

	token, err := security.IssueToken([]byte(secretKey), normalizedID, ttl, now)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
