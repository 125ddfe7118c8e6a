package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartque/smartque-api/internal/httperr"
)

// Format-level rejections only; DNS-dependent acceptance is not asserted
// here.
func TestValidateEmailRejectsBadFormat(t *testing.T) {
	for _, email := range []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"missing-at.example.com",
		"user@",
		"user@nodot",
	} {
		err := ValidateEmail(email)
		require.Error(t, err, email)
		assert.True(t, httperr.IsValidation(err), email)
	}
}
