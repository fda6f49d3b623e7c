package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
		seen[otp] = struct{}{}
	}
	// 100 draws from a 900k space collapsing to a handful would mean a
	// broken generator.
	assert.Greater(t, len(seen), 90)
}
