package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		require.GreaterOrEqual(t, otp, 100000)
		require.LessOrEqual(t, otp, 999999)
	}
}
