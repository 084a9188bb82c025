package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/internal/config"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "ops@example.com", NormalizeEmail("  Ops@Example.COM "))
	require.Equal(t, "", NormalizeEmail("   "))
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		policy   config.PasswordPolicy
		password string
		wantErr  bool
	}{
		{
			name:     "length only, long enough",
			policy:   config.PasswordPolicy{MinLength: 10},
			password: "abcdefghij",
		},
		{
			name:     "too short",
			policy:   config.PasswordPolicy{MinLength: 10},
			password: "abcdefghi",
			wantErr:  true,
		},
		{
			name:     "uppercase required and missing",
			policy:   config.PasswordPolicy{MinLength: 8, RequireUppercase: true},
			password: "alllowercase",
			wantErr:  true,
		},
		{
			name:     "lowercase required and missing",
			policy:   config.PasswordPolicy{MinLength: 8, RequireLowercase: true},
			password: "ALLUPPERCASE",
			wantErr:  true,
		},
		{
			name:     "digit required and missing",
			policy:   config.PasswordPolicy{MinLength: 8, RequireDigit: true},
			password: "nodigitshere",
			wantErr:  true,
		},
		{
			name:     "full policy satisfied",
			policy:   config.PasswordPolicy{MinLength: 10, RequireUppercase: true, RequireLowercase: true, RequireDigit: true},
			password: "Sufficient1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.policy, tc.password)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			require.Equal(t, apperrors.CodeWeakPassword, appErr.Code)
		})
	}
}
