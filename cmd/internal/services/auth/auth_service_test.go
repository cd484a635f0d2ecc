package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zhukovvlad/estimator-go/cmd/internal/config"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/estimator-go/cmd/internal/testutil"
)

/*
BEHAVIORAL SCENARIOS FOR TEAM AUTH SERVICE

What user problems does this protect us from?
================================================================================
1. Token security - access tokens must be properly signed and validated
2. Token expiration - expired tokens must be rejected
3. Passcode guessing - wrong passcodes and unknown teams look the same to the caller
4. Tenant mix-up - the token must carry the team it was issued for

GIVEN / WHEN / THEN Scenarios:
================================================================================

SCENARIO 1: Login
- GIVEN a team with a known passcode
  WHEN the correct passcode is presented
  THEN a token with the team ID is issued

- GIVEN an unknown team or a wrong passcode
  WHEN login is attempted
  THEN ErrInvalidCredentials is returned in both cases

SCENARIO 2: Token validation
- GIVEN an expired, foreign-signed, unsigned or malformed token
  WHEN it is validated
  THEN validation fails with ErrInvalidToken
*/

// mockLogger implements the Logger interface for testing
type mockLogger struct{}

func (m *mockLogger) Infof(format string, args ...any)  {}
func (m *mockLogger) Warnf(format string, args ...any)  {}
func (m *mockLogger) Errorf(format string, args ...any) {}

func testConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: secret,
			TokenTTL:  ttl,
		},
	}
}

// setupTestService creates service backed by the in-memory store
func setupTestService(t *testing.T) (*Service, *testutil.MemoryStore) {
	t.Helper()
	store := testutil.NewMemoryStore()
	return NewService(store, testConfig("test-secret-key-minimum-32-chars-long", 15*time.Minute), &mockLogger{}), store
}

// =============================================================================
// LOGIN
// =============================================================================

func TestLogin_Success(t *testing.T) {
	// GIVEN: A team with passcode "password"
	service, store := setupTestService(t)
	team := store.SeedTeam("core", testutil.TestPasscodeHash)

	// WHEN: The team logs in (name is trimmed)
	result, err := service.Login(context.Background(), "  core ", testutil.TestPasscode)

	// THEN: A token for that team is issued
	require.NoError(t, err)
	assert.Equal(t, team.ID, result.Team.ID)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	claims, err := service.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, team.ID, claims.TeamID)
	assert.Equal(t, "core", claims.TeamName)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service, store := setupTestService(t)
	store.SeedTeam("core", testutil.TestPasscodeHash)

	t.Run("wrong passcode", func(t *testing.T) {
		result, err := service.Login(context.Background(), "core", "wrong")
		assert.Nil(t, result)
		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("unknown team", func(t *testing.T) {
		result, err := service.Login(context.Background(), "nobody", testutil.TestPasscode)
		assert.Nil(t, result)
		assert.Equal(t, ErrInvalidCredentials, err)
	})
}

// =============================================================================
// TEAM CREATION
// =============================================================================

func TestCreateTeam(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	team, err := service.CreateTeam(ctx, " Platform ", "s3cret-code")
	require.NoError(t, err)
	assert.Equal(t, "Platform", team.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(team.PasscodeHash), []byte("s3cret-code")))

	t.Run("duplicate name", func(t *testing.T) {
		_, err := service.CreateTeam(ctx, "Platform", "another-code")
		var conflict *apierrors.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("short passcode", func(t *testing.T) {
		_, err := service.CreateTeam(ctx, "Short", "123")
		var validation *apierrors.ValidationError
		require.ErrorAs(t, err, &validation)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := service.CreateTeam(ctx, "   ", "long-enough")
		var validation *apierrors.ValidationError
		require.ErrorAs(t, err, &validation)
	})
}

// =============================================================================
// ACCESS TOKEN GENERATION AND VALIDATION TESTS
// =============================================================================

func TestGenerateAccessToken_Success(t *testing.T) {
	// GIVEN: A team
	service, _ := setupTestService(t)
	team := testutil.CreateTestTeam(123, "core")

	// WHEN: Access token is generated
	token, expiresAt, err := service.generateAccessToken(team)

	// THEN: Token is valid and contains correct data
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(123), claims.TeamID)
	assert.Equal(t, "123", claims.Subject)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
	assert.True(t, claims.ExpiresAt.Before(time.Now().Add(16*time.Minute)),
		"Token should expire within configured TTL")
}

func TestValidateAccessToken_Expired(t *testing.T) {
	// GIVEN: A service configured with negative TTL (instant expiration)
	service := &Service{
		config: testConfig("test-secret-key-minimum-32-chars-long", -1*time.Hour),
		logger: &mockLogger{},
	}

	expiredToken, _, err := service.generateAccessToken(testutil.CreateTestTeam(1, "core"))
	require.NoError(t, err)

	// WHEN: Expired token is validated
	claims, err := service.ValidateAccessToken(expiredToken)

	// THEN: Validation fails with invalid token error
	assert.Nil(t, claims)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateAccessToken_WrongSignature(t *testing.T) {
	// GIVEN: Two services with different secrets
	service1, _ := setupTestService(t)
	service2 := &Service{
		config: testConfig("different-secret-key-for-testing", 15*time.Minute),
		logger: &mockLogger{},
	}

	token, _, err := service1.generateAccessToken(testutil.CreateTestTeam(1, "core"))
	require.NoError(t, err)

	// WHEN: Token is validated with service2's secret
	claims, err := service2.ValidateAccessToken(token)

	// THEN: Validation fails due to signature mismatch
	assert.Nil(t, claims)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateAccessToken_Malformed(t *testing.T) {
	service, _ := setupTestService(t)

	testCases := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"random string", "not-a-jwt-token"},
		{"only two parts", "part1.part2"},
		{"invalid base64", "!!!.!!!.!!!"},
		{"valid format but garbage data", "aGVhZGVy.cGF5bG9hZA.c2lnbmF0dXJl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := service.ValidateAccessToken(tc.token)
			assert.Nil(t, claims)
			assert.Equal(t, ErrInvalidToken, err)
		})
	}
}

func TestValidateAccessToken_UnsafeAlgorithm(t *testing.T) {
	// GIVEN: A token signed with "none" algorithm
	service, _ := setupTestService(t)

	claims := TeamClaims{
		TeamID: 999,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			Issuer:    tokenIssuer,
		},
	}
	unsignedToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	// WHEN / THEN: the token is rejected
	result, err := service.ValidateAccessToken(unsignedToken)
	assert.Nil(t, result)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateAccessToken_ForeignIssuer(t *testing.T) {
	service, _ := setupTestService(t)

	claims := TeamClaims{
		TeamID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "someone-else",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key-minimum-32-chars-long"))
	require.NoError(t, err)

	result, err := service.ValidateAccessToken(token)
	assert.Nil(t, result)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestHashPasscode(t *testing.T) {
	hash, err := HashPasscode("password")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("password")))

	other, err := HashPasscode("password")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "bcrypt salts every hash")
}
