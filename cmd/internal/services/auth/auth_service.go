package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/zhukovvlad/estimator-go/cmd/internal/config"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/apierrors"
)

var (
	ErrInvalidCredentials = errors.New("invalid team name or passcode")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const (
	tokenIssuer       = "estimator-go"
	minPasscodeLength = 6
	maxTeamNameLength = 100
)

// dummyPasscodeHash используется для защиты от timing attacks
var dummyPasscodeHash []byte

func init() {
	var err error
	dummyPasscodeHash, err = bcrypt.GenerateFromPassword([]byte("dummy-passcode-for-timing-protection"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to generate dummy hash: %v", err))
	}
}

// Logger - то, что сервису нужно от логгера. *logging.Logger ему удовлетворяет.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// TeamClaims представляет payload JWT токена команды
type TeamClaims struct {
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
	jwt.RegisteredClaims
}

// Service выдаёт токены командам по общему коду доступа
type Service struct {
	store  db.Store
	config *config.Config
	logger Logger
}

// NewService создает новый auth service
func NewService(store db.Store, cfg *config.Config, logger Logger) *Service {
	return &Service{
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// LoginResult содержит результат успешной аутентификации
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Team        db.Team
}

// Login проверяет код доступа команды и выдаёт access token.
func (s *Service) Login(ctx context.Context, teamName, passcode string) (*LoginResult, error) {
	teamName = strings.TrimSpace(teamName)

	team, err := s.store.GetTeamByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Выполняем dummy сравнение для защиты от timing attacks
			_ = bcrypt.CompareHashAndPassword(dummyPasscodeHash, []byte(passcode))
			s.logger.Warnf("Попытка входа в несуществующую команду %q", teamName)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(team.PasscodeHash), []byte(passcode)); err != nil {
		s.logger.Warnf("Неверный код доступа для команды %d", team.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.generateAccessToken(team)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Infof("Команда %d вошла в систему", team.ID)
	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Team:        team,
	}, nil
}

// CreateTeam регистрирует команду с кодом доступа (используется утилитой createteam).
func (s *Service) CreateTeam(ctx context.Context, name, passcode string) (db.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxTeamNameLength {
		return db.Team{}, apierrors.NewValidationError("team name must be between 1 and %d characters", maxTeamNameLength)
	}
	if len(passcode) < minPasscodeLength {
		return db.Team{}, apierrors.NewValidationError("passcode must be at least %d characters", minPasscodeLength)
	}

	hash, err := HashPasscode(passcode)
	if err != nil {
		return db.Team{}, err
	}

	team, err := s.store.CreateTeam(ctx, db.CreateTeamParams{Name: name, PasscodeHash: hash})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return db.Team{}, apierrors.NewConflictError("team %q already exists", name)
		}
		return db.Team{}, fmt.Errorf("failed to create team: %w", err)
	}
	s.logger.Infof("Создана команда %q (ID: %d)", team.Name, team.ID)
	return team, nil
}

// HashPasscode возвращает bcrypt-хеш кода доступа.
func HashPasscode(passcode string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hash), nil
}

// ValidateAccessToken валидирует JWT access token и возвращает claims
func (s *Service) ValidateAccessToken(tokenString string) (*TeamClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TeamClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TeamClaims)
	if !ok || !token.Valid || claims.TeamID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// generateAccessToken создает JWT access token
func (s *Service) generateAccessToken(team db.Team) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.config.Auth.TokenTTL)
	claims := TeamClaims{
		TeamID:   team.ID,
		TeamName: team.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(team.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	return signed, expiresAt, err
}
