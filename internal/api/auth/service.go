package auth

import (
	"context"
	"errors"
	"time"

	"artwork-app/internal/domain/shared"
	"artwork-app/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = time.Hour

// Service issues credentials: it hashes passwords, persists users and signs
// short-lived bearer tokens.
type Service struct {
	db     *gorm.DB
	secret []byte
	logger *zap.Logger
}

func NewService(db *gorm.DB, secret string, logger *zap.Logger) *Service {
	return &Service{db: db, secret: []byte(secret), logger: logger}
}

// GenerateToken signs an HS256 token carrying the user id and username,
// expiring after one hour.
func (s *Service) GenerateToken(user *users.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// Register creates a user with a bcrypt-hashed password and returns it with
// a fresh token. Username and email must both be unused.
func (s *Service) Register(ctx context.Context, username, email, password string) (*users.User, string, error) {
	if err := s.checkUnique(ctx, username, email, 0); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password", zap.Error(err))
		return nil, "", shared.NewDomainError(shared.CodeInternal, "Server error while registering user")
	}

	user := users.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The pre-check races against concurrent registrations; the unique
		// indexes have the final word.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", shared.NewDomainError(shared.CodeConflict, "Username or email already exists")
		}
		s.logger.Error("creating user", zap.String("username", username), zap.Error(err))
		return nil, "", shared.NewDomainError(shared.CodeInternal, "Server error while registering user")
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		s.logger.Error("signing token", zap.Error(err))
		return nil, "", shared.NewDomainError(shared.CodeInternal, "Could not create token")
	}
	return &user, token, nil
}

// Login verifies the password against the stored hash. An unknown username
// and a wrong password produce the same error so callers cannot probe for
// account existence.
func (s *Service) Login(ctx context.Context, username, password string) (*users.User, string, error) {
	invalid := shared.NewDomainError(shared.CodeInvalidCredentials, "Invalid credentials")

	var user users.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("looking up user", zap.String("username", username), zap.Error(err))
		}
		return nil, "", invalid
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", invalid
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		s.logger.Error("signing token", zap.Error(err))
		return nil, "", shared.NewDomainError(shared.CodeInternal, "Could not create token")
	}
	return &user, token, nil
}

// checkUnique reports which uniqueness constraint a registration or profile
// update would violate. excludeID skips the caller's own row on updates.
func (s *Service) checkUnique(ctx context.Context, username, email string, excludeID uint) error {
	return CheckUnique(ctx, s.db, s.logger, username, email, excludeID)
}

// CheckUnique is shared with the user-update path, which must report the
// same per-column conflict messages.
func CheckUnique(ctx context.Context, db *gorm.DB, logger *zap.Logger, username, email string, excludeID uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(&users.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error; err != nil {
		logger.Error("checking username uniqueness", zap.Error(err))
		return shared.NewDomainError(shared.CodeInternal, "Server error")
	}
	if count > 0 {
		return shared.NewDomainError(shared.CodeConflict, "Username already exists")
	}

	if err := db.WithContext(ctx).Model(&users.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		logger.Error("checking email uniqueness", zap.Error(err))
		return shared.NewDomainError(shared.CodeInternal, "Server error")
	}
	if count > 0 {
		return shared.NewDomainError(shared.CodeConflict, "Email already exists")
	}
	return nil
}
