package services

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"bathroom-report-api/middleware"
	"bathroom-report-api/models"
	"bathroom-report-api/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultTokenExpireHours = 168 // 7 days

// AuthService verifies admin credentials and issues session tokens.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// LoginResult carries the signed token and the sanitized account profile.
type LoginResult struct {
	Token string
	Admin models.Admin
}

// Login authenticates an active admin by email and password. Unknown email
// and wrong password produce the same error so the response never reveals
// which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	invalid := func(cause error) error {
		return utils.NewAppError(utils.KindUnauthorized, "Invalid email or password", cause)
	}

	var admin models.Admin
	err := s.db.WithContext(ctx).
		Where("email = ? AND active = ?", email, true).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid(err)
		}
		return nil, utils.TranslateDBError(err, "login failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, invalid(err)
	}

	token, err := GenerateToken(admin)
	if err != nil {
		return nil, utils.NewAppError(utils.KindInternal, "failed to generate token", err)
	}

	return &LoginResult{Token: token, Admin: admin}, nil
}

// GenerateToken creates the signed session token for an admin account.
func GenerateToken(admin models.Admin) (string, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || expireHours <= 0 {
		expireHours = defaultTokenExpireHours
	}

	claims := middleware.Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
