package auth

import (
	stderrors "errors"
	"log"
	"time"

	"vendora/internal/models"
	"vendora/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(email, name, password string) (*models.User, error)
	Login(email, password string) (*models.User, string, error)
	ValidateToken(tokenStr string) (*models.UserClaims, error)
}

type service struct {
	users     repositories.UserRepository
	jwtSecret string
}

func NewService(users repositories.UserRepository, jwtSecret string) Service {
	return &service{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(email, name, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, stderrors.New("email and password are required")
	}
	if len(password) < 8 {
		return nil, stderrors.New("password must be at least 8 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, stderrors.New("failed to hash password")
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		Password: string(hashed),
	}
	if err := s.users.Create(user); err != nil {
		log.Printf("register failed for %s: %v", email, err)
		return nil, stderrors.New("failed to create user")
	}
	return user, nil
}

func (s *service) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, "", stderrors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", stderrors.New("invalid credentials")
	}

	now := time.Now()
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "vendora-api",
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, "", stderrors.New("error generating token")
	}

	return user, token, nil
}

func (s *service) ValidateToken(tokenStr string) (*models.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, stderrors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, stderrors.New("invalid token claims")
	}
	return claims, nil
}
