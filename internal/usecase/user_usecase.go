package usecase

import (
	"time"

	"hris-backend/config"
	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(username, email, password, role string) error {
	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if role == "" {
		role = model.RoleKaryawan
	}

	// 2. Simpan ke Database
	user := model.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	return u.repo.Create(user)
}

func (u *UserUsecase) Login(username, password string) (string, error) {
	// 1. Cari user berdasarkan username
	user, err := u.repo.GetByUsername(username)
	if err != nil {
		return "", err
	}

	// 2. Bandingkan password input dengan hash di DB
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", err
	}

	// 3. Buat token JWT, expired 24 jam
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET", "rahasia-negara-sangat-kuat")))
}
