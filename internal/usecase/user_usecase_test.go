package usecase

import (
	"testing"

	"hris-backend/internal/model"
	"hris-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	repository.UserRepository
	users map[string]model.User
}

func (f *fakeUserRepo) Create(user model.User) error {
	user.ID = uint(len(f.users) + 1)
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*model.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]model.User{}}
	uc := NewUserUsecase(repo)

	if err := uc.Register("budi", "budi@example.com", "rahasia123", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["budi"]
	if user.Password == "rahasia123" {
		t.Fatalf("password tidak boleh disimpan plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia123")); err != nil {
		t.Fatalf("hash tidak cocok: %v", err)
	}
	// Role kosong jatuh ke default KARYAWAN
	if user.Role != model.RoleKaryawan {
		t.Fatalf("expected role default %s, got %s", model.RoleKaryawan, user.Role)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]model.User{}}
	uc := NewUserUsecase(repo)

	if err := uc.Register("admin", "admin@example.com", "admin123", model.RoleHR); err != nil {
		t.Fatalf("register error: %v", err)
	}

	tokenString, err := uc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("rahasia-negara-sangat-kuat"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token tidak valid: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["username"] != "admin" || claims["role"] != model.RoleHR {
		t.Fatalf("claims salah: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]model.User{}}
	uc := NewUserUsecase(repo)

	if err := uc.Register("budi", "", "benar123", ""); err != nil {
		t.Fatalf("register error: %v", err)
	}
	if _, err := uc.Login("budi", "salah123"); err == nil {
		t.Fatalf("expected error untuk password salah")
	}
	if _, err := uc.Login("tidak-ada", "apapun"); err == nil {
		t.Fatalf("expected error untuk user tidak ada")
	}
}
