package service

import (
	"context"
	"testing"

	"github.com/dmchealth/student-health-clinic/internal/config"
	"github.com/dmchealth/student-health-clinic/internal/model"
	"github.com/dmchealth/student-health-clinic/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- MockUserRepository ---
var _ repository.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*model.User, error)
	CreateFunc      func(ctx context.Context, user *model.User) error
	UpdateFunc      func(ctx context.Context, user *model.User) error
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			ExpireHours:     1,
			RefreshExpHours: 24,
		},
	}
}

func testUser(password string) *model.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &model.User{
		ID:       uuid.New(),
		Name:     "Perawat Satu",
		Email:    "perawat@klinik.ac.id",
		Password: string(hashed),
		Role:     model.RoleNurse,
		IsActive: true,
	}
}

func TestLogin_Success(t *testing.T) {
	user := testUser("Rahasia123")
	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "Rahasia123",
	})

	require.NoError(t, err)
	assert.Equal(t, user.Email, result.User.Email)
	assert.NotEmpty(t, result.Token.AccessToken)
	assert.NotEmpty(t, result.Token.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := testUser("Rahasia123")
	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "salah-total",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "tidakada@klinik.ac.id",
		Password: "apapun",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	user := testUser("Rahasia123")
	user.IsActive = false
	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "Rahasia123",
	})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return testUser("x"), nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Perawat Dua",
		Email:    "perawat@klinik.ac.id",
		Password: "Rahasia123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_DefaultsToNurseRole(t *testing.T) {
	var created *model.User
	mockRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *model.User) error {
			created = user
			return nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Perawat Baru",
		Email:    "baru@klinik.ac.id",
		Password: "Rahasia123",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, model.RoleNurse, resp.Role)
	// Password tersimpan sebagai hash bcrypt, bukan plaintext
	assert.NotEqual(t, "Rahasia123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Rahasia123")))
}
