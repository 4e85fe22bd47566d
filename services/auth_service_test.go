package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"takabet-api/config"
	"takabet-api/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	config.InitJWT()
	os.Exit(m.Run())
}

func TestRegister_ForcesUserRole(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", "new@takabet.com").Return(nil, gorm.ErrRecordNotFound)

	var created *models.User
	repo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.User)
			created.ID = 1
		}).Return(nil)

	svc := NewAuthService(repo)
	response, err := svc.Register(models.RegisterRequest{
		Username: "newuser",
		Email:    "new@takabet.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.NotEmpty(t, response.Token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", "admin@takabet.com").Return(&models.User{ID: 1}, nil)

	svc := NewAuthService(repo)
	_, err := svc.Register(models.RegisterRequest{
		Username: "admin2",
		Email:    "admin@takabet.com",
		Password: "secret123",
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("GetByEmail", "admin@takabet.com").Return(&models.User{
		ID:       1,
		Email:    "admin@takabet.com",
		Password: string(hashed),
	}, nil)
	repo.On("GetByEmail", "ghost@takabet.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(repo)

	_, err = svc.Login(models.LoginRequest{Email: "admin@takabet.com", Password: "wrong"})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(models.LoginRequest{Email: "ghost@takabet.com", Password: "whatever"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_Success(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("GetByEmail", "admin@takabet.com").Return(&models.User{
		ID:       1,
		Username: "admin",
		Email:    "admin@takabet.com",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}, nil)

	svc := NewAuthService(repo)
	response, err := svc.Login(models.LoginRequest{Email: "admin@takabet.com", Password: "admin123"})

	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "admin", response.User.Username)
}
