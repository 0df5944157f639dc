package service

import (
	"testing"

	"github.com/xinna-pharma/internal/config"
	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/repository"

	"github.com/stretchr/testify/require"
)

func newTestAuthService(f *shopFixture) *AuthService {
	cfg := &config.Config{
		JWT:     config.JWTConfig{SecretKey: "staff-secret", ExpireHours: 1},
		UserJWT: config.JWTConfig{SecretKey: "customer-secret", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8, RequireLower: true, RequireNumber: true},
		},
	}
	return NewAuthService(cfg, repository.NewStaffRepository(f.db), repository.NewCustomerRepository(f.db))
}

func TestRegisterAndLoginCustomer(t *testing.T) {
	f := setupShopFixture(t)
	auth := newTestAuthService(f)

	customer, token, _, err := auth.RegisterCustomer(RegisterCustomerInput{
		Name:     "Dewi",
		Email:    " Dewi@Example.com ",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, "dewi@example.com", customer.Email)

	claims, err := ParseCustomerJWT("customer-secret", token)
	require.NoError(t, err)
	require.Equal(t, customer.ID, claims.CustomerID)

	_, err = ParseCustomerJWT("staff-secret", token)
	require.Error(t, err)

	_, _, _, err = auth.RegisterCustomer(RegisterCustomerInput{Name: "Dewi", Email: "dewi@example.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrEmailExists)

	_, _, _, err = auth.RegisterCustomer(RegisterCustomerInput{Name: "Weak", Email: "weak@example.com", Password: "short"})
	require.ErrorIs(t, err, ErrWeakPassword)

	logged, _, _, err := auth.CustomerLogin("dewi@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, logged.LastLoginAt)

	_, _, _, err = auth.CustomerLogin("dewi@example.com", "wrong-pass1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStaffLoginAndProfileAccess(t *testing.T) {
	f := setupShopFixture(t)
	auth := newTestAuthService(f)

	hash, err := HashPassword("cashier123")
	require.NoError(t, err)
	staff := models.Staff{Username: "kasir", Name: "Kasir", PasswordHash: hash, Role: constants.StaffRoleCashier, Status: constants.AccountStatusActive}
	require.NoError(t, f.db.Create(&staff).Error)

	logged, token, _, err := auth.StaffLogin("kasir", "cashier123")
	require.NoError(t, err)
	require.Equal(t, staff.ID, logged.ID)

	claims, err := ParseStaffJWT("staff-secret", token)
	require.NoError(t, err)
	require.Equal(t, constants.StaffRoleCashier, claims.Role)

	profile, err := auth.GetStaffProfile(StaffPrincipal(staff.ID, staff.Role))
	require.NoError(t, err)
	require.Equal(t, "kasir", profile.Username)

	_, err = auth.GetCustomerProfile(StaffPrincipal(staff.ID, staff.Role))
	require.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.db.Model(&models.Staff{}).Where("id = ?", staff.ID).Update("status", constants.AccountStatusDisabled).Error)
	_, _, _, err = auth.StaffLogin("kasir", "cashier123")
	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestUpdateCustomerProfile(t *testing.T) {
	f := setupShopFixture(t)
	auth := newTestAuthService(f)
	customer := f.createCustomer(t, "profile")

	updated, err := auth.UpdateCustomerProfile(customer, UpdateProfileInput{
		Name:    "Rina",
		Phone:   "0811",
		Address: "Jl. Sudirman 1",
		City:    "Jakarta",
	})
	require.NoError(t, err)
	require.Equal(t, "Rina", updated.Name)
	require.Equal(t, "Jakarta", updated.City)

	_, err = auth.UpdateCustomerProfile(customer, UpdateProfileInput{Name: " "})
	require.ErrorIs(t, err, ErrInvalidInput)
}
