package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/xinna-pharma/internal/cache"
	"github.com/xinna-pharma/internal/config"
	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 员工与顾客认证服务
type AuthService struct {
	cfg          *config.Config
	staffRepo    repository.StaffRepository
	customerRepo repository.CustomerRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, staffRepo repository.StaffRepository, customerRepo repository.CustomerRepository) *AuthService {
	return &AuthService{
		cfg:          cfg,
		staffRepo:    staffRepo,
		customerRepo: customerRepo,
	}
}

// StaffJWTClaims 员工令牌声明
type StaffJWTClaims struct {
	StaffID      uint   `json:"staff_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// CustomerJWTClaims 顾客令牌声明
type CustomerJWTClaims struct {
	CustomerID   uint   `json:"customer_id"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// RegisterCustomerInput 顾客注册输入
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UpdateProfileInput 顾客资料更新输入
type UpdateProfileInput struct {
	Name     string
	Phone    string
	Address  string
	City     string
	Postcode string
}

// HashPassword 使用 bcrypt 加密密码
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// StaffLogin 员工登录
func (s *AuthService) StaffLogin(username, password string) (*models.Staff, string, time.Time, error) {
	staff, err := s.staffRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if staff == nil || verifyPassword(staff.PasswordHash, password) != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if staff.Status != constants.AccountStatusActive {
		return nil, "", time.Time{}, ErrAccountDisabled
	}

	token, expiresAt, err := s.signStaffToken(staff)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	now := time.Now()
	staff.LastLoginAt = &now
	if err := s.staffRepo.TouchLastLogin(staff.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetStaffAuthState(context.Background(), cache.BuildStaffAuthState(staff))
	return staff, token, expiresAt, nil
}

// RegisterCustomer 顾客注册并签发令牌
func (s *AuthService) RegisterCustomer(input RegisterCustomerInput) (*models.Customer, string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, "", time.Time{}, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", time.Time{}, ErrInvalidInput
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password, email); err != nil {
		return nil, "", time.Time{}, err
	}
	existing, err := s.customerRepo.GetByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if existing != nil {
		return nil, "", time.Time{}, ErrEmailExists
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	customer := &models.Customer{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Status:       constants.AccountStatusActive,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, "", time.Time{}, err
	}
	token, expiresAt, err := s.signCustomerToken(customer)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, expiresAt, nil
}

// CustomerLogin 顾客登录
func (s *AuthService) CustomerLogin(email, password string) (*models.Customer, string, time.Time, error) {
	customer, err := s.customerRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if customer == nil || verifyPassword(customer.PasswordHash, password) != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if customer.Status != constants.AccountStatusActive {
		return nil, "", time.Time{}, ErrAccountDisabled
	}

	token, expiresAt, err := s.signCustomerToken(customer)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	now := time.Now()
	customer.LastLoginAt = &now
	if err := s.customerRepo.TouchLastLogin(customer.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetCustomerAuthState(context.Background(), cache.BuildCustomerAuthState(customer))
	return customer, token, expiresAt, nil
}

// GetCustomerProfile 获取当前顾客资料
func (s *AuthService) GetCustomerProfile(principal Principal) (*models.Customer, error) {
	if err := requireCustomer(principal); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(principal.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// UpdateCustomerProfile 顾客自助修改资料
func (s *AuthService) UpdateCustomerProfile(principal Principal, input UpdateProfileInput) (*models.Customer, error) {
	if err := requireCustomer(principal); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	affected, err := s.customerRepo.UpdateProfile(principal.ID, repository.CustomerAddress{
		Name:     name,
		Phone:    strings.TrimSpace(input.Phone),
		Address:  strings.TrimSpace(input.Address),
		City:     strings.TrimSpace(input.City),
		Postcode: strings.TrimSpace(input.Postcode),
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCustomerNotFound
	}
	return s.customerRepo.GetByID(principal.ID)
}

// GetStaffProfile 获取当前员工资料
func (s *AuthService) GetStaffProfile(principal Principal) (*models.Staff, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.GetByID(principal.ID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrUnauthorized
	}
	return staff, nil
}

func (s *AuthService) signStaffToken(staff *models.Staff) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(normalizeExpireHours(s.cfg.JWT.ExpireHours)) * time.Hour)
	claims := StaffJWTClaims{
		StaffID:      staff.ID,
		Username:     staff.Username,
		Role:         staff.Role,
		TokenVersion: staff.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *AuthService) signCustomerToken(customer *models.Customer) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(normalizeExpireHours(s.cfg.UserJWT.ExpireHours)) * time.Hour)
	claims := CustomerJWTClaims{
		CustomerID:   customer.ID,
		Email:        customer.Email,
		TokenVersion: customer.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ParseStaffJWT 解析员工令牌
func ParseStaffJWT(secret, tokenString string) (*StaffJWTClaims, error) {
	claims := &StaffJWTClaims{}
	if err := parseHS256(secret, tokenString, claims); err != nil {
		return nil, err
	}
	if claims.StaffID == 0 {
		return nil, errors.New("staff id missing in token")
	}
	return claims, nil
}

// ParseCustomerJWT 解析顾客令牌
func ParseCustomerJWT(secret, tokenString string) (*CustomerJWTClaims, error) {
	claims := &CustomerJWTClaims{}
	if err := parseHS256(secret, tokenString, claims); err != nil {
		return nil, err
	}
	if claims.CustomerID == 0 {
		return nil, errors.New("customer id missing in token")
	}
	return claims, nil
}

func parseHS256(secret, tokenString string, claims jwt.Claims) error {
	if strings.TrimSpace(secret) == "" {
		return errors.New("jwt secret missing")
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}

func normalizeExpireHours(hours int) int {
	if hours <= 0 {
		return 24
	}
	return hours
}
