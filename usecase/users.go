package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/services"
	"github.com/worklifedesks/utils"
)

var (
	ErrNotRegistered      = errors.New("no registered user")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UsersService owns the onboarding flow, login and the profile.
type UsersService struct {
	users     *repository.Users
	employees *repository.Employees
}

func NewUsersService(users *repository.Users, employees *repository.Employees) *UsersService {
	return &UsersService{users: users, employees: employees}
}

// Register is the first onboarding step: account details and password.
func (svc *UsersService) Register(ctx context.Context, u model.User, password string) (model.User, error) {
	if u.FirstName == "" || u.LastName == "" {
		return model.User{}, errors.New("first and last name are required")
	}
	if u.Email == "" {
		return model.User{}, errors.New("email is required")
	}
	hash, err := services.HashPassword(password)
	if err != nil {
		return model.User{}, err
	}
	u.Email = strings.ToLower(u.Email)
	u.PasswordHash = hash
	svc.users.SetCurrent(ctx, u)

	out := u
	out.PasswordHash = ""
	return out, nil
}

// SetCompany is the second onboarding step.
func (svc *UsersService) SetCompany(ctx context.Context, info model.CompanyInfo) (model.User, error) {
	u := svc.users.Current()
	if u == nil {
		return model.User{}, ErrNotRegistered
	}
	u.Company = &info
	svc.users.SetCurrent(ctx, *u)

	out := *u
	out.PasswordHash = ""
	return out, nil
}

// SetEmployees is the final onboarding step. The list becomes both the
// user's team and the persisted roster.
func (svc *UsersService) SetEmployees(ctx context.Context, items []model.Employee) (model.User, error) {
	u := svc.users.Current()
	if u == nil {
		return model.User{}, ErrNotRegistered
	}
	items = svc.employees.SetAll(ctx, items)
	u.Employees = items
	svc.users.SetCurrent(ctx, *u)

	out := *u
	out.PasswordHash = ""
	return out, nil
}

// Login verifies the credentials against the stored hash and marks the
// user online.
func (svc *UsersService) Login(ctx context.Context, email, password string) (model.User, error) {
	u := svc.users.Current()
	if u == nil {
		utils.TrackAuthAttempt("failure", "login")
		return model.User{}, ErrNotRegistered
	}
	if !strings.EqualFold(email, u.Email) || !services.ComparePasswords(u.PasswordHash, password) {
		utils.TrackAuthAttempt("failure", "login")
		return model.User{}, ErrInvalidCredentials
	}
	utils.TrackAuthAttempt("success", "login")
	svc.users.SetOnline(ctx, true)

	out := *u
	out.PasswordHash = ""
	return out, nil
}

func (svc *UsersService) Logout(ctx context.Context) {
	svc.users.SetOnline(ctx, false)
}

func (svc *UsersService) Current(ctx context.Context) (model.User, error) {
	u := svc.users.Current()
	if u == nil {
		return model.User{}, ErrNotRegistered
	}
	out := *u
	out.PasswordHash = ""
	return out, nil
}

func (svc *UsersService) Profile(ctx context.Context) model.Profile {
	return svc.users.Profile()
}

func (svc *UsersService) SetProfile(ctx context.Context, p model.Profile) model.Profile {
	svc.users.SetProfile(ctx, p)
	return p
}

func (svc *UsersService) Online(ctx context.Context) bool {
	return svc.users.Online()
}

func (svc *UsersService) SetOnline(ctx context.Context, online bool) {
	svc.users.SetOnline(ctx, online)
}
