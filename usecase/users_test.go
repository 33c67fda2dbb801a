package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/utils"
)

func newUsersService() *UsersService {
	store := kv.NewMemory()
	users := repository.NewUsers(store)
	employees := repository.NewEmployees(store, &utils.SequenceGenerator{Prefix: "emp"})
	users.Load(context.Background())
	employees.Load(context.Background())
	return NewUsersService(users, employees)
}

func TestOnboardingFlow(t *testing.T) {
	svc := newUsersService()
	ctx := context.Background()

	// Company before registration is rejected.
	if _, err := svc.SetCompany(ctx, model.CompanyInfo{CompanyName: "Acme"}); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("SetCompany() before register = %v, want ErrNotRegistered", err)
	}

	user, err := svc.Register(ctx, model.User{
		FirstName: "Asha",
		LastName:  "Iyer",
		Email:     "Asha@Example.com",
	}, "hunter2!99")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash != "" {
		t.Error("password hash leaked in response")
	}

	if _, err := svc.SetCompany(ctx, model.CompanyInfo{CompanyName: "Acme"}); err != nil {
		t.Fatalf("SetCompany() error: %v", err)
	}

	withTeam, err := svc.SetEmployees(ctx, []model.Employee{{Name: "Ravi Menon", Title: "Engineer"}})
	if err != nil {
		t.Fatalf("SetEmployees() error: %v", err)
	}
	if len(withTeam.Employees) != 1 || withTeam.Employees[0].ID == "" {
		t.Errorf("employee not stored with id: %+v", withTeam.Employees)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc := newUsersService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.User{
		FirstName: "Asha", LastName: "Iyer", Email: "asha@example.com",
	}, "hunter2!99"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if _, err := svc.Login(ctx, "asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "hunter2!99"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with wrong email = %v, want ErrInvalidCredentials", err)
	}

	user, err := svc.Login(ctx, "ASHA@example.com", "hunter2!99")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("password hash leaked in response")
	}
	if !svc.Online(ctx) {
		t.Error("login should mark the user online")
	}

	svc.Logout(ctx)
	if svc.Online(ctx) {
		t.Error("logout should mark the user offline")
	}
}
