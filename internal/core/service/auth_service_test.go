package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

const testSecret = "test-secret"

func newAuthFixture() (*AuthService, *stubUserRepo) {
	users := newStubUserRepo()
	svc := NewAuthService(users, newStubClassRepo(), newStubSubjectRepo(), testSecret, time.Hour, discardLogger)
	return svc, users
}

func TestAuthService_Register_DefaultsToStudent(t *testing.T) {
	svc, _ := newAuthFixture()

	res, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "ada", Email: "ada@example.com", Password: "secret",
		FirstName: "Ada", LastName: "Lovelace",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.User.Role != string(domain.RoleStudent) {
		t.Errorf("expected default role STUDENT, got %q", res.User.Role)
	}
	if !res.User.Enabled {
		t.Error("new accounts must be enabled")
	}
	if res.Token == "" {
		t.Fatal("expected a token")
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims["role"] != string(domain.RoleStudent) {
		t.Errorf("role claim wrong: %v", claims["role"])
	}
	if claims["sub"] != res.User.ID {
		t.Errorf("sub claim wrong: %v", claims["sub"])
	}
}

func TestAuthService_Register_RejectsDuplicates(t *testing.T) {
	svc, users := newAuthFixture()
	users.add(&domain.User{Username: "ada", Email: "ada@example.com"})

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "ada", Email: "fresh@example.com", Password: "x",
	})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected username conflict, got %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "fresh", Email: "ada@example.com", Password: "x",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email conflict, got %v", err)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "ada", Email: "a@b.c", Password: "x", Role: "SUPERUSER",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected role rejection, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "ada", Email: "ada@example.com", Password: "secret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "ada", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Token == "" || res.User.Username != "ada" {
		t.Errorf("unexpected result: %+v", res)
	}

	if _, err := svc.Login(context.Background(), "ada", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected credential rejection, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "ghost", "secret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}
}
