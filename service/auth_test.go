package service

import (
	"Tribune/pkg/jwt"
	"Tribune/types"
	"context"
	"net/http"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	reg, err := env.Auth.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("register should return a token")
	}

	claims, err := jwt.ParseToken([]byte("test-secret"), "access", reg.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != reg.User.ID || claims.Username != "alice" {
		t.Fatalf("claims = %+v, want user %d alice", claims, reg.User.ID)
	}

	login, err := env.Auth.Login(ctx, &types.LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Fatalf("login user = %d, want %d", login.User.ID, reg.User.ID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &types.RegisterRequest{Username: "alice", Password: "secret123"}
	if _, err := env.Auth.Register(ctx, req); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := env.Auth.Register(ctx, req)
	assertBizCode(t, err, http.StatusBadRequest)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.Auth.Register(ctx, &types.RegisterRequest{
		Username: "alice", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := env.Auth.Login(ctx, &types.LoginRequest{Username: "alice", Password: "wrong"})
	assertBizCode(t, err, http.StatusUnauthorized)

	_, err = env.Auth.Login(ctx, &types.LoginRequest{Username: "nobody", Password: "secret123"})
	assertBizCode(t, err, http.StatusUnauthorized)
}

func TestCurrentUserGuest(t *testing.T) {
	env := newTestEnv(t)
	user, err := env.Auth.CurrentUser(context.Background(), 0)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user != nil {
		t.Fatalf("guest user = %+v, want nil", user)
	}
}
