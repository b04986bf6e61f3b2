package utils

import (
	"context"
	"testing"

	"github.com/avdeyev/go-journal-keeper/models"
)

func TestGetUserFromContext_Found(t *testing.T) {
	want := models.User{UserID: 42, Username: "alice", Email: "alice@x.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user to be found in context")
	}
	if got.UserID != want.UserID || got.Username != want.Username {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong value type")
	}
}

func TestContextKey_String(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("unexpected key string: %s", UserCtxKey.String())
	}
}
