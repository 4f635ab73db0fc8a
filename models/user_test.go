package models

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserJSONOmitsPassword(t *testing.T) {
	t.Parallel()

	user := User{
		ID:        primitive.NewObjectID(),
		FirstName: "Jane",
		LastName:  "Doe",
		EmailID:   "jane@example.com",
		Password:  "$2a$10$sekrethashsekrethashsekrethash",
		CreatedAt: 1700000000,
	}

	b, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	body := string(b)
	if strings.Contains(body, "$2a$10$") {
		t.Fatalf("password hash leaked into JSON: %s", body)
	}
	if strings.Contains(body, "password") {
		t.Fatalf("password key present in JSON: %s", body)
	}
	if !strings.Contains(body, `"email_id":"jane@example.com"`) {
		t.Fatalf("expected email in JSON: %s", body)
	}
}
