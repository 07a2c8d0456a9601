package services

import (
	"errors"
	"testing"

	"github.com/kader009/foodlane-server/models"
	"github.com/kader009/foodlane-server/utils"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := models.User{Email: "new@example.com", Password: "supersecret", Name: "New User"}
	if err := svc.Register(&user); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// password is stored as a hash, never plaintext
	if user.Password == "supersecret" {
		t.Error("password stored in plaintext")
	}
	if !utils.CheckPasswordHash("supersecret", user.Password) {
		t.Error("stored hash does not verify against the original password")
	}

	// second registration with the same email writes nothing
	dup := models.User{Email: "new@example.com", Password: "otherpassword"}
	if err := svc.Register(&dup); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate Register() error = %v, want ErrEmailTaken", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "new@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user rows = %d, want exactly 1", count)
	}
}

func TestRegisterDuplicateBackstop(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	if err := svc.Register(&models.User{Email: "dup@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// an insert that slips past the pre-check, as in a registration race,
	// must land on the unique index and map to ErrEmailTaken
	err := db.Create(&models.User{Email: "dup@example.com", Password: "irrelevant"}).Error
	if err == nil {
		t.Fatal("unique index did not reject the duplicate email")
	}
	if !isDuplicateErr(err) {
		t.Errorf("driver duplicate error not recognized: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	seed := models.User{Email: "login@example.com", Password: "correcthorse", Name: "Login User"}
	if err := svc.Register(&seed); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("unknown email", func(t *testing.T) {
		user, err := svc.Authenticate("missing@example.com", "whatever")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("Authenticate() error = %v, want ErrUserNotFound", err)
		}
		if user != nil {
			t.Errorf("Authenticate() returned user %+v on failure", user)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		user, err := svc.Authenticate("login@example.com", "wrongpassword")
		if !errors.Is(err, ErrWrongPassword) {
			t.Errorf("Authenticate() error = %v, want ErrWrongPassword", err)
		}
		if user != nil {
			t.Errorf("Authenticate() returned user %+v on failure", user)
		}
	})

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Authenticate("login@example.com", "correcthorse")
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if user.Email != "login@example.com" {
			t.Errorf("Authenticate() returned %q, want login@example.com", user.Email)
		}
	})
}
