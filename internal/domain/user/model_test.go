package user

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{"valid", User{Name: "Maria", Email: "maria@example.com"}, false},
		{"empty name", User{Name: "", Email: "maria@example.com"}, true},
		{"whitespace name", User{Name: "   ", Email: "maria@example.com"}, true},
		{"empty email", User{Name: "Maria", Email: ""}, true},
		{"email without at", User{Name: "Maria", Email: "maria.example.com"}, true},
		{"name too long", User{Name: strings.Repeat("a", MaxNameLength+1), Email: "a@b.c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetAndCheckPassword(t *testing.T) {
	u := User{Name: "Maria", Email: "maria@example.com"}

	if err := u.SetPassword("segredo123"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "segredo123" {
		t.Fatal("password must be stored as a hash")
	}

	if err := u.CheckPassword("segredo123"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := u.CheckPassword("errada"); err != ErrWrongPassword {
		t.Errorf("CheckPassword with wrong password = %v, want ErrWrongPassword", err)
	}
}

func TestSetPasswordEmpty(t *testing.T) {
	u := User{}
	if err := u.SetPassword(""); err != ErrEmptyPassword {
		t.Errorf("SetPassword(\"\") = %v, want ErrEmptyPassword", err)
	}
}

func TestCheckPasswordWithoutHash(t *testing.T) {
	u := User{}
	if err := u.CheckPassword("qualquer"); err != ErrWrongPassword {
		t.Errorf("CheckPassword without hash = %v, want ErrWrongPassword", err)
	}
}
