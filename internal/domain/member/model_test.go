package member_test

import (
	"testing"

	"rinkside/internal/domain/member"
)

// TestMemberValidation tests validation of Member.
func TestMemberValidation(t *testing.T) {
	tests := []struct {
		name    string
		member  member.Member
		wantErr bool
	}{
		{
			name: "valid member",
			member: member.Member{
				ID:            "123",
				Name:          "Jane Doe",
				Email:         "jane@example.com",
				Role:          member.RoleMember,
				PaymentStatus: member.PaymentPending,
			},
			wantErr: false,
		},
		{
			name: "valid admin",
			member: member.Member{
				ID:            "123",
				Name:          "Admin User",
				Email:         "admin@example.com",
				Role:          member.RoleAdmin,
				PaymentStatus: member.PaymentPaid,
			},
			wantErr: false,
		},
		{
			name: "empty name",
			member: member.Member{
				ID:            "123",
				Name:          "",
				Email:         "jane@example.com",
				Role:          member.RoleMember,
				PaymentStatus: member.PaymentPending,
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			member: member.Member{
				ID:            "123",
				Name:          "Jane Doe",
				Email:         "not-an-email",
				Role:          member.RoleMember,
				PaymentStatus: member.PaymentPending,
			},
			wantErr: true,
		},
		{
			name: "invalid role",
			member: member.Member{
				ID:            "123",
				Name:          "Jane Doe",
				Email:         "jane@example.com",
				Role:          "superuser",
				PaymentStatus: member.PaymentPending,
			},
			wantErr: true,
		},
		{
			name: "invalid payment status",
			member: member.Member{
				ID:            "123",
				Name:          "Jane Doe",
				Email:         "jane@example.com",
				Role:          member.RoleMember,
				PaymentStatus: "overdue",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.member.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestCheckPassword_DefaultFallback verifies members without a stored hash
// accept only the shared default password.
func TestCheckPassword_DefaultFallback(t *testing.T) {
	m := member.Member{Name: "Jane", Email: "jane@example.com", Role: member.RoleMember, PaymentStatus: member.PaymentPending}

	if err := m.CheckPassword(member.DefaultPassword); err != nil {
		t.Errorf("default password rejected: %v", err)
	}
	if err := m.CheckPassword("wrong"); err == nil {
		t.Error("expected wrong password to be rejected")
	}
}

// TestCheckPassword_StoredHash verifies bcrypt verification once a password is set.
func TestCheckPassword_StoredHash(t *testing.T) {
	m := member.Member{Name: "Jane", Email: "jane@example.com", Role: member.RoleMember, PaymentStatus: member.PaymentPending}
	if err := m.SetPassword("skate-fast-123"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}

	if err := m.CheckPassword("skate-fast-123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := m.CheckPassword(member.DefaultPassword); err == nil {
		t.Error("default password must not work once a real password is set")
	}
	if err := m.CheckPassword("skate-fast-124"); err == nil {
		t.Error("expected wrong password to be rejected")
	}
}

// TestSetPassword_Empty verifies empty passwords are rejected.
func TestSetPassword_Empty(t *testing.T) {
	m := member.Member{}
	if err := m.SetPassword(""); err == nil {
		t.Error("expected error for empty password")
	}
}

// TestIsAdmin verifies the debug role carries admin rights.
func TestIsAdmin(t *testing.T) {
	for role, want := range map[string]bool{
		member.RoleMember: false,
		member.RoleAdmin:  true,
		member.RoleDebug:  true,
	} {
		m := member.Member{Role: role}
		if got := m.IsAdmin(); got != want {
			t.Errorf("IsAdmin() for role %s = %v, want %v", role, got, want)
		}
	}
}
