package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rinkside/internal/domain/member"

	"github.com/google/uuid"
)

// MemberStore defines the member persistence interface shared by the
// member-facing orchestrators.
type MemberStore interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	Save(ctx context.Context, m member.Member) error
}

// RegisterMemberInput carries input for member registration.
type RegisterMemberInput struct {
	Name     string
	Email    string
	Phone    string
	Role     string // defaults to member
	Password string // optional: empty means the shared default password
}

// RegisterMemberResult carries the newly created member.
type RegisterMemberResult struct {
	Member member.Member
}

// RegisterMemberDeps holds dependencies for RegisterMember.
type RegisterMemberDeps struct {
	MemberStore MemberStore
	Now         func() time.Time // optional: defaults to time.Now
	GenerateID  func() string    // optional: defaults to uuid
}

// ExecuteRegisterMember validates and persists a new member.
// Duplicate emails are allowed: households commonly share an address, and
// login resolves ties by registration order.
// PRE: Name and Email are provided
// POST: Member persisted with payment status pending
func ExecuteRegisterMember(ctx context.Context, input RegisterMemberInput, deps RegisterMemberDeps) (RegisterMemberResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	generateID := uuid.NewString
	if deps.GenerateID != nil {
		generateID = deps.GenerateID
	}

	role := input.Role
	if role == "" {
		role = member.RoleMember
	}

	m := member.Member{
		ID:            generateID(),
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.TrimSpace(strings.ToLower(input.Email)),
		Phone:         strings.TrimSpace(input.Phone),
		Role:          role,
		PaymentStatus: member.PaymentPending,
		RegisteredAt:  now(),
	}
	if input.Password != "" {
		if err := m.SetPassword(input.Password); err != nil {
			return RegisterMemberResult{}, err
		}
	}

	if err := m.Validate(); err != nil {
		return RegisterMemberResult{}, err
	}

	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return RegisterMemberResult{}, err
	}

	slog.Info("member_event", "event", "registered", "member_id", m.ID, "email", m.Email, "role", m.Role)
	return RegisterMemberResult{Member: m}, nil
}

// UpdateMemberInput carries the partial update for one member. Nil pointer
// fields are left unchanged.
type UpdateMemberInput struct {
	MemberID string
	Name     *string
	Email    *string
	Phone    *string
	Role     *string
	Password *string
}

// UpdateMemberDeps holds dependencies for UpdateMember.
type UpdateMemberDeps struct {
	MemberStore MemberStore
}

// ExecuteUpdateMember merges the provided fields into an existing member.
// PRE: MemberID refers to an existing member
// POST: Only the provided fields change; RegisteredAt and payment state survive
func ExecuteUpdateMember(ctx context.Context, input UpdateMemberInput, deps UpdateMemberDeps) (member.Member, error) {
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return member.Member{}, err
	}

	if input.Name != nil {
		m.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		m.Email = strings.TrimSpace(strings.ToLower(*input.Email))
	}
	if input.Phone != nil {
		m.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Role != nil {
		m.Role = *input.Role
	}
	if input.Password != nil && *input.Password != "" {
		if err := m.SetPassword(*input.Password); err != nil {
			return member.Member{}, err
		}
	}

	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_event", "event", "updated", "member_id", m.ID)
	return m, nil
}
