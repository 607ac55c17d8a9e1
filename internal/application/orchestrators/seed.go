package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rinkside/internal/domain/attendance"
	"rinkside/internal/domain/member"
	"rinkside/internal/domain/post"
	"rinkside/internal/domain/session"

	"github.com/google/uuid"
)

// builtinAccountDef defines a single built-in account to seed.
type builtinAccountDef struct {
	Name  string
	Email string
	Role  string
}

// builtinAccounts returns the demo accounts every deployment carries. They
// authenticate with the shared default password until someone sets a real one.
func builtinAccounts() []builtinAccountDef {
	return []builtinAccountDef{
		{Name: "Rink Admin", Email: "admin@pentagonskating.com", Role: member.RoleAdmin},
		{Name: "Demo Member", Email: "member@pentagonskating.com", Role: member.RoleMember},
		{Name: "Debug User", Email: "debug@pentagonskating.com", Role: member.RoleDebug},
	}
}

// BuiltinSeedDeps holds stores needed for built-in account seeding.
type BuiltinSeedDeps struct {
	MemberStore MemberStore
	Now         func() time.Time
}

// ExecuteSeedBuiltinAccounts creates the built-in accounts if they don't
// already exist. It is idempotent: accounts are matched by email and skipped
// when present.
// PRE: Database is migrated
// POST: One member record per built-in account exists
func ExecuteSeedBuiltinAccounts(ctx context.Context, deps BuiltinSeedDeps) error {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	created := 0
	for _, def := range builtinAccounts() {
		if _, err := deps.MemberStore.GetByEmail(ctx, def.Email); err == nil {
			continue // already exists
		}

		m := member.Member{
			ID:            uuid.NewString(),
			Name:          def.Name,
			Email:         def.Email,
			Role:          def.Role,
			PaymentStatus: member.PaymentPending,
			RegisteredAt:  now(),
		}
		if err := deps.MemberStore.Save(ctx, m); err != nil {
			return fmt.Errorf("seed builtin account %s: %w", def.Email, err)
		}
		created++
	}

	if created > 0 {
		slog.Info("seed_event", "event", "builtin_accounts_seeded", "created", created)
	}
	return nil
}

// SyntheticSeedDeps holds all stores needed for synthetic data seeding.
type SyntheticSeedDeps struct {
	MemberStore     synMemberStore
	SessionStore    synSessionStore
	AttendanceStore synAttendanceStore
	PostStore       synPostStore
	Now             func() time.Time
}

type synMemberStore interface {
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	Save(ctx context.Context, m member.Member) error
}
type synSessionStore interface {
	Save(ctx context.Context, s session.Session) error
}
type synAttendanceStore interface {
	Save(ctx context.Context, r attendance.Record) error
}
type synPostStore interface {
	Save(ctx context.Context, p post.Post) error
}

// ExecuteSeedSynthetic fills a development database with a small, plausible
// roster: a handful of members, the past and coming week of sessions, marked
// attendance for the past ones, and a couple of blog posts. The first member's
// email doubles as the idempotency marker.
// PRE: Database is migrated
// POST: Synthetic roster exists; running twice changes nothing
func ExecuteSeedSynthetic(ctx context.Context, deps SyntheticSeedDeps) error {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	today := now()

	names := []struct {
		Name  string
		Email string
		Paid  bool
	}{
		{"Sarah Johnson", "sarah.johnson@example.com", true},
		{"Marcus Lee", "marcus.lee@example.com", false},
		{"Priya Patel", "priya.patel@example.com", true},
		{"Tom Okafor", "tom.okafor@example.com", false},
		{"Elena Rodriguez", "elena.rodriguez@example.com", true},
	}

	if _, err := deps.MemberStore.GetByEmail(ctx, names[0].Email); err == nil {
		return nil // already seeded
	}

	var memberIDs []string
	for i, n := range names {
		status := member.PaymentPending
		if n.Paid {
			status = member.PaymentPaid
		}
		m := member.Member{
			ID:            uuid.NewString(),
			Name:          n.Name,
			Email:         n.Email,
			Role:          member.RoleMember,
			PaymentStatus: status,
			RegisteredAt:  today.AddDate(0, -(len(names) - i), 0),
		}
		if err := deps.MemberStore.Save(ctx, m); err != nil {
			return fmt.Errorf("seed member %s: %w", n.Email, err)
		}
		memberIDs = append(memberIDs, m.ID)
	}

	// One session per day, last week through next week.
	for offset := -7; offset <= 7; offset++ {
		day := today.AddDate(0, 0, offset)
		sessionType := session.TypeRegular
		if day.Weekday() == time.Wednesday {
			sessionType = session.TypeTraining
		}
		s := session.Session{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("%s Skate", day.Weekday()),
			Date:        day.Format("2006-01-02"),
			Time:        "19:00",
			Type:        sessionType,
			Instructor:  "Coach Kim",
			MaxCapacity: session.DefaultMaxCapacity,
			Status:      session.StatusScheduled,
			CreatedAt:   today.AddDate(0, 0, -14),
		}
		if err := deps.SessionStore.Save(ctx, s); err != nil {
			return fmt.Errorf("seed session %s: %w", s.Date, err)
		}

		if offset >= 0 {
			continue // future sessions stay unmarked
		}
		for i, mid := range memberIDs {
			// Rotate who misses which night so streaks and rates vary.
			status := attendance.StatusPresent
			switch ((offset+i)%3 + 3) % 3 {
			case 0:
				status = attendance.StatusAbsent
			case 1:
				if i%2 == 0 {
					status = attendance.StatusLate
				}
			}
			r := attendance.Record{
				ID:         uuid.NewString(),
				SessionID:  s.ID,
				MemberID:   mid,
				Status:     status,
				RecordedAt: day.Add(19 * time.Hour),
			}
			if err := deps.AttendanceStore.Save(ctx, r); err != nil {
				return fmt.Errorf("seed attendance: %w", err)
			}
		}
	}

	posts := []post.Post{
		{
			ID:        uuid.NewString(),
			Title:     "Welcome to the new season",
			Excerpt:   "Session times, fees, and what to bring.",
			Content:   "## Season kickoff\n\nSessions run nightly at **19:00**. Bring your own skates or rent at the desk.",
			Author:    "Rink Admin",
			Category:  post.CategoryCommunity,
			Status:    post.StatusPublished,
			Featured:  true,
			CreatedAt: today.AddDate(0, 0, -10),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Bearing maintenance basics",
			Excerpt:   "Five minutes after each session keeps them spinning.",
			Content:   "## Clean and dry\n\nWipe the rails, pop the bearings monthly, and never skate through water.",
			Author:    "Coach Kim",
			Category:  post.CategoryEquipment,
			Status:    post.StatusDraft,
			CreatedAt: today.AddDate(0, 0, -3),
		},
	}
	for _, p := range posts {
		if p.Status == post.StatusPublished {
			p.PublishedAt = p.CreatedAt
		}
		if err := deps.PostStore.Save(ctx, p); err != nil {
			return fmt.Errorf("seed post %q: %w", p.Title, err)
		}
	}

	slog.Info("seed_event", "event", "synthetic_seeded", "members", len(memberIDs), "sessions", 15, "posts", len(posts))
	return nil
}
