package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tasknest/tasknest/internal/core/domain"
	"github.com/tasknest/tasknest/internal/core/ports"
	"github.com/tasknest/tasknest/internal/infrastructure/db/memory"
)

func newReminderService() *ReminderService {
	return NewReminderService(memory.NewReminderRepository(), &captureRecorder{}, zerolog.Nop())
}

func TestReminderService_Create_Defaults(t *testing.T) {
	svc := newReminderService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, ports.CreateReminderInput{
		Text: "Team meeting",
		Time: "3:00 PM",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Category != "Personal" {
		t.Fatalf("expected default category Personal, got %q", created.Category)
	}
	if created.DueDate.IsZero() {
		t.Fatalf("expected due date to default to creation time")
	}
	if created.Completed {
		t.Fatalf("new reminders must start incomplete")
	}
	if created.OwnerID != alice.ID || created.OwnerName != "Alice" {
		t.Fatalf("owner snapshot wrong: %+v", created)
	}
}

func TestReminderService_Update_MergesFields(t *testing.T) {
	svc := newReminderService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, alice, ports.CreateReminderInput{
		Text:     "Client call",
		Time:     "10:30 AM",
		Category: "Work",
	})

	newTime := "11:00 AM"
	updated, err := svc.Update(ctx, alice, created.ID, ports.UpdateReminderInput{Time: &newTime})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Time != "11:00 AM" {
		t.Fatalf("time not updated: %q", updated.Time)
	}
	if updated.Text != "Client call" || updated.Category != "Work" {
		t.Fatalf("unset fields must be left unchanged: %+v", updated)
	}
}

// The ownership rule must behave identically for reminders and todos; no
// resource type gets special-cased authorization.
func TestReminderService_OwnershipRuleMatchesTodos(t *testing.T) {
	svc := newReminderService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, bob, ports.CreateReminderInput{Text: "Bob's reminder", Time: "9:00 AM"})

	text := "hijacked"
	if _, err := svc.Update(ctx, alice, created.ID, ports.UpdateReminderInput{Text: &text}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("update: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Toggle(ctx, alice, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("toggle: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, alice, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("delete: expected ErrForbidden, got %v", err)
	}

	if _, err := svc.Toggle(ctx, admin, created.ID); err != nil {
		t.Fatalf("admin toggle failed: %v", err)
	}
	if err := svc.Delete(ctx, admin, created.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}

func TestReminderService_Toggle_Involution(t *testing.T) {
	svc := newReminderService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, alice, ports.CreateReminderInput{Text: "Dentist", Time: "4:30 PM"})

	once, err := svc.Toggle(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	twice, err := svc.Toggle(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if once.Completed == twice.Completed {
		t.Fatalf("two toggles must flip and restore completed")
	}
	if twice.Completed != created.Completed {
		t.Fatalf("two toggles must restore the original value")
	}
}

func TestReminderService_List_ScopedToOwner(t *testing.T) {
	svc := newReminderService()
	ctx := context.Background()

	_, _ = svc.Create(ctx, alice, ports.CreateReminderInput{Text: "Alice's", Time: "9:00 AM"})
	_, _ = svc.Create(ctx, bob, ports.CreateReminderInput{Text: "Bob's", Time: "9:00 AM"})

	aliceReminders, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(aliceReminders) != 1 || aliceReminders[0].Text != "Alice's" {
		t.Fatalf("unexpected reminders for alice: %+v", aliceReminders)
	}

	all, err := svc.List(ctx, admin)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see all reminders, got %d", len(all))
	}
}

func TestReminderService_NotFound(t *testing.T) {
	svc := newReminderService()
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, alice, "missing-id"); !errors.Is(err, domain.ErrReminderNotFound) {
		t.Fatalf("expected ErrReminderNotFound, got %v", err)
	}
}

func TestReminderService_Create_ExplicitDueDate(t *testing.T) {
	svc := newReminderService()
	ctx := context.Background()

	due := time.Date(2026, 10, 1, 17, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, alice, ports.CreateReminderInput{
		Text:    "Project deadline",
		Time:    "5:00 PM",
		DueDate: due,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.DueDate.Equal(due) {
		t.Fatalf("expected due date %v, got %v", due, created.DueDate)
	}
}
