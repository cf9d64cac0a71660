package feedback

import (
	"context"
	"testing"
)

func TestSubmitAndHistory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	entry, err := svc.Submit(ctx, SubmitInput{
		Email:   "jane@example.com",
		Message: "Please tell me when demo accounts are back.",
		Source:  SourceNoDemoAccounts,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected generated entry id")
	}

	entries, err := svc.History(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 1 || entries[0].Source != SourceNoDemoAccounts {
		t.Fatalf("unexpected history: %+v", entries)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Submit(ctx, SubmitInput{Email: "not-an-email", Message: "hi"}); err == nil {
		t.Fatal("expected invalid email error")
	}
	if _, err := svc.Submit(ctx, SubmitInput{Email: "a@b.c", Message: "   "}); err == nil {
		t.Fatal("expected empty message error")
	}
	if _, err := svc.Submit(ctx, SubmitInput{Email: "a@b.c", Message: "hi", Source: "mystery"}); err == nil {
		t.Fatal("expected unknown source error")
	}
}

func TestSubmitDefaultsSource(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	entry, err := svc.Submit(context.Background(), SubmitInput{Email: "a@b.c", Message: "hi"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if entry.Source != SourceGeneral {
		t.Fatalf("expected default source, got %s", entry.Source)
	}
}
