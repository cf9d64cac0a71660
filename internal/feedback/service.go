package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service manages feedback submission.
type Service struct {
	repo Repository
}

// NewService creates a feedback service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SubmitInput captures a feedback submission.
type SubmitInput struct {
	Email   string
	Message string
	Source  string
}

// Submit validates and stores a feedback entry.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (Entry, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return Entry{}, errors.New("a valid email is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		return Entry{}, errors.New("message must not be empty")
	}

	source := input.Source
	switch source {
	case SourceNoDemoAccounts, SourceWaitingList, SourceGeneral:
	case "":
		source = SourceGeneral
	default:
		return Entry{}, errors.New("unknown feedback source")
	}

	entry := Entry{
		ID:        uuid.New().String(),
		Email:     email,
		Message:   strings.TrimSpace(input.Message),
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// History returns the entries previously submitted by an email.
func (s *Service) History(ctx context.Context, email string) ([]Entry, error) {
	return s.repo.ListByEmail(ctx, email)
}
