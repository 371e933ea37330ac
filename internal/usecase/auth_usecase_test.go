package usecase

import (
	"context"
	"testing"

	"psych-portal-api/internal/domain/entity"
	"psych-portal-api/internal/infrastructure/oauth"

	"github.com/google/uuid"
)

func TestResolveGoogleIdentityCreatesNewProfessional(t *testing.T) {
	repo := &fakeProfessionalRepo{}
	audit := &fakeAuditService{}
	uc := NewAuthUsecase(newTestDB(), newTestLogger(), repo, audit)

	profile := &oauth.GoogleProfile{
		ID:         "google-sub-1",
		Email:      "ana@example.com",
		GivenName:  "Ana",
		FamilyName: "García",
	}

	professional, err := uc.ResolveGoogleIdentity(context.Background(), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if professional.UserID == nil || *professional.UserID != "google-sub-1" {
		t.Errorf("expected google subject linked, got %v", professional.UserID)
	}
	if professional.Role != entity.RoleUser {
		t.Errorf("expected USER role, got %s", professional.Role)
	}
	if !professional.IsActive {
		t.Error("new professionals must start active")
	}
	if professional.IsComplete() {
		t.Error("new professionals must start with an incomplete profile")
	}
	if len(repo.professionals) != 1 {
		t.Fatalf("expected one stored professional, got %d", len(repo.professionals))
	}
	if !audit.recorded(entity.AuditActionLogin) {
		t.Error("expected login audit entry")
	}
}

func TestResolveGoogleIdentityLinksExistingByEmail(t *testing.T) {
	// Pre-provisioned account without a Google subject: login must link,
	// not create a duplicate.
	repo := &fakeProfessionalRepo{}
	existing := &entity.Professional{
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "García",
		Role:      entity.RoleUser,
		IsActive:  true,
	}
	if err := repo.Create(newTestDB(), existing); err != nil {
		t.Fatal(err)
	}

	uc := NewAuthUsecase(newTestDB(), newTestLogger(), repo, &fakeAuditService{})

	professional, err := uc.ResolveGoogleIdentity(context.Background(), &oauth.GoogleProfile{
		ID:    "google-sub-2",
		Email: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if professional.ID != existing.ID {
		t.Error("expected the existing record, not a new one")
	}
	if professional.UserID == nil || *professional.UserID != "google-sub-2" {
		t.Errorf("expected google subject attached, got %v", professional.UserID)
	}
	if len(repo.professionals) != 1 {
		t.Fatalf("expected no new record, got %d", len(repo.professionals))
	}
}

func TestResolveGoogleIdentityRejectsDisabledAccount(t *testing.T) {
	repo := &fakeProfessionalRepo{}
	userID := "google-sub-3"
	if err := repo.Create(newTestDB(), &entity.Professional{
		UserID:   &userID,
		Email:    "off@example.com",
		Role:     entity.RoleUser,
		IsActive: false,
	}); err != nil {
		t.Fatal(err)
	}

	audit := &fakeAuditService{}
	uc := NewAuthUsecase(newTestDB(), newTestLogger(), repo, audit)

	_, err := uc.ResolveGoogleIdentity(context.Background(), &oauth.GoogleProfile{
		ID:    userID,
		Email: "off@example.com",
	})
	if err != ErrAccountDisabled {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
	if audit.recorded(entity.AuditActionLogin) {
		t.Error("denied logins must not be audited as logins")
	}
}

func TestGetProfessionalNotFound(t *testing.T) {
	uc := NewAuthUsecase(newTestDB(), newTestLogger(), &fakeProfessionalRepo{}, &fakeAuditService{})

	_, err := uc.GetProfessional(context.Background(), uuid.New())
	if err != ErrProfessionalNotFound {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
}
