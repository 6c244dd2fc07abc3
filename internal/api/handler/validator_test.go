package handler

import (
	"strings"
	"testing"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&submitApplicationRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	msg := err.Error()
	for _, want := range []string{
		"full_name is required",
		"email must be a valid email",
		"cover_letter is required",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in message, got %q", want, msg)
		}
	}
	if strings.Contains(msg, "FullName") || strings.Contains(msg, "CoverLetter") {
		t.Errorf("messages must use wire names, got %q", msg)
	}
}

func TestValidator_OneofListsAllowedValues(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&updateApplicationStatusRequest{Status: "archived"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if !strings.Contains(err.Error(), "status must be one of: pending approved rejected") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidator_MinOnPassword(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{Username: "Eva", Password: "abc"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if !strings.Contains(err.Error(), "password must be at least 5 characters") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidator_AcceptsValidPayload(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&submitApplicationRequest{
		FullName:    "Eva Musterfrau",
		Email:       "eva@example.com",
		Title:       "Backend Engineer",
		CoverLetter: "Sehr geehrte Damen und Herren",
	})
	if err != nil {
		t.Fatalf("expected valid payload to pass, got %v", err)
	}
}
