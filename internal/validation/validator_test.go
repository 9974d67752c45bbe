// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package validation

import (
	"strings"
	"testing"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

func TestValidateStruct_PreferenceRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      models.PreferenceRequest
		wantErr    bool
		wantFields []string
	}{
		{name: "id only", input: models.PreferenceRequest{MovieID: 603}},
		{name: "title only", input: models.PreferenceRequest{MovieTitle: "The Matrix"}},
		{name: "both", input: models.PreferenceRequest{MovieID: 603, MovieTitle: "The Matrix"}},
		{
			name:       "neither",
			input:      models.PreferenceRequest{},
			wantErr:    true,
			wantFields: []string{"movieId", "movieTitle"},
		},
		{
			name:       "negative id",
			input:      models.PreferenceRequest{MovieID: -1},
			wantErr:    true,
			wantFields: []string{"movieId"},
		},
		{
			name:       "title too long",
			input:      models.PreferenceRequest{MovieTitle: strings.Repeat("x", 301)},
			wantErr:    true,
			wantFields: []string{"movieTitle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if !tt.wantErr {
				if verr != nil {
					t.Fatalf("ValidateStruct() error = %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() expected error")
			}

			got := make(map[string]bool)
			for _, e := range verr.Errors() {
				got[e.Field()] = true
			}
			for _, f := range tt.wantFields {
				if !got[f] {
					t.Errorf("missing error for field %q in %v", f, verr)
				}
			}
			if len(verr.Errors()) != len(tt.wantFields) {
				t.Errorf("got %d errors, want %d: %v", len(verr.Errors()), len(tt.wantFields), verr)
			}
		})
	}
}

func TestValidateStruct_RequiredWithoutMessage(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&models.PreferenceRequest{})
	if verr == nil {
		t.Fatal("expected error")
	}
	msg := verr.Error()
	if !strings.Contains(msg, "movieId is required when movieTitle is not provided") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestValidateStruct_TokenRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		userID  string
		wantErr bool
		wantTag string
	}{
		{userID: "alice", wantErr: false},
		{userID: "alice.smith@example.com", wantErr: false},
		{userID: "", wantErr: true, wantTag: "required"},
		{userID: "bad/id", wantErr: true, wantTag: "userid"},
		{userID: "has space", wantErr: true, wantTag: "userid"},
		{userID: strings.Repeat("a", 129), wantErr: true, wantTag: "max"},
	}

	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&models.TokenRequest{UserID: tt.userID})
			if (verr != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct(%q) error = %v, wantErr %v", tt.userID, verr, tt.wantErr)
			}
			if verr == nil {
				return
			}
			if tag := verr.Errors()[0].Tag(); tag != tt.wantTag {
				t.Errorf("tag = %q, want %q", tag, tt.wantTag)
			}
			if field := verr.Errors()[0].Field(); field != "userId" {
				t.Errorf("field = %q, want userId", field)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	if verr := ValidateVar("k", 10, "min=0,max=50"); verr != nil {
		t.Errorf("ValidateVar(10) error = %v", verr)
	}

	verr := ValidateVar("k", 51, "min=0,max=50")
	if verr == nil {
		t.Fatal("ValidateVar(51) expected error")
	}
	if got := verr.Error(); got != "k must be at most 50" {
		t.Errorf("Error() = %q", got)
	}

	verr = ValidateVar("userID", "a b", "userid")
	if verr == nil || verr.Errors()[0].Tag() != "userid" {
		t.Errorf("ValidateVar(userid) = %v", verr)
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" || apiErr.Message != "Validation failed" {
			t.Errorf("ToAPIError() = %+v", apiErr)
		}
	})

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&models.TokenRequest{}).ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Message != "userId is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "userId" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&models.PreferenceRequest{}).ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("Details = %v", apiErr.Details)
		}
		if !strings.Contains(apiErr.Message, "; ") {
			t.Errorf("Message = %q, want joined messages", apiErr.Message)
		}
	})
}
