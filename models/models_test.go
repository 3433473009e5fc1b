package models

import "testing"

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleCleaning, RoleMaintenance} {
		if !IsValidRole(role) {
			t.Fatalf("expected %q to be a valid role", role)
		}
	}
	for _, role := range []string{"", "superadmin", "Admin"} {
		if IsValidRole(role) {
			t.Fatalf("expected %q to be rejected", role)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusResolved} {
		if !IsValidStatus(s) {
			t.Fatalf("expected %q to be a valid status", s)
		}
	}
	if IsValidStatus("closed") || IsValidStatus("") {
		t.Fatalf("expected unknown statuses to be rejected")
	}
}

func TestIsValidBathroomType(t *testing.T) {
	if !IsValidBathroomType(BathroomMale) || !IsValidBathroomType(BathroomFemale) {
		t.Fatalf("expected known bathroom types to be valid")
	}
	if IsValidBathroomType("unissex") || IsValidBathroomType("") {
		t.Fatalf("expected unknown bathroom types to be rejected")
	}
}
