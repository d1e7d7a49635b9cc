package catalog

import (
	"testing"
)

func TestFHIRVersion_String(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		want    string
	}{
		{R4, "R4"},
		{R4B, "R4B"},
		{R5, "R5"},
	}

	for _, tt := range tests {
		if got := tt.version.String(); got != tt.want {
			t.Errorf("%v.String() = %q; want %q", tt.version, got, tt.want)
		}
	}
}

func TestFHIRVersion_IsValid(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		want    bool
	}{
		{R4, true},
		{R4B, true},
		{R5, true},
		{"R3", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.version.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v; want %v", tt.version, got, tt.want)
		}
	}
}

func TestParseFHIRVersion(t *testing.T) {
	tests := []struct {
		in     string
		want   FHIRVersion
		wantOK bool
	}{
		{"4.0.1", R4, true},
		{"4.0.0", R4, true},
		{"4.3.0", R4B, true},
		{"5.0.0", R5, true},
		{"r4", R4, true},
		{"R5", R5, true},
		{"3.0.2", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseFHIRVersion(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseFHIRVersion(%q) = (%q, %v); want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFHIRVersion_Number(t *testing.T) {
	if got := R4.Number(); got != "4.0.1" {
		t.Errorf("R4.Number() = %q; want %q", got, "4.0.1")
	}
	if got := FHIRVersion("R3").Number(); got != "" {
		t.Errorf("R3.Number() = %q; want empty", got)
	}
}
