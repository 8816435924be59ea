package email

import "testing"

func TestFormatSender(t *testing.T) {
	tests := []struct {
		name   string
		sender string
		want   string
	}{
		{"bare address", "noreply@padelpoint.example", "PadelPoint Leagues <noreply@padelpoint.example>"},
		{"already named", "Club Desk <desk@padelpoint.example>", "Club Desk <desk@padelpoint.example>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSender(tt.sender); got != tt.want {
				t.Fatalf("formatSender(%q) = %q, want %q", tt.sender, got, tt.want)
			}
		})
	}
}

func TestNewSESClientValidation(t *testing.T) {
	if _, err := NewSESClient("", "", "eu-west-1", "noreply@padelpoint.example"); err == nil {
		t.Fatal("expected error for missing credentials")
	}
	if _, err := NewSESClient("key", "secret", "eu-west-1", "  "); err == nil {
		t.Fatal("expected error for missing sender")
	}
}
