package validation

import (
	"strings"
	"testing"
)

func TestValidateHolderName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "Alice", false},
		{"padded", "  Bob  ", false},
		{"unicode", "名字", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", MaxHolderNameLen+1), true},
		{"multibyte at limit", strings.Repeat("é", MaxHolderNameLen), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHolderName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateHolderName(%q) err=%v wantErr=%v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"10", false},
		{"0.01", false},
		{"1,000", false},
		{"0", true},
		{"-1", true},
		{"", true},
		{"ten", true},
	}

	for _, tt := range tests {
		err := ValidateAmount(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ValidateAmount(%q) err=%v wantErr=%v", tt.input, err, tt.wantErr)
		}
	}
}
