package match

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"   ", nil},
		{"?!...", nil},
		{"AI: robots, sensors!", []string{"AI", "robots", "sensors"}},
		{"what is machine learning", []string{"what", "is", "machine", "learning"}},
		{"gpt_4 turbo v2", []string{"gpt_4", "turbo", "v2"}},
		{"repeat repeat repeat", []string{"repeat", "repeat", "repeat"}},
		{"comma,separated,words", []string{"comma", "separated", "words"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Tokenize(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
