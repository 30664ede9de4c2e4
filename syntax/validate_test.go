package syntax

import "testing"

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		f     func(string) bool
		input string
		want  bool
	}{
		{"IsNumber", IsNumber, "42", true},
		{"IsNumber", IsNumber, "0", true},
		{"IsNumber", IsNumber, "", false},
		{"IsNumber", IsNumber, "4a", false},
		{"IsNumber", IsNumber, "-1", false},
		{"IsArmenian", IsArmenian, "թիվ", true},
		{"IsArmenian", IsArmenian, "և", true},
		{"IsArmenian", IsArmenian, "", false},
		{"IsArmenian", IsArmenian, "abc", false},
		{"IsArmenian", IsArmenian, "թիվ1", false},
		{"IsEnding", IsEnding, "-ն", true},
		{"IsEnding", IsEnding, "-ը", true},
		{"IsEnding", IsEnding, "-ին", true},
		{"IsEnding", IsEnding, "-", false},
		{"IsEnding", IsEnding, "ն", false},
		{"IsEnding", IsEnding, "-ա", false},
		{"IsKeyword", IsKeyword, "սահմանիր", true},
		{"IsKeyword", IsKeyword, "ավարտ", true},
		{"IsKeyword", IsKeyword, "սահմանիրը", false},
		{"IsKeyword", IsKeyword, "տպիր", false},
	}

	for _, tc := range tests {
		if got := tc.f(tc.input); got != tc.want {
			t.Errorf("%s(%q) = %v; want %v", tc.name, tc.input, got, tc.want)
		}
	}
}
