package config

import "testing"

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		value        string
		defaultValue string
		want         string
	}{
		{
			name:         "set variable wins over default",
			key:          "VELOCITY_TEST_SET",
			value:        "custom",
			defaultValue: "fallback",
			want:         "custom",
		},
		{
			name:         "unset variable returns default",
			key:          "VELOCITY_TEST_UNSET",
			value:        "",
			defaultValue: "fallback",
			want:         "fallback",
		},
		{
			name:         "empty variable returns default",
			key:          "VELOCITY_TEST_EMPTY",
			value:        "",
			defaultValue: "",
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}
