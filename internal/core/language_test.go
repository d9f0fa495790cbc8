package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"python def", "def get_users(data):\n    return [u for u in data]", "python"},
		{"go func", "func main() {\n\tfmt.Println(\"hi\")\n}", "go"},
		{"javascript function", "function getUsers(data) {\n  return data;\n}", "javascript"},
		{"java class", "public class Main {\n}", "java"},
		{"cpp include", "#include <stdio.h>\nint main() { return 0; }", "cpp"},
		{"unknown", "SELECT * FROM users;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.code))
		})
	}
}
