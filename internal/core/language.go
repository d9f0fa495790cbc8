package core

import "strings"

// DetectLanguage guesses the programming language of a snippet from a few
// common syntactic patterns. The result is only used to pick code fence tags
// and to give the generator a hint, so a wrong guess is harmless and an
// unrecognized snippet returns the empty string.
func DetectLanguage(code string) string {
	switch {
	case strings.Contains(code, "def ") && strings.Contains(code, ":"):
		return "python"
	case strings.Contains(code, "func ") && strings.Contains(code, "{"):
		return "go"
	case strings.Contains(code, "function") && strings.Contains(code, "{"):
		return "javascript"
	case strings.Contains(code, "public class") || strings.Contains(code, "private "):
		return "java"
	case strings.Contains(code, "#include") || strings.Contains(code, "int main"):
		return "cpp"
	default:
		return ""
	}
}
