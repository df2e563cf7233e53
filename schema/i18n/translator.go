// Package i18n holds the messages attached to validation issues.
package i18n

// T returns the message for an issue code. data carries optional details
// such as "expected" or "format".
func T(code string, data map[string]string) string {
	switch code {
	case "invalid_type":
		if exp := data["expected"]; exp != "" {
			return "invalid type: expected " + exp
		}
		return "invalid type"
	case "required":
		return "required property missing"
	case "unknown_key":
		return "unknown key"
	case "too_small":
		return "too small"
	case "invalid_enum":
		return "value not in allowed set"
	case "invalid_format":
		if f := data["format"]; f != "" {
			return "invalid format: expected " + f
		}
		return "invalid format"
	case "parse_error":
		return "parse error"
	}
	return code
}
