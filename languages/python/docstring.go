package python

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const tabSize = 8

// decodeLiteral returns the value of a single Python string literal token
// such as r'''x''' or "a\tb".
func decodeLiteral(lit string) (string, bool) {
	quote := strings.IndexAny(lit, `'"`)
	if quote < 0 {
		return "", false
	}

	raw := false
	for _, r := range strings.ToLower(lit[:quote]) {
		switch r {
		case 'r':
			raw = true
		case 'u':
		default:
			// b and f prefixes are not str constants
			return "", false
		}
	}

	body := lit[quote:]
	delim := body[:1]
	if strings.HasPrefix(body, strings.Repeat(delim, 3)) && len(body) >= 6 {
		delim = strings.Repeat(delim, 3)
	}
	if len(body) < 2*len(delim) || !strings.HasSuffix(body, delim) {
		return "", false
	}
	body = body[len(delim) : len(body)-len(delim)]
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")

	if raw {
		return body, true
	}
	return unescape(body), true
}

// unescape interprets backslash escapes the way the Python tokenizer does for
// str literals. Unknown escapes and \N{...} are kept as written.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}

		i++
		switch e := s[i]; e {
		case '\n':
		case '\\', '\'', '"':
			sb.WriteByte(e)
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			n, _ := strconv.ParseUint(s[i:j], 8, 32)
			sb.WriteRune(rune(n))
			i = j - 1
		case 'x', 'u', 'U':
			width := hexWidth(e)
			if i+width < len(s) {
				if n, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32); err == nil && utf8.ValidRune(rune(n)) {
					sb.WriteRune(rune(n))
					i += width
					continue
				}
			}
			sb.WriteByte('\\')
			sb.WriteByte(e)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(e)
		}
	}
	return sb.String()
}

func hexWidth(e byte) int {
	switch e {
	case 'x':
		return 2
	case 'u':
		return 4
	}
	return 8
}

// cleanDocstring normalizes docstring indentation like inspect.cleandoc:
// tabs are expanded, the first line loses its leading whitespace, the rest
// lose their common indentation, and blank lines at either end are dropped.
func cleanDocstring(doc string) string {
	lines := strings.Split(expandTabs(doc), "\n")

	margin := -1
	for _, line := range lines[1:] {
		content := strings.TrimLeftFunc(line, unicode.IsSpace)
		if content == "" {
			continue
		}
		indent := len(line) - len(content)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeftFunc(lines[0], unicode.IsSpace)
	if margin > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) > margin {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := tabSize - col%tabSize
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n', '\r':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}
