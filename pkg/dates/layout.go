package dates

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnsupportedFormat is returned by Layout for patterns it cannot express
// as a Go layout.
var ErrUnsupportedFormat = errors.New("unsupported date format")

// goLayoutTokens cannot appear in literal text because time.Parse would treat
// them as layout elements.
var goLayoutTokens = []string{"Jan", "Mon", "MST", "PM", "pm", "_"}

// Layout converts a .NET style custom date format ("dd/MM/yyyy HH:mm") to a
// Go reference layout. Formats that already contain the Go reference year are
// returned unchanged.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty format", ErrUnsupportedFormat)
	}
	if strings.Contains(format, "2006") {
		return format, nil
	}

	runes := []rune(format)
	var out strings.Builder

	for i := 0; i < len(runes); {
		c := runes[i]

		switch c {
		case '\'', '"':
			end := i + 1
			for end < len(runes) && runes[end] != c {
				end++
			}
			if end >= len(runes) {
				return "", fmt.Errorf("%w: unterminated quote in %q", ErrUnsupportedFormat, format)
			}
			if err := writeLiteral(&out, string(runes[i+1:end])); err != nil {
				return "", err
			}
			i = end + 1
			continue
		case '\\':
			if i+1 >= len(runes) {
				return "", fmt.Errorf("%w: trailing escape in %q", ErrUnsupportedFormat, format)
			}
			if err := writeLiteral(&out, string(runes[i+1])); err != nil {
				return "", err
			}
			i += 2
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == c {
			n++
		}

		elem, ok, err := element(c, n, out.String())
		if err != nil {
			return "", fmt.Errorf("%w: %v in %q", ErrUnsupportedFormat, err, format)
		}
		if ok {
			out.WriteString(elem)
			i += n
			continue
		}

		if err := writeLiteral(&out, string(c)); err != nil {
			return "", err
		}
		i++
	}

	return out.String(), nil
}

// element maps a run of n copies of the specifier c. ok is false when c is
// not a format specifier.
func element(c rune, n int, sofar string) (string, bool, error) {
	switch c {
	case 'y':
		switch {
		case n >= 3:
			return "2006", true, nil
		case n == 2:
			return "06", true, nil
		}
		return "", true, errors.New("single digit year")
	case 'M':
		return pick(n, "1", "01", "Jan", "January"), true, nil
	case 'd':
		return pick(n, "2", "02", "Mon", "Monday"), true, nil
	case 'H':
		return "15", true, nil
	case 'h':
		return pick(n, "3", "03", "03", "03"), true, nil
	case 'm':
		return pick(n, "4", "04", "04", "04"), true, nil
	case 's':
		return pick(n, "5", "05", "05", "05"), true, nil
	case 'f', 'F':
		if !strings.HasSuffix(sofar, ".") && !strings.HasSuffix(sofar, ",") {
			return "", true, errors.New("fractional seconds must follow a '.' or ','")
		}
		digit := "0"
		if c == 'F' {
			digit = "9"
		}
		return strings.Repeat(digit, n), true, nil
	case 't':
		if n < 2 {
			return "", true, errors.New("single letter AM/PM designator")
		}
		return "PM", true, nil
	case 'z':
		if n >= 3 {
			return "-07:00", true, nil
		}
		return "-07", true, nil
	case 'K':
		return "Z07:00", true, nil
	case 'g':
		return "", true, errors.New("era designator")
	}
	return "", false, nil
}

func pick(n int, one, two, three, four string) string {
	switch n {
	case 1:
		return one
	case 2:
		return two
	case 3:
		return three
	}
	return four
}

func writeLiteral(out *strings.Builder, lit string) error {
	for _, r := range lit {
		if unicode.IsDigit(r) {
			return fmt.Errorf("%w: literal %q contains a digit", ErrUnsupportedFormat, lit)
		}
	}
	for _, tok := range goLayoutTokens {
		if strings.Contains(lit, tok) {
			return fmt.Errorf("%w: literal %q clashes with layout element %q", ErrUnsupportedFormat, lit, tok)
		}
	}
	out.WriteString(lit)
	return nil
}
