package criteria

import (
	"strconv"
	"strings"
)

// ParseToken splits a command line criteria token of the form
// "IDX:NAME=VALUE". VALUE may itself contain ':' and '='.
func ParseToken(token string) (index int, name, value string, err error) {
	idxStr, rest, ok := strings.Cut(token, ":")
	if !ok {
		return 0, "", "", configErrorf("search criteria '%s' must look like IDX:NAME=VALUE", token)
	}
	index, convErr := strconv.Atoi(strings.TrimSpace(idxStr))
	if convErr != nil {
		return 0, "", "", configErrorf("unable to parse '%s' as a valid idx for search criteria", idxStr)
	}
	name, value, ok = strings.Cut(rest, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return 0, "", "", configErrorf("search criteria '%s' must look like IDX:NAME=VALUE", token)
	}
	return index, strings.TrimSpace(name), value, nil
}

// ApplyTokens parses and applies each token in order.
func (t *Table) ApplyTokens(tokens []string) error {
	for _, token := range tokens {
		idx, name, value, err := ParseToken(token)
		if err != nil {
			return err
		}
		if err := t.Apply(idx, name, value); err != nil {
			return err
		}
	}
	return nil
}
