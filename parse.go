package dihedral

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dihedral/coxeter"
)

// ParseWord reads a word of generator labels. Accepted spellings:
// "()", "(1,)", "(1, 2)", "1,2", "1 2", and the compact "121".
// "" and "e" denote the empty word. Labels are not checked against any group.
func ParseWord(s string) ([]coxeter.Generator, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "(")
	t = strings.TrimSuffix(t, ")")
	t = strings.TrimSpace(t)
	if t == "" || t == "e" {
		return []coxeter.Generator{}, nil
	}

	fields := strings.FieldsFunc(t, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	// compact form: one run of digits, one label per digit
	if len(fields) == 1 && len(fields[0]) > 1 && !strings.ContainsAny(t, ", \t") {
		fields = strings.Split(fields[0], "")
	}

	word := make([]coxeter.Generator, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: bad letter %q", ErrInvalidWord, s, f)
		}
		word = append(word, coxeter.Generator(v))
	}

	return word, nil
}

// ParseGenerator reads a single generator label and checks it is 1 or 2.
func ParseGenerator(s string) (coxeter.Generator, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !validGenerator(coxeter.Generator(v)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGenerator, s)
	}

	return coxeter.Generator(v), nil
}

// ParseElement parses s with ParseWord and returns the element it names.
// A non-canonical word is reduced by multiplying it out, so "(2, 2, 1)"
// yields (1,). Set strict to reject anything but a canonical word instead.
func (g *Group) ParseElement(s string, strict bool) (Element, error) {
	word, err := ParseWord(s)
	if err != nil {
		return Element{}, err
	}
	if strict {
		return g.NewElement(word)
	}
	for k, i := range word {
		if !validGenerator(i) {
			return Element{}, fmt.Errorf("%w: letter %d at position %d", ErrInvalidGenerator, int(i), k)
		}
	}

	return g.FromWord(word)
}
