package loaders

import (
	"fmt"
	"strconv"
	"strings"
)

// tokenizer walks a flat token stream produced from a scene file: the
// parenthesis/comma-delimited vector syntax is split into its own tokens
// up front so the parser can consume fields one at a time regardless of
// whether the source file put spaces around them.
type tokenizer struct {
	tokens []string
	pos    int
}

func newTokenizer(text string) *tokenizer {
	text = stripComments(text)
	text = strings.NewReplacer("(", " ( ", ")", " ) ", ",", " , ").Replace(text)
	return &tokenizer{tokens: strings.Fields(text)}
}

func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

func (t *tokenizer) done() bool {
	return t.pos >= len(t.tokens)
}

func (t *tokenizer) peek() string {
	if t.done() {
		return ""
	}
	return t.tokens[t.pos]
}

func (t *tokenizer) next() (string, error) {
	if t.done() {
		return "", fmt.Errorf("unexpected end of input")
	}
	tok := t.tokens[t.pos]
	t.pos++
	return tok, nil
}

// expect consumes the next token and errors if it does not equal want.
func (t *tokenizer) expect(want string) error {
	got, err := t.next()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected %q, got %q", want, got)
	}
	return nil
}

func (t *tokenizer) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing float %q: %w", tok, err)
	}
	return v, nil
}

func (t *tokenizer) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("parsing int %q: %w", tok, err)
	}
	return v, nil
}

// nextVec3 parses "( x , y , z )".
func (t *tokenizer) nextVec3() (x, y, z float64, err error) {
	if err = t.expect("("); err != nil {
		return
	}
	if x, err = t.nextFloat(); err != nil {
		return
	}
	if err = t.expect(","); err != nil {
		return
	}
	if y, err = t.nextFloat(); err != nil {
		return
	}
	if err = t.expect(","); err != nil {
		return
	}
	if z, err = t.nextFloat(); err != nil {
		return
	}
	err = t.expect(")")
	return
}

// nextVec2 parses "( x , y )".
func (t *tokenizer) nextVec2() (x, y float64, err error) {
	if err = t.expect("("); err != nil {
		return
	}
	if x, err = t.nextFloat(); err != nil {
		return
	}
	if err = t.expect(","); err != nil {
		return
	}
	if y, err = t.nextFloat(); err != nil {
		return
	}
	err = t.expect(")")
	return
}
