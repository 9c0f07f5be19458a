package loaders

import "testing"

func TestTokenizerStripsCommentsAndPunctuation(t *testing.T) {
	tok := newTokenizer("SPHERE (1,2,3) 4 # trailing comment\nBOX")

	want := []string{"SPHERE", "(", "1", ",", "2", ",", "3", ")", "4", "BOX"}
	for i, w := range want {
		got, err := tok.next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if got != w {
			t.Errorf("token %d = %q, want %q", i, got, w)
		}
	}
	if !tok.done() {
		t.Error("expected tokenizer to be exhausted")
	}
}

func TestTokenizerNextVec3(t *testing.T) {
	tok := newTokenizer("(1.5, -2, 3)")
	x, y, z, err := tok.nextVec3()
	if err != nil {
		t.Fatalf("nextVec3: %v", err)
	}
	if x != 1.5 || y != -2 || z != 3 {
		t.Errorf("nextVec3 = (%f,%f,%f), want (1.5,-2,3)", x, y, z)
	}
}

func TestTokenizerExpectMismatchErrors(t *testing.T) {
	tok := newTokenizer("BOX")
	if err := tok.expect("SPHERE"); err == nil {
		t.Error("expected an error for a mismatched token")
	}
}

func TestTokenizerNextOnEmptyErrors(t *testing.T) {
	tok := newTokenizer("")
	if _, err := tok.next(); err == nil {
		t.Error("expected an error calling next on an exhausted tokenizer")
	}
}
