package scan

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestItems(t *testing.T) {
	items := Items(strings.NewReader(readerInput), 3)
	if len(items) != len(readerItems)+1 {
		t.Fatalf("got %d items, want %d", len(items), len(readerItems)+1)
	}
	checkItems(t, items[:len(readerItems)], readerItems)
	last := items[len(items)-1]
	if last.Type != ItemEOF || last.Pos != len(readerInput) || last.Line != 2 {
		t.Errorf("last item: got %+v", last)
	}
}

func TestItemsStopOnError(t *testing.T) {
	r := io.MultiReader(strings.NewReader("a b"), iotest.ErrReader(errors.New("disk on fire")))
	items := Items(r, 16)
	last := items[len(items)-1]
	if last.Type != ItemError || last.Val != "disk on fire" {
		t.Errorf("last item: got %+v", last)
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	Preview(&buf, "ab 12!")
	want := "\033[92mab\033[0m" + "\033[90m \033[0m" + "\033[96m12\033[0m" + "\033[95m!\033[0m"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	Debug(&buf, "a\nb")
	out := buf.String()
	for _, want := range []string{"1:0 word", `1:1 newline "\n"`, "2:2 word", "2:3 EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestSyntax(t *testing.T) {
	got := Syntax("a 1\nb")["items"].([]interface{})
	want := []struct {
		class string
		value string
		pos   int
		line  int
	}{
		{"word", "a", 0, 1},
		{"space", " ", 1, 1},
		{"number", "1", 2, 1},
		{"newline", "\n", 3, 1},
		{"word", "b", 4, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		m := got[i].(map[string]interface{})
		if m["class"] != w.class || m["value"] != w.value || m["pos"] != w.pos || m["line"] != w.line {
			t.Errorf("item %d: got %v, want %+v", i, m, w)
		}
	}
}
