package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short text", 100, 20)
	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0] != "short text" {
		t.Errorf("chunks[0] = %q, want original text", chunks[0])
	}
}

func TestSplitTextChunksWithOverlap(t *testing.T) {
	text := strings.Repeat("a", 50) + strings.Repeat("b", 50) + strings.Repeat("c", 50)

	chunks := SplitText(text, 60, 10)
	if len(chunks) < 2 {
		t.Fatalf("len(chunks) = %d, want at least 2", len(chunks))
	}

	for i, c := range chunks {
		if len([]rune(c)) > 60 {
			t.Errorf("chunks[%d] has %d runes, want <= 60", i, len([]rune(c)))
		}
	}

	// The tail of one chunk reappears at the head of the next.
	first := []rune(chunks[0])
	second := []rune(chunks[1])
	if string(first[len(first)-10:]) != string(second[:10]) {
		t.Error("overlap region does not match between consecutive chunks")
	}
}

func TestSplitTextMultibyte(t *testing.T) {
	text := strings.Repeat("あ", 30) + strings.Repeat("い", 30)

	chunks := SplitText(text, 100, 0)
	// 60 runes but 180 bytes: len(text) > chunkSize triggers rune-based splitting.
	joined := strings.Join(chunks, "")
	if !strings.HasPrefix(joined, "あ") {
		t.Error("multibyte runes were corrupted by splitting")
	}
	for i, c := range chunks {
		if !strings.HasPrefix(c, "あ") && !strings.HasPrefix(c, "い") {
			t.Errorf("chunks[%d] starts mid-rune: %q", i, c[:4])
		}
	}
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("x", 100)

	// overlap >= chunkSize must not loop forever
	chunks := SplitText(text, 10, 10)
	if len(chunks) == 0 {
		t.Fatal("no chunks returned")
	}
	if len(chunks) != 10 {
		t.Errorf("len(chunks) = %d, want 10", len(chunks))
	}
}
