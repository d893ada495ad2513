package bankfile

import (
	"strings"
	"testing"
)

type sampleRecord struct {
	Type   string `fixed:"1"`
	Name   string `fixed:"40"`
	Code   string `fixed:"9,numeric"`
	Amount int64  `fixed:"10"`
	Filler string `fixed:"34"`
}

func TestRenderFixedPadding(t *testing.T) {
	line, err := renderFixed(sampleRecord{
		Type:   "6",
		Name:   "JANE DOE",
		Code:   "21000021",
		Amount: 150050,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != nachaRecordLength {
		t.Fatalf("expected %d chars, got %d", nachaRecordLength, len(line))
	}
	if !strings.HasPrefix(line, "6JANE DOE") {
		t.Fatalf("text field not space-padded right: %q", line[:10])
	}
	if line[41:50] != "021000021" {
		t.Fatalf("numeric string not zero-padded left: %q", line[41:50])
	}
	if line[50:60] != "0000150050" {
		t.Fatalf("amount not zero-padded to 10: %q", line[50:60])
	}
}

func TestRenderFixedTruncatesLongText(t *testing.T) {
	line, err := renderFixed(sampleRecord{
		Type: "6",
		Name: strings.Repeat("X", 60),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != nachaRecordLength {
		t.Fatalf("expected %d chars, got %d", nachaRecordLength, len(line))
	}
	if line[1:41] != strings.Repeat("X", 40) {
		t.Fatal("long text field not truncated to width")
	}
}

func TestRenderFixedNumericOverflow(t *testing.T) {
	_, err := renderFixed(sampleRecord{Type: "6", Amount: 99999999999})
	if err == nil {
		t.Fatal("expected overflow error for numeric value wider than field")
	}
}

type badWidthRecord struct {
	Type string `fixed:"1"`
	Rest string `fixed:"10"`
}

func TestRenderFixedRejectsWrongTotalWidth(t *testing.T) {
	_, err := renderFixed(badWidthRecord{Type: "1"})
	if err == nil {
		t.Fatal("expected error when widths do not sum to record length")
	}
}
