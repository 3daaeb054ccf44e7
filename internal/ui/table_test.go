package ui

import (
	"strings"
	"testing"
)

func TestTruncateCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", cellMaxWidth-1) + "é"

	got := TruncateCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateCellNormalizesLineBreaks(t *testing.T) {
	value := "Hello\nWorld\r\nAgain\tTab"

	got := TruncateCell(value)

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", cellMaxWidth) + "\x1b[0m"

	got := TruncateCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateCellAddsEllipsis(t *testing.T) {
	value := strings.Repeat("a", cellMaxWidth+10)

	got := TruncateCell(value)

	if !strings.HasSuffix(got, cellEllipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if width := displayWidth(got); width != cellMaxWidth {
		t.Fatalf("expected width %d, got %d", cellMaxWidth, width)
	}
}

func TestTruncateCellKeepsTrailingReset(t *testing.T) {
	value := "\x1b[36m" + strings.Repeat("a", cellMaxWidth+10) + "\x1b[0m"

	got := TruncateCell(value)

	if !strings.Contains(got, "\x1b[0m") {
		t.Fatalf("expected clipped cell to keep its reset sequence, got %q", got)
	}
	if width := displayWidth(got); width != cellMaxWidth {
		t.Fatalf("expected width %d, got %d", cellMaxWidth, width)
	}
}

func TestTableBuilderAlignsColumns(t *testing.T) {
	builder := NewTableBuilder([]string{"ID", "TITLE"}, 2)
	builder.AddRow([]string{"abc", "Ship release"})
	builder.AddRow([]string{"defgh", "Buy milk"})

	got := builder.String()

	expected := "ID     TITLE\nabc    Ship release\ndefgh  Buy milk\n"
	if got != expected {
		t.Fatalf("expected aligned table output, got %q", got)
	}
}

func TestTableBuilderNormalizesLineBreaks(t *testing.T) {
	builder := NewTableBuilder([]string{"COL"}, 1)
	builder.AddRow([]string{"Hello\nWorld\r\nAgain\tTab"})

	got := builder.String()

	expected := "COL\nHello World Again Tab\n"
	if got != expected {
		t.Fatalf("expected normalized table output, got %q", got)
	}
}

func TestTableBuilderAlignsColoredCells(t *testing.T) {
	builder := NewTableBuilder([]string{"PRI", "TITLE"}, 2)
	builder.AddRow([]string{"\x1b[31mhigh\x1b[0m", "Ship release"})
	builder.AddRow([]string{"low", "Buy milk"})

	plain := stripForTest(builder.String())
	expected := "PRI   TITLE\nhigh  Ship release\nlow   Buy milk\n"
	if plain != expected {
		t.Fatalf("expected visible alignment to ignore color codes, got %q", plain)
	}
}

func stripForTest(value string) string {
	var out strings.Builder
	for len(value) > 0 {
		if _, rest, ok := cutEscape(value); ok {
			value = rest
			continue
		}
		out.WriteByte(value[0])
		value = value[1:]
	}
	return out.String()
}
