package services

import (
	"testing"
)

func TestParseNumberedList(t *testing.T) {
	input := "1. What is a binary search tree?\n2. Explain hash collisions.\n3. Define Big-O notation."

	questions := ParseNumberedList(input)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d: %v", len(questions), questions)
	}
	if questions[0] != "What is a binary search tree?" {
		t.Errorf("unexpected first question: %q", questions[0])
	}
	if questions[2] != "Define Big-O notation." {
		t.Errorf("unexpected last question: %q", questions[2])
	}
}

func TestParseNumberedListStripsLeadingNumberOnFirstItem(t *testing.T) {
	// The first item carries its own numbering since the split delimiter
	// only matches after a newline.
	input := "1. First question\n2. Second question"

	questions := ParseNumberedList(input)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d: %v", len(questions), questions)
	}
	for i, q := range questions {
		if q == "" {
			t.Errorf("question %d is empty", i)
		}
		if q[0] >= '0' && q[0] <= '9' {
			t.Errorf("question %d still carries numbering: %q", i, q)
		}
	}
}

func TestParseNumberedListFallsBackToLines(t *testing.T) {
	// No numbered delimiters at all; each non-empty line becomes an item.
	input := "What is normalization?\n\nExplain ACID properties."

	questions := ParseNumberedList(input)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d: %v", len(questions), questions)
	}
	if questions[0] != "What is normalization?" {
		t.Errorf("unexpected first question: %q", questions[0])
	}
}

func TestParseNumberedListCountMayDiffer(t *testing.T) {
	// Models do not always honor the requested count; the parse keeps
	// whatever came back.
	input := "1. Only one\n2. And two\n3. Three\n4. Four\n5. Five\n6. Six\n7. Seven"

	questions := ParseNumberedList(input)
	if len(questions) != 7 {
		t.Fatalf("expected 7 questions, got %d", len(questions))
	}
}

func TestParseNumberedListEmptyInput(t *testing.T) {
	if got := ParseNumberedList(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := ParseNumberedList("   \n\n  "); len(got) != 0 {
		t.Errorf("expected no questions for whitespace input, got %v", got)
	}
}

func TestParseNumberedListParenthesisNumbering(t *testing.T) {
	input := "1) Question one\n2) Question two"

	questions := ParseNumberedList(input)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d: %v", len(questions), questions)
	}
	if questions[1] != "Question two" {
		t.Errorf("unexpected second question: %q", questions[1])
	}
}
