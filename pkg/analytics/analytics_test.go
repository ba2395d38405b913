package analytics

import (
	"math"
	"testing"
)

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"the", "The", "and", "home", "listings", "market"} {
		if !IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"austin", "mueller", "median", "santos"} {
		if IsStopword(w) {
			t.Errorf("IsStopword(%q) = true, want false", w)
		}
	}
}

func TestWordFrequency(t *testing.T) {
	text := "Austin, Austin! The market in Austin."
	freq := WordFrequency(text)

	if freq["austin"] != 3 {
		t.Errorf("freq[austin] = %d, want 3 (case and punctuation normalized)", freq["austin"])
	}
	if _, ok := freq["the"]; ok {
		t.Error("stopword counted")
	}
	if _, ok := freq["market"]; ok {
		t.Error("domain noise word counted")
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two  three\nfour"); got != 4 {
		t.Errorf("WordCount() = %d, want 4", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("WordCount(\"\") = %d, want 0", got)
	}
}

func TestUniqueWordRatio(t *testing.T) {
	if got := UniqueWordRatio(""); got != 0 {
		t.Errorf("UniqueWordRatio(\"\") = %v, want 0", got)
	}
	if got := UniqueWordRatio("austin dallas houston"); got != 1.0 {
		t.Errorf("all-distinct ratio = %v, want 1.0", got)
	}
	got := UniqueWordRatio("austin austin austin dallas")
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("ratio = %v, want 0.5", got)
	}
}

func TestTopNWords(t *testing.T) {
	text := "mueller mueller mueller schools schools downtown"
	got := TopNWords(text, 2)

	if len(got) != 2 || got[0] != "mueller" || got[1] != "schools" {
		t.Errorf("TopNWords() = %v, want [mueller schools]", got)
	}
}

func TestTopNWordsTieBreaksAlphabetically(t *testing.T) {
	got := TopNWords("zebra apple", 2)
	if len(got) != 2 || got[0] != "apple" || got[1] != "zebra" {
		t.Errorf("TopNWords() = %v, want alphabetical order on equal counts", got)
	}
}

func TestTopNWordsShortText(t *testing.T) {
	got := TopNWords("austin", 10)
	if len(got) != 1 {
		t.Errorf("TopNWords() = %v, want a single entry", got)
	}
}
