package entrygen

import (
	"testing"

	"github.com/heartmarshall/vocabquiz/internal/quiz"
)

func TestBritishSpelling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"The color of the sky", "The colour of the sky"},
		{"Color me surprised", "Colour me surprised"},
		{"GRAY clouds", "GREY clouds"},
		{"She realized the organization was in chaos.", "She realised the organisation was in chaos."},
		{"They apologized to the neighbors.", "They apologised to the neighbours."},
		{"Win a prize for the best size of citizen.", "Win a prize for the best size of citizen."},
		{"The boat capsized near the harbor.", "The boat capsized near the harbour."},
		{"Already British: colour, organise.", "Already British: colour, organise."},
		{"Ships sail from Belize every morning.", "Ships sail from Belize every morning."},
		{"Organize the books. Realize it now!", "Organise the books. Realise it now!"},
		{"\"Organize your desk,\" said Mum.", "\"Organise your desk,\" said Mum."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := BritishSpelling(tt.in); got != tt.want {
			t.Errorf("BritishSpelling(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBritishSpelling_KeepsHeadwordForms(t *testing.T) {
	t.Parallel()

	keep := quiz.InflectionPattern("organize")
	in := "We organized the summer fair and will organize the next one, organization included."
	want := "We organized the summer fair and will organize the next one, organisation included."

	if got := britishSpelling(in, keep); got != want {
		t.Errorf("britishSpelling(%q) = %q, want %q", in, got, want)
	}
}
