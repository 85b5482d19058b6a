package domain

// LevelIndex maps words to their assigned level. Insertion order is kept and
// is the order every downstream stage iterates in. The first assignment of a
// word wins.
type LevelIndex struct {
	order  []string
	words  map[string]string
	levels map[string]Level
}

// NewLevelIndex creates an empty index.
func NewLevelIndex() *LevelIndex {
	return &LevelIndex{
		words:  make(map[string]string),
		levels: make(map[string]Level),
	}
}

// Add assigns level to word. It reports false when the word is already
// indexed or the word is empty.
func (ix *LevelIndex) Add(word string, level Level) bool {
	key := NormalizeText(word)
	if key == "" {
		return false
	}
	if _, ok := ix.levels[key]; ok {
		return false
	}
	ix.order = append(ix.order, key)
	ix.words[key] = word
	ix.levels[key] = level
	return true
}

// LevelOf returns the level of word, compared case-insensitively.
func (ix *LevelIndex) LevelOf(word string) (Level, bool) {
	l, ok := ix.levels[NormalizeText(word)]
	return l, ok
}

// Contains reports whether word is indexed.
func (ix *LevelIndex) Contains(word string) bool {
	_, ok := ix.levels[NormalizeText(word)]
	return ok
}

// Words returns every indexed word in insertion order, with its original spelling.
func (ix *LevelIndex) Words() []string {
	out := make([]string, len(ix.order))
	for i, key := range ix.order {
		out[i] = ix.words[key]
	}
	return out
}

// WordsAt returns the words assigned to level, in insertion order.
func (ix *LevelIndex) WordsAt(level Level) []string {
	var out []string
	for _, key := range ix.order {
		if ix.levels[key] == level {
			out = append(out, ix.words[key])
		}
	}
	return out
}

// Len returns the number of indexed words.
func (ix *LevelIndex) Len() int { return len(ix.order) }
