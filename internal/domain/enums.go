package domain

// Level represents a CEFR proficiency classification.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// DefaultLevel is assumed when a word has no entry in the level map.
const DefaultLevel = LevelB2

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// Rank returns the ordinal position of the level: A1=0 … C2=5.
// Invalid levels rank as DefaultLevel.
func (l Level) Rank() int {
	switch l {
	case LevelA1:
		return 0
	case LevelA2:
		return 1
	case LevelB1:
		return 2
	case LevelB2:
		return 3
	case LevelC1:
		return 4
	case LevelC2:
		return 5
	}
	return DefaultLevel.Rank()
}

// ParseLevel normalizes a level string ("b2", " B2 ") to a Level.
// The second return value is false when the input is not a CEFR level.
func ParseLevel(s string) (Level, bool) {
	l := Level(NormalizeUpper(s))
	if l.IsValid() {
		return l, true
	}
	return "", false
}

// Tier is the difficulty bucket controlling export priority:
// 1 is hardest and exported first, 3 is easiest.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

func (t Tier) IsValid() bool {
	return t >= Tier1 && t <= Tier3
}
