package domain

// Condition selects which pair of tables a session reads.
type Condition string

const (
	Condition1 Condition = "condition1"
	Condition2 Condition = "condition2"
	Condition3 Condition = "condition3"
	Condition4 Condition = "condition4"
)

// Tables names the posts and comments sheets for a condition.
type Tables struct {
	Posts    string
	Comments string
}

var conditionTables = map[Condition]Tables{
	Condition1: {Posts: "Posts1", Comments: "Comments1"},
	Condition2: {Posts: "Posts2", Comments: "Comments2"},
	Condition3: {Posts: "Posts3", Comments: "Comments3"},
	Condition4: {Posts: "Posts4", Comments: "Comments4"},
}

var entryCodes = map[string]Condition{
	"235": Condition1,
	"254": Condition2,
	"275": Condition3,
	"295": Condition4,
}

// Tables returns the sheet names for c. The second result is false for an
// unknown condition.
func (c Condition) Tables() (Tables, bool) {
	t, ok := conditionTables[c]
	return t, ok
}

// Valid reports whether c is one of the four known conditions.
func (c Condition) Valid() bool {
	_, ok := conditionTables[c]
	return ok
}

// ConditionForCode maps a participant entry code to its condition.
func ConditionForCode(code string) (Condition, error) {
	c, ok := entryCodes[code]
	if !ok {
		return "", ErrInvalidCode
	}
	return c, nil
}
