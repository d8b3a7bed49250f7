package machine

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Description is the raw content of a machine description file:
//
//	# States
//	q0
//	# Alphabet
//	a
//	# Start
//	q0
//	# Accept
//	q0
//	# Transitions
//	q0 a q0
type Description struct {
	States      []string      `parser:"EOL* StatesHeader EOL+ (@Word EOL+)*"`
	Alphabet    []string      `parser:"AlphabetHeader EOL+ (@Word EOL+)*"`
	Start       string        `parser:"StartHeader EOL+ @Word EOL+"`
	Accept      []string      `parser:"AcceptHeader EOL+ (@Word EOL+)*"`
	Transitions []*Transition `parser:"TransitionsHeader EOL* @@*"`
}

// Transition is one "from symbol to" line.
type Transition struct {
	From   string `parser:"@Word"`
	Symbol string `parser:"@Word"`
	To     string `parser:"@Word EOL*"`
}

func (t *Transition) String() string { return t.From + " " + t.Symbol + " " + t.To }

// Headers come before Word so that "# States" is not read as two words.
var descriptionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "StatesHeader", Pattern: `#[ \t]*States`},
	{Name: "AlphabetHeader", Pattern: `#[ \t]*Alphabet`},
	{Name: "StartHeader", Pattern: `#[ \t]*Start`},
	{Name: "AcceptHeader", Pattern: `#[ \t]*Accept`},
	{Name: "TransitionsHeader", Pattern: `#[ \t]*Transitions`},
	{Name: "Word", Pattern: `[^\s]+`},
	{Name: "EOL", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parser = participle.MustBuild[Description](
	participle.Lexer(descriptionLexer),
	participle.Elide("Whitespace"),
)

func Parse(name string, r io.Reader) (*Description, error) {
	d, err := parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFormat, err)
	}
	return d, nil
}

func ParseString(name, data string) (*Description, error) {
	d, err := parser.ParseString(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFormat, err)
	}
	return d, nil
}

// LoadFile parses the description stored at path.
func LoadFile(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}
