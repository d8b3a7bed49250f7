package regex

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- helpers

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := Compile(pat)
	require.NoError(t, err, "compile %q", pat)
	return re
}

// binaryStrings returns every string over {0,1} of length <= max.
func binaryStrings(max int) []string {
	out := []string{""}
	layer := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, s := range layer {
			next = append(next, s+"0", s+"1")
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// oracle rewrites a pattern into Go syntax by dropping the explicit
// concatenation operator.
func oracle(t *testing.T, pat string) *regexp.Regexp {
	t.Helper()
	return regexp.MustCompile("^(?:" + strings.ReplaceAll(pat, ".", "") + ")$")
}

var nonEmptyPatterns = []string{"0", "1", "0.1", "0|1", "(0.1)|1", "1.1.0", "(0|1).0"}

// ------------------------------------------------------------------- Lexer

func TestTokenize(t *testing.T) {
	toks, err := Tokenize("(0|1)*.+?")
	require.NoError(t, err)
	want := []Kind{LParen, Symbol, Union, Symbol, RParen, Star, Concat, Plus, QMark}
	require.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
		assert.Equal(t, i, toks[i].Pos, "token %d", i)
	}
	assert.Equal(t, '1', toks[3].Ch)
}

func TestTokenizeInvalidSymbol(t *testing.T) {
	for _, pat := range []string{"0.a", "2", "0 1", "[01]"} {
		_, err := Tokenize(pat)
		assert.ErrorIs(t, err, ErrInvalidSymbol, pat)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

// ------------------------------------------------------------------- Shunt

func TestShunt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{"0.1", "01."},
		{"0|1.0", "010.|"},
		{"0.1|0", "01.0|"},
		{"(0|1)*", "01|*"},
		{"0.1*", "01*."},
		{"0*.1", "0*1."},
		{"0|1|0", "01|0|"},
		{"0.1.0", "01.0."},
		{"(0.1)|(1.0)", "01.10.|"},
		{"0+?", "0+?"},
		{"(0|1)*.0.0.1.(0|1)*", "01|*0.0.1.01|*."},
	}
	for _, tt := range tests {
		got, err := Shunt(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestShuntUnbalanced(t *testing.T) {
	for _, pat := range []string{"(0|1", "0|1)", ")", "((0)", "(0))"} {
		_, err := Shunt(pat)
		assert.ErrorIs(t, err, ErrUnbalancedParentheses, pat)
	}
}

func TestShuntDoesNotInsertConcatenation(t *testing.T) {
	got, err := Shunt("01")
	require.NoError(t, err)
	assert.Equal(t, "01", got)

	_, err = Build(got)
	assert.ErrorIs(t, err, ErrMalformedPostfix)
}

// ------------------------------------------------------------------- Build

func TestBuildLiteral(t *testing.T) {
	n, err := Build("0")
	require.NoError(t, err)
	require.Len(t, n.States, 2)
	assert.Equal(t, '0', n.States[n.Initial].Label)
	assert.Equal(t, n.Accept, n.States[n.Initial].Edge1)
	assert.Equal(t, NoState, n.States[n.Initial].Edge2)
	assert.Equal(t, Epsilon, n.States[n.Accept].Label)
	assert.Equal(t, NoState, n.States[n.Accept].Edge1)
}

func TestBuildStar(t *testing.T) {
	n, err := Build("0*")
	require.NoError(t, err)
	require.Len(t, n.States, 4)
	start := n.States[n.Initial]
	assert.Equal(t, StateID(0), start.Edge1)
	assert.Equal(t, n.Accept, start.Edge2)
	// old accept loops back and exits
	assert.Equal(t, StateID(0), n.States[1].Edge1)
	assert.Equal(t, n.Accept, n.States[1].Edge2)
}

func TestBuildPlusForcesOnePass(t *testing.T) {
	n, err := Build("0+")
	require.NoError(t, err)
	start := n.States[n.Initial]
	assert.Equal(t, StateID(0), start.Edge1)
	assert.Equal(t, NoState, start.Edge2)
}

func TestBuildMalformed(t *testing.T) {
	for _, postfix := range []string{"", "*", "+", "?", ".", "|", "0.", "0|", "01", "0*1"} {
		_, err := Build(postfix)
		assert.ErrorIs(t, err, ErrMalformedPostfix, "%q", postfix)
	}
}

func TestBuildInvalidSymbol(t *testing.T) {
	_, err := Build("0a.")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestBuildEveryStateReachable(t *testing.T) {
	pats := append([]string{"0*", "0+", "0?", "(0|1)*.0.0.1.(0|1)*", "((0.1)+|1?)*", "0??", "(0*)*"}, nonEmptyPatterns...)
	for _, pat := range pats {
		re := newRE(t, pat)
		n := re.NFA()
		assert.Equal(t, len(n.States), n.Reachable(), pat)
		assert.LessOrEqual(t, len(n.States), 2*len(re.Postfix()), pat)
		acc := n.States[n.Accept]
		assert.Equal(t, NoState, acc.Edge1, pat)
		assert.Equal(t, NoState, acc.Edge2, pat)
	}
}

// ------------------------------------------------------------------- Matcher

func TestEpsilonClosure(t *testing.T) {
	n, err := Build("0*")
	require.NoError(t, err)
	got := n.EpsilonClosure(n.Initial)
	assert.ElementsMatch(t, []StateID{n.Initial, 0, n.Accept}, got)

	// a labelled state is its own closure
	assert.Equal(t, []StateID{0}, n.EpsilonClosure(0))
}

func TestEpsilonClosureTerminatesOnCycle(t *testing.T) {
	n := &NFA{States: []State{
		{Label: Epsilon, Edge1: 1, Edge2: NoState},
		{Label: Epsilon, Edge1: 0, Edge2: 2},
		{Label: Epsilon, Edge1: NoState, Edge2: NoState},
	}, Initial: 0, Accept: 2}
	assert.ElementsMatch(t, []StateID{0, 1, 2}, n.EpsilonClosure(0))
	assert.True(t, n.Match(""))
	assert.False(t, n.Match("0"))
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		pattern, input string
		want           bool
	}{
		{"0", "0", true},
		{"0", "1", false},
		{"0", "", false},
		{"(0|1)*.0.0.1.(0|1)*", "0001", true},
		{"(0|1)*.0.0.1.(0|1)*", "111", false},
		{"(0|1)*.0.0.1.(0|1)*", "1100110", true},
		{"(0.1)|(1.0)", "01", true},
		{"(0.1)|(1.0)", "10", true},
		{"(0.1)|(1.0)", "00", false},
		{"0*", "", true},
		{"0*", "0000", true},
		{"0*", "1", false},
		{"((0|1))*", "", true},
		{"1+", "", false},
		{"1+", "111", true},
		{"1?.0", "0", true},
		{"1?.0", "10", true},
		{"1?.0", "110", false},
		{"0", "0\x00", false},
	}
	for _, tt := range tests {
		got, err := Match(tt.pattern, tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%q on %q", tt.pattern, tt.input)
	}
}

func TestMatchErrors(t *testing.T) {
	_, err := Match("(0|1", "0")
	assert.ErrorIs(t, err, ErrUnbalancedParentheses)

	_, err = Match("", "")
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = Match("0|", "0")
	assert.ErrorIs(t, err, ErrMalformedPostfix)

	_, err = Match("0.x", "0")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.False(t, errors.Is(err, ErrMalformedPostfix))
}

func TestMatchAgreesWithOracle(t *testing.T) {
	pats := []string{
		"(0|1)*.0.0.1.(0|1)*",
		"(0.1)|(1.0)",
		"0*.1+.0?",
		"(0.1)+|1*",
		"((0|1).(0|1))*",
		"1.(0|1)?.1",
	}
	inputs := binaryStrings(7)
	for _, pat := range pats {
		re := newRE(t, pat)
		want := oracle(t, pat)
		for _, s := range inputs {
			assert.Equal(t, want.MatchString(s), re.MatchString(s), "%q on %q", pat, s)
		}
	}
}

// ------------------------------------------------------------------- Laws

func TestStarAbsorbsEmpty(t *testing.T) {
	for _, p := range nonEmptyPatterns {
		assert.True(t, newRE(t, "("+p+")*").MatchString(""), p)
	}
}

func TestPlusExcludesEmpty(t *testing.T) {
	for _, p := range nonEmptyPatterns {
		plus := newRE(t, "("+p+")+")
		assert.False(t, plus.MatchString(""), p)

		base := newRE(t, p)
		for _, s := range binaryStrings(3) {
			if !base.MatchString(s) {
				continue
			}
			for k := 1; k <= 4; k++ {
				assert.True(t, plus.MatchString(strings.Repeat(s, k)), "%q x%d on %q", s, k, p)
			}
		}
	}
}

func TestOptional(t *testing.T) {
	for _, p := range nonEmptyPatterns {
		opt := newRE(t, "("+p+")?")
		base := newRE(t, p)
		assert.True(t, opt.MatchString(""), p)
		for _, s := range binaryStrings(5)[1:] {
			assert.Equal(t, base.MatchString(s), opt.MatchString(s), "%q on %q", p, s)
		}
	}
}

func TestConcatenationSplits(t *testing.T) {
	for _, p := range nonEmptyPatterns {
		for _, q := range nonEmptyPatterns {
			cat := newRE(t, "("+p+").("+q+")")
			rp, rq := newRE(t, p), newRE(t, q)
			for _, s := range binaryStrings(5) {
				want := false
				for i := 0; i <= len(s); i++ {
					if rp.MatchString(s[:i]) && rq.MatchString(s[i:]) {
						want = true
						break
					}
				}
				assert.Equal(t, want, cat.MatchString(s), "(%s).(%s) on %q", p, q, s)
			}
		}
	}
}

func TestAlternation(t *testing.T) {
	for _, p := range nonEmptyPatterns {
		for _, q := range nonEmptyPatterns {
			alt := newRE(t, "("+p+")|("+q+")")
			rp, rq := newRE(t, p), newRE(t, q)
			for _, s := range binaryStrings(4) {
				assert.Equal(t, rp.MatchString(s) || rq.MatchString(s), alt.MatchString(s), "(%s)|(%s) on %q", p, q, s)
			}
		}
	}
}

// ------------------------------------------------------------------- Sharing

func TestConcurrentMatch(t *testing.T) {
	re := MustCompile("(0|1)*.0.0.1.(0|1)*")
	inputs := binaryStrings(8)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range inputs {
				if re.MatchString(s) != strings.Contains(s, "001") {
					t.Errorf("mismatch on %q", s)
				}
			}
		}()
	}
	wg.Wait()
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("0|") })
}

// ------------------------------------------------------------------- DOT

func TestExportDOT(t *testing.T) {
	re := newRE(t, "0*")
	var buf bytes.Buffer
	require.NoError(t, ExportDOT(&buf, re.NFA()))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph NFA {"))
	assert.Contains(t, out, "n3 [shape=doublecircle];")
	assert.Contains(t, out, "n0 -> n1 [label=\"0\"];")
	assert.Contains(t, out, "[label=\"ε\"]")
	assert.Contains(t, out, "_start -> n2;")
}

// ------------------------------------------------------------------- Bench

func BenchmarkMatch(b *testing.B) {
	re := MustCompile("(0|1)*.0.0.1.(0|1)*")
	txt := strings.Repeat("01", 10_000) + "001"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.MatchString(txt)
	}
}
