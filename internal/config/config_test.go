package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evenDFA = `# States
e
o
# Alphabet
0
1
# Start
e
# Accept
e
# Transitions
e 0 o
e 1 o
o 0 e
o 1 e
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, []string{BuiltinChecker}, cfg.CheckerNames())

	c, err := cfg.Checker(BuiltinChecker)
	require.NoError(t, err)
	assert.True(t, c.Accepts("abc12$"))
}

func TestLoadCheckers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "machines/even.dfa", evenDFA)
	t.Setenv("MACHINES", "machines")
	p := writeFile(t, dir, "automata.yaml", `
color: false
checkers:
  binary:
    rules:
      - name: even
        description: even length
        machine: ${MACHINES}/even.dfa
      - name: has001
        pattern: "(0|1)*.0.0.1.(0|1)*"
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, []string{BuiltinChecker, "binary"}, cfg.CheckerNames())

	c, err := cfg.Checker("binary")
	require.NoError(t, err)
	require.Len(t, c.Rules(), 2)
	assert.Equal(t, "even length", c.Rules()[0].Description)
	assert.True(t, c.Accepts("0010"))
	assert.False(t, c.Accepts("001"))
	assert.False(t, c.Accepts("1111"))

	_, err = cfg.Checker("other")
	assert.ErrorIs(t, err, ErrUnknownChecker)
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"no rules":     "checkers:\n  x:\n    rules: []\n",
		"no name":      "checkers:\n  x:\n    rules:\n      - pattern: \"0\"\n",
		"both sources": "checkers:\n  x:\n    rules:\n      - name: a\n        pattern: \"0\"\n        machine: a.dfa\n",
		"no source":    "checkers:\n  x:\n    rules:\n      - name: a\n",
		"repeated":     "checkers:\n  x:\n    rules:\n      - name: a\n        pattern: \"0\"\n      - name: a\n        pattern: \"1\"\n",
		"reserved":     "checkers:\n  password:\n    rules:\n      - name: a\n        pattern: \"0\"\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "automata.yaml", src)
			_, err := Load(p)
			assert.ErrorIs(t, err, ErrConfigValidation)
		})
	}
}

func TestCheckerReportsBadRule(t *testing.T) {
	p := writeFile(t, t.TempDir(), "automata.yaml", "checkers:\n  x:\n    rules:\n      - name: bad\n        pattern: \"(0|1\"\n")
	cfg, err := Load(p)
	require.NoError(t, err)
	_, err = cfg.Checker("x")
	assert.ErrorContains(t, err, `rule "bad"`)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "AUTOMATA_TEST_VALUE=loaded\n")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("AUTOMATA_TEST_VALUE", "")
	os.Unsetenv("AUTOMATA_TEST_VALUE")

	require.NoError(t, LoadEnvFiles())
	assert.Equal(t, "loaded", os.Getenv("AUTOMATA_TEST_VALUE"))
}
