package integrationtesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"docregex/config"
	"docregex/regexp2"
	"docregex/runner"
	"docregex/search"
	"docregex/testutils"
	"docregex/textdoc"
)

func newTestRunner(t *testing.T) *runner.Runner {
	logger := testutils.NewTestLogger(t)
	return runner.New(logger, regexp2.NewEngineFactory(logger))
}

func TestFindAllFromYamlConfig(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	configYaml := `
jobs:
  - pattern: \b\w+@\w+\.\w+\b
  - pattern: cat
    wholeWord: true
`
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	err := os.WriteFile(path, []byte(configYaml), 0644)
	assert.Nil(err)
	doc := textdoc.NewFromString("mail bob@example.com about the cat, not the scattered catalog")
	r := newTestRunner(t)

	// Act
	c, err := config.Load(path)
	assert.Nil(err)
	job1 := runner.Job{Pattern: c.Jobs[0].Pattern, CaseSensitive: c.Jobs[0].CaseSensitive, WholeWord: c.Jobs[0].WholeWord}
	job2 := runner.Job{Pattern: c.Jobs[1].Pattern, CaseSensitive: c.Jobs[1].CaseSensitive, WholeWord: c.Jobs[1].WholeWord}
	emails, err1 := r.FindAll(doc, job1)
	cats, err2 := r.FindAll(doc, job2)

	// Assert
	assert.Nil(err1)
	assert.Nil(err2)
	if assert.Equal(1, len(emails)) {
		assert.Equal("bob@example.com", string(doc.RangeBytes(emails[0].Pos, emails[0].Length)))
	}
	if assert.Equal(1, len(cats)) {
		assert.Equal(31, cats[0].Pos)
	}
}

func TestReplaceAllWithNamedGroups(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	doc := textdoc.NewFromString("released 2023-07-15, patched 2024-01-02")
	job := runner.Job{
		Pattern:       `(?<year>\d{4})-(?<month>\d{2})-(?<day>\d{2})`,
		Replacement:   `${day}/${month}/${year}`,
		CaseSensitive: true,
	}
	r := newTestRunner(t)

	// Act
	result, count, err := r.ReplaceAll(doc, job)

	// Assert
	assert.Nil(err)
	assert.Equal(2, count)
	assert.Equal("released 15/07/2023, patched 02/01/2024", string(result))
}

func TestLineAnchorsOnCrlfDocument(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	doc := textdoc.NewFromString("alpha\r\nbeta\r\ngamma\r\n")
	assert.Equal(search.EOLModeCRLF, doc.EOLMode())
	job := runner.Job{Pattern: `^\w+$`, CaseSensitive: true}
	r := newTestRunner(t)

	// Act
	matches, err := r.FindAll(doc, job)

	// Assert
	assert.Nil(err)
	if assert.Equal(3, len(matches)) {
		assert.Equal("alpha", string(doc.RangeBytes(matches[0].Pos, matches[0].Length)))
		assert.Equal("beta", string(doc.RangeBytes(matches[1].Pos, matches[1].Length)))
		assert.Equal("gamma", string(doc.RangeBytes(matches[2].Pos, matches[2].Length)))
	}
}

func TestReplaceAllWithEscapeTemplates(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	doc := textdoc.NewFromString("a, b, c")
	job := runner.Job{Pattern: `, `, Replacement: `\n`, CaseSensitive: true}
	r := newTestRunner(t)

	// Act
	result, count, err := r.ReplaceAll(doc, job)

	// Assert
	assert.Nil(err)
	assert.Equal(2, count)
	assert.Equal("a\nb\nc", string(result))
}

func TestInvalidPatternSurfacesSentinelError(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	doc := textdoc.NewFromString("some text")
	job := runner.Job{Pattern: `(unclosed`, CaseSensitive: true}
	r := newTestRunner(t)

	// Act
	_, err := r.FindAll(doc, job)

	// Assert
	assert.Equal(search.ErrInvalidPattern, err)
}

func TestMultiByteDocumentPositionsAreByteOffsets(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	doc := textdoc.NewFromString("héllo wörld wörd")
	job := runner.Job{Pattern: `wör\w+`, CaseSensitive: true}
	r := newTestRunner(t)

	// Act
	matches, err := r.FindAll(doc, job)

	// Assert
	assert.Nil(err)
	if assert.Equal(2, len(matches)) {
		assert.Equal("wörld", string(doc.RangeBytes(matches[0].Pos, matches[0].Length)))
		assert.Equal("wörd", string(doc.RangeBytes(matches[1].Pos, matches[1].Length)))
	}
}
