package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"docregex/config"
	"docregex/regexp2"
	"docregex/runner"
	"docregex/textdoc"
)

// fileWork is one job applied to one file.
type fileWork struct {
	job  runner.Job
	path string
}

// Dependency injection composition root
func main() {
	logLevel := flag.String("loglevel", "error", "sets log level. Can be one of: debug, info, warn, error, fatal, panic.")
	configFile := flag.String("config", "", "if set, load find/replace jobs from the given YAML file instead of using -pattern")
	pattern := flag.String("pattern", "", "regex pattern to search for in the files given as arguments")
	replacement := flag.String("replacement", "", "if set, replace every match with this template ($1, ${name}, \\n, ...) and print the result")
	ignoreCase := flag.Bool("ignorecase", false, "case-insensitive matching")
	wholeWord := flag.Bool("word", false, "match whole words only")
	wordStart := flag.Bool("wordstart", false, "match at word starts only")
	dotAll := flag.Bool("dotall", false, "make . match line endings too")
	write := flag.Bool("write", false, "write replacement results back to the input files instead of stdout")
	flag.Parse()

	loglevel, _ := zerolog.ParseLevel(*logLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(loglevel).With().Timestamp().Caller().Logger()

	work, err := assembleWork(*configFile, *pattern, *replacement, *ignoreCase, *wholeWord, *wordStart, *dotAll, flag.Args())
	if err != nil {
		logger.Fatal().Err(err).Msg("Error while assembling jobs")
	}
	if len(work) == 0 {
		logger.Fatal().Msg("Nothing to do: give -pattern and files, or -config")
	}

	r := runner.New(logger, regexp2.NewEngineFactory(logger))

	// One goroutine per file; each gets its own engine via the factory
	// because engines are single-caller state.
	results := make([]string, len(work))
	var g errgroup.Group
	for i, w := range work {
		i, w := i, w
		g.Go(func() error {
			out, err := processFile(r, w, *write)
			if err != nil {
				return fmt.Errorf("%v: %v", w.path, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Error while processing files")
	}

	for _, out := range results {
		fmt.Print(out)
	}
}

func assembleWork(configFile, pattern, replacement string, ignoreCase, wholeWord, wordStart, dotAll bool, args []string) (work []fileWork, err error) {
	if configFile != "" {
		var c *config.Main
		c, err = config.Load(configFile)
		if err != nil {
			return
		}
		for _, j := range c.Jobs {
			job := runner.Job{
				Pattern:       j.Pattern,
				Replacement:   j.Replacement,
				CaseSensitive: j.CaseSensitive,
				WholeWord:     j.WholeWord,
				WordStart:     j.WordStart,
				DotMatchAll:   j.DotMatchAll,
			}
			files := j.Files
			if len(files) == 0 {
				files = args
			}
			for _, f := range files {
				work = append(work, fileWork{job: job, path: f})
			}
		}
		return
	}

	if pattern == "" {
		return
	}
	job := runner.Job{
		Pattern:       pattern,
		Replacement:   replacement,
		CaseSensitive: !ignoreCase,
		WholeWord:     wholeWord,
		WordStart:     wordStart,
		DotMatchAll:   dotAll,
	}
	for _, f := range args {
		work = append(work, fileWork{job: job, path: f})
	}
	return
}

// processFile runs one job against one file. Jobs with a replacement
// produce the substituted content; jobs without list the matches.
func processFile(r *runner.Runner, w fileWork, write bool) (string, error) {
	data, err := readInput(w.path)
	if err != nil {
		return "", err
	}

	doc := textdoc.New(data)

	if w.job.Replacement == "" {
		matches, err := r.FindAll(doc, w.job)
		if err != nil {
			return "", err
		}
		var out string
		for _, m := range matches {
			out += fmt.Sprintf("%v:%v:%v:%s\n", w.path, m.Pos, m.Length, doc.RangeBytes(m.Pos, m.Length))
		}
		return out, nil
	}

	result, count, err := r.ReplaceAll(doc, w.job)
	if err != nil {
		return "", err
	}
	if write {
		if err := writeOutput(w.path, result); err != nil {
			return "", err
		}
		return fmt.Sprintf("%v: %v replacements\n", w.path, count), nil
	}
	return string(result), nil
}
