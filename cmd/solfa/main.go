// Command solfa is the CLI tool for four-voice tonic sol-fa scores.
// It checks score files and reports their header and structure.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/grammar"
	"github.com/solfaml/solfaml-parser/core/score"
	"github.com/solfaml/solfaml-parser/internal/logging"
	"github.com/solfaml/solfaml-parser/internal/source"
)

const version = "0.1.0"

// stdout receives command output. Logs go to stderr.
var stdout io.Writer = os.Stdout

// CLI defines the command-line interface for solfa.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" env:"SOLFA_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format (json, text)" default:"json" env:"SOLFA_LOG_FORMAT"`
	Strict    bool   `help:"Fail on voices of different lengths instead of truncating" env:"SOLFA_STRICT"`

	Check   CheckCmd   `cmd:"" help:"Parse score files and report errors"`
	Header  HeaderCmd  `cmd:"" help:"Print the metadata header of a score"`
	Stats   StatsCmd   `cmd:"" help:"Print staff, voice and verse statistics"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// CheckCmd parses each file and reports ok or the first error.
type CheckCmd struct {
	Files []string `arg:"" help:"Score files to check" type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	failed := 0
	for _, path := range c.Files {
		src, doc, err := parseFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "%s: %s\n", location(path, err), err)
			continue
		}
		fmt.Fprintf(stdout, "%s: ok (staves=%d, blake3=%s)\n", path, len(doc.Staves), src.Digest)
	}
	logging.Info("check_completed", "files", len(c.Files), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(c.Files))
	}
	return nil
}

// HeaderCmd prints the header entries of a score in source order.
type HeaderCmd struct {
	Path string `arg:"" help:"Score file" type:"existingfile"`
	JSON bool   `help:"Output as JSON"`
}

type headerEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (c *HeaderCmd) Run() error {
	_, doc, err := parseFile(c.Path)
	if err != nil {
		return err
	}

	entries := make([]headerEntry, 0, doc.Header.Len())
	for _, e := range doc.Header.Entries() {
		entries = append(entries, headerEntry{Key: e.Key, Value: e.Value})
	}

	if c.JSON {
		return writeJSON(entries)
	}
	for _, e := range entries {
		fmt.Fprintf(stdout, "%s: %s\n", e.Key, e.Value)
	}
	return nil
}

// StatsCmd prints per-staff counts.
type StatsCmd struct {
	Path string `arg:"" help:"Score file" type:"existingfile"`
	JSON bool   `help:"Output as JSON"`
}

// ScoreStats summarizes a parsed score.
type ScoreStats struct {
	Source string       `json:"source"`
	Digest string       `json:"digest"`
	Staves []StaffStats `json:"staves"`
}

// StaffStats summarizes one staff.
type StaffStats struct {
	Columns  int                      `json:"columns"`
	Dynamics int                      `json:"dynamics"`
	Voices   [score.Voices]VoiceStats `json:"voices"`
}

// VoiceStats summarizes one voice of a staff.
type VoiceStats struct {
	Notes     int `json:"notes"`
	Rests     int `json:"rests"`
	Verses    int `json:"verses"`
	Syllables int `json:"syllables"`
}

func (c *StatsCmd) Run() error {
	src, doc, err := parseFile(c.Path)
	if err != nil {
		return err
	}

	stats := buildStats(doc)
	stats.Source = src.Name
	stats.Digest = src.Digest

	if c.JSON {
		return writeJSON(stats)
	}
	printStats(stats)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(stdout, "solfa version %s\n", version)
	return nil
}

// Helper functions

// parseFile loads and parses one score, logging under a fresh parse id.
func parseFile(path string) (*source.Source, *score.Document, error) {
	ctx := logging.WithParseID(context.Background(), uuid.NewString())

	src, err := source.Load(path)
	if err != nil {
		logging.ParseFailed(ctx, path, err)
		return nil, nil, err
	}

	logging.DebugContext(ctx, "score_loaded", "source", src.Name, "type", string(src.Type), "digest", src.Digest)
	logging.ParseStarted(ctx, src.Name, len(src.Text))
	start := time.Now()

	doc, err := grammar.ParseWithOptions(src.Text, grammar.Options{
		Strict: CLI.Strict,
		Logger: logging.LoggerFromContext(ctx),
	})
	if err != nil {
		logging.ParseFailed(ctx, src.Name, err)
		return src, nil, err
	}

	logging.ParseCompleted(ctx, src.Name, len(doc.Staves), time.Since(start), "digest", src.Digest)
	return src, doc, nil
}

// location prefixes path with line:col when err carries a position.
func location(path string, err error) string {
	var syntaxErr *errors.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("%s:%d:%d", path, syntaxErr.Line, syntaxErr.Column)
	}
	var overflowErr *errors.OverflowError
	if errors.As(err, &overflowErr) {
		return fmt.Sprintf("%s:%d:%d", path, overflowErr.Line, overflowErr.Column)
	}
	return path
}

func buildStats(doc *score.Document) ScoreStats {
	stats := ScoreStats{Staves: make([]StaffStats, 0, len(doc.Staves))}
	for _, st := range doc.Staves {
		ss := StaffStats{
			Columns:  len(st.Measures),
			Dynamics: len(st.Dynamics),
		}
		for v := 0; v < score.Voices; v++ {
			notes, rests := score.CountNotes(st.Voice(v))
			verses := st.Verses(v)
			syllables := 0
			for _, verse := range verses {
				syllables += len(score.Syllables(verse.Root))
			}
			ss.Voices[v] = VoiceStats{
				Notes:     notes,
				Rests:     rests,
				Verses:    len(verses),
				Syllables: syllables,
			}
		}
		stats.Staves = append(stats.Staves, ss)
	}
	return stats
}

func printStats(stats ScoreStats) {
	fmt.Fprintf(stdout, "Source: %s\n", stats.Source)
	fmt.Fprintf(stdout, "BLAKE3: %s\n", stats.Digest)
	fmt.Fprintf(stdout, "Staves: %d\n", len(stats.Staves))
	for i, st := range stats.Staves {
		fmt.Fprintf(stdout, "\nStaff %d: %d columns, %d dynamics\n", i+1, st.Columns, st.Dynamics)
		for v, vs := range st.Voices {
			fmt.Fprintf(stdout, "  voice %d: %d notes, %d rests", v+1, vs.Notes, vs.Rests)
			if vs.Verses > 0 {
				fmt.Fprintf(stdout, ", %d verses, %d syllables", vs.Verses, vs.Syllables)
			}
			fmt.Fprintln(stdout)
		}
	}
}

func writeJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(stdout, string(output))
	return nil
}

func initLogging() error {
	level, err := logging.ParseLevel(CLI.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(CLI.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("solfa"),
		kong.Description("Tonic sol-fa score parser"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(initLogging())
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
