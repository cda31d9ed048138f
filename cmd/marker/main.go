// Command marker annotates student essays. It reads a .docx (or plain
// text) essay, runs the rule detector battery, and writes the annotated
// document back out with highlights, comment callouts, and the
// end-of-document issue summary.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/vysti/marker/core/doc"
	"github.com/vysti/marker/core/engine"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/rules"
	"github.com/vysti/marker/internal/config"
	"github.com/vysti/marker/internal/docx"
	"github.com/vysti/marker/internal/excache"
	"github.com/vysti/marker/internal/logging"
)

const version = "0.2.0"

// CLI defines the command-line interface for marker.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"json,text" help:"Log output format"`

	// Command groups (noun-first organization)
	Essay   EssayGroup   `cmd:"" help:"Essay annotation (annotate, check)"`
	Rules   RulesGroup   `cmd:"" help:"Rule detector information"`
	Devices DevicesGroup `cmd:"" help:"Literary device table"`
	Cache   CacheGroup   `cmd:"" help:"Persistent example store"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// EssayGroup contains the annotation operations.
type EssayGroup struct {
	Annotate AnnotateCmd `cmd:"" help:"Annotate an essay and write the marked-up document"`
	Check    CheckCmd    `cmd:"" help:"Report findings without writing a document"`
}

// RulesGroup contains detector inspection operations.
type RulesGroup struct {
	List RulesListCmd `cmd:"" help:"List rule detectors and their status for a mode"`
}

// DevicesGroup contains device table operations.
type DevicesGroup struct {
	List DevicesListCmd `cmd:"" help:"List the canonical device keys"`
}

// CacheGroup contains example store operations.
type CacheGroup struct {
	Labels   CacheLabelsCmd   `cmd:"" help:"List stored labels and example counts"`
	Examples CacheExamplesCmd `cmd:"" help:"Show stored examples for a label"`
}

// runFlags are the per-run configuration flags shared by annotate and
// check.
type runFlags struct {
	Config  string `name:"config" short:"c" type:"path" help:"YAML run configuration file"`
	Mode    string `name:"mode" short:"m" default:"textual_analysis" help:"Assignment mode preset"`
	Student bool   `name:"student" help:"Student self-review mode (softer output)"`
}

func (f *runFlags) load() (*config.Config, error) {
	if f.Config != "" {
		cfg, err := config.Load(f.Config)
		if err != nil {
			return nil, err
		}
		if f.Student {
			cfg.Student = true
		}
		return cfg, nil
	}
	mode := config.Mode(f.Mode)
	if !mode.IsValid() {
		return nil, fmt.Errorf("unknown assignment mode %q", f.Mode)
	}
	cfg := config.Preset(mode)
	cfg.Student = f.Student
	return cfg, nil
}

// readInput loads an essay as a document. A .docx input keeps its
// package parts for round-tripping; anything else is treated as plain
// text with blank-line paragraph breaks.
func readInput(path string) (*docx.File, error) {
	if strings.HasSuffix(strings.ToLower(path), ".docx") {
		return docx.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := &doc.Document{}
	for _, block := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n") {
		block = strings.Trim(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		d.Paragraphs = append(d.Paragraphs, &doc.Paragraph{
			Fragments: []*doc.Fragment{{Text: block}},
		})
	}
	return docx.New(d), nil
}

// AnnotateCmd annotates one essay.
type AnnotateCmd struct {
	runFlags
	Input   string `arg:"" type:"existingfile" help:"Essay file (.docx or plain text)"`
	Output  string `name:"output" short:"o" type:"path" help:"Output path (default: <input>_marked.docx)"`
	CacheDB string `name:"cache-db" type:"path" help:"Store collected examples in this SQLite file"`
}

func (c *AnnotateCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	f, err := readInput(c.Input)
	if err != nil {
		return err
	}
	f.Doc.Title = c.Input

	e := engine.New(nlp.NewHeuristic())
	rep, err := e.Run(context.Background(), f.Doc, cfg)
	if err != nil {
		return err
	}

	out := c.Output
	if out == "" {
		out = strings.TrimSuffix(c.Input, ".docx") + "_marked.docx"
	}
	if err := f.WriteFile(out); err != nil {
		return err
	}

	if c.CacheDB != "" {
		store, err := excache.Open(c.CacheDB)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.PutReport(rep); err != nil {
			return err
		}
	}

	total := 0
	for _, row := range rep.Rows {
		total += row.Count
	}
	fmt.Printf("%s: %d findings across %d rules -> %s\n", c.Input, total, len(rep.Rows), out)
	return nil
}

// CheckCmd reports findings as JSON without writing a document.
type CheckCmd struct {
	runFlags
	Input string `arg:"" type:"existingfile" help:"Essay file (.docx or plain text)"`
}

func (c *CheckCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	f, err := readInput(c.Input)
	if err != nil {
		return err
	}
	f.Doc.Title = c.Input

	e := engine.New(nlp.NewHeuristic())
	rep, err := e.Run(context.Background(), f.Doc, cfg)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// RulesListCmd lists the detector battery.
type RulesListCmd struct {
	Mode string `name:"mode" short:"m" default:"textual_analysis" help:"Assignment mode preset"`
}

func (c *RulesListCmd) Run() error {
	mode := config.Mode(c.Mode)
	if !mode.IsValid() {
		return fmt.Errorf("unknown assignment mode %q", c.Mode)
	}
	cfg := config.Preset(mode)
	for _, d := range rules.NewRegistry().Detectors() {
		status := "enabled"
		if !cfg.Enabled(d.ID) {
			status = "disabled"
		}
		roles := "intro,body,conclusion"
		if len(d.Roles) > 0 {
			var rs []string
			for _, r := range d.Roles {
				rs = append(rs, string(r))
			}
			roles = strings.Join(rs, ",")
		}
		fmt.Printf("%-18s %-9s %s\n", d.ID, status, roles)
	}
	return nil
}

// DevicesListCmd lists the canonical device keys.
type DevicesListCmd struct{}

func (c *DevicesListCmd) Run() error {
	for _, key := range engine.New(nlp.NewHeuristic()).Devices.Canonicals() {
		fmt.Println(key)
	}
	return nil
}

// CacheLabelsCmd lists stored labels and counts.
type CacheLabelsCmd struct {
	DB string `arg:"" type:"existingfile" help:"Example store SQLite file"`
}

func (c *CacheLabelsCmd) Run() error {
	store, err := excache.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()
	labels, err := store.Labels()
	if err != nil {
		return err
	}
	for label, n := range labels {
		fmt.Printf("%4d  %s\n", n, label)
	}
	return nil
}

// CacheExamplesCmd shows stored examples for a label.
type CacheExamplesCmd struct {
	DB    string `arg:"" type:"existingfile" help:"Example store SQLite file"`
	Label string `arg:"" help:"Rule label (exact text)"`
	Limit int    `name:"limit" default:"20" help:"Maximum examples to show"`
}

func (c *CacheExamplesCmd) Run() error {
	store, err := excache.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()
	if _, ok := rulebook.Default().Explanation(c.Label); !ok {
		logging.Warn("unknown rule label", "label", c.Label)
	}
	examples, err := store.Examples(c.Label, c.Limit)
	if err != nil {
		return err
	}
	for _, ex := range examples {
		fmt.Println("- " + ex)
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("marker version %s\n", version)
	return nil
}

func initLogging() {
	level := logging.LevelInfo
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("marker"),
		kong.Description("Essay annotation engine - rule-based feedback for student writing"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
