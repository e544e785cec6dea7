package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/puashape/core"
	"github.com/npillmayer/puashape/engine/glyphing"
	"github.com/npillmayer/puashape/engine/glyphing/indic"
	"github.com/npillmayer/puashape/engine/glyphing/ligature"
	"github.com/npillmayer/puashape/engine/glyphing/monospace"
	"github.com/npillmayer/puashape/engine/glyphing/puashape"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// tracer traces with key 'puashape.cli'
func tracer() tracing.Trace {
	return tracing.Select("puashape.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.puashape.cli":      "Info",
		"trace.puashape.indic":    "Error",
		"trace.puashape.ligature": "Error",
		"trace.puashape.glyphs":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to bind ligature glyphs from")
	detection := flag.String("detection", "sample", "Script detection [sample|exhaustive]")
	scripts := flag.String("scripts", "", "Comma separated list of scripts to shape, default all")
	diagnostics := flag.Bool("diagnostics", false, "Trace shaping decisions")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)
	pterm.Info.Println("Welcome to the Indic PUA shaping CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	docConf := testconfig.Conf{
		indic.KeyDetection: *detection,
		indic.KeyScripts:   *scripts,
		indic.KeyNormalize: "NFC",
	}
	if *diagnostics {
		docConf[indic.KeyDiagnostics] = "trace"
		tracing.Select("puashape.indic").SetTraceLevel(tracing.LevelDebug)
	}
	//
	// set up REPL
	repl, err := readline.New("pua > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, doc: indic.NewDocument(docConf)}
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	setTraceLevel(tracer(), *tlevel)
	intp.REPL()
}

func setTraceLevel(t tracing.Trace, level string) {
	switch strings.ToLower(level) {
	case "debug":
		t.SetTraceLevel(tracing.LevelDebug)
	case "error":
		t.SetTraceLevel(tracing.LevelError)
	default:
		t.SetTraceLevel(tracing.LevelInfo)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	doc  *indic.Document
	font *sfnt.Font
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Debugf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command codes
const (
	QUIT int = iota
	HELP
	SHAPE
	GLYPHS
	RESTORE
	LOOKUP
	PREFIX
	COLLISIONS
	DETECT
	OVERRIDE
	FONT
	RESET
)

// Command is a parsed input line, e.g. "lookup:deva E026".
type Command struct {
	code   int
	script string
	args   []string
	text   string // everything after the command word
}

func parseCommand(line string) Command {
	word, rest, _ := strings.Cut(line, " ")
	c := strings.SplitN(word, ":", 2) // e.g. "prefix:beng" or "collisions:deva"
	cmd := Command{
		args: strings.Fields(rest),
		text: strings.TrimSpace(rest),
	}
	if len(c) > 1 {
		cmd.script = c[1]
	}
	tracer().Debugf("parse command = %v", c)
	switch strings.ToLower(c[0]) {
	case "quit", "exit":
		cmd.code = QUIT
	case "shape":
		cmd.code = SHAPE
	case "glyphs":
		cmd.code = GLYPHS
	case "restore":
		cmd.code = RESTORE
	case "lookup":
		cmd.code = LOOKUP
	case "prefix":
		cmd.code = PREFIX
	case "collisions":
		cmd.code = COLLISIONS
	case "detect":
		cmd.code = DETECT
	case "override":
		cmd.code = OVERRIDE
	case "font":
		cmd.code = FONT
	case "reset":
		cmd.code = RESET
	default:
		cmd.code = HELP
		cmd.script = strings.ToLower(c[0])
		if cmd.script == "help" && len(cmd.args) > 0 {
			cmd.script = cmd.args[0]
		}
	}
	return cmd
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(cmd.script)
	case SHAPE:
		shaped := intp.doc.ProcessText(cmd.text)
		pterm.Printfln("%s", shaped)
		pterm.Printfln("%s", hex([]rune(shaped)))
	case GLYPHS:
		// without a font, advances are counted in terminal cells
		shaper := monospace.Shaper(fixed.I(1), intp.doc, nil)
		if intp.font != nil {
			shaper = puashape.Shaper(intp.doc)
		}
		seq, err := shaper.Shape(strings.NewReader(cmd.text), nil, nil,
			glyphing.Params{Font: intp.font, PPEM: fixed.I(1000)})
		if err != nil {
			return false, err
		}
		for _, g := range seq.Glyphs {
			pterm.Printfln("%v advance %s", g, g.XAdvance)
		}
		pterm.Printfln("total width %s", seq.Width())
	case RESTORE:
		word, err := parseHex(cmd.args)
		if err != nil {
			return false, err
		}
		restored := restore(word)
		pterm.Printfln("%s", string(restored))
		pterm.Printfln("%s", hex(restored))
	case LOOKUP:
		sh, err := shaperNamed(cmd.script)
		if err != nil {
			return false, err
		}
		puas, err := parseHex(cmd.args)
		if err != nil {
			return false, err
		}
		for _, pua := range puas {
			rec, ok := sh.Tables().Lookup(pua)
			if !ok {
				pterm.Printfln("%U is not mapped in %s", pua, sh.Script())
				continue
			}
			pterm.Printfln("%U → %s, glyph %d, class %s", pua, rec, sh.GlyphIndex(pua), sh.Class(pua))
		}
	case PREFIX:
		sh, err := shaperNamed(cmd.script)
		if err != nil {
			return false, err
		}
		prefix, err := parseHex(cmd.args)
		if err != nil {
			return false, err
		}
		puas := sh.Tables().WithPrefix(prefix)
		pterm.Printfln("%d ligatures start with %s", len(puas), hex(prefix))
		for _, pua := range puas {
			rec, _ := sh.Tables().Lookup(pua)
			pterm.Printfln("   %U → %s", pua, rec)
		}
	case COLLISIONS:
		sh, err := shaperNamed(cmd.script)
		if err != nil {
			return false, err
		}
		colls := sh.Tables().Collisions()
		if len(colls) == 0 {
			pterm.Printfln("%s has no ambiguous table rows", sh.Script())
		}
		for _, c := range colls {
			pterm.Printfln("%s: %U wins over %v", c.Record, c.Winner, hex(c.Losers))
		}
	case DETECT:
		intp.doc.Detect(cmd.text)
		var found []string
		for _, s := range indic.Scripts() {
			if intp.doc.Contains(s) {
				found = append(found, s.String())
			}
		}
		pterm.Printfln("document contains: %v", found)
	case OVERRIDE:
		if err := intp.override(cmd.text); err != nil {
			return false, err
		}
	case FONT:
		if err := intp.loadFont(cmd.text); err != nil {
			return false, err
		}
	case RESET:
		indic.Get(indic.Devanagari).ResetTable()
		pterm.Info.Println("Devanagari table reset to built-in data")
	}
	return false, nil
}

// override replaces the Devanagari table by rows read from a file. If a font
// is loaded, glyph indices are taken from the font.
func (intp *Intp) override(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot open table file %q", path)
	}
	defer f.Close()
	rows, err := ligature.ReadRows(f)
	if err != nil {
		return err
	}
	if intp.font != nil {
		if rows, err = ligature.BindGlyphs(rows, intp.font); err != nil {
			return err
		}
	}
	if err = indic.Get(indic.Devanagari).OverrideTable(rows); err != nil {
		return err
	}
	pterm.Info.Printfln("Devanagari table overridden with %d rows", len(rows))
	return nil
}

func (intp *Intp) loadFont(name string) error {
	path, err := findfont.Find(name)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "font %q not found", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read font %q", path)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return core.WrapError(err, core.EMALFORMED, "cannot parse font %q", path)
	}
	intp.font = f
	var buf sfnt.Buffer
	fname, _ := f.Name(&buf, sfnt.NameIDFull)
	tracer().Infof("loaded font %s from %s, %d glyphs", fname, path, f.NumGlyphs())
	return nil
}

// restore restores a PUA-coded word with the shapers of all scripts it
// refers to, without depending on document detection.
func restore(word []rune) []rune {
	seen := make(map[indic.Script]bool)
	for _, r := range word {
		sh := indic.ShaperFor(r)
		if sh == nil || seen[sh.Script()] {
			continue
		}
		seen[sh.Script()] = true
		word = sh.RestoreWord(word)
	}
	return word
}

func shaperNamed(name string) (*indic.Shaper, error) {
	sh := indic.Get(indic.ScriptNamed(name))
	if sh == nil {
		if tag, err := language.ParseScript(name); err == nil {
			sh = indic.Get(indic.ScriptFor(tag))
		}
	}
	if sh == nil {
		return nil, core.Error(core.EINVALID, "unknown script %q", name)
	}
	return sh, nil
}

// parseHex reads code-points written as hex numbers, optionally prefixed
// with "U+".
func parseHex(args []string) ([]rune, error) {
	rs := make([]rune, 0, len(args))
	for _, a := range args {
		a = strings.TrimPrefix(strings.ToUpper(a), "U+")
		n, err := strconv.ParseUint(a, 16, 32)
		if err != nil || n > 0x10FFFF {
			return nil, core.Error(core.EINVALID, "not a code-point: %q", a)
		}
		rs = append(rs, rune(n))
	}
	return rs, nil
}

func hex(rs []rune) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range rs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04X", r)
	}
	b.WriteByte(']')
	return b.String()
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch topic {
	case "lookup", "prefix", "collisions":
		pterm.Info.Println("Ligature tables")
		pterm.Println(`
	Scripts are named by ISO 15924 tag or English name, e.g. "deva" or "bangla".

	lookup:<script> <pua…>      decomposition, glyph and class of PUA code-points
	prefix:<script> <hex…>      all ligatures starting with a code-point sequence
	collisions:<script>         PUA code-points sharing a decomposition
	`)
	case "override", "font", "reset":
		pterm.Info.Println("Devanagari table override")
		pterm.Println(`
	A table file has one row per line: PUA code-point, glyph index and the
	hex sequence of the cluster, e.g.

	    E026  338  0915 094D 0937

	font <name>                 load a system font; override binds glyphs from it
	override <file>             replace the Devanagari table
	reset                       return to the built-in table
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	shape <text>                convert text to PUA-coded form
	glyphs <text>               shape text to glyphs, with the loaded font or in cells
	restore <hex…>              convert PUA-coded code-points back to Unicode
	detect <text>               detect scripts in text
	lookup:<script> <pua…>      (see "help lookup")
	prefix:<script> <hex…>
	collisions:<script>
	font <name>                 (see "help override")
	override <file>
	reset
	help [topic]
	quit
	`)
	}
}
