// Package report renders analysis results as a text table, JSON or Markdown.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format represents an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a string to Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "markdown", "md":
		return FormatMarkdown
	default:
		return FormatText
	}
}

// ProgramBody names the top-level statement list of a file.
const ProgramBody = "<program>"

// Result is the judgment for one statement list: a program or a function body.
type Result struct {
	Path  string
	Body  string
	Line  int
	Value bool
	Err   error
}

type jsonResult struct {
	Path  string `json:"path"`
	Body  string `json:"body"`
	Line  int    `json:"line,omitempty"`
	Value *bool  `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Summary counts results by outcome.
type Summary struct {
	Files  int `json:"files"`
	Bodies int `json:"bodies"`
	True   int `json:"true"`
	False  int `json:"false"`
	Failed int `json:"failed"`
}

// Summarize counts results by outcome.
func Summarize(results []Result) Summary {
	var s Summary
	files := make(map[string]struct{})
	for _, r := range results {
		files[r.Path] = struct{}{}
		s.Bodies++
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Value:
			s.True++
		default:
			s.False++
		}
	}
	s.Files = len(files)
	return s
}

// Report is a set of results ready to be rendered.
type Report struct {
	Results []Result
	Colored bool
}

// Render writes the report in format f.
func (r *Report) Render(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return r.RenderJSON(w)
	case FormatMarkdown:
		return r.RenderMarkdown(w)
	default:
		return r.RenderText(w)
	}
}

// RenderJSON writes results and summary as indented JSON.
func (r *Report) RenderJSON(w io.Writer) error {
	out := struct {
		Results []jsonResult `json:"results"`
		Summary Summary      `json:"summary"`
	}{
		Results: make([]jsonResult, len(r.Results)),
		Summary: Summarize(r.Results),
	}
	for i, res := range r.Results {
		jr := jsonResult{Path: res.Path, Body: res.Body, Line: res.Line}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		} else {
			v := res.Value
			jr.Value = &v
		}
		out.Results[i] = jr
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// RenderText writes an aligned table followed by a summary line.
func (r *Report) RenderText(w io.Writer) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		}),
	)

	table.Header([]string{"File", "Body", "Line", "Result"})
	for _, res := range r.Results {
		if err := table.Append([]string{res.Path, res.Body, line(res.Line), r.outcome(res)}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryLine(Summarize(r.Results)))
	return nil
}

// RenderMarkdown writes the results as a Markdown table.
func (r *Report) RenderMarkdown(w io.Writer) error {
	fmt.Fprintln(w, "| File | Body | Line | Result |")
	fmt.Fprintln(w, "| --- | --- | --- | --- |")
	for _, res := range r.Results {
		result := strconv.FormatBool(res.Value)
		if res.Err != nil {
			result = "error: " + res.Err.Error()
		}
		cells := []string{res.Path, "`" + res.Body + "`", line(res.Line), result}
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "_%s_\n", summaryLine(Summarize(r.Results)))
	return nil
}

func (r *Report) outcome(res Result) string {
	text := strconv.FormatBool(res.Value)
	if res.Err != nil {
		text = "error: " + res.Err.Error()
	}
	if !r.Colored {
		return text
	}
	switch {
	case res.Err != nil:
		return color.RedString(text)
	case res.Value:
		return color.GreenString(text)
	default:
		return color.YellowString(text)
	}
}

func line(n int) string {
	if n <= 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

var printer = message.NewPrinter(language.English)

func summaryLine(s Summary) string {
	return printer.Sprintf("%d files, %d bodies: %d true, %d false, %d failed",
		s.Files, s.Bodies, s.True, s.False, s.Failed)
}
