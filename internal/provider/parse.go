package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/persuasion-games/persuade/internal/models"
)

// ParseTable coerces free-form model output into a raw probability table. It
// tries, in order: the whole output as JSON, every fenced code block in the
// output, and finally the outermost brace-delimited span. The result is
// either a well-typed table or a structured failure; raw text never crosses
// this boundary.
func ParseTable(output string) (models.RawScheme, error) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil, fmt.Errorf("output is empty")
	}

	if table, err := decodeTable(trimmed); err == nil {
		return table, nil
	}

	for _, block := range fencedBlocks(trimmed) {
		if table, err := decodeTable(block); err == nil {
			return table, nil
		}
	}

	if span := braceSpan(trimmed); span != "" {
		if table, err := decodeTable(span); err == nil {
			return table, nil
		}
	}

	return nil, fmt.Errorf("no probability table found in output")
}

func decodeTable(s string) (models.RawScheme, error) {
	var table models.RawScheme
	dec := json.NewDecoder(strings.NewReader(s))
	if err := dec.Decode(&table); err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("decoded table is empty")
	}
	return table, nil
}

// fencedBlocks extracts the contents of fenced code blocks, in document
// order. Models often wrap the requested JSON in ```json fences despite the
// instructions.
func fencedBlocks(src string) []string {
	source := []byte(src)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fc, ok := n.(*ast.FencedCodeBlock); ok {
			var b strings.Builder
			for i := 0; i < fc.Lines().Len(); i++ {
				line := fc.Lines().At(i)
				b.Write(line.Value(source))
			}
			blocks = append(blocks, b.String())
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// braceSpan returns the substring from the first '{' through the last '}'.
func braceSpan(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
