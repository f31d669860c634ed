package ppl

import (
	"strings"
)

// Parser turns program text into parsed instruction lines
type Parser struct {
	filename string
}

// NewParser creates a new parser. filename is only used for positions.
func NewParser(filename string) *Parser {
	return &Parser{filename: filename}
}

// SplitProgram splits source into lines. A final newline does not add an empty line.
func SplitProgram(source string) []string {
	if source == "" {
		return nil
	}
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.TrimSuffix(source, "\n")
	return strings.Split(source, "\n")
}

// RemoveComment strips everything from the first '#'
func (p *Parser) RemoveComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// ParseLine tokenizes a single line. index is the 0-based line number.
func (p *Parser) ParseLine(line string, index int) *ParsedCommand {
	cmd := &ParsedCommand{
		OriginalLine: line,
		Position: &SourcePosition{
			Line:         index + 1,
			OriginalText: strings.TrimSpace(line),
			Filename:     p.filename,
		},
	}

	fields := strings.Fields(p.RemoveComment(line))
	if len(fields) == 0 {
		return cmd
	}

	cmd.Command = strings.ToUpper(fields[0])
	cmd.Arguments = fields[1:]
	return cmd
}

// ParseProgram tokenizes every line of a program
func (p *Parser) ParseProgram(lines []string) []*ParsedCommand {
	commands := make([]*ParsedCommand, len(lines))
	for i, line := range lines {
		commands[i] = p.ParseLine(line, i)
	}
	return commands
}
