package cmdline

import (
	"fmt"
	"io"
	"strings"

	"github.com/verdane/cmdline/util"
)

// PrintUsage writes a usage listing for the argument set: a synopsis line
// followed by one entry per descriptor in schema order, wrapped to the
// terminal width.
func (p *Parser) PrintUsage(w io.Writer) {
	schema, err := p.Build()
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	width := util.TerminalWidth()

	name := schema.Name()
	if name == "" {
		name = "program"
	}
	var synopsis strings.Builder
	synopsis.WriteString("Usage: ")
	synopsis.WriteString(name)
	for _, d := range schema.Positional() {
		if d.Required {
			fmt.Fprintf(&synopsis, " <%s>", d.Name)
		} else {
			fmt.Fprintf(&synopsis, " [%s]", d.Name)
		}
		if d.MultiValue {
			synopsis.WriteString("...")
		}
	}
	synopsis.WriteString(" [arguments]")
	fmt.Fprintln(w, wrap(synopsis.String(), width, 4))
	fmt.Fprintln(w)

	for _, d := range schema.Descriptors() {
		fmt.Fprintln(w, p.usageEntry(d, width))
	}
}

func (p *Parser) usageEntry(d *Descriptor, width int) string {
	var head strings.Builder
	head.WriteString("  ")
	head.WriteString(p.longPrefixFor())
	head.WriteString(d.Name)
	if d.Short != 0 {
		fmt.Fprintf(&head, ", %s%c", p.shortPrefixFor(), d.Short)
	}
	if !d.Switch {
		fmt.Fprintf(&head, " <%s>", d.Kind)
	}
	if d.Required {
		head.WriteString(" (required)")
	}
	if d.DefaultValue != nil {
		fmt.Fprintf(&head, " (default: %s)", *d.DefaultValue)
	}

	entry := head.String()
	if d.Description != "" {
		body := wrap(d.Description, width, 8)
		entry += "\n" + indentLines(body, 8)
	}
	return entry
}

func (p *Parser) longPrefixFor() string {
	if p.mode == ModeLongShort {
		return p.longPrefix
	}
	if len(p.prefixes) > 0 {
		return string(p.prefixes[0])
	}
	return defaultShortPrefix
}

func (p *Parser) shortPrefixFor() string {
	if p.mode == ModeLongShort {
		return p.shortPrefix
	}
	return p.longPrefixFor()
}

// PrintCommands writes the visible commands with their descriptions
func (cs *CommandSet) PrintCommands(w io.Writer) {
	width := util.TerminalWidth()

	if cs.name != "" {
		fmt.Fprintf(w, "Usage: %s <command> [arguments]\n\n", cs.name)
	}
	fmt.Fprintln(w, "Commands:")
	for _, c := range cs.Commands() {
		fmt.Fprintf(w, "  %s\n", c.Name)
		if c.Description != "" {
			fmt.Fprintln(w, indentLines(wrap(c.Description, width, 6), 6))
		}
	}
}

// wrap breaks text into lines no wider than width minus the indent that will
// be applied to the lines.
func wrap(text string, width, indent int) string {
	limit := width - indent
	if limit < 20 {
		limit = 20
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > limit {
			b.WriteString(line)
			b.WriteByte('\n')
			line = word
			continue
		}
		line += " " + word
	}
	b.WriteString(line)
	return b.String()
}

func indentLines(text string, indent int) string {
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
