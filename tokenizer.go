package cmdline

import (
	"strings"
	"unicode/utf8"

	"github.com/verdane/cmdline/errs"
	"github.com/verdane/cmdline/util"
)

type tokenKind int

const (
	tokenPositional tokenKind = iota
	tokenNamed
	tokenTerminator
)

// token is one classified command-line element. For named tokens desc is the
// resolved descriptor and switches holds any combined short switches that
// preceded it in the same token.
type token struct {
	kind     tokenKind
	raw      string
	name     string
	inline   *string
	desc     *Descriptor
	switches []*Descriptor
}

// classify decides whether a raw token is a named argument, a positional
// value, or the bare long prefix that ends named parsing. Classification never
// consumes follow-up tokens; the session does that when it binds values.
func (p *Parser) classify(raw string, schema *Schema) (token, error) {
	if p.mode == ModeLongShort {
		return p.classifyLongShort(raw, schema)
	}
	return p.classifyDefault(raw, schema)
}

func (p *Parser) classifyDefault(raw string, schema *Schema) (token, error) {
	if !p.hasPrefix(raw) {
		return token{kind: tokenPositional, raw: raw}, nil
	}

	body := strings.TrimLeftFunc(raw, p.isPrefixRune)
	if body == "" {
		return token{kind: tokenPositional, raw: raw}, nil
	}

	name, inline, _ := p.splitInline(body)

	if p.preferNumeric && p.looksNumeric(raw) {
		return token{kind: tokenPositional, raw: raw}, nil
	}

	if d, ok := schema.Resolve(name); ok {
		return token{kind: tokenNamed, raw: raw, name: name, inline: inline, desc: d}, nil
	}
	if p.prefixMatching {
		d, candidates := schema.ResolvePrefix(name)
		if d != nil {
			return token{kind: tokenNamed, raw: raw, name: name, inline: inline, desc: d}, nil
		}
		if len(candidates) > 1 {
			return token{}, errs.ErrAmbiguousArgument.WithArgs(name, strings.Join(candidates, ", "))
		}
	}
	if p.numericDetection && p.looksNumeric(raw) {
		return token{kind: tokenPositional, raw: raw}, nil
	}

	return token{}, errs.ErrUnknownArgument.WithArgs(name).ForArgument(name)
}

func (p *Parser) classifyLongShort(raw string, schema *Schema) (token, error) {
	if raw == p.longPrefix {
		return token{kind: tokenTerminator, raw: raw}, nil
	}

	if strings.HasPrefix(raw, p.longPrefix) {
		body := raw[len(p.longPrefix):]
		if body == "" {
			return token{kind: tokenPositional, raw: raw}, nil
		}
		name, inline, _ := p.splitInline(body)
		if d, ok := schema.ResolveLong(name); ok {
			return token{kind: tokenNamed, raw: raw, name: name, inline: inline, desc: d}, nil
		}
		if p.prefixMatching {
			d, candidates := schema.ResolvePrefix(name)
			if d != nil {
				return token{kind: tokenNamed, raw: raw, name: name, inline: inline, desc: d}, nil
			}
			if len(candidates) > 1 {
				return token{}, errs.ErrAmbiguousArgument.WithArgs(name, strings.Join(candidates, ", "))
			}
		}
		return token{}, errs.ErrUnknownArgument.WithArgs(name).ForArgument(name)
	}

	if strings.HasPrefix(raw, p.shortPrefix) && len(raw) > len(p.shortPrefix) {
		return p.classifyShort(raw, schema)
	}

	return token{kind: tokenPositional, raw: raw}, nil
}

// classifyShort handles a short-prefixed token, including runs of combined
// switch runes where only the final rune may take a value ("-vp 8080").
func (p *Parser) classifyShort(raw string, schema *Schema) (token, error) {
	body := raw[len(p.shortPrefix):]
	name, inline, sep := p.splitInline(body)
	runes := []rune(name)
	if len(runes) == 0 {
		return token{kind: tokenPositional, raw: raw}, nil
	}

	if _, ok := schema.ResolveShort(runes[0]); !ok {
		if p.numericDetection && p.looksNumeric(raw) {
			return token{kind: tokenPositional, raw: raw}, nil
		}
		return token{}, errs.ErrUnknownArgument.WithArgs(string(runes[0])).ForArgument(string(runes[0]))
	}

	tok := token{kind: tokenNamed, raw: raw, inline: inline}
	for i, r := range runes {
		d, ok := schema.ResolveShort(r)
		if !ok {
			// an unresolved rune after a resolved non-switch is that
			// argument's attached value, as in -p8080
			if i > 0 && !tok.switches[len(tok.switches)-1].Switch {
				last := tok.switches[len(tok.switches)-1]
				tok.switches = tok.switches[:len(tok.switches)-1]
				rest := string(runes[i:])
				if inline != nil {
					rest += string(sep) + *inline
				}
				tok.desc = last
				tok.name = last.Name
				tok.inline = &rest
				return tok, nil
			}
			return token{}, errs.ErrUnknownArgument.WithArgs(string(r)).ForArgument(string(r))
		}
		tok.switches = append(tok.switches, d)
	}

	last := tok.switches[len(tok.switches)-1]
	tok.switches = tok.switches[:len(tok.switches)-1]
	tok.desc = last
	tok.name = last.Name

	// every rune before the value-taking tail must be a switch
	for _, d := range tok.switches {
		if !d.Switch {
			return token{}, errs.ErrCombinedShortNotSwitch.WithArgs(d.Short, raw).ForArgument(d.Name)
		}
	}

	return tok, nil
}

func (p *Parser) hasPrefix(raw string) bool {
	for _, r := range raw {
		return p.isPrefixRune(r)
	}
	return false
}

func (p *Parser) isPrefixRune(r rune) bool {
	for _, pr := range p.prefixes {
		if r == pr {
			return true
		}
	}
	return false
}

// splitInline splits "name=value" style tokens on the first configured value
// separator, also reporting which separator matched. The value may be empty,
// which is distinct from no separator.
func (p *Parser) splitInline(body string) (string, *string, rune) {
	idx := strings.IndexFunc(body, func(r rune) bool {
		for _, sep := range p.valueSeparators {
			if r == sep {
				return true
			}
		}
		return false
	})
	if idx < 0 {
		return body, nil, 0
	}
	name := body[:idx]
	sep, width := utf8.DecodeRuneInString(body[idx:])
	value := body[idx+width:]
	return name, &value, sep
}

// looksNumeric reports whether the whole token, prefix included, parses as a
// number. Negative numbers like -1 or -1.5 qualify even though they start
// with an argument prefix.
func (p *Parser) looksNumeric(raw string) bool {
	_, ok := util.ParseNumeric(raw)
	return ok
}
