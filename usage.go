package gclp

import (
	"fmt"
	"reflect"
	"strings"
)

const helpOption = "--help"

// Usage returns the option listing of p.
func (p *Parser) Usage() string {
	return makeUsageText(p.veri.id(), p.params, false)
}

func makeUsageText(identifier string, ps *paramSet, withHelp bool) string {
	usage := fmt.Sprintf("Usage: %s%s [OPTIONS]\n", identifier, requiredSynopsis(ps))
	options := makeOptionUsageList(ps, withHelp)
	if len(options) > 0 {
		usage += fmt.Sprintf(
			"\nOptions:\n%s\n", strings.Join(fmap(options, shiftFour), "\n"),
		)
	}
	return usage
}

// requiredSynopsis lists the keys that must be given, " -d <string>" each.
func requiredSynopsis(ps *paramSet) string {
	synopsis := ""
	for _, d := range ps.params {
		if d.required && !d.hasDefault() {
			synopsis += " " + optionSignature(d.keys()[:1], d)
		}
	}
	return synopsis
}

func optionSignature(keys []string, d *descriptor) string {
	sig := strings.Join(keys, ", ")
	if !d.isBoolean() {
		sig = fmt.Sprintf("%s <%s>", sig, placeholder(d.typ))
	}
	return sig
}

func makeOptionUsageList(ps *paramSet, withHelp bool) []string {
	signatures := make([]string, ps.len())
	maxLength := 0
	if withHelp {
		maxLength = len(helpOption)
	}
	for i, d := range ps.params {
		signatures[i] = optionSignature(d.keys(), d)
		maxLength = maxInt(maxLength, len(signatures[i]))
	}

	options := []string{}
	if withHelp {
		options = append(options, fmt.Sprintf(
			"%s  %s", appendSpacesToLength(helpOption, maxLength), "print this message",
		))
	}
	for i, d := range ps.params {
		option := appendSpacesToLength(signatures[i], maxLength)
		if d.brief != "" {
			option = fmt.Sprintf("%s  %s", option, d.brief)
		}
		if extra, ok := makeDefaultOrExample(d); ok {
			option = fmt.Sprintf("%s  %s", option, extra)
		}
		options = append(options, strings.TrimRight(option, " "))
	}
	return options
}

func makeDefaultOrExample(d *descriptor) (_extraUsage string, _ok bool) {
	switch {
	case d.hasDefault():
		if d.isBoolean() {
			return fmt.Sprintf(`[default: %v]`, d.def.Bool()), true
		}
		return fmt.Sprintf(`[default: "%s"]`, d.defText), true
	case d.required:
		return "[required]", true
	case d.conv.example != "":
		// a default already shows how to write the value
		return fmt.Sprintf(`[example: "%s"]`, d.conv.example), true
	}
	return "", false
}

func placeholder(typ reflect.Type) string {
	if typ == durationType {
		return "duration"
	}
	switch typ.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "uint"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Complex64, reflect.Complex128:
		return "complex"
	case reflect.Slice:
		return placeholder(typ.Elem()) + listSep + "..."
	}
	return "value"
}

func maxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}

func shiftFour(s string) string {
	const fourSpace = "    "
	return fourSpace + s
}

func fmap(ss []string, f func(string) string) []string {
	for i, s := range ss {
		ss[i] = f(s)
	}
	return ss
}

func appendSpacesToLength(s string, toLength int) string {
	if n := toLength - len(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}
