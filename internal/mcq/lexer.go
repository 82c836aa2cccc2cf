package mcq

import (
	"strings"
	"unicode"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineQuestionLabel
	lineOption
	lineAnswer
	lineOther
)

// line is one classified input line. letter is set for option and answer
// lines, text for question labels and options.
type line struct {
	kind   lineKind
	letter string
	text   string
}

const optionLetters = "ABCD"

func isOptionLetter(r rune) bool {
	return strings.ContainsRune(optionLetters, unicode.ToUpper(r))
}

// classify tags a single raw line. The classifier is deliberately forgiving
// about spacing and case but strict about shape: anything that is not a
// recognizable label, option or answer line is lineOther.
func classify(raw string) line {
	s := strings.TrimSpace(raw)
	if s == "" {
		return line{kind: lineBlank}
	}

	if text, ok := questionText(s); ok {
		return line{kind: lineQuestionLabel, text: text}
	}

	if len(s) >= 2 && isOptionLetter(rune(s[0])) && s[1] == ')' {
		return line{
			kind:   lineOption,
			letter: strings.ToUpper(s[:1]),
			text:   strings.TrimSpace(s[2:]),
		}
	}

	if letter, ok := answerLetter(s); ok {
		return line{kind: lineAnswer, letter: letter}
	}

	return line{kind: lineOther}
}

// questionText matches "Question 3: text", "Question: text" or "Q2: text"
// (number and colon both optional after the full word) and returns the text
// following the label.
func questionText(s string) (string, bool) {
	lower := strings.ToLower(s)

	var rest string
	switch {
	case strings.HasPrefix(lower, "question"):
		rest = s[len("question"):]
	case lower[0] == 'q' && len(s) > 1 && unicode.IsDigit(rune(s[1])):
		rest = s[1:]
	default:
		return "", false
	}

	rest = strings.TrimLeft(rest, " \t")
	rest = strings.TrimLeftFunc(rest, unicode.IsDigit)
	rest = strings.TrimLeft(rest, " \t")
	rest = strings.TrimPrefix(rest, ":")
	return strings.TrimSpace(rest), true
}

// answerLetter matches "Answer: B" in any casing and returns the uppercase
// letter, rejecting letters outside the option alphabet.
func answerLetter(s string) (string, bool) {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "answer") {
		return "", false
	}
	rest := strings.TrimSpace(s[len("answer"):])
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	rest = strings.TrimSpace(rest[1:])
	if rest == "" || !isOptionLetter(rune(rest[0])) {
		return "", false
	}
	return strings.ToUpper(rest[:1]), true
}
