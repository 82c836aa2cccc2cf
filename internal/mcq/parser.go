package mcq

import "strings"

// Parse extracts validated questions from raw model output. It is total: any
// input, however malformed, yields between zero and MaxQuestions questions —
// bad blocks are dropped, never reported. Block order is presentation order.
func Parse(raw string) []Question {
	var questions []Question

	for _, block := range splitBlocks(raw) {
		q, ok := assemble(block)
		if !ok {
			continue
		}
		questions = append(questions, q)
		if len(questions) == MaxQuestions {
			break
		}
	}

	return questions
}

// splitBlocks groups classified lines into candidate blocks. A blank line
// closes the current block; a question label always opens a fresh one, so
// two questions not separated by a blank line still split cleanly.
func splitBlocks(raw string) [][]line {
	var blocks [][]line
	var current []line

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}

	for _, rawLine := range strings.Split(raw, "\n") {
		l := classify(rawLine)
		switch l.kind {
		case lineBlank:
			flush()
		case lineQuestionLabel:
			flush()
			current = append(current, l)
		default:
			current = append(current, l)
		}
	}
	flush()

	return blocks
}

// assemble builds one Question from a block, reporting ok=false when the
// block fails any structural requirement: no label, empty text, fewer than
// two options, no answer line, or an answer letter with no matching option.
// Duplicate option letters within a block are last-write-wins; only the
// first answer line counts.
func assemble(block []line) (Question, bool) {
	q := Question{Options: make(map[string]string)}

	for _, l := range block {
		switch l.kind {
		case lineQuestionLabel:
			if q.Text == "" {
				q.Text = l.text
			}
		case lineOption:
			q.Options[l.letter] = l.text
		case lineAnswer:
			if q.Correct == "" {
				q.Correct = l.letter
			}
		}
	}

	if q.Text == "" || q.Correct == "" {
		return Question{}, false
	}
	if err := q.Validate(); err != nil {
		return Question{}, false
	}
	return q, true
}
