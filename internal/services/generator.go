package services

import (
	"context"
	"fmt"
	"log"

	"talentscout-backend/internal/llm"
	"talentscout-backend/internal/mcq"
)

// GeneratorService turns a candidate's declared tech stack into a question
// set: prompt the model, parse what comes back, and substitute the fallback
// bank when the yield is too thin to be a meaningful assessment.
type GeneratorService struct {
	llm llm.TextGenerator
}

func NewGeneratorService(generator llm.TextGenerator) *GeneratorService {
	return &GeneratorService{llm: generator}
}

func generationPrompt(techStack string) string {
	return fmt.Sprintf(`Generate exactly 5 multiple-choice technical questions for a candidate with experience in: %s

Use this EXACT format for each question:

Question 1: [Your question here]
A) Option A
B) Option B
C) Option C
D) Option D
Answer: A

Question 2: [Your question here]
A) Option A
B) Option B
C) Option C
D) Option D
Answer: B

Make questions practical and relevant to the technologies mentioned. Ensure exactly one correct answer per question.`, techStack)
}

// Generate produces 3-5 ready-to-present questions for the given tech stack.
// A missing generation capability is an error with an empty result — that is
// a deployment problem, not bad output, so there is no fallback. A failed
// call or an insufficient parse (fewer than three questions) substitutes the
// entire fallback bank instead.
func (s *GeneratorService) Generate(ctx context.Context, techStack string) ([]mcq.Question, error) {
	if !s.llm.IsAvailable() {
		return nil, fmt.Errorf("text generation is not configured")
	}

	raw, err := s.llm.Generate(ctx, generationPrompt(techStack))
	if err != nil {
		log.Printf("question generation failed, using fallback: %v", err)
		return mcq.Fallback(), nil
	}

	questions := mcq.Parse(raw)
	if len(questions) < mcq.MinQuestions {
		log.Printf("parsed only %d questions, using fallback", len(questions))
		return mcq.Fallback(), nil
	}

	if len(questions) > mcq.MaxQuestions {
		questions = questions[:mcq.MaxQuestions]
	}
	return questions, nil
}
