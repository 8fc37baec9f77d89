package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FlashcardSet struct {
	Flashcards []Flashcard `json:"flashcards"`
}

// flashcardSchema declares the structured-output contract enforced by the
// model's JSON mode: an object with a "flashcards" array of question/answer
// pairs.
func flashcardSchema(n int) *schema {
	return &schema{
		Type:     "OBJECT",
		Required: []string{"flashcards"},
		Properties: map[string]*schema{
			"flashcards": {
				Type:        "ARRAY",
				Description: fmt.Sprintf("A list of exactly %d flashcards.", n),
				Items: &schema{
					Type:     "OBJECT",
					Required: []string{"question", "answer"},
					Properties: map[string]*schema{
						"question": {Type: "STRING", Description: "The question strictly derived from the context."},
						"answer":   {Type: "STRING", Description: "The detailed answer to the question derived from the context."},
					},
				},
			},
		},
	}
}

func buildFlashcardPrompt(contextText, query string, n int) string {
	return fmt.Sprintf(`You are an expert educator. Your task is to help the student memorize the material.
Given the user query %q and the information provided in the CONTEXT (fragments of the student's own material), create exactly %d high-quality question/answer flashcards that are STRICTLY BASED on the information in the context.

CONTEXT:
%s

Return ONLY valid JSON in the requested format.`, query, n, contextText)
}

// Flashcards asks the generation model for exactly n question/answer pairs
// grounded in the supplied context. Retrieval is always the caller's job;
// this is a pure (context, parameters) -> result transformation. A low
// temperature biases the model toward consistent output.
func (c *Client) Flashcards(ctx context.Context, contextText, query string, n int) (*FlashcardSet, error) {
	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: buildFlashcardPrompt(contextText, query, n)}}}},
		GenerationConfig: &generationConfig{
			Temperature:      0.2,
			ResponseMimeType: "application/json",
			ResponseSchema:   flashcardSchema(n),
		},
	}

	var resp generateResponse
	if err := c.post(ctx, "/models/"+GenerationModel+":generateContent", req, &resp); err != nil {
		return nil, fmt.Errorf("flashcard generation failed: %w", err)
	}

	return ParseFlashcards([]byte(resp.text()), n)
}

// ParseFlashcards validates the model's raw JSON against the declared
// contract. Anything short of n complete question/answer pairs is an
// ErrInvalidOutput, never a truncated list.
func ParseFlashcards(raw []byte, n int) (*FlashcardSet, error) {
	var set FlashcardSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if len(set.Flashcards) != n {
		return nil, fmt.Errorf("%w: expected %d flashcards, got %d", ErrInvalidOutput, n, len(set.Flashcards))
	}
	for i, card := range set.Flashcards {
		if card.Question == "" || card.Answer == "" {
			return nil, fmt.Errorf("%w: flashcard %d is missing a question or answer", ErrInvalidOutput, i)
		}
	}
	return &set, nil
}

const feedbackSystemPrompt = "You are an expert and friendly tutor specialized in the Feynman Technique. " +
	"Your task is to evaluate the 'Student Explanation' against the 'Document Context'. " +
	"Provide constructive, concise feedback in an encouraging tone, identifying knowledge gaps or mistakes. " +
	"Respond with the feedback text only, without headers such as 'Feedback:'."

func buildFeedbackPrompt(contextText, topic, explanation string) string {
	return fmt.Sprintf(`Document Context (retrieved from the student's material):
---
%s
---

Specific Topic: %s
Student Explanation: %s

Instructions: evaluate the student's explanation:
1. State whether the student captured the core concept.
2. Point out and correct any inaccuracy or mistake strictly against the Context.
3. Mention one crucial point from the context the student omitted (the gap) to complete their understanding.`,
		contextText, topic, explanation)
}

// Feedback evaluates a student's explanation of a topic against the
// retrieved context and returns free-form tutoring feedback.
func (c *Client) Feedback(ctx context.Context, contextText, topic, explanation string) (string, error) {
	req := generateRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: buildFeedbackPrompt(contextText, topic, explanation)}}}},
		SystemInstruction: &content{Parts: []part{{Text: feedbackSystemPrompt}}},
		GenerationConfig:  &generationConfig{Temperature: 0.3},
	}

	var resp generateResponse
	if err := c.post(ctx, "/models/"+GenerationModel+":generateContent", req, &resp); err != nil {
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.text())
	if text == "" {
		return "", fmt.Errorf("%w: empty feedback text", ErrInvalidOutput)
	}
	return text, nil
}
