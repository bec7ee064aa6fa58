package evaluation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

// LoadGoldenQuestions reads and parses a golden question set from a JSON file.
func LoadGoldenQuestions(path string) ([]GoldenQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden questions file: %w", err)
	}

	var questions []GoldenQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse golden questions: %w", err)
	}

	return questions, nil
}

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// ValidateGoldenQuestions checks that all golden questions have required fields and valid values.
func ValidateGoldenQuestions(questions []GoldenQuestion) error {
	seen := make(map[string]struct{}, len(questions))

	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("question at index %d: missing id", i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("question at index %d: duplicate id %q", i, q.ID)
		}
		seen[q.ID] = struct{}{}

		if q.Question == "" {
			return fmt.Errorf("question %q: missing question text", q.ID)
		}
		if _, ok := entities.ParseIntent(string(q.Intent)); !ok {
			return fmt.Errorf("question %q: invalid intent %q", q.ID, q.Intent)
		}
		if !validDifficulties[q.Difficulty] {
			return fmt.Errorf("question %q: invalid difficulty %q (must be easy/medium/hard)", q.ID, q.Difficulty)
		}
		if q.RadiusKm != nil && *q.RadiusKm <= 0 {
			return fmt.Errorf("question %q: radius_km must be positive", q.ID)
		}
	}

	return nil
}
