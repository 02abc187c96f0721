package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quizforge/quizforge-api/internal/domain"
)

// validators maps each prompt type to the structural check for its
// response shape. The shapes mirror the JSON examples the prompt
// templates show the model.
var validators = map[domain.PromptType]Validator{
	domain.PromptTypeTitles:          validateTitles,
	domain.PromptTypeFullGame:        validateFullGame,
	domain.PromptTypeCategoryClues:   validateClueList,
	domain.PromptTypeSingleClue:      validateCluePair,
	domain.PromptTypeClueRewrite:     validateCluePair,
	domain.PromptTypeAnswer:          validateAnswer,
	domain.PromptTypeValidation:      validateValidation,
	domain.PromptTypeTeamNameRandom:  validateTeamNames,
	domain.PromptTypeTeamNameEnhance: validateTeamName,
}

// ValidatorFor returns the structural validator for a prompt type, or
// nil when the type is unknown.
func ValidatorFor(pt domain.PromptType) Validator {
	return validators[pt]
}

func validateTitles(data json.RawMessage) error {
	var v struct {
		Titles []string `json:"titles"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v.Titles) == 0 {
		return errors.New(`"titles" must be a non-empty array of strings`)
	}
	for i, title := range v.Titles {
		if title == "" {
			return fmt.Errorf("title %d is empty", i+1)
		}
	}
	return nil
}

func validateFullGame(data json.RawMessage) error {
	var v struct {
		Categories []struct {
			Title string `json:"title"`
			Clues []struct {
				Clue   string `json:"clue"`
				Answer string `json:"answer"`
				Value  int    `json:"value"`
			} `json:"clues"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v.Categories) == 0 {
		return errors.New(`"categories" must be a non-empty array`)
	}
	for i, cat := range v.Categories {
		if cat.Title == "" {
			return fmt.Errorf("category %d has no title", i+1)
		}
		if len(cat.Clues) == 0 {
			return fmt.Errorf("category %q has no clues", cat.Title)
		}
		for j, c := range cat.Clues {
			if c.Clue == "" || c.Answer == "" {
				return fmt.Errorf("category %q clue %d is missing clue or answer text", cat.Title, j+1)
			}
		}
	}
	return nil
}

func validateClueList(data json.RawMessage) error {
	var v struct {
		Clues []struct {
			Clue   string `json:"clue"`
			Answer string `json:"answer"`
			Value  int    `json:"value"`
		} `json:"clues"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v.Clues) == 0 {
		return errors.New(`"clues" must be a non-empty array`)
	}
	for i, c := range v.Clues {
		if c.Clue == "" || c.Answer == "" {
			return fmt.Errorf("clue %d is missing clue or answer text", i+1)
		}
	}
	return nil
}

func validateCluePair(data json.RawMessage) error {
	var v struct {
		Clue   string `json:"clue"`
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Clue == "" {
		return errors.New(`"clue" must be a non-empty string`)
	}
	if v.Answer == "" {
		return errors.New(`"answer" must be a non-empty string`)
	}
	return nil
}

func validateAnswer(data json.RawMessage) error {
	var v struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Answer == "" {
		return errors.New(`"answer" must be a non-empty string`)
	}
	return nil
}

func validateValidation(data json.RawMessage) error {
	var v struct {
		Valid       *bool    `json:"valid"`
		Issues      []string `json:"issues"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Valid == nil {
		return errors.New(`"valid" must be a boolean`)
	}
	return nil
}

func validateTeamNames(data json.RawMessage) error {
	var v struct {
		Names []string `json:"names"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v.Names) == 0 {
		return errors.New(`"names" must be a non-empty array of strings`)
	}
	for i, name := range v.Names {
		if name == "" {
			return fmt.Errorf("name %d is empty", i+1)
		}
	}
	return nil
}

func validateTeamName(data json.RawMessage) error {
	var v struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Name == "" {
		return errors.New(`"name" must be a non-empty string`)
	}
	return nil
}
