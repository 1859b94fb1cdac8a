package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/futig/fitplan-backend/internal/entity"
)

// SplitArgs tokenizes `key=value key="quoted value"` pairs. Quotes may be
// straight or the curly ones phone keyboards insert.
func SplitArgs(args string) (map[string]string, error) {
	pairs := make(map[string]string)
	runes := []rune(strings.TrimSpace(args))

	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		start := i
		for i < len(runes) && runes[i] != '=' && !unicode.IsSpace(runes[i]) {
			i++
		}
		key := strings.ToLower(string(runes[start:i]))
		if i >= len(runes) || runes[i] != '=' || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", entity.ErrInvalidParameter, string(runes[start:i]))
		}
		i++

		var value string
		if i < len(runes) && isQuote(runes[i]) {
			i++
			start = i
			for i < len(runes) && !isQuote(runes[i]) {
				i++
			}
			if i >= len(runes) {
				return nil, fmt.Errorf("%w: unterminated quote in %s", entity.ErrInvalidParameter, key)
			}
			value = string(runes[start:i])
			i++
		} else {
			start = i
			for i < len(runes) && !unicode.IsSpace(runes[i]) {
				i++
			}
			value = string(runes[start:i])
		}

		pairs[key] = value
	}

	return pairs, nil
}

func isQuote(r rune) bool {
	return r == '"' || r == '“' || r == '”'
}

// ParseProfile builds a profile from /plan arguments. Range and enum checks are
// left to the plan pipeline.
func ParseProfile(args string) (*entity.Profile, error) {
	pairs, err := SplitArgs(args)
	if err != nil {
		return nil, err
	}

	var p entity.Profile
	for key, value := range pairs {
		switch key {
		case "name":
			p.Name = value
		case "age":
			p.Age, err = strconv.Atoi(value)
		case "gender":
			p.Gender = entity.Gender(value)
		case "height":
			p.HeightCm, err = strconv.ParseFloat(value, 64)
		case "weight":
			p.WeightKg, err = strconv.ParseFloat(value, 64)
		case "goal":
			p.Goal = entity.Goal(value)
		case "level":
			p.Level = entity.FitnessLevel(value)
		case "location":
			p.Location = entity.WorkoutLocation(value)
		case "diet":
			p.Diet = entity.DietPreference(value)
		case "stress":
			p.StressLevel = entity.StressLevel(value)
		case "medical":
			p.MedicalHistory = value
		default:
			return nil, fmt.Errorf("%w: unknown field %q", entity.ErrInvalidParameter, key)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number", entity.ErrInvalidParameter, key)
		}
	}

	return &p, nil
}

// ParseAssetRequest reads repeated exercise= and meal= pairs separated by
// semicolons: /images exercise="Push Ups;Plank" meal=Oatmeal
func ParseAssetRequest(args string) (*entity.AssetRequest, error) {
	pairs, err := SplitArgs(args)
	if err != nil {
		return nil, err
	}

	req := &entity.AssetRequest{}
	for key, value := range pairs {
		items := splitItems(value)
		switch key {
		case "exercise", "exercises":
			req.Exercises = append(req.Exercises, items...)
		case "meal", "meals":
			req.Meals = append(req.Meals, items...)
		default:
			return nil, fmt.Errorf("%w: unknown field %q", entity.ErrInvalidParameter, key)
		}
	}

	return req, nil
}

func splitItems(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ";") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
