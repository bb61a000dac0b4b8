package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/ougirez/luxcompare/internal/pkg/constants"
)

var errNoJSONObject = errors.New("no JSON object in model output")

// CleanModelJSON returns the first JSON object in a model response. A fenced
// block is searched first, then the whole text. Candidates that are not valid
// JSON are skipped, so braces in surrounding prose do not break extraction.
func CleanModelJSON(content string) (string, error) {
	if body, ok := fencedBlock(content); ok {
		if obj, ok := firstObject(body); ok {
			return obj, nil
		}
	}
	if obj, ok := firstObject(content); ok {
		return obj, nil
	}
	return "", errNoJSONObject
}

// fencedBlock returns the body of the first ``` block. The closing fence has to
// start a line, so backticks inside JSON strings do not close the block.
func fencedBlock(content string) (string, bool) {
	start := strings.Index(content, "```")
	if start < 0 {
		return "", false
	}
	body := content[start+3:]

	// skip the language tag
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return "", false
	}
	body = body[nl+1:]

	if end := strings.Index(body, "\n```"); end >= 0 {
		body = body[:end]
	}
	return body, true
}

func firstObject(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		end := closingBrace(s[i:])
		if end < 0 {
			continue
		}
		if candidate := s[i : i+end+1]; sonic.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// closingBrace returns the index of the brace closing s[0], ignoring braces
// inside string literals, or -1.
func closingBrace(s string) int {
	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// DecodeModelJSON cleans content, decodes it into dst and validates dst. Every
// failure is wrapped in sentinel so the caller picks the status it is reported with.
func DecodeModelJSON(content string, dst any, sentinel *constants.CodedError) error {
	cleaned, err := CleanModelJSON(content)
	if err != nil {
		return fmt.Errorf("%w: %s", sentinel, err.Error())
	}

	if err = sonic.UnmarshalString(cleaned, dst); err != nil {
		return fmt.Errorf("%w: %s", sentinel, err.Error())
	}

	if err = Validate(dst); err != nil {
		return fmt.Errorf("%w: %s", sentinel, err.Error())
	}

	return nil
}
