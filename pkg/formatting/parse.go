package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content cannot be parsed as JSON,
// either directly, from a markdown code fence, or after truncation repair.
var ErrParseFailed = errors.New("failed to parse response")

const errSnippetLen = 200

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse attempts to unmarshal content as JSON into T.
// If direct parsing fails, it extracts JSON from a markdown code fence and
// retries; if that also fails, it repairs truncated output with Repair and
// retries once more. Returns ErrParseFailed carrying a truncated snippet of
// the original content if every attempt fails.
//
// The repair pass exists because vision-completion responses are routinely
// cut off at the output token limit, and partial structured output is still
// worth recovering.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	candidate := content
	if matches := jsonBlockRegex.FindStringSubmatch(content); len(matches) >= 2 {
		candidate = strings.TrimSpace(matches[1])
	} else if rest, ok := strings.CutPrefix(content, "```"); ok {
		// Truncation can cut off the closing fence entirely; drop the
		// opening marker and any trailing backticks so the body still
		// reaches the repair pass.
		rest = strings.TrimPrefix(rest, "json")
		candidate = strings.TrimSpace(strings.TrimRight(rest, "`"))
	}

	if err := json.Unmarshal([]byte(candidate), &result); err == nil {
		return result, nil
	}

	if err := json.Unmarshal([]byte(Repair(candidate)), &result); err == nil {
		return result, nil
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, snippet(content))
}

func snippet(content string) string {
	if len(content) > errSnippetLen {
		return content[:errSnippetLen] + "..."
	}
	return content
}
