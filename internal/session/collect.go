package session

import (
	"fmt"
	"strings"
)

// CollectText reads lines until a blank one. Each non-empty line replaces the
// previous candidate; the last one is the answer.
func CollectText(source LineSource) (string, error) {
	candidate := ""
	for {
		line, err := source.ReadLine()
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return candidate, nil
		}
		candidate = line
	}
}

// CollectSelection reads lines until a blank one and returns every option
// number given, sorted and without duplicates. raw joins the non-empty lines.
func CollectSelection(source LineSource) ([]int, string, error) {
	var (
		numbers []int
		lines   []string
	)
	for {
		line, err := source.ReadLine()
		if err != nil {
			return nil, "", fmt.Errorf("read answer: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return normalizeSelection(numbers), strings.Join(lines, " "), nil
		}
		lines = append(lines, line)
		numbers = append(numbers, ParseSelection(line)...)
	}
}
