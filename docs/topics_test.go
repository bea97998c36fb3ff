package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	readme, err := Readme()
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	var topics []string
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	return topics
}

func TestTopicsMatchReadme(t *testing.T) {
	// The readme is the index: every topic it lists must load, and every
	// topic file must be listed.
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicStar(t *testing.T) {
	content, err := Topic("*")
	if err != nil {
		t.Fatalf("Topic(*): %v", err)
	}
	for _, want := range []string{"# Getting Started", "# Payments", "# Security"} {
		if !strings.Contains(content, want) {
			t.Errorf("expanded topics miss %q", want)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := Topic("nonexistent"); err == nil {
		t.Error("Topic accepted an unknown name")
	}
}

func TestTopicStructure(t *testing.T) {
	// Every topic must be well-formed markdown: one top-level heading
	// first, and every fenced code block labelled.
	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics: %v", err)
	}

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := Topic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			if h, ok := first.(*ast.Heading); !ok || h.Level != 1 {
				t.Error("topic does not start with a top-level heading")
			}

			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if fcb, ok := n.(*ast.FencedCodeBlock); ok {
					if fcb.Info == nil || len(fcb.Info.Segment.Value(source)) == 0 {
						t.Error("fenced code block without a language label")
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
