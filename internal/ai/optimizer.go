package ai

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	titleLinePattern       = regexp.MustCompile(`(?im)^\s*TITLE:\s*(.+)$`)
	descriptionLinePattern = regexp.MustCompile(`(?im)^\s*DESCRIPTION:\s*(.+)$`)
	tagsLinePattern        = regexp.MustCompile(`(?im)^\s*TAGS:\s*(.+)$`)
)

// Optimizer refines upload metadata through the chat-completion client.
// Every failure mode degrades to the caller's original values so the upload
// flow is never blocked on the assistant.
type Optimizer struct {
	client *Client
	logger Logger
}

// NewOptimizer creates a metadata optimizer
func NewOptimizer(client *Client, logger Logger) *Optimizer {
	return &Optimizer{client: client, logger: logger}
}

// Optimize asks the assistant for a refined title, description, and tags.
// Fields missing from the reply keep their original values; a failed request
// returns the originals together with an OptimizationError.
func (o *Optimizer) Optimize(ctx context.Context, input OptimizationInput) (OptimizationResult, error) {
	result := OptimizationResult{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
	}

	reply, err := o.client.Complete(ctx, []ChatMessage{
		{Role: "user", Content: buildOptimizationPrompt(input)},
	})
	if err != nil {
		o.logger.LogWarn("Metadata optimization unavailable, keeping originals", map[string]interface{}{
			"title": input.Title,
			"error": err.Error(),
		})
		return result, err
	}

	if m := titleLinePattern.FindStringSubmatch(reply); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			result.Title = title
		}
	}
	if m := descriptionLinePattern.FindStringSubmatch(reply); m != nil {
		if description := strings.TrimSpace(m[1]); description != "" {
			result.Description = description
		}
	}
	if m := tagsLinePattern.FindStringSubmatch(reply); m != nil {
		result.Tags = strings.TrimSpace(m[1])
	}

	return result, nil
}

func buildOptimizationPrompt(input OptimizationInput) string {
	var b strings.Builder
	b.WriteString("You are an expert at optimizing educational video metadata for discoverability.\n\n")
	fmt.Fprintf(&b, "Current title: %s\n", input.Title)
	if input.Description != "" {
		fmt.Fprintf(&b, "Current description: %s\n", input.Description)
	}
	if input.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	}
	if input.GradeLevel != "" {
		fmt.Fprintf(&b, "Grade level: %s\n", input.GradeLevel)
	}
	b.WriteString("\nRewrite the title to be clear and engaging, expand the description, ")
	b.WriteString("and suggest comma-separated search tags.\n")
	b.WriteString("Respond in exactly this format:\n")
	b.WriteString("TITLE: <optimized title>\n")
	b.WriteString("DESCRIPTION: <optimized description>\n")
	b.WriteString("TAGS: <comma-separated tags>\n")
	return b.String()
}
