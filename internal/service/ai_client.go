package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"crewpulse/internal/config"
	"crewpulse/internal/model"
)

// ErrServiceUnavailable covers every generative-backend failure: missing
// key, auth failure, timeout, malformed response. Callers treat all of
// them the same and switch to the deterministic fallback.
var ErrServiceUnavailable = errors.New("text generation service unavailable")

// TextGenerator is the narrow interface to the generative text backend.
// The deterministic fallbacks live in the services, so a failing
// implementation is all tests need to exercise the offline paths.
type TextGenerator interface {
	GenerateQuestions(ctx context.Context, employee *model.EmployeeProfile, recentScores []float64) ([]string, error)
	ScoreResponses(ctx context.Context, employee *model.EmployeeProfile, responses []model.QAPair) (*model.ScoreResult, error)
}

// AnthropicClient calls the Anthropic messages API.
type AnthropicClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewAnthropicClient creates a client with a bounded request timeout.
func NewAnthropicClient(cfg *config.AIConfig) *AnthropicClient {
	return &AnthropicClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// GenerateQuestions asks the backend for exactly 5 personalized check-in
// questions. Fewer than 5 usable lines is treated as a service failure so
// the caller falls through to the fallback set instead of padding.
func (c *AnthropicClient) GenerateQuestions(ctx context.Context, employee *model.EmployeeProfile, recentScores []float64) ([]string, error) {
	if !c.config.IsEnabled() {
		return nil, fmt.Errorf("%w: api key not configured", ErrServiceUnavailable)
	}

	prompt := buildQuestionPrompt(employee, recentScores)
	text, err := c.call(ctx, prompt, 1000)
	if err != nil {
		return nil, err
	}

	questions := parseQuestionList(text)
	if len(questions) < questionCount {
		return nil, fmt.Errorf("%w: got %d questions", ErrServiceUnavailable, len(questions))
	}
	return questions, nil
}

// ScoreResponses asks the backend to score a completed set of answers.
func (c *AnthropicClient) ScoreResponses(ctx context.Context, employee *model.EmployeeProfile, responses []model.QAPair) (*model.ScoreResult, error) {
	if !c.config.IsEnabled() {
		return nil, fmt.Errorf("%w: api key not configured", ErrServiceUnavailable)
	}

	prompt := buildScoringPrompt(employee, responses)
	text, err := c.call(ctx, prompt, 500)
	if err != nil {
		return nil, err
	}
	return parseScoreResponse(text), nil
}

// call makes a request to the Anthropic messages API.
func (c *AnthropicClient) call(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reqBody := map[string]interface{}{
		"model":      c.config.Model,
		"max_tokens": maxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.config.APIKey)
	req.Header.Set("anthropic-version", c.config.Version)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var msgResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	for _, block := range msgResp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("%w: empty response", ErrServiceUnavailable)
}

// Prompt builders

func buildQuestionPrompt(employee *model.EmployeeProfile, recentScores []float64) string {
	vessel := employee.Vessel
	if vessel == "" {
		vessel = "Shore-based"
	}

	avgLine := "No previous data"
	if len(recentScores) > 0 {
		sum := 0.0
		for _, s := range recentScores {
			sum += s
		}
		avgLine = fmt.Sprintf("%.1f/5", sum/float64(len(recentScores)))
	}

	return fmt.Sprintf(`You are a wellness expert generating personalized daily check-in questions for a maritime employee.

Employee Details:
- Name: %s
- Role: %s
- Department: %s
- Vessel: %s
- Recent wellness average: %s

Context:
- Maritime work environment with unique challenges (isolation, long shifts, weather conditions)
- Focus on mental health, physical wellbeing, work-life balance, and job satisfaction
- Questions should be empathetic and relevant to their specific role

Generate exactly 5 personalized wellness questions that:
1. Are relevant to maritime work environment
2. Vary based on their role (officer vs crew vs shore staff)
3. Include mix of mental health, physical health, job satisfaction, and social connection
4. Are conversational and easy to answer
5. Help identify stress, burnout, or wellbeing concerns
6. Consider their vessel type and department

Format: Return only the questions, one per line, without numbering or bullet points.`,
		employee.Name, employee.Role, employee.Department, vessel, avgLine)
}

func buildScoringPrompt(employee *model.EmployeeProfile, responses []model.QAPair) string {
	var sb strings.Builder
	for i, r := range responses {
		fmt.Fprintf(&sb, "%d. Q: %s\n   A: %s\n\n", i+1, r.Question, r.Answer)
	}

	return fmt.Sprintf(`You are analyzing wellness check-in responses from a maritime employee.

Employee: %s (%s - %s)

Responses:
%s
Please provide:
1. A wellness score from 0-100 (where 100 is excellent wellbeing)
2. 2-3 brief insights about their current state
3. Any red flags or areas of concern

Consider:
- Maritime work challenges (isolation, long hours, physical demands)
- Signs of stress, burnout, or mental health concerns
- Positive indicators of wellbeing
- Work-life balance issues

Format your response as:
SCORE: [number]
INSIGHTS:
- [insight 1]
- [insight 2]
- [insight 3 if applicable]`,
		employee.Name, employee.Role, employee.Department, sb.String())
}

// Response parsers

var scorePattern = regexp.MustCompile(`(?i)SCORE:\s*(\d+)`)

// parseQuestionList splits the backend's output into non-blank lines,
// truncated to the expected count.
func parseQuestionList(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if len(questions) == questionCount {
			break
		}
	}
	return questions
}

// parseScoreResponse extracts the SCORE line and the hyphen-prefixed
// INSIGHTS bullets. A missing score defaults to 50.
func parseScoreResponse(text string) *model.ScoreResult {
	score := 50
	if m := scorePattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			score = n
		}
	}
	score = clampInt(score, 0, 100)

	var insights []string
	if _, after, found := strings.Cut(text, "INSIGHTS:"); found {
		for _, line := range strings.Split(after, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "-") {
				insights = append(insights, strings.TrimSpace(strings.TrimPrefix(line, "-")))
			}
		}
	}

	return &model.ScoreResult{Score: score, Insights: insights}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
