package nemotron

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

//go:embed prompts.yaml
var defaultPrompts []byte

const (
	ModelNemotron = "nemotron"
	ModelAgent    = "agent"
)

type Prompt struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	System      string  `yaml:"system"`
	User        string  `yaml:"user"`

	system *template.Template
	user   *template.Template
}

type Prompts map[string]*Prompt

// LoadPrompts parses the embedded prompt set, or the file at path when set.
func LoadPrompts(path string) (Prompts, error) {
	raw := defaultPrompts
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read prompts: %w", err)
		}
		raw = b
	}
	return ParsePrompts(raw)
}

func ParsePrompts(raw []byte) (Prompts, error) {
	var p Prompts
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse prompts: %w", err)
	}
	for name, prompt := range p {
		if prompt == nil || strings.TrimSpace(prompt.User) == "" {
			return nil, fmt.Errorf("prompt %q has no user template", name)
		}
		if prompt.Model == "" {
			prompt.Model = ModelNemotron
		}
		var err error
		if prompt.user, err = template.New(name + ".user").Option("missingkey=error").Parse(prompt.User); err != nil {
			return nil, fmt.Errorf("prompt %q: %w", name, err)
		}
		if prompt.System != "" {
			if prompt.system, err = template.New(name + ".system").Option("missingkey=error").Parse(prompt.System); err != nil {
				return nil, fmt.Errorf("prompt %q: %w", name, err)
			}
		}
	}
	return p, nil
}

// Render executes the prompt templates with data.
func (p *Prompt) Render(data any) (system, user string, err error) {
	var b strings.Builder
	if p.system != nil {
		if err := p.system.Execute(&b, data); err != nil {
			return "", "", err
		}
		system = strings.TrimSpace(b.String())
		b.Reset()
	}
	if err := p.user.Execute(&b, data); err != nil {
		return "", "", err
	}
	return system, strings.TrimSpace(b.String()), nil
}

// StripCodeFence removes a surrounding markdown code fence and its language
// tag, if present.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= 2 {
		return s
	}
	bare := strings.TrimSpace(lines[0]) == "```"
	body := lines[1:]
	if strings.TrimSpace(body[len(body)-1]) == "```" {
		body = body[:len(body)-1]
	}
	out := strings.TrimSpace(strings.Join(body, "\n"))
	if bare {
		for _, tag := range []string{"json", "mermaid"} {
			if strings.HasPrefix(out, tag) {
				out = strings.TrimSpace(out[len(tag):])
				break
			}
		}
	}
	return out
}
