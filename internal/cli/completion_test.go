package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{
			"complete -F _scoreboard_completions scoreboard",
			"--serve",
			"--theme)",
			`compgen -W "dark light orange none"`,
			"--script|-s|--config)",
		}},
		{"zsh", []string{
			"#compdef scoreboard",
			"'(-s --script)'{-s,--script}'[Execute commands from a file]:file:_files'",
			"'--log-level[Log level]:level:(debug info warn error)'",
			"'--origins[Comma-separated CORS origins]:origins:'",
		}},
		{"fish", []string{
			"complete -c scoreboard -f",
			"complete -c scoreboard -s s -l script -d 'Execute commands from a file' -rF",
			"complete -c scoreboard -l completion -d 'Generate completion script' -xa 'bash zsh fish'",
			"complete -c scoreboard -l origins -d 'Comma-separated CORS origins' -x",
			"complete -c scoreboard -l tui -d 'Start the terminal dashboard'\n",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error: %v", tt.shell, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	if err := GenerateCompletion(&bytes.Buffer{}, "tcsh"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestFlagRegistryCoversEveryFlagOnce(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range flagRegistry {
		for _, form := range flagForms(f) {
			if seen[form] {
				t.Errorf("duplicate flag %s", form)
			}
			seen[form] = true
		}
	}
}
