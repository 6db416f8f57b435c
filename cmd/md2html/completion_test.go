package main

// Notes:
// - GenerateCompletion: we check scripts for expected markers. Running them
//   in the target shells is out of scope.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell        Shell
		wantContains []string
	}{
		{ShellBash, []string{"_md2html()", "complete -o filenames -F _md2html md2html", "--engine) COMPREPLY", "lite gfm", "--page-size|-p)", "compgen -d"}},
		{ShellZsh, []string{"#compdef md2html", "_arguments", "_describe 'command' commands", "(-o --output)'{-o,--output}'", ":engine:(lite gfm)"}},
		{ShellFish, []string{"complete -c md2html", "-l engine", "-s o", "__fish_complete_suffix .md .markdown", "\"bash zsh fish powershell\""}},
		{ShellPowerShell, []string{"Register-ArgumentCompleter", "'--engine' = @('lite', 'gfm')", "'doctor'", "CompletionResult"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unsupported shell")
	}
}

// ---------------------------------------------------------------------------
// TestExtractFlagsFromFlagSet - Completion metadata from the FlagSet
// ---------------------------------------------------------------------------

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	flags := extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{}))
	byName := make(map[string]flagDef, len(flags))
	for _, f := range flags {
		byName[f.Long] = f
	}

	tests := []struct {
		name  string
		short string
		typ   flagType
	}{
		{"output", "o", flagDir},
		{"workers", "w", flagInt},
		{"timeout", "t", flagString},
		{"engine", "", flagEnum},
		{"style", "", flagEnum},
		{"css", "", flagFile},
		{"config", "c", flagFile},
		{"standalone", "", flagBool},
		{"margin", "", flagFloat},
		{"page-size", "p", flagEnum},
	}

	for _, tt := range tests {
		f, ok := byName[tt.name]
		if !ok {
			t.Errorf("flag --%s missing", tt.name)
			continue
		}
		if f.Short != tt.short || f.Type != tt.typ {
			t.Errorf("--%s = {Short: %q, Type: %d}, want {%q, %d}", tt.name, f.Short, f.Type, tt.short, tt.typ)
		}
		if f.Desc == "" {
			t.Errorf("--%s has no description", tt.name)
		}
	}
}

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()
	names := commandNames(cmds)
	for _, name := range commands {
		found := false
		for _, n := range names {
			if n == name {
				found = true
			}
		}
		if !found {
			t.Errorf("command %q has no completion entry", name)
		}
	}
	if !cmds[0].TakesFiles || cmds[0].Name != "convert" {
		t.Errorf("first command = %+v, want convert taking files", cmds[0])
	}
}

func TestGlobExtensions(t *testing.T) {
	t.Parallel()

	got := globExtensions("*.md, *.markdown")
	if strings.Join(got, " ") != "md markdown" {
		t.Errorf("globExtensions() = %v", got)
	}
}
