package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m0t0k1ch1/ygo-deckcode-go/internal/cli"
	"github.com/m0t0k1ch1/ygo-deckcode-go/internal/testutil"
)

const catalogPath = "../../catalog/testdata/cards.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	cmd := cli.NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(t.TempDir(), "config.toml"),
		"--catalog", catalogPath,
	}, args...))

	err := cmd.Execute()

	return stdout.String(), err
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "ydke://o6lXBQ==!0iNuAQ==!!")
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	testutil.Equal(t, strings.Join([]string{
		"main (1)",
		"   89631139 Blue-Eyes White Dragon",
		"extra (1)",
		"   23995346 Blue-Eyes Ultimate Dragon",
		"side (0)",
		"",
	}, "\n"), out)
}

func TestDecode_UnknownCard(t *testing.T) {
	if _, err := run(t, "decode", "ydke://AQAAAA==!!!"); err == nil {
		t.Error("expected an error")
	}
}

func TestConvert(t *testing.T) {
	value, err := run(t, "convert", "--to", "query", "--name", "Kaiba", "ydke://o6lXBQ==!0iNuAQ==!!")
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}

	out, err := run(t, "decode", strings.TrimSpace(value))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if !strings.HasPrefix(out, "Name: Kaiba\nmain (1)\n") {
		t.Errorf("unexpected output:\n%s", out)
	}

	uri, err := run(t, "convert", strings.TrimSpace(value))
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}

	testutil.Equal(t, "ydke://o6lXBQ==!0iNuAQ==!!\n", uri)
}

func TestEncode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kaiba.ydk")
	if err := os.WriteFile(path, []byte("#main\n89631139\n#extra\n23995346\n!side\n"), 0644); err != nil {
		t.Fatalf("failed to write ydk file: %v", err)
	}

	out, err := run(t, "encode", "--to", "uri", path)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	testutil.Equal(t, "ydke://o6lXBQ==!0iNuAQ==!!\n", out)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "--format", "goat", "ydke://!!SnBJA0pwSQM=!")
	if err == nil {
		t.Error("expected validation to fail")
	}

	for _, line := range []string{
		"1. side: cannot add Pot of Greed (55144522) under goat",
		"1. main: 0 cards, at least 40 required",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("expected output to contain %q:\n%s", line, out)
		}
	}
}

func TestMissingCatalog(t *testing.T) {
	cmd := cli.NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "config.toml"), "decode", "ydke://!!!"})

	t.Setenv("YGODECK_CATALOG", "")

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error")
	}
}
