package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# hexball
HEXBALL_TEST_A=plain
export HEXBALL_TEST_B = "quoted value"
HEXBALL_TEST_C='single'
HEXBALL_TEST_KEEP=fromfile
=novalue
garbage
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HEXBALL_TEST_KEEP", "fromenv")
	for _, k := range []string{"HEXBALL_TEST_A", "HEXBALL_TEST_B", "HEXBALL_TEST_C"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 3 {
		t.Errorf("set = %v, want 3 keys", set)
	}
	want := map[string]string{
		"HEXBALL_TEST_A":    "plain",
		"HEXBALL_TEST_B":    "quoted value",
		"HEXBALL_TEST_C":    "single",
		"HEXBALL_TEST_KEEP": "fromenv",
	}
	for k, v := range want {
		if got := os.Getenv(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil || set != nil {
		t.Errorf("Load(missing) = %v, %v", set, err)
	}
}
