// CLI integration tests for heartboard.
package integration

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the heartboard binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "heartboard-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "heartboard")
	heartboardBin = binPath

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/heartboard")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

// Test1_InitializeBoard verifies board initialization and seeding.
func Test1_InitializeBoard(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunHeartboard("init")
	if result.Stdout == "" {
		t.Error("expected init output message")
	}

	if _, err := os.Stat(env.DataDir); os.IsNotExist(err) {
		t.Error("data directory not created")
	}

	boardFile := filepath.Join(env.DataDir, "light-the-heart-data-v1.json")
	if _, err := os.Stat(boardFile); os.IsNotExist(err) {
		t.Error("board file not created")
	}
}

// Test2_SeededBoard verifies the seed fills the board with half lit.
func Test2_SeededBoard(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunHeartboard("init")

	result := env.MustRunHeartboard("--json", "list")
	list := ParseJSON[[]Participant](t, result.Stdout)
	if len(list) != 38 {
		t.Errorf("expected 38 seeded records, got %d", len(list))
	}

	lit := 0
	for _, p := range list {
		if p.Lit {
			lit++
		}
	}
	if lit != 19 {
		t.Errorf("expected 19 lit seeds, got %d", lit)
	}
}

// Test3_JoinLightsReservedSlot verifies joining under a seeded name.
func Test3_JoinLightsReservedSlot(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunHeartboard("init")

	result := env.MustRunHeartboard("--json", "join", "Raymond", "Lu")
	p := ParseJSON[Participant](t, result.Stdout)
	if !p.Lit {
		t.Error("joined slot should be lit")
	}
	if p.ID != "pen-2" {
		t.Errorf("expected the reserved slot pen-2, got %q", p.ID)
	}

	// Joining again is accepted without change.
	again := env.MustRunHeartboard("--json", "join", "raymond lu")
	p2 := ParseJSON[Participant](t, again.Stdout)
	if p2.ID != p.ID {
		t.Errorf("repeat join returned a different slot: %q", p2.ID)
	}
}

// Test4_JoinRejectedWhenFull verifies the capacity rejection exit path.
func Test4_JoinRejectedWhenFull(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunHeartboard("init")

	// The seed fills every slot, so an unknown name has nowhere to go.
	result := env.RunHeartboard("join", "Uninvited Guest")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit when the board is full")
	}
	if !strings.Contains(result.Stderr, "full") {
		t.Errorf("expected a board-full message, got %q", result.Stderr)
	}
}

// Test5_ToggleRequiresPassword verifies the operator gate.
func Test5_ToggleRequiresPassword(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunHeartboard("init")

	result := env.RunHeartboard("toggle", "leg-3")
	if result.ExitCode == 0 {
		t.Error("expected toggle to fail without a password")
	}

	ok := env.MustRunHeartboard("--json", "toggle", "leg-3", "--password", TestAdminPassword)
	p := ParseJSON[Participant](t, ok.Stdout)
	if p.Lit {
		t.Error("toggling a lit seed should unlight it")
	}
}

// Test6_ImportMergesRoster verifies file import and reconciliation.
func Test6_ImportMergesRoster(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunHeartboard("init")

	roster := filepath.Join(env.TempDir, "roster.csv")
	csv := "Name,Week\nRaymond Lu,5\nBrand New Person,6\n"
	if err := os.WriteFile(roster, []byte(csv), 0644); err != nil {
		t.Fatalf("write roster: %v", err)
	}

	result := env.MustRunHeartboard("--json", "import", "--file", roster)
	stats := ParseJSON[BoardStats](t, result.Stdout)
	if !stats.Changed {
		t.Error("import should report a change")
	}
	if stats.Lit != 21 {
		t.Errorf("expected 21 lit after import (19 seeds + 2 rows), got %d", stats.Lit)
	}
	if stats.Records != 39 {
		t.Errorf("expected 39 records after one append, got %d", stats.Records)
	}
}

// Test7_ImportFromURL verifies roster fetch over HTTP.
func Test7_ImportFromURL(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunHeartboard("init")

	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Name,Week\nFelix Zhu,7\n"))
	}))
	defer feed.Close()

	env.MustRunHeartboard("import", "--url", feed.URL)

	result := env.MustRunHeartboard("--json", "list", "--search", "Felix")
	list := ParseJSON[[]Participant](t, result.Stdout)
	if len(list) != 1 || !list[0].Lit {
		t.Errorf("expected Felix Zhu lit after URL import, got %+v", list)
	}
	if list[0].Label != "Week 7" {
		t.Errorf("expected numeric week label adopted, got %q", list[0].Label)
	}
}

// Test8_ResetRestoresSeed verifies the operator reset.
func Test8_ResetRestoresSeed(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunHeartboard("init")
	env.MustRunHeartboard("join", "Raymond", "Lu")

	refused := env.RunHeartboard("reset", "--password", TestAdminPassword)
	if refused.ExitCode == 0 {
		t.Error("reset without --yes should refuse")
	}

	env.MustRunHeartboard("reset", "--yes", "--password", TestAdminPassword)

	result := env.MustRunHeartboard("--json", "list")
	list := ParseJSON[[]Participant](t, result.Stdout)
	lit := 0
	for _, p := range list {
		if p.Lit {
			lit++
		}
	}
	if lit != 19 {
		t.Errorf("expected the seed's 19 lit records after reset, got %d", lit)
	}
}

// Test9_SyncPersistsSource verifies sync --source writes config.yaml.
func Test9_SyncPersistsSource(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunHeartboard("init")

	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Name,Week\nRaymond Lu,5\n"))
	}))
	defer feed.Close()

	env.MustRunHeartboard("sync", "--source", feed.URL)

	data, err := os.ReadFile(filepath.Join(env.Config, "config.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), feed.URL) {
		t.Error("expected the source URL persisted to config.yaml")
	}

	// A second sync needs no --source.
	env.MustRunHeartboard("sync")
}

// Test10_SQLiteBackend verifies the board survives with backend: sqlite.
func Test10_SQLiteBackend(t *testing.T) {
	env := NewTestEnv(t)
	configContent := "backend: sqlite\ndata_dir: " + env.DataDir + "\nadmin_password: " + TestAdminPassword + "\n"
	if err := os.WriteFile(filepath.Join(env.Config, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	env.MustRunHeartboard("init")
	env.MustRunHeartboard("join", "Raymond", "Lu")

	result := env.MustRunHeartboard("--json", "list", "--search", "Raymond")
	list := ParseJSON[[]Participant](t, result.Stdout)
	if len(list) != 1 || !list[0].Lit {
		t.Errorf("expected Raymond Lu lit in sqlite backend, got %+v", list)
	}
}
