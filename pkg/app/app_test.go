package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/flownav/pkg/embedded"
	"github.com/gonewx/flownav/pkg/navigation"
)

const testNavBarYAML = `
navbar:
  height: 56
  animationDurationMs: 300
menu:
  - id: home
    glyph: H
  - id: search
    glyph: S
  - id: inbox
    glyph: I
`

// setupTestEnv 初始化嵌入资源并把 HOME 指向临时目录
func setupTestEnv(t *testing.T) {
	t.Helper()
	embedded.Init(fstest.MapFS{
		DefaultConfigPath: &fstest.MapFile{Data: []byte(testNavBarYAML)},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })
}

func TestLoadNavBarFile_Embedded(t *testing.T) {
	setupTestEnv(t)

	file, err := LoadNavBarFile("")
	if err != nil {
		t.Fatalf("LoadNavBarFile() error: %v", err)
	}
	if len(file.Menu) != 3 || *file.NavBar.Height != 56 {
		t.Errorf("loaded %d entries, height %v", len(file.Menu), *file.NavBar.Height)
	}
}

func TestLoadNavBarFile_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navbar.yaml")
	if err := os.WriteFile(path, []byte(testNavBarYAML), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	file, err := LoadNavBarFile(path)
	if err != nil {
		t.Fatalf("LoadNavBarFile(%q) error: %v", path, err)
	}
	if file.Menu[2].ID != "inbox" {
		t.Errorf("menu = %+v", file.Menu)
	}

	if _, err := LoadNavBarFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadNavBarFile_NotInitialized(t *testing.T) {
	embedded.Init(nil)
	if _, err := LoadNavBarFile(""); err == nil {
		t.Error("expected an error before embedded.Init")
	}
}

// TestNewApp_RestoresLastEntry 上次保存的菜单项在重启后被选中
func TestNewApp_RestoresLastEntry(t *testing.T) {
	setupTestEnv(t)
	const appName = "test_flownav_app"

	prefs := OpenPreferences(appName)
	prefs.SetLastEntryID("inbox")
	if err := prefs.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	a, err := NewApp(Config{AppName: appName})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	if got := a.NavBar().SelectedEntry().ID; got != "inbox" {
		t.Errorf("selected %q, want inbox", got)
	}
	if got := a.GetSceneManager().GetCurrentScene(); got == nil {
		t.Error("app should start on the navigation scene")
	}

	// 选择会记到偏好并在退出时保存
	if err := a.NavBar().SelectIndex(0, false); err != nil {
		t.Fatalf("SelectIndex() error: %v", err)
	}
	if !a.SaveOnExit() {
		t.Error("SaveOnExit() failed")
	}
	if got := OpenPreferences(appName).GetPreferences().LastEntryID; got != "home" {
		t.Errorf("persisted LastEntryID = %q, want home", got)
	}
}

func TestNewApp_DefaultsToMiddle(t *testing.T) {
	setupTestEnv(t)

	a, err := NewApp(Config{AppName: "test_flownav_app_default"})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	if got := a.NavBar().Selected(); got != 1 {
		t.Errorf("selected %d, want 1", got)
	}
}

func TestIndexOfID(t *testing.T) {
	entries := []navigation.MenuEntry{{ID: "a"}, {ID: "b"}}

	tests := []struct {
		id   string
		want int
	}{
		{"", -1},
		{"a", 0},
		{"b", 1},
		{"c", -1},
	}
	for _, tt := range tests {
		if got := indexOfID(entries, tt.id); got != tt.want {
			t.Errorf("indexOfID(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}
