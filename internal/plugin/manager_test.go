package plugin

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, pluginDir, name, content string) {
	t.Helper()
	dir := filepath.Join(pluginDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create plugin dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plugin.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
}

func TestManager_Discover(t *testing.T) {
	pluginDir := t.TempDir()

	writeManifest(t, pluginDir, "announce", `{
		"name": "announce",
		"version": "1.0.0",
		"description": "Speaks the selected object",
		"executable": "announce",
		"actions": ["speak"]
	}`)

	m := NewManager(pluginDir)
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	p, err := m.Get("announce")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	if p.Manifest.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", p.Manifest.Version)
	}
	wantExec := filepath.Join(pluginDir, "announce", "announce")
	if p.Executable != wantExec {
		t.Errorf("expected executable %q, got %q", wantExec, p.Executable)
	}
}

func TestManager_DiscoverSkipsInvalid(t *testing.T) {
	pluginDir := t.TempDir()

	writeManifest(t, pluginDir, "good", `{"name":"good","executable":"good"}`)
	writeManifest(t, pluginDir, "broken", `{not json`)

	// A directory without a manifest is not a plugin
	if err := os.MkdirAll(filepath.Join(pluginDir, "empty"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	m := NewManager(pluginDir)
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if len(m.List()) != 1 {
		t.Fatalf("expected 1 plugin, got %d", len(m.List()))
	}
	if _, err := m.Get("good"); err != nil {
		t.Errorf("expected plugin 'good' to be discovered: %v", err)
	}
}

func TestManager_DiscoverMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "does-not-exist"))

	if err := m.Discover(); err != nil {
		t.Fatalf("Discover() on a missing dir should succeed, got %v", err)
	}
	if len(m.List()) != 0 {
		t.Errorf("expected no plugins, got %d", len(m.List()))
	}
}

func TestManager_GetUnknown(t *testing.T) {
	m := NewManager(t.TempDir())
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if _, err := m.Get("nope"); err != ErrPluginNotFound {
		t.Errorf("expected ErrPluginNotFound, got %v", err)
	}
}
