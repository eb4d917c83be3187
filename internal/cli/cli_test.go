package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"actlog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvBackend, "")
	t.Setenv(config.EnvVariant, "")
	t.Setenv(config.EnvDebug, "")

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func mustRun(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, "", args...)
	require.NoError(t, err, "actlog %v\nstderr:\n%s", args, stderr)
	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &env), "stdout: %s", stdout)
	require.Contains(t, env, "data")
	return env
}

func dataMap(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	m, ok := env["data"].(map[string]any)
	require.True(t, ok, "data is %T", env["data"])
	return m
}

func dataList(t *testing.T, env map[string]any) []any {
	t.Helper()
	l, ok := env["data"].([]any)
	require.True(t, ok, "data is %T", env["data"])
	return l
}

func idOf(t *testing.T, m map[string]any) string {
	t.Helper()
	f, ok := m["id"].(float64)
	require.True(t, ok)
	return fmt.Sprintf("%d", int64(f))
}

func TestActivities_AddListUpdateDelete(t *testing.T) {
	dir := t.TempDir()

	added := dataMap(t, mustRun(t, "--dir", dir, "activities", "add",
		"--date", "2024-08-12", "--activity", "Foundation Day", "--person", "Dr. Santos"))
	id := idOf(t, added)
	assert.Equal(t, "Foundation Day", added["activity"])
	assert.Equal(t, "", added["evaluation"])

	list := dataList(t, mustRun(t, "--dir", dir, "activities", "list"))
	require.Len(t, list, 1)

	updated := dataMap(t, mustRun(t, "--dir", dir, "activities", "update", id, "--evaluation", "Successful"))
	assert.Equal(t, "Successful", updated["evaluation"])
	assert.Equal(t, "Foundation Day", updated["activity"])
	assert.Equal(t, id, idOf(t, updated))

	deleted := dataMap(t, mustRun(t, "--dir", dir, "--yes", "activities", "delete", id))
	assert.Equal(t, true, deleted["deleted"])
	assert.Empty(t, dataList(t, mustRun(t, "--dir", dir, "activities", "list")))
}

func TestActivities_AddMissingFieldsFails(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := runCLI(t, "", "--dir", dir, "activities", "add", "--date", "2024-08-12")
	require.Error(t, err)
	assert.Contains(t, stderr, "activity")
	assert.Empty(t, dataList(t, mustRun(t, "--dir", dir, "activities", "list")))
}

func TestActivities_UpdateMissingID(t *testing.T) {
	_, stderr, err := runCLI(t, "", "--dir", t.TempDir(), "activities", "update", "42", "--person", "X")
	require.Error(t, err)
	assert.Contains(t, stderr, "not found")

	_, _, err = runCLI(t, "", "--dir", t.TempDir(), "activities", "update", "abc")
	require.Error(t, err)
}

func TestDelete_DeclinePromptKeepsRecord(t *testing.T) {
	dir := t.TempDir()
	id := idOf(t, dataMap(t, mustRun(t, "--dir", dir, "tasks", "add", "--text", "Buy chalk")))

	stdout, stderr, err := runCLI(t, "n\n", "--dir", dir, "tasks", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, stderr, "[y/N]")
	assert.Contains(t, stdout, `"deleted":false`)
	assert.Len(t, dataList(t, mustRun(t, "--dir", dir, "tasks", "list")), 1)

	stdout, _, err = runCLI(t, "y\n", "--dir", dir, "tasks", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"deleted":true`)
	assert.Empty(t, dataList(t, mustRun(t, "--dir", dir, "tasks", "list")))
}

func TestTasks_ToggleThenEditKeepsCompleted(t *testing.T) {
	dir := t.TempDir()
	id := idOf(t, dataMap(t, mustRun(t, "--dir", dir, "tasks", "add", "--text", "Buy milk")))

	toggled := dataMap(t, mustRun(t, "--dir", dir, "tasks", "toggle", id))
	assert.Equal(t, true, toggled["completed"])

	edited := dataMap(t, mustRun(t, "--dir", dir, "tasks", "edit", id, "--text", "Buy oat milk"))
	assert.Equal(t, "Buy oat milk", edited["text"])
	assert.Equal(t, true, edited["completed"])
}

func TestReset_OnlyActiveList(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, "--dir", dir, "tasks", "add", "--text", "Buy chalk")
	mustRun(t, "--dir", dir, "activities", "add", "--date", "2024-08-12", "--activity", "Foundation Day", "--person", "Dr. Santos")

	res := dataMap(t, mustRun(t, "--dir", dir, "--yes", "tasks", "reset"))
	assert.Equal(t, true, res["reset"])
	assert.Equal(t, float64(1), res["removed"])

	assert.Empty(t, dataList(t, mustRun(t, "--dir", dir, "tasks", "list")))
	assert.Len(t, dataList(t, mustRun(t, "--dir", dir, "activities", "list")), 1)
}

func TestTheme_Toggle(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, false, dataMap(t, mustRun(t, "--dir", dir, "theme", "show"))["dark"])
	assert.Equal(t, true, dataMap(t, mustRun(t, "--dir", dir, "theme", "toggle"))["dark"])
	assert.Equal(t, true, dataMap(t, mustRun(t, "--dir", dir, "theme", "show"))["dark"])
	assert.Equal(t, false, dataMap(t, mustRun(t, "--dir", dir, "theme", "toggle"))["dark"])
}

func TestSQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, "--dir", dir, "--backend", "sqlite", "tasks", "add", "--text", "Grade papers")
	assert.Len(t, dataList(t, mustRun(t, "--dir", dir, "--backend", "sqlite", "tasks", "list")), 1)
	assert.Empty(t, dataList(t, mustRun(t, "--dir", dir, "tasks", "list")))
}

func TestObjectives_Raw(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--dir", t.TempDir(), "objectives", "--raw")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# System Objectives")
}

func TestUnknownBackend(t *testing.T) {
	_, _, err := runCLI(t, "", "--dir", t.TempDir(), "--backend", "etcd", "tasks", "list")
	assert.Error(t, err)
}

func TestPrettyOutput(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--dir", t.TempDir(), "--pretty", "tasks", "list")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"data\": []\n}\n", stdout)
}

func TestEnvironmentDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDir, dir)
	t.Setenv(config.EnvBackend, "sqlite")
	t.Setenv(config.EnvVariant, "")
	t.Setenv(config.EnvDebug, "")

	cmd := NewRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"tasks", "add", "--text", "Grade papers"})
	require.NoError(t, cmd.Execute())

	// The task went to the sqlite store in ACTLOG_DIR, not the json one.
	assert.Len(t, dataList(t, mustRun(t, "--dir", dir, "--backend", "sqlite", "tasks", "list")), 1)
	assert.Empty(t, dataList(t, mustRun(t, "--dir", dir, "tasks", "list")))
}

func TestEnvironmentRejectsUnknownBackend(t *testing.T) {
	t.Setenv(config.EnvBackend, "etcd")
	t.Setenv(config.EnvVariant, "")

	cmd := NewRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--dir", t.TempDir(), "tasks", "list"})
	require.Error(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "etcd")

	cmd = NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", t.TempDir(), "--backend", "memory", "--variant", "tasks", "tasks", "list"})
	assert.NoError(t, cmd.Execute())
}
