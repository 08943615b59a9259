package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/dNmmer/SortFiles/internal/errors"
	"github.com/dNmmer/SortFiles/internal/infra/lock"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SOURCE_DIR", "TARGET_DIR", "EXTENSIONS", "WORKERS", "VERBOSE", "LOG_FILE", "NO_COLOR", "LOCK_DIR"} {
		t.Setenv("SORTFILES_"+key, "")
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "--log-file", filepath.Join(t.TempDir(), "sortfiles.log")}
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()
	return out.String(), err
}

func TestScanCommand(t *testing.T) {
	isolateEnv(t)
	source := t.TempDir()
	writeTree(t, source, map[string]string{
		"a.txt":     "a",
		"sub/b.TXT": "b",
		"c.jpg":     "c",
		"README":    "r",
	})

	out, err := execute(t, "scan", source)
	require.NoError(t, err)
	assert.Contains(t, out, "Текстовый файл (.txt)  2")
	assert.Contains(t, out, "Фото JPEG (.jpg)")
	assert.Contains(t, out, "Найдено типов: 2")
}

func TestScanCommandRejectsMissingSource(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "scan", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, appErrors.InvalidInput, appErrors.KindOf(err))
}

func TestCopyCommandEndToEnd(t *testing.T) {
	isolateEnv(t)
	source := t.TempDir()
	target := filepath.Join(t.TempDir(), "out")
	writeTree(t, source, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
		"c.jpg": "c",
	})

	out, err := execute(t, "copy", source, target, "--ext", "txt", "--lock-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Скопировано файлов: 2")

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, names)
}

func TestCopyCommandRequiresSelection(t *testing.T) {
	isolateEnv(t)
	source := t.TempDir()

	_, err := execute(t, "copy", source, t.TempDir())
	require.Error(t, err)
	assert.Equal(t, appErrors.InvalidInput, appErrors.KindOf(err))
	assert.Contains(t, appErrors.UserMessage(err), "выберите хотя бы один тип файла")
}

func TestCopyCommandBusyDestination(t *testing.T) {
	isolateEnv(t)
	source := t.TempDir()
	target := t.TempDir()
	lockDir := t.TempDir()
	writeTree(t, source, map[string]string{"a.txt": "a"})

	held := lock.ForDir(target, lockDir)
	require.NoError(t, held.TryLock())
	defer held.Unlock()

	_, err := execute(t, "copy", source, target, "-e", ".txt", "--lock-dir", lockDir)
	require.Error(t, err)
	assert.Equal(t, appErrors.Busy, appErrors.KindOf(err))

	_, statErr := os.Stat(filepath.Join(target, "a.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	isolateEnv(t)
	fromFile := t.TempDir()
	fromFlag := t.TempDir()
	writeTree(t, fromFile, map[string]string{"only-in-file.pdf": ""})
	writeTree(t, fromFlag, map[string]string{"only-in-flag.csv": ""})

	cfgPath := filepath.Join(t.TempDir(), "sortfiles.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("source: "+fromFile+"\n"), 0o644))

	out, err := execute(t, "scan", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, ".pdf")

	out, err = execute(t, "scan", "--config", cfgPath, "--source", fromFlag)
	require.NoError(t, err)
	assert.Contains(t, out, ".csv")
	assert.NotContains(t, out, ".pdf")
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	isolateEnv(t)
	fromFile := t.TempDir()
	fromEnv := t.TempDir()
	writeTree(t, fromEnv, map[string]string{"x.mp3": ""})

	cfgPath := filepath.Join(t.TempDir(), "sortfiles.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("source: "+fromFile+"\n"), 0o644))
	t.Setenv("SORTFILES_SOURCE_DIR", fromEnv)

	out, err := execute(t, "scan", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Аудио MP3 (.mp3)")
}
