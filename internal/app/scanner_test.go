package app

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/dNmmer/SortFiles/internal/domain"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
	infrafs "github.com/dNmmer/SortFiles/internal/infra/fs"
	"github.com/dNmmer/SortFiles/internal/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountEmptyTree(t *testing.T) {
	fsys := newFaultyFS()
	require.NoError(t, fsys.MkdirAll("/src/empty/deeper", 0o755))

	engine := Engine{FS: fsys, Workers: 4}
	tally, err := engine.Count(context.Background(), "/src")
	require.NoError(t, err)
	assert.Empty(t, tally)
}

func TestCountMergesCaseAndDropsExtensionless(t *testing.T) {
	fsys := newFaultyFS()
	seed(t, fsys.AferoFS, map[string]string{
		"/src/a.JPG":     "",
		"/src/sub/b.jpg": "",
		"/src/Makefile":  "",
		"/src/notes.":    "",
	})

	engine := Engine{FS: fsys, Workers: 2}
	tally, err := engine.Count(context.Background(), "/src")
	require.NoError(t, err)
	assert.Equal(t, domain.Tally{".jpg": 2}, tally)
}

func TestCountMatchesReferenceWalkUnderConcurrency(t *testing.T) {
	fsys := infrafs.NewMem()
	exts := []string{".jpg", ".PNG", ".txt", ".Txt", ".pdf", ""}
	withExt := 0
	for i := 0; i < 10000; i++ {
		ext := exts[i%len(exts)]
		if ext != "" {
			withExt++
		}
		dir := fmt.Sprintf("/src/d%02d", i%37)
		require.NoError(t, fsys.MkdirAll(dir, 0o755))
		require.NoError(t, fsys.WriteFile(fmt.Sprintf("%s/f%05d%s", dir, i, ext), nil))
	}

	reference := domain.Tally{}
	err := afero.Walk(fsys.Fs, "/src", func(path string, info fs.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			reference.Add(domain.Extension(path))
		}
		return err
	})
	require.NoError(t, err)
	require.Equal(t, withExt, reference.Total())

	for _, workers := range []int{1, 4, 16, 64} {
		for run := 0; run < 3; run++ {
			engine := Engine{FS: fsys, Workers: workers}
			tally, err := engine.Count(context.Background(), "/src")
			require.NoError(t, err)
			assert.Equal(t, reference, tally, "workers=%d run=%d", workers, run)
		}
	}
}

func TestCountToleratesInaccessibleSubdirectory(t *testing.T) {
	fsys := newFaultyFS()
	seed(t, fsys.AferoFS, map[string]string{
		"/src/ok/a.txt":     "",
		"/src/ok/b.txt":     "",
		"/src/locked/c.txt": "",
		"/src/d.jpg":        "",
	})
	fsys.deniedDirs["/src/locked"] = true

	engine := Engine{FS: fsys}
	tally, err := engine.Count(context.Background(), "/src")
	require.NoError(t, err)
	assert.Equal(t, domain.Tally{".txt": 2, ".jpg": 1}, tally)
}

func TestCountRootFailureIsFatal(t *testing.T) {
	fsys := newFaultyFS()
	seed(t, fsys.AferoFS, map[string]string{"/src/a.txt": ""})
	fsys.deniedDirs["/src"] = true

	engine := Engine{FS: fsys}
	_, err := engine.Count(context.Background(), "/src")
	require.Error(t, err)
	assert.Equal(t, appErrors.ScanFailure, appErrors.KindOf(err))
	assert.ErrorIs(t, err, errDenied)
}

func TestScanReturnsSortedFileTypes(t *testing.T) {
	fsys := newFaultyFS()
	seed(t, fsys.AferoFS, map[string]string{
		"/src/1.txt": "", "/src/2.txt": "",
		"/src/1.csv": "", "/src/2.csv": "",
		"/src/1.mp3": "", "/src/2.mp3": "", "/src/3.MP3": "",
		"/src/1.xyz": "",
	})

	engine := Engine{FS: fsys, Workers: 3}
	types, err := engine.Scan(context.Background(), "/src")
	require.NoError(t, err)
	assert.Equal(t, []domain.FileType{
		{Extension: ".mp3", Label: "Аудио MP3 (.mp3)", Count: 3},
		{Extension: ".csv", Label: "CSV файл (.csv)", Count: 2},
		{Extension: ".txt", Label: "Текстовый файл (.txt)", Count: 2},
		{Extension: ".xyz", Label: "Файл (.xyz)", Count: 1},
	}, types)
}

func TestCountRequiresFS(t *testing.T) {
	engine := Engine{}
	_, err := engine.Count(context.Background(), filepath.Join("/", "src"))
	assert.Error(t, err)
}

func TestCountStopsOnCancelledContext(t *testing.T) {
	fsys := newFaultyFS()
	seed(t, fsys.AferoFS, map[string]string{"/src/a.txt": "", "/src/b.txt": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := Engine{FS: fsys, Workers: 1}
	_, err := engine.Count(ctx, "/src")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountSkipsUnreadableDirectoryOnDisk(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	src := filepath.Join(t.TempDir(), "src")
	locked := filepath.Join(src, "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "b.jpg"), nil, 0o644))
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	engine := Engine{FS: infrafs.NewOS(), Workers: 2}
	tally, err := engine.Count(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, domain.Tally{".txt": 1}, tally)
}

func TestCountLogsStageAndRoot(t *testing.T) {
	fsys := newFaultyFS()
	seed(t, fsys.AferoFS, map[string]string{"/src/a.txt": ""})

	var buf bytes.Buffer
	engine := Engine{FS: fsys, Workers: 1, Logger: logging.New(&buf, false)}
	_, err := engine.Count(context.Background(), "/src")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Scanning /src")
	assert.Contains(t, buf.String(), `"stage": "scan"`)
}
