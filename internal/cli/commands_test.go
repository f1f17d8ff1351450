package cli

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xmlschemas/internal/archive"
	"github.com/vvka-141/xmlschemas/internal/config"
	"github.com/vvka-141/xmlschemas/internal/manifest"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
	"github.com/vvka-141/xmlschemas/pkg/schemas/all"
	"github.com/vvka-141/xmlschemas/pkg/schemas/spl"
)

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(all.IDs()))
	for i, id := range all.IDs() {
		assert.True(t, strings.HasPrefix(lines[i], id), "line %d: %q", i, lines[i])
	}
	assert.Contains(t, stdout, "SPL vR2b (BSD-3-Clause) - 2 files")
	assert.NotContains(t, stdout, "\x1b[", "styling must be off when stdout is not a terminal")
}

func TestListCmd_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var entries []struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		FileCount int    `json:"file_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, len(all.IDs()))

	byID := make(map[string]int)
	for _, e := range entries {
		byID[e.ID] = e.FileCount
	}
	assert.Equal(t, spl.Spl().FileCount(), byID["spl"])
}

func TestFilesCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, "files", "spl")
	require.NoError(t, err)
	assert.Equal(t, "SPL.xsd\ncoreschemas/datatypes.xsd\n", stdout)
}

func TestFilesCmd_Extension(t *testing.T) {
	stdout, _, err := executeCommand(t, "files", "docbook", "--ext", ".SCH")
	require.NoError(t, err)
	assert.Equal(t, "sch/docbook.sch\n", stdout)
}

func TestFilesCmd_UnknownBundle(t *testing.T) {
	_, _, err := executeCommand(t, "files", "nope")
	require.ErrorIs(t, err, schemas.ErrNotFound)
	assert.Equal(t, schemas.ExitNotFound, schemas.ExitCodeForError(err))
}

func TestFilesCmd_MissingBundleArg(t *testing.T) {
	_, _, err := executeCommand(t, "files")
	require.Error(t, err)
	assert.Equal(t, schemas.ExitUsageError, schemas.ExitCodeForError(err))
}

func TestCatCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, "cat", "spl", "SPL.xsd")
	require.NoError(t, err)

	f, ok := spl.Spl().GetFile("SPL.xsd")
	require.True(t, ok)
	assert.Equal(t, string(f.Contents()), stdout)
}

func TestCatCmd_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "cat", "spl", "missing.xsd")
	require.ErrorIs(t, err, schemas.ErrNotFound)
	assert.Contains(t, err.Error(), "missing.xsd")
}

func TestCatCmd_WrongArgCount(t *testing.T) {
	_, _, err := executeCommand(t, "cat", "spl")
	require.Error(t, err)
	assert.Equal(t, schemas.ExitUsageError, schemas.ExitCodeForError(err))
}

func TestExtractCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	stdout, _, err := executeCommand(t, "extract", "spl", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Extracted SPL R2b: 2 files")

	b := spl.Spl()
	for _, f := range b.Files() {
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(f.Path())))
		require.NoError(t, err)
		assert.Equal(t, f.Contents(), content)
	}
	assert.NoFileExists(t, filepath.Join(dir, "manifest.json"))
}

func TestExtractCmd_TreeAndManifest(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "extract", "spl", dir, "--tree", "--manifest")
	require.NoError(t, err)
	assert.Contains(t, stdout, "└── manifest.json")
	assert.Contains(t, stdout, "coreschemas/")

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	m, err := manifest.Decode(bytes.NewReader(data), manifest.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "SPL", m.Name)
	assert.Len(t, m.Files, 2)
}

func TestExtractCmd_YAMLManifest(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, "extract", "spl", dir, "--manifest", "--format", "yaml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "manifest.yaml"))
}

func TestExtractCmd_InvalidFormat(t *testing.T) {
	_, _, err := executeCommand(t, "extract", "spl", t.TempDir(), "--manifest", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, schemas.ExitUsageError, schemas.ExitCodeForError(err))
}

func TestExtractCmd_RequireEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.xsd"), []byte("<x/>"), 0o644))

	_, _, err := executeCommand(t, "extract", "spl", dir, "--require-empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not empty")
	assert.NoFileExists(t, filepath.Join(dir, "SPL.xsd"))
}

func TestExtractCmd_TargetIsFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	_, _, err := executeCommand(t, "extract", "spl", target)
	require.ErrorIs(t, err, schemas.ErrIO)
	assert.Equal(t, schemas.ExitIOError, schemas.ExitCodeForError(err))
}

func TestExtractCmd_VerboseLogsFiles(t *testing.T) {
	_, stderr, err := executeCommand(t, "extract", "spl", t.TempDir(), "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[VERBOSE] Wrote SPL.xsd")
}

func TestExtractCmd_UsesProjectConfig(t *testing.T) {
	work := t.TempDir()
	chdir(t, work)
	t.Setenv(EnvOutput, "")
	require.NoError(t, os.WriteFile(filepath.Join(work, config.ConfigFileName),
		[]byte("output: from-config\nmanifest: true\nmanifest_format: yaml\n"), 0o644))

	_, _, err := executeCommand(t, "extract", "spl")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(work, "from-config", "SPL.xsd"))
	assert.FileExists(t, filepath.Join(work, "from-config", "manifest.yaml"))
}

func TestExtractCmd_EnvOverridesConfig(t *testing.T) {
	work := t.TempDir()
	chdir(t, work)
	t.Setenv(EnvOutput, "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(work, config.ConfigFileName), []byte("output: from-config\n"), 0o644))

	_, _, err := executeCommand(t, "extract", "spl")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(work, "from-env", "SPL.xsd"))
	assert.NoDirExists(t, filepath.Join(work, "from-config"))
}

func TestExtractCmd_DefaultsToBundleID(t *testing.T) {
	work := t.TempDir()
	chdir(t, work)
	t.Setenv(EnvOutput, "")

	_, _, err := executeCommand(t, "extract", "spl")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(work, "spl", "SPL.xsd"))
}

func TestExtractCmd_HelpListsOutputPrecedence(t *testing.T) {
	stdout, _, err := executeCommand(t, "extract", "--help")
	require.NoError(t, err)

	env := strings.Index(stdout, "XMLSCHEMAS_OUTPUT")
	cfg := strings.Index(stdout, "xmlschemas.yaml")
	id := strings.Index(stdout, "then the bundle ID")
	require.True(t, env >= 0 && cfg >= 0 && id >= 0, stdout)
	assert.Less(t, env, cfg)
	assert.Less(t, cfg, id)
}

func TestExtractCmd_InvalidConfig(t *testing.T) {
	work := t.TempDir()
	chdir(t, work)
	require.NoError(t, os.WriteFile(filepath.Join(work, config.ConfigFileName), []byte("{{invalid"), 0o644))

	_, _, err := executeCommand(t, "extract", "spl", filepath.Join(work, "out"))
	require.ErrorIs(t, err, schemas.ErrInvalidConfig)
	assert.Equal(t, schemas.ExitConfigError, schemas.ExitCodeForError(err))
}

func TestArchiveCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "spl.tar.gz")

	stdout, _, err := executeCommand(t, "archive", "spl", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Archived 2 files")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	gr, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gr)

	var names []string
	for {
		hdr, err := tr.Next()
		if err != nil {
			break
		}
		names = append(names, hdr.Name)
	}
	assert.Equal(t, spl.Spl().ListPaths(), names)
}

func TestArchiveCmd_Stdout(t *testing.T) {
	stdout, _, err := executeCommand(t, "archive", "spl", "-")
	require.NoError(t, err)

	gr, err := gzip.NewReader(strings.NewReader(stdout))
	require.NoError(t, err)
	hdr, err := tar.NewReader(gr).Next()
	require.NoError(t, err)
	assert.Equal(t, "SPL.xsd", hdr.Name)
}

func TestManifestCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, "manifest", "spl")
	require.NoError(t, err)

	m, err := manifest.Decode(strings.NewReader(stdout), manifest.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "R2b", m.Version)
	assert.Equal(t, spl.Spl().ListPaths(), []string{m.Files[0].Path, m.Files[1].Path})
}

func TestManifestCmd_YAML(t *testing.T) {
	stdout, _, err := executeCommand(t, "manifest", "spl", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: SPL")
	assert.Contains(t, stdout, "path: SPL.xsd")
}

func TestVerifyCmd(t *testing.T) {
	dir := t.TempDir()
	_, err := spl.Spl().WriteToDirectory(dir)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "verify", "spl", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "matches spl (2 files)")
}

func TestVerifyCmd_Mismatch(t *testing.T) {
	dir := t.TempDir()
	_, err := spl.Spl().WriteToDirectory(dir)
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, "SPL.xsd")))

	stdout, _, err := executeCommand(t, "verify", "spl", dir)
	require.ErrorIs(t, err, schemas.ErrVerifyFailed)
	assert.Equal(t, schemas.ExitVerifyFailed, schemas.ExitCodeForError(err))
	assert.Contains(t, stdout, "SPL.xsd: missing")
}

// extractWithManifest extracts spl with a json manifest and returns the directory.
func extractWithManifest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, _, err := executeCommand(t, "extract", "spl", dir, "--manifest")
	require.NoError(t, err)
	return dir
}

// rewriteManifest decodes dir/manifest.json, applies edit and writes it back.
func rewriteManifest(t *testing.T, dir string, edit func(m *manifest.Manifest)) {
	t.Helper()
	path := filepath.Join(dir, "manifest.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	m, err := manifest.Decode(bytes.NewReader(data), manifest.FormatJSON)
	require.NoError(t, err)

	edit(m)

	var buf bytes.Buffer
	require.NoError(t, manifest.Encode(&buf, m, manifest.FormatJSON))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// archiveBundle writes bundle id to a tar.gz in a temp dir and returns its path.
func archiveBundle(t *testing.T, id string) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), id+".tar.gz")
	_, _, err := executeCommand(t, "archive", id, out)
	require.NoError(t, err)
	return out
}

func TestVerifyCmd_UsesRecordedManifest(t *testing.T) {
	dir := extractWithManifest(t)

	stdout, stderr, err := executeCommand(t, "verify", "spl", dir, "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "matches spl (2 files)")
	assert.Contains(t, stderr, "Using recorded manifest "+filepath.Join(dir, "manifest.json"))
}

func TestVerifyCmd_StaleRecordedManifest(t *testing.T) {
	dir := extractWithManifest(t)
	rewriteManifest(t, dir, func(m *manifest.Manifest) {
		m.Files[0].SHA256 = strings.Repeat("0", 64)
	})

	stdout, _, err := executeCommand(t, "verify", "spl", dir)
	require.ErrorIs(t, err, schemas.ErrVerifyFailed)
	assert.Contains(t, stdout, "manifest.json: SPL.xsd: checksum")
}

func TestVerifyCmd_RecordedManifestEscapesDirectory(t *testing.T) {
	dir := extractWithManifest(t)
	rewriteManifest(t, dir, func(m *manifest.Manifest) {
		m.Files = append(m.Files, manifest.Entry{Path: "../outside.xsd", Size: 1})
	})

	_, _, err := executeCommand(t, "verify", "spl", dir)
	require.ErrorIs(t, err, schemas.ErrInvalidPath)
	assert.Contains(t, err.Error(), `"../outside.xsd"`)
}

func TestVerifyCmd_YAMLRecordedManifest(t *testing.T) {
	dir := t.TempDir()
	_, _, err := executeCommand(t, "extract", "spl", dir, "--manifest", "--format", "yaml")
	require.NoError(t, err)

	_, stderr, err := executeCommand(t, "verify", "spl", dir, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "manifest.yaml")
}

func TestVerifyCmd_Strict(t *testing.T) {
	dir := extractWithManifest(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.xsd"), []byte("<x/>"), 0o644))

	_, _, err := executeCommand(t, "verify", "spl", dir)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "verify", "spl", dir, "--strict")
	require.ErrorIs(t, err, schemas.ErrVerifyFailed)
	assert.Contains(t, stdout, "extra.xsd: extra")
	assert.NotContains(t, stdout, "manifest.json: extra")
}

func TestVerifyCmd_Archive(t *testing.T) {
	out := archiveBundle(t, "spl")

	stdout, _, err := executeCommand(t, "verify", "spl", "--archive", out, "--strict")
	require.NoError(t, err)
	assert.Contains(t, stdout, out+" matches spl (2 files)")
}

func TestVerifyCmd_ArchiveOfOtherBundle(t *testing.T) {
	out := archiveBundle(t, "docbook")

	stdout, _, err := executeCommand(t, "verify", "spl", "--archive", out, "--strict")
	require.ErrorIs(t, err, schemas.ErrVerifyFailed)
	assert.Contains(t, stdout, "SPL.xsd: missing")
	assert.Contains(t, stdout, "sch/docbook.sch: extra")
}

func TestVerifyCmd_TargetArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no target", []string{"verify", "spl"}},
		{"dir and archive", []string{"verify", "spl", t.TempDir(), "--archive", "spl.tar.gz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, schemas.ExitUsageError, schemas.ExitCodeForError(err))
		})
	}
}

func TestFilesCmd_Archive(t *testing.T) {
	out := archiveBundle(t, "spl")

	stdout, _, err := executeCommand(t, "files", "--archive", out)
	require.NoError(t, err)
	assert.Equal(t, "SPL.xsd\ncoreschemas/datatypes.xsd\n", stdout)

	stdout, _, err = executeCommand(t, "files", "--archive", out, "--ext", "XSD")
	require.NoError(t, err)
	assert.Equal(t, "SPL.xsd\ncoreschemas/datatypes.xsd\n", stdout)
}

func TestFilesCmd_ArchiveErrors(t *testing.T) {
	_, _, err := executeCommand(t, "files", "--archive", filepath.Join(t.TempDir(), "missing.tar.gz"))
	require.ErrorIs(t, err, schemas.ErrNotFound)

	_, _, err = executeCommand(t, "files", "spl", "--archive", "spl.tar.gz")
	require.Error(t, err)
	assert.Equal(t, schemas.ExitUsageError, schemas.ExitCodeForError(err))
}

func TestFilesCmd_ArchiveShadowedEntry(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for _, e := range []struct{ name, body string }{{"a", "file-a"}, {"a/b.xsd", "<b/>"}} {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: e.name, Typeflag: tar.TypeReg, Mode: 0o644, Size: int64(len(e.body))}))
		_, err := tw.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())

	out := filepath.Join(t.TempDir(), "bad.tar.gz")
	require.NoError(t, os.WriteFile(out, buf.Bytes(), 0o644))

	_, _, err := executeCommand(t, "files", "--archive", out)
	require.ErrorIs(t, err, archive.ErrUnsafeArchive)
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := executeCommand(t, "frobnicate")
	require.Error(t, err)
	assert.Equal(t, schemas.ExitUsageError, schemas.ExitCodeForError(err))
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "xmlschemas "), stdout)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
