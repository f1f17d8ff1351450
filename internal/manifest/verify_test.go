package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xmlschemas/internal/checksum"
	"github.com/vvka-141/xmlschemas/internal/files/filesystem"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

func TestVerify_RoundTrip(t *testing.T) {
	b := newTestBundle(t)
	calc := checksum.New()
	dir := t.TempDir()

	n, err := b.WriteToDirectory(dir)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	mismatches, err := Verify(Build(b, calc), filesystem.NewOSFileSystem(), calc, dir)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestVerify_ExtraFilesIgnored(t *testing.T) {
	b := newTestBundle(t)
	calc := checksum.New()
	dir := t.TempDir()

	_, err := b.WriteToDirectory(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.xsd"), []byte("<x/>"), 0o644))

	mismatches, err := Verify(Build(b, calc), filesystem.NewOSFileSystem(), calc, dir)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestVerify_Mismatches(t *testing.T) {
	b := newTestBundle(t)
	calc := checksum.New()
	m := Build(b, calc)

	tests := []struct {
		name   string
		mutate func(t *testing.T, dir string)
		want   []Mismatch
	}{
		{
			name: "missing file",
			mutate: func(t *testing.T, dir string) {
				require.NoError(t, os.Remove(filepath.Join(dir, "b.sch")))
			},
			want: []Mismatch{{Path: "b.sch", Reason: ReasonMissing}},
		},
		{
			name: "size changed",
			mutate: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "x.xsd"), []byte("<xsd />"), 0o644))
			},
			want: []Mismatch{{Path: "a/x.xsd", Reason: ReasonSize}},
		},
		{
			name: "content changed",
			mutate: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "b.sch"), []byte("<RULE/>"), 0o644))
			},
			want: []Mismatch{{Path: "b.sch", Reason: ReasonChecksum}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := b.WriteToDirectory(dir)
			require.NoError(t, err)
			tt.mutate(t, dir)

			mismatches, err := Verify(m, filesystem.NewOSFileSystem(), calc, dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mismatches)
		})
	}
}

func TestVerify_EmptyDirectory(t *testing.T) {
	calc := checksum.New()
	m := Build(newTestBundle(t), calc)

	mismatches, err := Verify(m, filesystem.NewOSFileSystem(), calc, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []Mismatch{
		{Path: "a/x.xsd", Reason: ReasonMissing},
		{Path: "b.sch", Reason: ReasonMissing},
	}, mismatches)
}

func TestMismatch_String(t *testing.T) {
	assert.Equal(t, "b.sch: checksum", Mismatch{Path: "b.sch", Reason: ReasonChecksum}.String())
}

func TestVerify_RejectsUnsafeEntryPaths(t *testing.T) {
	calc := checksum.New()
	outside := filepath.Join(t.TempDir(), "outside.xsd")
	require.NoError(t, os.WriteFile(outside, []byte("<x/>"), 0o644))

	for _, p := range []string{"", ".", "/etc/passwd", outside, "../outside.xsd", "a/../../outside.xsd", "a/./x.xsd", `a\x.xsd`} {
		t.Run(p, func(t *testing.T) {
			m := &Manifest{Files: []Entry{{Path: "b.sch", Size: 7}, {Path: p, Size: 4}}}

			mismatches, err := Verify(m, filesystem.NewOSFileSystem(), calc, t.TempDir())
			require.ErrorIs(t, err, schemas.ErrInvalidPath)
			assert.Empty(t, mismatches)
		})
	}
}

func TestVerify_InMemoryTree(t *testing.T) {
	b := newTestBundle(t)
	calc := checksum.New()
	tree := fstest.MapFS{
		"a/x.xsd": {Data: []byte("<xsd/>")},
		"b.sch":   {Data: []byte("<rule!>")},
	}

	mismatches, err := Verify(Build(b, calc), filesystem.NewFSFileSystem(tree, "."), calc, ".")
	require.NoError(t, err)
	assert.Equal(t, []Mismatch{{Path: "b.sch", Reason: ReasonChecksum}}, mismatches)
}

func TestExtras(t *testing.T) {
	b := newTestBundle(t)
	m := Build(b, checksum.New())
	dir := t.TempDir()

	_, err := b.WriteToDirectory(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "stray.xsd"), []byte("<x/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FormatJSON.FileName()), []byte("{}"), 0o644))

	extras, err := Extras(m, filesystem.NewOSFileSystem(), dir)
	require.NoError(t, err)
	assert.Equal(t, []Mismatch{
		{Path: "a/stray.xsd", Reason: ReasonExtra},
		{Path: "notes.txt", Reason: ReasonExtra},
	}, extras)
}

func TestExtras_InMemoryTree(t *testing.T) {
	m := Build(newTestBundle(t), checksum.New())
	tree := fstest.MapFS{
		"a/x.xsd":     {Data: []byte("<xsd/>")},
		"b.sch":       {Data: []byte("<rule/>")},
		"c/extra.rng": {Data: []byte("<grammar/>")},
	}

	extras, err := Extras(m, filesystem.NewFSFileSystem(tree, "."), ".")
	require.NoError(t, err)
	assert.Equal(t, []Mismatch{{Path: "c/extra.rng", Reason: ReasonExtra}}, extras)
}

func TestExtras_MissingDirectory(t *testing.T) {
	m := Build(newTestBundle(t), checksum.New())

	_, err := Extras(m, filesystem.NewOSFileSystem(), filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	want := &Manifest{Files: []Entry{
		{Path: "a.xsd", Size: 3, SHA256: "aaa"},
		{Path: "b.xsd", Size: 3, SHA256: "bbb"},
		{Path: "c.xsd", Size: 3, SHA256: "ccc"},
		{Path: "d.xsd", Size: 3, SHA256: "ddd"},
	}}
	got := &Manifest{Files: []Entry{
		{Path: "a.xsd", Size: 3, SHA256: "aaa"},
		{Path: "b.xsd", Size: 4, SHA256: "bbb"},
		{Path: "c.xsd", Size: 3, SHA256: "CCC"},
		{Path: "only-in-got.xsd", Size: 1, SHA256: "x"},
	}}

	assert.Equal(t, []Mismatch{
		{Path: "b.xsd", Reason: ReasonSize},
		{Path: "c.xsd", Reason: ReasonChecksum},
		{Path: "d.xsd", Reason: ReasonMissing},
	}, Compare(want, got))
	assert.Empty(t, Compare(want, want))
}

func TestReadRecorded(t *testing.T) {
	m := Build(newTestBundle(t), checksum.New())

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, m, format))
			require.NoError(t, os.WriteFile(filepath.Join(dir, format.FileName()), buf.Bytes(), 0o644))

			got, name, err := ReadRecorded(filesystem.NewOSFileSystem(), dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, format.FileName()), name)
			assert.Equal(t, m, got)
		})
	}
}

func TestReadRecorded_PrefersJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(`{"name":"from-json"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte("name: from-yaml\n"), 0o644))

	got, _, err := ReadRecorded(filesystem.NewOSFileSystem(), dir)
	require.NoError(t, err)
	assert.Equal(t, "from-json", got.Name)
}

func TestReadRecorded_None(t *testing.T) {
	got, name, err := ReadRecorded(filesystem.NewOSFileSystem(), t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, name)
}

func TestReadRecorded_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte("{not json"), 0o644))

	_, _, err := ReadRecorded(filesystem.NewOSFileSystem(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest.json")
}

func TestReadRecorded_DirectoryNamedLikeManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "manifest.json"), 0o755))

	_, _, err := ReadRecorded(filesystem.NewOSFileSystem(), dir)
	assert.Error(t, err)
}
