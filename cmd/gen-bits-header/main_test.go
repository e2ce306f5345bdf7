package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gen-bits-header/internal/bits"
	"gen-bits-header/internal/diagnostic"
	"gen-bits-header/internal/genxml"
)

var sources = []string{
	filepath.Join("testdata", "gen6.xml"),
	filepath.Join("testdata", "gen75.xml"),
	filepath.Join("testdata", "gen8.xml"),
	filepath.Join("testdata", "gen9.xml"),
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Golden(t *testing.T) {
	out := filepath.Join(t.TempDir(), "genX_bits.h")

	code, stdout, stderr := runCLI(t, append([]string{"-o", out}, sources...)...)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("testdata", "genX_bits.h.golden"))
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got))
}

func TestRun_ArgumentOrderDoesNotMatter(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a", "bits.h")
	second := filepath.Join(dir, "b", "bits.h")

	code, _, stderr := runCLI(t, append([]string{"-o", first}, sources...)...)
	require.Equal(t, 0, code, stderr)

	reversed := []string{sources[3], sources[1], sources[0], sources[2]}
	code, _, stderr = runCLI(t, append([]string{"-o", second}, reversed...)...)
	require.Equal(t, 0, code, stderr)

	a, err := os.ReadFile(first)
	require.NoError(t, err)

	b, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRun_Stdout(t *testing.T) {
	for _, args := range [][]string{
		sources[2:3],
		append([]string{"-o", "-"}, sources[2]),
	} {
		code, stdout, stderr := runCLI(t, args...)
		require.Equal(t, 0, code, stderr)

		assert.Contains(t, stdout, "#ifndef STDOUT\n")
		assert.Contains(t, stdout, "#define GEN8_RENDER_SURFACE_STATE_SurfacePitch_bits ")
	}
}

func TestRun_ExcludedContainersNeverAppear(t *testing.T) {
	code, stdout, stderr := runCLI(t, sources...)
	require.Equal(t, 0, code, stderr)

	assert.NotContains(t, stdout, "STREAMOUT")
	assert.NotContains(t, stdout, "3DSTATE_SO")
	assert.NotContains(t, stdout, "_SO_")
}

func TestRun_AliasLaw(t *testing.T) {
	code, stdout, stderr := runCLI(t, sources[1])
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout,
		"#define GEN7_5_RENDER_SURFACE_STATE_MCSSurfacePitch_bits          9\n")
	assert.Contains(t, stdout,
		"#define GEN7_5_RENDER_SURFACE_STATE_AuxiliarySurfacePitch_bits    9 /* alias of MCSSurfacePitch */\n")
}

func TestRun_NoSources(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bits.h")

	code, stdout, stderr := runCLI(t, "-o", out)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "error: no source files\n"))
	assert.Contains(t, stderr, "usage: gen-bits-header")

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_BadFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "-bogus", sources[0])
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "flag provided but not defined")
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "-config")
}

func TestRun_FailureLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bits.h")
	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o644))

	broken := filepath.Join(dir, "broken.xml")
	require.NoError(t, os.WriteFile(broken, []byte(`<genxml gen="8"><struct name="S">`), 0o644))

	code, stdout, stderr := runCLI(t, "-o", out, sources[0], broken)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error: failed to parse genxml file")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(got))

	// stdout gets nothing either
	code, stdout, _ = runCLI(t, sources[0], broken)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

func TestRun_InvalidBits(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.xml")
	require.NoError(t, os.WriteFile(bad,
		[]byte(`<genxml gen="8"><struct name="S"><field name="Surface Pitch" start="9" end="3"/></struct></genxml>`), 0o644))

	code, _, stderr := runCLI(t, bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid bit range")
}

func TestRun_MissingSource(t *testing.T) {
	code, _, stderr := runCLI(t, filepath.Join(t.TempDir(), "nope.xml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to read genxml file")
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bits.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`version: "1"
guard: CUSTOM_BITS_H
copyright: "Copyright (C) 2026 Example Corp"
exclude:
  - "HIER_DEPTH"
`), 0o644))

	code, stdout, stderr := runCLI(t, append([]string{"-config", cfg}, sources...)...)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, " * Copyright (C) 2026 Example Corp\n")
	assert.Contains(t, stdout, "#endif /* CUSTOM_BITS_H */\n")
	assert.NotContains(t, stdout, "HIER_DEPTH")
	assert.Contains(t, stdout, "GEN8_3DSTATE_DEPTH_BUFFER_SurfacePitch_bits")
}

func TestRun_BadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bits.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("exclude: [\"(\"]\n"), 0o644))

	code, stdout, stderr := runCLI(t, "-config", cfg, sources[0])
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid config")
}

func TestRun_DuplicatesWarnAndEmitTwice(t *testing.T) {
	code, stdout, stderr := runCLI(t, sources[0], sources[0])
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stderr, "token declared more than once")
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "code=duplicate_token subject=GEN6_3DSTATE_DEPTH_BUFFER_SurfacePitch_bits")
	assert.Equal(t, 2, strings.Count(stdout, "#define GEN6_3DSTATE_DEPTH_BUFFER_SurfacePitch_bits "))
}

func TestRun_VerboseAndDump(t *testing.T) {
	code, _, stderr := runCLI(t, "-v", "-dump", sources[0])
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "code=container_excluded")
	assert.Contains(t, stderr, "subject=3DSTATE_SO_BUFFER")
	assert.Contains(t, stderr, "fields=2")
	assert.Contains(t, stderr, "GenerationGroup")
}

func TestDuplicateWarnings(t *testing.T) {
	reg := bits.NewRegistry()
	f := bits.Field{Gen: genxml.Generation(80), Container: "RSS", Name: "Surface Pitch", Start: 0, End: 7}
	reg.Add(f)
	assert.Empty(t, duplicateWarnings(reg).Warnings)

	reg.Add(f)
	diags := duplicateWarnings(reg)
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.SeverityWarning, diags.Warnings[0].Severity)
	assert.Equal(t, "duplicate_token", diags.Warnings[0].Code)
	assert.Equal(t, "GEN8_RSS_SurfacePitch_bits", diags.Warnings[0].Subject)
}

func TestLogDiagnostics(t *testing.T) {
	var diags diagnostic.Diagnostics
	diags.AddInfo("container_excluded", "instruction skipped", "gen8.xml", "3DSTATE_SO_DECL_LIST")
	diags.AddWarning("duplicate_token", "token declared more than once", "", "GEN8_A_bits")

	var quiet bytes.Buffer
	logDiagnostics(newLogger(&quiet, false), diags)
	assert.NotContains(t, quiet.String(), "container_excluded")
	assert.Contains(t, quiet.String(), "subject=GEN8_A_bits")

	var verbose bytes.Buffer
	logDiagnostics(newLogger(&verbose, true), diags)
	assert.Contains(t, verbose.String(), "source=gen8.xml subject=3DSTATE_SO_DECL_LIST")
}
