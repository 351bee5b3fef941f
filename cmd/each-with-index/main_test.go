package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runMain(t *testing.T, stdin string, argv ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, mainErr(argv, strings.NewReader(stdin), &out))
	return out.String()
}

func TestStdin(t *testing.T) {
	require.Equal(t, "0\ta\n1\tb\n", runMain(t, "a\nb\n"))
}

func TestOffsetAndLazy(t *testing.T) {
	want := "5\tx\n6\ty\n"
	require.Equal(t, want, runMain(t, "x\ny", "--offset", "5"))
	require.Equal(t, want, runMain(t, "x\ny", "--offset", "5", "--lazy"))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	require.NoError(t, os.WriteFile(first, []byte("one\ntwo\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("three\n"), 0o644))
	require.Equal(t, "0\tone\n1\ttwo\n0\tthree\n", runMain(t, "", first, second))
}

func TestDump(t *testing.T) {
	out := runMain(t, "apple\n", "--dump")
	require.Contains(t, out, "Elem: (string) (len=5) \"apple\"")
	require.Contains(t, out, "Index: (int) 0")
}

func TestMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := mainErr([]string{filepath.Join(t.TempDir(), "nope")}, strings.NewReader(""), &out)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, out.String())
}

func TestEmptyInput(t *testing.T) {
	require.Empty(t, runMain(t, "", "--debug"))
}
