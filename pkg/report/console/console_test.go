package console_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/parissa-gb/yaml-compare/pkg/diff"
	"github.com/parissa-gb/yaml-compare/pkg/report/console"
	"github.com/parissa-gb/yaml-compare/pkg/yamldoc"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func compare(t *testing.T, left, right string) diff.Result {
	t.Helper()

	leftDoc, err := yamldoc.Parse([]byte(left))
	require.NoError(t, err)

	rightDoc, err := yamldoc.Parse([]byte(right))
	require.NoError(t, err)

	return diff.Compare(leftDoc, rightDoc, "left.yaml", "right.yaml")
}

func TestRender_NoDifferences(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	console.Render(&out, compare(t, "a: 1\n", "a: 1\n"), console.Options{})

	got := out.String()
	require.Contains(t, got, "comparing left.yaml vs right.yaml")
	require.Contains(t, got, "no differences found")
	require.NotContains(t, got, "difference(s)")
}

func TestRender_TableAndSummary(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	result := compare(t, "a: 1\nb:\n  c: 2\n", "a: 1\nb:\n  c: 3\nd: 4\n")
	console.Render(&out, result, console.Options{Width: 100})

	got := out.String()
	require.Contains(t, got, "PATH")
	require.Contains(t, got, "left.yaml")
	require.Contains(t, got, "right.yaml")
	require.Contains(t, got, "b.c")
	require.Contains(t, got, "changed")
	require.Contains(t, got, "added")
	require.Contains(t, got, "2 difference(s): 1 added, 0 removed, 1 changed, 0 type changed")
}

func TestRender_RowNumbersMatchRecordIndices(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	result := compare(t, "a: 1\nb: 2\n", "a: 9\nb: 8\n")
	require.Equal(t, 1, result.Records[0].Index)
	require.Equal(t, 2, result.Records[1].Index)

	console.Render(&out, result, console.Options{Width: 100})

	got := out.String()
	require.Contains(t, got, "1")
	require.Contains(t, got, "2")
}

func TestRender_LongValuesAreTruncated(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	long := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	result := compare(t, "a: "+long+"\n", "a: short\n")

	console.Render(&out, result, console.Options{Width: 80})

	require.Contains(t, out.String(), "…")
	require.NotContains(t, out.String(), long)
}

func TestRender_IsDeterministic(t *testing.T) {
	t.Parallel()

	result := compare(t, "a: 1\nlist: [1, 2]\n", "a: 2\nlist: [1]\nnew: x\n")

	var first, second bytes.Buffer

	console.Render(&first, result, console.Options{Width: 100})
	console.Render(&second, result, console.Options{Width: 100})

	require.Equal(t, first.String(), second.String())
}

func TestRender_Snapshot(t *testing.T) {
	result := compare(
		t,
		"a: 1\nb:\n  c: 2\nold: gone\n",
		"a: 1\nb:\n  c: 3\nfresh: here\n",
	)

	var out bytes.Buffer

	console.Render(&out, result, console.Options{Width: 100})
	snaps.MatchSnapshot(t, out.String())
}
