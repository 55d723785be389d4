package inspect

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap/zaptest"

	"cldump/cache"
	"cldump/collog"
	"cldump/config"
	"cldump/defs"
	"cldump/state"
	"cldump/testutil"
)

func snapshot() *testutil.Snapshot {
	return testutil.SinglePage().
		Raw(testutil.GroupEnums, 1003, testutil.EncodeStringEnum("a", "b")).
		Raw(testutil.GroupEnums, 1004, []byte{0}).
		Raw(testutil.GroupStructs, 502, []byte{77, 1}).
		Raw(testutil.GroupItems, 12, []byte{1, 0xff})
}

func openStore(t *testing.T) *cache.Store {
	t.Helper()
	src := snapshot().WriteDir(t, filepath.Join(t.TempDir(), "cache"))
	store, err := cache.Open(context.Background(), src, config.SnapshotFormatAuto, 1<<20, zaptest.NewLogger(t), cache.KeepUndecodable())
	require.NoError(t, err)
	return store
}

func TestDescribe(t *testing.T) {
	store := openStore(t)

	tests := []struct {
		name  string
		group cache.Group
		id    int
		want  string
	}{
		{
			name:  "struct",
			group: cache.GroupStructs,
			id:    501,
			want:  "struct 501\n  params: 2\n    689 = \"Page A\"\n    690 = 1001\n",
		},
		{
			name:  "int enum",
			group: cache.GroupEnums,
			id:    1001,
			want: "enum 1001\n  key type: 'i'\n  value type: 'i'\n  default: -1\n  entries: 2\n" +
				"    0 -> 10\n    1 -> 11\n",
		},
		{
			name:  "string enum",
			group: cache.GroupEnums,
			id:    1003,
			want: "enum 1003\n  key type: 'i'\n  value type: 's'\n  default: \"\"\n  entries: 2\n" +
				"    0 -> \"a\"\n    1 -> \"b\"\n",
		},
		{
			name:  "item",
			group: cache.GroupItems,
			id:    10,
			want: "item 10\n  name: \"Sword\"\n  cost: 1\n  option 2: \"Take\"\n" +
				"  interface option 1: \"Wield\"\n  interface option 4: \"Drop\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Describe(store, tt.group, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribe_Errors(t *testing.T) {
	store := openStore(t)

	_, err := Describe(store, cache.GroupStructs, 999)
	assert.ErrorIs(t, err, collog.ErrRecordNotFound)
	_, err = Describe(store, cache.GroupEnums, 999)
	assert.ErrorIs(t, err, collog.ErrRecordNotFound)
	_, err = Describe(store, cache.GroupItems, 999)
	assert.ErrorIs(t, err, collog.ErrRecordNotFound)

	_, err = Describe(store, cache.Group("models"), 1)
	assert.ErrorIs(t, err, collog.ErrConfig)
}

func TestDescribe_Undecodable(t *testing.T) {
	store := openStore(t)

	tests := []struct {
		name  string
		group cache.Group
		id    int
		head  string
		dump  string
	}{
		{name: "struct", group: cache.GroupStructs, id: 502, head: "struct 502: undecodable\n", dump: "    00000000  4d 01 "},
		{name: "enum", group: cache.GroupEnums, id: 1004, head: "enum 1004: undecodable\n", dump: "    00000000  00 "},
		{name: "item", group: cache.GroupItems, id: 12, head: "item 12: undecodable\n", dump: "    00000000  01 ff "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Describe(store, tt.group, tt.id)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, tt.head), got)
			assert.Contains(t, got, "\n  error: ")
			assert.Contains(t, got, defs.ErrMalformed.Error())
			assert.Contains(t, got, tt.dump)
		})
	}
}

func TestList(t *testing.T) {
	store := openStore(t)

	var buf bytes.Buffer
	require.NoError(t, List(&buf, store, cache.GroupEnums))
	assert.Equal(t, "1000\n1001\n1003\n1004\n", buf.String())

	buf.Reset()
	require.NoError(t, List(&buf, store, cache.GroupItems))
	assert.Equal(t, "10\n11\n12\n", buf.String())
}

func runInspect(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	require.NoError(t, err)
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t)
	env.Cfg = cfg

	var out bytes.Buffer
	cmd := &cli.Command{
		Name:   "inspect",
		Action: Run,
		Writer: &out,
		Flags:  []cli.Flag{&cli.StringFlag{Name: "cachedir"}},
	}
	err = cmd.Run(ctx, append([]string{"inspect"}, args...))
	return out.String(), err
}

func TestRun(t *testing.T) {
	src := snapshot().WriteZip(t, filepath.Join(t.TempDir(), "cache.zip"))

	out, err := runInspect(t, "--cachedir", src, "structs")
	require.NoError(t, err)
	assert.Equal(t, "471\n501\n502\n", out)

	out, err = runInspect(t, "--cachedir", src, "structs", "502")
	require.NoError(t, err)
	assert.Contains(t, out, "struct 502: undecodable")

	out, err = runInspect(t, "--cachedir", src, "items", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "name: \"Shield\"")
}

func TestRun_Errors(t *testing.T) {
	src := snapshot().WriteDir(t, filepath.Join(t.TempDir(), "cache"))

	tests := []struct {
		name string
		args []string
	}{
		{name: "no cache", args: []string{"structs"}},
		{name: "no group", args: []string{"--cachedir", src}},
		{name: "bad group", args: []string{"--cachedir", src, "models"}},
		{name: "bad id", args: []string{"--cachedir", src, "items", "ten"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runInspect(t, tt.args...)
			assert.ErrorIs(t, err, collog.ErrConfig)
		})
	}

	_, err := runInspect(t, "--cachedir", src, "items", "404")
	assert.ErrorIs(t, err, collog.ErrRecordNotFound)
}
