package gclp

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Foo string `json:"foo" yaml:"foo" toml:"foo"`
	Bar int    `json:"bar" yaml:"bar" toml:"bar"`
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o640))
	return path
}

func TestFile(t *testing.T) {
	cases := []struct {
		about   string
		name    string
		content string
	}{
		{"json", "config.json", `{"foo": "bar", "bar": 2}`},
		{"yaml", "config.yaml", "foo: bar\nbar: 2\n"},
		{"yml", "config.yml", "foo: bar\nbar: 2\n"},
		{"toml", "config.toml", "foo = \"bar\"\nbar = 2\n"},
		{"toml without extension", "config", "foo = \"bar\"\nbar = 2\n"},
	}
	for _, c := range cases {
		t.Run(c.about, func(t *testing.T) {
			path := writeFile(t, c.name, []byte(c.content))
			var a File[testConfig, DisableLiveUpdate]
			require.NoError(t, a.FromString(path))
			assert.Equal(t, &testConfig{Foo: "bar", Bar: 2}, a.Get())
			assert.Equal(t, path, a.Path())
		})
	}
}

func TestFileErrors(t *testing.T) {
	var missing File[testConfig, DisableLiveUpdate]
	assert.Error(t, missing.FromString(filepath.Join(t.TempDir(), "none.json")))

	path := writeFile(t, "bad.json", []byte(`{"foo": "bar"`))
	var bad File[testConfig, DisableLiveUpdate]
	assert.Error(t, bad.FromString(path))
	assert.Nil(t, bad.Get())

	good := writeFile(t, "good.json", []byte(`{"foo": "bar"}`))
	var twice File[testConfig, DisableLiveUpdate]
	require.NoError(t, twice.FromString(good))
	assert.ErrorIs(t, twice.FromString(good), errFileLoaded)
}

func TestByteFile(t *testing.T) {
	path := writeFile(t, "config1", []byte{0xa, 0xd, 0xb, 0xc})
	var a File[[]byte, DisableLiveUpdate]
	require.NoError(t, a.FromString(path))
	assert.Equal(t, &[]byte{0xa, 0xd, 0xb, 0xc}, a.Get())
}

func TestFileLiveUpdate(t *testing.T) {
	path := writeFile(t, "config2.json", []byte(`{"foo": "bar"}`))
	var a File[testConfig, EnableLiveUpdate]
	require.NoError(t, a.FromString(path))
	defer a.Close()

	oldPtr := a.Get()
	assert.Equal(t, &testConfig{Foo: "bar"}, oldPtr, "test init content")

	require.NoError(t, os.WriteFile(path, []byte(`{"foo": "baz"}`), 0o640))
	<-a.UpdateEvents() // wait update done
	// a write may be seen as truncate then write
	assert.Eventually(t, func() bool {
		return a.Get().Foo == "baz"
	}, time.Second, 10*time.Millisecond, "test new value")
	assert.Equal(t, &testConfig{Foo: "bar"}, oldPtr, "test old value")
}

func TestFileLiveUpdateKeepsLastGood(t *testing.T) {
	path := writeFile(t, "config3.json", []byte(`{"foo": "bar"}`))
	var a File[testConfig, EnableLiveUpdate]
	require.NoError(t, a.FromString(path))
	defer a.Close()

	require.NoError(t, os.WriteFile(path, []byte(`{"foo": "baz"`), 0o640))
	<-a.UpdateEvents()
	assert.Equal(t, &testConfig{Foo: "bar"}, a.Get(), "invalid content is not loaded")
}

func TestFileParameter(t *testing.T) {
	path := writeFile(t, "app.yaml", []byte("foo: from yaml\nbar: 7\n"))
	conf := Required[*File[testConfig, DisableLiveUpdate]]([]rune{'c'}, []string{"config"}, "config file")
	p := New("TestCLI", conf)

	p.Parse("TestCLI --config " + path)
	require.Equal(t, NoError, p.Code(), p.ErrorMessage())
	assert.Equal(t, &testConfig{Foo: "from yaml", Bar: 7}, conf.Value().Get())

	p.Clear()
	p.Parse("TestCLI -c " + filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, IncompatibleArgument, p.Code())
}

func TestFileField(t *testing.T) {
	path := writeFile(t, "app.toml", []byte("foo = \"from toml\"\n"))
	var s struct {
		Config *File[testConfig, DisableLiveUpdate] `short:"c" required:"true"`
	}
	res, err := BuildParser("TestCLI", &s).ParseArgs([]string{"TestCLI", "-c", path})
	require.NoError(t, err)
	assert.Equal(t, "from toml", res.Config.Get().Foo)
	assert.Same(t, res.Config, s.Config)
}
