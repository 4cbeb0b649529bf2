package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeINI(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))
}

func TestResolveMergePrecedence(t *testing.T) {
	t.Setenv("NOVA_CONFIG_DIR", "/global")
	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/global/config", "[core]\nremote = https://a.example.com\ntoken = token-a\n")
	writeINI(t, fs, "/work/.nova/config", "[core]\nremote = https://b.example.com\n")

	eff, err := NewResolver(fs, "/work").Resolve(map[string]string{KeyToken: "token-c"})
	require.NoError(t, err)
	assert.Equal(t, "https://b.example.com", eff.Remote)
	assert.Equal(t, "token-c", eff.Token)
}

func TestResolveMissingToken(t *testing.T) {
	t.Setenv("NOVA_CONFIG_DIR", "/global")
	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/global/config", "[core]\nremote = https://a.example.com\n")

	_, err := NewResolver(fs, "/work").Resolve(nil)
	var keyErr *KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, KeyToken, keyErr.Key)
	assert.Contains(t, err.Error(), "token")
}

func TestResolveMissingRemote(t *testing.T) {
	t.Setenv("NOVA_CONFIG_DIR", "/global")
	fs := afero.NewMemMapFs()

	_, err := NewResolver(fs, "/work").Resolve(map[string]string{KeyToken: "tok"})
	var keyErr *KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, KeyRemote, keyErr.Key)
}

func TestResolveBothFilesAbsent(t *testing.T) {
	t.Setenv("NOVA_CONFIG_DIR", "/global")
	fs := afero.NewMemMapFs()

	eff, err := NewResolver(fs, "/work").Resolve(map[string]string{
		KeyRemote: "https://c.example.com",
		KeyToken:  "tok",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://c.example.com", eff.Remote)
	assert.Equal(t, "tok", eff.Token)
	assert.Empty(t, eff.Collection)
}

func TestResolveCollectionAndName(t *testing.T) {
	t.Setenv("NOVA_CONFIG_DIR", "/global")
	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/work/.nova/config",
		"[core]\nremote = https://a.example.com\ntoken = tok\ncollection = weather\nname = hourly\n")

	eff, err := NewResolver(fs, "/work").Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "weather", eff.Collection)
	assert.Equal(t, "hourly", eff.Name)
}

func TestMergeCoreIgnoresUnknownOverrides(t *testing.T) {
	core := mergeCore(
		map[string]string{"remote": "a", "editor": "vi"},
		map[string]string{},
		map[string]string{"editor": "emacs", "token": "t"},
	)
	assert.Equal(t, "vi", core["editor"])
	assert.Equal(t, "t", core["token"])
	assert.Equal(t, "a", core["remote"])
}

func TestMergeCoreEmptyOverrideIgnored(t *testing.T) {
	core := mergeCore(
		map[string]string{"token": "from-global"},
		nil,
		map[string]string{"token": ""},
	)
	assert.Equal(t, "from-global", core["token"])
}
