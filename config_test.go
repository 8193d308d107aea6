package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figedit/internal/editor"
)

func TestParseConfig(t *testing.T) {
	input := `
# figedit settings
save_dir = /tmp/figures
color = #FF000080
shape = rectangle
export_width = 640
export_height = 480
export_scale = 2
caption = "my figure"
snap_distance = 4
confirmations = false
unknown = ignored
`
	config, err := parseConfig(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/figures", config.SaveDirectory)
	assert.Equal(t, color.RGBA{R: 255, A: 128}, config.Color)
	assert.Equal(t, editor.KindRectangle, config.Shape)
	assert.Equal(t, 640, config.ExportWidth)
	assert.Equal(t, 480, config.ExportHeight)
	assert.Equal(t, 2.0, config.ExportScale)
	assert.Equal(t, "my figure", config.Caption)
	assert.Equal(t, 4.0, config.SnapDistance)
	assert.False(t, config.Confirmations)
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := parseConfig(strings.NewReader("# nothing here\n\nnot a pair\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
	assert.Equal(t, editor.DefaultColor, config.Color)
	assert.Equal(t, editor.KindCircle, config.Shape)
	assert.True(t, config.Confirmations)
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string]string{
		"color":  "color = red",
		"shape":  "shape = triangle",
		"width":  "export_width = wide",
		"scale":  "export_scale = -1",
		"length": "color = #FFF",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseConfig(strings.NewReader("caption = x\n" + input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "figeditrc")
	saveDir := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(path, []byte("save_dir = "+saveDir+"\nshape = rect\n"), 0644))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, saveDir, config.SaveDirectory)
	assert.Equal(t, editor.KindRectangle, config.Shape)

	savePath, err := config.GetSavePath("figure.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(saveDir, "figure.png"), savePath)
	assert.DirExists(t, saveDir)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figeditrc")
	require.NoError(t, os.WriteFile(path, []byte("color = blue\n"), 0644))

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestGetSavePathWithoutDirectory(t *testing.T) {
	config := defaultConfig()
	path, err := config.GetSavePath("figure.pdf")
	require.NoError(t, err)
	assert.Equal(t, "figure.pdf", path)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1E90FF")
	require.NoError(t, err)
	assert.Equal(t, editor.DefaultColor, c)
	assert.Equal(t, "#1E90FF", toHex(c))

	c, err = parseHexColor(" #00000080\n")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{A: 128}, c)
	assert.Equal(t, "#00000080", toHex(c))

	for _, bad := range []string{"", "1E90FF", "#GGGGGG", "#12345"} {
		_, err := parseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestWithExt(t *testing.T) {
	assert.Equal(t, "figure.png", withExt("figure", ".png"))
	assert.Equal(t, "figure.PNG", withExt("figure.PNG", ".png"))
	assert.Equal(t, "figure.png.pdf", withExt("figure.png", ".pdf"))
}
