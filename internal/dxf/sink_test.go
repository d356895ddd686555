package dxf

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
	"github.com/yofu/dxf/table"

	"github.com/alexiusacademia/rcbdxf/internal/draw"
	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

func sample() []draw.Command {
	return []draw.Command{
		draw.Line{P1: draw.Point{X: 0, Y: 0}, P2: draw.Point{X: 400, Y: 0}, Layer: "RC大梁"},
		draw.Circle{Center: draw.Point{X: 50, Y: 50}, Radius: 10, Layer: "RC鉄筋"},
		draw.Polyline{
			Points: []draw.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
			Closed: true,
			Layer:  "RC大梁",
		},
		draw.Text{Position: draw.Point{X: 0, Y: -1000}, Height: 100, Value: "G1", Layer: "注釈"},
	}
}

func entityNames(t *testing.T, data string) []string {
	t.Helper()
	re := regexp.MustCompile(`(?m)^\s*0\r?\n(LINE|CIRCLE|LWPOLYLINE|TEXT)\r?$`)
	var names []string
	for _, m := range re.FindAllStringSubmatch(data, -1) {
		names = append(names, m[1])
	}
	return names
}

// layerColor returns the group 62 value of the named layer table record.
func layerColor(t *testing.T, data, name string) string {
	t.Helper()
	re := regexp.MustCompile(`\n2\n` + regexp.QuoteMeta(name) + `\n70\n-?\d+\n62\n(-?\d+)\n`)
	m := re.FindStringSubmatch(data)
	require.NotNil(t, m, "layer %q not found", name)
	return m[1]
}

// firstText returns the group codes of the first TEXT entity.
func firstText(t *testing.T, data string) string {
	t.Helper()
	start := strings.Index(data, "\n0\nTEXT\n")
	require.GreaterOrEqual(t, start, 0, "no TEXT entity")
	body := data[start+len("\n0\nTEXT\n"):]
	if end := strings.Index(body, "\n0\n"); end >= 0 {
		body = body[:end]
	}
	return "\n" + body + "\n"
}

func TestRoleColor(t *testing.T) {
	assert.Equal(t, color.Yellow, RoleColor(draw.RoleConcrete))
	assert.Equal(t, color.Cyan, RoleColor(draw.RoleRebar))
	assert.Equal(t, color.Green, RoleColor(draw.RoleText))
	assert.Equal(t, color.White, RoleColor(draw.RoleOther))
}

func TestSinkWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "G1.dxf")
	sink := Sink{Roles: draw.Roles{
		"RC大梁": draw.RoleConcrete,
		"RC鉄筋": draw.RoleRebar,
		"注釈":   draw.RoleText,
	}}

	require.NoError(t, sink.Write(sample(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	data := string(raw)

	for _, layer := range []string{"RC大梁", "RC鉄筋", "注釈"} {
		assert.Contains(t, data, layer)
	}
	assert.Less(t, strings.Index(data, "RC大梁"), strings.Index(data, "RC鉄筋"))
	assert.Less(t, strings.Index(data, "RC鉄筋"), strings.Index(data, "注釈"))
	assert.Contains(t, data, "G1")

	assert.Equal(t, []string{"LINE", "CIRCLE", "LWPOLYLINE", "TEXT"}, entityNames(t, data))

	assert.Equal(t, "2", layerColor(t, data, "RC大梁"))
	assert.Equal(t, "4", layerColor(t, data, "RC鉄筋"))
	assert.Equal(t, "3", layerColor(t, data, "注釈"))

	// Left-aligned baseline text carries no justification groups.
	text := firstText(t, data)
	assert.NotContains(t, text, "\n72\n")
	assert.NotContains(t, text, "\n73\n")
}

func TestSinkWriteDefaultLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.dxf")
	cmds := []draw.Command{
		draw.Line{P1: draw.Point{X: 0, Y: 0}, P2: draw.Point{X: 400, Y: 0}, Layer: "0"},
		draw.Circle{Center: draw.Point{X: 50, Y: 50}, Radius: 10, Layer: "RC鉄筋"},
	}
	sink := Sink{Roles: draw.Roles{"0": draw.RoleConcrete, "RC鉄筋": draw.RoleRebar}}

	require.NoError(t, sink.Write(cmds, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	data := string(raw)
	assert.Equal(t, "2", layerColor(t, data, "0"))
	assert.Equal(t, "4", layerColor(t, data, "RC鉄筋"))
	assert.Equal(t, []string{"LINE", "CIRCLE"}, entityNames(t, data))

	// The shared default layer is left as it was for later drawings.
	assert.Equal(t, color.White, table.LY_0.Color)
}

func TestSinkWriteTextJustification(t *testing.T) {
	tests := []struct {
		name     string
		h        draw.HAlign
		v        draw.VAlign
		hFlag    string
		vFlag    string
		hasAlign bool
	}{
		{"center baseline", draw.AlignCenter, draw.AlignBaseline, "1", "1", true},
		{"center middle", draw.AlignCenter, draw.AlignMiddle, "1", "2", true},
		{"right top", draw.AlignRight, draw.AlignTop, "2", "3", true},
		{"left middle", draw.AlignLeft, draw.AlignMiddle, "", "2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "text.dxf")
			cmds := []draw.Command{draw.Text{
				Position: draw.Point{X: 200, Y: -1000},
				Height:   100,
				Value:    "G1",
				HAlign:   tt.h,
				VAlign:   tt.v,
				Layer:    "注釈",
			}}
			require.NoError(t, Sink{}.Write(cmds, path))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			text := firstText(t, string(raw))

			if tt.hFlag == "" {
				assert.NotContains(t, text, "\n72\n")
			} else {
				assert.Contains(t, text, "\n72\n"+tt.hFlag+"\n")
			}
			assert.Contains(t, text, "\n73\n"+tt.vFlag+"\n")
			if tt.hasAlign {
				assert.Contains(t, text, "\n11\n200.000000\n21\n-1000.000000\n")
			}
		})
	}
}

func TestTextAnchor(t *testing.T) {
	assert.Equal(t, entity.LEFT_BASE, textAnchor(draw.AlignLeft, draw.AlignBaseline))
	assert.Equal(t, entity.CENTER_BOTTOM, textAnchor(draw.AlignCenter, draw.AlignBaseline))
	assert.Equal(t, entity.RIGHT_BOTTOM, textAnchor(draw.AlignRight, draw.AlignBaseline))
	assert.Equal(t, entity.CENTER_CENTER, textAnchor(draw.AlignCenter, draw.AlignMiddle))
	assert.Equal(t, entity.LEFT_TOP, textAnchor(draw.AlignLeft, draw.AlignTop))
	assert.Equal(t, entity.LEFT_BASE, textAnchor(draw.HAlign(7), draw.AlignTop))
}

func TestSinkWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dxf")
	require.NoError(t, Sink{}.Write(nil, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSinkWriteUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := Sink{}.Write(sample(), filepath.Join(blocker, "out.dxf"))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.CodeIO), "got %v", err)
}
