//go:build basic

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// TestReportWorkbook builds the workbook and checks its sheets against the export.
func TestReportWorkbook(t *testing.T) {
	dir := t.TempDir()
	export := writeExport(t, dir)
	out := filepath.Join(dir, "match.xlsx")

	_, err := runCommand(t, dir, "report", export, "--output-file", out)
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{
		"本帮团长排序", "本帮职业排序", "敌帮团长排序", "敌帮职业排序", "综合职业排序",
		"本帮职业统计", "本帮团长统计", "敌帮职业统计", "敌帮团长统计", "帮会对比",
	}, f.GetSheetList())

	// L1 ranks b (300000) above a (100000); L2 follows after a blank and a header.
	rows, err := f.GetRows("本帮团长排序")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 6)
	assert.Equal(t, "b", rows[1][1])
	assert.Equal(t, "a", rows[2][1])
	assert.Empty(t, rows[3])
	assert.Equal(t, "帮会名", rows[4][0])
	assert.Equal(t, "c", rows[5][1])

	cmp, err := f.GetRows("帮会对比")
	require.NoError(t, err)
	require.Len(t, cmp, 3)
	assert.Equal(t, []string{"本帮", "3"}, cmp[1][:2])
	assert.Equal(t, []string{"敌帮", "2"}, cmp[2][:2])
}

// TestCompareJSON checks the totals of the comparison against the export.
func TestCompareJSON(t *testing.T) {
	dir := t.TempDir()
	export := writeExport(t, dir)

	out, err := runCommand(t, dir, "compare", export, "--output", "json", "--home-name", "红队", "--away-name", "蓝队")
	require.NoError(t, err)

	var view struct {
		Rows []struct {
			Group string   `json:"group"`
			Cells []string `json:"cells"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out[strings.Index(out, "{"):]), &view))
	require.Len(t, view.Rows, 2)

	home, away := view.Rows[0], view.Rows[1]
	assert.Equal(t, "红队", home.Group)
	assert.Equal(t, "蓝队", away.Group)
	// 帮会名, 总人数, 总击败数, 总助攻数, 总战备资源, 总对玩家伤害, ...
	assert.Equal(t, "6", home.Cells[2])
	assert.Equal(t, "600000", home.Cells[5])
	assert.Equal(t, "450000", away.Cells[5])
}

// TestMissingSeparator checks that an export without a blank line fails
// unless the separator line is named.
func TestMissingSeparator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "joined.csv")
	lines := slices.Concat(exportLines[:4], exportLines[5:])
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	out, err := runCommand(t, dir, "compare", path)
	require.Error(t, err)
	assert.Contains(t, out, "--split-line")

	// Line 4 holds player d, which becomes the separator and is not counted.
	out, err = runCommand(t, dir, "compare", path, "--output", "json", "--split-line", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "\"group\": \"敌帮\"")
}
