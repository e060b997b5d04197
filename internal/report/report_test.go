package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hogwarts-cloud/sizer/internal/calculator"
	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func defaultReport(t *testing.T, mutate func(r *models.Requirements)) Report {
	t.Helper()

	requirements := models.DefaultRequirements()
	if mutate != nil {
		mutate(&requirements)
	}

	baseline := models.DefaultBaseline()

	result, err := calculator.New(baseline).Compute(requirements)
	require.NoError(t, err)

	return Build(requirements, result, baseline)
}

func findRow(r Report, section, item string) (Row, bool) {
	for _, s := range r.Sections {
		if s.Title != section {
			continue
		}
		for _, row := range s.Rows {
			if row.Item == item {
				return row, true
			}
		}
	}
	return Row{}, false
}

func Test_ParseFormat(t *testing.T) {
	testCases := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "text", expected: FormatText},
		{input: "HTML", expected: FormatHTML},
		{input: " json ", expected: FormatJSON},
		{input: "yaml", expected: FormatYAML},
		{input: "xlsx", expected: FormatXLSX},
		{input: "pdf", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		actual, err := ParseFormat(tc.input)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, actual, tc.input)
	}
}

func Test_Build(t *testing.T) {
	r := defaultReport(t, nil)

	titles := make([]string, 0, len(r.Sections))
	for _, section := range r.Sections {
		titles = append(titles, section.Title)
	}

	assert.Equal(t, []string{
		"ECS Master/Server", "ECS Worker/Agent", "NFS", "Openshift 4 Worker", "OCS/ODF", "CCU", "Totals",
	}, titles)

	testCases := []struct {
		section  string
		item     string
		expected string
	}{
		{section: "ECS Worker/Agent", item: "Nodes", expected: "14"},
		{section: "ECS Worker/Agent", item: "CDW local disk per node (GB)", expected: "630"},
		{section: "NFS", item: "Mode", expected: "External"},
		{section: "NFS", item: "External NFS minimum size (GB)", expected: "100"},
		{section: "Openshift 4 Worker", item: "CDW disks per node (630 GB)", expected: "1"},
		{section: "Totals", item: "NFS (GB)", expected: "0"},
		{section: "OCS/ODF", item: "Usable capacity (GB)", expected: "1525"},
		{section: "CCU", item: "ECS CPU cores", expected: "3893"},
		{section: "CCU", item: "ECS RAM (GB)", expected: "15659"},
		{section: "CCU", item: "Openshift CPU cores", expected: "960"},
		{section: "CCU", item: "Openshift RAM (GB)", expected: "3840"},
		{section: "Totals", item: "Nodes", expected: "52"},
		{section: "Totals", item: "Storage (GB)", expected: "18725"},
	}

	for _, tc := range testCases {
		row, ok := findRow(r, tc.section, tc.item)
		require.True(t, ok, tc.section+"/"+tc.item)
		assert.Equal(t, tc.expected, row.Value, tc.section+"/"+tc.item)
	}
}

func Test_Build_InternalNFS(t *testing.T) {
	r := defaultReport(t, func(r *models.Requirements) {
		r.InternalNFS = true
		r.CMLNFS = 750
	})

	mode, _ := findRow(r, "NFS", "Mode")
	size, ok := findRow(r, "NFS", "Internal NFS minimum size (GB)")
	require.True(t, ok)
	total, _ := findRow(r, "Totals", "NFS (GB)")

	assert.Equal(t, "Internal", mode.Value)
	assert.Equal(t, "750", size.Value)
	assert.Equal(t, "750", total.Value)
}

func Test_Render(t *testing.T) {
	r := defaultReport(t, nil)
	r.Name = "default"

	testCases := []struct {
		format   Format
		contains []string
	}{
		{format: FormatText, contains: []string{"Hardware Dimensioning Output: default", "OCS/ODF", "1525", "Warnings: none"}},
		{format: FormatHTML, contains: []string{"<h1>Hardware Dimensioning Output: default</h1>", "ECS Master/Server", "<td class=\"value\">3893</td>", "<p>None</p>"}},
		{format: FormatJSON, contains: []string{`"name": "default"`, `"ccu_cpu": 3893`, `"warnings": []`}},
		{format: FormatYAML, contains: []string{"name: default", "ccu_ram: 15659", "warnings: []"}},
	}

	for _, tc := range testCases {
		buf := &bytes.Buffer{}
		require.NoError(t, Render(buf, r, tc.format), string(tc.format))

		for _, s := range tc.contains {
			assert.Contains(t, buf.String(), s, string(tc.format))
		}
	}

	err := Render(&bytes.Buffer{}, r, FormatXLSX)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func Test_Render_Document(t *testing.T) {
	r := defaultReport(t, nil)

	jsonBuf := &bytes.Buffer{}
	require.NoError(t, Render(jsonBuf, r, FormatJSON))

	var fromJSON models.Document
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	assert.Equal(t, r.Document(), fromJSON)

	yamlBuf := &bytes.Buffer{}
	require.NoError(t, Render(yamlBuf, r, FormatYAML))

	var fromYAML models.Document
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Equal(t, r.Document(), fromYAML)
	assert.False(t, strings.Contains(yamlBuf.String(), "name:"))
}
