package swimrankings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSearchRowsMissingTable(t *testing.T) {
	doc, err := parseDocument(`<html><body><p>nothing here</p></body></html>`)
	require.NoError(t, err)

	// no table means zero results, not a parse failure
	rows, err := extractSearchRows(doc)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestExtractSearchRowsMissingIDColumn(t *testing.T) {
	doc, err := parseDocument(`
		<table class="athleteSearch">
			<tr class="athleteSearch0"><td class="name">DRUWEL, Mauro</td></tr>
			<tr class="athleteSearch1"><td class="name">DRUWEL, Lotte</td></tr>
		</table>`)
	require.NoError(t, err)

	// the id column gone from every row is a markup change
	_, err = extractSearchRows(doc)
	require.ErrorIs(t, err, ErrParse)
}

func TestExtractSearchRowsIgnoresUnknownColumns(t *testing.T) {
	doc, err := parseDocument(`
		<table class="athleteSearch">
			<tr class="athleteSearch0">
				<td class="rank">17</td>
				<td class="name"><a href="?athleteId=42">DRUWEL, Mauro</a></td>
				<td class="sponsor">acme</td>
				<td class="code">BEL</td>
			</tr>
		</table>`)
	require.NoError(t, err)

	rows, err := extractSearchRows(doc)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "42", rows[0].athleteID)
	require.Equal(t, "BEL", rows[0].country)
	// optional cells the fixture lacks stay empty
	require.Equal(t, "", rows[0].birthYear)
	require.Equal(t, "", rows[0].club)
}

func TestExtractBestRowsMissingTimeColumn(t *testing.T) {
	doc, err := parseDocument(`
		<table class="athleteBest">
			<tr class="athleteBest0"><td class="event">50m Freestyle</td></tr>
		</table>`)
	require.NoError(t, err)

	_, err = extractBestRows(doc)
	require.ErrorIs(t, err, ErrParse)
}

func TestExtractOptionsMissingControl(t *testing.T) {
	doc, err := parseDocument(`<html><body></body></html>`)
	require.NoError(t, err)

	_, err = extractOptions(doc, "nationId", "$$$")
	require.ErrorIs(t, err, ErrParse)
}

func TestExtractOptionsSkipsPlaceholders(t *testing.T) {
	doc, err := parseDocument(`
		<select name="nationId">
			<option value="$$$">- all -</option>
			<option value="43">Belgium</option>
			<option value="">blank</option>
		</select>`)
	require.NoError(t, err)

	options, err := extractOptions(doc, "nationId", "$$$")
	require.NoError(t, err)
	require.Equal(t, []option{{value: "43", label: "Belgium"}}, options)
}

func TestExtractDetailHeader(t *testing.T) {
	doc, err := parseDocument(`
		<div id="athleteinfo">
			<div id="name">DRUWEL, Mauro (2004) <img src="images/gender1.png"></div>
			<div id="nationclub"><b>BEL - Belgium</b><br>Zwemclub Gent</div>
		</div>`)
	require.NoError(t, err)

	header, err := extractDetailHeader(doc)
	require.NoError(t, err)
	require.Equal(t, "DRUWEL, Mauro (2004)", header.nameLine)
	require.Equal(t, "images/gender1.png", header.genderImg)
	require.Equal(t, "BEL - Belgium", header.nationLine)
	require.Equal(t, "Zwemclub Gent", header.clubLine)
}
