package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "Part No, Description ,Current QTY\nA1,Widget,12\nB2,Gadget,5\n"

	table, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Part No", "Description", "Current QTY"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "A1", table.Rows[0].Get("Part No"))
	assert.Equal(t, "12", table.Rows[0].Get("Current QTY"))
	assert.Equal(t, "Gadget", table.Rows[1].Get("Description"))
}

func TestReadCSV_RaggedRows(t *testing.T) {
	in := "a,b,c\n1,2\n1,2,3,4\n"

	table, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "", table.Rows[0].Get("c"))
	assert.Equal(t, "3", table.Rows[1].Get("c"))
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("part_no,qty\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}
