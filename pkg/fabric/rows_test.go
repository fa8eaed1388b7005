package fabric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Append(t *testing.T) {
	t.Parallel()

	table := NewTable("Name", "Id", "Description")

	table.Append("First", "1", "full row")
	table.Append("Second", "2")

	require.Len(t, table.Rows, 2)
	assert.Equal(t, Row{"Name": "First", "Id": "1", "Description": "full row"}, table.Rows[0])

	// Missing trailing values become empty strings, never a panic.
	assert.Equal(t, Row{"Name": "Second", "Id": "2", "Description": ""}, table.Rows[1])
}

func TestMountedDataFactoryTable(t *testing.T) {
	t.Parallel()

	items := []Item{
		{ID: "id1", DisplayName: "DF1", Description: "first"},
		{ID: "id2", DisplayName: "DF2"},
	}

	table := MountedDataFactoryTable(items)

	assert.Equal(t, []string{"Mounted Data Factory Name", "Mounted Data Factory Id", "Description"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "DF1", table.Rows[0]["Mounted Data Factory Name"])
	assert.Equal(t, "id1", table.Rows[0]["Mounted Data Factory Id"])
	assert.Equal(t, "", table.Rows[1]["Description"])
}

func TestWorkspaceTable(t *testing.T) {
	t.Parallel()

	table := WorkspaceTable([]Workspace{
		{ID: "w1", DisplayName: "Sales", Description: "sales team", CapacityID: "cap-1"},
	})

	assert.Equal(t, []string{"Workspace Name", "Workspace Id", "Description", "Capacity Id"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "cap-1", table.Rows[0]["Capacity Id"])
}

func TestReportTable(t *testing.T) {
	t.Parallel()

	table := ReportTable([]Report{
		{ID: "r1", Name: "Overview", DatasetID: "d1"},
	})

	assert.Equal(t, []string{"Report Name", "Report Id", "Dataset Id"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, Row{"Report Name": "Overview", "Report Id": "r1", "Dataset Id": "d1"}, table.Rows[0])
}

// An empty listing still yields a table with its column order intact.
func TestEmptyTables(t *testing.T) {
	t.Parallel()

	assert.Empty(t, KQLQuerysetTable(nil).Rows)
	assert.Equal(t, []string{"KQL Queryset Name", "KQL Queryset Id", "Description"}, KQLQuerysetTable(nil).Columns)
	assert.Empty(t, LakehouseTable(nil).Rows)
	assert.Empty(t, ItemTable(nil).Rows)
}
