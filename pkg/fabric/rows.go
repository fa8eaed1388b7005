package fabric

// Row is one flat, string-typed record of a tabular listing. Missing source
// fields yield empty values, never errors.
type Row map[string]string

// Table is an ordered collection of rows with a fixed column order. Row
// order is API response order with pages concatenated; no filtering,
// sorting or deduplication is applied.
type Table struct {
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows"    yaml:"rows"`
}

// NewTable creates an empty table with the given column order.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds one row, positionally matched against the column order.
// Missing trailing values become empty strings.
func (t *Table) Append(values ...string) {
	row := make(Row, len(t.Columns))

	for i, column := range t.Columns {
		if i < len(values) {
			row[column] = values[i]
		} else {
			row[column] = ""
		}
	}

	t.Rows = append(t.Rows, row)
}

// WorkspaceTable flattens a workspace listing.
func WorkspaceTable(workspaces []Workspace) *Table {
	table := NewTable("Workspace Name", "Workspace Id", "Description", "Capacity Id")

	for _, workspace := range workspaces {
		table.Append(workspace.DisplayName, workspace.ID, workspace.Description, workspace.CapacityID)
	}

	return table
}

// ItemTable flattens a generic item listing.
func ItemTable(items []Item) *Table {
	table := NewTable("Item Name", "Item Id", "Type", "Description")

	for _, item := range items {
		table.Append(item.DisplayName, item.ID, item.Type, item.Description)
	}

	return table
}

// MountedDataFactoryTable flattens a mounted data factory listing.
func MountedDataFactoryTable(items []Item) *Table {
	table := NewTable("Mounted Data Factory Name", "Mounted Data Factory Id", "Description")

	for _, item := range items {
		table.Append(item.DisplayName, item.ID, item.Description)
	}

	return table
}

// KQLQuerysetTable flattens a KQL queryset listing.
func KQLQuerysetTable(items []Item) *Table {
	table := NewTable("KQL Queryset Name", "KQL Queryset Id", "Description")

	for _, item := range items {
		table.Append(item.DisplayName, item.ID, item.Description)
	}

	return table
}

// LakehouseTable flattens a lakehouse listing.
func LakehouseTable(lakehouses []Lakehouse) *Table {
	table := NewTable("Lakehouse Name", "Lakehouse Id", "Description")

	for _, lakehouse := range lakehouses {
		table.Append(lakehouse.DisplayName, lakehouse.ID, lakehouse.Description)
	}

	return table
}

// ReportTable flattens a report listing.
func ReportTable(reports []Report) *Table {
	table := NewTable("Report Name", "Report Id", "Dataset Id")

	for _, report := range reports {
		table.Append(report.Name, report.ID, report.DatasetID)
	}

	return table
}
