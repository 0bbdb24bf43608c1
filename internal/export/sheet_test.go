package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type saleRow struct {
	Ref    string
	Qty    int64
	Amount float64
}

var saleColumns = []Column[saleRow]{
	{Header: "Reference", Value: func(r saleRow) any { return r.Ref }},
	{Header: "Quantity", Value: func(r saleRow) any { return r.Qty }},
	{Header: "Amount", Value: func(r saleRow) any { return r.Amount }},
}

func TestBuildSheetColumnFidelity(t *testing.T) {
	records := []saleRow{
		{Ref: "A-1", Qty: 2, Amount: 1230.50},
		{Ref: "A-2", Qty: 1, Amount: 99},
	}

	sheet := BuildSheet("Sales", records, saleColumns)

	assert.Equal(t, []string{"Reference", "Quantity", "Amount"}, sheet.Headers)
	require.Len(t, sheet.Rows, len(records))
	for i, row := range sheet.Rows {
		require.Len(t, row, len(saleColumns))
		assert.Equal(t, records[i].Ref, row[0])
		assert.Equal(t, records[i].Qty, row[1])
		assert.Equal(t, records[i].Amount, row[2])
	}
}

func TestBuildSheetEmptyInput(t *testing.T) {
	sheet := BuildSheet("Empty", nil, saleColumns)
	assert.Len(t, sheet.Headers, 3)
	assert.Empty(t, sheet.Rows)
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	sheet := BuildSheet("Sales", []saleRow{{Ref: "A-1", Qty: 2, Amount: 1230.5}}, saleColumns)

	data, err := sheet.WriteXLSX()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Reference", "Quantity", "Amount"}, rows[0])
	assert.Equal(t, "A-1", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
}

func TestFilename(t *testing.T) {
	day := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Orders_2026-01-15.xlsx", Filename("Orders", day))
}
