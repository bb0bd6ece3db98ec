package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Customer Name", "Sales", "Billing State", "Billing Pincode", "Categories", "Phone"},
		{"Alpha Traders", "75 L", "Kerala", "682001", "Tiles, Sanitary", "9876543210"},
		{"Beta Retail", "120000", "Tamil Nadu", "", "", ""},
		{"", "99999", "Goa", "", "", ""},
	})

	dealers, err := ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, dealers, 2)

	alpha := dealers[0]
	assert.Equal(t, "Alpha Traders", alpha.CustomerName)
	assert.InDelta(t, 7_500_000.0, alpha.Sales, 0.001)
	assert.Equal(t, alpha.Sales, alpha.TotalSales)
	assert.Equal(t, "Kerala", alpha.BillingState)
	assert.Equal(t, "682001", alpha.BillingZip)
	assert.Equal(t, []string{"Tiles", "Sanitary"}, alpha.Categories)
	assert.Equal(t, "+919876543210", alpha.Phone)

	beta := dealers[1]
	assert.Equal(t, "Beta Retail", beta.CustomerName)
	assert.Equal(t, 120000.0, beta.Sales)
	assert.Empty(t, beta.Phone)
}

func TestParseWorkbook_HeaderVariants(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Dealer Name", "Current Sales", "Shipping Zipcode", "District"},
		{"Gamma Agencies", "5.5 Cr", "695001", "Trivandrum"},
	})

	dealers, err := ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, dealers, 1)

	assert.Equal(t, "Gamma Agencies", dealers[0].CustomerName)
	assert.InDelta(t, 55_000_000.0, dealers[0].Sales, 0.001)
	assert.Equal(t, "695001", dealers[0].ShippingZip)
	// Legacy name resolved onto the current district.
	assert.Equal(t, "Thiruvananthapuram", dealers[0].District)
}

func TestDistrictDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Trivandrum", "Thiruvananthapuram"},
		{"Calicut", "Kozhikode"},
		{"ERNAKULAM", "Ernakulam"},
		{"Coimbatore", "Coimbatore"}, // outside the list, passes through
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, districtDisplayName(tt.in))
	}
}

func TestParseWorkbook_MissingNameColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Sales", "Billing State"},
		{"100", "Kerala"},
	})

	_, err := ParseWorkbook(buf)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseWorkbook_NoDataRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Customer Name", "Sales"},
	})

	_, err := ParseWorkbook(buf)
	assert.ErrorIs(t, err, ErrNoDataRows)
}
