// Package ingest turns uploaded sales report workbooks into dealer rows
// ready for reconciliation.
package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/normalizing"
	"github.com/yes-weigh/yesbheem-sub001/pkg/utils"
)

var (
	ErrNoSheets      = errors.New("workbook has no sheets")
	ErrNoDataRows    = errors.New("workbook has no data rows")
	ErrMissingColumn = errors.New("workbook is missing a dealer name column")
)

var normalizer = normalizing.NewService()

// headerAliases maps the column spellings seen across uploaded workbooks to
// canonical field names.
var headerAliases = map[string]string{
	"customer name":    "name",
	"dealer name":      "name",
	"name":             "name",
	"sales":            "sales",
	"current sales":    "sales",
	"total sales":      "total_sales",
	"billing state":    "billing_state",
	"billing city":     "billing_city",
	"billing zip":      "billing_zip",
	"billing zipcode":  "billing_zip",
	"billing pincode":  "billing_zip",
	"shipping state":   "shipping_state",
	"shipping city":    "shipping_city",
	"shipping zip":     "shipping_zip",
	"shipping zipcode": "shipping_zip",
	"shipping pincode": "shipping_zip",
	"category":         "categories",
	"categories":       "categories",
	"phone":            "phone",
	"mobile":           "phone",
	"contact number":   "phone",
	"district":         "district",
}

// ParseWorkbook reads the first sheet of an xlsx report. The first row is
// the header; unrecognized columns are ignored and rows without a dealer
// name are skipped.
func ParseWorkbook(r io.Reader) ([]domain.Dealer, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrNoDataRows
	}

	columns := mapHeader(rows[0])
	if _, ok := columnIndex(columns, "name"); !ok {
		return nil, ErrMissingColumn
	}

	dealers := make([]domain.Dealer, 0, len(rows)-1)
	for _, row := range rows[1:] {
		dealer := parseRow(columns, row)
		if strings.TrimSpace(dealer.CustomerName) == "" {
			continue
		}
		dealers = append(dealers, dealer)
	}

	return dealers, nil
}

// mapHeader resolves each header cell to a canonical field, keyed by column
// index.
func mapHeader(header []string) map[int]string {
	columns := make(map[int]string, len(header))
	for i, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if field, ok := headerAliases[normalized]; ok {
			columns[i] = field
		}
	}
	return columns
}

func columnIndex(columns map[int]string, field string) (int, bool) {
	for i, f := range columns {
		if f == field {
			return i, true
		}
	}
	return 0, false
}

func parseRow(columns map[int]string, row []string) domain.Dealer {
	var dealer domain.Dealer

	for i, field := range columns {
		if i >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			continue
		}

		switch field {
		case "name":
			dealer.CustomerName = value
		case "sales":
			dealer.Sales = utils.ParseMagnitude(value)
		case "total_sales":
			dealer.TotalSales = utils.ParseMagnitude(value)
		case "billing_state":
			dealer.BillingState = value
		case "billing_city":
			dealer.BillingCity = value
		case "billing_zip":
			dealer.BillingZip = value
		case "shipping_state":
			dealer.ShippingState = value
		case "shipping_city":
			dealer.ShippingCity = value
		case "shipping_zip":
			dealer.ShippingZip = value
		case "categories":
			dealer.Categories = splitCategories(value)
		case "phone":
			dealer.Phone = utils.FormatPhoneNumber(value)
		case "district":
			dealer.District = districtDisplayName(value)
		}
	}

	if dealer.TotalSales == 0 {
		dealer.TotalSales = dealer.Sales
	}

	return dealer
}

// districtDisplayName canonicalizes legacy district names ("Trivandrum",
// "Calicut") from uploaded workbooks. Names outside the known district list
// pass through untouched.
func districtDisplayName(value string) string {
	canonical := normalizer.NormalizeDistrict(value, normalizing.KeralaDistricts)
	if canonical == "" {
		return value
	}

	parts := strings.Split(canonical, "-")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

func splitCategories(value string) []string {
	parts := strings.Split(value, ",")
	categories := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}
