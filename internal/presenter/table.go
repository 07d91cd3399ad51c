/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/combahton/cbcli/internal/api"
)

// KeyValueTable writes one "field  value" row per object field, in field order.
func KeyValueTable(w io.Writer, obj *api.Object) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, k := range obj.Keys {
		fmt.Fprintf(tw, "%s\t%s\n", escapeCell(k), Cell(obj.Values[k]))
	}

	return tw.Flush()
}

// ListTable writes records as a table whose columns are the union of all
// record keys in first-seen order.
func ListTable(w io.Writer, records []*api.Object) error {
	headers := ColumnsOf(records)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = Cell(rec.Values[h])
		}

		rows = append(rows, row)
	}

	escaped := make([]string, len(headers))
	for i, h := range headers {
		escaped[i] = escapeCell(h)
	}

	return Table(w, escaped, rows)
}

// Table writes headers, a dashed separator and rows through a tabwriter.
func Table(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}

	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// ColumnsOf returns the union of keys of records in first-seen order.
func ColumnsOf(records []*api.Object) []string {
	seen := map[string]bool{}

	var headers []string

	for _, rec := range records {
		for _, k := range rec.Keys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}

	return headers
}

var cellEscaper = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// Cell formats v for a table cell. Line breaks and tabs are escaped so the
// value stays on its row and column.
func Cell(v any) string {
	return escapeCell(FormatValue(v))
}

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// FormatValue renders a decoded JSON value as text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}

		return "false"
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}

		return string(data)
	}
}
